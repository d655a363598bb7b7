package database

import (
	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/auth"
	"github.com/SubhashKumar14/LearnPath/internal/config"
	"github.com/SubhashKumar14/LearnPath/internal/models"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

// SeedAdmin creates the default admin account when no admin exists at
// all, whatever email it was created under. Registration only ever
// grants the user role, so the admin comes from config
// (ADMIN_EMAIL / ADMIN_PASSWORD).
func SeedAdmin(st *store.Store, cfg *config.Config, log *zap.Logger) {
	count, err := st.Users.CountByRole(models.RoleAdmin)
	if err != nil {
		log.Error("failed to check admin user", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Error("failed to hash admin password", zap.Error(err))
		return
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := st.Users.Create(admin); err != nil {
		log.Error("failed to create admin user", zap.Error(err))
		return
	}

	log.Info("created default admin user", zap.String("email", cfg.AdminEmail))
}
