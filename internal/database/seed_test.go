package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/auth"
	"github.com/SubhashKumar14/LearnPath/internal/config"
	"github.com/SubhashKumar14/LearnPath/internal/models"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

func seedConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "admin@learnpath.local",
		AdminPassword: "Admin123!",
	}
}

func TestSeedAdminCreatesAdmin(t *testing.T) {
	st := store.NewMemory()

	SeedAdmin(st, seedConfig(), zap.NewNop())

	admin, err := st.Users.FindByEmail("admin@learnpath.local")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword("Admin123!", admin.PasswordHash))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	st := store.NewMemory()

	SeedAdmin(st, seedConfig(), zap.NewNop())
	SeedAdmin(st, seedConfig(), zap.NewNop())

	count, err := st.Users.CountByRole(models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminSkipsWhenAnyAdminExists(t *testing.T) {
	st := store.NewMemory()

	// an admin under a different email still counts
	existing := &models.User{
		Name:         "Ops",
		Email:        "ops@learnpath.local",
		PasswordHash: "h",
		Role:         models.RoleAdmin,
	}
	require.NoError(t, st.Users.Create(existing))

	SeedAdmin(st, seedConfig(), zap.NewNop())

	_, err := st.Users.FindByEmail("admin@learnpath.local")
	assert.ErrorIs(t, err, store.ErrNotFound)

	count, err := st.Users.CountByRole(models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
