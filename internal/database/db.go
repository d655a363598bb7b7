package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SubhashKumar14/LearnPath/internal/config"
	"github.com/SubhashKumar14/LearnPath/internal/models"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

// Open returns the repositories the server will run on. If DB_DSN is set
// and Postgres is reachable the store is GORM-backed; otherwise the server
// degrades to in-memory storage instead of refusing to start.
func Open(cfg *config.Config, log *zap.Logger) *store.Store {
	if cfg.DBDSN == "" {
		log.Warn("DB_DSN not set, using in-memory storage")
		return store.NewMemory()
	}

	db, err := connect(cfg.DBDSN, log)
	if err != nil {
		log.Warn("database unavailable, falling back to in-memory storage", zap.Error(err))
		return store.NewMemory()
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Roadmap{},
		&models.ProgressEntry{},
	); err != nil {
		log.Warn("migration failed, falling back to in-memory storage", zap.Error(err))
		return store.NewMemory()
	}

	log.Info("connected to database")
	return store.NewGorm(db)
}

func connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	const maxAttempts = 5

	var db *gorm.DB
	var err error
	for i := 1; i <= maxAttempts; i++ {
		log.Info("connecting to database", zap.Int("attempt", i), zap.Int("max_attempts", maxAttempts))

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		if err == nil {
			return db, nil
		}
		time.Sleep(2 * time.Second)
	}
	return nil, err
}
