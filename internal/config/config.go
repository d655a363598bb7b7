package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "learnpath-dev-secret"

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string
	PublicDir     string
	AdminEmail    string
	AdminPassword string
	LogLevel      string

	// SecretDefaulted is set when SESSION_SECRET was not provided and the
	// built-in development secret is in use; main logs a warning for it.
	SecretDefaulted bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		PublicDir:     os.Getenv("PUBLIC_DIR"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = defaultSessionSecret
		cfg.SecretDefaulted = true
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "web/public"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@learnpath.local"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "Admin123!"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}
