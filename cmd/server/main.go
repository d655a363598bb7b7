package main

import (
	stdlog "log"

	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/config"
	"github.com/SubhashKumar14/LearnPath/internal/database"
	"github.com/SubhashKumar14/LearnPath/internal/logger"
	"github.com/SubhashKumar14/LearnPath/internal/server"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.SecretDefaulted {
		log.Warn("SESSION_SECRET not set, using built-in development secret")
	}

	st := database.Open(cfg, log)
	database.SeedAdmin(st, cfg, log)

	r := server.New(cfg, st, log)

	addr := ":" + cfg.ServerPort
	log.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
