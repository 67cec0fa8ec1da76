package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ekuzmina/link-shortener/internal/app/config"
	handlers "github.com/ekuzmina/link-shortener/internal/app/handlers/http"
	"github.com/ekuzmina/link-shortener/internal/app/handlers/http/dbhandlers"
	"github.com/ekuzmina/link-shortener/internal/app/qr"
	server "github.com/ekuzmina/link-shortener/internal/app/server/http"
	"github.com/ekuzmina/link-shortener/internal/app/service"
	"github.com/ekuzmina/link-shortener/internal/app/store"
	"github.com/ekuzmina/link-shortener/internal/app/utils"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()
	logger := zapLogger.Sugar()

	if cfg.SecretKey == "" {
		logger.Warn("SecretKey not provided, generating a random one (will reset on each restart)")
		cfg.SecretKey = utils.GenerateRandomSecretKey()
	}

	var pinger dbhandlers.Pinger
	var sourceStore service.Store
	switch {
	case cfg.DSN != "":
		logger.Debugw("Database mode enabled", "DSN", cfg.DSN)
		if err := store.MigrateDB(cfg.DSN, logger); err != nil {
			logger.Fatalf("Database migration failed: %v", err)
		}
		db := store.NewDB(cfg.DSN, logger)
		sourceStore = db
		pinger = db
	case cfg.FileStoragePath != "":
		logger.Debugw("File storage mode enabled", "storagePath", cfg.FileStoragePath)
		sourceStore = store.NewFileStore(cfg.FileStoragePath)
	default:
		logger.Debug("In-memory storage mode enabled")
		sourceStore = store.NewStore()
	}

	shortenSvc := service.NewShortenService(sourceStore, qr.NewPNGEncoder())
	getSvc := service.NewGetURLService(sourceStore)
	deleteSvc := service.NewURLDeleter(sourceStore)

	h := handlers.New(cfg, shortenSvc, getSvc, deleteSvc, pinger, logger)
	srv := server.NewServer(cfg.ServerAddress, cfg.SecretKey, logger, h)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
