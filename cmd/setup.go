package cmd

import (
	"context"
	"log"

	"qldf/core/config"
	"qldf/core/database"
	"qldf/core/logger"
	"qldf/core/snapshot"
	"qldf/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mustSetup is the shared boot sequence of every command: configuration,
// logger, database connection and schema migration. Failures are fatal.
func mustSetup() (*config.Config, *zap.Logger, *gorm.DB) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logg)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logg.Fatal("Failed to run migrations", zap.Error(err))
	}

	return cfg, logg, db
}

// newArchive builds the snapshot archive when storage is enabled. A nil
// archive is a valid disabled one, so storage problems degrade to warnings
// instead of blocking the jobs.
func newArchive(ctx context.Context, cfg *config.Config, logg *zap.Logger) *snapshot.Archive {
	if !cfg.Storage.Enabled {
		return nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Snapshot storage unavailable", zap.Error(err))
		return nil
	}

	archive := snapshot.New(client, cfg.Storage.Bucket, logg)
	if err := archive.EnsureBucket(ctx); err != nil {
		logg.Warn("Snapshot bucket unavailable", zap.Error(err))
		return nil
	}
	return archive
}
