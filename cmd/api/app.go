package main

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/client"
	"kitchen-planner-api/internal/config"
	"kitchen-planner-api/internal/database"
	"kitchen-planner-api/internal/metrics"
	"kitchen-planner-api/internal/storage"
)

// bootstrap loads the config and builds the logger every command needs
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger, nil
}

func openDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))
	return db, nil
}

// openImageStore builds the configured backend wrapped with storage metrics
func openImageStore(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) (storage.ImageStore, error) {
	var store storage.ImageStore
	switch cfg.Storage.Driver {
	case "s3":
		s3Client, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		store = storage.NewS3ImageStore(s3Client)
		logger.Info("S3 image store initialized",
			zap.String("bucket", cfg.S3.Bucket),
			zap.String("region", cfg.S3.Region),
		)
	default:
		local, err := storage.NewLocalImageStore(cfg.Storage.LocalRoot)
		if err != nil {
			return nil, err
		}
		store = local
		logger.Info("Local image store initialized", zap.String("root", cfg.Storage.LocalRoot))
	}

	if m == nil {
		return store, nil
	}
	return storage.NewInstrumentedStore(store, cfg.Storage.Driver, m), nil
}
