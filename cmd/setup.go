package cmd

import (
	"context"
	"fmt"
	"os"

	"bucket-manager/core/config"
	"bucket-manager/core/logger"
	"bucket-manager/core/storage"
	"bucket-manager/feature/objects"

	"go.uber.org/zap"
)

// setupService builds the configured object service for a CLI invocation:
// config, logger, storage client, then the bucket-bound service with a
// terminal confirmation prompt.
func setupService(ctx context.Context) (*objects.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	confirm := objects.Terminal(os.Stdin, os.Stdout)
	svc, err := objects.NewService(ctx, client, cfg.Storage.Bucket, logg, confirm)
	if err != nil {
		return nil, nil, err
	}

	return svc, logg, nil
}
