package objects

import (
	"context"

	"bucket-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the objects service and handler into the gateway loader.
type Feature struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewFeature creates the objects feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	return &Feature{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "objects"
}

// IsEnabled reports whether a bucket is configured.
func (f *Feature) IsEnabled() bool {
	return f.bucket != ""
}

// Load validates the bucket binding and registers the HTTP routes.
// The gateway never prompts, so no Confirmer is injected here.
func (f *Feature) Load(app fiber.Router) error {
	svc, err := NewService(context.Background(), f.client, f.bucket, f.logger, nil)
	if err != nil {
		return err
	}
	NewHandler(svc).RegisterRoutes(app)
	return nil
}
