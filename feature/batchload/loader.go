package batchload

import (
	"media-batchload/core/reconcile"
	"media-batchload/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the batch feature backed by the storage bucket.
func NewFeature(client storage.Client, storageCfg storage.Config, cfg reconcile.Config, logger *zap.Logger) *Feature {
	svc := NewService(client, storageCfg, nil, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "batch"
}

// IsEnabled reports whether a storage client is available.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
