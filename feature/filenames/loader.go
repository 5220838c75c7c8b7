package filenames

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	err     error
}

// NewFeature creates the filenames feature. An unusable collection list
// leaves the feature disabled.
func NewFeature(cfg Config, logger *zap.Logger) *Feature {
	validator, err := NewValidator(cfg.Collections)
	if err != nil {
		logger.Warn("Filename validation disabled", zap.Error(err))
		return &Feature{err: err}
	}
	return &Feature{handler: NewHandler(validator, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "filenames"
}

// IsEnabled reports whether the validator could be built.
func (f *Feature) IsEnabled() bool {
	return f.err == nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
