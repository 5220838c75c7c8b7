package batchload

import (
	"testing"

	"media-batchload/core/loader"
	"media-batchload/core/storage"
	"media-batchload/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	var feature loader.Feature = NewFeature(new(mocks.Client), storage.Config{Bucket: "binaries"}, testConfig(), zap.NewNop())

	assert.Equal(t, "batch", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}

func TestLoader_NoStorage(t *testing.T) {
	feature := NewFeature(nil, storage.Config{}, testConfig(), zap.NewNop())
	assert.False(t, feature.IsEnabled())
}
