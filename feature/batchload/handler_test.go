package batchload

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"media-batchload/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	handler := NewHandler(newTestService(mockClient))
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleEnrich(t *testing.T) {
	app, mockClient := setupTestApp(t)
	expectListing(mockClient, "av/",
		minio.ObjectInfo{Key: "av/umd_1/umd_5/reel02.mov", Size: 200},
		minio.ObjectInfo{Key: "av/umd_1/umd_5/reel01.mov", Size: 100},
	)

	req := httptest.NewRequest("POST", "/batch/enrich?prefix=av/", strings.NewReader(catalogCSV))
	req.Header.Set("Content-Type", "text/csv")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("X-Batch-Records"))
	assert.Equal(t, "2", resp.Header.Get("X-Batch-Files"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, enrichedCSV, string(body))
	mockClient.AssertExpectations(t)
}

func TestHandleEnrich_RecordError(t *testing.T) {
	app, mockClient := setupTestApp(t)
	expectListing(mockClient, "",
		minio.ObjectInfo{Key: "umd_2/umd_6/a.wav"},
		minio.ObjectInfo{Key: "umd_2/umd_6/b.wav"},
		minio.ObjectInfo{Key: "umd_2/umd_6/c.wav"},
	)

	req := httptest.NewRequest("POST", "/batch/enrich", strings.NewReader(catalogCSV))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(3), body["row"])
	assert.Equal(t, "umd:2", body["identifier"])
}

func TestHandleEnrich_EmptyBody(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("POST", "/batch/enrich", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleAssets(t *testing.T) {
	app, mockClient := setupTestApp(t)
	expectListing(mockClient, "",
		minio.ObjectInfo{Key: "umd_1/umd_5/reel02.mov"},
		minio.ObjectInfo{Key: "umd_1/umd_5/reel01.mov"},
	)

	req := httptest.NewRequest("GET", "/batch/assets/umd:1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Identifier string `json:"identifier"`
		Assets     []struct {
			Filename     string `json:"filename"`
			ResolvedPath string `json:"resolved_path"`
		} `json:"assets"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "umd:1", body.Identifier)
	require.Len(t, body.Assets, 2)
	assert.Equal(t, "reel01.mov", body.Assets[0].Filename)
}
