package filenames

import (
	"bytes"

	"media-batchload/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for filename checks.
type Handler struct {
	validator *Validator
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(validator *Validator, logger *zap.Logger) *Handler {
	return &Handler{validator: validator, logger: logger}
}

// RegisterRoutes registers the filename routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/filenames")
	group.Post("/validate", h.HandleValidate)
}

// HandleValidate checks the paths in the request body.
// @Summary Validate Filenames
// @Description Checks one path per line against the naming convention and lists the invalid ones.
// @Tags filenames
// @Accept plain
// @Produce json
// @Success 200 {object} ScanResult
// @Failure 400 {object} map[string]string "Unreadable input"
// @Router /filenames/validate [post]
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	result, err := h.validator.Scan(bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.logger, c).Info("Filenames validated",
		zap.Int("checked", result.Checked),
		zap.Int("invalid", len(result.Invalid)),
	)
	return c.JSON(result)
}
