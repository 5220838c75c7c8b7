package batchload

import (
	"bytes"
	"errors"
	"net/url"
	"strconv"

	"media-batchload/core/logger"
	"media-batchload/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for batch enrichment.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the batch routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/batch")
	group.Post("/enrich", h.HandleEnrich)
	group.Get("/assets/:identifier", h.HandleAssets)
}

// HandleEnrich enriches the catalog CSV in the request body.
// @Summary Enrich Catalog
// @Description Joins the catalog CSV with the digitized files found in the storage bucket and returns the enriched CSV.
// @Tags batch
// @Accept text/csv
// @Produce text/csv
// @Param prefix query string false "Storage prefix to discover files under"
// @Success 200 {string} string "Enriched catalog"
// @Failure 400 {object} map[string]string "Unreadable catalog"
// @Failure 422 {object} map[string]interface{} "Fatal record error"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /batch/enrich [post]
func (h *Handler) HandleEnrich(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	catalog, err := NewCSVCatalog(bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	index, err := h.service.BucketIndex(c.Context(), c.Query("prefix"))
	if err != nil {
		l.Error("Asset discovery failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var out bytes.Buffer
	summary, err := h.service.Enrich(c.Context(), index, catalog, &out)
	if err != nil {
		var recErr *reconcile.RecordError
		if errors.As(err, &recErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":      err.Error(),
				"row":        recErr.Row,
				"identifier": recErr.Identifier,
			})
		}
		l.Error("Enrichment failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("X-Batch-Records", strconv.Itoa(summary.Records))
	c.Set("X-Batch-Files", strconv.Itoa(summary.Files))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(out.Bytes())
}

// HandleAssets lists the ordered files of a governing identifier.
// @Summary List Assets
// @Description Returns the digitized files discovered for a governing identifier, in slot order.
// @Tags batch
// @Produce json
// @Param identifier path string true "Governing identifier (e.g. 'umd:1')"
// @Param prefix query string false "Storage prefix to discover files under"
// @Success 200 {object} map[string]interface{} "Assets"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /batch/assets/{identifier} [get]
func (h *Handler) HandleAssets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	identifier, err := url.PathUnescape(c.Params("identifier"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	index, err := h.service.BucketIndex(c.Context(), c.Query("prefix"))
	if err != nil {
		l.Error("Asset discovery failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"identifier": identifier,
		"assets":     index.Ordered(identifier),
	})
}
