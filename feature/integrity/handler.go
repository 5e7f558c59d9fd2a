package integrity

import (
	"errors"

	"better-food-logs/core/logger"
	"better-food-logs/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/integrity", h.HandleIntegrityCheck)
	app.Get("/integrity/local", h.HandleLocalCheck)
	app.Get("/integrity/server", h.HandleServerCheck)
	app.Get("/integrity/catalog", h.HandleCatalogCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Probes the local backend, validates the remote schema and looks for missing starter foods.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	report["local"] = h.service.CheckLocal(ctx)

	if srv, err := h.service.CheckServer(); err != nil {
		report["server"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["server"] = srv
	}

	if cat, err := h.service.CheckCatalog(ctx); err != nil {
		report["catalog"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["catalog"] = cat
	}

	return c.JSON(report)
}

// HandleLocalCheck probes the local backend.
// @Summary Check Local Store
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.LocalReport
// @Failure 503 {object} checks.LocalReport "Backend unreachable"
// @Router /integrity/local [get]
func (h *Handler) HandleLocalCheck(c *fiber.Ctx) error {
	report := h.service.CheckLocal(c.Context())
	if report.Status != "ok" {
		logger.WithRayID(h.service.logger, c).Error("Local store check failed", zap.String("error", report.Error))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleServerCheck validates the remote schema.
// @Summary Check Remote Schema
// @Description Compares the foods and food_logs tables with the columns the application uses.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ServerReport
// @Failure 404 {object} map[string]string "No remote database"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckServer()
	if err != nil {
		return h.fail(c, "Server check failed", err)
	}
	return c.JSON(report)
}

// HandleCatalogCheck checks and optionally fixes the remote starter foods.
// @Summary Check Starter Foods
// @Description Lists starter foods missing from the remote foods table. Optionally inserts them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Insert missing starter foods"
// @Success 200 {object} map[string]interface{} "Catalog Report"
// @Failure 404 {object} map[string]string "No remote database"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	report, err := h.service.CheckCatalog(c.Context())
	if err != nil {
		return h.fail(c, "Catalog check failed", err)
	}

	if len(report.MissingStarter) > 0 {
		l.Warn("Missing starter foods detected", zap.Strings("missing", report.MissingStarter))

		if fix {
			n, err := h.service.FixCatalog(c.Context(), report.MissingStarter)
			if err != nil {
				l.Error("Failed to insert starter foods", zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix catalog",
					"details": err.Error(),
					"missing": report.MissingStarter,
				})
			}
			return c.JSON(fiber.Map{
				"status":   "fixed",
				"fixed":    report.MissingStarter,
				"inserted": n,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"report": report,
	})
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrRemoteDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
