package foodlog

import (
	"errors"

	"better-food-logs/core/logger"
	"better-food-logs/core/utils"
	"better-food-logs/feature/foodlog/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for foods, logs and summaries.
type Handler struct {
	service      *Service
	deviceHeader string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, deviceHeader string) *Handler {
	return &Handler{service: service, deviceHeader: deviceHeader}
}

// LogFoodRequest is the body of POST /logs.
type LogFoodRequest struct {
	FoodID           string  `json:"food_id"`
	ServingsConsumed float64 `json:"servings_consumed"`
}

// EditLogRequest is the body of PATCH /logs/{id}.
type EditLogRequest struct {
	ServingsConsumed float64 `json:"servings_consumed"`
}

// RegisterRoutes registers the food log routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/foods", h.HandleListFoods)
	app.Post("/foods", h.HandleCreateFood)

	app.Get("/logs", h.HandleListLogs)
	app.Post("/logs", h.HandleLogFood)
	app.Patch("/logs/:id", h.HandleEditLog)
	app.Delete("/logs/:id", h.HandleDeleteLog)

	summary := app.Group("/summary")
	summary.Get("/today", h.HandleTodaySummary)
	summary.Get("/period", h.HandlePeriodSummary)
}

func (h *Handler) session(c *fiber.Ctx) Session {
	return SessionFromCtx(c, h.deviceHeader)
}

// HandleListFoods returns the foods available to the caller.
// @Summary List Foods
// @Description Remote foods for signed-in users, otherwise the device's local foods.
// @Tags foods
// @Produce json
// @Param X-Device-ID header string false "Device namespace"
// @Success 200 {array} models.Food
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /foods [get]
func (h *Handler) HandleListFoods(c *fiber.Ctx) error {
	foods, err := h.service.LoadFoods(c.Context(), h.session(c))
	if err != nil {
		return h.fail(c, "Failed to load foods", err)
	}
	return c.JSON(foods)
}

// HandleCreateFood validates and stores a new food.
// @Summary Create Food
// @Description Cleans, validates and deduplicates a food before storing it.
// @Tags foods
// @Accept json
// @Produce json
// @Param food body validation.FoodInput true "Food"
// @Success 201 {object} models.Food
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 409 {object} map[string]string "Duplicate food"
// @Failure 422 {object} map[string]interface{} "Validation errors"
// @Router /foods [post]
func (h *Handler) HandleCreateFood(c *fiber.Ctx) error {
	var in validation.FoodInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	food, err := h.service.CreateFood(c.Context(), h.session(c), in)
	if err != nil {
		return h.fail(c, "Failed to create food", err)
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

// HandleListLogs returns the caller's logs, newest first.
// @Summary List Food Logs
// @Tags logs
// @Produce json
// @Success 200 {array} models.FoodLog
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /logs [get]
func (h *Handler) HandleListLogs(c *fiber.Ctx) error {
	logs, err := h.service.LoadFoodLogs(c.Context(), h.session(c))
	if err != nil {
		return h.fail(c, "Failed to load food logs", err)
	}
	return c.JSON(logs)
}

// HandleLogFood records a consumption event.
// @Summary Log Food
// @Tags logs
// @Accept json
// @Produce json
// @Param log body LogFoodRequest true "Food and servings"
// @Success 201 {object} models.FoodLog
// @Failure 400 {object} map[string]string "Invalid servings"
// @Failure 404 {object} map[string]string "Unknown food"
// @Router /logs [post]
func (h *Handler) HandleLogFood(c *fiber.Ctx) error {
	var req LogFoodRequest
	if err := c.BodyParser(&req); err != nil || req.FoodID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "food_id and servings_consumed are required"})
	}

	log, err := h.service.LogFood(c.Context(), h.session(c), req.FoodID, req.ServingsConsumed)
	if err != nil {
		return h.fail(c, "Failed to log food", err)
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

// HandleEditLog changes the servings of a log.
// @Summary Edit Food Log
// @Tags logs
// @Accept json
// @Param id path string true "Log ID"
// @Param body body EditLogRequest true "New servings"
// @Success 204
// @Failure 400 {object} map[string]string "Invalid servings"
// @Failure 404 {object} map[string]string "Unknown log"
// @Router /logs/{id} [patch]
func (h *Handler) HandleEditLog(c *fiber.Ctx) error {
	var req EditLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.EditLog(c.Context(), h.session(c), c.Params("id"), req.ServingsConsumed); err != nil {
		return h.fail(c, "Failed to edit food log", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteLog removes a log.
// @Summary Delete Food Log
// @Tags logs
// @Param id path string true "Log ID"
// @Success 204
// @Failure 404 {object} map[string]string "Unknown log"
// @Router /logs/{id} [delete]
func (h *Handler) HandleDeleteLog(c *fiber.Ctx) error {
	if err := h.service.DeleteLog(c.Context(), h.session(c), c.Params("id")); err != nil {
		return h.fail(c, "Failed to delete food log", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleTodaySummary totals today's logs.
// @Summary Today's Nutrition
// @Tags summary
// @Produce json
// @Success 200 {object} models.NutritionSummary
// @Router /summary/today [get]
func (h *Handler) HandleTodaySummary(c *fiber.Ctx) error {
	summary, err := h.service.TodaySummary(c.Context(), h.session(c))
	if err != nil {
		return h.fail(c, "Failed to summarize today", err)
	}
	return c.JSON(summary)
}

// HandlePeriodSummary reports on the last N days.
// @Summary Period Report
// @Tags summary
// @Produce json
// @Param days query int false "Number of days including today" default(7)
// @Success 200 {object} nutrition.PeriodReport
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /summary/period [get]
func (h *Handler) HandlePeriodSummary(c *fiber.Ctx) error {
	report, err := h.service.PeriodSummary(c.Context(), h.session(c), utils.ToInt(c.Query("days", "7")))
	if err != nil {
		return h.fail(c, "Failed to build period report", err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	var validationErr *ValidationError
	var duplicateErr *DuplicateError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"errors": validationErr.Errors,
		})
	case errors.As(err, &duplicateErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrFoodNotFound), errors.Is(err, ErrLogNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalidServings), errors.Is(err, ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
