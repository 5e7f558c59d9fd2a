package syncer

import (
	"errors"

	"better-food-logs/core/logger"
	"better-food-logs/feature/foodlog"
	"better-food-logs/feature/foodlog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for session transitions and consistency.
type Handler struct {
	service      *Service
	deviceHeader string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, deviceHeader string) *Handler {
	return &Handler{service: service, deviceHeader: deviceHeader}
}

// TransitionRequest is the body of POST /session/transition.
type TransitionRequest struct {
	Event TransitionKind `json:"event"`
}

// RefreshResponse is returned by POST /consistency/refresh.
type RefreshResponse struct {
	Result Result           `json:"result"`
	Logs   []models.FoodLog `json:"logs"`
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/session/transition", h.HandleTransition)

	app.Get("/consistency", h.HandleCheck)
	app.Post("/consistency/refresh", h.HandleRefresh)
}

// HandleTransition reacts to a sign-in or sign-out of the caller.
// @Summary Session Transition
// @Description signed_in syncs the device's local data to the user and repairs orphaned logs; signed_out reseeds local foods.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Device-ID header string false "Device namespace"
// @Param body body TransitionRequest true "Event"
// @Success 200 {object} Outcome
// @Failure 400 {object} map[string]string "Unknown event"
// @Failure 401 {object} map[string]string "Sign-in without a token"
// @Router /session/transition [post]
func (h *Handler) HandleTransition(c *fiber.Ctx) error {
	var req TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	sess := foodlog.SessionFromCtx(c, h.deviceHeader)
	out, err := h.service.HandleTransition(c.Context(), Transition{
		Kind:     req.Event,
		UserID:   sess.UserID,
		DeviceID: sess.DeviceID,
	})
	switch {
	case errors.Is(err, ErrUserRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUnknownTransition):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		logger.WithRayID(h.service.logger, c).Error("Session transition failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

// HandleCheck reports orphaned logs of the caller without deleting them.
// @Summary Consistency Check
// @Tags consistency
// @Produce json
// @Success 200 {object} Result
// @Failure 401 {object} map[string]string "Not signed in"
// @Router /consistency [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	sess := foodlog.SessionFromCtx(c, h.deviceHeader)
	if !sess.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrUserRequired.Error()})
	}
	return c.JSON(h.service.validator.ValidateWithOptions(c.Context(), sess.UserID, CheckOptions{DryRun: true}))
}

// HandleRefresh repairs orphaned logs of the caller and returns the logs.
// @Summary Consistency Refresh
// @Tags consistency
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 401 {object} map[string]string "Not signed in"
// @Router /consistency/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	sess := foodlog.SessionFromCtx(c, h.deviceHeader)
	if !sess.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrUserRequired.Error()})
	}
	logs, res := h.service.validator.Refresh(c.Context(), sess.UserID)
	return c.JSON(RefreshResponse{Result: res, Logs: logs})
}
