package foodlog

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"better-food-logs/core/loader"
	"better-food-logs/core/middleware/auth"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/nutrition"
	"better-food-logs/feature/foodlog/remote/remotetest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-secret"

func setupTestApp(t *testing.T, svc *Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(auth.New(auth.Config{Secret: testSecret}))

	mgr := loader.NewManager()
	mgr.Register(NewFeature(svc, ""))
	loaded, err := mgr.LoadAll(app)
	require.NoError(t, err)
	require.Equal(t, []string{"foodlog"}, loaded)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Device-ID", "tablet")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestHandler_AnonymousFlow(t *testing.T) {
	svc, _ := newService(t, nil, nil)
	app := setupTestApp(t, svc)

	status, raw := do(t, app, "GET", "/foods", "", "")
	require.Equal(t, fiber.StatusOK, status)
	var foods []models.Food
	require.NoError(t, json.Unmarshal(raw, &foods))
	require.NotEmpty(t, foods)

	status, raw = do(t, app, "POST", "/foods", `{"name":"Oat Bar","serving_description":"1 bar","serving_mass_g":45,"calories":190}`, "")
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var created models.Food
	require.NoError(t, json.Unmarshal(raw, &created))

	status, _ = do(t, app, "POST", "/foods", `{"name":"oat bar","serving_description":"1 bar","serving_mass_g":45,"calories":190}`, "")
	assert.Equal(t, fiber.StatusConflict, status)

	status, raw = do(t, app, "POST", "/foods", `{"name":"Oat Bar Deluxe","serving_description":"1 bar","calories":-1}`, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	var invalid struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(raw, &invalid))
	assert.Contains(t, invalid.Errors, "Calories cannot be negative")
	assert.Contains(t, invalid.Errors, "Either serving mass (grams) or volume (ml) must be provided")

	status, _ = do(t, app, "POST", "/foods", `{"name":`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, "POST", "/logs", `{"food_id":"missing","servings_consumed":1}`, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = do(t, app, "POST", "/logs", `{"servings_consumed":1}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, raw = do(t, app, "POST", "/logs", `{"food_id":"`+created.ID+`","servings_consumed":2}`, "")
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var log models.FoodLog
	require.NoError(t, json.Unmarshal(raw, &log))
	assert.Equal(t, "Oat Bar", log.Food.Name)

	status, _ = do(t, app, "PATCH", "/logs/"+log.ID, `{"servings_consumed":0}`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	status, _ = do(t, app, "PATCH", "/logs/"+log.ID, `{"servings_consumed":1.5}`, "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, raw = do(t, app, "GET", "/summary/today", "", "")
	require.Equal(t, fiber.StatusOK, status)
	var today models.NutritionSummary
	require.NoError(t, json.Unmarshal(raw, &today))
	assert.Equal(t, 285.0, today.TotalCalories)

	status, raw = do(t, app, "GET", "/summary/period?days=3", "", "")
	require.Equal(t, fiber.StatusOK, status)
	var report nutrition.PeriodReport
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Len(t, report.Daily, 3)
	assert.Equal(t, 1, report.Meals)

	status, _ = do(t, app, "GET", "/summary/period?days=week", "", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, "GET", "/summary/period?days=400", "", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, "DELETE", "/logs/"+log.ID, "", "")
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = do(t, app, "DELETE", "/logs/"+log.ID, "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandler_SignedInUsesRemote(t *testing.T) {
	store, _ := remotetest.NewStore(t)
	svc, locals := newService(t, store, nil)
	app := setupTestApp(t, svc)

	token, err := auth.Sign(testSecret, auth.Identity{UserID: "user-7", Email: "kim@example.com"}, time.Hour)
	require.NoError(t, err)

	status, raw := do(t, app, "POST", "/foods", `{"name":"Rice Cake","serving_description":"1 cake","serving_mass_g":9,"calories":35}`, token)
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	var created models.Food
	require.NoError(t, json.Unmarshal(raw, &created))

	status, _ = do(t, app, "POST", "/logs", `{"food_id":"`+created.ID+`","servings_consumed":3}`, token)
	require.Equal(t, fiber.StatusCreated, status)

	status, raw = do(t, app, "GET", "/logs", "", token)
	require.Equal(t, fiber.StatusOK, status)
	var logs []models.FoodLog
	require.NoError(t, json.Unmarshal(raw, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "user-7", logs[0].UserID)

	status, raw = do(t, app, "GET", "/logs", "", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw), "anonymous callers see only the device's local logs")

	localLogs, err := locals.For("tablet").FoodLogs(t.Context())
	require.NoError(t, err)
	assert.Empty(t, localLogs)

	status, _ = do(t, app, "GET", "/logs", "", "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestSessionFromCtx_DeviceClaimOverridesHeader(t *testing.T) {
	app := fiber.New()
	app.Use(auth.New(auth.Config{Secret: testSecret}))
	app.Get("/session", func(c *fiber.Ctx) error {
		sess := SessionFromCtx(c, "")
		return c.SendString(sess.UserID + "|" + sess.DeviceID)
	})

	bound, err := auth.Sign(testSecret, auth.Identity{UserID: "user-7", DeviceID: "phone"}, time.Hour)
	require.NoError(t, err)
	unbound, err := auth.Sign(testSecret, auth.Identity{UserID: "user-7"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"Anonymous", "", "|tablet"},
		{"Unbound token", unbound, "user-7|tablet"},
		{"Bound token", bound, "user-7|phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := do(t, app, "GET", "/session", "", tt.token)
			require.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, tt.want, string(raw))
		})
	}
}
