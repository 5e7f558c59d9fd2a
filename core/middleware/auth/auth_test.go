package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(New(Config{Secret: secret}))
	app.Get("/", func(c *fiber.Ctx) error {
		id := FromCtx(c)
		if id == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(id.UserID + "|" + id.DisplayName)
	})
	return app
}

func body(t *testing.T, app *fiber.App, header string) (int, string) {
	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	buf := make([]byte, 256)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestMiddleware(t *testing.T) {
	app := newApp()

	t.Run("Anonymous", func(t *testing.T) {
		status, text := body(t, app, "")
		assert.Equal(t, 200, status)
		assert.Equal(t, "anonymous", text)
	})

	t.Run("Valid token", func(t *testing.T) {
		token, err := Sign(secret, Identity{UserID: "user-1", Email: "ana@example.com", DisplayName: "Ana"}, time.Hour)
		require.NoError(t, err)

		status, text := body(t, app, "Bearer "+token)
		assert.Equal(t, 200, status)
		assert.Equal(t, "user-1|Ana", text)
	})

	t.Run("Display name from email", func(t *testing.T) {
		token, err := Sign(secret, Identity{UserID: "user-2", Email: "sam@example.com"}, time.Hour)
		require.NoError(t, err)

		_, text := body(t, app, "Bearer "+token)
		assert.Equal(t, "user-2|sam", text)
	})

	t.Run("Device claim", func(t *testing.T) {
		token, err := Sign(secret, Identity{UserID: "user-3", DeviceID: "tablet"}, time.Hour)
		require.NoError(t, err)

		id, err := Verify(secret, token)
		require.NoError(t, err)
		assert.Equal(t, "tablet", id.DeviceID)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, _ := Sign("other", Identity{UserID: "user-1"}, time.Hour)
		status, _ := body(t, app, "Bearer "+token)
		assert.Equal(t, 401, status)
	})

	t.Run("Expired", func(t *testing.T) {
		token, _ := Sign(secret, Identity{UserID: "user-1"}, -time.Minute)
		status, _ := body(t, app, "Bearer "+token)
		assert.Equal(t, 401, status)
	})

	t.Run("Not bearer", func(t *testing.T) {
		status, _ := body(t, app, "Basic abc")
		assert.Equal(t, 401, status)
	})
}

func TestVerify(t *testing.T) {
	_, err := Verify("", "anything")
	assert.ErrorIs(t, err, ErrNotConfigured)

	missingSub, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "x@y.z"}).SignedString([]byte(secret))
	_, err = Verify(secret, missingSub)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = Verify(secret, none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
