package foodlog

import (
	"better-food-logs/core/middleware/auth"
	"better-food-logs/feature/foodlog/models"

	"github.com/gofiber/fiber/v2"
)

// DefaultDeviceHeader names the device namespace of a request.
const DefaultDeviceHeader = "X-Device-ID"

// Session is the caller of an operation. An empty UserID means nobody is
// signed in and the device's local store is active.
type Session struct {
	UserID   string
	DeviceID string
}

// Authenticated reports whether a user is signed in.
func (s Session) Authenticated() bool {
	return s.UserID != "" && s.UserID != models.AnonymousUserID
}

// Owner returns the user id recorded on new logs.
func (s Session) Owner() string {
	if !s.Authenticated() {
		return models.AnonymousUserID
	}
	return s.UserID
}

// SessionFromCtx builds the session of a request from the verified identity
// and the device header. A token bound to a device overrides the header.
func SessionFromCtx(c *fiber.Ctx, deviceHeader string) Session {
	if deviceHeader == "" {
		deviceHeader = DefaultDeviceHeader
	}
	sess := Session{DeviceID: c.Get(deviceHeader)}
	if id := auth.FromCtx(c); id != nil {
		sess.UserID = id.UserID
		if id.DeviceID != "" {
			sess.DeviceID = id.DeviceID
		}
	}
	return sess
}
