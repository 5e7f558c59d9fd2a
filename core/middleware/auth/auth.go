package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const localsKey = "identity"

var (
	ErrNotConfigured = errors.New("authentication is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// Config holds the middleware settings.
type Config struct {
	// Secret is the HS256 key shared with the authentication provider.
	Secret string
}

// Identity is the signed-in caller.
type Identity struct {
	UserID      string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	// DeviceID is set when the token is bound to one device.
	DeviceID string `json:"device_id,omitempty"`
}

// Claims mirrors the access tokens issued by the authentication provider.
type Claims struct {
	jwt.RegisteredClaims
	Email        string       `json:"email,omitempty"`
	DeviceID     string       `json:"device_id,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

// UserMetadata carries the profile fields set at sign-up.
type UserMetadata struct {
	FullName string `json:"full_name,omitempty"`
}

// New returns a middleware that resolves an optional bearer token. Requests
// without an Authorization header continue anonymously; a header that cannot
// be verified is rejected with 401.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization header must be a bearer token"})
		}

		id, err := Verify(cfg.Secret, strings.TrimSpace(token))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(localsKey, id)
		return c.Next()
	}
}

// FromCtx returns the caller's identity, or nil for anonymous requests.
func FromCtx(c *fiber.Ctx) *Identity {
	id, _ := c.Locals(localsKey).(*Identity)
	return id
}

// Verify parses and validates token with secret.
func Verify(secret, token string) (*Identity, error) {
	if secret == "" {
		return nil, ErrNotConfigured
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	name := claims.UserMetadata.FullName
	if name == "" {
		name, _, _ = strings.Cut(claims.Email, "@")
	}

	return &Identity{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: name,
		DeviceID:    claims.DeviceID,
	}, nil
}

// Sign issues a token for id that expires after ttl.
func Sign(secret string, id Identity, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNotConfigured
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:        id.Email,
		DeviceID:     id.DeviceID,
		UserMetadata: UserMetadata{FullName: id.DisplayName},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
