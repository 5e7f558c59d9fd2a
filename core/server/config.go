package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// JWTSecret is the HMAC secret used to verify bearer tokens issued by the
	// authentication provider. Empty disables authenticated sessions.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// Timezone is the IANA zone used to cut calendar days for summaries.
	Timezone string `mapstructure:"timezone" default:"UTC"`
	// DeviceHeader names the request header carrying the local namespace.
	DeviceHeader string `mapstructure:"device_header" default:"X-Device-ID"`
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AuthEnabled reports whether bearer tokens can be verified.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}
