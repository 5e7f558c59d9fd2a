// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the secret used to verify
// session tokens, the timezone used for daily summaries and the header that
// carries an anonymous device's namespace.
package server
