// Package config provides configuration management.
//
// Settings come from struct tag defaults, an optional .env file and the
// process environment, in increasing order of precedence. Nested keys map to
// upper-case environment names joined by underscores (database.query_timeout_seconds
// becomes DATABASE_QUERY_TIMEOUT_SECONDS).
//
// # Configuration Structure
//
//   - Server: port, session token secret, timezone, device header
//   - Log: level and format
//   - Database: remote store driver and connection details
//   - Local: local store backend (memory, object, redis)
//   - Storage: MinIO/S3 settings for the object backend
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
