// Package integrity provides system health checks.
//
// Unlike the syncer package, which repairs a user's data, this package
// validates the infrastructure the service runs on.
//
// # Checks Provided
//
//   - Local: Writes, reads back and deletes a probe value in the local store backend.
//   - Server: Validates that the remote foods and food_logs tables carry the columns and types of the row models.
//   - Catalog: Lists starter foods missing from the remote foods table.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/local : Runs the local backend probe.
//   - GET /integrity/server : Runs the remote schema check.
//   - GET /integrity/catalog : Runs the catalog check (supports ?fix=true).
package integrity
