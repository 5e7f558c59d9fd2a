// Package database handles remote store connections and schema inspection.
//
// Connect wraps GORM and selects the dialector from Config.Driver: postgres
// (the default, matching a hosted Postgres backend), mysql, or sqlite for local
// development and tests. Every connection is verified with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let callers confirm the foods and
// food_logs tables carry the columns the shape conversion relies on.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "food_logs", []string{"food_id"})
package database
