// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (tests, single-node installs) connections from the application's configuration.
//
// # Connect
//
// Connect opens and pings the configured database. The handle is created once at
// process start and passed to the features that need it; there is no package-level
// connection or password cache.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The integrity
// feature uses it to verify that the live schema still carries every column the
// room and upload models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "uploads")
package database
