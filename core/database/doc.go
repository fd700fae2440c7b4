// Package database handles database connections, the shared entity base and
// schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local development and tests) connections from the application's configuration.
// SQLite connections always enable foreign keys so that owned children, such as a
// navigation item's dropdown, are removed by the database's cascade rules.
//
// # Model
//
// Every entity embeds Model: a string UUID surrogate id assigned on create plus
// createdAt/updatedAt. The Ordered and Active scopes implement the public read
// convention (isActive rows only, sorted by position).
//
// # Errors
//
// Connect enables GORM error translation, so unique-constraint violations surface
// as gorm.ErrDuplicatedKey on both drivers. Classify maps them onto the
// core/response taxonomy.
//
// # Schema Inspection
//
// CheckSchema compares model definitions with live tables; the migrate command uses
// it to report drift without changing anything.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	issues, err := database.CheckSchema(db, &stats.Stat{})
package database
