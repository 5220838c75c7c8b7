// Package database opens the catalog database that can serve as a row source
// for the batch loader.
//
// It provides a thin wrapper around GORM that configures either a MySQL
// connection (the cataloging system's export database) or a SQLite file
// (local snapshots and tests) from the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("failed to connect to database: %w", err)
//	}
//	rows, err := db.WithContext(ctx).Raw(cfg.Batch.CatalogQuery).Rows()
package database
