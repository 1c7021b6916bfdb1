// Package database handles the optional database connection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The connection backs the
// operation journal; when it is disabled or unreachable the application keeps
// serving storage requests without a journal.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
