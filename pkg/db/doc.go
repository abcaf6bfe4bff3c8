// Package db opens the GORM connection used by the translation stores.
//
//	gormDB, err := db.Connect(db.Config{})
//
// The URL defaults to DATABASE_URL. Set TRANSLATABLE_LOG_LEVEL=debug to log
// every statement.
package db
