package main

import (
	"log"

	"gorm.io/gorm"

	"pehlione.com/catalogadmin/internal/config"
	"pehlione.com/catalogadmin/internal/tokenstore"
)

// Creates the client state table for TOKEN_STORE=mysql or sqlite.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var db *gorm.DB
	switch cfg.TokenStore {
	case "mysql":
		db, err = tokenstore.OpenMySQL(cfg.DBDSN)
	case "sqlite":
		db, err = tokenstore.OpenSQLite(cfg.SQLitePath)
	default:
		log.Fatalf("TOKEN_STORE=%s keeps tokens in a file; nothing to create", cfg.TokenStore)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := tokenstore.Migrate(db); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	log.Printf("Table %s is ready (%s)", tokenstore.Entry{}.TableName(), cfg.TokenStore)
}
