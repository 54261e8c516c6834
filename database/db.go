package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect opens the key-value database. A Postgres DSN wins when set (hosted
// demo deployments); otherwise a local SQLite file plays the role of the
// browser's local storage.
func Connect(databaseURL, sqlitePath string) (*sql.DB, error) {
	driver, dsn := "sqlite3", sqlitePath
	if databaseURL != "" {
		driver, dsn = "postgres", databaseURL
	}
	if dsn == "" {
		return nil, fmt.Errorf("neither DATABASE_URL nor SQLITE_PATH is set")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if driver == "sqlite3" {
		// SQLite allows a single writer; serialize through one connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxIdleConns(0)
		db.SetMaxOpenConns(10)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Connected to %s key-value store", driver)
	return db, nil
}

// Migrate creates the key-value table. The statement is valid for both
// Postgres and SQLite.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_entries (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate kv_entries: %w", err)
	}
	return nil
}
