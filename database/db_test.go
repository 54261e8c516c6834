package database

import (
	"path/filepath"
	"testing"
)

func TestConnectSQLiteCreatesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	db, err := Connect("", path)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM kv_entries").Scan(&count); err != nil {
		t.Fatalf("query kv_entries: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d rows", count)
	}

	// Migrate is idempotent.
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestConnectRequiresDSN(t *testing.T) {
	if _, err := Connect("", ""); err == nil {
		t.Fatal("expected error without any DSN")
	}
}
