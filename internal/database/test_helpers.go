package database

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	db, err := NewDB(Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "geointel_test.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	return db, func() {
		db.Close()
	}
}
