package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func newTestDatabase(t *testing.T, persistPath string, loadOnStart bool) *Database {
	t.Helper()
	database, err := New(Config{
		PersistPath: persistPath,
		LoadOnStart: loadOnStart,
	})
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	return database
}

func TestDatabase_SchemaCreated(t *testing.T) {
	database := newTestDatabase(t, "", false)
	defer database.Shutdown()

	for _, table := range []string{"users", "employees", "settings"} {
		var count int
		err := database.DB().QueryRow(`
			SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?
		`, table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to query sqlite_master: %v", err)
		}
		if count != 1 {
			t.Errorf("expected table %s to exist", table)
		}
	}
}

func TestDatabase_Settings(t *testing.T) {
	database := newTestDatabase(t, "", false)
	defer database.Shutdown()

	if _, err := database.GetSetting("missing"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows for missing key, got: %v", err)
	}

	if err := database.SetSetting("jwt_secret", "secret-1"); err != nil {
		t.Fatalf("failed to set setting: %v", err)
	}

	value, err := database.GetSetting("jwt_secret")
	if err != nil {
		t.Fatalf("failed to get setting: %v", err)
	}
	if value != "secret-1" {
		t.Errorf("expected secret-1, got %s", value)
	}

	// Upsert replaces the value
	if err := database.SetSetting("jwt_secret", "secret-2"); err != nil {
		t.Fatalf("failed to update setting: %v", err)
	}
	value, err = database.GetSetting("jwt_secret")
	if err != nil {
		t.Fatalf("failed to get setting: %v", err)
	}
	if value != "secret-2" {
		t.Errorf("expected secret-2, got %s", value)
	}
}

func TestDatabase_PersistAndReload(t *testing.T) {
	persistPath := filepath.Join(t.TempDir(), "emsd.db")

	database := newTestDatabase(t, persistPath, false)

	_, err := database.DB().Exec(`
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ('user-1', 'Alice', 'alice@example.com', 'hashedpass', 'user')
	`)
	if err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}
	_, err = database.DB().Exec(`
		INSERT INTO employees (id, user_id, name, email, position, salary)
		VALUES ('emp-1', 'user-1', 'Worker', 'worker@example.com', 'Engineer', 50000)
	`)
	if err != nil {
		t.Fatalf("failed to insert employee: %v", err)
	}
	if err := database.SetSetting("jwt_secret", "persisted-secret"); err != nil {
		t.Fatalf("failed to set setting: %v", err)
	}

	// Shutdown writes the snapshot to disk
	if err := database.Shutdown(); err != nil {
		t.Fatalf("failed to shutdown: %v", err)
	}

	// A fresh instance loading the snapshot sees all the data
	reloaded := newTestDatabase(t, persistPath, true)
	defer reloaded.Shutdown()

	var count int
	if err := reloaded.DB().QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 user after reload, got %d", count)
	}

	if err := reloaded.DB().QueryRow("SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		t.Fatalf("failed to count employees: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 employee after reload, got %d", count)
	}

	secret, err := reloaded.GetSetting("jwt_secret")
	if err != nil {
		t.Fatalf("failed to get setting after reload: %v", err)
	}
	if secret != "persisted-secret" {
		t.Errorf("expected persisted-secret, got %s", secret)
	}
}

func TestDatabase_ShutdownIdempotent(t *testing.T) {
	database := newTestDatabase(t, "", false)

	if err := database.Shutdown(); err != nil {
		t.Fatalf("first shutdown failed: %v", err)
	}
	// Second shutdown is a no-op
	if err := database.Shutdown(); err != nil {
		t.Fatalf("second shutdown failed: %v", err)
	}
}

func TestDatabase_SaveToDisk(t *testing.T) {
	persistPath := filepath.Join(t.TempDir(), "emsd.db")

	database := newTestDatabase(t, persistPath, false)
	defer database.Shutdown()

	if err := database.SaveToDisk(); err != nil {
		t.Fatalf("failed to save to disk: %v", err)
	}

	// The snapshot is a standalone SQLite file
	diskDB, err := sql.Open("sqlite3", persistPath)
	if err != nil {
		t.Fatalf("failed to open snapshot: %v", err)
	}
	defer diskDB.Close()

	var count int
	if err := diskDB.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='users'
	`).Scan(&count); err != nil {
		t.Fatalf("failed to query snapshot: %v", err)
	}
	if count != 1 {
		t.Error("expected users table in snapshot")
	}
}
