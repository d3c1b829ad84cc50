package auth

import (
	"database/sql"
	"testing"

	"github.com/bitswalk/ems/src/common/errors"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Use shared cache mode for in-memory database to allow concurrent access
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared&_busy_timeout=5000")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Set connection pool settings for concurrent access
	db.SetMaxOpenConns(1) // SQLite only supports one writer at a time

	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		position TEXT NOT NULL,
		salary INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	`

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}

func TestCreateUser_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	user := NewUser("Alice Doe", "alice@example.com", "hashedpass", string(RoleUser))
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	got, err := repo.GetUserByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("failed to get user by email: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected id %s, got %s", user.ID, got.ID)
	}
	if got.Role != "user" {
		t.Errorf("expected role user, got %s", got.Role)
	}

	byID, err := repo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("failed to get user by id: %v", err)
	}
	if byID.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, byID.Email)
	}
}

func TestCreateUser_EmailUniqueness(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	user1 := NewUser("First", "same@example.com", "hashedpass", string(RoleUser))
	if err := repo.CreateUser(user1); err != nil {
		t.Fatalf("failed to create user1: %v", err)
	}

	// Try to create user with same email - should fail
	user2 := NewUser("Second", "same@example.com", "hashedpass", string(RoleUser))
	err := repo.CreateUser(user2)
	if !errors.Is(err, errors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got: %v", err)
	}

	// The failed create must not leave a second row behind
	count, err := repo.CountUsers()
	if err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	_, err := repo.GetUserByEmail("nobody@example.com")
	if !errors.Is(err, errors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	users, err := repo.ListUsers()
	if err != nil {
		t.Fatalf("failed to list users: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty list, got %d users", len(users))
	}

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := repo.CreateUser(NewUser("User", email, "hashedpass", string(RoleUser))); err != nil {
			t.Fatalf("failed to create %s: %v", email, err)
		}
	}

	users, err = repo.ListUsers()
	if err != nil {
		t.Fatalf("failed to list users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	user := NewUser("Bob", "bob@example.com", "hashedpass", string(RoleAdmin))
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if err := repo.DeleteUser(user.ID); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	_, err := repo.GetUserByID(user.ID)
	if !errors.Is(err, errors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	err := repo.DeleteUser("no-such-id")
	if !errors.Is(err, errors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestDeleteUser_EmployeesSurvive(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	user := NewUser("Creator", "creator@example.com", "hashedpass", string(RoleUser))
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	_, err := db.Exec(`
		INSERT INTO employees (id, user_id, name, email, position, salary)
		VALUES ('emp-1', ?, 'Worker', 'worker@example.com', 'Engineer', 50000)
	`, user.ID)
	if err != nil {
		t.Fatalf("failed to insert employee: %v", err)
	}

	// Only the user row goes; the employee roster is global and keeps
	// rows created by deleted accounts
	if err := repo.DeleteUser(user.ID); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		t.Fatalf("failed to count employees: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected employee row to survive its creator's deletion, got %d rows", count)
	}
}
