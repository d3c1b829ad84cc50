package db

import (
	"database/sql"
	"time"

	"github.com/bitswalk/ems/src/common/errors"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// Employee represents an employee record linked to the user who created it
type Employee struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	Salary    int64     `json:"salary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEmployee creates a new employee with a generated UUID
func NewEmployee(userID, name, email, position string, salary int64) *Employee {
	now := time.Now().UTC()
	return &Employee{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		Position:  position,
		Salary:    salary,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EmployeeRepository handles employee persistence
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// isUniqueViolation reports whether err is a SQLite unique constraint failure.
// Concurrent writers that lose the insert race land here instead of on the
// pre-check, so both paths must map to the same conflict error.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// Create persists a new employee after verifying the owning user exists
// and the email is not already used by another employee record.
func (r *EmployeeRepository) Create(emp *Employee) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.ErrDatabaseTransaction.WithCause(err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM users WHERE id = ?", emp.UserID).Scan(&count); err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}
	if count == 0 {
		return errors.ErrUserNotFound.WithMessage("User not found.")
	}

	if err := tx.QueryRow("SELECT COUNT(*) FROM employees WHERE email = ?", emp.Email).Scan(&count); err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}
	if count > 0 {
		return errors.ErrEmployeeEmailExists
	}

	_, err = tx.Exec(`
		INSERT INTO employees (id, user_id, name, email, position, salary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, emp.ID, emp.UserID, emp.Name, emp.Email, emp.Position, emp.Salary, emp.CreatedAt, emp.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrEmployeeEmailExists
		}
		return errors.ErrDatabaseQuery.WithCause(err)
	}

	if err := tx.Commit(); err != nil {
		return errors.ErrDatabaseTransaction.WithCause(err)
	}

	return nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id string) (*Employee, error) {
	emp := &Employee{}
	err := r.db.QueryRow(`
		SELECT id, user_id, name, email, position, salary, created_at, updated_at
		FROM employees
		WHERE id = ?
	`, id).Scan(&emp.ID, &emp.UserID, &emp.Name, &emp.Email, &emp.Position, &emp.Salary, &emp.CreatedAt, &emp.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	return emp, nil
}

// GetByEmail retrieves an employee by email
func (r *EmployeeRepository) GetByEmail(email string) (*Employee, error) {
	emp := &Employee{}
	err := r.db.QueryRow(`
		SELECT id, user_id, name, email, position, salary, created_at, updated_at
		FROM employees
		WHERE email = ?
	`, email).Scan(&emp.ID, &emp.UserID, &emp.Name, &emp.Email, &emp.Position, &emp.Salary, &emp.CreatedAt, &emp.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	return emp, nil
}

// List returns all employee records
func (r *EmployeeRepository) List() ([]*Employee, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, name, email, position, salary, created_at, updated_at
		FROM employees
		ORDER BY created_at
	`)
	if err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}
	defer rows.Close()

	employees := []*Employee{}
	for rows.Next() {
		emp := &Employee{}
		if err := rows.Scan(&emp.ID, &emp.UserID, &emp.Name, &emp.Email, &emp.Position, &emp.Salary, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, errors.ErrDatabaseQuery.WithCause(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseQuery.WithCause(err)
	}

	return employees, nil
}

// Update writes the employee's mutable fields, keyed by ID.
func (r *EmployeeRepository) Update(emp *Employee) error {
	emp.UpdatedAt = time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE employees
		SET name = ?, email = ?, position = ?, salary = ?, updated_at = ?
		WHERE id = ?
	`, emp.Name, emp.Email, emp.Position, emp.Salary, emp.UpdatedAt, emp.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrEmployeeEmailExists
		}
		return errors.ErrDatabaseQuery.WithCause(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}
	if affected == 0 {
		return errors.ErrEmployeeNotFound
	}

	return nil
}

// Delete removes an employee by ID
func (r *EmployeeRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseQuery.WithCause(err)
	}
	if affected == 0 {
		return errors.ErrEmployeeNotFound
	}

	return nil
}

// Count returns the total number of employee records
func (r *EmployeeRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		return 0, errors.ErrDatabaseQuery.WithCause(err)
	}
	return count, nil
}
