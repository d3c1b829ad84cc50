package api

import (
	"github.com/bitswalk/ems/src/emsd/auth"
	"github.com/bitswalk/ems/src/emsd/db"
)

// API holds the handler dependencies for all routes
type API struct {
	userRepo     *auth.Repository
	employeeRepo *db.EmployeeRepository
	jwtService   *auth.JWTService
	authHandler  *auth.Handler
	rateLimiter  *RateLimiter
}

// Config holds the dependencies needed to construct an API
type Config struct {
	UserRepo     *auth.Repository
	EmployeeRepo *db.EmployeeRepository
	JWTService   *auth.JWTService
	RateLimit    RateLimitConfig
}

// CreateEmployeeRequest is the request body for creating an employee record
type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Position string `json:"position" binding:"required"`
	Salary   int64  `json:"salary" binding:"required"`
}

// UpdateEmployeeRequest is the request body for updating an employee record.
// Fields are pointers so absent fields are left untouched.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Position *string `json:"position"`
	Salary   *int64  `json:"salary"`
}

// CreateAdminRequest is the request body for creating an admin account.
// The role is caller-supplied and stored as given.
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// UserSummary is the reduced user view returned by the single-user lookup
type UserSummary struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
