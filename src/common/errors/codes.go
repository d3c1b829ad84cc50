package errors

import "net/http"

// Common error codes used across domains
const (
	CodeNotFound       Code = "not_found"
	CodeAlreadyExists  Code = "already_exists"
	CodeInvalidRequest Code = "invalid_request"
	CodeUnauthorized   Code = "unauthorized"
	CodeConflict       Code = "conflict"
	CodeInternal       Code = "internal_error"
	CodeRateLimited    Code = "rate_limited"
)

// ============================================================================
// Authentication Errors
// ============================================================================

var (
	// ErrPasswordMismatch is returned when the supplied password does not
	// match the stored hash
	ErrPasswordMismatch = New(DomainAuth, "password_mismatch", http.StatusUnauthorized,
		"Password does not match.")

	// ErrTokenExpired is returned when a JWT token has expired
	ErrTokenExpired = New(DomainAuth, "token_expired", http.StatusUnauthorized,
		"Token has expired")

	// ErrTokenInvalid is returned when a JWT token is malformed or invalid
	ErrTokenInvalid = New(DomainAuth, "token_invalid", http.StatusUnauthorized,
		"Invalid token")

	// ErrNoToken is returned when no authentication token is provided
	ErrNoToken = New(DomainAuth, "no_token", http.StatusUnauthorized,
		"No authentication token provided")
)

// ============================================================================
// User Errors
// ============================================================================

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = New(DomainUser, CodeNotFound, http.StatusNotFound,
		"User Not Found.")

	// ErrUserAlreadyExists is returned when trying to create a user that already exists
	ErrUserAlreadyExists = New(DomainUser, CodeAlreadyExists, http.StatusConflict,
		"User already exists.")

	// ErrEmailAlreadyExists is returned when the email is already registered
	ErrEmailAlreadyExists = New(DomainUser, "email_exists", http.StatusConflict,
		"User already Exists. So, Please login with this email id.")
)

// ============================================================================
// Employee Errors
// ============================================================================

var (
	// ErrEmployeeNotFound is returned when an employee record cannot be found
	ErrEmployeeNotFound = New(DomainEmployee, CodeNotFound, http.StatusNotFound,
		"Employee not found.")

	// ErrEmployeeEmailExists is returned when an employee record already uses the email
	ErrEmployeeEmailExists = New(DomainEmployee, "email_exists", http.StatusConflict,
		"Already created employee data by using this email id.")
)

// ============================================================================
// Database Errors
// ============================================================================

var (
	// ErrDatabaseQuery is returned when a database query fails
	ErrDatabaseQuery = New(DomainDatabase, "query_failed", http.StatusInternalServerError,
		"Database query failed")

	// ErrDatabaseTransaction is returned when a database transaction fails
	ErrDatabaseTransaction = New(DomainDatabase, "transaction_failed", http.StatusInternalServerError,
		"Database transaction failed")
)

// ============================================================================
// Validation Errors
// ============================================================================

var (
	// ErrValidationFailed is returned when request validation fails
	ErrValidationFailed = New(DomainValidation, "validation_failed", http.StatusBadRequest,
		"Validation failed")

	// ErrMissingRequiredField is returned when a required field is missing
	ErrMissingRequiredField = New(DomainValidation, "missing_field", http.StatusBadRequest,
		"Missing required field")

	// ErrInvalidJSON is returned when JSON parsing fails
	ErrInvalidJSON = New(DomainValidation, "invalid_json", http.StatusBadRequest,
		"Invalid JSON")
)

// ============================================================================
// Internal Errors
// ============================================================================

var (
	// ErrInternal is a generic internal server error
	ErrInternal = New(DomainInternal, CodeInternal, http.StatusInternalServerError,
		"Internal server error.")

	// ErrRateLimited is returned when a client exceeds the request rate limit
	ErrRateLimited = New(DomainInternal, CodeRateLimited, http.StatusTooManyRequests,
		"Too many requests, slow down")
)
