package client

import (
	"errors"
	"regexp"
	"strings"
)

// Local field validation mirrors the server's rules so bad input fails
// before it goes over the wire.

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const passwordSpecials = "@$!%*?&"

// ValidateName checks the display name length bounds
func ValidateName(name string) error {
	if len(name) < 2 || len(name) > 50 {
		return errors.New("name must be between 2 and 50 characters")
	}
	return nil
}

// ValidateEmail checks the email address format
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the password policy
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return errors.New("password contains an unsupported character")
		}
	}

	if !hasUpper || !hasDigit || !hasSpecial {
		return errors.New("password must contain an uppercase letter, a number and a special character")
	}

	return nil
}

// ValidatePosition checks the job title length bounds
func ValidatePosition(position string) error {
	if len(position) < 2 || len(position) > 50 {
		return errors.New("position must be between 2 and 50 characters")
	}
	return nil
}

// ValidateSalary rejects zero and negative salaries
func ValidateSalary(salary int64) error {
	if salary <= 0 {
		return errors.New("salary must be a positive number")
	}
	return nil
}
