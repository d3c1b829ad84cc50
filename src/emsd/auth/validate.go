package auth

import (
	"regexp"
	"strings"

	"github.com/bitswalk/ems/src/common/errors"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const passwordSpecials = "@$!%*?&"

// ValidateName checks the display name length bounds shared by users and employees
func ValidateName(name string) error {
	if len(name) < 2 || len(name) > 50 {
		return errors.ErrValidationFailed.WithMessage("Name must be between 2 and 50 characters.")
	}
	return nil
}

// ValidateEmail checks the email address format
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.ErrValidationFailed.WithMessage("Invalid email address.")
	}
	return nil
}

// ValidatePassword enforces the password policy: at least 8 characters with
// an uppercase letter, a digit and a special character, drawn only from
// letters, digits and the allowed specials.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.ErrValidationFailed.WithMessage("Password must be at least 8 characters.")
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			// allowed, carries no requirement
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return errors.ErrValidationFailed.WithMessage("Password contains an unsupported character.")
		}
	}

	if !hasUpper || !hasDigit || !hasSpecial {
		return errors.ErrValidationFailed.WithMessage(
			"Password must contain an uppercase letter, a number and a special character.")
	}

	return nil
}

// ValidateCredentials checks a full registration payload
func ValidateCredentials(name, email, password string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
