package api

import (
	"github.com/bitswalk/ems/src/common/errors"
	"github.com/bitswalk/ems/src/emsd/auth"
)

// validatePosition checks the job title length bounds
func validatePosition(position string) error {
	if len(position) < 2 || len(position) > 50 {
		return errors.ErrValidationFailed.WithMessage("Position must be between 2 and 50 characters.")
	}
	return nil
}

// validateSalary rejects zero and negative salaries
func validateSalary(salary int64) error {
	if salary <= 0 {
		return errors.ErrValidationFailed.WithMessage("Salary must be a positive number.")
	}
	return nil
}

// validateEmployeeFields checks a full employee creation payload
func validateEmployeeFields(name, email, position string, salary int64) error {
	if err := auth.ValidateName(name); err != nil {
		return err
	}
	if err := auth.ValidateEmail(email); err != nil {
		return err
	}
	if err := validatePosition(position); err != nil {
		return err
	}
	return validateSalary(salary)
}
