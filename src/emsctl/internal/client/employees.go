package client

import (
	"context"
	"fmt"
)

// Employee represents an employee record as returned by the server
type Employee struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Position  string `json:"position"`
	Salary    int64  `json:"salary"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateEmployeeRequest is the request body for creating an employee record
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Salary   int64  `json:"salary"`
}

// UpdateEmployeeRequest carries the fields to change; nil fields are left untouched
type UpdateEmployeeRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Position *string `json:"position,omitempty"`
	Salary   *int64  `json:"salary,omitempty"`
}

// CreateEmployee stores a new employee record owned by the given user
func (c *Client) CreateEmployee(ctx context.Context, ownerID string, req CreateEmployeeRequest) (*Employee, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := ValidatePosition(req.Position); err != nil {
		return nil, err
	}
	if err := ValidateSalary(req.Salary); err != nil {
		return nil, err
	}

	var emp Employee
	if err := c.Post(ctx, "/api/createEmployee/"+ownerID, req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// ListEmployees returns every employee record
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := c.Get(ctx, "/api/getAllEmployees", &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// UpdateEmployee applies the provided fields to an employee record
func (c *Client) UpdateEmployee(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (*Employee, error) {
	if req.Name != nil {
		if err := ValidateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := ValidateEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Position != nil {
		if err := ValidatePosition(*req.Position); err != nil {
			return nil, err
		}
	}
	if req.Salary != nil {
		if err := ValidateSalary(*req.Salary); err != nil {
			return nil, err
		}
	}

	var emp Employee
	if err := c.Put(ctx, "/api/updateEmployee/"+employeeID, req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// DeleteEmployee removes an employee record
func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) error {
	return c.Delete(ctx, "/api/deleteEmployee/"+employeeID, nil)
}

// FormatSalary renders a salary for table output
func FormatSalary(salary int64) string {
	return fmt.Sprintf("%d", salary)
}
