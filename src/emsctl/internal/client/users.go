package client

import "context"

// UserSummary is the reduced user view returned by the single-user lookup
type UserSummary struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateAdminRequest is the request body for creating an admin account
type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateAdmin creates a user account with the given role
func (c *Client) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*User, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	var user User
	if err := c.Post(ctx, "/api/createAdmin", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every user account
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.Get(ctx, "/api/getAllUsers", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns the reduced view of a single user
func (c *Client) GetUser(ctx context.Context, userID string) (*UserSummary, error) {
	var summary UserSummary
	if err := c.Get(ctx, "/api/getUser/"+userID, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// DeleteAdmin removes a user account
func (c *Client) DeleteAdmin(ctx context.Context, userID string) error {
	return c.Delete(ctx, "/api/deleteAdmin/"+userID, nil)
}
