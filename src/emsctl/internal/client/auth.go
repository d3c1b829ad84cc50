package client

import "context"

// User represents a user account as returned by the server
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// LoginResult holds the user identity and access token returned by login
type LoginResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// RegisterRequest is the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	req := RegisterRequest{Name: name, Email: email, Password: password}
	var user User
	if err := c.Post(ctx, "/api/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates with the server and returns the user and access token
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req := LoginRequest{Email: email, Password: password}
	var result LoginResult
	if err := c.Post(ctx, "/api/login", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
