// Package config manages the on-disk session for emsctl.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitswalk/ems/src/common/paths"
)

const sessionFileName = "session.json"

// Session holds the authenticated session established by login.
// It is written on login, removed on logout, and read by every
// command that talks to a protected endpoint.
type Session struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	ServerURL   string `json:"server_url"`
}

func sessionFilePath() string {
	return paths.Expand("~/.emsctl/" + sessionFileName)
}

// SaveSession writes the session to disk with owner-only permissions
func SaveSession(s *Session) error {
	path := sessionFilePath()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// LoadSession reads the session from disk
func LoadSession() (*Session, error) {
	path := sessionFilePath()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	return &s, nil
}

// ClearSession removes the session file from disk
func ClearSession() error {
	path := sessionFilePath()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
