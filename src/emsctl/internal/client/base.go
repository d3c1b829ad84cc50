package client

import "context"

// HealthResponse matches the server's /health response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// VersionResponse matches the server's /version response
type VersionResponse struct {
	Version        string `json:"version"`
	ReleaseName    string `json:"release_name"`
	ReleaseVersion string `json:"release_version"`
	BuildDate      string `json:"build_date"`
	GitCommit      string `json:"git_commit"`
	GoVersion      string `json:"go_version"`
}

// Health checks the health status of the server
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.GetRaw(ctx, "/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Version fetches the server version information
func (c *Client) Version(ctx context.Context) (*VersionResponse, error) {
	var resp VersionResponse
	if err := c.GetRaw(ctx, "/version", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
