package api

import (
	"net/http"
	"time"

	"github.com/bitswalk/ems/src/common/version"
	"github.com/gin-gonic/gin"
)

// handleHealth returns the current health status of the server
func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleVersion returns version and build information for the server
func (a *API) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":         VersionInfo.Version,
		"release_name":    VersionInfo.ReleaseName,
		"release_version": VersionInfo.ReleaseVersion,
		"build_date":      VersionInfo.BuildDate,
		"git_commit":      VersionInfo.GitCommit,
		"go_version":      version.GoVersion(),
	})
}
