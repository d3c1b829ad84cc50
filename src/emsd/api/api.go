// Package api wires the HTTP routes of emsd. Handlers bind parameters,
// call one repository operation and wrap the outcome in the response
// envelope; business rules live in the repositories.
package api

import (
	"net/http"

	"github.com/bitswalk/ems/src/common/errors"
	"github.com/bitswalk/ems/src/common/logs"
	"github.com/bitswalk/ems/src/common/version"
	"github.com/bitswalk/ems/src/emsd/auth"
	"github.com/gin-gonic/gin"
)

// Package-level logger, must be initialized via SetLogger
var log *logs.Logger

// SetLogger sets the logger for the api package and the auth handlers
func SetLogger(l *logs.Logger) {
	log = l
	auth.SetLogger(l)
}

// VersionInfo holds the build version served by the version endpoint
var VersionInfo = version.New()

// SetVersionInfo sets the version info for the api package
func SetVersionInfo(v *version.Info) {
	VersionInfo = v
}

// New creates a new API instance
func New(cfg Config) *API {
	return &API{
		userRepo:     cfg.UserRepo,
		employeeRepo: cfg.EmployeeRepo,
		jwtService:   cfg.JWTService,
		authHandler:  auth.NewHandler(cfg.UserRepo, cfg.JWTService),
		rateLimiter:  NewRateLimiter(cfg.RateLimit),
	}
}

// Close releases background resources held by the API
func (a *API) Close() {
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
}

// ok writes a success envelope with a data payload
func ok(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"status":  1,
		"message": message,
		"data":    data,
	})
}

// okNoData writes a success envelope without a payload
func okNoData(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  1,
		"message": message,
	})
}

// fail writes the failure envelope for an error, using its mapped HTTP status
func fail(c *gin.Context, err error) {
	c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
}
