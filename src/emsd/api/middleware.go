package api

import (
	"net/http"

	"github.com/bitswalk/ems/src/common/errors"
	"github.com/bitswalk/ems/src/emsd/auth"
	"github.com/gin-gonic/gin"
)

// rateLimitAuth returns middleware that rate-limits the register and login
// endpoints per client IP.
func (a *API) rateLimitAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.rateLimiter == nil {
			c.Next()
			return
		}
		key := "ip:" + c.ClientIP()
		if !a.rateLimiter.Allow(key, a.rateLimiter.config.AuthRequestsPerMin) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errors.ErrRateLimited.ToResponse())
			return
		}
		c.Next()
	}
}

// getTokenClaims extracts and validates JWT claims from the request.
// Returns nil if no valid token is present.
func (a *API) getTokenClaims(c *gin.Context) *auth.TokenClaims {
	token := auth.ExtractTokenFromRequest(c)
	if token == "" {
		return nil
	}

	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	return claims
}

// authRequired is a middleware that requires a valid bearer token
func (a *API) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.getTokenClaims(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.ErrNoToken.WithMessage("Authentication required.").ToResponse())
			return
		}

		c.Next()
	}
}
