package auth

import (
	"net/http"
	"strings"

	"github.com/bitswalk/ems/src/common/errors"
	"github.com/bitswalk/ems/src/common/logs"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Package-level logger, must be initialized via SetLogger
var log *logs.Logger

// SetLogger sets the package-level logger
func SetLogger(l *logs.Logger) {
	log = l
}

// Handler handles authentication HTTP requests
type Handler struct {
	repo       *Repository
	jwtService *JWTService
}

// NewHandler creates a new auth handler
func NewHandler(repo *Repository, jwtService *JWTService) *Handler {
	return &Handler{
		repo:       repo,
		jwtService: jwtService,
	}
}

// HandleRegister creates a new user account with the provided credentials.
// New accounts always get the "user" role; admins come in through the
// admin endpoint.
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrMissingRequiredField.WithMessage("Name, email, and password are required.").ToResponse())
		return
	}

	if err := ValidateCredentials(req.Name, req.Email, req.Password); err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}

	user := NewUser(req.Name, req.Email, string(passwordHash), string(RoleUser))
	if err := h.repo.CreateUser(user); err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	if log != nil {
		log.Info("User registered", "user_id", user.ID, "email", user.Email)
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  1,
		"message": "User Created Successfully.",
		"data":    user,
	})
}

// HandleLogin authenticates a user with email and password and issues a
// one-hour access token. No session state is kept on the server.
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrMissingRequiredField.WithMessage("Email and password are required.").ToResponse())
		return
	}

	user, err := h.repo.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, errors.ErrPasswordMismatch.ToResponse())
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}

	if log != nil {
		log.Info("User logged in", "user_id", user.ID, "email", user.Email)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  1,
		"message": "User Logged in Successfully.",
		"data": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"role":        user.Role,
			"accessToken": token,
		},
	})
}

// ExtractTokenFromRequest extracts the bearer token from request headers
func ExtractTokenFromRequest(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return token
	}
	return ""
}
