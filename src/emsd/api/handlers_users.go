package api

import (
	"net/http"

	"github.com/bitswalk/ems/src/common/errors"
	"github.com/bitswalk/ems/src/emsd/auth"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// handleCreateAdmin creates a user account with a caller-supplied role.
// The role value is stored as given; the API does not restrict it to "admin".
func (a *API) handleCreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrMissingRequiredField.WithMessage("Name, email, password, and role are required.").ToResponse())
		return
	}

	if err := auth.ValidateCredentials(req.Name, req.Email, req.Password); err != nil {
		fail(c, err)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}

	user := auth.NewUser(req.Name, req.Email, string(passwordHash), req.Role)
	if err := a.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, errors.ErrEmailAlreadyExists) {
			fail(c, errors.ErrUserAlreadyExists)
			return
		}
		fail(c, err)
		return
	}

	if log != nil {
		log.Info("Admin account created", "user_id", user.ID, "role", user.Role)
	}

	ok(c, http.StatusOK, "Admin details saved successfully.", user)
}

// handleGetAllUsers returns every user account. Password hashes never
// serialize because of the model's JSON tags.
func (a *API) handleGetAllUsers(c *gin.Context) {
	users, err := a.userRepo.ListUsers()
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, "All user data fetched successfully.", users)
}

// handleGetUser returns a reduced view of the user in the path
func (a *API) handleGetUser(c *gin.Context) {
	userID := c.Param("user_id")

	user, err := a.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, errors.ErrUserNotFound) {
			fail(c, errors.ErrUserNotFound.WithMessage("User not found."))
			return
		}
		fail(c, err)
		return
	}

	summary := UserSummary{
		ID:    user.ID,
		Role:  user.Role,
		Email: user.Email,
		Name:  user.Name,
	}

	ok(c, http.StatusOK, "user fetched successfully.", summary)
}

// handleDeleteAdmin removes the user account in the path
func (a *API) handleDeleteAdmin(c *gin.Context) {
	userID := c.Param("user_id")

	if err := a.userRepo.DeleteUser(userID); err != nil {
		fail(c, err)
		return
	}

	if log != nil {
		log.Info("User deleted", "user_id", userID)
	}

	okNoData(c, "User data deleted successfully.")
}
