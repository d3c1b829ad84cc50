package api

import (
	"net/http"

	"github.com/bitswalk/ems/src/common/errors"
	"github.com/bitswalk/ems/src/emsd/auth"
	"github.com/bitswalk/ems/src/emsd/db"
	"github.com/gin-gonic/gin"
)

// handleCreateEmployee stores a new employee record linked to the user in the path
func (a *API) handleCreateEmployee(c *gin.Context) {
	userID := c.Param("user_id")

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrMissingRequiredField.WithMessage("Name, email, position, and salary are required.").ToResponse())
		return
	}

	if err := validateEmployeeFields(req.Name, req.Email, req.Position, req.Salary); err != nil {
		fail(c, err)
		return
	}

	emp := db.NewEmployee(userID, req.Name, req.Email, req.Position, req.Salary)
	if err := a.employeeRepo.Create(emp); err != nil {
		fail(c, err)
		return
	}

	if log != nil {
		log.Info("Employee created", "employee_id", emp.ID, "owner_id", userID)
	}

	ok(c, http.StatusOK, "Employee details saved successfully.", emp)
}

// handleGetAllEmployees returns every employee record
func (a *API) handleGetAllEmployees(c *gin.Context) {
	employees, err := a.employeeRepo.List()
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, "All employee data fetched successfully.", employees)
}

// handleUpdateEmployee applies the provided fields to the employee in the path.
// The write is keyed by the record's ID, so updating the email cannot orphan
// the row mid-request.
func (a *API) handleUpdateEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrInvalidJSON.ToResponse())
		return
	}

	emp, err := a.employeeRepo.GetByID(employeeID)
	if err != nil {
		fail(c, err)
		return
	}

	if req.Name != nil {
		if err := auth.ValidateName(*req.Name); err != nil {
			fail(c, err)
			return
		}
		emp.Name = *req.Name
	}
	if req.Email != nil {
		if err := auth.ValidateEmail(*req.Email); err != nil {
			fail(c, err)
			return
		}
		emp.Email = *req.Email
	}
	if req.Position != nil {
		if err := validatePosition(*req.Position); err != nil {
			fail(c, err)
			return
		}
		emp.Position = *req.Position
	}
	if req.Salary != nil {
		if err := validateSalary(*req.Salary); err != nil {
			fail(c, err)
			return
		}
		emp.Salary = *req.Salary
	}

	if err := a.employeeRepo.Update(emp); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, "Employee data updated successfully.", emp)
}

// handleDeleteEmployee removes the employee record in the path
func (a *API) handleDeleteEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")

	if err := a.employeeRepo.Delete(employeeID); err != nil {
		fail(c, err)
		return
	}

	if log != nil {
		log.Info("Employee deleted", "employee_id", employeeID)
	}

	okNoData(c, "Employee data deleted successfully.")
}
