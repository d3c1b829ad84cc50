package api

import "github.com/gin-gonic/gin"

// RegisterRoutes configures all API routes on the given router.
// Everything under /api except register and login requires a valid
// bearer token.
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", a.handleHealth)
	router.GET("/version", a.handleVersion)

	api := router.Group("/api")
	{
		api.POST("/register", a.rateLimitAuth(), a.authHandler.HandleRegister)
		api.POST("/login", a.rateLimitAuth(), a.authHandler.HandleLogin)
	}

	protected := router.Group("/api")
	protected.Use(a.authRequired())
	{
		protected.POST("/createEmployee/:user_id", a.handleCreateEmployee)
		protected.POST("/createAdmin", a.handleCreateAdmin)
		protected.GET("/getAllUsers", a.handleGetAllUsers)
		protected.GET("/getAllEmployees", a.handleGetAllEmployees)
		protected.GET("/getUser/:user_id", a.handleGetUser)
		protected.PUT("/updateEmployee/:employee_id", a.handleUpdateEmployee)
		protected.DELETE("/deleteEmployee/:employee_id", a.handleDeleteEmployee)
		protected.DELETE("/deleteAdmin/:user_id", a.handleDeleteAdmin)
	}
}
