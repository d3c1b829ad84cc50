package core

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitswalk/ems/src/emsd/api"
	"github.com/bitswalk/ems/src/emsd/auth"
	"github.com/bitswalk/ems/src/emsd/db"
	"github.com/bitswalk/ems/src/emsd/security"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Server holds the HTTP server instance and configuration
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	database   *db.Database
	api        *api.API
}

// NewServer creates a new Server instance
func NewServer(database *db.Database) *Server {
	// Set Gin mode based on log level
	if viper.GetString("log.level") == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add CORS middleware
	router.Use(corsMiddleware(viper.GetString("server.cors_origin")))

	// Add logging middleware
	router.Use(ginLogger())

	// Initialize auth components
	userRepo := auth.NewRepository(database.DB())
	jwtCfg := auth.DefaultJWTConfig()
	if ttl := viper.GetInt("auth.token_ttl"); ttl > 0 {
		jwtCfg.TokenDuration = time.Duration(ttl) * time.Minute
	}

	// The signing secret lives in the settings table, which snapshots to a
	// plain SQLite file, so it goes through the encrypting store
	settings := auth.SettingsStore(database)
	if secrets, err := security.NewSecretManager(viper.GetString("security.key_path")); err != nil {
		log.Warn("Secret encryption unavailable, storing settings in plaintext", "error", err)
	} else {
		settings = security.NewEncryptedStore(database, secrets)
	}
	jwtService := auth.NewJWTService(jwtCfg, settings)

	employeeRepo := db.NewEmployeeRepository(database.DB())

	// Create API instance with all dependencies
	api.SetLogger(log)
	api.SetVersionInfo(VersionInfo)
	apiInstance := api.New(api.Config{
		UserRepo:     userRepo,
		EmployeeRepo: employeeRepo,
		JWTService:   jwtService,
		RateLimit: api.RateLimitConfig{
			Enabled:            viper.GetBool("security.rate_limit.enabled"),
			AuthRequestsPerMin: viper.GetInt("security.rate_limit.auth_per_min"),
		},
	})

	// Register all routes
	apiInstance.RegisterRoutes(router)

	return &Server{
		router:   router,
		database: database,
		api:      apiInstance,
	}
}

// Run starts the HTTP server and blocks until a shutdown signal or error
func (s *Server) Run() error {
	bind := viper.GetString("server.bind")
	port := viper.GetInt("server.port")
	addr := fmt.Sprintf("%s:%d", bind, port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting emsd server", "address", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Received signal, shutting down", "signal", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.api.Close()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// corsMiddleware returns a gin middleware that restricts cross-origin
// requests to the configured dashboard origin.
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && origin == allowedOrigin {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// ginLogger returns a gin middleware for logging requests
func ginLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		// Process request
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method

		if query != "" {
			path = path + "?" + query
		}

		log.Debug("HTTP request",
			"status", status,
			"method", method,
			"path", path,
			"latency", latency,
			"client_ip", c.ClientIP(),
		)
	}
}

// runServer is called by the root command to start the server
func runServer() error {
	log.Info("emsd starting",
		"version", VersionInfo.Version,
		"build_date", VersionInfo.BuildDate,
		"log_output", log.Output(),
	)

	// Initialize database
	dbPath := viper.GetString("database.path")
	log.Info("Initializing database", "persist_path", dbPath)

	database, err := db.New(db.Config{
		PersistPath: dbPath,
		LoadOnStart: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	server := NewServer(database)

	// Run server (blocks until shutdown signal)
	err = server.Run()

	// Ensure database is persisted on shutdown
	log.Info("Persisting database to disk")
	if dbErr := database.Shutdown(); dbErr != nil {
		log.Error("Failed to persist database", "error", dbErr)
		if err == nil {
			err = dbErr
		}
	} else {
		log.Info("Database persisted successfully")
	}

	return err
}
