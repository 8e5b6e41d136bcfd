package main

import (
	"os"

	"github.com/yigit/studentms/internal/pkg/logger"
	"github.com/yigit/studentms/internal/server"
)

// @title Student Management API
// @version 1.0
// @description REST API for managing students, courses and enrollments
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@studentms.example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	// NewServer orchestrates config loading, logger setup, database setup,
	// dependency wiring and route registration.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal or a server error.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
