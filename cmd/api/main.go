package main

import (
	"os"

	"github.com/hamzak/maktab/internal/pkg/logger"
	"github.com/hamzak/maktab/internal/server"
)

// @title Maktab API
// @version 1.0
// @description REST backend for the Maktab multi-branch school administration platform

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
