package main

import (
	"os"

	"github.com/beartshare/admin-api/internal/pkg/logger"
	"github.com/beartshare/admin-api/internal/server"
)

// @title Beartshare Admin API
// @version 1.0
// @description Administration API for the Beartshare consumer platform: user
// @description browsing, loyalty points, blog management, email templates and
// @description bulk email/SMS dispatch.

// @host localhost:8080
// @BasePath /api
// @schemes http https

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
	os.Exit(0)
}
