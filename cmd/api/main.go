package main

import (
	"context"
	"os"

	"github.com/findjobsyria/api/internal/pkg/logger"
	"github.com/findjobsyria/api/internal/server"
)

// @title Find Job Syria API
// @version 1.0
// @description Bilingual job board for Syria: opportunities by province, applications, CVs and direct messages.

// @contact.name API Support
// @contact.email support@findjobsyria.sy

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name fjs_session
// @description Session cookie set by /auth/login and /auth/register

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
