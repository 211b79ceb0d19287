package main

import (
	"os"

	"github.com/mikerosasdev/crud-alumnos/internal/cli"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/logger"
)

// @title CRUD Alumnos API
// @version 1.0
// @description API for the alumnos registry panel: alumnos, their phone numbers and photos

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3019
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, required on write endpoints when auth is enabled

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
