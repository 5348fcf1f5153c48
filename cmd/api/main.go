package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/degreepath/internal/pkg/logger"
	"github.com/yigit/degreepath/internal/server"
)

// @title DegreePath API
// @version 1.0
// @description Degree progress, weekly schedule and semester plan checks
// @BasePath /api/v1
// @schemes http https

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
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
