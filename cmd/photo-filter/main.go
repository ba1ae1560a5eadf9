package main

import (
	"net/http"

	"github.com/photostack/photostack/internal/config"
	"github.com/photostack/photostack/internal/filter"
	"github.com/photostack/photostack/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.SetLevel(cfg.Server.Mode)

	router := filter.NewRouter()

	logger.Log.Info().Str("port", cfg.Server.FilterPort).Msg("Starting photo-filter API")
	if err := http.ListenAndServe(":"+cfg.Server.FilterPort, router); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to start server")
	}
}
