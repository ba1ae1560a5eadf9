package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/photostack/photostack/internal/config"
	"github.com/photostack/photostack/internal/registry"
	"github.com/photostack/photostack/internal/web"
	"github.com/photostack/photostack/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the bucket-id registry
	kv, err := registry.NewRedisKV(cfg.Registry)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to bucket-id registry")
	}
	defer kv.Close()

	reg := registry.New(kv)

	// Initialize HTTP server
	handler := web.NewHandler(reg, cfg.FilterURL(), cfg.StorageURL())
	router := web.NewRouter(handler)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.WebPort,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().
			Str("port", cfg.Server.WebPort).
			Str("filter", cfg.FilterURL()).
			Str("storage", cfg.StorageURL()).
			Msg("Starting web client")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
