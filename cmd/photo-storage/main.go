package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/photostack/photostack/internal/api"
	"github.com/photostack/photostack/internal/api/handlers"
	"github.com/photostack/photostack/internal/config"
	"github.com/photostack/photostack/internal/objectstore"
	"github.com/photostack/photostack/internal/photos"
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

	// Initialize the object store adapter
	store, err := objectstore.NewMinioStore(cfg.Store)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to object store")
	}

	// Initialize services and handlers
	svc := photos.NewService(store)
	handler := handlers.NewPhotoHandler(svc, cfg.UploadLimitBytes())

	// Initialize HTTP server
	router := api.NewRouter(handler)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.StoragePort,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.StoragePort).Msg("Starting photo-storage API")
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
