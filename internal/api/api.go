// internal/api/api.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/photostack/photostack/internal/api/handlers"
	"github.com/photostack/photostack/internal/api/middleware"
)

// NewRouter builds the photo-storage API router.
func NewRouter(h *handlers.PhotoHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "welcome to the photo-storage api")
	})

	router.POST("/bucket/:bucket/photos/:photoName", h.Upload)
	router.GET("/bucket/:bucket/photos", h.List)
	router.GET("/bucket/:bucket/photos/:photoName", h.GetURL)
	router.DELETE("/bucket/:bucket/photos/:photoName", h.Delete)

	// catch all if a path does not exist
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "RouteNotFound"})
	})

	return router
}
