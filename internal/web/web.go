// internal/web/web.go
package web

import (
	"github.com/gin-gonic/gin"
	"github.com/photostack/photostack/internal/api/middleware"
)

// NewRouter builds the web front end router.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.SetHTMLTemplate(loadTemplates())

	router.GET("/", h.Homepage)
	router.POST("/photo", h.UploadPhoto)

	return router
}
