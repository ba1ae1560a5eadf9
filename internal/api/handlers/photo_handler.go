// internal/api/handlers/photo_handler.go
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/photostack/photostack/internal/domain"
	"github.com/photostack/photostack/internal/photos"
	"github.com/photostack/photostack/internal/pipeline"
)

type PhotoHandler struct {
	svc      *photos.Service
	orch     *pipeline.Orchestrator
	respond  pipeline.Responder
	maxBytes int64
}

func NewPhotoHandler(svc *photos.Service, maxBytes int64) *PhotoHandler {
	invalid := domain.Validation("BadRequest", "Unable to parse request. Verify your content-type to be of image/*")
	return &PhotoHandler{
		svc: svc,
		// bytes arrive already filtered, so the pipeline here has no filter hop
		orch:     pipeline.NewOrchestrator(nil, pipeline.NewServiceStorer(svc), invalid),
		respond:  pipeline.JSONResponder{},
		maxBytes: maxBytes,
	}
}

// Upload stores a raw image body under /bucket/:bucket/photos/:photoName.
func (h *PhotoHandler) Upload(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"code": "EntityTooLarge"})
			return
		}
		h.respond.Failure(c, domain.Internal(err.Error()))
		return
	}

	img := &domain.Image{
		Name:     c.Param("photoName"),
		MimeType: c.ContentType(),
		Data:     body,
	}

	res, derr := h.orch.Run(c.Request.Context(), c.Param("bucket"), img)
	if derr != nil {
		h.respond.Failure(c, derr)
		return
	}
	h.respond.Success(c, res)
}

// List answers {photos, cursor?, limit?} for one page of signed URLs.
func (h *PhotoHandler) List(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	cursor := c.Query("cursor")

	page, derr := h.svc.ListURLs(c.Request.Context(), c.Param("bucket"), limit, cursor)
	if derr != nil {
		c.JSON(derr.HTTPStatus(), derr)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetURL answers the signed URL for one photo as plain text.
func (h *PhotoHandler) GetURL(c *gin.Context) {
	url, derr := h.svc.GetURL(c.Request.Context(), c.Param("bucket"), c.Param("photoName"))
	if derr != nil {
		c.JSON(derr.HTTPStatus(), derr)
		return
	}
	c.String(http.StatusOK, url)
}

// Delete removes one photo and answers 204 with no body.
func (h *PhotoHandler) Delete(c *gin.Context) {
	if derr := h.svc.Delete(c.Request.Context(), c.Param("bucket"), c.Param("photoName")); derr != nil {
		c.JSON(derr.HTTPStatus(), derr)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseLimit(value string) int {
	if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && v > 0 {
		return v
	}
	return 0
}
