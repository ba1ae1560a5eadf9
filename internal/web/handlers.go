// internal/web/handlers.go

// Package web is the browser-facing front end: it renders the gallery and
// drives uploads through the filter and storage services.
package web

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/photostack/photostack/internal/client"
	"github.com/photostack/photostack/internal/domain"
	"github.com/photostack/photostack/internal/pipeline"
	"github.com/photostack/photostack/internal/registry"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	registry *registry.Registry
	storage  *client.StorageClient
	orch     *pipeline.Orchestrator
	respond  pipeline.Responder
}

// NewHandler wires the front end against the filter and storage service base
// URLs and the bucket-id registry.
func NewHandler(reg *registry.Registry, filterURL, storageURL string) *Handler {
	invalid := domain.Validation("InvalidMimeType", "File must be a jpg, png, or bmp")
	return &Handler{
		registry: reg,
		storage:  client.NewStorageClient(storageURL),
		orch:     pipeline.NewOrchestrator(pipeline.NewFilterClient(filterURL), pipeline.NewHTTPStorer(storageURL), invalid),
		respond:  pipeline.RedirectResponder{Target: "/"},
	}
}

// Homepage renders the gallery: the shared bucket id plus one page of signed
// URLs, or the error string carried in the err query parameter.
func (h *Handler) Homepage(c *gin.Context) {
	bucket, derr := h.registry.GetOrCreate(c.Request.Context())
	if derr != nil {
		// a registry failure is this service's own fault, not a pipeline hop
		c.JSON(derr.HTTPStatus(), derr)
		return
	}

	if errParam := c.Query("err"); errParam != "" {
		h.render(c, bucket, nil, errParam)
		return
	}

	urls, derr := h.storage.ListPhotos(c.Request.Context(), bucket)
	if derr != nil {
		h.render(c, bucket, nil, derr.Serialized())
		return
	}

	h.render(c, bucket, urls, "")
}

// UploadPhoto accepts a multipart upload and runs it through the pipeline:
// filter service first, then the storage service. Success and failure both
// come back as redirects to the gallery.
func (h *Handler) UploadPhoto(c *gin.Context) {
	bucket, derr := h.registry.GetOrCreate(c.Request.Context())
	if derr != nil {
		c.JSON(derr.HTTPStatus(), derr)
		return
	}

	img, derr := imageFromForm(c)
	if derr != nil {
		h.respond.Failure(c, derr)
		return
	}

	res, derr := h.orch.Run(c.Request.Context(), bucket, img)
	if derr != nil {
		h.respond.Failure(c, derr)
		return
	}

	log.Info().Str("bucket", res.Bucket).Str("key", res.Key).Msg("photo uploaded")
	h.respond.Success(c, res)
}

func (h *Handler) render(c *gin.Context, bucket string, urls []string, errStr string) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Bucket": bucket,
		"URLs":   urls,
		"Err":    errStr,
	})
}

// imageFromForm pulls the uploaded file out of the multipart form. Content
// type validation is the pipeline's job; this only extracts the bytes.
func imageFromForm(c *gin.Context) (*domain.Image, *domain.Error) {
	file, err := c.FormFile("uploadedImage")
	if err != nil {
		return nil, domain.Validation("BadRequest", "No image file in the uploadedImage field")
	}

	f, err := file.Open()
	if err != nil {
		return nil, domain.Internal(err.Error())
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.Internal(err.Error())
	}

	return &domain.Image{
		Name:     file.Filename,
		MimeType: file.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
