// internal/pipeline/respond.go
package pipeline

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/photostack/photostack/internal/domain"
)

// Responder chooses how a pipeline outcome reaches the caller. The storage API
// answers JSON; the web client redirects with the serialized error in a query
// parameter. Same pipeline, different surface.
type Responder interface {
	Success(c *gin.Context, res *domain.UploadResult)
	Failure(c *gin.Context, derr *domain.Error)
}

// JSONResponder surfaces outcomes as JSON bodies with matching status codes.
type JSONResponder struct{}

func (JSONResponder) Success(c *gin.Context, res *domain.UploadResult) {
	c.JSON(http.StatusOK, res)
}

func (JSONResponder) Failure(c *gin.Context, derr *domain.Error) {
	c.JSON(derr.HTTPStatus(), derr)
}

// RedirectResponder surfaces outcomes as redirects to Target, with failures
// carried in the err query parameter. The browser never sees a raw 5xx for a
// pipeline failure.
type RedirectResponder struct {
	Target string
}

func (r RedirectResponder) Success(c *gin.Context, _ *domain.UploadResult) {
	c.Redirect(http.StatusFound, r.Target)
}

func (r RedirectResponder) Failure(c *gin.Context, derr *domain.Error) {
	c.Redirect(http.StatusFound, r.Target+"?err="+derr.Serialized())
}
