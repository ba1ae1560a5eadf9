// internal/api/api_test.go
package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/photostack/photostack/internal/api/handlers"
	"github.com/photostack/photostack/internal/photos"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(handlers.NewPhotoHandler(photos.NewService(nil), 1<<20))
}

func TestWelcome(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "welcome to the photo-storage api" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "RouteNotFound") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
