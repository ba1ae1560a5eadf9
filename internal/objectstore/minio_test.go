// internal/objectstore/minio_test.go
package objectstore

import (
	"errors"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/photostack/photostack/internal/domain"
)

func TestPhysicalName(t *testing.T) {
	tests := []struct {
		stage   string
		logical string
		want    string
	}{
		{"dev", "testBucket", "photos-dev-testBucket"},
		{"prod", "gallery", "photos-prod-gallery"},
	}
	for _, tt := range tests {
		if got := physicalName(tt.stage, tt.logical); got != tt.want {
			t.Errorf("physicalName(%q, %q) = %q, want %q", tt.stage, tt.logical, got, tt.want)
		}
	}
}

func TestNormalizeProviderError(t *testing.T) {
	err := minio.ErrorResponse{
		Code:       "NoSuchKey",
		Message:    "The specified key does not exist.",
		StatusCode: http.StatusNotFound,
	}

	derr := normalize(err)
	if derr.Kind != domain.KindProviderError {
		t.Fatalf("expected ProviderError, got %s", derr.Kind)
	}
	if derr.Code != "NoSuchKey" {
		t.Errorf("code not passed through: %q", derr.Code)
	}
	if derr.Message != "The specified key does not exist." {
		t.Errorf("message not passed through: %q", derr.Message)
	}
	if derr.HTTPStatus() != http.StatusNotFound {
		t.Errorf("status not passed through: %d", derr.HTTPStatus())
	}
}

func TestNormalizeUnknownError(t *testing.T) {
	derr := normalize(errors.New("dial tcp: i/o timeout"))
	if derr.Kind != domain.KindInternal {
		t.Fatalf("expected InternalServerError, got %s", derr.Kind)
	}
	if derr.Code != "InternalServerError" {
		t.Errorf("unexpected code %q", derr.Code)
	}
	if derr.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("unexpected status %d", derr.HTTPStatus())
	}
}
