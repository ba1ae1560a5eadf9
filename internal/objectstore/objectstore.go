// internal/objectstore/objectstore.go

// Package objectstore wraps the remote content store behind a small interface
// with a uniform error shape across every operation.
package objectstore

import (
	"context"

	"github.com/photostack/photostack/internal/domain"
)

// DefaultPageSize is the listing page size when no limit is requested.
const DefaultPageSize = 12

// Store captures the object-store operations the photo services need. Every
// method returns success or a normalized *domain.Error; provider failures keep
// their {statusCode, code, message} triple verbatim.
type Store interface {
	// AssertBucket idempotently ensures the bucket for the logical name exists.
	AssertBucket(ctx context.Context, logical string) *domain.Error
	// Upload stores body under key and reports the physical bucket, key and location.
	Upload(ctx context.Context, logical, key string, body []byte, contentType string) (*domain.UploadResult, *domain.Error)
	// Head returns only an existence check; not-found surfaces with the
	// provider's own 404 signal, distinct from other failures.
	Head(ctx context.Context, logical, key string) *domain.Error
	// SignedURL issues a time-bounded retrieval URL for key.
	SignedURL(ctx context.Context, logical, key string) (string, *domain.Error)
	// List returns one page of keys. A zero limit means DefaultPageSize; cursor
	// is handed to the store as an exclusive start-after marker, untouched.
	List(ctx context.Context, logical string, limit int, cursor string) (*domain.ListPage, *domain.Error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, logical, key string) *domain.Error
}
