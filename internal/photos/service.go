// internal/photos/service.go

// Package photos turns raw object-store pages into user-consumable signed URL
// lists and handles individual fetch, upload and delete operations.
package photos

import (
	"context"
	"errors"

	"github.com/photostack/photostack/internal/domain"
	"github.com/photostack/photostack/internal/objectstore"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store objectstore.Store
}

func NewService(store objectstore.Store) *Service {
	return &Service{store: store}
}

// ListURLs lists one page of photos and resolves a signed URL for every item.
// Resolution runs concurrently but the output keeps the store's ordering; a
// failure on any single item fails the whole call and cancels its siblings.
func (s *Service) ListURLs(ctx context.Context, bucket string, limit int, cursor string) (*domain.URLPage, *domain.Error) {
	page, derr := s.store.List(ctx, bucket, limit, cursor)
	if derr != nil {
		return nil, derr
	}

	urls := make([]string, len(page.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range page.Items {
		g.Go(func() error {
			u, derr := s.store.SignedURL(gctx, bucket, item.Key)
			if derr != nil {
				return derr
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			return nil, derr
		}
		return nil, domain.Internal(err.Error())
	}

	return &domain.URLPage{
		Photos: urls,
		Cursor: page.NextCursor,
		Limit:  limit,
	}, nil
}

// GetURL issues a signed URL for a single photo. The existence check runs
// first so a missing key surfaces as the store's own not-found error instead
// of a signed link to nothing.
func (s *Service) GetURL(ctx context.Context, bucket, key string) (string, *domain.Error) {
	if derr := s.store.Head(ctx, bucket, key); derr != nil {
		return "", derr
	}
	return s.store.SignedURL(ctx, bucket, key)
}

// Upload ensures the bucket exists, then stores the photo.
func (s *Service) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) (*domain.UploadResult, *domain.Error) {
	if derr := s.store.AssertBucket(ctx, bucket); derr != nil {
		return nil, derr
	}
	return s.store.Upload(ctx, bucket, key, body, contentType)
}

// Delete removes a photo. Deleting a photo that is already gone succeeds.
func (s *Service) Delete(ctx context.Context, bucket, key string) *domain.Error {
	return s.store.Delete(ctx, bucket, key)
}
