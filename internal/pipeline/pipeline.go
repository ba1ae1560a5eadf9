// internal/pipeline/pipeline.go

// Package pipeline chains the upload hops: validate the inbound image, run it
// through the remote filter, hand the result to a storer. Every hop failure is
// normalized into a *domain.Error before it leaves this package.
package pipeline

import (
	"context"

	"github.com/photostack/photostack/internal/domain"
)

// Filter applies a remote transform to the image in place.
type Filter interface {
	Apply(ctx context.Context, img *domain.Image) *domain.Error
}

// Storer persists the filtered image. The storage API stores directly through
// the object-store adapter; the web client stores by calling the photo-storage
// service. Both satisfy the same contract.
type Storer interface {
	Store(ctx context.Context, bucket string, img *domain.Image) (*domain.UploadResult, *domain.Error)
}

// Orchestrator runs one upload through the pipeline. A nil filter skips the
// filtering hop (the storage API receives already-filtered bytes).
type Orchestrator struct {
	filter     Filter
	storer     Storer
	invalidErr *domain.Error
}

// NewOrchestrator wires a pipeline. invalidErr is the surface-specific
// validation failure returned for a rejected body; it must be a
// ValidationFailed error.
func NewOrchestrator(filter Filter, storer Storer, invalidErr *domain.Error) *Orchestrator {
	return &Orchestrator{filter: filter, storer: storer, invalidErr: invalidErr}
}

// Run drives the image through validate, filter and store. The image's Data is
// replaced in place by the filtered bytes; failures at any hop abort the run
// with no retry.
func (o *Orchestrator) Run(ctx context.Context, bucket string, img *domain.Image) (*domain.UploadResult, *domain.Error) {
	if len(img.Data) == 0 || !domain.ValidImageType(img.MimeType) {
		return nil, o.invalidErr
	}

	if o.filter != nil {
		if derr := o.filter.Apply(ctx, img); derr != nil {
			return nil, derr
		}
	}

	return o.storer.Store(ctx, bucket, img)
}
