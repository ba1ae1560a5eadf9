// internal/registry/registry.go

// Package registry provides exactly-once provisioning of the shared storage
// bucket identifier, backed by a strongly consistent key-value store.
package registry

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/photostack/photostack/internal/domain"
	"github.com/rs/zerolog/log"
)

// There is at most one record; the fixed member suffix mirrors its singleton id.
const bucketIDKey = "photos-bucket-id:1"

// ErrNotFound is returned by a KV when the key has no value.
var ErrNotFound = errors.New("registry: key not found")

// KV is the minimal conditional-write contract the registry needs. SetNX must
// be atomic: it succeeds only if the key does not already exist. Correctness
// under concurrent first-calls is delegated entirely to this guarantee; the
// registry never does a separate existence check before writing.
type KV interface {
	SetNX(ctx context.Context, key, value string) (bool, error)
	Get(ctx context.Context, key string) (string, error)
}

// Registry resolves the process-wide bucket identifier. After the first
// successful resolution the value is served from an in-process cache with no
// expiry; the backing store is not consulted again.
type Registry struct {
	kv     KV
	cached atomic.Pointer[string]

	// newID generates candidate identifiers; swappable in tests.
	newID func() string
}

func New(kv KV) *Registry {
	return &Registry{kv: kv, newID: uuid.NewString}
}

// GetOrCreate returns the shared bucket identifier, provisioning it on first
// call. Under concurrent first-calls exactly one candidate wins the conditional
// write; every loser observes the conflict and converges on the winner's value
// via a direct read. Failures are never retried here.
func (r *Registry) GetOrCreate(ctx context.Context) (string, *domain.Error) {
	if id := r.cached.Load(); id != nil {
		return *id, nil
	}

	candidate := r.newID()

	created, err := r.kv.SetNX(ctx, bucketIDKey, candidate)
	if err != nil {
		if isLoading(err) {
			log.Error().Err(err).Msg("bucket-id registry not ready")
			return "", domain.NotReady(
				"ResourceNotReady",
				err.Error()+" - the bucket-id registry may still be initializing",
			)
		}
		log.Error().Err(err).Msg("bucket-id conditional create failed")
		return "", domain.Internal(err.Error())
	}

	if created {
		r.cached.Store(&candidate)
		log.Info().Str("bucketId", candidate).Msg("provisioned bucket id")
		return candidate, nil
	}

	// Lost the race: another caller created the record first. The read is
	// strongly consistent, so the winner's value is already visible.
	existing, err := r.kv.Get(ctx, bucketIDKey)
	if err != nil {
		log.Error().Err(err).Msg("bucket-id read-after-conflict failed")
		return "", domain.Internal(err.Error())
	}

	r.cached.Store(&existing)
	return existing, nil
}

// isLoading detects a backing store that is up but still initializing its
// dataset (redis answers LOADING until the snapshot is restored).
func isLoading(err error) bool {
	return strings.HasPrefix(err.Error(), "LOADING")
}
