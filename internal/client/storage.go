// internal/client/storage.go

// Package client holds the web client's HTTP client for the photo-storage
// service.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/photostack/photostack/internal/domain"
	"github.com/photostack/photostack/internal/pipeline"
	"github.com/rs/zerolog/log"
)

// StorageClient fetches photo listings from the photo-storage service.
type StorageClient struct {
	baseURL string
	httpc   *http.Client
}

func NewStorageClient(baseURL string) *StorageClient {
	return &StorageClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// ListPhotos returns the signed URLs for the bucket's first listing page. A
// 404 from the storage service means an empty gallery, not a failure.
func (c *StorageClient) ListPhotos(ctx context.Context, bucket string) ([]string, *domain.Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bucket/"+bucket+"/photos", nil)
	if err != nil {
		return nil, domain.Internal(err.Error())
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if addr, ok := pipeline.RefusedAddr(err); ok {
			if addr == "" {
				addr = pipeline.HostPort(c.baseURL)
			}
			return nil, domain.ConnectionRefused("photo-storage", addr)
		}
		log.Error().Err(err).Msg("photo listing request failed")
		return nil, domain.Upstream("RequestError", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Upstream("RequestError", err.Error())
	}

	if resp.StatusCode == http.StatusNotFound {
		// nothing uploaded yet, the bucket does not exist
		return nil, nil
	}

	if len(body) == 0 {
		return nil, domain.Parse("No response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.UpstreamStatus(string(body))
	}

	var page domain.URLPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, domain.Parse("Could not parse: " + string(body))
	}

	return page.Photos, nil
}
