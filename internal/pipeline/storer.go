// internal/pipeline/storer.go
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/photostack/photostack/internal/domain"
	"github.com/photostack/photostack/internal/photos"
	"github.com/rs/zerolog/log"
)

// ServiceStorer stores directly through the photo service and its object-store
// adapter. Used by the storage API, where the bytes are already filtered.
type ServiceStorer struct {
	svc *photos.Service
}

func NewServiceStorer(svc *photos.Service) *ServiceStorer {
	return &ServiceStorer{svc: svc}
}

func (s *ServiceStorer) Store(ctx context.Context, bucket string, img *domain.Image) (*domain.UploadResult, *domain.Error) {
	return s.svc.Upload(ctx, bucket, img.Name, img.Data, img.MimeType)
}

// HTTPStorer stores by posting to the photo-storage service. Used by the web
// client, which never touches the object store itself.
type HTTPStorer struct {
	baseURL string
	httpc   *http.Client
}

func NewHTTPStorer(baseURL string) *HTTPStorer {
	return &HTTPStorer{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPStorer) Store(ctx context.Context, bucket string, img *domain.Image) (*domain.UploadResult, *domain.Error) {
	uploadURL := fmt.Sprintf("%s/bucket/%s/photos/%s", s.baseURL, bucket, img.Name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(img.Data))
	if err != nil {
		return nil, domain.Internal(err.Error())
	}
	req.Header.Set("Content-Type", img.MimeType)

	resp, err := s.httpc.Do(req)
	if err != nil {
		if addr, ok := RefusedAddr(err); ok {
			if addr == "" {
				addr = HostPort(s.baseURL)
			}
			return nil, domain.ConnectionRefused("photo-storage", addr)
		}
		log.Error().Err(err).Msg("storage upload request failed")
		return nil, domain.Upstream("RequestError", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.Upstream("RequestError", err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		// the storage service already answers with a serialized error
		return nil, domain.UpstreamStatus(string(body))
	}

	if len(body) == 0 {
		return nil, domain.Parse("Invalid response from photo-storage service")
	}

	var result domain.UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, domain.Parse("Could not parse: " + string(body))
	}

	return &result, nil
}
