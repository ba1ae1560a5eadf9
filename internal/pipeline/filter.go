// internal/pipeline/filter.go
package pipeline

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/photostack/photostack/internal/domain"
	"github.com/rs/zerolog/log"
)

// FilterClient calls the photo-filter service's greyscale endpoint.
type FilterClient struct {
	baseURL string
	httpc   *http.Client
}

func NewFilterClient(baseURL string) *FilterClient {
	return &FilterClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Apply posts the raw bytes to the filter service and replaces img.Data with
// the filtered result. Failure mapping, in order: unreachable service,
// transport error, non-200 answer (body passed through verbatim when present),
// 200 with an empty body.
func (c *FilterClient) Apply(ctx context.Context, img *domain.Image) *domain.Error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/greyscale", bytes.NewReader(img.Data))
	if err != nil {
		return domain.Internal(err.Error())
	}
	req.Header.Set("Content-Type", img.MimeType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		if addr, ok := RefusedAddr(err); ok {
			if addr == "" {
				addr = HostPort(c.baseURL)
			}
			return domain.ConnectionRefused("photo-filter", addr)
		}
		log.Error().Err(err).Msg("filter request failed")
		return domain.Upstream("RequestError", err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Upstream("RequestError", err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return domain.UpstreamStatus(string(body))
	}

	if len(body) == 0 {
		return domain.Parse("Invalid response from photo-filter service")
	}

	img.Data = body
	return nil
}
