package location

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/service"

	"github.com/pkg/errors"
)

const maxResponseBytes = 64 << 10

// httpProvider asks an external positioning endpoint for the gateway's
// current coordinates. Mobile deployments point this at the host device's
// location service.
type httpProvider struct {
	url        string
	httpClient *http.Client
}

// NewHTTPProvider creates a provider backed by a positioning endpoint.
func NewHTTPProvider(cfg *config.Config) service.LocationProvider {
	return &httpProvider{
		url: cfg.Location.URL,
		httpClient: &http.Client{
			Timeout: cfg.Location.RequestTimeout,
		},
	}
}

func (p *httpProvider) CurrentPosition(ctx context.Context) (*entity.Position, error) {
	if p.url == "" {
		return nil, service.ErrPositionUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrPositionUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(service.ErrPositionUnavailable, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Wrapf(service.ErrPositionUnavailable,
			"positioning endpoint returned HTTP %d", resp.StatusCode)
	}

	var decoded struct {
		Latitude  float64 `json:"lat"`
		Longitude float64 `json:"lng"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(service.ErrPositionUnavailable, err.Error())
	}

	return &entity.Position{
		Latitude:  decoded.Latitude,
		Longitude: decoded.Longitude,
	}, nil
}
