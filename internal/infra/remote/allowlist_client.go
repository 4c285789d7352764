// Package remote implements HTTP clients for the sync collaborators.
package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/service"

	"github.com/pkg/errors"
)

const maxResponseBytes = 4 << 20

// whitelistDeviceDTO mirrors the collector's allow-list wire format.
type whitelistDeviceDTO struct {
	UUID       string `json:"uuid"`
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
	DeviceName string `json:"deviceName"`
	MACAddress string `json:"macAddress,omitempty"`
}

type whitelistResponseDTO struct {
	Success   bool                 `json:"success"`
	Devices   []whitelistDeviceDTO `json:"devices"`
	Count     int                  `json:"count"`
	Timestamp int64                `json:"timestamp"`
	Error     string               `json:"error,omitempty"`
}

// allowListClient implements service.AllowListSource against the collector's
// allow-list endpoint.
type allowListClient struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAllowListClient creates the allow-list sync client from configuration.
func NewAllowListClient(cfg *config.Config, logger *slog.Logger) service.AllowListSource {
	return &allowListClient{
		url: cfg.Whitelist.URL,
		httpClient: &http.Client{
			Timeout: cfg.Upload.RequestTimeout,
		},
		logger: logger,
	}
}

func (c *allowListClient) Fetch(ctx context.Context) (*service.AllowListSnapshot, error) {
	if c.url == "" {
		return nil, errors.New("no whitelist endpoint configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", c.url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read response from %s", c.url)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("whitelist endpoint returned HTTP %d", resp.StatusCode)
	}

	var decoded whitelistResponseDTO
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(err, "decode whitelist response")
	}

	if !decoded.Success {
		reason := decoded.Error
		if reason == "" {
			reason = "unknown error"
		}

		return nil, errors.Errorf("whitelist sync rejected: %s", reason)
	}

	snapshot := &service.AllowListSnapshot{
		Success:   true,
		Count:     decoded.Count,
		Timestamp: decoded.Timestamp,
		Devices:   make([]*entity.WhitelistDevice, 0, len(decoded.Devices)),
	}
	for _, device := range decoded.Devices {
		snapshot.Devices = append(snapshot.Devices, &entity.WhitelistDevice{
			UUID:       device.UUID,
			Major:      device.Major,
			Minor:      device.Minor,
			DeviceName: device.DeviceName,
			MACAddress: device.MACAddress,
		})
	}

	return snapshot, nil
}
