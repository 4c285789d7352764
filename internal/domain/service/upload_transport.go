package service

import (
	"context"

	"receiver/internal/domain/entity"
)

// UploadBeacon is one beacon row in the collector wire format.
type UploadBeacon struct {
	UUID  string `json:"uuid"`
	Major int    `json:"major"`
	Minor int    `json:"minor"`
	RSSI  int    `json:"rssi"`
}

// UploadRequest is the collector wire format for one batch upload. Both the
// primary and the fallback endpoint accept the same shape.
type UploadRequest struct {
	GatewayID string         `json:"gateway_id"`
	Latitude  float64        `json:"lat"`
	Longitude float64        `json:"lng"`
	Timestamp int64          `json:"timestamp"`
	Beacons   []UploadBeacon `json:"beacons"`
}

// UploadResponse is the collector's structured reply. A non-2xx status or
// success=false both count as failure.
type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UploadTransport delivers one batch to the collector. Implementations are
// stateless request/response abstractions; endpoint failover happens inside
// Upload so callers only observe the terminal outcome. The returned details
// describe the attempt that decided that outcome.
type UploadTransport interface {
	Upload(ctx context.Context, request *UploadRequest) (*entity.UploadDetails, error)
}
