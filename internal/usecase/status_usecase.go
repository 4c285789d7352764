package usecase

import (
	"context"

	"receiver/internal/domain/entity"
)

// StatusSnapshot is the read-only aggregate exposed to the presentation
// layer. Individual cycle failures are invisible except through a stale
// pending count.
type StatusSnapshot struct {
	PendingCount    int64   `json:"pending_count"`
	UploadedCount   int64   `json:"uploaded_count"`
	SightingCount   int64   `json:"sighting_count"`
	WhitelistCount  int64   `json:"whitelist_count"`
	TrackedDevices  int     `json:"tracked_devices"`
	MaxDistance     float64 `json:"max_distance"`
	LastAllowSyncAt int64   `json:"last_allowlist_sync_at"`
}

// StatusUsecase serves the presentation layer: aggregate counters plus the
// destructive clear-all-data trigger.
type StatusUsecase interface {
	// Snapshot assembles the current aggregate counters.
	Snapshot(ctx context.Context) (*StatusSnapshot, error)

	// RecentScans returns the latest sighting per device, newest first.
	RecentScans(ctx context.Context, limit int) ([]*entity.Sighting, error)

	// RecentUploads returns the latest uploaded record per device.
	RecentUploads(ctx context.Context, limit int) ([]*entity.QueueRecord, error)

	// ClearAllData wipes sightings, queue records and the stored allow-list.
	ClearAllData(ctx context.Context) error
}
