package repository

import (
	"context"

	"receiver/internal/domain/entity"
)

// SightingRepository records every observed radio event for display and for
// reconstructing the tracked-device set at startup. Rows are append-only and
// pruned by age or by a rolling capacity cap, oldest first.
type SightingRepository interface {
	// Record appends one sighting.
	Record(ctx context.Context, sighting *entity.Sighting) error

	// RecordBatch appends a scan window's sightings in one transaction.
	RecordBatch(ctx context.Context, sightings []*entity.Sighting) error

	// DistinctTrackedDevices returns every device key that was ever observed
	// with allow-list membership, used to rebuild the tracked set.
	DistinctTrackedDevices(ctx context.Context) ([]entity.DeviceKey, error)

	// ListRecent returns the latest sighting per device together with its
	// repeat count, newest first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.Sighting, error)

	// PruneOlderThan deletes sightings scanned before the cutoff timestamp
	// (milliseconds) and returns the number removed.
	PruneOlderThan(ctx context.Context, cutoff int64) (int64, error)

	// EnforceCapacity deletes the oldest rows until at most limit remain.
	EnforceCapacity(ctx context.Context, limit int) error

	// Count returns the total number of sightings.
	Count(ctx context.Context) (int64, error)

	// CountWhitelisted returns the number of sightings observed with
	// allow-list membership.
	CountWhitelisted(ctx context.Context) (int64, error)

	// DeleteAll wipes the table. Used by the clear-data trigger.
	DeleteAll(ctx context.Context) error
}
