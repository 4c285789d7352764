package repository

import (
	"context"

	"receiver/internal/domain/entity"
)

// WhitelistRepository persists the last successfully synced allow-list so the
// UI can browse it and the cache can be rebuilt across restarts. Every sync
// replaces the whole table; there is no incremental merge.
type WhitelistRepository interface {
	// ReplaceAll atomically swaps the stored allow-list for the given
	// entries. An empty slice is valid and clears the table.
	ReplaceAll(ctx context.Context, devices []*entity.WhitelistDevice) error

	// ListAll returns the stored allow-list ordered by device name.
	ListAll(ctx context.Context) ([]*entity.WhitelistDevice, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int64, error)

	// DeleteAll wipes the table. Used by the clear-data trigger.
	DeleteAll(ctx context.Context) error
}
