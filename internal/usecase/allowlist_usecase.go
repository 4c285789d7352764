package usecase

import (
	"context"

	"receiver/internal/domain/entity"
)

// AllowListUsecase owns the in-memory allow-list gate. The set is replaced
// atomically per sync; membership reads never block and never fail.
type AllowListUsecase interface {
	// Init seeds the in-memory set from the persisted allow-list so a restart
	// keeps gating while the collector is unreachable. An empty table leaves
	// the gate closed.
	Init(ctx context.Context) error

	// Sync fetches the full allow-list from the collector, atomically swaps
	// the in-memory set and persists the entries. Returns the entry count.
	// On failure the previously synced set stays in effect.
	Sync(ctx context.Context) (int, error)

	// IsMember reports whether the given namespace UUID is currently
	// trackable. Case-insensitive. Returns false before the first successful
	// sync; returns true for every UUID once a sync returned an empty list
	// (allow-list disabled).
	IsMember(uuid string) bool

	// LastSyncedAt returns the timestamp of the last successful sync in
	// milliseconds, or 0 when none happened yet.
	LastSyncedAt() int64

	// Devices returns the persisted allow-list for display.
	Devices(ctx context.Context) ([]*entity.WhitelistDevice, error)
}
