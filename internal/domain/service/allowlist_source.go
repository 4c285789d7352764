package service

import (
	"context"

	"receiver/internal/domain/entity"
)

// AllowListSnapshot is the full allow-list as reported by the collector in
// one sync. An empty device list with Success=true is valid and means the
// allow-list is disabled (track everything).
type AllowListSnapshot struct {
	Success   bool                      `json:"success"`
	Devices   []*entity.WhitelistDevice `json:"devices"`
	Count     int                       `json:"count"`
	Timestamp int64                     `json:"timestamp"`
	Error     string                    `json:"error,omitempty"`
}

// AllowListSource fetches the current allow-list from the remote sync
// collaborator. Fetch failures leave the previously cached set in effect.
type AllowListSource interface {
	Fetch(ctx context.Context) (*AllowListSnapshot, error)
}
