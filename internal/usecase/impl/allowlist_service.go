package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"receiver/internal/domain/entity"
	"receiver/internal/domain/repository"
	"receiver/internal/domain/service"
	"receiver/internal/usecase"
)

// allowState is one immutable generation of the allow-list gate, swapped
// atomically per sync so membership reads never block.
type allowState struct {
	uuids    map[string]struct{}
	trackAll bool
	syncedAt int64
}

type allowListService struct {
	source        service.AllowListSource
	whitelistRepo repository.WhitelistRepository
	logger        *slog.Logger

	state atomic.Pointer[allowState]
}

// NewAllowListService creates the allow-list usecase. Until Init or Sync
// populates a generation the gate stays closed.
func NewAllowListService(
	source service.AllowListSource,
	whitelistRepo repository.WhitelistRepository,
	logger *slog.Logger,
) usecase.AllowListUsecase {
	return &allowListService{
		source:        source,
		whitelistRepo: whitelistRepo,
		logger:        logger,
	}
}

func (s *allowListService) Init(ctx context.Context) error {
	devices, err := s.whitelistRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load persisted allow-list: %w", err)
	}

	// An empty table is indistinguishable from "never synced", so it does not
	// open the gate; only a live sync can declare the allow-list disabled.
	if len(devices) == 0 {
		return nil
	}

	s.state.Store(buildState(devices, 0))

	s.logger.Info("Allow-list restored from store",
		slog.Int("devices", len(devices)),
	)

	return nil
}

func (s *allowListService) Sync(ctx context.Context) (int, error) {
	snapshot, err := s.source.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch allow-list: %w", err)
	}

	if err := s.whitelistRepo.ReplaceAll(ctx, stampSyncedAt(snapshot.Devices)); err != nil {
		return 0, fmt.Errorf("failed to persist allow-list: %w", err)
	}

	s.state.Store(buildState(snapshot.Devices, time.Now().UnixMilli()))

	if len(snapshot.Devices) == 0 {
		s.logger.Warn("Allow-list sync returned no devices, tracking everything")
	} else {
		s.logger.Info("Allow-list synced",
			slog.Int("devices", len(snapshot.Devices)),
		)
	}

	return len(snapshot.Devices), nil
}

func (s *allowListService) IsMember(uuid string) bool {
	state := s.state.Load()
	if state == nil {
		return false
	}
	if state.trackAll {
		return true
	}

	_, ok := state.uuids[strings.ToLower(uuid)]

	return ok
}

func (s *allowListService) LastSyncedAt() int64 {
	state := s.state.Load()
	if state == nil {
		return 0
	}

	return state.syncedAt
}

func (s *allowListService) Devices(ctx context.Context) ([]*entity.WhitelistDevice, error) {
	devices, err := s.whitelistRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list allow-list devices: %w", err)
	}

	return devices, nil
}

func buildState(devices []*entity.WhitelistDevice, syncedAt int64) *allowState {
	uuids := make(map[string]struct{}, len(devices))
	for _, device := range devices {
		uuids[strings.ToLower(device.UUID)] = struct{}{}
	}

	return &allowState{
		uuids:    uuids,
		trackAll: len(devices) == 0,
		syncedAt: syncedAt,
	}
}

func stampSyncedAt(devices []*entity.WhitelistDevice) []*entity.WhitelistDevice {
	now := time.Now().UnixMilli()
	for _, device := range devices {
		device.SyncedAt = now
	}

	return devices
}
