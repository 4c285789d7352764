// Package impl contains the concrete usecase implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/repository"
	"receiver/internal/usecase"
)

type scanService struct {
	sightingRepo repository.SightingRepository
	queueRepo    repository.UploadQueueRepository
	allowList    usecase.AllowListUsecase
	logger       *slog.Logger

	sightingLimit int

	// tracked is the set of whitelisted devices seen at least once. Devices
	// in this set but absent from a scan window get a synthetic "no signal"
	// sighting.
	trackedMu sync.RWMutex
	tracked   map[entity.DeviceKey]struct{}

	statsMu     sync.Mutex
	maxDistance float64
}

// NewScanService creates the scan ingestion usecase.
func NewScanService(
	sightingRepo repository.SightingRepository,
	queueRepo repository.UploadQueueRepository,
	allowList usecase.AllowListUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ScanUsecase {
	return &scanService{
		sightingRepo:  sightingRepo,
		queueRepo:     queueRepo,
		allowList:     allowList,
		logger:        logger,
		sightingLimit: cfg.Cache.SightingLimit,
		tracked:       make(map[entity.DeviceKey]struct{}),
	}
}

// Init rebuilds the tracked-device set from the sighting history so devices
// that went quiet across a restart still produce "no signal" entries.
func (s *scanService) Init(ctx context.Context) error {
	keys, err := s.sightingRepo.DistinctTrackedDevices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tracked devices: %w", err)
	}

	tracked := make(map[entity.DeviceKey]struct{}, len(keys))
	for _, key := range keys {
		tracked[key.Normalize()] = struct{}{}
	}

	s.trackedMu.Lock()
	s.tracked = tracked
	s.trackedMu.Unlock()

	s.logger.Info("Tracked-device set restored",
		slog.Int("devices", len(tracked)),
	)

	return nil
}

func (s *scanService) HandleScanBatch(ctx context.Context, batch []usecase.RawSighting, position *entity.Position) error {
	deduped := strongestPerDevice(batch)
	now := time.Now().UnixMilli()

	sightings := make([]*entity.Sighting, 0, len(deduped))
	seen := make(map[entity.DeviceKey]struct{}, len(deduped))

	for _, raw := range deduped {
		whitelisted := s.allowList.IsMember(raw.Key.UUID)

		sightings = append(sightings, &entity.Sighting{
			Key:         raw.Key,
			Signal:      entity.SignalPresent(raw.RSSI),
			Distance:    raw.Distance,
			Whitelisted: whitelisted,
			ScannedAt:   raw.ScannedAt,
		})
		s.observeDistance(raw.Distance)

		if whitelisted {
			seen[raw.Key] = struct{}{}
		}
	}

	// Tracked devices not present in this window went quiet.
	for _, key := range s.missedDevices(seen) {
		sighting := entity.NoSignalSighting(key, now)
		sightings = append(sightings, &sighting)
	}

	if len(sightings) == 0 {
		return nil
	}

	if err := s.sightingRepo.RecordBatch(ctx, sightings); err != nil {
		return fmt.Errorf("failed to record scan batch: %w", err)
	}
	if err := s.sightingRepo.EnforceCapacity(ctx, s.sightingLimit); err != nil {
		return fmt.Errorf("failed to enforce sighting capacity: %w", err)
	}

	s.trackDevices(seen)

	if position == nil {
		if len(seen) > 0 {
			s.logger.Debug("No position fix, sightings recorded but not enqueued",
				slog.Int("whitelisted", len(seen)),
			)
		}

		return nil
	}

	for _, raw := range deduped {
		if _, ok := seen[raw.Key]; !ok {
			continue
		}

		if _, err := s.queueRepo.Enqueue(ctx, &entity.QueueRecord{
			Key:       raw.Key,
			RSSI:      raw.RSSI,
			Latitude:  position.Latitude,
			Longitude: position.Longitude,
			ScannedAt: raw.ScannedAt,
		}); err != nil {
			return fmt.Errorf("failed to enqueue sighting: %w", err)
		}
	}

	return nil
}

func (s *scanService) MaxDistance() float64 {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	return s.maxDistance
}

func (s *scanService) ResetMaxDistance() {
	s.statsMu.Lock()
	s.maxDistance = 0
	s.statsMu.Unlock()
}

func (s *scanService) TrackedDeviceCount() int {
	s.trackedMu.RLock()
	defer s.trackedMu.RUnlock()

	return len(s.tracked)
}

func (s *scanService) observeDistance(distance float64) {
	s.statsMu.Lock()
	if distance > s.maxDistance {
		s.maxDistance = distance
	}
	s.statsMu.Unlock()
}

// missedDevices returns every tracked device absent from the current window.
func (s *scanService) missedDevices(seen map[entity.DeviceKey]struct{}) []entity.DeviceKey {
	s.trackedMu.RLock()
	defer s.trackedMu.RUnlock()

	var missed []entity.DeviceKey
	for key := range s.tracked {
		if _, ok := seen[key]; !ok {
			missed = append(missed, key)
		}
	}

	return missed
}

func (s *scanService) trackDevices(seen map[entity.DeviceKey]struct{}) {
	if len(seen) == 0 {
		return
	}

	s.trackedMu.Lock()
	for key := range seen {
		s.tracked[key] = struct{}{}
	}
	s.trackedMu.Unlock()
}
