package impl

import (
	"context"
	"fmt"
	"log/slog"

	"receiver/internal/domain/entity"
	"receiver/internal/domain/repository"
	"receiver/internal/usecase"
)

type statusService struct {
	queueRepo     repository.UploadQueueRepository
	sightingRepo  repository.SightingRepository
	whitelistRepo repository.WhitelistRepository
	scan          usecase.ScanUsecase
	allowList     usecase.AllowListUsecase
	logger        *slog.Logger
}

// NewStatusService creates the status/reporting usecase.
func NewStatusService(
	queueRepo repository.UploadQueueRepository,
	sightingRepo repository.SightingRepository,
	whitelistRepo repository.WhitelistRepository,
	scan usecase.ScanUsecase,
	allowList usecase.AllowListUsecase,
	logger *slog.Logger,
) usecase.StatusUsecase {
	return &statusService{
		queueRepo:     queueRepo,
		sightingRepo:  sightingRepo,
		whitelistRepo: whitelistRepo,
		scan:          scan,
		allowList:     allowList,
		logger:        logger,
	}
}

func (s *statusService) Snapshot(ctx context.Context) (*usecase.StatusSnapshot, error) {
	pending, err := s.queueRepo.CountByStatus(ctx, entity.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending records: %w", err)
	}

	uploaded, err := s.queueRepo.CountByStatus(ctx, entity.StatusUploaded)
	if err != nil {
		return nil, fmt.Errorf("failed to count uploaded records: %w", err)
	}

	sightings, err := s.sightingRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sightings: %w", err)
	}

	whitelist, err := s.whitelistRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count whitelist entries: %w", err)
	}

	return &usecase.StatusSnapshot{
		PendingCount:    pending,
		UploadedCount:   uploaded,
		SightingCount:   sightings,
		WhitelistCount:  whitelist,
		TrackedDevices:  s.scan.TrackedDeviceCount(),
		MaxDistance:     s.scan.MaxDistance(),
		LastAllowSyncAt: s.allowList.LastSyncedAt(),
	}, nil
}

func (s *statusService) RecentScans(ctx context.Context, limit int) ([]*entity.Sighting, error) {
	sightings, err := s.sightingRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent scans: %w", err)
	}

	return sightings, nil
}

func (s *statusService) RecentUploads(ctx context.Context, limit int) ([]*entity.QueueRecord, error) {
	records, err := s.queueRepo.ListRecentUploaded(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent uploads: %w", err)
	}

	return records, nil
}

// ClearAllData wipes every store and resets the in-memory scan statistics.
// The in-memory allow-list gate is left alone so tracking resumes without
// waiting for the next sync.
func (s *statusService) ClearAllData(ctx context.Context) error {
	if err := s.queueRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear upload queue: %w", err)
	}
	if err := s.sightingRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear sightings: %w", err)
	}
	if err := s.whitelistRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear whitelist: %w", err)
	}

	s.scan.ResetMaxDistance()
	if err := s.scan.Init(ctx); err != nil {
		return fmt.Errorf("failed to reset tracked devices: %w", err)
	}

	s.logger.Warn("All local data cleared")

	return nil
}
