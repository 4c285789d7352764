package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/repository"
	"receiver/internal/domain/service"
	"receiver/internal/usecase"
)

type uploadService struct {
	queueRepo repository.UploadQueueRepository
	location  service.LocationProvider
	transport service.UploadTransport
	logger    *slog.Logger

	gatewayID   string
	uploadedTTL time.Duration

	// inFlight makes cycles non-reentrant: a trigger while one runs is a
	// no-op instead of a second concurrent drain.
	inFlight atomic.Bool
}

// NewUploadService creates the upload cycle usecase.
func NewUploadService(
	queueRepo repository.UploadQueueRepository,
	location service.LocationProvider,
	transport service.UploadTransport,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UploadUsecase {
	return &uploadService{
		queueRepo:   queueRepo,
		location:    location,
		transport:   transport,
		logger:      logger,
		gatewayID:   cfg.Gateway.ID,
		uploadedTTL: cfg.Cache.UploadedTTL,
	}
}

func (s *uploadService) RunCycle(ctx context.Context) (*usecase.CycleOutcome, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug("Upload cycle already in flight, skipping trigger")

		return &usecase.CycleOutcome{}, nil
	}
	defer s.inFlight.Store(false)

	s.housekeep(ctx)

	if err := s.queueRepo.Consolidate(ctx); err != nil {
		return nil, fmt.Errorf("failed to consolidate queue: %w", err)
	}

	records, err := s.queueRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending records: %w", err)
	}
	if len(records) == 0 {
		return &usecase.CycleOutcome{}, nil
	}

	// No position means no mutation: everything stays PENDING for the next
	// cycle.
	position, err := s.location.CurrentPosition(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gateway position: %w", err)
	}

	batch := strongestPerUUID(records)
	request := &service.UploadRequest{
		GatewayID: s.gatewayID,
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
		Timestamp: time.Now().UnixMilli(),
		Beacons:   make([]service.UploadBeacon, 0, len(batch)),
	}
	for _, record := range batch {
		request.Beacons = append(request.Beacons, service.UploadBeacon{
			UUID:  record.Key.UUID,
			Major: record.Key.Major,
			Minor: record.Key.Minor,
			RSSI:  record.RSSI,
		})
	}

	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	details, err := s.transport.Upload(ctx, request)
	if err != nil {
		if markErr := s.queueRepo.UpdateStatus(ctx, ids, entity.StatusFailed); markErr != nil {
			s.logger.Error("Failed to park records after upload failure",
				slog.Any("error", markErr),
			)
		}

		return nil, fmt.Errorf("failed to upload batch: %w", err)
	}

	// Every record whose beacon the batch subsumed counts as uploaded, not
	// just the per-UUID winners.
	if err := s.queueRepo.MarkUploaded(ctx, ids, details); err != nil {
		return nil, fmt.Errorf("failed to mark records uploaded: %w", err)
	}

	s.logger.Info("Upload cycle completed",
		slog.Int("records", len(records)),
		slog.Int("beacons", len(batch)),
	)

	return &usecase.CycleOutcome{
		Attempted: true,
		Records:   len(records),
		Beacons:   len(batch),
	}, nil
}

// housekeep runs the best-effort maintenance of a cycle: requeue parked
// failures and drop expired upload history. Errors here never abort the
// cycle.
func (s *uploadService) housekeep(ctx context.Context) {
	if requeued, err := s.queueRepo.RequeueFailed(ctx); err != nil {
		s.logger.Warn("Failed to requeue failed records", slog.Any("error", err))
	} else if requeued > 0 {
		s.logger.Info("Requeued failed records for retry", slog.Int64("records", requeued))
	}

	cutoff := time.Now().Add(-s.uploadedTTL).UnixMilli()
	if pruned, err := s.queueRepo.PruneUploadedBefore(ctx, cutoff); err != nil {
		s.logger.Warn("Failed to prune uploaded records", slog.Any("error", err))
	} else if pruned > 0 {
		s.logger.Debug("Pruned expired upload history", slog.Int64("records", pruned))
	}
}
