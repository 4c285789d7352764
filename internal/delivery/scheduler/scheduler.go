// Package scheduler drives the periodic background work of the receiver:
// upload cycles, allow-list refreshes and sighting retention.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"receiver/config"
	"receiver/internal/delivery"
	"receiver/internal/domain/repository"
	"receiver/internal/usecase"

	"go.uber.org/fx"
)

// retentionInterval is how often old sightings are pruned. The retention
// horizon itself is measured in days, so an hourly sweep is plenty.
const retentionInterval = time.Hour

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	ScanUC       usecase.ScanUsecase
	UploadUC     usecase.UploadUsecase
	AllowListUC  usecase.AllowListUsecase
	SightingRepo repository.SightingRepository
}

type scheduler struct {
	cfg          *config.Config
	logger       *slog.Logger
	scanUC       usecase.ScanUsecase
	uploadUC     usecase.UploadUsecase
	allowListUC  usecase.AllowListUsecase
	sightingRepo repository.SightingRepository

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates the background scheduler as a Delivery so main can start it
// alongside the HTTP server.
func New(params SchedulerParams) (delivery.Delivery, error) {
	s := &scheduler{
		cfg:          params.Config,
		logger:       params.Logger,
		scanUC:       params.ScanUC,
		uploadUC:     params.UploadUC,
		allowListUC:  params.AllowListUC,
		sightingRepo: params.SightingRepo,
		done:         make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve restores persisted state, then runs the periodic loops until stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	defer close(s.done)

	if err := s.scanUC.Init(ctx); err != nil {
		return err
	}
	if err := s.allowListUC.Init(ctx); err != nil {
		return err
	}

	// First sync is best effort, the persisted allow-list already gates
	// scans until the collector becomes reachable.
	if count, err := s.allowListUC.Sync(ctx); err != nil {
		s.logger.Warn("Initial whitelist sync failed", slog.Any("error", err))
	} else {
		s.logger.Info("Whitelist synced", slog.Int("devices", count))
	}

	s.logger.Info("Starting scheduler",
		slog.Duration("uploadInterval", s.cfg.Upload.Interval),
		slog.Duration("whitelistInterval", s.cfg.Whitelist.SyncInterval),
	)

	go s.runWhitelistLoop(ctx)
	go s.runRetentionLoop(ctx)
	s.runUploadLoop(ctx)

	return nil
}

func (s *scheduler) stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// runUploadLoop runs one upload cycle per interval. Failed cycles back off
// exponentially up to maxBackoff; any successful cycle resets the cadence.
func (s *scheduler) runUploadLoop(ctx context.Context) {
	interval := s.cfg.Upload.Interval
	delay := interval

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		outcome, err := s.uploadUC.RunCycle(ctx)
		if err != nil {
			delay = nextBackoff(delay, interval, s.cfg.Upload.MaxBackoff)
			s.logger.Warn("Upload cycle failed",
				slog.Any("error", err),
				slog.Duration("nextAttempt", delay),
			)
		} else {
			delay = interval
			if outcome != nil && outcome.Attempted {
				s.logger.Info("Upload cycle completed",
					slog.Int("records", outcome.Records),
					slog.Int("beacons", outcome.Beacons),
				)
			}
		}

		timer.Reset(delay)
	}
}

func (s *scheduler) runWhitelistLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Whitelist.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if count, err := s.allowListUC.Sync(ctx); err != nil {
			s.logger.Warn("Whitelist sync failed", slog.Any("error", err))
		} else {
			s.logger.Debug("Whitelist synced", slog.Int("devices", count))
		}
	}
}

func (s *scheduler) runRetentionLoop(ctx context.Context) {
	ticker := time.NewTicker(retentionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cutoff := time.Now().AddDate(0, 0, -s.cfg.Cache.RetentionDays).UnixMilli()
		if pruned, err := s.sightingRepo.PruneOlderThan(ctx, cutoff); err != nil {
			s.logger.Warn("Sighting retention sweep failed", slog.Any("error", err))
		} else if pruned > 0 {
			s.logger.Info("Pruned old sightings", slog.Int64("pruned", pruned))
		}
	}
}

// nextBackoff doubles the current delay, clamped to [base, max].
func nextBackoff(current, base, max time.Duration) time.Duration {
	next := current * 2
	if next < base {
		next = base
	}
	if max > 0 && next > max {
		next = max
	}

	return next
}
