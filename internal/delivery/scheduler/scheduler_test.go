package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"receiver/config"
	mockRepo "receiver/internal/mocks/repository"
	mockUC "receiver/internal/mocks/usecase"
	"receiver/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type schedulerTestFixtures struct {
	scheduler    *scheduler
	scanUC       *mockUC.MockScanUsecase
	uploadUC     *mockUC.MockUploadUsecase
	allowListUC  *mockUC.MockAllowListUsecase
	sightingRepo *mockRepo.MockSightingRepository
}

func createTestScheduler(t *testing.T) *schedulerTestFixtures {
	t.Helper()

	cfg := &config.Config{
		Upload: &config.UploadConfig{
			Interval:   20 * time.Millisecond,
			MaxBackoff: 100 * time.Millisecond,
		},
		Whitelist: &config.WhitelistConfig{
			SyncInterval: 20 * time.Millisecond,
		},
		Cache: &config.CacheConfig{
			RetentionDays: 30,
		},
	}

	scanUC := mockUC.NewMockScanUsecase(t)
	uploadUC := mockUC.NewMockUploadUsecase(t)
	allowListUC := mockUC.NewMockAllowListUsecase(t)
	sightingRepo := mockRepo.NewMockSightingRepository(t)

	s := &scheduler{
		cfg:          cfg,
		logger:       slog.New(slog.DiscardHandler),
		scanUC:       scanUC,
		uploadUC:     uploadUC,
		allowListUC:  allowListUC,
		sightingRepo: sightingRepo,
		done:         make(chan struct{}),
	}

	return &schedulerTestFixtures{
		scheduler:    s,
		scanUC:       scanUC,
		uploadUC:     uploadUC,
		allowListUC:  allowListUC,
		sightingRepo: sightingRepo,
	}
}

func TestScheduler_Serve_RestoresStateAndRunsCycles(t *testing.T) {
	fx := createTestScheduler(t)

	fx.scanUC.EXPECT().Init(mock.Anything).Return(nil).Once()
	fx.allowListUC.EXPECT().Init(mock.Anything).Return(nil).Once()
	fx.allowListUC.EXPECT().Sync(mock.Anything).Return(3, nil)
	fx.sightingRepo.EXPECT().PruneOlderThan(mock.Anything, mock.AnythingOfType("int64")).Return(0, nil).Maybe()

	var cycles atomic.Int32
	fx.uploadUC.EXPECT().RunCycle(mock.Anything).RunAndReturn(
		func(ctx context.Context) (*usecase.CycleOutcome, error) {
			cycles.Add(1)

			return &usecase.CycleOutcome{Attempted: true, Records: 1, Beacons: 1}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		served <- fx.scheduler.Serve(ctx)
	}()

	assert.Eventually(t, func() bool {
		return cycles.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-served)
}

func TestScheduler_Serve_InitFailureAborts(t *testing.T) {
	fx := createTestScheduler(t)

	fx.scanUC.EXPECT().Init(mock.Anything).Return(errors.New("db locked")).Once()

	err := fx.scheduler.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db locked")
}

func TestScheduler_Serve_SurvivesFailedInitialSync(t *testing.T) {
	fx := createTestScheduler(t)

	fx.scanUC.EXPECT().Init(mock.Anything).Return(nil).Once()
	fx.allowListUC.EXPECT().Init(mock.Anything).Return(nil).Once()
	fx.allowListUC.EXPECT().Sync(mock.Anything).Return(0, errors.New("collector offline"))
	fx.sightingRepo.EXPECT().PruneOlderThan(mock.Anything, mock.AnythingOfType("int64")).Return(0, nil).Maybe()

	var cycles atomic.Int32
	fx.uploadUC.EXPECT().RunCycle(mock.Anything).RunAndReturn(
		func(ctx context.Context) (*usecase.CycleOutcome, error) {
			cycles.Add(1)

			return &usecase.CycleOutcome{}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() {
		served <- fx.scheduler.Serve(ctx)
	}()

	assert.Eventually(t, func() bool {
		return cycles.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-served)
}

func TestNextBackoff(t *testing.T) {
	base := 10 * time.Second
	max := 60 * time.Second

	delay := nextBackoff(base, base, max)
	assert.Equal(t, 20*time.Second, delay)

	delay = nextBackoff(delay, base, max)
	assert.Equal(t, 40*time.Second, delay)

	// Clamped at the ceiling.
	delay = nextBackoff(delay, base, max)
	assert.Equal(t, max, delay)
	assert.Equal(t, max, nextBackoff(max, base, max))

	// Never drops below the base interval.
	assert.Equal(t, base, nextBackoff(time.Second, base, max))
}
