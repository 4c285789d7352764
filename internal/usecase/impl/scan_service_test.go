package impl

import (
	"context"
	"log/slog"
	"testing"

	"receiver/config"
	"receiver/internal/domain/entity"
	mockRepo "receiver/internal/mocks/repository"
	mockUC "receiver/internal/mocks/usecase"
	"receiver/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scanServiceFixtures holds all test dependencies for scan service tests.
type scanServiceFixtures struct {
	service      usecase.ScanUsecase
	sightingRepo *mockRepo.MockSightingRepository
	queueRepo    *mockRepo.MockUploadQueueRepository
	allowList    *mockUC.MockAllowListUsecase
}

func createTestScanService(t *testing.T) scanServiceFixtures {
	sightingRepo := mockRepo.NewMockSightingRepository(t)
	queueRepo := mockRepo.NewMockUploadQueueRepository(t)
	allowList := mockUC.NewMockAllowListUsecase(t)

	cfg := &config.Config{
		Cache: &config.CacheConfig{SightingLimit: 500},
	}

	service := NewScanService(sightingRepo, queueRepo, allowList, cfg, slog.New(slog.DiscardHandler))

	return scanServiceFixtures{
		service:      service,
		sightingRepo: sightingRepo,
		queueRepo:    queueRepo,
		allowList:    allowList,
	}
}

func TestScanService_Init_RestoresTrackedSet(t *testing.T) {
	fx := createTestScanService(t)
	ctx := context.Background()

	fx.sightingRepo.EXPECT().
		DistinctTrackedDevices(ctx).
		Return([]entity.DeviceKey{
			{UUID: "AAAA-BBBB", Major: 1, Minor: 2},
			{UUID: "aaaa-bbbb", Major: 1, Minor: 2},
			{UUID: "cccc-dddd", Major: 3, Minor: 4},
		}, nil)

	require.NoError(t, fx.service.Init(ctx))
	assert.Equal(t, 2, fx.service.TrackedDeviceCount())
}

func TestScanService_HandleScanBatch_DedupsAndGates(t *testing.T) {
	fx := createTestScanService(t)
	ctx := context.Background()
	position := &entity.Position{Latitude: 25.03, Longitude: 121.56}

	batch := []usecase.RawSighting{
		{Key: entity.DeviceKey{UUID: "AAAA-1111", Major: 1, Minor: 1}, RSSI: -70, Distance: 4, ScannedAt: 1000},
		{Key: entity.DeviceKey{UUID: "aaaa-1111", Major: 1, Minor: 1}, RSSI: -60, Distance: 2, ScannedAt: 1001},
		{Key: entity.DeviceKey{UUID: "bbbb-2222", Major: 2, Minor: 2}, RSSI: -80, Distance: 8, ScannedAt: 1002},
	}

	fx.allowList.EXPECT().IsMember("aaaa-1111").Return(true)
	fx.allowList.EXPECT().IsMember("bbbb-2222").Return(false)

	fx.sightingRepo.EXPECT().
		RecordBatch(ctx, mock.MatchedBy(func(sightings []*entity.Sighting) bool {
			if len(sightings) != 2 {
				return false
			}

			return sightings[0].Whitelisted &&
				sightings[0].Signal.RSSI() == -60 &&
				!sightings[1].Whitelisted
		})).
		Return(nil)
	fx.sightingRepo.EXPECT().EnforceCapacity(ctx, 500).Return(nil)

	fx.queueRepo.EXPECT().
		Enqueue(ctx, mock.MatchedBy(func(record *entity.QueueRecord) bool {
			return record.Key.UUID == "aaaa-1111" &&
				record.RSSI == -60 &&
				record.Latitude == position.Latitude &&
				record.Longitude == position.Longitude
		})).
		Return(int64(1), nil)

	require.NoError(t, fx.service.HandleScanBatch(ctx, batch, position))
	assert.Equal(t, 1, fx.service.TrackedDeviceCount())
	assert.Equal(t, 8.0, fx.service.MaxDistance())
}

func TestScanService_HandleScanBatch_NoPositionSkipsEnqueue(t *testing.T) {
	fx := createTestScanService(t)
	ctx := context.Background()

	batch := []usecase.RawSighting{
		{Key: entity.DeviceKey{UUID: "aaaa-1111", Major: 1, Minor: 1}, RSSI: -65, ScannedAt: 1000},
	}

	fx.allowList.EXPECT().IsMember("aaaa-1111").Return(true)
	fx.sightingRepo.EXPECT().
		RecordBatch(ctx, mock.AnythingOfType("[]*entity.Sighting")).
		Return(nil)
	fx.sightingRepo.EXPECT().EnforceCapacity(ctx, 500).Return(nil)

	require.NoError(t, fx.service.HandleScanBatch(ctx, batch, nil))
	assert.Equal(t, 1, fx.service.TrackedDeviceCount())
}

func TestScanService_HandleScanBatch_SynthesizesNoSignal(t *testing.T) {
	fx := createTestScanService(t)
	ctx := context.Background()
	position := &entity.Position{Latitude: 25.03, Longitude: 121.56}
	quiet := entity.DeviceKey{UUID: "cccc-3333", Major: 9, Minor: 9}

	fx.sightingRepo.EXPECT().
		DistinctTrackedDevices(ctx).
		Return([]entity.DeviceKey{quiet}, nil)
	require.NoError(t, fx.service.Init(ctx))

	batch := []usecase.RawSighting{
		{Key: entity.DeviceKey{UUID: "aaaa-1111", Major: 1, Minor: 1}, RSSI: -60, ScannedAt: 2000},
	}

	fx.allowList.EXPECT().IsMember("aaaa-1111").Return(true)

	fx.sightingRepo.EXPECT().
		RecordBatch(ctx, mock.MatchedBy(func(sightings []*entity.Sighting) bool {
			if len(sightings) != 2 {
				return false
			}
			synthetic := sightings[1]

			return synthetic.Key.Equal(quiet) &&
				!synthetic.Signal.Present() &&
				synthetic.Whitelisted
		})).
		Return(nil)
	fx.sightingRepo.EXPECT().EnforceCapacity(ctx, 500).Return(nil)

	fx.queueRepo.EXPECT().
		Enqueue(ctx, mock.MatchedBy(func(record *entity.QueueRecord) bool {
			return record.Key.UUID == "aaaa-1111"
		})).
		Return(int64(1), nil)

	require.NoError(t, fx.service.HandleScanBatch(ctx, batch, position))
	assert.Equal(t, 2, fx.service.TrackedDeviceCount())
}

func TestScanService_HandleScanBatch_EmptyBatchNoTracked(t *testing.T) {
	fx := createTestScanService(t)

	require.NoError(t, fx.service.HandleScanBatch(context.Background(), nil, nil))
}

func TestScanService_MaxDistance_Reset(t *testing.T) {
	fx := createTestScanService(t)
	ctx := context.Background()

	fx.allowList.EXPECT().IsMember("aaaa-1111").Return(false)
	fx.sightingRepo.EXPECT().
		RecordBatch(ctx, mock.AnythingOfType("[]*entity.Sighting")).
		Return(nil)
	fx.sightingRepo.EXPECT().EnforceCapacity(ctx, 500).Return(nil)

	batch := []usecase.RawSighting{
		{Key: entity.DeviceKey{UUID: "aaaa-1111", Major: 1, Minor: 1}, RSSI: -60, Distance: 12.5},
	}
	require.NoError(t, fx.service.HandleScanBatch(ctx, batch, nil))
	assert.Equal(t, 12.5, fx.service.MaxDistance())

	fx.service.ResetMaxDistance()
	assert.Zero(t, fx.service.MaxDistance())
}
