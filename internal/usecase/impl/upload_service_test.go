package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/service"
	mockRepo "receiver/internal/mocks/repository"
	mockSvc "receiver/internal/mocks/service"
	"receiver/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// uploadServiceFixtures holds all test dependencies for upload service tests.
type uploadServiceFixtures struct {
	service   usecase.UploadUsecase
	queueRepo *mockRepo.MockUploadQueueRepository
	location  *mockSvc.MockLocationProvider
	transport *mockSvc.MockUploadTransport
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	queueRepo := mockRepo.NewMockUploadQueueRepository(t)
	location := mockSvc.NewMockLocationProvider(t)
	transport := mockSvc.NewMockUploadTransport(t)

	cfg := &config.Config{
		Cache: &config.CacheConfig{UploadedTTL: 24 * time.Hour},
	}
	cfg.Gateway.ID = "gateway-1"

	service := NewUploadService(queueRepo, location, transport, cfg, slog.New(slog.DiscardHandler))

	return uploadServiceFixtures{
		service:   service,
		queueRepo: queueRepo,
		location:  location,
		transport: transport,
	}
}

func expectHousekeeping(fx uploadServiceFixtures, ctx context.Context) {
	fx.queueRepo.EXPECT().RequeueFailed(ctx).Return(int64(0), nil)
	fx.queueRepo.EXPECT().
		PruneUploadedBefore(ctx, mock.AnythingOfType("int64")).
		Return(int64(0), nil)
}

func TestUploadService_RunCycle_EmptyQueue(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	expectHousekeeping(fx, ctx)
	fx.queueRepo.EXPECT().Consolidate(ctx).Return(nil)
	fx.queueRepo.EXPECT().ListPending(ctx).Return(nil, nil)

	outcome, err := fx.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.False(t, outcome.Attempted)
	assert.Zero(t, outcome.Records)
}

func TestUploadService_RunCycle_UploadsDedupedBatch(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	records := []*entity.QueueRecord{
		{ID: 1, Key: entity.DeviceKey{UUID: "aaaa", Major: 1, Minor: 1}, RSSI: -70},
		{ID: 2, Key: entity.DeviceKey{UUID: "aaaa", Major: 2, Minor: 2}, RSSI: -60},
		{ID: 3, Key: entity.DeviceKey{UUID: "bbbb", Major: 1, Minor: 1}, RSSI: -85},
	}
	details := &entity.UploadDetails{ResponseCode: 200}

	expectHousekeeping(fx, ctx)
	fx.queueRepo.EXPECT().Consolidate(ctx).Return(nil)
	fx.queueRepo.EXPECT().ListPending(ctx).Return(records, nil)
	fx.location.EXPECT().
		CurrentPosition(ctx).
		Return(&entity.Position{Latitude: 25.03, Longitude: 121.56}, nil)

	fx.transport.EXPECT().
		Upload(ctx, mock.MatchedBy(func(request *service.UploadRequest) bool {
			if request.GatewayID != "gateway-1" || len(request.Beacons) != 2 {
				return false
			}

			return request.Beacons[0].UUID == "aaaa" &&
				request.Beacons[0].RSSI == -60 &&
				request.Beacons[1].UUID == "bbbb"
		})).
		Return(details, nil)

	// All three records are subsumed by the batch, including the weaker
	// duplicate that did not make it onto the wire.
	fx.queueRepo.EXPECT().
		MarkUploaded(ctx, []int64{1, 2, 3}, details).
		Return(nil)

	outcome, err := fx.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.True(t, outcome.Attempted)
	assert.Equal(t, 3, outcome.Records)
	assert.Equal(t, 2, outcome.Beacons)
}

func TestUploadService_RunCycle_TransportFailureParksRecords(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	records := []*entity.QueueRecord{
		{ID: 7, Key: entity.DeviceKey{UUID: "aaaa", Major: 1, Minor: 1}, RSSI: -70},
	}

	expectHousekeeping(fx, ctx)
	fx.queueRepo.EXPECT().Consolidate(ctx).Return(nil)
	fx.queueRepo.EXPECT().ListPending(ctx).Return(records, nil)
	fx.location.EXPECT().
		CurrentPosition(ctx).
		Return(&entity.Position{}, nil)
	fx.transport.EXPECT().
		Upload(ctx, mock.AnythingOfType("*service.UploadRequest")).
		Return(nil, errors.New("both endpoints down"))
	fx.queueRepo.EXPECT().
		UpdateStatus(ctx, []int64{7}, entity.StatusFailed).
		Return(nil)

	outcome, err := fx.service.RunCycle(ctx)
	require.Error(t, err)
	assert.Nil(t, outcome)
}

func TestUploadService_RunCycle_NoPositionAborts(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	records := []*entity.QueueRecord{
		{ID: 1, Key: entity.DeviceKey{UUID: "aaaa", Major: 1, Minor: 1}, RSSI: -70},
	}

	expectHousekeeping(fx, ctx)
	fx.queueRepo.EXPECT().Consolidate(ctx).Return(nil)
	fx.queueRepo.EXPECT().ListPending(ctx).Return(records, nil)
	fx.location.EXPECT().
		CurrentPosition(ctx).
		Return(nil, service.ErrPositionUnavailable)

	outcome, err := fx.service.RunCycle(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPositionUnavailable)
	assert.Nil(t, outcome)
}

func TestUploadService_RunCycle_NotReentrant(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	records := []*entity.QueueRecord{
		{ID: 1, Key: entity.DeviceKey{UUID: "aaaa", Major: 1, Minor: 1}, RSSI: -70},
	}
	details := &entity.UploadDetails{ResponseCode: 200}

	expectHousekeeping(fx, ctx)
	fx.queueRepo.EXPECT().Consolidate(ctx).Return(nil)
	fx.queueRepo.EXPECT().ListPending(ctx).Return(records, nil)
	fx.location.EXPECT().CurrentPosition(ctx).Return(&entity.Position{}, nil)

	fx.transport.EXPECT().
		Upload(ctx, mock.AnythingOfType("*service.UploadRequest")).
		RunAndReturn(func(innerCtx context.Context, _ *service.UploadRequest) (*entity.UploadDetails, error) {
			// A trigger that lands while this cycle is still in flight must be
			// a no-op.
			inner, err := fx.service.RunCycle(innerCtx)
			require.NoError(t, err)
			assert.False(t, inner.Attempted)

			return details, nil
		})
	fx.queueRepo.EXPECT().MarkUploaded(ctx, []int64{1}, details).Return(nil)

	outcome, err := fx.service.RunCycle(ctx)
	require.NoError(t, err)
	assert.True(t, outcome.Attempted)
}
