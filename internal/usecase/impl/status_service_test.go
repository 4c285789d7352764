package impl

import (
	"context"
	"log/slog"
	"testing"

	"receiver/internal/domain/entity"
	mockRepo "receiver/internal/mocks/repository"
	mockUC "receiver/internal/mocks/usecase"
	"receiver/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statusServiceFixtures holds all test dependencies for status service tests.
type statusServiceFixtures struct {
	service       usecase.StatusUsecase
	queueRepo     *mockRepo.MockUploadQueueRepository
	sightingRepo  *mockRepo.MockSightingRepository
	whitelistRepo *mockRepo.MockWhitelistRepository
	scan          *mockUC.MockScanUsecase
	allowList     *mockUC.MockAllowListUsecase
}

func createTestStatusService(t *testing.T) statusServiceFixtures {
	queueRepo := mockRepo.NewMockUploadQueueRepository(t)
	sightingRepo := mockRepo.NewMockSightingRepository(t)
	whitelistRepo := mockRepo.NewMockWhitelistRepository(t)
	scan := mockUC.NewMockScanUsecase(t)
	allowList := mockUC.NewMockAllowListUsecase(t)

	service := NewStatusService(queueRepo, sightingRepo, whitelistRepo, scan, allowList, slog.New(slog.DiscardHandler))

	return statusServiceFixtures{
		service:       service,
		queueRepo:     queueRepo,
		sightingRepo:  sightingRepo,
		whitelistRepo: whitelistRepo,
		scan:          scan,
		allowList:     allowList,
	}
}

func TestStatusService_Snapshot_Aggregates(t *testing.T) {
	fx := createTestStatusService(t)
	ctx := context.Background()

	fx.queueRepo.EXPECT().CountByStatus(ctx, entity.StatusPending).Return(int64(12), nil)
	fx.queueRepo.EXPECT().CountByStatus(ctx, entity.StatusUploaded).Return(int64(40), nil)
	fx.sightingRepo.EXPECT().Count(ctx).Return(int64(500), nil)
	fx.whitelistRepo.EXPECT().Count(ctx).Return(int64(3), nil)
	fx.scan.EXPECT().TrackedDeviceCount().Return(2)
	fx.scan.EXPECT().MaxDistance().Return(17.5)
	fx.allowList.EXPECT().LastSyncedAt().Return(int64(1234))

	snapshot, err := fx.service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), snapshot.PendingCount)
	assert.Equal(t, int64(40), snapshot.UploadedCount)
	assert.Equal(t, int64(500), snapshot.SightingCount)
	assert.Equal(t, int64(3), snapshot.WhitelistCount)
	assert.Equal(t, 2, snapshot.TrackedDevices)
	assert.Equal(t, 17.5, snapshot.MaxDistance)
	assert.Equal(t, int64(1234), snapshot.LastAllowSyncAt)
}

func TestStatusService_Snapshot_CountFailure(t *testing.T) {
	fx := createTestStatusService(t)
	ctx := context.Background()

	fx.queueRepo.EXPECT().
		CountByStatus(ctx, entity.StatusPending).
		Return(int64(0), errors.New("database locked"))

	snapshot, err := fx.service.Snapshot(ctx)
	require.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestStatusService_ClearAllData(t *testing.T) {
	fx := createTestStatusService(t)
	ctx := context.Background()

	fx.queueRepo.EXPECT().DeleteAll(ctx).Return(nil)
	fx.sightingRepo.EXPECT().DeleteAll(ctx).Return(nil)
	fx.whitelistRepo.EXPECT().DeleteAll(ctx).Return(nil)
	fx.scan.EXPECT().ResetMaxDistance().Return()
	fx.scan.EXPECT().Init(ctx).Return(nil)

	require.NoError(t, fx.service.ClearAllData(ctx))
}

func TestStatusService_RecentScans_PassesThrough(t *testing.T) {
	fx := createTestStatusService(t)
	ctx := context.Background()

	sightings := []*entity.Sighting{{ID: 1, Key: entity.DeviceKey{UUID: "aaaa"}}}
	fx.sightingRepo.EXPECT().ListRecent(ctx, 20).Return(sightings, nil)

	got, err := fx.service.RecentScans(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, sightings, got)
}

func TestStatusService_RecentUploads_PassesThrough(t *testing.T) {
	fx := createTestStatusService(t)
	ctx := context.Background()

	records := []*entity.QueueRecord{{ID: 9, Status: entity.StatusUploaded}}
	fx.queueRepo.EXPECT().ListRecentUploaded(ctx, 10).Return(records, nil)

	got, err := fx.service.RecentUploads(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
