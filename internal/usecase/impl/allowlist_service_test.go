package impl

import (
	"context"
	"log/slog"
	"testing"

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

// allowListServiceFixtures holds all test dependencies for allow-list tests.
type allowListServiceFixtures struct {
	service       usecase.AllowListUsecase
	source        *mockSvc.MockAllowListSource
	whitelistRepo *mockRepo.MockWhitelistRepository
}

func createTestAllowListService(t *testing.T) allowListServiceFixtures {
	source := mockSvc.NewMockAllowListSource(t)
	whitelistRepo := mockRepo.NewMockWhitelistRepository(t)

	service := NewAllowListService(source, whitelistRepo, slog.New(slog.DiscardHandler))

	return allowListServiceFixtures{
		service:       service,
		source:        source,
		whitelistRepo: whitelistRepo,
	}
}

func TestAllowListService_IsMember_ClosedBeforeFirstSync(t *testing.T) {
	fx := createTestAllowListService(t)

	assert.False(t, fx.service.IsMember("aaaa-bbbb"))
	assert.Zero(t, fx.service.LastSyncedAt())
}

func TestAllowListService_Sync_PopulatesGate(t *testing.T) {
	fx := createTestAllowListService(t)
	ctx := context.Background()

	fx.source.EXPECT().
		Fetch(ctx).
		Return(&service.AllowListSnapshot{
			Success: true,
			Devices: []*entity.WhitelistDevice{
				{UUID: "AAAA-BBBB", Major: 1, Minor: 1, DeviceName: "badge-1"},
			},
			Count: 1,
		}, nil)
	fx.whitelistRepo.EXPECT().
		ReplaceAll(ctx, mock.MatchedBy(func(devices []*entity.WhitelistDevice) bool {
			return len(devices) == 1 && devices[0].SyncedAt > 0
		})).
		Return(nil)

	count, err := fx.service.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.True(t, fx.service.IsMember("aaaa-bbbb"))
	assert.True(t, fx.service.IsMember("AAAA-BBBB"))
	assert.False(t, fx.service.IsMember("cccc-dddd"))
	assert.Positive(t, fx.service.LastSyncedAt())
}

func TestAllowListService_Sync_EmptyListTracksEverything(t *testing.T) {
	fx := createTestAllowListService(t)
	ctx := context.Background()

	fx.source.EXPECT().
		Fetch(ctx).
		Return(&service.AllowListSnapshot{Success: true}, nil)
	fx.whitelistRepo.EXPECT().
		ReplaceAll(ctx, mock.AnythingOfType("[]*entity.WhitelistDevice")).
		Return(nil)

	count, err := fx.service.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.True(t, fx.service.IsMember("anything-at-all"))
}

func TestAllowListService_Sync_FailureKeepsPreviousGeneration(t *testing.T) {
	fx := createTestAllowListService(t)
	ctx := context.Background()

	fx.source.EXPECT().
		Fetch(ctx).
		Return(&service.AllowListSnapshot{
			Success: true,
			Devices: []*entity.WhitelistDevice{
				{UUID: "aaaa-bbbb", Major: 1, Minor: 1},
			},
		}, nil).
		Once()
	fx.whitelistRepo.EXPECT().
		ReplaceAll(ctx, mock.AnythingOfType("[]*entity.WhitelistDevice")).
		Return(nil).
		Once()

	_, err := fx.service.Sync(ctx)
	require.NoError(t, err)
	syncedAt := fx.service.LastSyncedAt()

	fx.source.EXPECT().
		Fetch(ctx).
		Return(nil, errors.New("collector unreachable")).
		Once()

	_, err = fx.service.Sync(ctx)
	require.Error(t, err)

	assert.True(t, fx.service.IsMember("aaaa-bbbb"))
	assert.Equal(t, syncedAt, fx.service.LastSyncedAt())
}

func TestAllowListService_Init_SeedsFromStore(t *testing.T) {
	fx := createTestAllowListService(t)
	ctx := context.Background()

	fx.whitelistRepo.EXPECT().
		ListAll(ctx).
		Return([]*entity.WhitelistDevice{
			{UUID: "AAAA-BBBB", Major: 1, Minor: 1},
		}, nil)

	require.NoError(t, fx.service.Init(ctx))
	assert.True(t, fx.service.IsMember("aaaa-bbbb"))
	assert.Zero(t, fx.service.LastSyncedAt())
}

func TestAllowListService_Init_EmptyStoreLeavesGateClosed(t *testing.T) {
	fx := createTestAllowListService(t)
	ctx := context.Background()

	fx.whitelistRepo.EXPECT().ListAll(ctx).Return(nil, nil)

	require.NoError(t, fx.service.Init(ctx))
	assert.False(t, fx.service.IsMember("aaaa-bbbb"))
}

func TestAllowListService_Devices_PassesThrough(t *testing.T) {
	fx := createTestAllowListService(t)
	ctx := context.Background()

	devices := []*entity.WhitelistDevice{{UUID: "aaaa", DeviceName: "badge-1"}}
	fx.whitelistRepo.EXPECT().ListAll(ctx).Return(devices, nil)

	got, err := fx.service.Devices(ctx)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
