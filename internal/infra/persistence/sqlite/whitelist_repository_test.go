package sqlite

import (
	"context"
	"testing"

	"receiver/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitelistRepository_ReplaceAll_SwapsWholesale(t *testing.T) {
	repo := NewWhitelistRepository(createTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*entity.WhitelistDevice{
		{UUID: "aaaa", Major: 1, Minor: 1, DeviceName: "Tag A", SyncedAt: 1000},
		{UUID: "bbbb", Major: 2, Minor: 2, DeviceName: "Tag B", SyncedAt: 1000},
	}))

	require.NoError(t, repo.ReplaceAll(ctx, []*entity.WhitelistDevice{
		{UUID: "cccc", Major: 3, Minor: 3, DeviceName: "Tag C", SyncedAt: 2000},
	}))

	devices, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "cccc", devices[0].UUID)
	assert.Equal(t, int64(2000), devices[0].SyncedAt)
}

func TestWhitelistRepository_ReplaceAll_EmptyListClearsTable(t *testing.T) {
	repo := NewWhitelistRepository(createTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*entity.WhitelistDevice{
		{UUID: "aaaa", Major: 1, Minor: 1, DeviceName: "Tag A"},
	}))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestWhitelistRepository_ListAll_OrderedByName(t *testing.T) {
	repo := NewWhitelistRepository(createTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*entity.WhitelistDevice{
		{UUID: "bbbb", DeviceName: "Zebra"},
		{UUID: "aaaa", DeviceName: "Apple"},
	}))

	devices, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "Apple", devices[0].DeviceName)
	assert.Equal(t, "Zebra", devices[1].DeviceName)
}

func TestWhitelistRepository_DeleteAll(t *testing.T) {
	repo := NewWhitelistRepository(createTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*entity.WhitelistDevice{
		{UUID: "aaaa", DeviceName: "Tag A"},
	}))
	require.NoError(t, repo.DeleteAll(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
