package impl

import (
	"testing"

	"receiver/internal/domain/entity"
	"receiver/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrongestPerDevice_KeepsStrongerAndNormalizes(t *testing.T) {
	batch := []usecase.RawSighting{
		{Key: entity.DeviceKey{UUID: "AAAA-BBBB", Major: 1, Minor: 2}, RSSI: -70},
		{Key: entity.DeviceKey{UUID: "aaaa-bbbb", Major: 1, Minor: 2}, RSSI: -60},
		{Key: entity.DeviceKey{UUID: "cccc-dddd", Major: 3, Minor: 4}, RSSI: -80},
	}

	deduped := strongestPerDevice(batch)
	require.Len(t, deduped, 2)
	assert.Equal(t, "aaaa-bbbb", deduped[0].Key.UUID)
	assert.Equal(t, -60, deduped[0].RSSI)
	assert.Equal(t, "cccc-dddd", deduped[1].Key.UUID)
}

func TestStrongestPerDevice_EqualSignalKeepsFirst(t *testing.T) {
	batch := []usecase.RawSighting{
		{Key: entity.DeviceKey{UUID: "aaaa", Major: 1, Minor: 1}, RSSI: -70, Distance: 5},
		{Key: entity.DeviceKey{UUID: "aaaa", Major: 1, Minor: 1}, RSSI: -70, Distance: 9},
	}

	deduped := strongestPerDevice(batch)
	require.Len(t, deduped, 1)
	assert.Equal(t, 5.0, deduped[0].Distance)
}

func TestStrongestPerUUID_CollapsesAcrossMajorMinor(t *testing.T) {
	records := []*entity.QueueRecord{
		{ID: 1, Key: entity.DeviceKey{UUID: "aaaa", Major: 1, Minor: 1}, RSSI: -70},
		{ID: 2, Key: entity.DeviceKey{UUID: "AAAA", Major: 2, Minor: 2}, RSSI: -60},
		{ID: 3, Key: entity.DeviceKey{UUID: "bbbb", Major: 1, Minor: 1}, RSSI: -90},
	}

	batch := strongestPerUUID(records)
	require.Len(t, batch, 2)
	assert.Equal(t, int64(2), batch[0].ID)
	assert.Equal(t, int64(3), batch[1].ID)
}

func TestStrongestPerUUID_EqualSignalKeepsFirst(t *testing.T) {
	records := []*entity.QueueRecord{
		{ID: 1, Key: entity.DeviceKey{UUID: "aaaa", Major: 1, Minor: 1}, RSSI: -70},
		{ID: 2, Key: entity.DeviceKey{UUID: "aaaa", Major: 2, Minor: 2}, RSSI: -70},
	}

	batch := strongestPerUUID(records)
	require.Len(t, batch, 1)
	assert.Equal(t, int64(1), batch[0].ID)
}
