package impl

import (
	"strings"

	"receiver/internal/domain/entity"
	"receiver/internal/usecase"
)

// strongestPerDevice collapses a scan batch to one observation per device
// key. A strictly stronger signal replaces the kept entry; ties keep the
// first occurrence. Keys come back normalized and first-seen order is
// preserved.
func strongestPerDevice(batch []usecase.RawSighting) []usecase.RawSighting {
	index := make(map[entity.DeviceKey]int, len(batch))
	result := make([]usecase.RawSighting, 0, len(batch))

	for _, raw := range batch {
		raw.Key = raw.Key.Normalize()

		if at, ok := index[raw.Key]; ok {
			if raw.RSSI > result[at].RSSI {
				result[at] = raw
			}

			continue
		}

		index[raw.Key] = len(result)
		result = append(result, raw)
	}

	return result
}

// strongestPerUUID collapses pending records to one wire beacon per namespace
// UUID. A strictly stronger record replaces the kept one; ties keep the
// earlier record, so the result is stable across runs.
func strongestPerUUID(records []*entity.QueueRecord) []*entity.QueueRecord {
	index := make(map[string]int, len(records))
	result := make([]*entity.QueueRecord, 0, len(records))

	for _, record := range records {
		uuid := strings.ToLower(record.Key.UUID)

		if at, ok := index[uuid]; ok {
			if record.RSSI > result[at].RSSI {
				result[at] = record
			}

			continue
		}

		index[uuid] = len(result)
		result = append(result, record)
	}

	return result
}
