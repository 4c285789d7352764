package model

import (
	"encoding/json"

	"receiver/internal/domain/entity"
)

// QueueRecordModel is the GORM-specific struct for the 'beacon_queue' table.
// One row per upload candidate; the repository guarantees at most one PENDING
// row per (uuid, major, minor).
type QueueRecordModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	UUID         string  `gorm:"type:varchar(64);not null;index:idx_queue_device"`
	Major        int     `gorm:"not null;index:idx_queue_device"`
	Minor        int     `gorm:"not null;index:idx_queue_device"`
	RSSI         int     `gorm:"not null"`
	Latitude     float64 `gorm:"not null"`
	Longitude    float64 `gorm:"not null"`
	ScannedAt    int64   `gorm:"not null;index"`
	UploadStatus string  `gorm:"type:varchar(16);not null;index"`

	// Transport diagnostics, set only after an upload attempt. Header maps
	// are stored as JSON text.
	RequestURL      *string `gorm:"type:text"`
	RequestBody     *string `gorm:"type:text"`
	RequestHeaders  *string `gorm:"type:text"`
	ResponseCode    *int
	ResponseBody    *string `gorm:"type:text"`
	ResponseHeaders *string `gorm:"type:text"`
	DurationMillis  *int64
	UploadedAt      *int64
}

// TableName explicitly sets the table name for GORM.
func (QueueRecordModel) TableName() string {
	return "beacon_queue"
}

// ToQueueDomain converts a GORM QueueRecordModel to a domain QueueRecord.
func ToQueueDomain(data *QueueRecordModel) *entity.QueueRecord {
	if data == nil {
		return nil
	}

	record := &entity.QueueRecord{
		ID:        data.ID,
		Key:       entity.DeviceKey{UUID: data.UUID, Major: data.Major, Minor: data.Minor},
		RSSI:      data.RSSI,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		ScannedAt: data.ScannedAt,
		Status:    entity.UploadStatus(data.UploadStatus),
	}

	if data.RequestURL != nil {
		details := &entity.UploadDetails{
			RequestURL:      *data.RequestURL,
			RequestHeaders:  decodeHeaders(data.RequestHeaders),
			ResponseHeaders: decodeHeaders(data.ResponseHeaders),
		}
		if data.RequestBody != nil {
			details.RequestBody = *data.RequestBody
		}
		if data.ResponseCode != nil {
			details.ResponseCode = *data.ResponseCode
		}
		if data.ResponseBody != nil {
			details.ResponseBody = *data.ResponseBody
		}
		if data.DurationMillis != nil {
			details.DurationMillis = *data.DurationMillis
		}
		if data.UploadedAt != nil {
			details.UploadedAt = *data.UploadedAt
		}
		record.Details = details
	}

	return record
}

// FromQueueDomain converts a domain QueueRecord to a GORM QueueRecordModel.
func FromQueueDomain(data *entity.QueueRecord) *QueueRecordModel {
	if data == nil {
		return nil
	}

	key := data.Key.Normalize()
	record := &QueueRecordModel{
		ID:           data.ID,
		UUID:         key.UUID,
		Major:        key.Major,
		Minor:        key.Minor,
		RSSI:         data.RSSI,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		ScannedAt:    data.ScannedAt,
		UploadStatus: string(data.Status),
	}

	if data.Details != nil {
		record.ApplyDetails(data.Details)
	}

	return record
}

// ApplyDetails stores upload diagnostics on the model.
func (m *QueueRecordModel) ApplyDetails(details *entity.UploadDetails) {
	m.RequestURL = &details.RequestURL
	m.RequestBody = &details.RequestBody
	m.RequestHeaders = encodeHeaders(details.RequestHeaders)
	m.ResponseCode = &details.ResponseCode
	m.ResponseBody = &details.ResponseBody
	m.ResponseHeaders = encodeHeaders(details.ResponseHeaders)
	m.DurationMillis = &details.DurationMillis
	m.UploadedAt = &details.UploadedAt
}

func encodeHeaders(headers map[string]string) *string {
	if len(headers) == 0 {
		return nil
	}

	raw, err := json.Marshal(headers)
	if err != nil {
		return nil
	}
	encoded := string(raw)

	return &encoded
}

func decodeHeaders(raw *string) map[string]string {
	if raw == nil || *raw == "" {
		return nil
	}

	var headers map[string]string
	if err := json.Unmarshal([]byte(*raw), &headers); err != nil {
		return nil
	}

	return headers
}
