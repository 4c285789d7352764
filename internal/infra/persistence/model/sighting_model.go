// Package model contains the GORM-specific structs of the persistence layer.
package model

import "receiver/internal/domain/entity"

// SightingModel is the GORM-specific struct for the 'scanned_beacons' table.
// Append-only observation history; the "no signal" sentinel lives only here,
// never in domain code.
type SightingModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	UUID        string  `gorm:"type:varchar(64);not null;index:idx_sighting_device"`
	Major       int     `gorm:"not null;index:idx_sighting_device"`
	Minor       int     `gorm:"not null;index:idx_sighting_device"`
	RSSI        int     `gorm:"not null"`
	Distance    float64 `gorm:"not null"`
	Whitelisted bool    `gorm:"not null;index"`
	ScannedAt   int64   `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SightingModel) TableName() string {
	return "scanned_beacons"
}

// ToSightingDomain converts a GORM SightingModel to a domain Sighting.
func ToSightingDomain(data *SightingModel) *entity.Sighting {
	if data == nil {
		return nil
	}

	return &entity.Sighting{
		ID:          data.ID,
		Key:         entity.DeviceKey{UUID: data.UUID, Major: data.Major, Minor: data.Minor},
		Signal:      entity.SignalFromStorage(data.RSSI),
		Distance:    data.Distance,
		Whitelisted: data.Whitelisted,
		ScannedAt:   data.ScannedAt,
		ScanCount:   1,
	}
}

// FromSightingDomain converts a domain Sighting to a GORM SightingModel.
func FromSightingDomain(data *entity.Sighting) *SightingModel {
	if data == nil {
		return nil
	}

	key := data.Key.Normalize()

	return &SightingModel{
		ID:          data.ID,
		UUID:        key.UUID,
		Major:       key.Major,
		Minor:       key.Minor,
		RSSI:        data.Signal.StorageRSSI(),
		Distance:    data.Distance,
		Whitelisted: data.Whitelisted,
		ScannedAt:   data.ScannedAt,
	}
}
