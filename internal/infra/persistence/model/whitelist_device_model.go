package model

import "receiver/internal/domain/entity"

// WhitelistDeviceModel is the GORM-specific struct for the 'whitelist_devices'
// table. The whole table is replaced on every successful allow-list sync.
type WhitelistDeviceModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UUID       string `gorm:"type:varchar(64);not null;index"`
	Major      int    `gorm:"not null"`
	Minor      int    `gorm:"not null"`
	DeviceName string `gorm:"type:varchar(255);not null"`
	MACAddress string `gorm:"type:varchar(64)"`
	SyncedAt   int64  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WhitelistDeviceModel) TableName() string {
	return "whitelist_devices"
}

// ToWhitelistDomain converts a GORM WhitelistDeviceModel to a domain WhitelistDevice.
func ToWhitelistDomain(data *WhitelistDeviceModel) *entity.WhitelistDevice {
	if data == nil {
		return nil
	}

	return &entity.WhitelistDevice{
		UUID:       data.UUID,
		Major:      data.Major,
		Minor:      data.Minor,
		DeviceName: data.DeviceName,
		MACAddress: data.MACAddress,
		SyncedAt:   data.SyncedAt,
	}
}

// FromWhitelistDomain converts a domain WhitelistDevice to a GORM WhitelistDeviceModel.
func FromWhitelistDomain(data *entity.WhitelistDevice) *WhitelistDeviceModel {
	if data == nil {
		return nil
	}

	return &WhitelistDeviceModel{
		UUID:       data.UUID,
		Major:      data.Major,
		Minor:      data.Minor,
		DeviceName: data.DeviceName,
		MACAddress: data.MACAddress,
		SyncedAt:   data.SyncedAt,
	}
}
