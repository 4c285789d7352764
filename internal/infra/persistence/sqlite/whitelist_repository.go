package sqlite

import (
	"context"

	"receiver/internal/domain/entity"
	"receiver/internal/domain/repository"
	"receiver/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// whitelistRepository implements the repository.WhitelistRepository interface.
type whitelistRepository struct {
	db *gorm.DB
}

// NewWhitelistRepository is the constructor for whitelistRepository.
func NewWhitelistRepository(db *gorm.DB) repository.WhitelistRepository {
	return &whitelistRepository{db: db}
}

// ReplaceAll swaps the stored allow-list in one transaction so readers never
// observe a half-synced table.
func (repo *whitelistRepository) ReplaceAll(ctx context.Context, devices []*entity.WhitelistDevice) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.WhitelistDeviceModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear whitelist")
		}

		if len(devices) == 0 {
			return nil
		}

		deviceModels := make([]*model.WhitelistDeviceModel, 0, len(devices))
		for _, device := range devices {
			deviceModels = append(deviceModels, model.FromWhitelistDomain(device))
		}

		if err := tx.Create(&deviceModels).Error; err != nil {
			return errors.Wrap(err, "failed to insert whitelist entries")
		}

		return nil
	})
}

func (repo *whitelistRepository) ListAll(ctx context.Context) ([]*entity.WhitelistDevice, error) {
	var deviceModels []*model.WhitelistDeviceModel

	if err := repo.db.WithContext(ctx).
		Order("device_name ASC, uuid ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list whitelist entries")
	}

	devices := make([]*entity.WhitelistDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, model.ToWhitelistDomain(deviceM))
	}

	return devices, nil
}

func (repo *whitelistRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WhitelistDeviceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count whitelist entries")
	}

	return count, nil
}

func (repo *whitelistRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.WhitelistDeviceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete whitelist entries")
	}

	return nil
}
