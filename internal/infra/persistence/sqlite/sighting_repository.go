package sqlite

import (
	"context"

	"receiver/internal/domain/entity"
	"receiver/internal/domain/repository"
	"receiver/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recentScansSQL returns the latest sighting per device together with how
// often the device has been observed.
const recentScansSQL = `
SELECT
	s.id, s.uuid, s.major, s.minor, s.rssi, s.distance, s.whitelisted,
	s.scanned_at, c.scan_count
FROM scanned_beacons AS s
INNER JOIN (
	SELECT uuid, major, minor, MAX(scanned_at) AS max_time, COUNT(*) AS scan_count
	FROM scanned_beacons
	GROUP BY uuid, major, minor
) AS c
	ON s.uuid = c.uuid AND s.major = c.major AND s.minor = c.minor
	AND s.scanned_at = c.max_time
ORDER BY s.scanned_at DESC
LIMIT ?`

// sightingRepository implements the repository.SightingRepository interface.
type sightingRepository struct {
	db *gorm.DB
}

// NewSightingRepository is the constructor for sightingRepository.
func NewSightingRepository(db *gorm.DB) repository.SightingRepository {
	return &sightingRepository{db: db}
}

func (repo *sightingRepository) Record(ctx context.Context, sighting *entity.Sighting) error {
	sightingM := model.FromSightingDomain(sighting)

	if err := repo.db.WithContext(ctx).Create(sightingM).Error; err != nil {
		return errors.Wrap(err, "failed to record sighting")
	}
	sighting.ID = sightingM.ID

	return nil
}

func (repo *sightingRepository) RecordBatch(ctx context.Context, sightings []*entity.Sighting) error {
	if len(sightings) == 0 {
		return nil
	}

	sightingModels := make([]*model.SightingModel, 0, len(sightings))
	for _, sighting := range sightings {
		sightingModels = append(sightingModels, model.FromSightingDomain(sighting))
	}

	if err := repo.db.WithContext(ctx).Create(&sightingModels).Error; err != nil {
		return errors.Wrap(err, "failed to record sighting batch")
	}

	for i, sightingM := range sightingModels {
		sightings[i].ID = sightingM.ID
	}

	return nil
}

func (repo *sightingRepository) DistinctTrackedDevices(ctx context.Context) ([]entity.DeviceKey, error) {
	type deviceRow struct {
		UUID  string
		Major int
		Minor int
	}

	var rows []deviceRow
	if err := repo.db.WithContext(ctx).
		Model(&model.SightingModel{}).
		Distinct("uuid", "major", "minor").
		Where("whitelisted = ?", true).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tracked devices")
	}

	keys := make([]entity.DeviceKey, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, entity.DeviceKey{UUID: row.UUID, Major: row.Major, Minor: row.Minor})
	}

	return keys, nil
}

func (repo *sightingRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Sighting, error) {
	type scanRow struct {
		model.SightingModel
		ScanCount int
	}

	var rows []scanRow
	if err := repo.db.WithContext(ctx).
		Raw(recentScansSQL, limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent sightings")
	}

	sightings := make([]*entity.Sighting, 0, len(rows))
	for i := range rows {
		sighting := model.ToSightingDomain(&rows[i].SightingModel)
		sighting.ScanCount = rows[i].ScanCount
		sightings = append(sightings, sighting)
	}

	return sightings, nil
}

func (repo *sightingRepository) PruneOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("scanned_at < ?", cutoff).
		Delete(&model.SightingModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune old sightings")
	}

	return result.RowsAffected, nil
}

func (repo *sightingRepository) EnforceCapacity(ctx context.Context, limit int) error {
	if limit <= 0 {
		return nil
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.SightingModel{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to count sightings")
		}

		excess := count - int64(limit)
		if excess <= 0 {
			return nil
		}

		if err := tx.Exec(
			`DELETE FROM scanned_beacons WHERE id IN (
				SELECT id FROM scanned_beacons ORDER BY scanned_at ASC, id ASC LIMIT ?
			)`, excess).Error; err != nil {
			return errors.Wrap(err, "failed to evict oldest sightings")
		}

		return nil
	})
}

func (repo *sightingRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SightingModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sightings")
	}

	return count, nil
}

func (repo *sightingRepository) CountWhitelisted(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SightingModel{}).
		Where("whitelisted = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count whitelisted sightings")
	}

	return count, nil
}

func (repo *sightingRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.SightingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sightings")
	}

	return nil
}
