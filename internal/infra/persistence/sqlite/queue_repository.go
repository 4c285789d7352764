package sqlite

import (
	"context"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/repository"
	"receiver/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// consolidateSQL deletes, per device key, every PENDING row except the one
// with the maximum RSSI; ties keep the lowest id (first enqueued). Running it
// twice is a no-op.
const consolidateSQL = `
DELETE FROM beacon_queue
WHERE upload_status = 'PENDING'
AND EXISTS (
	SELECT 1 FROM beacon_queue AS b
	WHERE b.upload_status = 'PENDING'
	AND b.uuid = beacon_queue.uuid
	AND b.major = beacon_queue.major
	AND b.minor = beacon_queue.minor
	AND (b.rssi > beacon_queue.rssi
		OR (b.rssi = beacon_queue.rssi AND b.id < beacon_queue.id))
)`

// uploadQueueRepository implements the repository.UploadQueueRepository interface.
type uploadQueueRepository struct {
	db         *gorm.DB
	queueLimit int
}

// NewUploadQueueRepository is the constructor for uploadQueueRepository.
func NewUploadQueueRepository(db *gorm.DB, cfg *config.Config) repository.UploadQueueRepository {
	return &uploadQueueRepository{
		db:         db,
		queueLimit: cfg.Cache.QueueLimit,
	}
}

// Enqueue keeps the strongest pending signal per device. The whole
// lookup/replace/insert sequence runs in one transaction so concurrent
// enqueues for the same device cannot leave two PENDING rows behind.
func (repo *uploadQueueRepository) Enqueue(ctx context.Context, record *entity.QueueRecord) (int64, error) {
	record.Status = entity.StatusPending
	recordM := model.FromQueueDomain(record)

	var id int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.QueueRecordModel
		findErr := tx.
			Where("uuid = ? AND major = ? AND minor = ? AND upload_status = ?",
				recordM.UUID, recordM.Major, recordM.Minor, string(entity.StatusPending)).
			Order("rssi DESC").
			First(&existing).Error

		switch {
		case findErr == nil:
			if recordM.RSSI <= existing.RSSI {
				// The queued record is at least as strong; discard the new
				// sighting and report the surviving row.
				id = existing.ID

				return nil
			}

			// Stronger signal replaces the pending record, id and all.
			if err := tx.
				Where("uuid = ? AND major = ? AND minor = ? AND upload_status = ?",
					recordM.UUID, recordM.Major, recordM.Minor, string(entity.StatusPending)).
				Delete(&model.QueueRecordModel{}).Error; err != nil {
				return errors.Wrap(err, "failed to delete superseded pending record")
			}
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			// First pending record for this device.
		default:
			return errors.Wrap(findErr, "failed to look up pending record")
		}

		if err := tx.Create(recordM).Error; err != nil {
			return errors.Wrap(err, "failed to insert queue record")
		}
		id = recordM.ID

		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := repo.EnforceCapacity(ctx, repo.queueLimit); err != nil {
		return 0, err
	}

	record.ID = id

	return id, nil
}

func (repo *uploadQueueRepository) Consolidate(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Exec(consolidateSQL).Error; err != nil {
		return errors.Wrap(err, "failed to consolidate pending records")
	}

	return nil
}

func (repo *uploadQueueRepository) ListPending(ctx context.Context) ([]*entity.QueueRecord, error) {
	var recordModels []*model.QueueRecordModel

	if err := repo.db.WithContext(ctx).
		Where("upload_status = ?", string(entity.StatusPending)).
		Order("scanned_at ASC, id ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending records")
	}

	records := make([]*entity.QueueRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, model.ToQueueDomain(recordM))
	}

	return records, nil
}

// UpdateStatus applies a guarded bulk transition: PENDING may move to
// UPLOADED or FAILED, and FAILED back to PENDING for retry. Rows in any other
// state are left untouched rather than silently rewritten.
func (repo *uploadQueueRepository) UpdateStatus(ctx context.Context, ids []int64, status entity.UploadStatus) error {
	if len(ids) == 0 {
		return nil
	}

	source, err := transitionSource(status)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.QueueRecordModel{}).
		Where("id IN ? AND upload_status = ?", ids, source).
		Update("upload_status", string(status)).Error; err != nil {
		return errors.Wrap(err, "failed to update record status")
	}

	return nil
}

func (repo *uploadQueueRepository) MarkUploaded(ctx context.Context, ids []int64, details *entity.UploadDetails) error {
	if len(ids) == 0 {
		return nil
	}
	if details == nil {
		return repo.UpdateStatus(ctx, ids, entity.StatusUploaded)
	}

	diag := &model.QueueRecordModel{}
	diag.ApplyDetails(details)

	updates := map[string]any{
		"upload_status":    string(entity.StatusUploaded),
		"request_url":      diag.RequestURL,
		"request_body":     diag.RequestBody,
		"request_headers":  diag.RequestHeaders,
		"response_code":    diag.ResponseCode,
		"response_body":    diag.ResponseBody,
		"response_headers": diag.ResponseHeaders,
		"duration_millis":  diag.DurationMillis,
		"uploaded_at":      diag.UploadedAt,
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.QueueRecordModel{}).
		Where("id IN ? AND upload_status = ?", ids, string(entity.StatusPending)).
		Updates(updates).Error; err != nil {
		return errors.Wrap(err, "failed to mark records uploaded")
	}

	return nil
}

// RequeueFailed flips every FAILED record back to PENDING in one statement.
func (repo *uploadQueueRepository) RequeueFailed(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.QueueRecordModel{}).
		Where("upload_status = ?", string(entity.StatusFailed)).
		Update("upload_status", string(entity.StatusPending))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to requeue failed records")
	}

	return result.RowsAffected, nil
}

// EnforceCapacity is a hard, status-agnostic cap: the oldest rows go first
// even when they are still pending.
func (repo *uploadQueueRepository) EnforceCapacity(ctx context.Context, limit int) error {
	if limit <= 0 {
		return nil
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.QueueRecordModel{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to count queue records")
		}

		excess := count - int64(limit)
		if excess <= 0 {
			return nil
		}

		if err := tx.Exec(
			`DELETE FROM beacon_queue WHERE id IN (
				SELECT id FROM beacon_queue ORDER BY scanned_at ASC, id ASC LIMIT ?
			)`, excess).Error; err != nil {
			return errors.Wrap(err, "failed to evict oldest queue records")
		}

		return nil
	})
}

func (repo *uploadQueueRepository) PruneUploadedBefore(ctx context.Context, cutoff int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("upload_status = ? AND scanned_at < ?", string(entity.StatusUploaded), cutoff).
		Delete(&model.QueueRecordModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune uploaded records")
	}

	return result.RowsAffected, nil
}

func (repo *uploadQueueRepository) CountByStatus(ctx context.Context, status entity.UploadStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.QueueRecordModel{}).
		Where("upload_status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count records by status")
	}

	return count, nil
}

func (repo *uploadQueueRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.QueueRecordModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count queue records")
	}

	return count, nil
}

func (repo *uploadQueueRepository) ListRecentUploaded(ctx context.Context, limit int) ([]*entity.QueueRecord, error) {
	var recordModels []*model.QueueRecordModel

	if err := repo.db.WithContext(ctx).
		Where("upload_status = ?", string(entity.StatusUploaded)).
		Where(`id IN (
			SELECT MAX(id) FROM beacon_queue
			WHERE upload_status = 'UPLOADED'
			GROUP BY uuid, major, minor
		)`).
		Order("scanned_at DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list uploaded records")
	}

	records := make([]*entity.QueueRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, model.ToQueueDomain(recordM))
	}

	return records, nil
}

func (repo *uploadQueueRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.QueueRecordModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete queue records")
	}

	return nil
}

func transitionSource(target entity.UploadStatus) (string, error) {
	switch target {
	case entity.StatusUploaded, entity.StatusFailed:
		return string(entity.StatusPending), nil
	case entity.StatusPending:
		return string(entity.StatusFailed), nil
	default:
		return "", repository.ErrIllegalTransition
	}
}
