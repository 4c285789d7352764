// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"receiver/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for queue persistence.
var (
	// ErrIllegalTransition is returned when a bulk status update names a
	// transition outside PENDING→UPLOADED, PENDING→FAILED or FAILED→PENDING.
	ErrIllegalTransition = errors.New("illegal upload status transition")
)

// UploadQueueRepository maintains the set of upload-candidate records with
// the one-PENDING-per-device invariant and a bounded footprint. All mutating
// operations are transactional; the scan producer and the upload consumer
// call into it concurrently.
type UploadQueueRepository interface {
	// Enqueue inserts a new PENDING record for the given candidate, keeping
	// the strongest signal per device: a strictly stronger sighting replaces
	// an existing pending record (the returned id is the new row's), while a
	// weaker or equal one is discarded and the existing record's id is
	// returned unchanged.
	Enqueue(ctx context.Context, record *entity.QueueRecord) (int64, error)

	// Consolidate deletes, per device key, every PENDING record except the
	// one with the maximum signal strength (ties keep the earliest row).
	// Idempotent; safe to run concurrently with Enqueue.
	Consolidate(ctx context.Context) error

	// ListPending returns all PENDING records ordered by scan timestamp
	// ascending.
	ListPending(ctx context.Context) ([]*entity.QueueRecord, error)

	// UpdateStatus transitions the given records in bulk. Rows not in a legal
	// source state for the requested transition are left untouched.
	UpdateStatus(ctx context.Context, ids []int64, status entity.UploadStatus) error

	// MarkUploaded transitions PENDING records to UPLOADED and attaches the
	// transport diagnostics of the batch that subsumed them.
	MarkUploaded(ctx context.Context, ids []int64, details *entity.UploadDetails) error

	// RequeueFailed moves every FAILED record back to PENDING so the next
	// cycle retries it. Returns the number of records requeued.
	RequeueFailed(ctx context.Context) (int64, error)

	// EnforceCapacity deletes the oldest rows, irrespective of status, until
	// at most limit rows remain.
	EnforceCapacity(ctx context.Context, limit int) error

	// PruneUploadedBefore deletes UPLOADED rows scanned before the cutoff
	// timestamp (milliseconds) and returns the number removed.
	PruneUploadedBefore(ctx context.Context, cutoff int64) (int64, error)

	// CountByStatus returns the number of records in the given state.
	CountByStatus(ctx context.Context, status entity.UploadStatus) (int64, error)

	// Count returns the total number of records.
	Count(ctx context.Context) (int64, error)

	// ListRecentUploaded returns the latest uploaded record per device for
	// the history view, newest first, capped at limit.
	ListRecentUploaded(ctx context.Context, limit int) ([]*entity.QueueRecord, error)

	// DeleteAll wipes the queue. Used by the clear-data trigger.
	DeleteAll(ctx context.Context) error
}
