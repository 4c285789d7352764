package usecase

import "context"

// CycleOutcome summarizes one completed upload cycle.
type CycleOutcome struct {
	Attempted bool `json:"attempted"` // Whether a payload was actually sent.
	Records   int  `json:"records"`   // Number of queue records marked UPLOADED.
	Beacons   int  `json:"beacons"`   // Number of beacons in the sent payload after UUID-level dedup.
}

// UploadUsecase drives the periodic drain of the upload queue: consolidate,
// resolve position, send with failover, transition statuses. Cycles are
// non-reentrant; a trigger while one is in flight is a no-op.
type UploadUsecase interface {
	// RunCycle executes one upload cycle. A nil error with Attempted=false
	// means there was nothing to upload or a cycle was already running. A
	// failed send parks the records FAILED; the next cycle requeues them.
	RunCycle(ctx context.Context) (*CycleOutcome, error)
}
