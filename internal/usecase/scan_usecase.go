// Package usecase defines the application-level interfaces of the receiver.
package usecase

import (
	"context"

	"receiver/internal/domain/entity"
)

// RawSighting is one beacon observation as pushed by the scan source.
type RawSighting struct {
	Key       entity.DeviceKey // Identity of the detected beacon.
	RSSI      int              // Measured signal strength.
	Distance  float64          // Estimated distance in meters.
	ScannedAt int64            // Observation timestamp in milliseconds.
}

// ScanUsecase ingests scan windows from the radio driver. It records every
// sighting, gates whitelisted ones into the upload queue, maintains the
// in-memory tracked-device set and synthesizes "no signal" sightings for
// tracked devices that went quiet.
type ScanUsecase interface {
	// Init rebuilds the tracked-device set from the sighting store. Called
	// once at startup before the first batch.
	Init(ctx context.Context) error

	// HandleScanBatch processes one scan window. The position is the fix the
	// batch was observed at; when nil, whitelisted sightings are still
	// recorded but not enqueued.
	HandleScanBatch(ctx context.Context, batch []RawSighting, position *entity.Position) error

	// MaxDistance returns the largest estimated distance observed since
	// startup or the last reset.
	MaxDistance() float64

	// ResetMaxDistance clears the max-distance statistic.
	ResetMaxDistance()

	// TrackedDeviceCount returns the size of the tracked-device set.
	TrackedDeviceCount() int
}
