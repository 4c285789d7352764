// Package service defines interfaces for external collaborators of the core.
package service

import (
	"context"

	"receiver/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPositionUnavailable is returned when no usable fix can be obtained. The
// upload cycle treats it as a transient condition and retries later without
// touching queue state.
var ErrPositionUnavailable = errors.New("current position unavailable")

// LocationProvider supplies the gateway's geographic position for upload
// cycles. Implementations may reuse a cached fix when the device has not
// moved meaningfully since the last request.
type LocationProvider interface {
	// CurrentPosition returns the best available fix, or
	// ErrPositionUnavailable when none exists.
	CurrentPosition(ctx context.Context) (*entity.Position, error)
}
