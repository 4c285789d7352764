// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks of managed components.
const DefaultTimeout = 10 * time.Second
