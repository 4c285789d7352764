package entity

// Sighting is one observed radio event: a beacon detected during a scan
// window, or a synthetic "no signal" entry for a tracked device that went
// quiet. Sightings are append-only history used for display and for
// rebuilding the tracked-device set at startup.
type Sighting struct {
	ID          int64     `json:"id"`           // Auto-assigned row id.
	Key         DeviceKey `json:"key"`          // Identity of the observed beacon.
	Signal      Signal    `json:"-"`            // Measured RSSI or absent.
	Distance    float64   `json:"distance"`     // Estimated distance in meters; 0 when signal is absent.
	Whitelisted bool      `json:"whitelisted"`  // Allow-list membership at observation time.
	ScannedAt   int64     `json:"scanned_at"`   // Observation wall-clock timestamp in milliseconds.
	ScanCount   int       `json:"scan_count"`   // Number of times this device has been observed.
}

// NoSignalSighting builds the synthetic entry recorded for a tracked device
// that was not seen in the current scan window. By construction it satisfies
// the invariant that an absent signal pairs with distance 0 and membership
// true.
func NoSignalSighting(key DeviceKey, scannedAt int64) Sighting {
	return Sighting{
		Key:         key,
		Signal:      SignalAbsent(),
		Distance:    0,
		Whitelisted: true,
		ScannedAt:   scannedAt,
	}
}
