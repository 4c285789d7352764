package entity

// UploadStatus is the lifecycle state of a QueueRecord.
type UploadStatus string

// Queue record lifecycle states. A record is created PENDING, becomes
// UPLOADED after a successful batch upload (kept as history, never deleted on
// success) and may be parked FAILED; failed records move back to PENDING to
// be retried.
const (
	StatusPending   UploadStatus = "PENDING"
	StatusUploading UploadStatus = "UPLOADING"
	StatusUploaded  UploadStatus = "UPLOADED"
	StatusFailed    UploadStatus = "FAILED"
)

// QueueRecord is one upload candidate derived from a whitelisted sighting.
// At most one PENDING record exists per device key; while pending, the record
// with the strongest signal survives.
type QueueRecord struct {
	ID        int64        `json:"id"`         // Auto-assigned row id; reassigned when a stronger sighting replaces a pending record.
	Key       DeviceKey    `json:"key"`        // Identity of the beacon.
	RSSI      int          `json:"rssi"`       // Signal strength at enqueue time. Queue records always carry a measured value.
	Latitude  float64      `json:"latitude"`   // Gateway latitude captured at enqueue time.
	Longitude float64      `json:"longitude"`  // Gateway longitude captured at enqueue time.
	ScannedAt int64        `json:"scanned_at"` // Observation timestamp in milliseconds.
	Status    UploadStatus `json:"status"`     // Current lifecycle state.

	// Details holds transport diagnostics, populated only after an upload
	// attempt completed for this record.
	Details *UploadDetails `json:"details,omitempty"`
}

// UploadDetails captures the wire-level diagnostics of one upload attempt,
// kept alongside uploaded records for the history view.
type UploadDetails struct {
	RequestURL      string            `json:"request_url"`
	RequestBody     string            `json:"request_body"`
	RequestHeaders  map[string]string `json:"request_headers,omitempty"`
	ResponseCode    int               `json:"response_code"`
	ResponseBody    string            `json:"response_body"`
	ResponseHeaders map[string]string `json:"response_headers,omitempty"`
	DurationMillis  int64             `json:"duration_ms"`
	UploadedAt      int64             `json:"uploaded_at"` // Completion wall-clock timestamp in milliseconds.
}

// Position is a geographic fix supplied by the location collaborator.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
