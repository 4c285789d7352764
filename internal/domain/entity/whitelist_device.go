package entity

// WhitelistDevice is one allow-list entry synced from the collector. The set
// is replaced wholesale on every successful sync; membership is decided by
// the namespace UUID alone.
type WhitelistDevice struct {
	UUID       string `json:"uuid"`                  // Namespace UUID eligible for upload.
	Major      int    `json:"major"`                 // Major identifier reported by the collector.
	Minor      int    `json:"minor"`                 // Minor identifier reported by the collector.
	DeviceName string `json:"device_name"`           // Human-readable name for display.
	MACAddress string `json:"mac_address,omitempty"` // Optional hardware address.
	SyncedAt   int64  `json:"synced_at"`             // Timestamp of the sync that produced this entry, in milliseconds.
}
