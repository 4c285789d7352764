// Package entity contains the core business objects of the project.
package entity

import "strings"

// NoSignalRSSI is the storage sentinel recorded for a tracked device that was
// not detected during a scan window. Domain code never compares against it
// directly; use Signal instead.
const NoSignalRSSI = -999

// DeviceKey is the composite identity of one physical beacon:
// namespace UUID plus the major/minor pair. UUIDs are compared
// case-insensitively.
type DeviceKey struct {
	UUID  string `json:"uuid"`  // Namespace UUID of the beacon advertisement.
	Major int    `json:"major"` // Major identifier within the namespace.
	Minor int    `json:"minor"` // Minor identifier within the namespace.
}

// Normalize returns the key with its UUID lower-cased so keys are comparable
// regardless of how the radio driver reported them.
func (k DeviceKey) Normalize() DeviceKey {
	k.UUID = strings.ToLower(k.UUID)

	return k
}

// Equal reports whether two keys name the same physical beacon.
func (k DeviceKey) Equal(other DeviceKey) bool {
	return strings.EqualFold(k.UUID, other.UUID) && k.Major == other.Major && k.Minor == other.Minor
}

// Signal is a tagged signal-strength value: either a measured RSSI or
// "no signal observed". Modeling absence explicitly keeps sentinel values out
// of comparison logic.
type Signal struct {
	rssi    int
	present bool
}

// SignalPresent returns a Signal carrying a measured RSSI.
func SignalPresent(rssi int) Signal {
	return Signal{rssi: rssi, present: true}
}

// SignalAbsent returns the "no signal observed" variant.
func SignalAbsent() Signal {
	return Signal{}
}

// Present reports whether an RSSI was measured.
func (s Signal) Present() bool {
	return s.present
}

// RSSI returns the measured value. Only meaningful when Present is true.
func (s Signal) RSSI() int {
	return s.rssi
}

// Stronger reports whether s is strictly stronger than other. RSSI values are
// negative dBm readings, so larger means stronger (-60 beats -70). An absent
// signal is never stronger than anything.
func (s Signal) Stronger(other Signal) bool {
	if !s.present {
		return false
	}
	if !other.present {
		return true
	}

	return s.rssi > other.rssi
}

// StorageRSSI converts the signal to its persisted integer form, mapping the
// absent variant to the NoSignalRSSI sentinel.
func (s Signal) StorageRSSI() int {
	if !s.present {
		return NoSignalRSSI
	}

	return s.rssi
}

// SignalFromStorage rebuilds a Signal from its persisted integer form.
func SignalFromStorage(rssi int) Signal {
	if rssi == NoSignalRSSI {
		return SignalAbsent()
	}

	return SignalPresent(rssi)
}
