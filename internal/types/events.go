package types

// DeviceEvent describes a lifecycle event of a device in the registry.
type DeviceEvent int

const (
	// DeviceAdded is delivered when a device appears in the system.
	DeviceAdded DeviceEvent = iota
	// DeviceRemoved is delivered when a device disappears.
	DeviceRemoved
	// DeviceUp is delivered when a device's link transitions to up.
	DeviceUp
	// DeviceDown is delivered when a device's link transitions to down.
	DeviceDown
)

// String returns a short name for the event.
func (e DeviceEvent) String() string {
	switch e {
	case DeviceAdded:
		return "added"
	case DeviceRemoved:
		return "removed"
	case DeviceUp:
		return "up"
	case DeviceDown:
		return "down"
	default:
		return "unknown"
	}
}
