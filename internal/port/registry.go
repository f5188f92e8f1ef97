// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"errors"

	"golang-vlandevd/internal/types"
)

// ErrParentUnavailable is returned by Claim when the parent device is
// absent or already exclusively held by another dependent.
var ErrParentUnavailable = errors.New("parent device unavailable")

// EventHandler receives lifecycle events for a device the caller has
// subscribed to. Delivery is synchronous on the publishing goroutine.
type EventHandler func(name string, event types.DeviceEvent)

// DeviceRegistry is a port for device resolution, presence tracking and
// the exclusive claim protocol. Devices are identified by name only;
// dependents never hold a direct reference to a parent device.
type DeviceRegistry interface {
	// Resolve reports whether a device entry exists, creating a
	// placeholder (absent, unclaimed) entry first when create is set.
	Resolve(name string, create bool) bool

	// Present reports whether the named device is currently present.
	Present(name string) bool

	// Subscribe registers child as a dependent observer of parent,
	// replacing any prior registration of the same child. The current
	// presence of the parent is delivered to the handler immediately.
	Subscribe(parent, child string, handler EventHandler)

	// Unsubscribe removes the child's registration. Safe to call when
	// the child was never subscribed.
	Unsubscribe(child string)

	// Claim takes the exclusive claim on parent for child. It fails
	// with ErrParentUnavailable when the parent is absent or claimed,
	// including a second claim by the same child.
	Claim(parent, child string) error

	// Release drops the claim held by child on parent.
	Release(parent, child string)

	// SetPresent records the presence of a device and delivers
	// Added/Removed events to its observers. Unknown names are ignored.
	SetPresent(name string, present bool)

	// SetLinkState delivers Up/Down events to the device's observers
	// without touching presence.
	SetLinkState(name string, up bool)
}
