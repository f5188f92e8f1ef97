// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"golang-vlandevd/internal/pkg/attrs"
	"golang-vlandevd/internal/types"
)

// LinkMechanism is a port for the OS-level mechanism that creates and
// destroys derived network links.
type LinkMechanism interface {
	// CreateLink creates the derived VLAN link name on top of the
	// parent interface using the given configuration.
	CreateLink(name, parent string, cfg types.VlanConfig) error

	// DestroyLink removes the derived link. Best-effort; a missing
	// link is not an error.
	DestroyLink(name string)
}

// DeviceOps is a port for generic device operations that are independent
// of the VLAN semantics of a link.
type DeviceOps interface {
	// InitSettings records the generic interface settings (mtu,
	// macaddr, txqueuelen) to apply when the link is created.
	InitSettings(name string, settings attrs.AttrSet)

	// SetState brings the interface up or down.
	SetState(name string, up bool) error

	// DumpInfo returns structured information about the interface.
	DumpInfo(name string) (map[string]any, error)
}
