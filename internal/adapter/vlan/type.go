// Package vlan implements the lifecycle and configuration-reload logic
// of VLAN sub-interfaces derived from a parent interface.
package vlan

import "golang-vlandevd/internal/types"

// DeviceType describes one VLAN device variant. The protocol of every
// device is fixed by the variant that created it.
type DeviceType struct {
	Name     string
	Protocol types.VlanProtocol
}

// Types returns the built-in device type descriptors. The host process
// passes these to its device construction path once at startup; there is
// no hidden self-registration.
func Types() []*DeviceType {
	return []*DeviceType{
		{Name: "8021q", Protocol: types.Proto8021Q},
		{Name: "8021ad", Protocol: types.Proto8021AD},
	}
}
