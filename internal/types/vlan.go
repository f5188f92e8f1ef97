// Package types defines common types used across the application.
package types

// VlanProtocol identifies the VLAN tagging protocol of a device.
// The value is derived from the device type variant that created the
// device and is never user-settable.
type VlanProtocol int

const (
	Proto8021Q  VlanProtocol = iota // IEEE 802.1Q
	Proto8021AD                     // IEEE 802.1ad (QinQ)
)

// String returns the device type name for the protocol.
func (p VlanProtocol) String() string {
	switch p {
	case Proto8021AD:
		return "8021ad"
	default:
		return "8021q"
	}
}

// QosMapping remaps a single traffic priority across the VLAN boundary.
type QosMapping struct {
	From uint32
	To   uint32
}

// VlanConfig is the validated configuration snapshot of a VLAN device.
// The mapping tables are ordered and either fully decoded or empty; a
// partially decoded table is never produced.
type VlanConfig struct {
	Protocol       VlanProtocol
	VID            uint16
	IngressQosMaps []QosMapping
	EgressQosMaps  []QosMapping
}
