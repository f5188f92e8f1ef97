package vlan

import (
	"golang-vlandevd/internal/pkg/attrs"
	"golang-vlandevd/internal/pkg/metrics"
	"golang-vlandevd/internal/pkg/qosmap"
	"golang-vlandevd/internal/types"
)

// ChangeType classifies a configuration reload.
type ChangeType int

const (
	// ApplyInPlace means the running device can absorb the change live.
	ApplyInPlace ChangeType = iota
	// MustRestart means the device has to be torn down and recreated.
	MustRestart
)

// String returns a short name for the classification.
func (c ChangeType) String() string {
	if c == MustRestart {
		return "restart"
	}
	return "applied"
}

// deviceSchema covers the generic interface attributes shared by every
// device type; their semantics are delegated to the device operations.
var deviceSchema = attrs.Schema{
	{Name: "mtu", Kind: attrs.Int},
	{Name: "macaddr", Kind: attrs.String},
	{Name: "txqueuelen", Kind: attrs.Int},
}

// vlandevSchema covers the VLAN-specific attributes.
var vlandevSchema = attrs.Schema{
	{Name: "ifname", Kind: attrs.String},
	{Name: "vid", Kind: attrs.Int},
	{Name: "ingress_qos_mapping", Kind: attrs.Array},
	{Name: "egress_qos_mapping", Kind: attrs.Array},
}

// Reload applies new raw configuration bytes and classifies the change
// against the previously accepted configuration.
//
// The first configuration is always ApplyInPlace; afterwards the new and
// persisted blobs are decoded against both schemas independently and any
// field difference in either forces MustRestart. When a prior
// configuration existed the parent binding is re-established from the
// newly declared parent regardless of the classification. The persisted
// blob is replaced in every case.
func (d *Device) Reload(raw []byte) ChangeType {
	change := ApplyInPlace

	devAttrs := attrs.Decode(raw, deviceSchema)
	vlanAttrs := attrs.Decode(raw, vlandevSchema)

	d.ops.InitSettings(d.name, devAttrs)
	d.applySettings(vlanAttrs)
	d.parentName, _ = vlanAttrs.String("ifname")

	if d.persisted != nil {
		oldDevAttrs := attrs.Decode(d.persisted, deviceSchema)
		oldVlanAttrs := attrs.Decode(d.persisted, vlandevSchema)

		if attrs.Diff(devAttrs, oldDevAttrs, deviceSchema) {
			change = MustRestart
		}
		if attrs.Diff(vlanAttrs, oldVlanAttrs, vlandevSchema) {
			change = MustRestart
		}

		d.binding.Rebind(d.parentName)
	}

	d.persisted = append([]byte(nil), raw...)
	metrics.Reloads.WithLabelValues(change.String()).Inc()
	d.log.WithField("result", change.String()).Debug("Configuration reloaded")
	return change
}

// applySettings populates the configuration snapshot from the decoded
// VLAN attributes. The protocol is fixed by the device type and the VID
// defaults to 1. A mapping list that fails to parse degrades to an empty
// table with a warning; ingress and egress are independent.
func (d *Device) applySettings(set attrs.AttrSet) {
	cfg := types.VlanConfig{
		Protocol: d.typ.Protocol,
		VID:      1,
	}

	if vid, ok := set.Int("vid"); ok {
		cfg.VID = uint16(vid)
	}

	if list, ok := set.Array("ingress_qos_mapping"); ok {
		mappings, err := qosmap.Parse(list, qosmap.DefaultCapacity)
		if err != nil {
			d.log.WithError(err).Warn("Ignoring ingress_qos_mapping")
		} else {
			cfg.IngressQosMaps = mappings
		}
	}

	if list, ok := set.Array("egress_qos_mapping"); ok {
		mappings, err := qosmap.Parse(list, qosmap.DefaultCapacity)
		if err != nil {
			d.log.WithError(err).Warn("Ignoring egress_qos_mapping")
		} else {
			cfg.EgressQosMaps = mappings
		}
	}

	d.config = cfg
}
