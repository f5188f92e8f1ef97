package vlan

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"golang-vlandevd/internal/pkg/logging"
	"golang-vlandevd/internal/pkg/metrics"
	"golang-vlandevd/internal/port"
	"golang-vlandevd/internal/types"
)

// State is the lifecycle state of a VLAN device.
type State int

const (
	StateDown State = iota
	StateActivating
	StateUp
	StateDeactivating
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateActivating:
		return "activating"
	case StateUp:
		return "up"
	case StateDeactivating:
		return "deactivating"
	default:
		return "down"
	}
}

// Device is a VLAN sub-interface derived from a parent interface. It
// owns its parent binding and configuration snapshot exclusively.
//
// All operations run to completion on a single logical goroutine; the
// device performs no locking of its own.
type Device struct {
	name string
	typ  *DeviceType

	binding    *ParentBinding
	config     types.VlanConfig
	parentName string
	// persisted holds the raw configuration accepted at the most
	// recent reload; replaced wholesale, never merged.
	persisted []byte

	present bool
	state   State

	registry port.DeviceRegistry
	link     port.LinkMechanism
	ops      port.DeviceOps

	onChange func(d *Device, present bool)

	log *logrus.Entry
}

// NewDevice creates a VLAN device of the given type variant and applies
// its initial raw configuration. The parent binding is established by a
// following ConfigInit call, mirroring how the surrounding registry
// drives device construction.
func NewDevice(name string, typ *DeviceType, registry port.DeviceRegistry, link port.LinkMechanism, ops port.DeviceOps, raw []byte) *Device {
	d := &Device{
		name:     name,
		typ:      typ,
		registry: registry,
		link:     link,
		ops:      ops,
		log:      logging.WithComponentAndDevice("vlan", name),
	}
	d.binding = newParentBinding(name, registry, d.setPresent)
	d.Reload(raw)
	return d
}

// Name returns the interface name of the device.
func (d *Device) Name() string {
	return d.name
}

// Type returns the device type variant.
func (d *Device) Type() *DeviceType {
	return d.typ
}

// State returns the current lifecycle state.
func (d *Device) State() State {
	return d.state
}

// Config returns the current validated configuration snapshot.
func (d *Device) Config() types.VlanConfig {
	return d.config
}

// Present reports whether the device may be activated, which tracks the
// presence of its bound parent.
func (d *Device) Present() bool {
	return d.present
}

// OnPresenceChange installs a hook invoked whenever the presence flag
// changes. Used by the interface manager to gate activation.
func (d *Device) OnPresenceChange(fn func(d *Device, present bool)) {
	d.onChange = fn
}

// ConfigInit establishes the parent binding from the most recently
// declared parent name.
func (d *Device) ConfigInit() {
	d.binding.Rebind(d.parentName)
}

// Activate brings the device up in three phases: claim the parent,
// create the derived link, set the link state. Every phase failure rolls
// back the phases before it; on failure the state remains Down and no
// acquired resource is leaked.
func (d *Device) Activate() error {
	if d.state == StateUp {
		return nil
	}
	d.state = StateActivating

	if err := d.binding.Claim(); err != nil {
		d.state = StateDown
		metrics.ActivationFailures.WithLabelValues("claim").Inc()
		return err
	}

	if err := d.link.CreateLink(d.name, d.binding.Parent(), d.config); err != nil {
		d.binding.Release()
		d.state = StateDown
		metrics.ActivationFailures.WithLabelValues("create").Inc()
		return fmt.Errorf("failed to create vlan link: %w", err)
	}

	if err := d.ops.SetState(d.name, true); err != nil {
		d.link.DestroyLink(d.name)
		d.binding.Release()
		d.state = StateDown
		metrics.ActivationFailures.WithLabelValues("up").Inc()
		return fmt.Errorf("failed to bring link up: %w", err)
	}

	d.state = StateUp
	metrics.Activations.Inc()
	d.log.WithField("parent", d.binding.Parent()).Info("Device activated")
	return nil
}

// Deactivate brings the device down. Teardown is best-effort: the result
// of the bring-down operation is discarded and link destruction and
// claim release always run, so the device always reaches Down.
func (d *Device) Deactivate() {
	d.state = StateDeactivating

	if err := d.ops.SetState(d.name, false); err != nil {
		d.log.WithError(err).Debug("Ignoring failure to bring link down")
	}
	d.link.DestroyLink(d.name)
	d.binding.Release()

	d.state = StateDown
	d.log.Info("Device deactivated")
}

// Close tears the device down for destruction: the observer registration
// is removed (safe if never bound) and the persisted configuration is
// discarded. The caller guarantees the device is Down.
func (d *Device) Close() {
	d.binding.Close()
	d.persisted = nil
}

// DumpInfo returns structured information about the device, including
// its parent and the delegated link info.
func (d *Device) DumpInfo() (map[string]any, error) {
	info, err := d.ops.DumpInfo(d.name)
	if err != nil {
		return nil, err
	}
	info["parent"] = d.binding.Parent()
	return info, nil
}

func (d *Device) setPresent(present bool) {
	if d.present == present {
		return
	}
	d.present = present
	d.log.WithField("present", present).Debug("Presence changed")
	if d.onChange != nil {
		d.onChange(d, present)
	}
}
