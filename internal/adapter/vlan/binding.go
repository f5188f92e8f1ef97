package vlan

import (
	"golang-vlandevd/internal/port"
	"golang-vlandevd/internal/types"
)

// ParentBinding manages a device's back-reference to its parent
// interface: the observer registration plus the exclusive claim that
// prevents the parent from being reused elsewhere while held.
//
// The binding never holds a handle to the parent, only its name; all
// state lives in the registry and is addressed by id.
type ParentBinding struct {
	child   string
	parent  string
	claimed bool

	registry   port.DeviceRegistry
	onPresence func(present bool)
}

func newParentBinding(child string, registry port.DeviceRegistry, onPresence func(bool)) *ParentBinding {
	return &ParentBinding{
		child:      child,
		registry:   registry,
		onPresence: onPresence,
	}
}

// Parent returns the currently bound parent name, empty for "no parent".
func (b *ParentBinding) Parent() string {
	return b.parent
}

// Claimed reports whether the binding currently holds the claim.
func (b *ParentBinding) Claimed() bool {
	return b.claimed
}

// Rebind points the binding at parent, replacing any prior observer
// registration. An empty name unbinds. The parent entry is created as a
// placeholder when it does not exist yet. A claim held on a different
// previous parent is released first so claim/release stay paired.
func (b *ParentBinding) Rebind(parent string) {
	if b.claimed && parent != b.parent {
		b.Release()
	}
	b.parent = parent
	if parent == "" {
		b.registry.Unsubscribe(b.child)
		b.onPresence(false)
		return
	}

	b.registry.Resolve(parent, true)
	b.registry.Subscribe(parent, b.child, b.handleEvent)
}

// Claim takes the exclusive claim on the bound parent. Not reentrant:
// claiming while already claimed fails.
func (b *ParentBinding) Claim() error {
	if b.claimed || b.parent == "" {
		return port.ErrParentUnavailable
	}
	if err := b.registry.Claim(b.parent, b.child); err != nil {
		return err
	}
	b.claimed = true
	return nil
}

// Release drops the claim. Guarded by the claimed flag so error-path
// cleanup can call it unconditionally.
func (b *ParentBinding) Release() {
	if !b.claimed {
		return
	}
	b.registry.Release(b.parent, b.child)
	b.claimed = false
}

// Close removes the observer registration. Idempotent and safe when the
// binding was never bound.
func (b *ParentBinding) Close() {
	b.registry.Unsubscribe(b.child)
}

// handleEvent is the parent lifecycle callback. Only Added and Removed
// drive the device's presence; everything else is ignored.
func (b *ParentBinding) handleEvent(_ string, event types.DeviceEvent) {
	switch event {
	case types.DeviceAdded:
		b.onPresence(true)
	case types.DeviceRemoved:
		b.onPresence(false)
	default:
	}
}
