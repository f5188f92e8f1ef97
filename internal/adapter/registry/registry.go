// Package registry provides an in-memory device registry adapter
// implementing the DeviceRegistry port.
//
// Devices are tracked by name only. Dependents subscribe by id and the
// registry delivers presence events to them, so no dependent ever holds
// a direct reference to a parent device that could dangle after removal.
package registry

import (
	"sync"

	"github.com/sirupsen/logrus"

	"golang-vlandevd/internal/pkg/logging"
	"golang-vlandevd/internal/port"
	"golang-vlandevd/internal/types"
)

type entry struct {
	present  bool
	claimant string
}

type subscription struct {
	parent  string
	handler port.EventHandler
}

// Registry is an in-memory implementation of the DeviceRegistry port.
type Registry struct {
	mu sync.Mutex

	entries map[string]*entry
	// subs is the (child, parent) relation table; a child observes at
	// most one parent at a time.
	subs map[string]subscription

	log *logrus.Entry
}

// Ensure Registry implements the DeviceRegistry port
var _ port.DeviceRegistry = (*Registry)(nil)

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		subs:    make(map[string]subscription),
		log:     logging.WithComponent("registry"),
	}
}

// Resolve reports whether a device entry exists, creating a placeholder
// entry first when create is set. The empty name never resolves.
func (r *Registry) Resolve(name string, create bool) bool {
	if name == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		return true
	}
	if !create {
		return false
	}

	r.entries[name] = &entry{}
	r.log.WithField("device", name).Debug("Created placeholder device entry")
	return true
}

// Present reports whether the named device is currently present.
func (r *Registry) Present(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[name]
	return ok && e.present
}

// Subscribe registers child as a dependent observer of parent, replacing
// any prior registration of the same child. The parent's current
// presence is delivered synchronously so a late subscriber does not miss
// an earlier Added event.
func (r *Registry) Subscribe(parent, child string, handler port.EventHandler) {
	r.mu.Lock()
	delete(r.subs, child)

	e, ok := r.entries[parent]
	if !ok {
		e = &entry{}
		r.entries[parent] = e
	}
	r.subs[child] = subscription{parent: parent, handler: handler}
	present := e.present
	r.mu.Unlock()

	if present {
		handler(parent, types.DeviceAdded)
	} else {
		handler(parent, types.DeviceRemoved)
	}
}

// Unsubscribe removes the child's registration. Idempotent.
func (r *Registry) Unsubscribe(child string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subs, child)
}

// Claim takes the exclusive claim on parent for child. At most one
// dependent holds the claim at a time; a second claim fails even when it
// comes from the current holder.
func (r *Registry) Claim(parent, child string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[parent]
	if !ok || !e.present {
		return port.ErrParentUnavailable
	}
	if e.claimant != "" {
		return port.ErrParentUnavailable
	}

	e.claimant = child
	r.log.WithFields(logrus.Fields{"device": parent, "claimant": child}).Debug("Device claimed")
	return nil
}

// Release drops the claim held by child on parent. Releasing a claim the
// child does not hold is a no-op.
func (r *Registry) Release(parent, child string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[parent]
	if !ok || e.claimant != child {
		return
	}

	e.claimant = ""
	r.log.WithFields(logrus.Fields{"device": parent, "claimant": child}).Debug("Device released")
}

// SetPresent records the presence of a device and delivers Added/Removed
// events to its observers. Unknown names are ignored so kernel links the
// daemon does not care about stay out of the table.
func (r *Registry) SetPresent(name string, present bool) {
	r.mu.Lock()
	e, ok := r.entries[name]
	if !ok || e.present == present {
		r.mu.Unlock()
		return
	}
	e.present = present
	handlers := r.observersOf(name)
	r.mu.Unlock()

	event := types.DeviceRemoved
	if present {
		event = types.DeviceAdded
	}
	r.log.WithFields(logrus.Fields{"device": name, "event": event.String()}).Debug("Device presence changed")
	for _, handler := range handlers {
		handler(name, event)
	}
}

// SetLinkState delivers Up/Down events to the device's observers without
// touching presence.
func (r *Registry) SetLinkState(name string, up bool) {
	r.mu.Lock()
	if _, ok := r.entries[name]; !ok {
		r.mu.Unlock()
		return
	}
	handlers := r.observersOf(name)
	r.mu.Unlock()

	event := types.DeviceDown
	if up {
		event = types.DeviceUp
	}
	for _, handler := range handlers {
		handler(name, event)
	}
}

// observersOf collects the handlers subscribed to name. Called with the
// lock held; handlers are invoked after it is dropped so a handler may
// call back into the registry.
func (r *Registry) observersOf(name string) []port.EventHandler {
	var handlers []port.EventHandler
	for _, sub := range r.subs {
		if sub.parent == name {
			handlers = append(handlers, sub.handler)
		}
	}
	return handlers
}
