package network

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"golang-vlandevd/internal/pkg/logging"
)

// LinkEvent is one kernel link change observed by the watcher.
type LinkEvent struct {
	Name    string
	Present bool
	Up      bool
}

// Watcher translates kernel link notifications into LinkEvents. The
// consumer applies them to the device registry, keeping event delivery
// on a single goroutine.
type Watcher struct {
	log *logrus.Entry
}

// NewWatcher creates a link watcher.
func NewWatcher() *Watcher {
	return &Watcher{log: logging.WithComponent("watcher")}
}

// Run subscribes to kernel link updates and forwards them until the
// context is cancelled. An initial sweep of existing links is reported
// first so consumers see the current state.
func (w *Watcher) Run(ctx context.Context, events chan<- LinkEvent) error {
	updates := make(chan netlink.LinkUpdate, 64)
	done := make(chan struct{})
	defer close(done)

	if err := netlink.LinkSubscribe(updates, done); err != nil {
		return fmt.Errorf("failed to subscribe to link updates: %w", err)
	}

	links, err := netlink.LinkList()
	if err != nil {
		return fmt.Errorf("failed to list links: %w", err)
	}
	for _, link := range links {
		la := link.Attrs()
		if !w.send(ctx, events, LinkEvent{Name: la.Name, Present: true, Up: la.Flags&net.FlagUp != 0}) {
			return ctx.Err()
		}
	}

	w.log.WithField("links", len(links)).Info("Watching kernel link updates")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			la := update.Link.Attrs()
			switch update.Header.Type {
			case unix.RTM_NEWLINK:
				if !w.send(ctx, events, LinkEvent{Name: la.Name, Present: true, Up: la.Flags&net.FlagUp != 0}) {
					return ctx.Err()
				}
			case unix.RTM_DELLINK:
				if !w.send(ctx, events, LinkEvent{Name: la.Name, Present: false}) {
					return ctx.Err()
				}
			}
		}
	}
}

func (w *Watcher) send(ctx context.Context, events chan<- LinkEvent, event LinkEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
