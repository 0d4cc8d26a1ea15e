// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router hit tests solved layouts and routes pointer events to
the items that subscribed to them.

Events are queued while a frame is processed and delivered in one
batch by Dispatch, once the layout and the interaction state of the
frame are final. Queued events remain readable through Events until
the Router is reset.
*/
package router

import (
	"golang.org/x/exp/slices"

	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/layout"
)

// Router queues and delivers the events of a frame.
type Router struct {
	events []pointer.Event
	// dispatched is the number of events already handed to
	// handlers.
	dispatched int
	// drained is the number of events already returned by Events.
	drained int
}

// Queue adds events for delivery by the next Dispatch.
func (r *Router) Queue(events ...pointer.Event) {
	r.events = append(r.events, events...)
}

// Dispatch delivers every queued event not yet dispatched to the
// handler of its item, if the item subscribed to the event kind.
func (r *Router) Dispatch(a *layout.Arena) {
	for r.dispatched < len(r.events) {
		e := r.events[r.dispatched]
		r.dispatched++
		if e.Item < 0 || e.Item >= a.Len() {
			continue
		}
		it := a.At(e.Item)
		if it.Handler != nil && it.Events.Contain(e.Kind) {
			it.Handler.Event(e)
		}
	}
}

// Events returns the events queued since the previous call to
// Events, including events no handler subscribed to.
func (r *Router) Events() []pointer.Event {
	if r.drained == len(r.events) {
		return nil
	}
	evts := slices.Clone(r.events[r.drained:])
	r.drained = len(r.events)
	return evts
}

// Reset discards all events.
func (r *Router) Reset() {
	r.events = r.events[:0]
	r.dispatched = 0
	r.drained = 0
}
