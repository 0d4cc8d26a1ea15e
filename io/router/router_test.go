// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"testing"

	"github.com/ouigo/oui/io/pointer"
)

func TestDispatchSubscription(t *testing.T) {
	a, child, grand := newTree(t)
	var got []pointer.Kind
	it := a.At(child)
	it.Handler = pointer.HandlerFunc(func(e pointer.Event) {
		if e.Item != child {
			t.Errorf("handler of %d notified for %d", child, e.Item)
		}
		got = append(got, e.Kind)
	})
	it.Events = pointer.ButtonUp | pointer.HotUp

	var r Router
	r.Queue(
		pointer.Event{Kind: pointer.ButtonDown, Item: child},
		pointer.Event{Kind: pointer.ButtonUp, Item: child},
		pointer.Event{Kind: pointer.HotUp, Item: child},
		pointer.Event{Kind: pointer.HotUp, Item: grand},
	)
	r.Dispatch(a)
	if len(got) != 2 || got[0] != pointer.ButtonUp || got[1] != pointer.HotUp {
		t.Fatalf("delivered %v, want [ButtonUp HotUp]", got)
	}
	// A second Dispatch must not deliver the same events again.
	r.Dispatch(a)
	if len(got) != 2 {
		t.Errorf("events delivered twice: %v", got)
	}
}

func TestEventsDrain(t *testing.T) {
	var r Router
	r.Queue(pointer.Event{Kind: pointer.ButtonDown, Item: 1}, pointer.Event{Kind: pointer.Capture, Item: 2})
	if n := len(r.Events()); n != 2 {
		t.Fatalf("Events returned %d events, want 2", n)
	}
	if evts := r.Events(); evts != nil {
		t.Errorf("second Events call returned %v", evts)
	}
	r.Queue(pointer.Event{Kind: pointer.ButtonUp, Item: 2})
	if evts := r.Events(); len(evts) != 1 || evts[0].Kind != pointer.ButtonUp {
		t.Errorf("Events after Queue = %v", evts)
	}
	r.Reset()
	if evts := r.Events(); evts != nil {
		t.Errorf("Events after Reset = %v", evts)
	}
}
