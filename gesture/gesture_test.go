// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"reflect"
	"testing"

	"github.com/ouigo/oui/io/pointer"
)

const x = 3

func kinds(events []pointer.Event) []pointer.Kind {
	var ks []pointer.Kind
	for _, e := range events {
		ks = append(ks, e.Kind)
	}
	return ks
}

func TestPressSequence(t *testing.T) {
	for _, tc := range []struct {
		label   string
		samples []Sample
		// events are the kinds fired by the last sample.
		events []pointer.Kind
		state  State
		hot    int
		active int
	}{
		{
			label:   "hover",
			samples: []Sample{{Hit: x}},
			state:   Idle, hot: x, active: -1,
		},
		{
			label:   "press",
			samples: []Sample{{Hit: x}, {Hit: x, Down: true}},
			events:  []pointer.Kind{pointer.ButtonDown},
			state:   Capture, hot: -1, active: x,
		},
		{
			label:   "capture hovered",
			samples: []Sample{{Hit: x, Down: true}, {Hit: x, Down: true, WasDown: true}},
			events:  []pointer.Kind{pointer.Capture},
			state:   Capture, hot: x, active: x,
		},
		{
			label:   "capture off item",
			samples: []Sample{{Hit: x, Down: true}, {Hit: 0, Down: true, WasDown: true}},
			events:  []pointer.Kind{pointer.Capture},
			state:   Capture, hot: -1, active: x,
		},
		{
			label: "click",
			samples: []Sample{
				{Hit: x, Down: true},
				{Hit: 0, Down: true, WasDown: true},
				{Hit: x, WasDown: true},
			},
			events: []pointer.Kind{pointer.ButtonUp, pointer.HotUp},
			state:  Idle, hot: -1, active: -1,
		},
		{
			label: "release off item",
			samples: []Sample{
				{Hit: x, Down: true},
				{Hit: 0, Down: true, WasDown: true},
				{Hit: 0, WasDown: true},
			},
			events: []pointer.Kind{pointer.ButtonUp},
			state:  Idle, hot: -1, active: -1,
		},
		{
			label:   "press on nothing",
			samples: []Sample{{Hit: -1, Down: true}, {Hit: x, Down: true, WasDown: true}},
			state:   Capture, hot: -1, active: -1,
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			p := NewPress()
			var events []pointer.Event
			for _, s := range tc.samples {
				events = p.Update(events[:0], s)
			}
			if got := kinds(events); !reflect.DeepEqual(got, tc.events) {
				t.Errorf("events %v, want %v", got, tc.events)
			}
			for _, e := range events {
				if e.Item != x {
					t.Errorf("%v fired for item %d, want %d", e.Kind, e.Item, x)
				}
			}
			if p.State() != tc.state {
				t.Errorf("state %v, want %v", p.State(), tc.state)
			}
			if p.Hot != tc.hot || p.Active != tc.active {
				t.Errorf("hot, active = %d, %d; want %d, %d", p.Hot, p.Active, tc.hot, tc.active)
			}
		})
	}
}

func TestClearKeepsCapture(t *testing.T) {
	p := NewPress()
	p.Update(nil, Sample{Hit: x, Down: true})
	p.Clear()
	if p.State() != Capture {
		t.Fatalf("Clear dropped the capture")
	}
	if p.Hot != -1 || p.Active != -1 {
		t.Errorf("Clear left hot, active = %d, %d", p.Hot, p.Active)
	}
	// Without a re-resolved active item the release fires nothing.
	if evts := p.Update(nil, Sample{Hit: x, WasDown: true}); len(evts) != 0 {
		t.Errorf("release fired %v for a forgotten item", kinds(evts))
	}
	if p.State() != Idle {
		t.Errorf("state %v after release, want Idle", p.State())
	}
}
