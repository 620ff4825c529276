package backend

import (
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/mopp/fami-moni/famimoni/input/event"
)

// PadEvents turns two samples of the pad lines into the events a backend
// reports: Press for lines that went down, Hold for lines still down and
// Release for lines that went up. Backends that can read key levels
// directly use it instead of synthesizing timeouts.
func PadEvents(prev, cur input.State) []InputEvent {
	var events []InputEvent
	for b := input.Button(0); b < input.ButtonCount; b++ {
		act := input.PadAction(b)
		switch was, is := prev.Held(b), cur.Held(b); {
		case is && !was:
			events = append(events, InputEvent{Action: act, Type: event.Press})
		case is && was:
			events = append(events, InputEvent{Action: act, Type: event.Hold})
		case was:
			events = append(events, InputEvent{Action: act, Type: event.Release})
		}
	}
	return events
}
