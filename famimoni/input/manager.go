package input

import (
	"time"

	"github.com/mopp/fami-moni/famimoni/input/action"
	"github.com/mopp/fami-moni/famimoni/input/event"
)

const (
	// debounceDuration is the minimum time between debounced host events
	debounceDuration = 300 * time.Millisecond
)

// Manager routes backend actions: pad buttons go to the pad lines, every
// other action goes to the registered callbacks.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]map[event.Type]time.Time
	pad           *Pad
	now           func() time.Time
}

func NewManager(p *Pad) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]map[event.Type]time.Time),
		pad:           p,
		now:           time.Now,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	// pad lines follow the keys exactly, the edge detector does the rest
	if m.pad != nil && action.IsPad(act) {
		button := padButton(act)
		switch evt {
		case event.Press, event.Hold:
			m.pad.Press(button)
		case event.Release:
			m.pad.Release(button)
		}
		return
	}

	// Debounce Press and Release events
	if evt == event.Press || evt == event.Release {
		now := m.now()
		if m.lastTriggered[act] == nil {
			m.lastTriggered[act] = make(map[event.Type]time.Time)
		}
		lastTime, seen := m.lastTriggered[act][evt]
		if seen && now.Sub(lastTime) < debounceDuration {
			return
		}
		m.lastTriggered[act][evt] = now
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}

// padButton maps pad actions to pad lines
func padButton(act action.Action) Button {
	switch act {
	case action.PadA:
		return ButtonA
	case action.PadB:
		return ButtonB
	case action.PadSelect:
		return ButtonSelect
	case action.PadStart:
		return ButtonStart
	case action.PadUp:
		return ButtonUp
	case action.PadDown:
		return ButtonDown
	case action.PadLeft:
		return ButtonLeft
	default:
		return ButtonRight
	}
}

// PadAction maps a pad line back to its action.
func PadAction(b Button) action.Action {
	return action.PadA + action.Action(b)
}
