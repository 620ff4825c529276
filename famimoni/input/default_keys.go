package input

import "github.com/mopp/fami-moni/famimoni/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// Pad
	"z":     action.PadA,
	"x":     action.PadB,
	"Enter": action.PadStart,
	"Shift": action.PadSelect,
	"Tab":   action.PadSelect,
	"Up":    action.PadUp,
	"Down":  action.PadDown,
	"Left":  action.PadLeft,
	"Right": action.PadRight,

	// Alternative arrow keys (WASD)
	"w": action.PadUp,
	"s": action.PadDown,
	"a": action.PadLeft,
	"d": action.PadRight,

	// Host controls
	"F9":     action.MonitorSnapshot,
	"Escape": action.MonitorQuit,
	"q":      action.MonitorQuit,

	// Debug controls
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease, // Alternative without shift
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease, // Alternative with shift
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
