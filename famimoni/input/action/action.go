package action

// Action represents input actions a backend can report
type Action int

const (
	// Pad buttons
	PadA Action = iota
	PadB
	PadSelect
	PadStart
	PadUp
	PadDown
	PadLeft
	PadRight

	// Monitor host features
	MonitorSnapshot
	MonitorQuit
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by who consumes them
type Category int

const (
	CategoryPad Category = iota
	CategoryHost
	CategoryDebug
)

// Info describes an action for logs and help screens
type Info struct {
	Description string
	Category    Category
}

var infos = map[Action]Info{
	PadA:                  {"Pad A", CategoryPad},
	PadB:                  {"Pad B", CategoryPad},
	PadSelect:             {"Pad Select", CategoryPad},
	PadStart:              {"Pad Start", CategoryPad},
	PadUp:                 {"Pad Up", CategoryPad},
	PadDown:               {"Pad Down", CategoryPad},
	PadLeft:               {"Pad Left", CategoryPad},
	PadRight:              {"Pad Right", CategoryPad},
	MonitorSnapshot:       {"Save snapshot", CategoryHost},
	MonitorQuit:           {"Quit", CategoryHost},
	DebugLogLevelIncrease: {"Increase log level", CategoryDebug},
	DebugLogLevelDecrease: {"Decrease log level", CategoryDebug},
}

// GetInfo returns the description and category of act
func GetInfo(act Action) Info {
	if info, ok := infos[act]; ok {
		return info
	}
	return Info{Description: "Unknown", Category: CategoryHost}
}

// IsPad reports whether act is one of the eight pad buttons
func IsPad(act Action) bool {
	return act >= PadA && act <= PadRight
}
