package backend

import (
	"log/slog"

	"github.com/mopp/fami-moni/famimoni/input/action"
	"github.com/mopp/fami-moni/famimoni/input/event"
	"github.com/mopp/fami-moni/famimoni/video"
)

// Backend is a host platform for the monitor (display + input).
// Backends are responsible for:
// - Drawing the committed picture state on their output
// - Reporting host input as pad and host actions
// - Handling backend-specific features (log panes, snapshots)
type Backend interface {
	// Init configures the backend. It must be called before Update.
	Init(config BackendConfig) error

	// Update draws frame and returns the input events seen since the last
	// call. Pad buttons are reported as Press, Hold and Release so the
	// monitor sees the level of each line on every frame.
	Update(frame *video.Frame) ([]InputEvent, error)

	// Cleanup releases resources when shutting down
	Cleanup() error
}

// InputEvent is one action reported by a backend.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title string
	Scale int
	// LogLevel is the lowest level a backend installing its own log
	// handler keeps.
	LogLevel slog.Level
}

// ActionHandler is implemented by backends with features of their own
// (log filters, debug panes). The run loop forwards debug actions to it.
type ActionHandler interface {
	HandleAction(act action.Action)
}
