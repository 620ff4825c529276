package famimoni

import (
	"fmt"
	"log/slog"

	"github.com/mopp/fami-moni/famimoni/backend"
	"github.com/mopp/fami-moni/famimoni/debug"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/mopp/fami-moni/famimoni/input/action"
	"github.com/mopp/fami-moni/famimoni/input/event"
	"github.com/mopp/fami-moni/famimoni/timing"
)

// Run drives m with b, one frame per limiter tick, until the backend asks to
// quit or the monitor halts. After a halt the final frame is shown once more
// so the backend displays the last output. The backend must be initialized;
// Run does not clean it up.
func Run(m *Monitor, b backend.Backend, limiter timing.Limiter) error {
	quit := false

	manager := input.NewManager(m.Pad())
	manager.On(action.MonitorQuit, event.Press, func() {
		quit = true
	})
	manager.On(action.MonitorSnapshot, event.Press, func() {
		debug.TakeSnapshot(m.GetCurrentFrame())
	})
	if h, ok := b.(backend.ActionHandler); ok {
		for _, act := range []action.Action{action.DebugLogLevelIncrease, action.DebugLogLevelDecrease} {
			manager.On(act, event.Press, func() { h.HandleAction(act) })
		}
	}

	limiter.Reset()
	for {
		events, err := b.Update(m.GetCurrentFrame())
		if err != nil {
			return fmt.Errorf("backend update: %w", err)
		}
		for _, e := range events {
			manager.Trigger(e.Action, e.Type)
		}
		if quit {
			slog.Info("Quit requested", "frame", m.GetCurrentFrame().Number)
			return nil
		}

		m.RunUntilFrame()

		if m.Halted() {
			if _, err := b.Update(m.GetCurrentFrame()); err != nil {
				return fmt.Errorf("backend update: %w", err)
			}
			addr, _ := m.Target().Jump()
			slog.Info("Monitor halted", "addr", fmt.Sprintf("0x%04X", addr), "frame", m.GetCurrentFrame().Number)
			return nil
		}

		limiter.WaitForNextFrame()
	}
}
