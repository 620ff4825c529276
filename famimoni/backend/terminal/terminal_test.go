package terminal

import (
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mopp/fami-moni/famimoni/backend"
	"github.com/mopp/fami-moni/famimoni/input/action"
	"github.com/mopp/fami-moni/famimoni/input/event"
	"github.com/mopp/fami-moni/famimoni/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBackend(t *testing.T) (*Backend, tcell.SimulationScreen, *clock) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	c := &clock{t: time.Unix(1000, 0)}

	b := NewWithScreen(sim)
	b.now = c.now
	require.NoError(t, b.Init(backend.BackendConfig{Title: "test", LogLevel: slog.LevelInfo}))
	sim.SetSize(80, 40)
	t.Cleanup(func() { _ = b.Cleanup() })
	return b, sim, c
}

func testFrame() *video.Frame {
	p := video.New()
	p.Init(video.DefaultPalettes)
	p.WriteVRAM(video.NameTableBase+32, '>')
	p.WriteVRAM(video.NameTableBase+33, '7')
	p.SetSprite(0, video.Sprite{Y: 16, Tile: '_', X: 8})
	p.VBlank()
	return p.Frame()
}

func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	runes := cells[y*w+x].Runes
	if len(runes) == 0 {
		return ' '
	}
	return runes[0]
}

func TestRenderGrid(t *testing.T) {
	b, sim, _ := newTestBackend(t)

	_, err := b.Update(testFrame())
	require.NoError(t, err)

	// the grid starts inside the border at 1,1
	assert.Equal(t, '>', cellAt(sim, 1, 2))
	assert.Equal(t, '7', cellAt(sim, 2, 2))
	assert.Equal(t, '_', cellAt(sim, 2, 3), "caret sprite on an empty cell")
	assert.Equal(t, '│', cellAt(sim, gridWidth+1, 5))
}

func TestRenderTooSmall(t *testing.T) {
	b, sim, _ := newTestBackend(t)
	sim.SetSize(20, 10)

	_, err := b.Update(testFrame())
	require.NoError(t, err)

	assert.Equal(t, 'T', cellAt(sim, 0, 5))
}

func TestPadKeysSynthesizeHoldAndRelease(t *testing.T) {
	b, sim, c := newTestBackend(t)
	frame := testFrame()

	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	events, err := b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []backend.InputEvent{{Action: action.PadA, Type: event.Press}}, events)

	// a key repeat keeps it held
	c.advance(60 * time.Millisecond)
	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	events, _ = b.Update(frame)
	assert.Equal(t, []backend.InputEvent{{Action: action.PadA, Type: event.Hold}}, events)

	c.advance(keyTimeout)
	events, _ = b.Update(frame)
	assert.Equal(t, []backend.InputEvent{{Action: action.PadA, Type: event.Release}}, events)

	events, _ = b.Update(frame)
	assert.Empty(t, events)
}

func TestDirectionsAreExclusive(t *testing.T) {
	b, sim, _ := newTestBackend(t)

	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	events, err := b.Update(testFrame())
	require.NoError(t, err)

	assert.Equal(t, []backend.InputEvent{{Action: action.PadRight, Type: event.Press}}, events)
}

func TestHostKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want action.Action
	}{
		{"escape quits", tcell.KeyEscape, 0, action.MonitorQuit},
		{"ctrl-c quits", tcell.KeyCtrlC, 0, action.MonitorQuit},
		{"q quits", tcell.KeyRune, 'q', action.MonitorQuit},
		{"F9 snapshot", tcell.KeyF9, 0, action.MonitorSnapshot},
		{"plus", tcell.KeyRune, '+', action.DebugLogLevelIncrease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, sim, _ := newTestBackend(t)

			sim.InjectKey(tt.key, tt.r, tcell.ModNone)
			events, err := b.Update(testFrame())
			require.NoError(t, err)

			assert.Equal(t, []backend.InputEvent{{Action: tt.want, Type: event.Press}}, events)
		})
	}
}

func TestHandleActionChangesFilter(t *testing.T) {
	b, _, _ := newTestBackend(t)

	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, slog.LevelDebug, b.filter)
	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, slog.LevelDebug, b.filter)

	for i := 0; i < 5; i++ {
		b.HandleAction(action.DebugLogLevelDecrease)
	}
	assert.Equal(t, slog.LevelError, b.filter)
}

func TestImplementsInterfaces(t *testing.T) {
	var _ backend.Backend = (*Backend)(nil)
	var _ backend.ActionHandler = (*Backend)(nil)
}
