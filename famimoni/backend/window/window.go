//go:build ebiten

// Package window shows the monitor in a desktop window with ebiten and reads
// the pad from the keyboard and standard gamepads.
package window

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mopp/fami-moni/famimoni/backend"
	"github.com/mopp/fami-moni/famimoni/debug"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/mopp/fami-moni/famimoni/input/action"
	"github.com/mopp/fami-moni/famimoni/input/event"
	"github.com/mopp/fami-moni/famimoni/video"
)

const (
	defaultScale    = 2
	shutdownTimeout = time.Second
)

// Backend implements the Backend interface with an ebiten window. ebiten
// owns its own loop on a separate goroutine; the two sides meet in the
// mutex-guarded fields below.
type Backend struct {
	config backend.BackendConfig

	mu      sync.Mutex
	picture *image.RGBA
	lines   input.State
	queued  []action.Action
	closing bool

	reported input.State // lines reported by the last Update
	canvas   *ebiten.Image
	ready    chan struct{}
	done     chan struct{}
	readyOne sync.Once
}

func New() *Backend {
	return &Backend{
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (w *Backend) Init(config backend.BackendConfig) error {
	w.config = config
	scale := config.Scale
	if scale <= 0 {
		scale = defaultScale
	}
	title := config.Title
	if title == "" {
		title = "famimoni"
	}

	ebiten.SetWindowSize(debug.ImageWidth*scale, debug.ImageHeight*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	errc := make(chan error, 1)
	go func() {
		defer close(w.done)
		if err := ebiten.RunGame(game{w: w}); err != nil {
			slog.Error("Window loop failed", "error", err)
			errc <- err
		}
	}()

	// Wait for the first Draw so the window exists before frames arrive
	select {
	case <-w.ready:
	case err := <-errc:
		return fmt.Errorf("failed to open window: %w", err)
	}

	slog.Info("Window backend initialized", "scale", scale)
	return nil
}

// Update hands frame to the window and reports pad and host input gathered
// by the window loop since the last call.
func (w *Backend) Update(frame *video.Frame) ([]backend.InputEvent, error) {
	picture := debug.RenderImage(frame)

	w.mu.Lock()
	w.picture = picture
	lines := w.lines
	queued := w.queued
	w.queued = nil
	w.mu.Unlock()

	events := backend.PadEvents(w.reported, lines)
	w.reported = lines
	for _, act := range queued {
		events = append(events, backend.InputEvent{Action: act, Type: event.Press})
	}

	select {
	case <-w.done:
		events = append(events, backend.InputEvent{Action: action.MonitorQuit, Type: event.Press})
	default:
	}
	return events, nil
}

func (w *Backend) Cleanup() error {
	w.mu.Lock()
	w.closing = true
	w.mu.Unlock()

	select {
	case <-w.done:
	case <-time.After(shutdownTimeout):
		return errors.New("window did not close in time")
	}
	slog.Info("Window backend closed")
	return nil
}

// gameUpdate runs on the window loop.
func (w *Backend) gameUpdate() error {
	lines := padLines(ebiten.IsKeyPressed, w.gamepadDown)
	acts := hostActions(inpututil.IsKeyJustPressed)
	if ebiten.IsWindowBeingClosed() {
		acts = append(acts, action.MonitorQuit)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = lines
	w.queued = append(w.queued, acts...)
	if w.closing {
		return ebiten.Termination
	}
	return nil
}

func (w *Backend) gamepadDown(b ebiten.StandardGamepadButton) bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
	}
	return false
}

func (w *Backend) draw(screen *ebiten.Image) {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(debug.ImageWidth, debug.ImageHeight)
	}

	w.mu.Lock()
	if w.picture != nil {
		w.canvas.WritePixels(w.picture.Pix)
	}
	w.mu.Unlock()
	screen.DrawImage(w.canvas, nil)

	w.readyOne.Do(func() { close(w.ready) })
}

func (w *Backend) layout() (int, int) {
	return debug.ImageWidth, debug.ImageHeight
}
