// Package terminal shows the monitor in a terminal with tcell and reads the
// pad from the keyboard.
package terminal

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mopp/fami-moni/famimoni/backend"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/mopp/fami-moni/famimoni/input/action"
	"github.com/mopp/fami-moni/famimoni/input/event"
	"github.com/mopp/fami-moni/famimoni/video"
)

const (
	gridWidth  = video.Columns
	gridHeight = video.Rows

	// the grid sits inside a one cell border with a title and a help line
	minTermWidth  = gridWidth + 2
	minTermHeight = gridHeight + 3

	logBufferSize = 200
)

// Key expiry timeout - slightly longer than typical key repeat interval.
// Terminals report no key release, so a key counts as held while repeats
// keep coming.
const keyTimeout = 100 * time.Millisecond

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen    tcell.Screen
	logBuffer *LogBuffer
	filter    slog.Level
	config    backend.BackendConfig

	mu         sync.Mutex
	eventQueue []backend.InputEvent // host events, drained by Update
	running    bool

	keyStates  map[action.Action]time.Time // Last time each pad key was seen
	activeKeys map[action.Action]bool      // Pad keys active in previous frame

	now func() time.Time
}

// New creates a backend on the real terminal.
func New() *Backend {
	return &Backend{}
}

// NewWithScreen creates a backend drawing on screen, for example a
// tcell.SimulationScreen in tests.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)
	if t.now == nil {
		t.now = time.Now
	}

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.running = true

	// Logs go to a side pane while the screen is owned by tcell
	t.logBuffer = NewLogBuffer(logBufferSize)
	t.filter = config.LogLevel
	slog.SetDefault(slog.New(NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	go t.handleSignals()

	slog.Info("Terminal backend initialized")
	return nil
}

// Update renders a frame and processes events
func (t *Backend) Update(frame *video.Frame) ([]backend.InputEvent, error) {
	var events []backend.InputEvent
	now := t.now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	currentlyActive := make(map[action.Action]bool)
	for act, lastSeen := range t.keyStates {
		if now.Sub(lastSeen) >= keyTimeout {
			delete(t.keyStates, act)
			continue
		}
		currentlyActive[act] = true
		if !t.activeKeys[act] {
			slog.Debug("Key press", "action", action.GetInfo(act).Description)
			events = append(events, backend.InputEvent{Action: act, Type: event.Press})
		} else {
			events = append(events, backend.InputEvent{Action: act, Type: event.Hold})
		}
	}

	for act := range t.activeKeys {
		if !currentlyActive[act] {
			slog.Debug("Key release", "action", action.GetInfo(act).Description)
			events = append(events, backend.InputEvent{Action: act, Type: event.Release})
		}
	}
	t.activeKeys = currentlyActive

	t.mu.Lock()
	events = append(events, t.eventQueue...)
	t.eventQueue = nil
	running := t.running
	t.mu.Unlock()

	if !running {
		return events, nil
	}

	t.render(frame)
	t.screen.Show()

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

// HandleAction processes backend-specific actions
func (t *Backend) HandleAction(act action.Action) {
	switch act {
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

func (t *Backend) handleSignals() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	<-signals
	t.queue(action.MonitorQuit)
}

func (t *Backend) queue(act action.Action) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if act == action.MonitorQuit {
		t.running = false
	}
	t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEnter:  "Enter",
	tcell.KeyTab:    "Tab",
	tcell.KeyUp:     "Up",
	tcell.KeyDown:   "Down",
	tcell.KeyLeft:   "Left",
	tcell.KeyRight:  "Right",
	tcell.KeyEscape: "Escape",
	tcell.KeyF9:     "F9",
}

// tcellRuneNameMap converts runes to key names used in default mappings
var tcellRuneNameMap = map[rune]string{
	'z': "z",
	'x': "x",
	'w': "w",
	's': "s",
	'a': "a",
	'd': "d",
	'q': "q",
	'+': "+",
	'=': "=",
	'-': "-",
	'_': "_",
}

func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.MonitorQuit
	return mapping
}

func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)
	for r, keyName := range tcellRuneNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[r] = act
		}
	}
	return mapping
}

var (
	keyMapping  = buildKeyMapping()
	runeMapping = buildRuneMapping()
)

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	act, ok := keyMapping[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		act, ok = runeMapping[ev.Rune()]
	}
	if !ok {
		return
	}

	if !action.IsPad(act) {
		t.queue(act)
		return
	}

	// one direction at a time, like a real cross pad
	if act == action.PadUp || act == action.PadDown ||
		act == action.PadLeft || act == action.PadRight {
		delete(t.keyStates, action.PadUp)
		delete(t.keyStates, action.PadDown)
		delete(t.keyStates, action.PadLeft)
		delete(t.keyStates, action.PadRight)
	}
	t.keyStates[act] = now
}

func (t *Backend) changeLogLevel(direction int) {
	old := t.filter
	switch {
	case direction < 0 && t.filter < slog.LevelError:
		t.filter += 4
	case direction > 0 && t.filter > slog.LevelDebug:
		t.filter -= 4
	}
	if old != t.filter {
		slog.Info("Log filter changed", "from", old, "to", t.filter)
	}
}

func (t *Backend) render(frame *video.Frame) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	dividerX := gridWidth + 1
	t.drawBorders(termWidth, termHeight, dividerX)
	t.drawGrid(frame, 1, 1)
	t.drawLogs(dividerX+2, 1, termWidth-dividerX-3, termHeight-2)
}

func (t *Backend) drawBorders(termWidth, termHeight, dividerX int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	title := t.config.Title
	if title == "" {
		title = "famimoni"
	}
	t.drawText(1, 0, dividerX-1, " "+title+" ", titleStyle)
	t.drawText(dividerX+2, 0, termWidth-dividerX-2, fmt.Sprintf(" Logs [%s] (-/+ filter) ", t.filter), titleStyle)

	help := " arrows/wasd=pad z=A x=B tab=Select enter=Start F9=snapshot esc=quit "
	t.drawText(0, termHeight-1, termWidth, help, borderStyle)
}

// drawGrid draws the whole name table with the sprites on top, one
// terminal cell per tile.
func (t *Backend) drawGrid(frame *video.Frame, originX, originY int) {
	if !frame.Rendering {
		return
	}
	bg := toColor(frame.BackdropColor())

	text := tcell.StyleDefault.Foreground(toColor(frame.TextColor())).Background(bg)
	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			c := video.Glyph(frame.Cells[y][x])
			t.screen.SetContent(originX+x, originY+y, rune(c), nil, text)
		}
	}

	for _, s := range frame.Sprites {
		if !s.Visible() {
			continue
		}
		x, y := s.CellAt()
		if x >= gridWidth || y >= gridHeight {
			continue
		}
		style := tcell.StyleDefault.Foreground(toColor(frame.SpriteColor(s.Palette()))).Background(bg)
		if c := video.Glyph(frame.Cells[y][x]); c != ' ' {
			// keep the glyph readable under the caret
			t.screen.SetContent(originX+x, originY+y, rune(c), nil, style.Underline(true))
			continue
		}
		t.screen.SetContent(originX+x, originY+y, rune(video.Glyph(s.Tile)), nil, style)
	}
}

func (t *Backend) drawLogs(startX, startY, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.GetRecent(height, t.filter) {
		style := infoStyle
		switch {
		case entry.Level < slog.LevelInfo:
			style = debugStyle
		case entry.Level >= slog.LevelError:
			style = errStyle
		case entry.Level >= slog.LevelWarn:
			style = warnStyle
		}

		line := FormatLogEntry(entry)
		if len(line) > width && width > 3 {
			line = line[:width-3] + "..."
		}
		t.drawText(startX, startY+i, width, line, style)
	}
}

func (t *Backend) drawText(x, y, width int, s string, style tcell.Style) {
	i := 0
	for _, ch := range s {
		if i >= width {
			return
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
