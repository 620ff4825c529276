// Package editor implements the pad-driven line editor. The user cycles a
// picker through the configured alphabet with Left and Right, confirms a
// character with A and submits the line either with Start or by confirming
// the sentinel character, depending on the configured submit mode.
package editor

import (
	"errors"
	"log/slog"

	"github.com/mopp/fami-moni/famimoni/command"
	"github.com/mopp/fami-moni/famimoni/config"
	"github.com/mopp/fami-moni/famimoni/grid"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/mopp/fami-moni/famimoni/video"
)

const (
	// LineCapacity is the number of cells a line may use, prompt included.
	LineCapacity = grid.Width
	// MaxInput is the number of characters a line holds.
	MaxInput = LineCapacity - 1

	CaretSlot = 0
	CaretTile = '_'

	caretBlinkMask = 0x03
)

// State is the editor state as seen from outside.
type State int

const (
	// Idle has an empty line buffer.
	Idle State = iota
	// Editing has at least one buffered character.
	Editing
	// Halted means control went to the target; the editor never resumes.
	Halted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

// Console is the write side of the console the editor draws on.
type Console interface {
	Cursor() grid.Position
	PutChar(c byte) bool
	PutCharKeep(c byte)
	Newline() bool
	Retreat() bool
}

// Sprites is the sprite layer holding the caret.
type Sprites interface {
	SetSprite(slot int, s video.Sprite)
}

// Executor runs a submitted line.
type Executor interface {
	Execute(line string) error
}

type Editor struct {
	cfg     config.Config
	console Console
	sprites Sprites
	exec    Executor

	buffer []byte
	picker int
	caret  grid.Position
	sprite video.Sprite
	blink  int
	halted bool
}

// New creates an editor. cfg must be valid, see config.Config.Validate.
func New(cfg config.Config, console Console, sprites Sprites, exec Executor) *Editor {
	return &Editor{
		cfg:     cfg,
		console: console,
		sprites: sprites,
		exec:    exec,
		buffer:  make([]byte, 0, MaxInput),
		sprite:  video.Sprite{Tile: CaretTile},
	}
}

// Start draws the first prompt, the picker preview and the caret.
func (e *Editor) Start() {
	e.prompt()
	slog.Debug("Line editor started", "submit", e.cfg.Submit, "alphabet", e.cfg.Alphabet)
}

// State returns Idle, Editing or Halted.
func (e *Editor) State() State {
	switch {
	case e.halted:
		return Halted
	case len(e.buffer) == 0:
		return Idle
	default:
		return Editing
	}
}

// Buffer returns the characters typed so far.
func (e *Editor) Buffer() string {
	return string(e.buffer)
}

// Picker returns the alphabet index of the previewed character.
func (e *Editor) Picker() int {
	return e.picker
}

// Preview returns the previewed character.
func (e *Editor) Preview() byte {
	return e.cfg.Alphabet[e.picker]
}

// Caret returns the cell under the caret.
func (e *Editor) Caret() grid.Position {
	return e.caret
}

// CaretSprite returns the caret as last sent to the sprite layer.
func (e *Editor) CaretSprite() video.Sprite {
	return e.sprite
}

// Tick advances the blink timer by one frame. It runs every frame whether or
// not a button moved.
func (e *Editor) Tick() {
	if e.halted {
		return
	}
	e.blink++
	if e.blink >= e.cfg.BlinkFrames {
		e.blink = 0
		e.sprite = e.sprite.ToggledPalette(caretBlinkMask)
		e.drawCaret()
	}
}

// Update applies at most one button action for the frame, in the order
// Left, Right, A, B, Start, Select.
func (e *Editor) Update(edges input.Edges) {
	if e.halted {
		return
	}

	switch {
	case edges.Event(input.ButtonLeft) == input.Pressed:
		e.movePicker(-1)
	case edges.Event(input.ButtonRight) == input.Pressed:
		e.movePicker(1)
	case edges.Event(input.ButtonA) == input.Pressed:
		e.confirm()
	case e.cfg.SpaceButton && edges.Event(input.ButtonB) == input.Pressed:
		e.appendChar(' ')
	case e.cfg.Submit == config.SubmitButton && edges.Event(input.ButtonStart) == input.Pressed:
		if len(e.buffer) == 0 {
			return
		}
		// the preview cell is not part of the line
		e.console.PutCharKeep(' ')
		e.submit()
	case edges.Event(input.ButtonSelect) == input.Pressed:
		e.erase()
	}
}

func (e *Editor) movePicker(step int) {
	n := len(e.cfg.Alphabet)
	e.picker = ((e.picker+step)%n + n) % n
	e.console.PutCharKeep(e.Preview())
}

func (e *Editor) confirm() {
	c := e.Preview()
	if e.cfg.Submit == config.SubmitSentinel && c == e.cfg.Sentinel {
		if len(e.buffer) == 0 {
			return
		}
		e.submit()
		return
	}
	e.appendChar(c)
}

func (e *Editor) appendChar(c byte) {
	if len(e.buffer) >= MaxInput {
		slog.Debug("Line full, input rejected", "char", string(c), "capacity", MaxInput)
		return
	}
	e.buffer = append(e.buffer, c)

	// c replaces the preview glyph
	e.console.PutChar(c)
	grid.Advance(&e.caret)
	e.resetPicker()
	e.drawCaret()
}

func (e *Editor) erase() {
	if len(e.buffer) == 0 {
		return
	}
	e.buffer = e.buffer[:len(e.buffer)-1]

	e.console.PutCharKeep(' ')
	e.console.Retreat()
	grid.Retreat(&e.caret)
	e.resetPicker()
	e.drawCaret()
}

func (e *Editor) submit() {
	line := string(e.buffer)
	e.buffer = e.buffer[:0]
	e.console.Newline()

	slog.Info("Line submitted", "line", line)
	if err := e.exec.Execute(line); err != nil {
		if errors.Is(err, command.ErrControlTransferred) {
			e.halted = true
			slog.Info("Monitor halted", "reason", err)
			return
		}
		slog.Error("Command failed", "line", line, "error", err)
	}

	e.prompt()
}

// prompt starts a new input line at the write cursor.
func (e *Editor) prompt() {
	e.console.PutChar(e.cfg.Prompt)
	e.caret = e.console.Cursor()
	e.resetPicker()
	e.drawCaret()
}

func (e *Editor) resetPicker() {
	e.picker = 0
	e.console.PutCharKeep(e.Preview())
}

func (e *Editor) drawCaret() {
	e.sprite.X = e.caret.X * video.TileSize
	e.sprite.Y = e.caret.Y * video.TileSize
	e.sprites.SetSprite(CaretSlot, e.sprite)
}
