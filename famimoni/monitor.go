// Package famimoni is a memory monitor for an 8-bit console driven by the
// game pad alone. Lines are typed with a character picker, shown on the
// background tile grid and run by a small command interpreter that reads,
// writes and jumps into target memory.
package famimoni

import (
	"fmt"
	"log/slog"

	"github.com/mopp/fami-moni/famimoni/command"
	"github.com/mopp/fami-moni/famimoni/config"
	"github.com/mopp/fami-moni/famimoni/console"
	"github.com/mopp/fami-moni/famimoni/editor"
	"github.com/mopp/fami-moni/famimoni/input"
	"github.com/mopp/fami-moni/famimoni/memory"
	"github.com/mopp/fami-moni/famimoni/video"
)

// Monitor wires the video unit, the console, target memory, the interpreter
// and the line editor into one frame-stepped machine.
type Monitor struct {
	cfg     config.Config
	ppu     *video.PPU
	console *console.Writer
	mem     *memory.Flat
	target  *HaltTarget
	interp  *command.Interpreter
	editor  *editor.Editor
	pad     *input.Pad
	edges   input.Detector
	frame   *video.Frame
}

// New builds a monitor for cfg. The screen stays blank until Init.
func New(cfg config.Config) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m := &Monitor{
		cfg:    cfg,
		ppu:    video.New(),
		mem:    memory.NewFlat(),
		target: &HaltTarget{},
		pad:    input.NewPad(),
	}
	m.console = console.New(m.ppu)
	m.interp = command.NewInterpreter(m.mem, m.target, m.console, cfg.StartAddress)
	m.editor = editor.New(cfg, m.console, m.ppu, m.interp)
	m.frame = m.ppu.Frame()
	return m, nil
}

// Init sets up the display and draws the first prompt.
func (m *Monitor) Init() {
	m.ppu.Init(video.DefaultPalettes)
	m.editor.Start()
	m.ppu.VBlank()
	m.frame = m.ppu.Frame()

	slog.Info("Monitor ready",
		"submit", m.cfg.Submit,
		"start", fmt.Sprintf("0x%04X", m.cfg.StartAddress))
}

// RunUntilFrame samples the pad, lets the editor react and ends the frame
// with a vertical blank. A halted monitor still counts frames.
func (m *Monitor) RunUntilFrame() {
	if !m.Halted() {
		m.edges.Latch(m.pad.Snapshot())
		m.editor.Tick()
		m.editor.Update(&m.edges)
	}
	m.ppu.VBlank()
	m.frame = m.ppu.Frame()
}

// GetCurrentFrame returns the picture committed by the last vertical blank.
func (m *Monitor) GetCurrentFrame() *video.Frame {
	return m.frame
}

// Halted reports whether control went to the target.
func (m *Monitor) Halted() bool {
	return m.editor.State() == editor.Halted
}

// Pad returns the button lines backends drive.
func (m *Monitor) Pad() *input.Pad {
	return m.pad
}

// Memory returns target memory.
func (m *Monitor) Memory() *memory.Flat {
	return m.mem
}

// Target returns the jump recorder.
func (m *Monitor) Target() *HaltTarget {
	return m.target
}

// Editor returns the line editor.
func (m *Monitor) Editor() *editor.Editor {
	return m.editor
}

// Cursor returns the interpreter address cursor.
func (m *Monitor) Cursor() uint16 {
	return m.interp.Cursor()
}
