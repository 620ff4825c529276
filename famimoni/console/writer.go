// Package console writes text to the name table one cell at a time and keeps
// the write cursor.
package console

import (
	"log/slog"

	"github.com/mopp/fami-moni/famimoni/grid"
	"github.com/mopp/fami-moni/famimoni/video"
)

// Surface is the video memory the console draws into. Implementations decide
// when the write becomes visible; video.PPU holds it until vertical blank.
type Surface interface {
	WriteVRAM(addr uint16, value byte)
	SetScroll(x, y uint8)
}

// Writer draws characters at the write cursor.
type Writer struct {
	surface Surface
	cursor  grid.Position
}

func New(surface Surface) *Writer {
	return &Writer{
		surface: surface,
		cursor:  grid.Home,
	}
}

// Cursor returns the cell the next PutChar lands on.
func (w *Writer) Cursor() grid.Position {
	return w.cursor
}

// SetCursor moves the write cursor.
func (w *Writer) SetCursor(pos grid.Position) {
	w.cursor = pos
}

// WriteAt draws c at pos without touching the cursor.
func (w *Writer) WriteAt(c byte, pos grid.Position) {
	w.surface.WriteVRAM(video.NameTableBase+pos.Offset(), c)
	// the address writes disturb the scroll latch on hardware
	w.surface.SetScroll(0, 0)
}

// PutChar draws c at the cursor and advances it. A newline only moves the
// cursor. Returns true if the cursor wrapped back to the first row.
func (w *Writer) PutChar(c byte) bool {
	if c == '\n' {
		return w.Newline()
	}
	w.WriteAt(c, w.cursor)
	wrapped := grid.Advance(&w.cursor)
	if wrapped {
		slog.Debug("Console wrapped to first row")
	}
	return wrapped
}

// PutCharKeep draws c at the cursor and leaves the cursor where it is.
func (w *Writer) PutCharKeep(c byte) {
	w.WriteAt(c, w.cursor)
}

// PutString draws s from the cursor on. The cursor is left after the last
// character, mid-line if s has no trailing newline.
func (w *Writer) PutString(s string) {
	for i := 0; i < len(s); i++ {
		w.PutChar(s[i])
	}
}

// PutLine draws s and ends the line.
func (w *Writer) PutLine(s string) {
	w.PutString(s)
	w.Newline()
}

// Newline moves the cursor to the start of the next row.
func (w *Writer) Newline() bool {
	wrapped := grid.Newline(&w.cursor)
	if wrapped {
		slog.Debug("Console wrapped to first row")
	}
	return wrapped
}

// Retreat moves the cursor one cell back without drawing.
func (w *Writer) Retreat() bool {
	return grid.Retreat(&w.cursor)
}
