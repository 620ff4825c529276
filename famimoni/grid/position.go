// Package grid tracks cells on the 32x32 character grid of the name table.
// Row 0 holds no console text, so every wrap lands on row 1.
package grid

import "fmt"

const (
	Width  = 32
	Height = 32

	// FirstRow is the first row the console writes to.
	FirstRow = 1
)

// Position is a cell on the grid. X is in [0, Width), Y is in [FirstRow, Height).
type Position struct {
	X uint8
	Y uint8
}

// Home is the first cell the console writes to.
var Home = Position{X: 0, Y: FirstRow}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset returns the row-major cell index of p.
func (p Position) Offset() uint16 {
	return uint16(p.Y)*Width + uint16(p.X)
}

// Advance moves p one cell to the right, continuing on the next row at the
// end of a line. Returns true if the grid wrapped back to the first row.
func Advance(p *Position) bool {
	p.X++
	if p.X < Width {
		return false
	}
	p.X = 0
	return nextRow(p)
}

// Newline moves p to the start of the next row. Returns true if the grid
// wrapped back to the first row.
func Newline(p *Position) bool {
	p.X = 0
	return nextRow(p)
}

// Retreat moves p one cell to the left, continuing at the end of the previous
// row. It undoes Advance, so the first cell of the first row goes back to the
// last cell of the last row and reports the wrap.
func Retreat(p *Position) bool {
	if p.X > 0 {
		p.X--
		return false
	}
	p.X = Width - 1
	if p.Y > FirstRow {
		p.Y--
		return false
	}
	p.Y = Height - 1
	return true
}

func nextRow(p *Position) bool {
	p.Y++
	if p.Y < Height {
		return false
	}
	p.Y = FirstRow
	return true
}
