package console

import (
	"testing"

	"github.com/mopp/fami-moni/famimoni/grid"
	"github.com/mopp/fami-moni/famimoni/video"
	"github.com/stretchr/testify/assert"
)

type cellWrite struct {
	addr  uint16
	value byte
}

type recordingSurface struct {
	writes  []cellWrite
	scrolls int
}

func (s *recordingSurface) WriteVRAM(addr uint16, value byte) {
	s.writes = append(s.writes, cellWrite{addr, value})
}

func (s *recordingSurface) SetScroll(x, y uint8) {
	s.scrolls++
}

func TestWriteAtAddress(t *testing.T) {
	s := &recordingSurface{}
	w := New(s)

	w.WriteAt('A', grid.Position{X: 3, Y: 2})

	assert.Equal(t, []cellWrite{{0x2000 + 2*32 + 3, 'A'}}, s.writes)
	assert.Equal(t, 1, s.scrolls)
	assert.Equal(t, grid.Home, w.Cursor(), "WriteAt must not move the cursor")
}

func TestPutCharAdvances(t *testing.T) {
	s := &recordingSurface{}
	w := New(s)

	w.PutChar('>')
	w.PutChar('1')

	assert.Equal(t, grid.Position{X: 2, Y: 1}, w.Cursor())
	assert.Equal(t, []cellWrite{{0x2020, '>'}, {0x2021, '1'}}, s.writes)
}

func TestPutCharNewlineDrawsNothing(t *testing.T) {
	s := &recordingSurface{}
	w := New(s)
	w.SetCursor(grid.Position{X: 7, Y: 4})

	w.PutChar('\n')

	assert.Empty(t, s.writes)
	assert.Equal(t, grid.Position{X: 0, Y: 5}, w.Cursor())
}

func TestPutCharWraps(t *testing.T) {
	w := New(&recordingSurface{})
	w.SetCursor(grid.Position{X: 31, Y: 31})

	assert.True(t, w.PutChar('Z'))
	assert.Equal(t, grid.Home, w.Cursor())
}

func TestPutCharKeep(t *testing.T) {
	s := &recordingSurface{}
	w := New(s)

	w.PutCharKeep('0')
	w.PutCharKeep('1')

	assert.Equal(t, grid.Home, w.Cursor())
	assert.Len(t, s.writes, 2)
}

func TestPutStringLeavesCursorMidLine(t *testing.T) {
	w := New(&recordingSurface{})

	w.PutString("0400: ")

	assert.Equal(t, grid.Position{X: 6, Y: 1}, w.Cursor())
}

func TestPutStringEmbeddedNewline(t *testing.T) {
	s := &recordingSurface{}
	w := New(s)

	w.PutString("AB\nC")

	assert.Equal(t, grid.Position{X: 1, Y: 2}, w.Cursor())
	assert.Equal(t, cellWrite{0x2040, 'C'}, s.writes[2])
}

func TestPutLine(t *testing.T) {
	w := New(&recordingSurface{})

	w.PutLine("INVALID COMMAND")

	assert.Equal(t, grid.Position{X: 0, Y: 2}, w.Cursor())
}

func TestRetreat(t *testing.T) {
	w := New(&recordingSurface{})
	w.SetCursor(grid.Position{X: 0, Y: 3})

	w.Retreat()

	assert.Equal(t, grid.Position{X: 31, Y: 2}, w.Cursor())
}

func TestWriterOnPPU(t *testing.T) {
	p := video.New()
	p.Init(video.DefaultPalettes)
	w := New(p)

	w.PutString(">12")
	assert.Equal(t, byte(0), p.ReadVRAM(0x2020), "nothing visible before vblank")

	p.VBlank()
	assert.Equal(t, ">12", p.Frame().Row(1)[:3])
}
