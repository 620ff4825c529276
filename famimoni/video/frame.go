package video

import (
	"image/color"
	"strings"
)

// Frame is an immutable copy of the video state after a vertical blank.
type Frame struct {
	Cells     [Rows][Columns]byte
	Palette   [PaletteSize]byte
	Sprites   [SpriteSlots]Sprite
	ScrollX   uint8
	ScrollY   uint8
	Number    uint64
	Rendering bool
}

// Row returns row y as text. Cells without a printable glyph read as spaces.
func (f *Frame) Row(y int) string {
	var sb strings.Builder
	for _, c := range f.Cells[y] {
		sb.WriteByte(Glyph(c))
	}
	return sb.String()
}

// Text returns every row, newline separated, with trailing blanks trimmed.
func (f *Frame) Text() string {
	lines := make([]string, Rows)
	for y := range lines {
		lines[y] = strings.TrimRight(f.Row(y), " ")
	}
	return strings.Join(lines, "\n")
}

// Glyph maps a tile index to the character it shows.
func Glyph(tile byte) byte {
	if tile < 0x20 || tile >= 0x7F {
		return ' '
	}
	return tile
}

// BackdropColor is the universal background color.
func (f *Frame) BackdropColor() color.RGBA {
	return f.color(0)
}

// TextColor is the glyph color of background palette 0.
func (f *Frame) TextColor() color.RGBA {
	return f.color(3)
}

// SpriteColor is the opaque color of the given sprite palette.
func (f *Frame) SpriteColor(palette uint8) color.RGBA {
	return f.color(16 + int(palette&attrPaletteMask)*4 + 3)
}

func (f *Frame) color(entry int) color.RGBA {
	return MasterPalette[f.Palette[entry]&0x3F]
}

// CellAt returns the grid cell covered by a sprite's top-left pixel.
func (s Sprite) CellAt() (x, y int) {
	return int(s.X) / TileSize, int(s.Y) / TileSize
}
