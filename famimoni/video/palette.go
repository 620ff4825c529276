package video

import "image/color"

const PaletteSize = 32

// DefaultPalettes are the four background palettes followed by the four
// sprite palettes the monitor loads at start. Entry 3 of each palette is the
// glyph color.
var DefaultPalettes = [PaletteSize]byte{
	0x0F, 0x00, 0x10, 0x20,
	0x0F, 0x06, 0x16, 0x26,
	0x0F, 0x08, 0x18, 0x28,
	0x0F, 0x0A, 0x1A, 0x2A,

	0x0F, 0x00, 0x10, 0x20,
	0x0F, 0x06, 0x16, 0x26,
	0x0F, 0x08, 0x18, 0x28,
	0x0F, 0x0A, 0x1A, 0x2A,
}

// MasterPalette maps the 64 hardware color indices to RGB.
var MasterPalette = [64]color.RGBA{
	rgb(0x7C7C7C), rgb(0x0000FC), rgb(0x0000BC), rgb(0x4428BC),
	rgb(0x940084), rgb(0xA80020), rgb(0xA81000), rgb(0x881400),
	rgb(0x503000), rgb(0x007800), rgb(0x006800), rgb(0x005800),
	rgb(0x004058), rgb(0x000000), rgb(0x000000), rgb(0x000000),

	rgb(0xBCBCBC), rgb(0x0078F8), rgb(0x0058F8), rgb(0x6844FC),
	rgb(0xD800CC), rgb(0xE40058), rgb(0xF83800), rgb(0xE45C10),
	rgb(0xAC7C00), rgb(0x00B800), rgb(0x00A800), rgb(0x00A844),
	rgb(0x008888), rgb(0x000000), rgb(0x000000), rgb(0x000000),

	rgb(0xF8F8F8), rgb(0x3CBCFC), rgb(0x6888FC), rgb(0x9878F8),
	rgb(0xF878F8), rgb(0xF85898), rgb(0xF87858), rgb(0xFCA044),
	rgb(0xF8B800), rgb(0xB8F818), rgb(0x58D854), rgb(0x58F898),
	rgb(0x00E8D8), rgb(0x787878), rgb(0x000000), rgb(0x000000),

	rgb(0xFCFCFC), rgb(0xA4E4FC), rgb(0xB8B8F8), rgb(0xD8B8F8),
	rgb(0xF8B8F8), rgb(0xF8A4C0), rgb(0xF0D0B0), rgb(0xFCE0A8),
	rgb(0xF8D878), rgb(0xD8F878), rgb(0xB8F8B8), rgb(0xB8F8D8),
	rgb(0x00FCFC), rgb(0xF8D8F8), rgb(0x000000), rgb(0x000000),
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
