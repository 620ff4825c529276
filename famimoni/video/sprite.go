package video

import "github.com/mopp/fami-moni/famimoni/bit"

const (
	SpriteSlots = 64

	// hiddenY puts a sprite below the visible area.
	hiddenY = 0xFF

	attrPaletteMask = 0x03
)

// Sprite is one slot of object attribute memory, in hardware byte order.
// Only the palette bits of Attr are interpreted by the monitor; the flip and
// priority bits are carried through unchanged.
type Sprite struct {
	Y    uint8 // top edge in pixels
	Tile uint8 // pattern index, equal to the glyph code for text tiles
	Attr uint8 // bits 0-1 palette, bit 5 priority, bit 6 flip X, bit 7 flip Y
	X    uint8 // left edge in pixels
}

// HiddenSprite is a slot with nothing visible.
var HiddenSprite = Sprite{Y: hiddenY}

// Palette returns the sprite palette number (0-3).
func (s Sprite) Palette() uint8 {
	return s.Attr & attrPaletteMask
}

// BehindBackground reports whether the sprite is drawn behind the background.
func (s Sprite) BehindBackground() bool {
	return bit.IsSet(5, s.Attr)
}

// FlipX reports whether the sprite is mirrored horizontally.
func (s Sprite) FlipX() bool {
	return bit.IsSet(6, s.Attr)
}

// FlipY reports whether the sprite is mirrored vertically.
func (s Sprite) FlipY() bool {
	return bit.IsSet(7, s.Attr)
}

// Visible reports whether the slot holds a placed sprite.
func (s Sprite) Visible() bool {
	return s.Y != hiddenY
}

// ToggledPalette returns a copy with the palette bits in mask inverted.
// Bits outside the palette field are left alone.
func (s Sprite) ToggledPalette(mask uint8) Sprite {
	s.Attr ^= mask & attrPaletteMask
	return s
}

// Bytes returns the four OAM bytes of the sprite.
func (s Sprite) Bytes() [4]byte {
	return [4]byte{s.Y, s.Tile, s.Attr, s.X}
}
