// Package video simulates the parts of the picture unit the monitor drives:
// one name table with its attribute table, palette RAM, sprite memory and
// the scroll registers. While rendering is enabled every write is queued and
// only committed by VBlank, so a frame is never drawn from half-applied
// writes.
package video

import (
	"log/slog"
)

const (
	NameTableBase      uint16 = 0x2000
	NameTableSize             = 0x400
	AttributeTableBase uint16 = 0x23C0
	AttributeTableSize        = 0x40
	PaletteBase        uint16 = 0x3F00

	// Columns and Rows span the whole name table, attribute rows included.
	Columns = 32
	Rows    = 32

	VisibleWidth  = 256
	VisibleHeight = 240
	TileSize      = 8

	// MaskShowAll enables background and sprites, including the leftmost column.
	MaskShowAll uint8 = 0x1E
)

type vramWrite struct {
	addr  uint16
	value byte
}

type spriteWrite struct {
	slot   int
	sprite Sprite
}

// PPU holds the committed video state plus the writes waiting for vertical blank.
type PPU struct {
	vram    [NameTableSize]byte
	palette [PaletteSize]byte
	oam     [SpriteSlots]Sprite
	mask    uint8
	scrollX uint8
	scrollY uint8
	frames  uint64

	pendingVRAM    []vramWrite
	pendingSprites []spriteWrite
}

func New() *PPU {
	p := &PPU{}
	for i := range p.oam {
		p.oam[i] = HiddenSprite
	}
	return p
}

// Init loads the palettes, blanks the name and attribute tables, resets the
// scroll and turns rendering on. Rendering is off while the tables are
// loaded, so the writes land immediately.
func (p *PPU) Init(palettes [PaletteSize]byte) {
	p.SetMask(0)

	for i, c := range palettes {
		p.WriteVRAM(PaletteBase+uint16(i), c)
	}
	for addr := NameTableBase; addr < AttributeTableBase; addr++ {
		p.WriteVRAM(addr, 0)
	}
	for i := 0; i < AttributeTableSize; i++ {
		p.WriteVRAM(AttributeTableBase+uint16(i), 0)
	}
	for i := range p.oam {
		p.oam[i] = HiddenSprite
	}

	p.SetScroll(0, 0)
	p.SetMask(MaskShowAll)
	slog.Debug("PPU initialized", "mask", p.mask)
}

// RenderingEnabled reports whether background or sprites are shown.
func (p *PPU) RenderingEnabled() bool {
	return p.mask&0x18 != 0
}

// SetMask writes the mask register. Pending writes are committed when
// rendering is switched off.
func (p *PPU) SetMask(mask uint8) {
	p.mask = mask
	if !p.RenderingEnabled() {
		p.commit()
	}
}

// SetScroll writes both scroll registers.
func (p *PPU) SetScroll(x, y uint8) {
	p.scrollX = x
	p.scrollY = y
}

// Scroll returns the scroll registers.
func (p *PPU) Scroll() (x, y uint8) {
	return p.scrollX, p.scrollY
}

// WriteVRAM stores value at a PPU address. Writes outside the name table and
// palette ranges are dropped.
func (p *PPU) WriteVRAM(addr uint16, value byte) {
	if p.RenderingEnabled() {
		p.pendingVRAM = append(p.pendingVRAM, vramWrite{addr: addr, value: value})
		return
	}
	p.store(addr, value)
}

// SetSprite stores s in the given OAM slot.
func (p *PPU) SetSprite(slot int, s Sprite) {
	if slot < 0 || slot >= SpriteSlots {
		slog.Warn("Sprite slot out of range", "slot", slot)
		return
	}
	if p.RenderingEnabled() {
		p.pendingSprites = append(p.pendingSprites, spriteWrite{slot: slot, sprite: s})
		return
	}
	p.oam[slot] = s
}

// VBlank commits every queued write and counts the frame.
func (p *PPU) VBlank() {
	p.commit()
	p.frames++
}

// Pending returns the number of queued writes.
func (p *PPU) Pending() int {
	return len(p.pendingVRAM) + len(p.pendingSprites)
}

// ReadVRAM returns the committed value at a PPU address.
func (p *PPU) ReadVRAM(addr uint16) byte {
	switch {
	case addr >= NameTableBase && addr < 0x3F00:
		return p.vram[(addr-NameTableBase)%NameTableSize]
	case addr >= PaletteBase && addr <= 0x3FFF:
		return p.palette[paletteIndex(addr)]
	default:
		return 0
	}
}

// Sprite returns the committed sprite in slot.
func (p *PPU) Sprite(slot int) Sprite {
	if slot < 0 || slot >= SpriteSlots {
		return HiddenSprite
	}
	return p.oam[slot]
}

// Frames returns the number of vertical blanks so far.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// Frame returns a copy of the committed state for renderers.
func (p *PPU) Frame() *Frame {
	f := &Frame{
		Palette:   p.palette,
		Sprites:   p.oam,
		ScrollX:   p.scrollX,
		ScrollY:   p.scrollY,
		Number:    p.frames,
		Rendering: p.RenderingEnabled(),
	}
	for y := 0; y < Rows; y++ {
		copy(f.Cells[y][:], p.vram[y*Columns:(y+1)*Columns])
	}
	return f
}

func (p *PPU) commit() {
	for _, w := range p.pendingVRAM {
		p.store(w.addr, w.value)
	}
	for _, w := range p.pendingSprites {
		p.oam[w.slot] = w.sprite
	}
	p.pendingVRAM = p.pendingVRAM[:0]
	p.pendingSprites = p.pendingSprites[:0]
}

func (p *PPU) store(addr uint16, value byte) {
	switch {
	case addr >= NameTableBase && addr < 0x3F00:
		// a single name table, mirrored over the whole range
		p.vram[(addr-NameTableBase)%NameTableSize] = value
	case addr >= PaletteBase && addr <= 0x3FFF:
		p.palette[paletteIndex(addr)] = value
	default:
		slog.Debug("Dropped VRAM write outside name table and palette", "addr", addr)
	}
}

func paletteIndex(addr uint16) int {
	i := int(addr-PaletteBase) % PaletteSize
	// sprite backdrop entries mirror the background ones
	if i >= 16 && i%4 == 0 {
		i -= 16
	}
	return i
}
