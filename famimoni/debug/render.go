package debug

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/mopp/fami-moni/famimoni/video"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell size of a rendered glyph. basicfont.Face7x13 is 13 pixels tall, so
// rows are stretched compared to the 8x8 tiles of the console.
const (
	CellWidth  = 8
	CellHeight = 14

	ImageWidth  = video.Columns * CellWidth
	ImageHeight = video.Rows * CellHeight
)

var glyphFace = basicfont.Face7x13

// RenderImage draws the name table and visible sprites of f.
func RenderImage(f *video.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ImageWidth, ImageHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(f.BackdropColor()), image.Point{}, draw.Src)

	if !f.Rendering {
		return img
	}

	text := image.NewUniform(f.TextColor())
	for y := 0; y < video.Rows; y++ {
		for x := 0; x < video.Columns; x++ {
			drawGlyph(img, text, x, y, video.Glyph(f.Cells[y][x]))
		}
	}

	for _, s := range f.Sprites {
		if !s.Visible() {
			continue
		}
		x, y := s.CellAt()
		drawGlyph(img, image.NewUniform(f.SpriteColor(s.Palette())), x, y, video.Glyph(s.Tile))
	}
	return img
}

func drawGlyph(dst draw.Image, src image.Image, x, y int, c byte) {
	if c == ' ' || x >= video.Columns || y >= video.Rows {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: glyphFace,
		Dot:  fixed.P(x*CellWidth, y*CellHeight+glyphFace.Ascent),
	}
	d.DrawString(string(rune(c)))
}

// ColorAt returns the color of the pixel at x, y of img. Used by tests and
// the window backend to probe rendered cells.
func ColorAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}
