package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mopp/fami-moni/famimoni/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrame(t *testing.T) *video.Frame {
	t.Helper()
	p := video.New()
	p.Init(video.DefaultPalettes)
	p.WriteVRAM(video.NameTableBase+32, 'A')
	p.SetSprite(0, video.Sprite{Y: 16, Tile: '_', Attr: 0x03, X: 8})
	p.VBlank()
	return p.Frame()
}

// cellHas reports whether any pixel of cell x, y has color c.
func cellHas(img image.Image, x, y int, c color.RGBA) bool {
	for py := y * CellHeight; py < (y+1)*CellHeight; py++ {
		for px := x * CellWidth; px < (x+1)*CellWidth; px++ {
			if ColorAt(img, px, py) == c {
				return true
			}
		}
	}
	return false
}

func TestRenderImage(t *testing.T) {
	f := newFrame(t)

	img := RenderImage(f)

	assert.Equal(t, image.Rect(0, 0, ImageWidth, ImageHeight), img.Bounds())
	assert.Equal(t, f.BackdropColor(), ColorAt(img, 0, 0))
	assert.True(t, cellHas(img, 0, 1, f.TextColor()), "glyph in cell 0,1")
	assert.False(t, cellHas(img, 1, 1, f.TextColor()), "blank cell 1,1")
	assert.True(t, cellHas(img, 1, 2, f.SpriteColor(3)), "caret sprite in cell 1,2")
}

func TestRenderImageRenderingOff(t *testing.T) {
	f := newFrame(t)
	f.Rendering = false

	img := RenderImage(f)

	assert.False(t, cellHas(img, 0, 1, f.TextColor()))
	assert.False(t, cellHas(img, 1, 2, f.SpriteColor(3)))
}

func TestFrameText(t *testing.T) {
	f := newFrame(t)

	text := FrameText(f)

	assert.True(t, strings.HasPrefix(text, "# Frame: 1\n"))
	assert.Contains(t, text, "# Sprite '_' at 1,2 palette 3\n")
	lines := strings.Split(text, "\n")
	idx := -1
	for i, l := range lines {
		if l == "#" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "", lines[idx+1])
	assert.Equal(t, "A", lines[idx+2])
}

func TestSaveFramePNGToDir(t *testing.T) {
	dir := t.TempDir()
	f := newFrame(t)

	path, err := SaveFramePNGToDir(f, "test", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "test_"))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, ImageWidth, img.Bounds().Dx())
	assert.Equal(t, ImageHeight, img.Bounds().Dy())
	assert.True(t, cellHas(img, 0, 1, f.TextColor()))
}

func TestSaveFrameTextToDir(t *testing.T) {
	dir := t.TempDir()
	f := newFrame(t)

	path, err := SaveFrameTextToDir(f, "test", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FrameText(f), string(data))
}

func TestSaveFramePNGToMissingDir(t *testing.T) {
	_, err := SaveFramePNGToDir(newFrame(t), "test", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
