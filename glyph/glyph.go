// Package glyph renders tinyfont glyphs into coverage masks. Driver
// rasterizers pack a mask into their native pixel encoding to build the
// character descriptors the text surface consumes.
package glyph

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Mask is a row-major glyph coverage bitmap for one character cell.
type Mask struct {
	Width  int
	Height int
	Set    []bool
}

// At reports coverage at (x, y). Out-of-cell coordinates are clear.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Set[y*m.Width+x]
}

// maskCanvas adapts a Mask to drivers.Displayer so tinyfont can draw into
// it. Pixels the font paints outside the cell are discarded, which also
// swallows the negative x offsets some fonts use.
type maskCanvas struct {
	m *Mask
}

func (c *maskCanvas) Size() (x, y int16) {
	return int16(c.m.Width), int16(c.m.Height)
}

func (c *maskCanvas) SetPixel(x, y int16, _ color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.m.Width || int(y) >= c.m.Height {
		return
	}
	c.m.Set[int(y)*c.m.Width+int(x)] = true
}

func (c *maskCanvas) Display() error { return nil }

// CellWidth returns the fixed cell advance for font, measured on "0" the
// way tinyterm sizes its columns.
func CellWidth(font tinyfont.Fonter) int {
	_, outbox := tinyfont.LineWidth(font, "0")
	return int(outbox)
}

// Render rasterizes r into a width-by-height cell mask. baseline is the y
// the glyph baseline sits on within the cell (the font offset). The second
// return is the font's own x advance for the rune.
func Render(font tinyfont.Fonter, r rune, width, height, baseline int) (Mask, int) {
	if width <= 0 {
		width = CellWidth(font)
	}
	if height <= 0 {
		height = int(font.GetYAdvance())
	}
	m := Mask{Width: width, Height: height, Set: make([]bool, width*height)}
	tinyfont.DrawChar(&maskCanvas{m: &m}, font, 0, int16(baseline), r,
		color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	_, advance := tinyfont.LineWidth(font, string(r))
	return m, int(advance)
}
