package fb565

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"hyperdisplay"
	"hyperdisplay/glyph"
)

// FontConfig selects the font the device rasterizes text with.
type FontConfig struct {
	Font tinyfont.Fonter

	// Height is the line pitch in pixels; it becomes the cell height and
	// the cursor advance on newline.
	Height int

	// Baseline is the y position of the glyph baseline within the cell
	// (the font offset, in tinyterm terms).
	Baseline int

	Foreground color.RGBA
	Background color.RGBA
}

// Rasterizer packs tinyfont glyphs into RGB565 character descriptors.
type Rasterizer struct {
	cfg   FontConfig
	cellW int
	fg    []byte
	bg    []byte
}

// NewRasterizer builds a rasterizer for cfg. Cells are fixed-width, sized
// on the font's "0" advance.
func NewRasterizer(cfg FontConfig) *Rasterizer {
	return &Rasterizer{
		cfg:   cfg,
		cellW: glyph.CellWidth(cfg.Font),
		fg:    Pixel(cfg.Foreground).([]byte),
		bg:    Pixel(cfg.Background).([]byte),
	}
}

// SetFont attaches a rasterizer to the device, enabling the hyperdisplay
// text surface.
func (d *Device) SetFont(cfg FontConfig) {
	d.rast = NewRasterizer(cfg)
}

// Rasterize produces the character descriptor for one input byte. Newline
// descriptors carry the line pitch in Height and draw nothing; other
// control bytes are consumed invisibly.
func (d *Device) Rasterize(b byte) *hyperdisplay.CharInfo {
	if d.rast == nil {
		return nil
	}
	return d.rast.Rasterize(b)
}

func (r *Rasterizer) Rasterize(b byte) *hyperdisplay.CharInfo {
	h := uint16(r.cfg.Height)
	switch {
	case b == '\n':
		return &hyperdisplay.CharInfo{Height: h, CausedNewline: true}
	case b < 0x20 || b == 0x7f:
		return &hyperdisplay.CharInfo{Height: h}
	}
	m, _ := glyph.Render(r.cfg.Font, rune(b), r.cellW, r.cfg.Height, r.cfg.Baseline)
	data := make([]byte, 0, m.Width*m.Height*bytesPerPixel)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) {
				data = append(data, r.fg...)
			} else {
				data = append(data, r.bg...)
			}
		}
	}
	return &hyperdisplay.CharInfo{
		Data:      data,
		NumPixels: uint32(m.Width * m.Height),
		Width:     uint16(m.Width),
		Height:    uint16(m.Height),
		Show:      true,
	}
}
