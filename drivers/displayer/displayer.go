// Package displayer adapts any tinygo.org/x/drivers Displayer to the
// hyperdisplay driver surface. It supplies only the mandatory primitives --
// pixel writes and color handle arithmetic over []color.RGBA runs -- and
// leaves runs, rectangles and blits to the core's fallbacks, which is
// enough to make every TinyGo display driver usable unchanged.
package displayer

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"hyperdisplay"
	"hyperdisplay/glyph"
)

// Device wraps a drivers.Displayer.
type Device struct {
	disp drivers.Displayer
	rast *Rasterizer
}

// New wraps disp as a hyperdisplay driver.
func New(disp drivers.Displayer) *Device {
	return &Device{disp: disp}
}

// Size returns the wrapped display's extent.
func (d *Device) Size() (x, y uint16) {
	w, h := d.disp.Size()
	return uint16(w), uint16(h)
}

// Pixel writes one device pixel. The handle must be a []color.RGBA run; its
// first element is the pixel color.
func (d *Device) Pixel(x, y uint16, c hyperdisplay.Color) {
	run, ok := c.([]color.RGBA)
	if !ok || len(run) == 0 {
		return
	}
	d.disp.SetPixel(int16(x), int16(y), run[0])
}

// OffsetColor advances a []color.RGBA handle by numPixels. Walking past the
// end yields an empty handle, which draws nothing.
func (d *Device) OffsetColor(base hyperdisplay.Color, numPixels uint32) hyperdisplay.Color {
	run, ok := base.([]color.RGBA)
	if !ok {
		return base
	}
	off := int(numPixels)
	if off > len(run) {
		off = len(run)
	}
	return run[off:]
}

// Flush pushes buffered pixels to the hardware.
func (d *Device) Flush() error {
	return d.disp.Display()
}

// rotatable matches TinyGo display drivers that support rotation.
type rotatable interface {
	SetRotation(rotation drivers.Rotation) error
}

// SetRotation forwards to the wrapped display when it supports rotation and
// reports whether it did.
func (d *Device) SetRotation(rotation drivers.Rotation) bool {
	r, ok := d.disp.(rotatable)
	if !ok {
		return false
	}
	return r.SetRotation(rotation) == nil
}

// Run packs a single color as a one-pixel handle.
func Run(c color.RGBA) hyperdisplay.Color {
	return []color.RGBA{c}
}

// Sequence packs colors into one cycle buffer for the run primitives.
func Sequence(cs ...color.RGBA) hyperdisplay.Color {
	out := make([]color.RGBA, len(cs))
	copy(out, cs)
	return out
}

// FontConfig mirrors the fb565 font setup for RGBA displays.
type FontConfig struct {
	Font       tinyfont.Fonter
	Height     int
	Baseline   int
	Foreground color.RGBA
	Background color.RGBA
}

// Rasterizer packs tinyfont glyphs into []color.RGBA descriptors.
type Rasterizer struct {
	cfg   FontConfig
	cellW int
}

// NewRasterizer builds a fixed-cell rasterizer for cfg.
func NewRasterizer(cfg FontConfig) *Rasterizer {
	return &Rasterizer{cfg: cfg, cellW: glyph.CellWidth(cfg.Font)}
}

// SetFont attaches a rasterizer to the device, enabling the text surface.
func (d *Device) SetFont(cfg FontConfig) {
	d.rast = NewRasterizer(cfg)
}

// Rasterize produces the descriptor for one input byte.
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
	data := make([]color.RGBA, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) {
				data = append(data, r.cfg.Foreground)
			} else {
				data = append(data, r.cfg.Background)
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
