package fb565

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"hyperdisplay"
)

// Pack converts 8-bit RGB to RGB565: rrrrrggggggbbbbb.
func Pack(r, g, b uint8) uint16 {
	return (uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | uint16(b>>3)&0x1F
}

// Unpack expands a RGB565 pixel back to 8-bit RGB.
func Unpack(p uint16) (r, g, b uint8) {
	r = uint8(((p >> 11) & 0x1F) * 255 / 31)
	g = uint8(((p >> 5) & 0x3F) * 255 / 63)
	b = uint8((p & 0x1F) * 255 / 31)
	return r, g, b
}

// Pixel packs a single color into a one-pixel handle.
func Pixel(c color.RGBA) hyperdisplay.Color {
	p := Pack(c.R, c.G, c.B)
	return []byte{byte(p), byte(p >> 8)}
}

// Sequence packs colors into one contiguous cycle buffer, in order, for use
// with the run primitives' color cycling.
func Sequence(cs ...color.RGBA) hyperdisplay.Color {
	out := make([]byte, 0, len(cs)*bytesPerPixel)
	for _, c := range cs {
		p := Pack(c.R, c.G, c.B)
		out = append(out, byte(p), byte(p>>8))
	}
	return out
}

// Gradient packs an n-pixel cycle buffer blending from c0 to c1. The blend
// runs through Lab space so the ramp stays perceptually even; gray-to-gray
// ramps blend in plain RGB to avoid hue drift.
func Gradient(c0, c1 color.Color, n int) hyperdisplay.Color {
	a, _ := colorful.MakeColor(c0)
	b, _ := colorful.MakeColor(c1)
	grayA := a.R == a.G && a.G == a.B
	grayB := b.R == b.G && b.G == b.B
	out := make([]byte, 0, n*bytesPerPixel)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		var m colorful.Color
		if grayA || grayB {
			m = a.BlendRgb(b, t).Clamped()
		} else {
			m = a.BlendLab(b, t).Clamped()
		}
		r, g, bb := m.RGB255()
		p := Pack(r, g, bb)
		out = append(out, byte(p), byte(p>>8))
	}
	return out
}
