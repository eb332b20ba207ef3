// Package fb565 provides an in-memory RGB565 framebuffer driver for
// hyperdisplay. It implements the whole optional primitive surface with
// packed byte writes, so shapes and text drawn through the core land in the
// buffer without the pixel-by-pixel fallback. Color handles are []byte
// slices holding little-endian RGB565 pixels, two bytes each.
package fb565

import (
	"image/color"

	"hyperdisplay"
)

const bytesPerPixel = 2

// Config describes a framebuffer device. Font fields are optional; without
// a Font the device cannot rasterize text.
type Config struct {
	Width  int
	Height int
}

// Device is a RGB565 framebuffer implementing the hyperdisplay driver
// surface. The buffer is row-major, Width*bytesPerPixel bytes per row.
type Device struct {
	width  int
	height int
	stride int
	buf    []byte

	rast *Rasterizer
}

// New allocates a framebuffer device.
func New(cfg Config) *Device {
	stride := cfg.Width * bytesPerPixel
	return &Device{
		width:  cfg.Width,
		height: cfg.Height,
		stride: stride,
		buf:    make([]byte, stride*cfg.Height),
	}
}

// Width returns the device x extent in pixels.
func (d *Device) Width() int { return d.width }

// Height returns the device y extent in pixels.
func (d *Device) Height() int { return d.height }

// StrideBytes returns the byte length of one buffer row.
func (d *Device) StrideBytes() int { return d.stride }

// Buffer exposes the raw RGB565 pixel buffer for presentation.
func (d *Device) Buffer() []byte { return d.buf }

// Snapshot copies the current buffer contents into dst.
func (d *Device) Snapshot(dst []byte) { copy(dst, d.buf) }

// Clear floods the whole buffer with one color.
func (d *Device) Clear(c color.RGBA) {
	p := Pack(c.R, c.G, c.B)
	lo, hi := byte(p), byte(p>>8)
	for i := 0; i+1 < len(d.buf); i += bytesPerPixel {
		d.buf[i] = lo
		d.buf[i+1] = hi
	}
}

// Pixel writes one device pixel. Out-of-buffer coordinates and malformed
// handles are dropped.
func (d *Device) Pixel(x, y uint16, c hyperdisplay.Color) {
	px, ok := c.([]byte)
	if !ok || len(px) < bytesPerPixel {
		return
	}
	ix, iy := int(x), int(y)
	if ix >= d.width || iy >= d.height {
		return
	}
	off := iy*d.stride + ix*bytesPerPixel
	d.buf[off] = px[0]
	d.buf[off+1] = px[1]
}

// OffsetColor advances a handle by numPixels within its backing slice.
// Walking past the end yields an empty handle, which draws nothing.
func (d *Device) OffsetColor(base hyperdisplay.Color, numPixels uint32) hyperdisplay.Color {
	px, ok := base.([]byte)
	if !ok {
		return base
	}
	off := int(numPixels) * bytesPerPixel
	if off > len(px) {
		off = len(px)
	}
	return px[off:]
}

// XLine is the packed fast path for horizontal runs: each row of the run is
// written with byte copies instead of per-pixel calls.
func (d *Device) XLine(x, y, length uint16, data hyperdisplay.Color, cycleLength, startOffset, width uint16) {
	px, ok := data.([]byte)
	if !ok || len(px) < bytesPerPixel {
		return
	}
	if cycleLength == 0 {
		cycleLength = 1
	}
	x0, y0 := int(x), int(y)
	n := clipSpan(x0, int(length), d.width)
	rows := clipSpan(y0, int(width), d.height)
	if n <= 0 || rows <= 0 || x0 < 0 || y0 < 0 {
		return
	}
	for row := 0; row < rows; row++ {
		off := (y0+row)*d.stride + x0*bytesPerPixel
		for i := 0; i < n; i++ {
			// Cycle positions past the handle's end drop in place, like the
			// empty-handle OffsetColor on the default path.
			src := int((uint32(startOffset)+uint32(i))%uint32(cycleLength)) * bytesPerPixel
			if src+1 < len(px) {
				d.buf[off] = px[src]
				d.buf[off+1] = px[src+1]
			}
			off += bytesPerPixel
		}
	}
}

// YLine is the packed fast path for vertical runs.
func (d *Device) YLine(x, y, length uint16, data hyperdisplay.Color, cycleLength, startOffset, width uint16) {
	px, ok := data.([]byte)
	if !ok || len(px) < bytesPerPixel {
		return
	}
	if cycleLength == 0 {
		cycleLength = 1
	}
	x0, y0 := int(x), int(y)
	n := clipSpan(y0, int(length), d.height)
	cols := clipSpan(x0, int(width), d.width)
	if n <= 0 || cols <= 0 || x0 < 0 || y0 < 0 {
		return
	}
	for i := 0; i < n; i++ {
		src := int((uint32(startOffset)+uint32(i))%uint32(cycleLength)) * bytesPerPixel
		if src+1 >= len(px) {
			continue
		}
		off := (y0+i)*d.stride + x0*bytesPerPixel
		for col := 0; col < cols; col++ {
			d.buf[off] = px[src]
			d.buf[off+1] = px[src+1]
			off += bytesPerPixel
		}
	}
}

// Rectangle draws a border or fill with row copies.
func (d *Device) Rectangle(x0, y0, x1, y1 uint16, c hyperdisplay.Color, width uint16, filled bool) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	xlen := x1 - x0 + 1
	ylen := y1 - y0 + 1
	if filled || 2*uint32(width) >= uint32(xlen) || 2*uint32(width) >= uint32(ylen) {
		d.XLine(x0, y0, xlen, c, 1, 0, ylen)
		return
	}
	if width == 0 {
		return
	}
	d.XLine(x0, y0, xlen, c, 1, 0, width)
	d.XLine(x0, y1-width+1, xlen, c, 1, 0, width)
	d.YLine(x0, y0+width, ylen-2*width, c, 1, 0, width)
	d.YLine(x1-width+1, y0+width, ylen-2*width, c, 1, 0, width)
}

// FillFromArray blits numPixels packed RGB565 pixels row-major into the
// region, clipping rows and columns that leave the buffer.
func (d *Device) FillFromArray(x0, y0, x1, y1 uint16, numPixels uint32, data hyperdisplay.Color) {
	px, ok := data.([]byte)
	if !ok {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	rowLen := int(x1) - int(x0) + 1
	total := int(numPixels)
	if avail := len(px) / bytesPerPixel; total > avail {
		total = avail
	}
	for i := 0; i < total; i++ {
		ix := int(x0) + i%rowLen
		iy := int(y0) + i/rowLen
		if iy > int(y1) {
			break
		}
		if ix >= d.width || iy >= d.height {
			continue
		}
		off := iy*d.stride + ix*bytesPerPixel
		d.buf[off] = px[i*bytesPerPixel]
		d.buf[off+1] = px[i*bytesPerPixel+1]
	}
}

// clipSpan trims a span starting at pos to fit within [0, max).
func clipSpan(pos, length, max int) int {
	if pos >= max {
		return 0
	}
	if pos+length > max {
		return max - pos
	}
	return length
}
