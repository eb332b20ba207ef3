// Package hyperdisplay standardizes drawing and text placement across
// heterogeneous pixel-addressable displays (E-Ink, TFT, OLED and friends).
// A driver supplies the minimal hardware surface -- write one pixel and
// offset an opaque color handle -- and the package layers windows, shape
// algorithms and a character sink on top. Drivers may override the run,
// rectangle and bulk-blit primitives with batched hardware writes; anything
// they do not override falls back to a pixel-by-pixel implementation.
package hyperdisplay

// Color is an opaque handle to pixel color data of driver-defined size and
// layout. The core never interprets it: it is only passed through unmodified
// or advanced via the driver's OffsetColor.
type Color any

// CharInfo describes one rasterized glyph.
type CharInfo struct {
	Data          Color  // pixel data to blit, row-major
	NumPixels     uint32 // number of pixels behind Data
	Width         uint16 // rectilinear x dimension in pixels
	Height        uint16 // rectilinear y dimension; also the line pitch on newline
	Show          bool   // false for control characters
	CausedNewline bool   // the character starts a new line instead of drawing
}

// Window is a rectangular addressing region in the device coordinate frame
// with its own text cursor. Drawing and text coordinates are relative to
// (XMin, YMin). The cursor is signed and may transiently leave the window
// before wrap logic runs.
type Window struct {
	XMin, XMax uint16
	YMin, YMax uint16

	CursorX, CursorY int32
	XReset, YReset   uint16

	LastCharacter *CharInfo // most recent descriptor written; not owned
	Data          Color     // driver-private payload, carried opaquely
}

// Width returns the window's x extent in pixels.
func (w *Window) Width() uint16 { return w.XMax - w.XMin + 1 }

// Height returns the window's y extent in pixels.
func (w *Window) Height() uint16 { return w.YMax - w.YMin + 1 }

// Driver is the mandatory hardware surface. Coordinates passed to Pixel are
// absolute device pixels; the core translates window-relative coordinates
// and clips to the current window before calling down.
//
// OffsetColor returns a handle to the color data numPixels past base,
// whatever a pixel occupies in the driver's native encoding. Walking past
// the end of the backing buffer is driver-defined behavior; the core never
// bounds count itself.
type Driver interface {
	Pixel(x, y uint16, c Color)
	OffsetColor(base Color, numPixels uint32) Color
}

// XLiner is an optional driver fast path replacing the default horizontal
// run primitive. Arguments follow the default's contract: draw length pixels
// rightward from device (x, y), width pixels thick downward, cycling through
// cycleLength consecutive colors behind data starting at startOffset.
type XLiner interface {
	XLine(x, y, length uint16, data Color, cycleLength, startOffset, width uint16)
}

// YLiner is the vertical counterpart of XLiner: length runs downward, width
// extends rightward.
type YLiner interface {
	YLine(x, y, length uint16, data Color, cycleLength, startOffset, width uint16)
}

// Rectangler is an optional driver fast path for rectangles, both outlined
// and filled.
type Rectangler interface {
	Rectangle(x0, y0, x1, y1 uint16, c Color, width uint16, filled bool)
}

// ArrayFiller is an optional driver fast path for row-major bulk blits of
// numPixels colors behind data.
type ArrayFiller interface {
	FillFromArray(x0, y0, x1, y1 uint16, numPixels uint32, data Color)
}

// Rasterizer turns one input byte into a character descriptor. Drivers must
// provide it for the text surface to work; there is no generic fallback
// because glyph pixel data has to be in the driver's native color format.
type Rasterizer interface {
	Rasterize(b byte) *CharInfo
}

// Callbacks holds optional observation hooks, one per defaulted primitive.
// A non-nil hook fires synchronously after the default path executes, with
// the clipped device-coordinate arguments. Hooks never fire when the driver
// overrides the corresponding primitive.
type Callbacks struct {
	XLine         func(x, y, length uint16, data Color, cycleLength, startOffset, width uint16)
	YLine         func(x, y, length uint16, data Color, cycleLength, startOffset, width uint16)
	Rectangle     func(x0, y0, x1, y1 uint16, c Color, width uint16, filled bool)
	FillFromArray func(x0, y0, x1, y1 uint16, numPixels uint32, data Color)
}

// Display binds a driver to the shared rendering core. It is not safe for
// concurrent use: the current window and its cursor are unprotected mutable
// state, so callers drawing from multiple goroutines must serialize.
type Display struct {
	drv  Driver
	xExt uint16
	yExt uint16

	window    *Window
	defWindow Window

	Callbacks Callbacks
}

// New sets up a display of the given extent over drv and installs the
// full-extent default window as current.
func New(drv Driver, xExt, yExt uint16) *Display {
	d := &Display{drv: drv, xExt: xExt, yExt: yExt}
	d.SetWindowDefaults(&d.defWindow)
	d.window = &d.defWindow
	return d
}

// Size returns the display extent in pixels.
func (d *Display) Size() (x, y uint16) { return d.xExt, d.yExt }

// Driver returns the underlying driver.
func (d *Display) Driver() Driver { return d.drv }
