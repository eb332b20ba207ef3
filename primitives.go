package hyperdisplay

// cycleOffset returns the color-cycle position of the written-th pixel of a
// run that started at startOffset within a cycleLength-color cycle.
func cycleOffset(cycleLength, startOffset uint16, written uint32) uint32 {
	return (uint32(startOffset) + written) % uint32(cycleLength)
}

// Pixel sets one pixel at window-relative (x0, y0). Pixels outside the
// current window are dropped.
func (d *Display) Pixel(x0, y0 uint16, c Color) {
	w := d.window
	x := uint32(w.XMin) + uint32(x0)
	y := uint32(w.YMin) + uint32(y0)
	if x > uint32(w.XMax) || y > uint32(w.YMax) {
		return
	}
	d.drv.Pixel(uint16(x), uint16(y), c)
}

// XLine draws a horizontal run of length pixels starting at window-relative
// (x0, y0), width pixels thick downward, cycling through cycleLength
// consecutive colors behind data beginning at startOffset. The run is
// clipped to the current window. Pass cycleLength 1, startOffset 0 for a
// solid run.
func (d *Display) XLine(x0, y0, length uint16, data Color, cycleLength, startOffset, width uint16) {
	if length == 0 || width == 0 {
		return
	}
	w := d.window
	x := uint32(w.XMin) + uint32(x0)
	y := uint32(w.YMin) + uint32(y0)
	if x > uint32(w.XMax) || y > uint32(w.YMax) {
		return
	}
	if room := uint32(w.XMax) - x + 1; uint32(length) > room {
		length = uint16(room)
	}
	if room := uint32(w.YMax) - y + 1; uint32(width) > room {
		width = uint16(room)
	}
	d.devXLine(uint16(x), uint16(y), length, data, cycleLength, startOffset, width)
}

// YLine is the vertical counterpart of XLine: length runs downward, width
// extends rightward.
func (d *Display) YLine(x0, y0, length uint16, data Color, cycleLength, startOffset, width uint16) {
	if length == 0 || width == 0 {
		return
	}
	w := d.window
	x := uint32(w.XMin) + uint32(x0)
	y := uint32(w.YMin) + uint32(y0)
	if x > uint32(w.XMax) || y > uint32(w.YMax) {
		return
	}
	if room := uint32(w.YMax) - y + 1; uint32(length) > room {
		length = uint16(room)
	}
	if room := uint32(w.XMax) - x + 1; uint32(width) > room {
		width = uint16(room)
	}
	d.devYLine(uint16(x), uint16(y), length, data, cycleLength, startOffset, width)
}

// Rectangle draws the rectangle with window-relative corners (x0, y0) and
// (x1, y1): a width-thick inner border, or the whole interior when filled.
// Corner order does not matter.
func (d *Display) Rectangle(x0, y0, x1, y1 uint16, c Color, width uint16, filled bool) {
	if width == 0 && !filled {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	w := d.window
	ax0 := uint32(w.XMin) + uint32(x0)
	ay0 := uint32(w.YMin) + uint32(y0)
	if ax0 > uint32(w.XMax) || ay0 > uint32(w.YMax) {
		return
	}
	ax1 := uint32(w.XMin) + uint32(x1)
	ay1 := uint32(w.YMin) + uint32(y1)
	if ax1 > uint32(w.XMax) {
		ax1 = uint32(w.XMax)
	}
	if ay1 > uint32(w.YMax) {
		ay1 = uint32(w.YMax)
	}
	d.devRectangle(uint16(ax0), uint16(ay0), uint16(ax1), uint16(ay1), c, width, filled)
}

// FillFromArray bulk-writes numPixels colors behind data into the
// window-relative rectangle (x0, y0)-(x1, y1) in row-major order. Pixels
// that fall outside the current window are dropped without disturbing the
// walk through the array, so the in-window portion keeps its layout.
func (d *Display) FillFromArray(x0, y0, x1, y1 uint16, numPixels uint32, data Color) {
	if numPixels == 0 {
		return
	}
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	w := d.window
	ax0 := uint32(w.XMin) + uint32(x0)
	ay0 := uint32(w.YMin) + uint32(y0)
	if ax0 > uint32(w.XMax) || ay0 > uint32(w.YMax) {
		return
	}
	d.devFill(uint16(ax0), uint16(ay0),
		uint16(uint32(w.XMin)+uint32(x1)), uint16(uint32(w.YMin)+uint32(y1)),
		numPixels, data)
}

// devXLine dispatches a device-coordinate horizontal run to the driver's
// fast path or the pixel-by-pixel default. Only the default fires the hook.
func (d *Display) devXLine(x, y, length uint16, data Color, cycleLength, startOffset, width uint16) {
	if cycleLength == 0 {
		cycleLength = 1
	}
	startOffset %= cycleLength
	if xl, ok := d.drv.(XLiner); ok {
		xl.XLine(x, y, length, data, cycleLength, startOffset, width)
		return
	}
	for row := uint16(0); row < width; row++ {
		for n := uint16(0); n < length; n++ {
			c := d.drv.OffsetColor(data, cycleOffset(cycleLength, startOffset, uint32(n)))
			d.drv.Pixel(x+n, y+row, c)
		}
	}
	if cb := d.Callbacks.XLine; cb != nil {
		cb(x, y, length, data, cycleLength, startOffset, width)
	}
}

func (d *Display) devYLine(x, y, length uint16, data Color, cycleLength, startOffset, width uint16) {
	if cycleLength == 0 {
		cycleLength = 1
	}
	startOffset %= cycleLength
	if yl, ok := d.drv.(YLiner); ok {
		yl.YLine(x, y, length, data, cycleLength, startOffset, width)
		return
	}
	for col := uint16(0); col < width; col++ {
		for n := uint16(0); n < length; n++ {
			c := d.drv.OffsetColor(data, cycleOffset(cycleLength, startOffset, uint32(n)))
			d.drv.Pixel(x+col, y+n, c)
		}
	}
	if cb := d.Callbacks.YLine; cb != nil {
		cb(x, y, length, data, cycleLength, startOffset, width)
	}
}

// devRectangle draws a device-coordinate rectangle. The default border path
// composes runs, so an overridden XLine/YLine still speeds it up; the fill
// path is a single rectangle-height run. A border at least half as thick as
// the rectangle collapses to a fill.
func (d *Display) devRectangle(x0, y0, x1, y1 uint16, c Color, width uint16, filled bool) {
	if r, ok := d.drv.(Rectangler); ok {
		r.Rectangle(x0, y0, x1, y1, c, width, filled)
		return
	}
	xlen := x1 - x0 + 1
	ylen := y1 - y0 + 1
	if filled || 2*uint32(width) >= uint32(xlen) || 2*uint32(width) >= uint32(ylen) {
		d.devXLine(x0, y0, xlen, c, 1, 0, ylen)
	} else {
		d.devXLine(x0, y0, xlen, c, 1, 0, width)
		d.devXLine(x0, y1-width+1, xlen, c, 1, 0, width)
		d.devYLine(x0, y0+width, ylen-2*width, c, 1, 0, width)
		d.devYLine(x1-width+1, y0+width, ylen-2*width, c, 1, 0, width)
	}
	if cb := d.Callbacks.Rectangle; cb != nil {
		cb(x0, y0, x1, y1, c, width, filled)
	}
}

// devFill walks the array row-major across the device-coordinate region,
// skipping pixels outside the current window while keeping the array index
// advancing.
func (d *Display) devFill(x0, y0, x1, y1 uint16, numPixels uint32, data Color) {
	if f, ok := d.drv.(ArrayFiller); ok {
		f.FillFromArray(x0, y0, x1, y1, numPixels, data)
		return
	}
	w := d.window
	rowLen := uint32(x1) - uint32(x0) + 1
	for i := uint32(0); i < numPixels; i++ {
		px := uint32(x0) + i%rowLen
		py := uint32(y0) + i/rowLen
		if py > uint32(y1) {
			break
		}
		if px > uint32(w.XMax) || py > uint32(w.YMax) {
			continue
		}
		d.drv.Pixel(uint16(px), uint16(py), d.drv.OffsetColor(data, i))
	}
	if cb := d.Callbacks.FillFromArray; cb != nil {
		cb(x0, y0, x1, y1, numPixels, data)
	}
}
