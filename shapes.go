package hyperdisplay

// Line draws a width-thick segment between window-relative endpoints with
// integer Bresenham stepping; no floating point anywhere. Horizontal and
// vertical segments collapse to a single run primitive. Endpoint order does
// not affect the pixels drawn.
func (d *Display) Line(x0, y0, x1, y1 uint16, c Color, width uint16) {
	if width == 0 {
		return
	}
	if y0 == y1 {
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		// Center the thickness on the segment, matching the stepped
		// octants, so a rotating line does not jump at horizontal.
		top := int32(y0) - int32(width/2)
		w := int32(width)
		if top < 0 {
			w += top
			top = 0
		}
		if w > 0 {
			d.XLine(x0, uint16(top), x1-x0+1, c, 1, 0, uint16(w))
		}
		return
	}
	if x0 == x1 {
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		left := int32(x0) - int32(width/2)
		w := int32(width)
		if left < 0 {
			w += left
			left = 0
		}
		if w > 0 {
			d.YLine(uint16(left), y0, y1-y0+1, c, 1, 0, uint16(w))
		}
		return
	}
	dx := absDiff(x0, x1)
	dy := absDiff(y0, y1)
	if dy > dx {
		// steep octants walk y
		if y1 < y0 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		d.lineHigh(x0, y0, x1, y1, c, width)
	} else {
		if x1 < x0 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		d.lineLow(x0, y0, x1, y1, c, width)
	}
}

// lineLow walks x for |dy| <= |dx|, x0 < x1. Each step stamps a vertical
// width-thick span centered on the ideal line.
func (d *Display) lineLow(x0, y0, x1, y1 uint16, c Color, width uint16) {
	dx := int32(x1) - int32(x0)
	dy := int32(y1) - int32(y0)
	yStep := int32(1)
	if dy < 0 {
		yStep = -1
		dy = -dy
	}
	err := 2*dy - dx
	y := int32(y0)
	for x := int32(x0); x <= int32(x1); x++ {
		d.stampY(x, y, c, width)
		if err > 0 {
			y += yStep
			err -= 2 * dx
		}
		err += 2 * dy
	}
}

// lineHigh walks y for |dy| > |dx|, y0 < y1.
func (d *Display) lineHigh(x0, y0, x1, y1 uint16, c Color, width uint16) {
	dx := int32(x1) - int32(x0)
	dy := int32(y1) - int32(y0)
	xStep := int32(1)
	if dx < 0 {
		xStep = -1
		dx = -dx
	}
	err := 2*dx - dy
	x := int32(x0)
	for y := int32(y0); y <= int32(y1); y++ {
		d.stampX(x, y, c, width)
		if err > 0 {
			x += xStep
			err -= 2 * dy
		}
		err += 2 * dx
	}
}

// stampY draws the width-thick vertical span of one shallow line step,
// clamped at the window's top edge.
func (d *Display) stampY(x, y int32, c Color, width uint16) {
	if x < 0 {
		return
	}
	if width == 1 {
		if y >= 0 {
			d.Pixel(uint16(x), uint16(y), c)
		}
		return
	}
	top := y - int32(width/2)
	length := int32(width)
	if top < 0 {
		length += top
		top = 0
	}
	if length > 0 {
		d.YLine(uint16(x), uint16(top), uint16(length), c, 1, 0, 1)
	}
}

// stampX draws the width-thick horizontal span of one steep line step.
func (d *Display) stampX(x, y int32, c Color, width uint16) {
	if y < 0 {
		return
	}
	if width == 1 {
		if x >= 0 {
			d.Pixel(uint16(x), uint16(y), c)
		}
		return
	}
	left := x - int32(width/2)
	length := int32(width)
	if left < 0 {
		length += left
		left = 0
	}
	if length > 0 {
		d.XLine(uint16(left), uint16(y), uint16(length), c, 1, 0, 1)
	}
}

// Circle draws a midpoint circle of the given radius centered at
// window-relative (x0, y0). When filled, the mirrored octant points are
// connected pairwise with horizontal runs instead of outlining. Radius 0
// draws a single pixel.
func (d *Display) Circle(x0, y0, radius uint16, c Color, filled bool) {
	if radius == 0 {
		d.Pixel(x0, y0, c)
		return
	}
	dx := int32(radius)
	dy := int32(0)
	err := 1 - int32(radius)
	for dx >= dy {
		d.circleEight(int32(x0), int32(y0), dx, dy, c, filled)
		dy++
		if err < 0 {
			err += 2*dy + 1
		} else {
			dx--
			err += 2*(dy-dx) + 1
		}
	}
}

// circleEight mirrors one computed (dx, dy) offset into all eight octants.
func (d *Display) circleEight(xc, yc, dx, dy int32, c Color, filled bool) {
	if filled {
		d.hSpan(xc-dx, xc+dx, yc+dy, c)
		d.hSpan(xc-dx, xc+dx, yc-dy, c)
		d.hSpan(xc-dy, xc+dy, yc+dx, c)
		d.hSpan(xc-dy, xc+dy, yc-dx, c)
		return
	}
	d.pixelAt(xc+dx, yc+dy, c)
	d.pixelAt(xc-dx, yc+dy, c)
	d.pixelAt(xc+dx, yc-dy, c)
	d.pixelAt(xc-dx, yc-dy, c)
	d.pixelAt(xc+dy, yc+dx, c)
	d.pixelAt(xc-dy, yc+dx, c)
	d.pixelAt(xc+dy, yc-dx, c)
	d.pixelAt(xc-dy, yc-dx, c)
}

// hSpan draws a solid horizontal run between window-relative x coordinates
// xa and xb inclusive, clipping the portion left of the window.
func (d *Display) hSpan(xa, xb, y int32, c Color) {
	if y < 0 {
		return
	}
	if xb < xa {
		xa, xb = xb, xa
	}
	if xb < 0 {
		return
	}
	if xa < 0 {
		xa = 0
	}
	d.XLine(uint16(xa), uint16(y), uint16(xb-xa+1), c, 1, 0, 1)
}

// pixelAt drops pixels left of or above the window before the unsigned
// window clip in Pixel takes over.
func (d *Display) pixelAt(x, y int32, c Color) {
	if x < 0 || y < 0 {
		return
	}
	d.Pixel(uint16(x), uint16(y), c)
}

// Polygon draws a closed chain of width-thick segments through the given
// vertices, wrapping the last back to the first. Vertex lists shorter than
// three are a no-op. When xs and ys differ in length the extra entries are
// ignored.
func (d *Display) Polygon(xs, ys []uint16, c Color, width uint16) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 3 {
		return
	}
	for i := 0; i < n; i++ {
		j := i + 1
		if j == n {
			j = 0
		}
		d.Line(xs[i], ys[i], xs[j], ys[j], c, width)
	}
}

// FillWindow floods the entire current window with a single color.
func (d *Display) FillWindow(c Color) {
	w := d.window
	d.Rectangle(0, 0, w.XMax-w.XMin, w.YMax-w.YMin, c, 1, true)
}

func absDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}
