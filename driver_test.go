package hyperdisplay

// Test drivers. Color handles are plain int offsets into an imaginary
// backing buffer, so recorded writes expose exactly which cycle position
// each pixel received.

type pix struct {
	x, y uint16
	off  int
}

// recDriver implements only the mandatory surface and records every pixel.
type recDriver struct {
	writes []pix
}

func (d *recDriver) Pixel(x, y uint16, c Color) {
	d.writes = append(d.writes, pix{x: x, y: y, off: c.(int)})
}

func (d *recDriver) OffsetColor(base Color, numPixels uint32) Color {
	return base.(int) + int(numPixels)
}

func (d *recDriver) pixelSet() map[[2]uint16]bool {
	set := make(map[[2]uint16]bool, len(d.writes))
	for _, p := range d.writes {
		set[[2]uint16{p.x, p.y}] = true
	}
	return set
}

type runOp struct {
	kind        string
	x, y        uint16
	x1, y1      uint16
	length      uint16
	cycleLength uint16
	startOffset uint16
	width       uint16
	filled      bool
	numPixels   uint32
}

// runDriver overrides the whole optional surface and records run-level
// calls instead of pixels.
type runDriver struct {
	recDriver
	ops []runOp
}

func (d *runDriver) XLine(x, y, length uint16, data Color, cycleLength, startOffset, width uint16) {
	d.ops = append(d.ops, runOp{kind: "xline", x: x, y: y, length: length,
		cycleLength: cycleLength, startOffset: startOffset, width: width})
}

func (d *runDriver) YLine(x, y, length uint16, data Color, cycleLength, startOffset, width uint16) {
	d.ops = append(d.ops, runOp{kind: "yline", x: x, y: y, length: length,
		cycleLength: cycleLength, startOffset: startOffset, width: width})
}

func (d *runDriver) Rectangle(x0, y0, x1, y1 uint16, c Color, width uint16, filled bool) {
	d.ops = append(d.ops, runOp{kind: "rect", x: x0, y: y0, x1: x1, y1: y1,
		width: width, filled: filled})
}

func (d *runDriver) FillFromArray(x0, y0, x1, y1 uint16, numPixels uint32, data Color) {
	d.ops = append(d.ops, runOp{kind: "fill", x: x0, y: y0, x1: x1, y1: y1,
		numPixels: numPixels})
}

func opsOfKind(ops []runOp, kind string) []runOp {
	var out []runOp
	for _, op := range ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}
