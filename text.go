package hyperdisplay

import (
	"errors"
	"fmt"
)

// ErrNoRasterizer is returned by the text surface when the driver does not
// implement Rasterizer.
var ErrNoRasterizer = errors.New("hyperdisplay: driver does not rasterize characters")

// WriteByte pushes one byte of text through the driver's rasterizer and
// places the resulting glyph at the current window's cursor. Control
// characters skip pixel output but still apply their cursor effects; a
// newline descriptor resets the cursor x to the window's reset column and
// advances y by the descriptor height (the driver-supplied line pitch). A
// glyph that no longer fits on the current line wraps the same way before
// it is drawn. Either the whole glyph is blitted or nothing is.
func (d *Display) WriteByte(b byte) error {
	r, ok := d.drv.(Rasterizer)
	if !ok {
		return ErrNoRasterizer
	}
	info := r.Rasterize(b)
	if info == nil {
		return nil
	}
	w := d.window
	w.LastCharacter = info

	if info.CausedNewline {
		w.CursorX = int32(w.XReset)
		w.CursorY += int32(info.Height)
		return nil
	}
	if !info.Show {
		return nil
	}
	if info.Width > 0 && w.CursorX+int32(info.Width)-1 > int32(w.Width())-1 {
		w.CursorX = int32(w.XReset)
		w.CursorY += int32(info.Height)
	}
	if w.CursorX >= 0 && w.CursorY >= 0 && info.Data != nil && info.NumPixels > 0 {
		x := uint16(w.CursorX)
		y := uint16(w.CursorY)
		d.FillFromArray(x, y, x+info.Width-1, y+info.Height-1, info.NumPixels, info.Data)
	}
	w.CursorX += int32(info.Width)
	return nil
}

// Write implements io.Writer over the single-byte text entry point, so the
// display plugs into anything that writes a character stream. Every byte
// handed to the rasterizer counts as consumed.
func (d *Display) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := d.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Printf formats through fmt and writes the result as text at the cursor.
func (d *Display) Printf(format string, args ...interface{}) (n int, err error) {
	return fmt.Fprintf(d, format, args...)
}

// Println wraps fmt.Fprintln over the text surface.
func (d *Display) Println(args ...interface{}) (n int, err error) {
	return fmt.Fprintln(d, args...)
}
