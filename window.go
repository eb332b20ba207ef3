package hyperdisplay

// SetWindowDefaults resets w to cover the whole display with the cursor and
// reset point at the window origin. The driver payload is left alone.
func (d *Display) SetWindowDefaults(w *Window) {
	w.XMin, w.YMin = 0, 0
	w.XMax, w.YMax = d.xExt-1, d.yExt-1
	w.XReset, w.YReset = 0, 0
	w.CursorX, w.CursorY = 0, 0
	w.LastCharacter = nil
}

// SetWindow installs w as the current window. All subsequent drawing and
// text coordinates are interpreted relative to it. A nil w restores the
// built-in full-extent default window.
func (d *Display) SetWindow(w *Window) {
	if w == nil {
		w = &d.defWindow
	}
	d.window = w
}

// CurrentWindow returns the window drawing operations currently address.
func (d *Display) CurrentWindow() *Window { return d.window }

// DefaultWindow returns the built-in full-extent window constructed at New.
func (d *Display) DefaultWindow() *Window { return &d.defWindow }

// ResetCursor moves the current window's cursor back to its reset point.
func (d *Display) ResetCursor() {
	w := d.window
	w.CursorX = int32(w.XReset)
	w.CursorY = int32(w.YReset)
}

// SetCursor places the current window's cursor at window-relative (x, y).
// The position may lie outside the window; wrap logic catches up on the
// next character written.
func (d *Display) SetCursor(x, y int32) {
	d.window.CursorX = x
	d.window.CursorY = y
}
