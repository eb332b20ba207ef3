package fb565

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont/proggy"

	"hyperdisplay"
)

func testFontConfig() FontConfig {
	return FontConfig{
		Font:       &proggy.TinySZ8pt7b,
		Height:     10,
		Baseline:   6,
		Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background: color.RGBA{A: 0xff},
	}
}

func TestRasterizePacksRGB565Glyph(t *testing.T) {
	d := New(Config{Width: 64, Height: 32})
	d.SetFont(testFontConfig())

	info := d.Rasterize('A')
	if info == nil || !info.Show {
		t.Fatalf("Rasterize('A') = %+v, want visible descriptor", info)
	}
	data := info.Data.([]byte)
	if uint32(len(data)) != info.NumPixels*bytesPerPixel {
		t.Fatalf("len(data) = %d, want %d", len(data), info.NumPixels*bytesPerPixel)
	}
	if info.NumPixels != uint32(info.Width)*uint32(info.Height) {
		t.Fatalf("NumPixels = %d, want %d", info.NumPixels,
			uint32(info.Width)*uint32(info.Height))
	}

	fg := Pack(0xff, 0xff, 0xff)
	seen := false
	for i := 0; i+1 < len(data); i += bytesPerPixel {
		if uint16(data[i])|uint16(data[i+1])<<8 == fg {
			seen = true
			break
		}
	}
	if !seen {
		t.Fatalf("glyph 'A' contains no foreground pixels")
	}
}

func TestRasterizeControlBytes(t *testing.T) {
	d := New(Config{Width: 64, Height: 32})
	d.SetFont(testFontConfig())

	nl := d.Rasterize('\n')
	if !nl.CausedNewline || nl.Show || nl.Height != 10 {
		t.Fatalf("Rasterize('\\n') = %+v, want invisible newline with line pitch 10", nl)
	}

	bell := d.Rasterize(0x07)
	if bell.Show || bell.CausedNewline {
		t.Fatalf("Rasterize(0x07) = %+v, want invisible no-op descriptor", bell)
	}
}

func TestTextThroughCore(t *testing.T) {
	d := New(Config{Width: 64, Height: 32})
	d.SetFont(testFontConfig())
	disp := hyperdisplay.New(d, 64, 32)

	if _, err := disp.Printf("ok\n"); err != nil {
		t.Fatalf("Printf() error = %v", err)
	}

	w := disp.CurrentWindow()
	if w.CursorX != 0 || w.CursorY != 10 {
		t.Fatalf("cursor = (%d, %d), want (0, 10)", w.CursorX, w.CursorY)
	}

	// Something must have landed in the buffer.
	empty := true
	for _, b := range d.Buffer() {
		if b != 0 {
			empty = false
			break
		}
	}
	if empty {
		t.Fatalf("buffer untouched after drawing text")
	}
}

func TestRasterizeWithoutFont(t *testing.T) {
	d := New(Config{Width: 8, Height: 8})

	if info := d.Rasterize('A'); info != nil {
		t.Fatalf("Rasterize() = %+v without a font, want nil", info)
	}
}
