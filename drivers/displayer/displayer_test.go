package displayer

import (
	"image/color"
	"testing"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"

	"hyperdisplay"
)

var (
	_ hyperdisplay.Driver     = (*Device)(nil)
	_ hyperdisplay.Rasterizer = (*Device)(nil)
)

type setPixel struct {
	x, y int16
	c    color.RGBA
}

// fakeDisplayer records SetPixel calls, tinyterm-fake style.
type fakeDisplayer struct {
	w, h      int16
	pixels    []setPixel
	displayed int
}

func (f *fakeDisplayer) Size() (x, y int16) { return f.w, f.h }

func (f *fakeDisplayer) SetPixel(x, y int16, c color.RGBA) {
	f.pixels = append(f.pixels, setPixel{x: x, y: y, c: c})
}

func (f *fakeDisplayer) Display() error {
	f.displayed++
	return nil
}

func TestPixelForwardsFirstRunColor(t *testing.T) {
	fake := &fakeDisplayer{w: 16, h: 16}
	dev := New(fake)

	red := color.RGBA{R: 0xff, A: 0xff}
	dev.Pixel(3, 4, Run(red))

	if len(fake.pixels) != 1 {
		t.Fatalf("SetPixel calls = %d, want 1", len(fake.pixels))
	}
	got := fake.pixels[0]
	if got.x != 3 || got.y != 4 || got.c != red {
		t.Fatalf("SetPixel(%d, %d, %v), want (3, 4, %v)", got.x, got.y, got.c, red)
	}
}

func TestOffsetColorSlicesRun(t *testing.T) {
	dev := New(&fakeDisplayer{w: 8, h: 8})
	run := Sequence(
		color.RGBA{R: 1, A: 0xff},
		color.RGBA{R: 2, A: 0xff},
		color.RGBA{R: 3, A: 0xff},
	)

	c := dev.OffsetColor(run, 2).([]color.RGBA)
	if len(c) != 1 || c[0].R != 3 {
		t.Fatalf("OffsetColor(2) = %v, want [{3 ...}]", c)
	}

	end := dev.OffsetColor(run, 7).([]color.RGBA)
	if len(end) != 0 {
		t.Fatalf("OffsetColor past end: len = %d, want 0", len(end))
	}
}

func TestCoreDrawsThroughAdapter(t *testing.T) {
	fake := &fakeDisplayer{w: 16, h: 16}
	dev := New(fake)
	d := hyperdisplay.New(dev, 16, 16)

	white := Run(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	d.Line(0, 0, 7, 7, white, 1)

	if len(fake.pixels) != 8 {
		t.Fatalf("SetPixel calls = %d, want 8", len(fake.pixels))
	}
	for i, p := range fake.pixels {
		if int(p.x) != i || int(p.y) != i {
			t.Fatalf("pixels[%d] = (%d, %d), want (%d, %d)", i, p.x, p.y, i, i)
		}
	}
}

func TestFlushPresents(t *testing.T) {
	fake := &fakeDisplayer{w: 8, h: 8}
	dev := New(fake)

	if err := dev.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if fake.displayed != 1 {
		t.Fatalf("Display calls = %d, want 1", fake.displayed)
	}
}

func TestSetRotationUnsupported(t *testing.T) {
	dev := New(&fakeDisplayer{w: 8, h: 8})

	if dev.SetRotation(drivers.Rotation90) {
		t.Fatalf("SetRotation() = true on a display without rotation support")
	}
}

func TestRasterizeGlyphDims(t *testing.T) {
	dev := New(&fakeDisplayer{w: 64, h: 32})
	dev.SetFont(FontConfig{
		Font:       &proggy.TinySZ8pt7b,
		Height:     10,
		Baseline:   6,
		Foreground: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background: color.RGBA{A: 0xff},
	})

	info := dev.Rasterize('A')
	if info == nil || !info.Show {
		t.Fatalf("Rasterize('A') = %+v, want visible descriptor", info)
	}
	if info.Height != 10 || info.Width == 0 {
		t.Fatalf("descriptor %dx%d, want width > 0, height 10", info.Width, info.Height)
	}
	data := info.Data.([]color.RGBA)
	if uint32(len(data)) != info.NumPixels || info.NumPixels != uint32(info.Width)*uint32(info.Height) {
		t.Fatalf("NumPixels = %d, len(data) = %d, want %d",
			info.NumPixels, len(data), uint32(info.Width)*uint32(info.Height))
	}

	nl := dev.Rasterize('\n')
	if !nl.CausedNewline || nl.Show || nl.Height != 10 {
		t.Fatalf("Rasterize('\\n') = %+v, want invisible newline with line pitch", nl)
	}
}

func TestRasterizeWithoutFont(t *testing.T) {
	dev := New(&fakeDisplayer{w: 8, h: 8})

	if info := dev.Rasterize('A'); info != nil {
		t.Fatalf("Rasterize() = %+v without a font, want nil", info)
	}
}
