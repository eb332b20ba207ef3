// Command hddemo draws shapes, color-cycled runs and text through the
// hyperdisplay core into an RGB565 framebuffer and presents the buffer in a
// desktop window.
package main

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/tinyfont/proggy"

	"hyperdisplay"
	"hyperdisplay/drivers/fb565"
	"hyperdisplay/internal/buildinfo"
)

const (
	screenW = 320
	screenH = 240
)

var (
	colorBG    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorFG    = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	colorPanel = color.RGBA{R: 0x08, G: 0x08, B: 0x10, A: 0xff}
	colorLine  = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
	colorRing  = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
	colorPoly  = color.RGBA{R: 0x66, G: 0xaa, B: 0xff, A: 0xff}
	colorWarm  = color.RGBA{R: 0xff, G: 0x40, B: 0x20, A: 0xff}
	colorCool  = color.RGBA{R: 0x20, G: 0x60, B: 0xff, A: 0xff}
)

func main() {
	dev := fb565.New(fb565.Config{Width: screenW, Height: screenH})
	dev.SetFont(fb565.FontConfig{
		Font:       &proggy.TinySZ8pt7b,
		Height:     10,
		Baseline:   6,
		Foreground: colorFG,
		Background: colorPanel,
	})

	disp := hyperdisplay.New(dev, screenW, screenH)
	drawScene(disp)

	g := &game{dev: dev, disp: disp}
	ebiten.SetWindowTitle("hddemo (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func drawScene(d *hyperdisplay.Display) {
	d.FillWindow(fb565.Pixel(colorBG))
	d.Rectangle(0, 0, screenW-1, screenH-1, fb565.Pixel(colorDim), 2, false)

	// Shape panel: line fan, circles, polygon.
	shapes := &hyperdisplay.Window{XMin: 8, XMax: 155, YMin: 8, YMax: 165}
	d.SetWindow(shapes)
	d.FillWindow(fb565.Pixel(colorPanel))
	green := fb565.Pixel(colorLine)
	for x := uint16(0); x < shapes.Width(); x += 18 {
		d.Line(0, shapes.Height()-1, x, 0, green, 1)
	}
	d.Circle(110, 110, 30, fb565.Pixel(colorRing), false)
	d.Circle(110, 110, 14, fb565.Pixel(colorRing), true)
	hex := []uint16{40, 60, 60, 40, 20, 0}
	hey := []uint16{18, 48, 88, 118, 88, 48}
	d.Polygon(hex, hey, fb565.Pixel(colorPoly), 2)

	// Gradient bars: one cycle buffer drives each run.
	bars := &hyperdisplay.Window{XMin: 165, XMax: 311, YMin: 8, YMax: 165}
	d.SetWindow(bars)
	d.FillWindow(fb565.Pixel(colorPanel))
	ramp := fb565.Gradient(colorWarm, colorCool, int(bars.Width()))
	for y := uint16(4); y < bars.Height()-4; y += 8 {
		d.XLine(4, y, bars.Width()-8, ramp, bars.Width(), y, 4)
	}

	// Text console window with its own cursor.
	term := &hyperdisplay.Window{XMin: 8, XMax: 311, YMin: 172, YMax: 231}
	d.SetWindow(term)
	d.FillWindow(fb565.Pixel(colorPanel))
	d.Printf("hyperdisplay %s\n", buildinfo.Short())
	d.Println("one driver surface: pixels, runs, rectangles, blits")
	d.Println("shapes and text share the current window's frame")

	d.SetWindow(nil)
}

type game struct {
	dev  *fb565.Device
	disp *hyperdisplay.Display

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	tick    int
}

func (g *game) Update() error {
	// Sweep a highlight column across the gradient panel.
	g.tick++
	bars := &hyperdisplay.Window{XMin: 165, XMax: 311, YMin: 160, YMax: 165}
	g.disp.SetWindow(bars)
	g.disp.FillWindow(fb565.Pixel(colorPanel))
	x := uint16(g.tick % int(bars.Width()))
	g.disp.YLine(x, 0, bars.Height(), fb565.Pixel(colorRing), 1, 0, 2)
	g.disp.SetWindow(nil)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, screenW, screenH))
		g.scratch = make([]byte, len(g.dev.Buffer()))
		g.fbImg = ebiten.NewImage(screenW, screenH)
	}

	g.dev.Snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := fb565.Unpack(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
