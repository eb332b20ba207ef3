package glyph

import (
	"testing"

	"tinygo.org/x/tinyfont/proggy"
)

func TestRenderFillsCell(t *testing.T) {
	m, advance := Render(&proggy.TinySZ8pt7b, '0', 0, 10, 6)

	if m.Width != CellWidth(&proggy.TinySZ8pt7b) {
		t.Fatalf("Width = %d, want cell width %d", m.Width, CellWidth(&proggy.TinySZ8pt7b))
	}
	if m.Height != 10 {
		t.Fatalf("Height = %d, want 10", m.Height)
	}
	if len(m.Set) != m.Width*m.Height {
		t.Fatalf("len(Set) = %d, want %d", len(m.Set), m.Width*m.Height)
	}
	if advance <= 0 {
		t.Fatalf("advance = %d, want > 0", advance)
	}

	covered := 0
	for _, on := range m.Set {
		if on {
			covered++
		}
	}
	if covered == 0 {
		t.Fatalf("glyph '0' rendered no coverage")
	}
}

func TestRenderSpaceIsEmpty(t *testing.T) {
	m, _ := Render(&proggy.TinySZ8pt7b, ' ', 0, 10, 6)

	for i, on := range m.Set {
		if on {
			t.Fatalf("Set[%d] = true, want space to stay clear", i)
		}
	}
}

func TestAtOutOfCell(t *testing.T) {
	m, _ := Render(&proggy.TinySZ8pt7b, 'A', 6, 10, 6)

	if m.At(-1, 0) || m.At(0, -1) || m.At(m.Width, 0) || m.At(0, m.Height) {
		t.Fatalf("At() out of cell = true, want false")
	}
}
