package palette

import (
	"testing"

	"github.com/dshills/pixelstorm/internal/raster"
)

func TestNearestExactMatch(t *testing.T) {
	p := Default()

	for _, c := range p.Colors() {
		if got := p.Nearest(c); got != c {
			t.Errorf("Nearest(%v) = %v, want itself", c, got)
		}
	}
}

func TestNearestPicksPerceptuallyClosest(t *testing.T) {
	p := New(raster.Black, raster.White, raster.Red)

	tests := []struct {
		input raster.Color
		want  raster.Color
	}{
		{raster.RGB(10, 10, 10), raster.Black},
		{raster.RGB(250, 250, 250), raster.White},
		{raster.RGB(240, 30, 20), raster.Red},
		{raster.RGB(200, 0, 0), raster.Red},
	}

	for _, tt := range tests {
		if got := p.Nearest(tt.input); got != tt.want {
			t.Errorf("Nearest(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNearestEmptyPalette(t *testing.T) {
	p := New()
	c := raster.RGB(1, 2, 3)

	if got := p.Nearest(c); got != c {
		t.Errorf("Nearest on empty palette = %v, want input %v", got, c)
	}
}

func TestSortedByHueGraysFirst(t *testing.T) {
	p := New(raster.Blue, raster.Gray, raster.Red, raster.White)
	sorted := p.SortedByHue().Colors()

	// Both grays precede both hues, and red's hue precedes blue's.
	pos := make(map[raster.Color]int)
	for i, c := range sorted {
		pos[c] = i
	}
	if pos[raster.Gray] > pos[raster.Red] || pos[raster.White] > pos[raster.Red] {
		t.Errorf("grays not sorted first: %v", sorted)
	}
	if pos[raster.Red] > pos[raster.Blue] {
		t.Errorf("red after blue in hue order: %v", sorted)
	}
}

func TestColorIndex(t *testing.T) {
	p := New(raster.Red, raster.Green)

	if c, ok := p.Color(1); !ok || c != raster.Green {
		t.Errorf("Color(1) = %v, %v", c, ok)
	}
	if _, ok := p.Color(2); ok {
		t.Error("Color(2) on two-color palette succeeded")
	}
	if _, ok := p.Color(-1); ok {
		t.Error("Color(-1) succeeded")
	}
}

func TestQuantizeMapsToPalette(t *testing.T) {
	p := New(raster.Black, raster.White)
	r := raster.New(2, 2, raster.RGB(240, 240, 240)).ApplyEdits([]raster.Edit{
		{X: 0, Y: 0, Color: raster.RGB(20, 20, 20)},
	})

	q := Quantize(r, p)

	if got := q.Pixel(0, 0); got != raster.Black {
		t.Errorf("Pixel(0,0) = %v, want black", got)
	}
	for _, pt := range []raster.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		if got := q.Pixel(pt.X, pt.Y); got != raster.White {
			t.Errorf("Pixel(%d,%d) = %v, want white", pt.X, pt.Y, got)
		}
	}
}

func TestQuantizeAlreadyPalettedIsUnchanged(t *testing.T) {
	p := Default()
	r := raster.New(3, 3, raster.Teal)

	if q := Quantize(r, p); !q.Equal(r) {
		t.Error("quantizing an already-paletted raster changed it")
	}
}
