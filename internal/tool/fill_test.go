package tool

import (
	"testing"

	"github.com/dshills/pixelstorm/internal/raster"
)

func TestFillUniformRasterTouchesEveryCell(t *testing.T) {
	starts := []raster.Point{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 7, Y: 5}}

	for _, start := range starts {
		var cap capture
		ctx := Context{Picture: raster.New(8, 6, raster.White), Color: raster.Red}

		drag := Fill.Start(start, ctx, cap.dispatch)
		if drag != nil {
			t.Error("fill returned a continuation")
		}

		if n := countColor(cap.last(t), raster.Red); n != 8*6 {
			t.Errorf("fill from %v recolored %d cells, want %d", start, n, 8*6)
		}
	}
}

func TestFillStopsAtColorBoundary(t *testing.T) {
	// Vertical black wall at x=3 splits the raster in two.
	pic := raster.New(8, 8, raster.White)
	wall := make([]raster.Edit, 8)
	for y := 0; y < 8; y++ {
		wall[y] = raster.Edit{X: 3, Y: y, Color: raster.Black}
	}
	pic = pic.ApplyEdits(wall)

	var cap capture
	ctx := Context{Picture: pic, Color: raster.Red}
	Fill.Start(raster.Point{X: 0, Y: 0}, ctx, cap.dispatch)

	got := cap.last(t)
	for y := 0; y < 8; y++ {
		// The wall and everything right of it stay untouched.
		if got.Pixel(3, y) != raster.Black {
			t.Errorf("wall cell (3,%d) recolored", y)
		}
		for x := 4; x < 8; x++ {
			if got.Pixel(x, y) != raster.White {
				t.Errorf("cell (%d,%d) across the wall recolored", x, y)
			}
		}
		// Left side fills completely.
		for x := 0; x < 3; x++ {
			if got.Pixel(x, y) != raster.Red {
				t.Errorf("cell (%d,%d) left of wall not filled", x, y)
			}
		}
	}
}

func TestFillNeverCrossesAdjacentDifferentColor(t *testing.T) {
	pic := raster.New(4, 4, raster.White).ApplyEdits([]raster.Edit{{X: 1, Y: 0, Color: raster.Blue}})

	var cap capture
	ctx := Context{Picture: pic, Color: raster.Red}
	Fill.Start(raster.Point{X: 0, Y: 0}, ctx, cap.dispatch)

	if got := cap.last(t).Pixel(1, 0); got != raster.Blue {
		t.Errorf("differing neighbor recolored to %v", got)
	}
}

func TestFillSingleShotDispatch(t *testing.T) {
	var cap capture
	ctx := Context{Picture: raster.New(16, 16, raster.White), Color: raster.Red}

	Fill.Start(raster.Point{X: 8, Y: 8}, ctx, cap.dispatch)

	if len(cap.pictures) != 1 {
		t.Errorf("fill dispatched %d pictures, want 1", len(cap.pictures))
	}
}

func TestFillOutOfBoundsIsNoop(t *testing.T) {
	var cap capture
	ctx := Context{Picture: raster.New(4, 4, raster.White), Color: raster.Red}

	Fill.Start(raster.Point{X: -1, Y: 0}, ctx, cap.dispatch)
	Fill.Start(raster.Point{X: 0, Y: 9}, ctx, cap.dispatch)

	if len(cap.pictures) != 0 {
		t.Error("out-of-bounds fill dispatched an edit")
	}
}

func TestFillRecolorsEnclosedRegionOnly(t *testing.T) {
	// A 2x2 blue island inside white; filling the island leaves white alone.
	pic := raster.New(6, 6, raster.White).ApplyEdits([]raster.Edit{
		{X: 2, Y: 2, Color: raster.Blue}, {X: 3, Y: 2, Color: raster.Blue},
		{X: 2, Y: 3, Color: raster.Blue}, {X: 3, Y: 3, Color: raster.Blue},
	})

	var cap capture
	ctx := Context{Picture: pic, Color: raster.Red}
	Fill.Start(raster.Point{X: 2, Y: 2}, ctx, cap.dispatch)

	got := cap.last(t)
	if n := countColor(got, raster.Red); n != 4 {
		t.Errorf("island fill recolored %d cells, want 4", n)
	}
	if n := countColor(got, raster.White); n != 32 {
		t.Errorf("%d white cells remain, want 32", n)
	}
}
