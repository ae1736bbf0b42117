package raster

import "testing"

func TestNewFillsEveryCell(t *testing.T) {
	r := New(5, 3, Cyan)

	if r.Width() != 5 || r.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 5x3", r.Width(), r.Height())
	}

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if got := r.Pixel(x, y); got != Cyan {
				t.Errorf("Pixel(%d,%d) = %v, want %v", x, y, got, Cyan)
			}
		}
	}
}

func TestApplyEditsDoesNotMutateReceiver(t *testing.T) {
	before := New(4, 4, White)
	after := before.ApplyEdits([]Edit{{X: 1, Y: 2, Color: Red}})

	if got := before.Pixel(1, 2); got != White {
		t.Errorf("receiver Pixel(1,2) = %v, want %v", got, White)
	}
	if got := after.Pixel(1, 2); got != Red {
		t.Errorf("result Pixel(1,2) = %v, want %v", got, Red)
	}
}

func TestApplyEditsLastWriteWins(t *testing.T) {
	r := New(2, 2, White)
	r = r.ApplyEdits([]Edit{
		{X: 0, Y: 0, Color: Red},
		{X: 0, Y: 0, Color: Blue},
	})

	if got := r.Pixel(0, 0); got != Blue {
		t.Errorf("Pixel(0,0) = %v, want %v", got, Blue)
	}
}

func TestApplyEditsIdempotent(t *testing.T) {
	edits := []Edit{{X: 0, Y: 1, Color: Red}, {X: 1, Y: 0, Color: Green}}

	once := New(3, 3, White).ApplyEdits(edits)
	twice := once.ApplyEdits(edits)

	if !once.Equal(twice) {
		t.Error("repeated identical edit list changed the raster")
	}
}

func TestInBounds(t *testing.T) {
	r := New(3, 2, White)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		if got := r.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := New(2, 2, White)
	b := New(2, 2, White)
	c := New(2, 3, White)

	if !a.Equal(b) {
		t.Error("identical rasters not equal")
	}
	if a.Equal(c) {
		t.Error("different dimensions reported equal")
	}
	if a.Equal(b.ApplyEdits([]Edit{{X: 0, Y: 0, Color: Red}})) {
		t.Error("different cells reported equal")
	}
}

func TestFromCellsCopies(t *testing.T) {
	cells := []Color{Red, Green, Blue, White}
	r := FromCells(2, 2, cells)

	cells[0] = Black
	if got := r.Pixel(0, 0); got != Red {
		t.Errorf("Pixel(0,0) = %v after mutating source slice, want %v", got, Red)
	}
}
