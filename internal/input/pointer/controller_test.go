package pointer

import (
	"testing"

	"github.com/dshills/pixelstorm/internal/raster"
	"github.com/dshills/pixelstorm/internal/tool"
)

// harness wires a controller to a live picture the way the app does: each
// dispatched change replaces the picture the next sample sees.
type harness struct {
	pic        raster.Raster
	color      raster.Color
	dispatches int
	ctrl       *Controller
}

func newHarness(w, h, scale, originX, originY int) *harness {
	hn := &harness{pic: raster.New(w, h, raster.White), color: raster.Red}
	hn.ctrl = New(Config{
		Scale:   scale,
		OriginX: originX,
		OriginY: originY,
		Context: func() tool.Context {
			return tool.Context{Picture: hn.pic, Color: hn.color}
		},
		Dispatch: func(ch tool.Change) {
			hn.dispatches++
			if ch.Picture != nil {
				hn.pic = *ch.Picture
			}
			if ch.Color != nil {
				hn.color = *ch.Color
			}
		},
	})
	return hn
}

func TestCellMapping(t *testing.T) {
	hn := newHarness(10, 10, 4, 8, 2)

	tests := []struct {
		devX, devY int
		want       raster.Point
	}{
		{8, 2, raster.Point{X: 0, Y: 0}},
		{11, 5, raster.Point{X: 0, Y: 0}},
		{12, 6, raster.Point{X: 1, Y: 1}},
		{27, 2, raster.Point{X: 4, Y: 0}},
		{7, 2, raster.Point{X: -1, Y: 0}},
		{8, 1, raster.Point{X: 0, Y: -1}},
	}

	for _, tt := range tests {
		if got := hn.ctrl.Cell(tt.devX, tt.devY); got != tt.want {
			t.Errorf("Cell(%d,%d) = %v, want %v", tt.devX, tt.devY, got, tt.want)
		}
	}
}

func TestPressPaintsStartCell(t *testing.T) {
	hn := newHarness(8, 8, 1, 0, 0)

	hn.ctrl.Press(3, 4, tool.Draw)

	if !hn.ctrl.Active() {
		t.Fatal("draw press did not begin a drag")
	}
	if got := hn.pic.Pixel(3, 4); got != raster.Red {
		t.Errorf("Pixel(3,4) = %v, want %v", got, raster.Red)
	}
}

func TestPressOutsidePictureIgnored(t *testing.T) {
	hn := newHarness(4, 4, 1, 0, 0)

	hn.ctrl.Press(7, 7, tool.Draw)

	if hn.ctrl.Active() || hn.dispatches != 0 {
		t.Error("press outside the picture started a gesture")
	}
}

func TestOneShotToolLeavesNoDrag(t *testing.T) {
	hn := newHarness(4, 4, 1, 0, 0)

	hn.ctrl.Press(1, 1, tool.Fill)

	if hn.ctrl.Active() {
		t.Error("one-shot tool left an active drag")
	}

	before := hn.dispatches
	hn.ctrl.Move(3, 3)
	if hn.dispatches != before {
		t.Error("move after one-shot tool dispatched")
	}
}

func TestMoveWithoutPressIgnored(t *testing.T) {
	hn := newHarness(4, 4, 1, 0, 0)

	hn.ctrl.Move(2, 2)

	if hn.dispatches != 0 {
		t.Error("move without active gesture dispatched")
	}
}

func TestFastMoveDoesNotSkipCells(t *testing.T) {
	hn := newHarness(32, 32, 1, 0, 0)

	// A single sample jumping across the raster; interpolation must fill the
	// whole horizontal line.
	hn.ctrl.Press(0, 5, tool.Draw)
	hn.ctrl.Move(20, 5)

	for x := 0; x <= 20; x++ {
		if got := hn.pic.Pixel(x, 5); got != raster.Red {
			t.Errorf("Pixel(%d,5) = %v, skipped by fast move", x, got)
		}
	}
}

func TestFastDiagonalMoveTouchesEveryColumn(t *testing.T) {
	hn := newHarness(32, 32, 1, 0, 0)

	hn.ctrl.Press(0, 0, tool.Draw)
	hn.ctrl.Move(15, 9)

	// Stepping by max(|dx|,|dy|) guarantees one sample per column.
	for x := 0; x <= 15; x++ {
		painted := false
		for y := 0; y <= 9; y++ {
			if hn.pic.Pixel(x, y) == raster.Red {
				painted = true
				break
			}
		}
		if !painted {
			t.Errorf("column %d skipped by diagonal move", x)
		}
	}
}

func TestMoveDedupesSamplesInsideOneCell(t *testing.T) {
	hn := newHarness(8, 8, 4, 0, 0)

	hn.ctrl.Press(0, 0, tool.Draw)
	before := hn.dispatches

	// Wiggling inside cell (0,0); no new cell is entered.
	hn.ctrl.Move(1, 1)
	hn.ctrl.Move(2, 3)
	hn.ctrl.Move(3, 2)

	if hn.dispatches != before {
		t.Errorf("dispatches = %d, want %d (moves inside one cell)", hn.dispatches, before)
	}
}

func TestReleaseDropsGestureState(t *testing.T) {
	hn := newHarness(8, 8, 1, 0, 0)

	hn.ctrl.Press(0, 0, tool.Draw)
	hn.ctrl.Release()

	if hn.ctrl.Active() {
		t.Error("controller active after release")
	}

	before := hn.dispatches
	hn.ctrl.Move(5, 5)
	if hn.dispatches != before {
		t.Error("move after release dispatched")
	}
}

func TestRectangleDragRedrawsNotStacks(t *testing.T) {
	hn := newHarness(16, 16, 1, 0, 0)

	// Grow, then shrink; the shrunken box must replace the larger one.
	hn.ctrl.Press(2, 2, tool.Rect)
	hn.ctrl.Move(8, 8)
	hn.ctrl.Move(4, 4)

	count := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if hn.pic.Pixel(x, y) == raster.Red {
				count++
			}
		}
	}
	if count != 9 {
		t.Errorf("shrunken rectangle covers %d cells, want 9", count)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{8, 2, 4},
		{-1, 2, -1},
		{-4, 2, -2},
		{-5, 2, -3},
		{0, 3, 0},
	}

	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
