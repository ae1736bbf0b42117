package tool

import (
	"math"

	"github.com/dshills/pixelstorm/internal/raster"
)

// rectStart implements the rectangle tool. Every sample recomputes the full
// axis-aligned box between the gesture start and the current pointer against
// the pre-drag picture, so growing or shrinking the drag redraws the box
// instead of stacking boxes.
func rectStart(start raster.Point, ctx Context, dispatch Dispatch) DragFunc {
	// The press-time picture stays the base for the whole gesture.
	base := ctx.Picture
	color := ctx.Color

	drawRect := func(pos raster.Point, _ Context) {
		x0, x1 := minMax(start.X, pos.X)
		y0, y1 := minMax(start.Y, pos.Y)

		// Clip to the raster; a drag can leave the surface.
		x0 = max(x0, 0)
		y0 = max(y0, 0)
		x1 = min(x1, base.Width()-1)
		y1 = min(y1, base.Height()-1)
		if x0 > x1 || y0 > y1 {
			return
		}

		edits := make([]raster.Edit, 0, (x1-x0+1)*(y1-y0+1))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				edits = append(edits, raster.Edit{X: x, Y: y, Color: color})
			}
		}
		pic := base.ApplyEdits(edits)
		dispatch(Change{Picture: &pic})
	}
	drawRect(start, ctx)
	return drawRect
}

// circleStart implements the circle tool. The radius is the Euclidean
// distance from the gesture start to the pointer; every in-bounds cell
// within that distance of the start is filled. Like the rectangle, each
// sample recomputes the disc against the pre-drag picture. The press commits
// the radius-zero disc immediately so a click paints the start cell.
func circleStart(start raster.Point, ctx Context, dispatch Dispatch) DragFunc {
	base := ctx.Picture
	color := ctx.Color

	drawCircle := func(pos raster.Point, _ Context) {
		dx := float64(pos.X - start.X)
		dy := float64(pos.Y - start.Y)
		radius := math.Sqrt(dx*dx + dy*dy)
		reach := int(math.Ceil(radius))

		var edits []raster.Edit
		for oy := -reach; oy <= reach; oy++ {
			for ox := -reach; ox <= reach; ox++ {
				if math.Sqrt(float64(ox*ox+oy*oy)) > radius {
					continue
				}
				x, y := start.X+ox, start.Y+oy
				if !base.InBounds(x, y) {
					continue
				}
				edits = append(edits, raster.Edit{X: x, Y: y, Color: color})
			}
		}
		if len(edits) == 0 {
			return
		}
		pic := base.ApplyEdits(edits)
		dispatch(Change{Picture: &pic})
	}
	drawCircle(start, ctx)
	return drawCircle
}

// minMax returns its arguments in ascending order.
func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
