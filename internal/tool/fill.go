package tool

import "github.com/dshills/pixelstorm/internal/raster"

// neighbors are the 4-connected offsets used by the flood fill.
var neighbors = [4]raster.Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// fillStart implements the flood fill tool. It grows a 4-connected region
// from the press cell across cells matching the press cell's original color,
// then recolors the whole region with one edit batch. One-shot; there is no
// drag continuation.
func fillStart(start raster.Point, ctx Context, dispatch Dispatch) DragFunc {
	if !ctx.Picture.InBounds(start.X, start.Y) {
		return nil
	}

	target := ctx.Picture.Pixel(start.X, start.Y)
	visited := map[raster.Point]struct{}{start: {}}
	queue := []raster.Point{start}

	// Breadth-first walk. The visited set doubles as the membership test,
	// keeping each cell enqueued at most once.
	for i := 0; i < len(queue); i++ {
		cell := queue[i]
		for _, d := range neighbors {
			next := raster.Point{X: cell.X + d.X, Y: cell.Y + d.Y}
			if !ctx.Picture.InBounds(next.X, next.Y) {
				continue
			}
			if ctx.Picture.Pixel(next.X, next.Y) != target {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	edits := make([]raster.Edit, len(queue))
	for i, cell := range queue {
		edits[i] = raster.Edit{X: cell.X, Y: cell.Y, Color: ctx.Color}
	}
	pic := ctx.Picture.ApplyEdits(edits)
	dispatch(Change{Picture: &pic})
	return nil
}
