package tool

import "github.com/dshills/pixelstorm/internal/raster"

// drawStart implements the freehand draw tool. It paints the cell under the
// press and keeps painting single cells as the pointer moves.
func drawStart(start raster.Point, ctx Context, dispatch Dispatch) DragFunc {
	paint := func(pos raster.Point, ctx Context) {
		if !ctx.Picture.InBounds(pos.X, pos.Y) {
			return
		}
		pic := ctx.Picture.ApplyEdits([]raster.Edit{{X: pos.X, Y: pos.Y, Color: ctx.Color}})
		dispatch(Change{Picture: &pic})
	}
	paint(start, ctx)
	return paint
}

// pickStart implements the eyedropper. It reads the color under the press
// and dispatches it as the new drawing color. One-shot; the picture is
// untouched.
func pickStart(start raster.Point, ctx Context, dispatch Dispatch) DragFunc {
	if !ctx.Picture.InBounds(start.X, start.Y) {
		return nil
	}
	c := ctx.Picture.Pixel(start.X, start.Y)
	dispatch(Change{Color: &c})
	return nil
}
