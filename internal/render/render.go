package render

import "github.com/dshills/pixelstorm/internal/raster"

// Surface is the paint target for the diff renderer. Coordinates are in
// surface units; one raster cell covers a scale-by-scale block.
type Surface interface {
	// Resize sets the surface to the given size in surface units.
	Resize(width, height int)

	// FillBlock paints the rectangle at (x, y) with the given size.
	FillBlock(x, y, width, height int, c raster.Color)

	// Flush makes queued paints visible.
	Flush()
}

// Diff repaints cur onto the surface, using prev to limit the repaint to
// changed cells. A nil prev, or a prev with different dimensions, forces a
// resize and a full repaint. Diff does not flush.
func Diff(prev *raster.Raster, cur raster.Raster, scale int, s Surface) {
	if prev == nil || prev.Width() != cur.Width() || prev.Height() != cur.Height() {
		s.Resize(cur.Width()*scale, cur.Height()*scale)
		for y := 0; y < cur.Height(); y++ {
			for x := 0; x < cur.Width(); x++ {
				s.FillBlock(x*scale, y*scale, scale, scale, cur.Pixel(x, y))
			}
		}
		return
	}

	for y := 0; y < cur.Height(); y++ {
		for x := 0; x < cur.Width(); x++ {
			c := cur.Pixel(x, y)
			if c != prev.Pixel(x, y) {
				s.FillBlock(x*scale, y*scale, scale, scale, c)
			}
		}
	}
}

// Renderer tracks the last drawn raster so callers only supply the current
// one.
type Renderer struct {
	surface Surface
	scale   int
	prev    *raster.Raster
}

// New creates a renderer painting onto the surface at the given cell scale.
// Scale values below 1 are clamped to 1.
func New(surface Surface, scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{surface: surface, scale: scale}
}

// Scale returns the cell scale in surface units.
func (r *Renderer) Scale() int {
	return r.scale
}

// Draw diffs cur against the last drawn raster, paints the changes, and
// flushes the surface.
func (r *Renderer) Draw(cur raster.Raster) {
	Diff(r.prev, cur, r.scale, r.surface)
	prev := cur
	r.prev = &prev
	r.surface.Flush()
}

// Invalidate forces the next Draw to resize and repaint everything.
func (r *Renderer) Invalidate() {
	r.prev = nil
}
