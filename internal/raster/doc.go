// Package raster provides the immutable pixel grid that Pixelstorm edits.
//
// A Raster is a fixed-size two-dimensional grid of flat RGB colors stored in
// a single slice, with the cell at (x, y) living at index x + y*width. Rasters
// are immutable once constructed: every edit goes through ApplyEdits, which
// copies the whole buffer and overwrites the requested cells. Edits are rare
// relative to rendering, so the copy cost is acceptable and keeps reasoning
// about state transitions simple.
//
// # Basic Usage
//
//	pic := raster.New(16, 16, raster.White)
//	pic = pic.ApplyEdits([]raster.Edit{{X: 3, Y: 4, Color: raster.Red}})
//	c := pic.Pixel(3, 4) // raster.Red
//
// # Bounds Contract
//
// Pixel and ApplyEdits do not bounds-check; passing coordinates outside
// [0,width) x [0,height) is a caller error. The editing tools clip their edit
// lists with InBounds before dispatching, so in practice out-of-range
// coordinates never reach a Raster.
package raster
