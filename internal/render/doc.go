// Package render turns editor state changes into the minimal set of paint
// calls on a Surface.
//
// The diff algorithm compares the previously rendered raster with the
// current one and repaints only the cells that differ, each as one
// scale-by-scale block. When there is no previous raster, or the dimensions
// changed, the surface is resized and every cell is repainted. No cell is
// painted twice for one diff.
//
// Surface is the only rendering primitive the rest of the program knows
// about; the backend package provides the tcell terminal implementation and
// an in-memory one for tests.
package render
