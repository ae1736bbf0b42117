package raster

// Point is a cell coordinate on a raster.
type Point struct {
	X, Y int
}

// Edit is a single cell write request: set the cell at (X, Y) to Color.
// The coordinates must lie inside the target raster; see ApplyEdits.
type Edit struct {
	X, Y  int
	Color Color
}

// Raster is an immutable grid of colors. The cell at (x, y) is stored at
// index x + y*width. The zero value is an empty 0x0 raster.
type Raster struct {
	width  int
	height int
	cells  []Color
}

// New creates a raster with every cell set to fill.
// Width and height must be positive.
func New(width, height int, fill Color) Raster {
	cells := make([]Color, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return Raster{width: width, height: height, cells: cells}
}

// FromCells creates a raster from an existing cell slice.
// The slice must have length width*height; it is copied, not retained.
func FromCells(width, height int, cells []Color) Raster {
	own := make([]Color, len(cells))
	copy(own, cells)
	return Raster{width: width, height: height, cells: own}
}

// Width returns the raster width in cells.
func (r Raster) Width() int {
	return r.width
}

// Height returns the raster height in cells.
func (r Raster) Height() int {
	return r.height
}

// Pixel returns the color at (x, y).
// Precondition: 0 <= x < Width(), 0 <= y < Height(). No bounds guard.
func (r Raster) Pixel(x, y int) Color {
	return r.cells[x+y*r.width]
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (r Raster) InBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// ApplyEdits returns a new raster with every listed cell overwritten by its
// paired color. Later edits win over earlier ones at the same coordinate.
// The receiver is unchanged. Edit coordinates must be in bounds.
func (r Raster) ApplyEdits(edits []Edit) Raster {
	cells := make([]Color, len(r.cells))
	copy(cells, r.cells)
	for _, e := range edits {
		cells[e.X+e.Y*r.width] = e.Color
	}
	return Raster{width: r.width, height: r.height, cells: cells}
}

// Equal reports whether two rasters have identical dimensions and cells.
func (r Raster) Equal(other Raster) bool {
	if r.width != other.width || r.height != other.height {
		return false
	}
	for i, c := range r.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
