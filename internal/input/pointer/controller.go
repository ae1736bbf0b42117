package pointer

import (
	"github.com/dshills/pixelstorm/internal/raster"
	"github.com/dshills/pixelstorm/internal/tool"
)

// Config configures a Controller.
type Config struct {
	// Scale is the size of one raster cell in device units.
	Scale int

	// OriginX and OriginY locate the picture's top-left corner in device
	// units.
	OriginX, OriginY int

	// Context supplies a fresh editing context for each sample.
	Context func() tool.Context

	// Dispatch receives the changes tools produce.
	Dispatch tool.Dispatch
}

// Controller routes pointer samples to the active tool for the duration of
// one gesture.
type Controller struct {
	cfg Config

	drag     tool.DragFunc
	active   bool
	lastDev  raster.Point
	lastCell raster.Point
}

// New creates a controller. A scale below 1 is clamped to 1.
func New(cfg Config) *Controller {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return &Controller{cfg: cfg}
}

// SetOrigin moves the picture origin in device units.
func (c *Controller) SetOrigin(x, y int) {
	c.cfg.OriginX = x
	c.cfg.OriginY = y
}

// Active reports whether a drag gesture is in progress.
func (c *Controller) Active() bool {
	return c.active
}

// Cell converts a device position to a raster cell coordinate.
func (c *Controller) Cell(devX, devY int) raster.Point {
	return raster.Point{
		X: floorDiv(devX-c.cfg.OriginX, c.cfg.Scale),
		Y: floorDiv(devY-c.cfg.OriginY, c.cfg.Scale),
	}
}

// Press starts a gesture with the given tool at a device position. Presses
// outside the picture are ignored.
func (c *Controller) Press(devX, devY int, id tool.ID) {
	ctx := c.cfg.Context()
	cell := c.Cell(devX, devY)
	if !ctx.Picture.InBounds(cell.X, cell.Y) {
		return
	}

	c.drag = id.Start(cell, ctx, c.cfg.Dispatch)
	c.lastDev = raster.Point{X: devX, Y: devY}
	c.lastCell = cell
	// One-shot tools leave nothing to drag.
	c.active = c.drag != nil
}

// Move feeds a pointer sample into the active gesture. Samples between the
// previous position and this one are synthesized by linear interpolation so
// fast movement cannot skip cells.
func (c *Controller) Move(devX, devY int) {
	if !c.active {
		return
	}

	dx := devX - c.lastDev.X
	dy := devY - c.lastDev.Y
	steps := max(abs(dx), abs(dy))

	for i := 1; i <= steps; i++ {
		dev := raster.Point{
			X: c.lastDev.X + dx*i/steps,
			Y: c.lastDev.Y + dy*i/steps,
		}
		cell := c.Cell(dev.X, dev.Y)
		if cell == c.lastCell {
			continue
		}
		c.lastCell = cell
		c.drag(cell, c.cfg.Context())
	}

	c.lastDev = raster.Point{X: devX, Y: devY}
}

// Release ends the gesture. No gesture state survives past release.
func (c *Controller) Release() {
	c.drag = nil
	c.active = false
	c.lastDev = raster.Point{}
	c.lastCell = raster.Point{}
}

// floorDiv divides rounding toward negative infinity, so device positions
// left or above the origin map to negative cells instead of cell zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
