package tool

import (
	"fmt"

	"github.com/dshills/pixelstorm/internal/raster"
)

// ID identifies an editing tool.
type ID uint8

// The available tools.
const (
	// Draw paints single cells under the pointer.
	Draw ID = iota
	// Fill flood-fills the 4-connected region under the pointer.
	Fill
	// Rect fills the axis-aligned box between gesture start and pointer.
	Rect
	// Circle fills the disc centered on the gesture start.
	Circle
	// Pick selects the color of the cell under the pointer.
	Pick
)

// Context is the editing state a tool sees for one sample: the picture the
// edit applies to and the active drawing color. Drag tools receive a fresh
// Context per sample so recomputed shapes draw against current state.
type Context struct {
	Picture raster.Raster
	Color   raster.Color
}

// Change is a partial state update produced by a tool. Nil fields are
// untouched by the merge.
type Change struct {
	Picture *raster.Raster
	Color   *raster.Color
}

// Dispatch delivers a tool's change to the state owner.
type Dispatch func(Change)

// DragFunc continues a gesture: it is called for every pointer sample after
// the press, in arrival order.
type DragFunc func(pos raster.Point, ctx Context)

// Func is the start function shared by all tools.
type Func func(start raster.Point, ctx Context, dispatch Dispatch) DragFunc

// starters maps each tool to its start function.
var starters = [...]Func{
	Draw:   drawStart,
	Fill:   fillStart,
	Rect:   rectStart,
	Circle: circleStart,
	Pick:   pickStart,
}

// Start begins a gesture with this tool. It performs the tool's immediate
// edit and returns the continuation for the rest of the gesture, or nil for
// one-shot tools.
func (id ID) Start(start raster.Point, ctx Context, dispatch Dispatch) DragFunc {
	if int(id) >= len(starters) {
		return nil
	}
	return starters[id](start, ctx, dispatch)
}

// String returns the tool name.
func (id ID) String() string {
	switch id {
	case Draw:
		return "draw"
	case Fill:
		return "fill"
	case Rect:
		return "rectangle"
	case Circle:
		return "circle"
	case Pick:
		return "pick"
	default:
		return "unknown"
	}
}

// Parse returns the tool with the given name.
func Parse(name string) (ID, error) {
	switch name {
	case "draw":
		return Draw, nil
	case "fill":
		return Fill, nil
	case "rectangle", "rect":
		return Rect, nil
	case "circle":
		return Circle, nil
	case "pick":
		return Pick, nil
	default:
		return Draw, fmt.Errorf("unknown tool: %s", name)
	}
}

// IDs returns all tool identifiers in display order.
func IDs() []ID {
	return []ID{Draw, Fill, Rect, Circle, Pick}
}
