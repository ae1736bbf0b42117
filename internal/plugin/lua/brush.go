// Package lua evaluates scripted brushes.
//
// A brush script is a Lua file defining a global function
//
//	function brush(x, y, width, height)
//
// which is called once per cell and returns a hex color string for cells the
// brush paints, or nil for cells it leaves alone. The returned edits apply as
// one batch, so a brush is a single undo step.
//
// Scripts run in a reduced environment: base, string, table and math
// libraries only, with the file and code loaders removed. A Brush is not
// goroutine-safe; gopher-lua states must stay on one goroutine.
package lua

import (
	"context"
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/pixelstorm/internal/raster"
)

// Errors for brush loading and evaluation.
var (
	// ErrNoBrushFunction is returned when a script defines no brush function.
	ErrNoBrushFunction = errors.New("script defines no brush function")

	// ErrBadBrushReturn is returned when brush returns something other than
	// a color string or nil.
	ErrBadBrushReturn = errors.New("brush returned neither color nor nil")

	// ErrBrushClosed is returned when rendering with a closed brush.
	ErrBrushClosed = errors.New("brush is closed")
)

// Brush is a loaded brush script.
type Brush struct {
	state  *lua.LState
	fn     *lua.LFunction
	closed bool
}

// LoadBrush reads and compiles a brush script from a file.
func LoadBrush(path string) (*Brush, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load brush: %w", err)
	}
	return LoadBrushScript(string(src))
}

// LoadBrushScript compiles a brush script from source.
func LoadBrushScript(src string) (*Brush, error) {
	L := newState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("load brush: %w", err)
	}

	fn, ok := L.GetGlobal("brush").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrNoBrushFunction
	}
	return &Brush{state: L, fn: fn}, nil
}

// Render evaluates the brush over a width-by-height grid and returns the
// edits it paints, in row-major order. The context cancels long-running
// scripts.
func (b *Brush) Render(ctx context.Context, width, height int) ([]raster.Edit, error) {
	if b.closed {
		return nil, ErrBrushClosed
	}

	b.state.SetContext(ctx)
	defer b.state.RemoveContext()

	var edits []raster.Edit
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			err := b.state.CallByParam(
				lua.P{Fn: b.fn, NRet: 1, Protect: true},
				lua.LNumber(x), lua.LNumber(y),
				lua.LNumber(width), lua.LNumber(height),
			)
			if err != nil {
				return nil, fmt.Errorf("brush(%d,%d): %w", x, y, err)
			}

			ret := b.state.Get(-1)
			b.state.Pop(1)
			if ret == lua.LNil {
				continue
			}

			s, ok := ret.(lua.LString)
			if !ok {
				return nil, fmt.Errorf("%w: got %s at (%d,%d)", ErrBadBrushReturn, ret.Type(), x, y)
			}
			c, err := raster.ParseColor(string(s))
			if err != nil {
				return nil, fmt.Errorf("brush(%d,%d): %w", x, y, err)
			}
			edits = append(edits, raster.Edit{X: x, Y: y, Color: c})
		}
	}
	return edits, nil
}

// Close releases the script's interpreter state.
func (b *Brush) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.state.Close()
}

// newState builds a Lua state with only the safe libraries opened.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	// Base brings the code and file loaders along; scripts get neither.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}
