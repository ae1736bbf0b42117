package editor

import (
	"time"

	"github.com/dshills/pixelstorm/internal/raster"
	"github.com/dshills/pixelstorm/internal/tool"
)

// State is the complete editor state. It is a value; transitions produce a
// new State rather than mutating the old one.
type State struct {
	// Size is the label of the active brush/grid size preset.
	Size string

	// Tool is the active editing tool.
	Tool tool.ID

	// Color is the active drawing color.
	Color raster.Color

	// Picture is the raster being edited.
	Picture raster.Raster

	// History holds undo snapshots, most recent first.
	History []raster.Raster

	// Redo holds pictures undone since the last committed edit, most recent
	// first. A committed edit clears it.
	Redo []raster.Raster

	// LastCommit is the time of the last history snapshot. The zero time
	// guarantees the next picture edit starts a fresh coalescing window.
	LastCommit time.Time
}

// NewState creates the initial state for a picture.
func NewState(pic raster.Raster) State {
	return State{
		Size:    "1",
		Tool:    tool.Draw,
		Color:   raster.Black,
		Picture: pic,
	}
}

// ToolContext returns the editing context tools see for the current state.
func (s State) ToolContext() tool.Context {
	return tool.Context{Picture: s.Picture, Color: s.Color}
}

// Action is a partial state update. Nil fields are left untouched by the
// merge; Undo and Redo route to the history branches of Reduce instead.
type Action struct {
	Tool    *tool.ID
	Color   *raster.Color
	Size    *string
	Picture *raster.Raster
	Undo    bool
	Redo    bool
}

// ChangeAction converts a tool change into an action.
func ChangeAction(ch tool.Change) Action {
	return Action{Picture: ch.Picture, Color: ch.Color}
}
