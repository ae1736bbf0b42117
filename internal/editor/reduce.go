package editor

import (
	"time"

	"github.com/dshills/pixelstorm/internal/raster"
)

// CoalesceWindow is the interval during which successive picture edits merge
// into the current undo step instead of creating a new one.
const CoalesceWindow = time.Second

// Reduce merges an action into the state and returns the new state. It is a
// pure function; now supplies the clock for the coalescing policy.
func Reduce(st State, a Action, now time.Time) State {
	switch {
	case a.Undo:
		if len(st.History) == 0 {
			return st
		}
		next := st
		next.Picture = st.History[0]
		next.History = st.History[1:]
		next.Redo = prepend(st.Redo, st.Picture)
		// Zero time: the next edit always starts a fresh undo step.
		next.LastCommit = time.Time{}
		return next

	case a.Redo:
		if len(st.Redo) == 0 {
			return st
		}
		next := st
		next.Picture = st.Redo[0]
		next.Redo = st.Redo[1:]
		next.History = prepend(st.History, st.Picture)
		next.LastCommit = time.Time{}
		return next

	case a.Picture != nil && now.Sub(st.LastCommit) >= CoalesceWindow:
		// Undo checkpoint: snapshot the pre-edit picture, at most once per
		// second of active editing.
		next := merge(st, a)
		next.History = prepend(st.History, st.Picture)
		next.Redo = nil
		next.LastCommit = now
		return next

	default:
		return merge(st, a)
	}
}

// merge applies the action's present fields onto the state, leaving history
// and the commit clock alone.
func merge(st State, a Action) State {
	next := st
	if a.Tool != nil {
		next.Tool = *a.Tool
	}
	if a.Color != nil {
		next.Color = *a.Color
	}
	if a.Size != nil {
		next.Size = *a.Size
	}
	if a.Picture != nil {
		next.Picture = *a.Picture
	}
	return next
}

// prepend returns a new slice with r at the front. The input slice is shared
// by other State values and must not be appended to in place.
func prepend(list []raster.Raster, r raster.Raster) []raster.Raster {
	out := make([]raster.Raster, 0, len(list)+1)
	out = append(out, r)
	return append(out, list...)
}
