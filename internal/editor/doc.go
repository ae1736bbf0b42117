// Package editor holds the application state of a Pixelstorm session and the
// pure reducer that advances it.
//
// State is an immutable value: tools and the UI never modify it in place.
// Every transition goes through Reduce, which merges a partial Action into
// the prior state and implements the undo policy:
//
//   - An undo action pops the most recent history snapshot back into the
//     picture. Undo with empty history is a silent no-op.
//   - A picture edit arriving at least one second after the last committed
//     edit snapshots the pre-edit picture first. Edits inside that one-second
//     window coalesce into the current undo step, so a fast drag gesture
//     costs a single undo step.
//   - Everything else (tool, color, size changes) merges without touching
//     history.
//
// Redo mirrors undo with a second stack that clears whenever a new snapshot
// is committed.
package editor
