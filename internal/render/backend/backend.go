// Package backend provides render surfaces and the input event source.
//
// Terminal drives a tcell screen: raster cells become colored terminal
// cells, doubled horizontally so a surface unit is roughly square on screen,
// and tcell key/mouse events are normalized into backend events in surface
// coordinates. Memory records paint operations for tests and headless runs.
package backend

import "github.com/dshills/pixelstorm/internal/render"

// EventType identifies the kind of input event.
type EventType uint8

const (
	// EventNone is an event the application can ignore.
	EventNone EventType = iota

	// EventKey is a keyboard event.
	EventKey

	// EventMouse is a pointer event in surface coordinates.
	EventMouse

	// EventResize reports a new screen size.
	EventResize

	// EventClosed reports that the backend was shut down and will deliver
	// no further events.
	EventClosed
)

// String returns the string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Key identifies the non-rune keys the application reacts to.
type Key uint8

const (
	// KeyNone means the event carries a plain rune.
	KeyNone Key = iota
	// KeyEscape is the escape key.
	KeyEscape
	// KeyCtrlC is the interrupt chord.
	KeyCtrlC
)

// Event is a normalized input event.
type Event struct {
	Type EventType

	// Key fields.
	Key  Key
	Rune rune

	// Mouse fields. X and Y are surface coordinates; Pressed reports
	// whether the primary button is held.
	X, Y    int
	Pressed bool

	// Resize fields, in surface units.
	Width, Height int
}

// Backend is a render surface that also sources input events.
type Backend interface {
	render.Surface

	// Init prepares the backend for use.
	Init() error

	// Shutdown restores the environment. Safe to call more than once.
	Shutdown()

	// Size returns the usable surface size in surface units.
	Size() (width, height int)

	// SetStatus displays a one-line status text outside the paint area.
	SetStatus(text string)

	// PollEvent blocks for the next input event. After Shutdown it returns
	// EventClosed.
	PollEvent() Event
}
