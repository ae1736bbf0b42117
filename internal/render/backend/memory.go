package backend

import (
	"sync"

	"github.com/dshills/pixelstorm/internal/raster"
)

// FillOp records one FillBlock call.
type FillOp struct {
	X, Y          int
	Width, Height int
	Color         raster.Color
}

// Memory is an in-memory Surface that records every operation. It backs the
// renderer tests and headless runs.
type Memory struct {
	mu      sync.Mutex
	width   int
	height  int
	resizes int
	flushes int
	fills   []FillOp
	events  chan Event
	status  string

	closeOnce sync.Once
}

var _ Backend = (*Memory)(nil)

// NewMemory creates a memory backend with the given surface size.
func NewMemory(width, height int) *Memory {
	return &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
}

// Init implements Backend.
func (m *Memory) Init() error { return nil }

// Shutdown closes the event stream; pending PollEvent calls return
// EventClosed. Safe to call more than once.
func (m *Memory) Shutdown() {
	m.closeOnce.Do(func() { close(m.events) })
}

// Size returns the surface size.
func (m *Memory) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Resize records a resize.
func (m *Memory) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width = width
	m.height = height
	m.resizes++
}

// FillBlock records a paint operation.
func (m *Memory) FillBlock(x, y, width, height int, c raster.Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fills = append(m.fills, FillOp{X: x, Y: y, Width: width, Height: height, Color: c})
}

// Flush records a flush.
func (m *Memory) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
}

// SetStatus records the status text.
func (m *Memory) SetStatus(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = text
}

// Status returns the last status text.
func (m *Memory) Status() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// PollEvent returns the next queued event, or EventClosed after Shutdown.
func (m *Memory) PollEvent() Event {
	ev, ok := <-m.events
	if !ok {
		return Event{Type: EventClosed}
	}
	return ev
}

// Post queues an event for PollEvent.
func (m *Memory) Post(ev Event) {
	m.events <- ev
}

// Fills returns the recorded paint operations.
func (m *Memory) Fills() []FillOp {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]FillOp, len(m.fills))
	copy(out, m.fills)
	return out
}

// ResizeCount returns how many resizes were recorded.
func (m *Memory) ResizeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resizes
}

// FlushCount returns how many flushes were recorded.
func (m *Memory) FlushCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// ResetOps clears the recorded operations, keeping the surface size.
func (m *Memory) ResetOps() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fills = nil
	m.resizes = 0
	m.flushes = 0
}
