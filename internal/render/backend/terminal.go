package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pixelstorm/internal/raster"
)

// cellAspect is how many terminal columns one surface unit spans. Terminal
// cells are roughly twice as tall as wide, so doubling columns keeps painted
// blocks square.
const cellAspect = 2

// Terminal implements Backend on a tcell screen. The bottom row is reserved
// for the status line; everything above it is paint area.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

var _ Backend = (*Terminal)(nil)

// NewTerminal creates a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init initializes the screen and enables mouse reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the usable paint area in surface units.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cols, rows := t.screen.Size()
	return cols / cellAspect, rows - 1
}

// Resize clears the screen for a new paint area size. The terminal itself
// cannot be resized programmatically; the paint area simply reflows.
func (t *Terminal) Resize(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// FillBlock paints a block of surface units with the given color.
func (t *Terminal) FillBlock(x, y, width, height int, c raster.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	cols, rows := t.screen.Size()

	for row := y; row < y+height && row < rows-1; row++ {
		for col := x * cellAspect; col < (x+width)*cellAspect && col < cols; col++ {
			if col >= 0 && row >= 0 {
				t.screen.SetContent(col, row, ' ', nil, style)
			}
		}
	}
}

// Flush makes queued paints visible.
func (t *Terminal) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// SetStatus writes the status line into the reserved bottom row.
func (t *Terminal) SetStatus(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cols, rows := t.screen.Size()
	row := rows - 1
	if row < 0 {
		return
	}

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range text {
		if col >= cols {
			break
		}
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < cols; col++ {
		t.screen.SetContent(col, row, ' ', nil, style)
	}
}

// PollEvent blocks for the next input event and normalizes it.
func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return convertKey(ev)
		case *tcell.EventMouse:
			x, y := ev.Position()
			return Event{
				Type:    EventMouse,
				X:       x / cellAspect,
				Y:       y,
				Pressed: ev.Buttons()&tcell.Button1 != 0,
			}
		case *tcell.EventResize:
			cols, rows := ev.Size()
			return Event{Type: EventResize, Width: cols / cellAspect, Height: rows - 1}
		case nil:
			// Screen finalized; nothing more will arrive.
			return Event{Type: EventClosed}
		default:
			// Paste, focus and friends are irrelevant here; poll again.
		}
	}
}

// convertKey maps a tcell key event onto the backend key vocabulary.
func convertKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case tcell.KeyRune:
		return Event{Type: EventKey, Rune: ev.Rune()}
	default:
		return Event{Type: EventNone}
	}
}
