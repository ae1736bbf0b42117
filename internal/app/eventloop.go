package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dshills/pixelstorm/internal/codec"
	"github.com/dshills/pixelstorm/internal/editor"
	"github.com/dshills/pixelstorm/internal/render/backend"
	"github.com/dshills/pixelstorm/internal/session"
	"github.com/dshills/pixelstorm/internal/tool"
)

// brushTimeout bounds one scripted brush evaluation.
const brushTimeout = 5 * time.Second

// Run drives the event loop until the user quits or an event handler fails.
// A user-requested exit returns ErrQuit after saving the session.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}

	for {
		app.renderer.Draw(app.st.Picture)
		app.backend.SetStatus(app.statusLine())

		ev := app.backend.PollEvent()
		if err := app.handle(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.saveSession()
			}
			return err
		}
	}
}

// handle routes one event.
func (app *Application) handle(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		app.handleMouse(ev)
	case backend.EventResize:
		app.renderer.Invalidate()
	case backend.EventClosed:
		// External shutdown (signal handler) finalized the backend. Exit
		// through the quit path so the session still saves.
		return ErrQuit
	}
	return nil
}

// handleKey applies the keyboard map.
func (app *Application) handleKey(ev backend.Event) error {
	if ev.Key == backend.KeyCtrlC {
		return ErrQuit
	}

	switch r := ev.Rune; {
	case r == 'q':
		return ErrQuit
	case r == 'u':
		app.reduce(editor.Action{Undo: true})
	case r == 'U' || r == 'r':
		app.reduce(editor.Action{Redo: true})
	case r == 'd':
		app.setTool(tool.Draw)
	case r == 'f':
		app.setTool(tool.Fill)
	case r == 'x':
		app.setTool(tool.Rect)
	case r == 'c':
		app.setTool(tool.Circle)
	case r == 'p':
		app.setTool(tool.Pick)
	case r == 'e':
		if err := app.exportPNG(); err != nil {
			app.logger.Error("export: %v", err)
		}
	case r == 'b':
		app.applyBrush()
	case r >= '1' && r <= '9':
		if c, ok := app.pal.Color(int(r - '1')); ok {
			app.reduce(editor.Action{Color: &c})
		}
	}
	return nil
}

// handleMouse feeds pointer samples into the gesture controller.
func (app *Application) handleMouse(ev backend.Event) {
	app.cursor = app.ctrl.Cell(ev.X, ev.Y)

	switch {
	case ev.Pressed && !app.mouseDown:
		app.mouseDown = true
		app.ctrl.Press(ev.X, ev.Y, app.st.Tool)
	case ev.Pressed:
		app.ctrl.Move(ev.X, ev.Y)
	case app.mouseDown:
		app.ctrl.Move(ev.X, ev.Y)
		app.ctrl.Release()
		app.mouseDown = false
	}
}

// setTool switches the active tool.
func (app *Application) setTool(id tool.ID) {
	app.reduce(editor.Action{Tool: &id})
}

// statusLine formats the bottom status row.
func (app *Application) statusLine() string {
	return fmt.Sprintf(" %s %s (%d,%d) | u:undo r:redo e:export q:quit",
		app.st.Tool, app.st.Color.Hex(), app.cursor.X, app.cursor.Y)
}

// exportPNG writes the picture to the export path.
func (app *Application) exportPNG() error {
	f, err := os.Create(app.exportPath)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	defer f.Close()

	opts := codec.ExportOptions{Scale: exportScale}
	if err := codec.EncodePNG(f, app.st.Picture, opts); err != nil {
		return err
	}
	app.logger.Info("exported %s", app.exportPath)
	return nil
}

// applyBrush evaluates the loaded brush over the grid and applies its edits
// as one undo step.
func (app *Application) applyBrush() {
	if app.brush == nil {
		app.logger.Warn("no brush loaded")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), brushTimeout)
	defer cancel()

	pic := app.st.Picture
	edits, err := app.brush.Render(ctx, pic.Width(), pic.Height())
	if err != nil {
		app.logger.Error("brush: %v", err)
		return
	}
	if len(edits) == 0 {
		return
	}
	next := pic.ApplyEdits(edits)
	app.reduce(editor.Action{Picture: &next})
}

// saveSession persists the session when a session path is configured.
func (app *Application) saveSession() {
	if app.sessionPath == "" {
		return
	}
	if err := session.Save(app.sessionPath, app.st, app.pal); err != nil {
		app.logger.Error("save session: %v", err)
		return
	}
	app.logger.Info("saved session %s", app.sessionPath)
}
