// Package app wires the editor together: configuration, state, tools,
// rendering, input, and session persistence behind a single event loop.
package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/pixelstorm/internal/codec"
	"github.com/dshills/pixelstorm/internal/config"
	"github.com/dshills/pixelstorm/internal/editor"
	"github.com/dshills/pixelstorm/internal/input/pointer"
	"github.com/dshills/pixelstorm/internal/palette"
	"github.com/dshills/pixelstorm/internal/plugin/lua"
	"github.com/dshills/pixelstorm/internal/raster"
	"github.com/dshills/pixelstorm/internal/render"
	"github.com/dshills/pixelstorm/internal/render/backend"
	"github.com/dshills/pixelstorm/internal/session"
	"github.com/dshills/pixelstorm/internal/tool"
)

// exportScale is the pixel size of one cell in exported images.
const exportScale = 10

// Options are the command-line settings. Zero values defer to the config
// file and its defaults.
type Options struct {
	// ConfigPath is the configuration file to load.
	ConfigPath string

	// Size overrides the grid dimensions, as "WIDTHxHEIGHT".
	Size string

	// Scale overrides the cell scale when positive.
	Scale int

	// LoadPath is an image file to import as the initial picture.
	LoadPath string

	// SessionPath overrides the session file to restore and save.
	SessionPath string

	// BrushPath is a Lua brush script to load.
	BrushPath string

	// ExportPath is where PNG exports are written.
	ExportPath string

	// LogLevel is the minimum log level when logging is enabled.
	LogLevel string
}

// Application owns the editor state and the event loop.
type Application struct {
	cfg    config.Config
	logger *Logger

	backend  backend.Backend
	renderer *render.Renderer
	ctrl     *pointer.Controller

	st    editor.State
	pal   palette.Palette
	brush *lua.Brush

	sessionPath string
	exportPath  string

	mouseDown bool
	cursor    raster.Point

	now func() time.Time
}

// New creates an application from the options. The backend is attached
// separately so tests can supply a memory backend.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Size != "" {
		w, h, err := parseSize(opts.Size)
		if err != nil {
			return nil, err
		}
		cfg.Width, cfg.Height = w, h
	}
	if opts.Scale > 0 {
		cfg.Scale = opts.Scale
	}
	if opts.SessionPath != "" {
		cfg.SessionPath = opts.SessionPath
	}
	// Overrides bypass Load's validation, so re-check the resolved values.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := NullLogger
	if cfg.LogPath != "" {
		logger, err = NewFileLogger(cfg.LogPath, ParseLogLevel(opts.LogLevel))
		if err != nil {
			return nil, err
		}
	}

	app := &Application{
		cfg:         cfg,
		logger:      logger,
		pal:         palette.Default(),
		sessionPath: cfg.SessionPath,
		exportPath:  opts.ExportPath,
		now:         time.Now,
	}
	if app.exportPath == "" {
		app.exportPath = "pixelstorm.png"
	}

	if err := app.initState(opts.LoadPath); err != nil {
		app.logger.Close()
		return nil, err
	}

	if opts.BrushPath != "" {
		app.brush, err = lua.LoadBrush(opts.BrushPath)
		if err != nil {
			app.logger.Close()
			return nil, err
		}
		logger.Info("loaded brush %s", opts.BrushPath)
	}
	return app, nil
}

// initState resolves the initial picture: an imported image wins, then a
// restorable session, then a fresh background-filled grid.
func (app *Application) initState(loadPath string) error {
	if loadPath != "" {
		f, err := os.Open(loadPath)
		if err != nil {
			return fmt.Errorf("load image: %w", err)
		}
		defer f.Close()

		pic, err := codec.Decode(f)
		if err != nil {
			return err
		}
		app.st = editor.NewState(palette.Quantize(pic, app.pal))
		app.logger.Info("imported %s as %dx%d", loadPath, pic.Width(), pic.Height())
		return nil
	}

	if app.sessionPath != "" {
		if _, err := os.Stat(app.sessionPath); err == nil {
			st, pal, err := session.Load(app.sessionPath)
			if err != nil {
				return err
			}
			app.st = st
			app.pal = pal
			app.logger.Info("restored session %s", app.sessionPath)
			return nil
		}
	}

	app.st = editor.NewState(raster.New(app.cfg.Width, app.cfg.Height, app.cfg.Background))
	return nil
}

// SetBackend attaches the render and input backend and initializes it.
func (app *Application) SetBackend(b backend.Backend) error {
	if err := b.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	app.backend = b
	app.renderer = render.New(b, app.cfg.Scale)
	app.ctrl = pointer.New(pointer.Config{
		Scale: app.cfg.Scale,
		// Read through the application so drag samples see current state,
		// not the state at attach time.
		Context:  func() tool.Context { return app.st.ToolContext() },
		Dispatch: app.dispatch,
	})
	return nil
}

// State returns the current editor state.
func (app *Application) State() editor.State {
	return app.st
}

// Palette returns the working palette.
func (app *Application) Palette() palette.Palette {
	return app.pal
}

// Shutdown restores the environment and releases resources. Safe to call
// more than once.
func (app *Application) Shutdown() {
	if app.backend != nil {
		app.backend.Shutdown()
	}
	if app.brush != nil {
		app.brush.Close()
		app.brush = nil
	}
	app.logger.Close()
}

// dispatch folds a tool change into the state.
func (app *Application) dispatch(ch tool.Change) {
	app.reduce(editor.ChangeAction(ch))
}

// reduce advances the state by one action.
func (app *Application) reduce(a editor.Action) {
	app.st = editor.Reduce(app.st, a, app.now())
}

// parseSize parses a "WIDTHxHEIGHT" string.
func parseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(s, "x")
	if ok {
		width, err = strconv.Atoi(w)
		if err == nil {
			height, err = strconv.Atoi(h)
		}
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("%w: size %q, want WIDTHxHEIGHT", config.ErrInvalidConfig, s)
	}
	return width, height, nil
}
