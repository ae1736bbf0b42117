// Package session persists an editing session as a JSON document.
//
// A session captures what a user would expect to find after reopening the
// editor: the picture, the active tool and color, and the palette. Undo
// history is deliberately not persisted. Cells serialize as one continuous
// hex string, six digits per cell in row-major order, which keeps the
// document compact and diff-friendly.
package session

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/pixelstorm/internal/editor"
	"github.com/dshills/pixelstorm/internal/palette"
	"github.com/dshills/pixelstorm/internal/raster"
	"github.com/dshills/pixelstorm/internal/tool"
)

// Version is the current session document version.
const Version = 1

// ErrInvalidSession indicates a session document that cannot be restored.
var ErrInvalidSession = errors.New("invalid session document")

// Marshal serializes the state and palette into a session document.
func Marshal(st editor.State, pal palette.Palette) ([]byte, error) {
	doc := "{}"

	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("version", Version)
	set("tool", st.Tool.String())
	set("color", st.Color.Hex())
	set("size", st.Size)

	hexes := make([]string, 0, pal.Len())
	for _, c := range pal.Colors() {
		hexes = append(hexes, c.Hex())
	}
	set("palette", hexes)

	set("picture.width", st.Picture.Width())
	set("picture.height", st.Picture.Height())
	set("picture.cells", encodeCells(st.Picture))

	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	return []byte(doc), nil
}

// Unmarshal restores state and palette from a session document.
func Unmarshal(data []byte) (editor.State, palette.Palette, error) {
	if !gjson.ValidBytes(data) {
		return editor.State{}, palette.Palette{}, fmt.Errorf("%w: not valid JSON", ErrInvalidSession)
	}

	doc := gjson.ParseBytes(data)
	if v := doc.Get("version").Int(); v != Version {
		return editor.State{}, palette.Palette{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidSession, v)
	}

	width := int(doc.Get("picture.width").Int())
	height := int(doc.Get("picture.height").Int())
	if width < 1 || height < 1 {
		return editor.State{}, palette.Palette{}, fmt.Errorf("%w: bad dimensions %dx%d", ErrInvalidSession, width, height)
	}

	pic, err := decodeCells(width, height, doc.Get("picture.cells").String())
	if err != nil {
		return editor.State{}, palette.Palette{}, err
	}

	st := editor.NewState(pic)
	if s := doc.Get("size"); s.Exists() {
		st.Size = s.String()
	}
	if id, err := tool.Parse(doc.Get("tool").String()); err == nil {
		st.Tool = id
	}
	if c, err := raster.ParseColor(doc.Get("color").String()); err == nil {
		st.Color = c
	}

	var colors []raster.Color
	for _, entry := range doc.Get("palette").Array() {
		c, err := raster.ParseColor(entry.String())
		if err != nil {
			return editor.State{}, palette.Palette{}, fmt.Errorf("%w: bad palette color %q", ErrInvalidSession, entry.String())
		}
		colors = append(colors, c)
	}
	pal := palette.New(colors...)
	if pal.Len() == 0 {
		pal = palette.Default()
	}

	return st, pal, nil
}

// Save writes the session document to a file.
func Save(path string, st editor.State, pal palette.Palette) error {
	data, err := Marshal(st, pal)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reads a session document from a file.
func Load(path string) (editor.State, palette.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return editor.State{}, palette.Palette{}, fmt.Errorf("load session: %w", err)
	}
	return Unmarshal(data)
}

// encodeCells packs the raster cells into a hex string, six digits per cell.
func encodeCells(r raster.Raster) string {
	var sb strings.Builder
	sb.Grow(r.Width() * r.Height() * 6)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			c := r.Pixel(x, y)
			fmt.Fprintf(&sb, "%02x%02x%02x", c.R, c.G, c.B)
		}
	}
	return sb.String()
}

// decodeCells unpacks a hex cell string into a raster.
func decodeCells(width, height int, cells string) (raster.Raster, error) {
	if len(cells) != width*height*6 {
		return raster.Raster{}, fmt.Errorf("%w: cell data length %d, want %d", ErrInvalidSession, len(cells), width*height*6)
	}

	out := make([]raster.Color, 0, width*height)
	for i := 0; i < len(cells); i += 6 {
		c, err := raster.ParseColor(cells[i : i+6])
		if err != nil {
			return raster.Raster{}, fmt.Errorf("%w: bad cell at index %d", ErrInvalidSession, i/6)
		}
		out = append(out, c)
	}
	return raster.FromCells(width, height, out), nil
}
