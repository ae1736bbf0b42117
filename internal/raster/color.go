package raster

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a flat, opaque 24-bit RGB value. Colors compare with ==; there is
// no alpha channel.
type Color struct {
	R, G, B uint8
}

// Common palette colors.
var (
	Black   = Color{R: 0, G: 0, B: 0}
	White   = Color{R: 255, G: 255, B: 255}
	Red     = Color{R: 255, G: 0, B: 0}
	Green   = Color{R: 0, G: 128, B: 0}
	Blue    = Color{R: 0, G: 0, B: 255}
	Yellow  = Color{R: 255, G: 255, B: 0}
	Cyan    = Color{R: 0, G: 255, B: 255}
	Magenta = Color{R: 255, G: 0, B: 255}
	Gray    = Color{R: 128, G: 128, B: 128}
	Silver  = Color{R: 192, G: 192, B: 192}
	Maroon  = Color{R: 128, G: 0, B: 0}
	Olive   = Color{R: 128, G: 128, B: 0}
	Lime    = Color{R: 0, G: 255, B: 0}
	Teal    = Color{R: 0, G: 128, B: 128}
	Navy    = Color{R: 0, G: 0, B: 128}
	Purple  = Color{R: 128, G: 0, B: 128}
)

// RGB creates a color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the hex form of the color.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses a hex color string.
// Supported formats: "#RGB", "#RRGGBB", "RGB", "RRGGBB".
func ParseColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		// Short form: each digit doubles.
		var out Color
		dst := []*uint8{&out.R, &out.G, &out.B}
		for i, d := range dst {
			v, err := strconv.ParseUint(string(hex[i])+string(hex[i]), 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid hex color: %s", hex)
			}
			*d = uint8(v)
		}
		return out, nil

	case 6:
		var out Color
		dst := []*uint8{&out.R, &out.G, &out.B}
		for i, d := range dst {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid hex color: %s", hex)
			}
			*d = uint8(v)
		}
		return out, nil

	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
}
