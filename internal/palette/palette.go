// Package palette manages the working set of drawing colors.
//
// Color math (perceptual distance, hue ordering) runs in go-colorful's
// spaces: nearest-color lookups use Lab distance so quantizing an imported
// image picks perceptually close palette entries, and display ordering sorts
// by HSV hue.
package palette

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/pixelstorm/internal/raster"
)

// Palette is an ordered set of drawing colors.
type Palette struct {
	colors []raster.Color
}

// New creates a palette from the given colors.
func New(colors ...raster.Color) Palette {
	own := make([]raster.Color, len(colors))
	copy(own, colors)
	return Palette{colors: own}
}

// Default returns the standard sixteen-color web palette.
func Default() Palette {
	return New(
		raster.Black, raster.Gray, raster.Silver, raster.White,
		raster.Maroon, raster.Red, raster.Olive, raster.Yellow,
		raster.Green, raster.Lime, raster.Teal, raster.Cyan,
		raster.Navy, raster.Blue, raster.Purple, raster.Magenta,
	)
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the palette colors in order.
func (p Palette) Colors() []raster.Color {
	out := make([]raster.Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Color returns the color at index i, or false if out of range.
func (p Palette) Color(i int) (raster.Color, bool) {
	if i < 0 || i >= len(p.colors) {
		return raster.Color{}, false
	}
	return p.colors[i], true
}

// Contains reports whether the palette holds the exact color.
func (p Palette) Contains(c raster.Color) bool {
	for _, pc := range p.colors {
		if pc == c {
			return true
		}
	}
	return false
}

// SortedByHue returns a new palette ordered by HSV hue, with grays first.
func (p Palette) SortedByHue() Palette {
	out := p.Colors()
	sort.SliceStable(out, func(i, j int) bool {
		hi, si, _ := toColorful(out[i]).Hsv()
		hj, sj, _ := toColorful(out[j]).Hsv()
		// Grays (no saturation) sort ahead of hues.
		if (si == 0) != (sj == 0) {
			return si == 0
		}
		return hi < hj
	})
	return Palette{colors: out}
}

// Nearest returns the palette color perceptually closest to c, by Lab
// distance. An empty palette returns c unchanged.
func (p Palette) Nearest(c raster.Color) raster.Color {
	if len(p.colors) == 0 {
		return c
	}

	target := toColorful(c)
	best := p.colors[0]
	bestDist := target.DistanceLab(toColorful(best))
	for _, pc := range p.colors[1:] {
		if d := target.DistanceLab(toColorful(pc)); d < bestDist {
			best = pc
			bestDist = d
		}
	}
	return best
}

// Quantize maps every cell of the raster onto its nearest palette color.
func Quantize(r raster.Raster, p Palette) raster.Raster {
	if p.Len() == 0 {
		return r
	}

	// Memoize per distinct source color; imported images repeat colors
	// heavily at raster sizes.
	seen := make(map[raster.Color]raster.Color)
	var edits []raster.Edit
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			c := r.Pixel(x, y)
			mapped, ok := seen[c]
			if !ok {
				mapped = p.Nearest(c)
				seen[c] = mapped
			}
			if mapped != c {
				edits = append(edits, raster.Edit{X: x, Y: y, Color: mapped})
			}
		}
	}
	if len(edits) == 0 {
		return r
	}
	return r.ApplyEdits(edits)
}

// toColorful converts a raster color into go-colorful's representation.
func toColorful(c raster.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
