// Package codec converts rasters to and from portable image formats.
//
// Export renders each raster cell as a scale-by-scale pixel block; the
// background color can optionally be skipped so it exports as transparency.
// Import decodes PNG, GIF or JPEG and downscales any dimension above
// MaxDimension down to MaxDimension, since the editor surface cannot render
// more cells than that.
package codec

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"

	_ "image/jpeg" // register JPEG for image.Decode

	xdraw "golang.org/x/image/draw"

	"github.com/dshills/pixelstorm/internal/raster"
)

// MaxDimension is the largest raster dimension an import produces.
const MaxDimension = 100

// ExportOptions controls raster export.
type ExportOptions struct {
	// Scale is the pixel size of one cell. Values below 1 mean 1.
	Scale int

	// SkipBackground exports cells equal to Background as transparency
	// instead of paint. Skipping is an export policy, not a raster property.
	SkipBackground bool

	// Background is the color treated as background when skipping.
	Background raster.Color
}

// EncodePNG writes the raster as a PNG image.
func EncodePNG(w io.Writer, r raster.Raster, opts ExportOptions) error {
	if err := png.Encode(w, toImage(r, opts)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodeGIF writes the raster as a GIF image. GIF carries no alpha, so
// SkipBackground is ignored.
func EncodeGIF(w io.Writer, r raster.Raster, opts ExportOptions) error {
	opts.SkipBackground = false
	if err := gif.Encode(w, toImage(r, opts), &gif.Options{NumColors: 256}); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// Decode reads a PNG, GIF or JPEG image into a raster, downscaling
// dimensions above MaxDimension. Transparency composites over white.
func Decode(rd io.Reader) (raster.Raster, error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return raster.Raster{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width := min(bounds.Dx(), MaxDimension)
	height := min(bounds.Dy(), MaxDimension)
	if width < 1 || height < 1 {
		return raster.Raster{}, fmt.Errorf("decode image: empty image")
	}

	if width != bounds.Dx() || height != bounds.Dy() {
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)
		img = scaled
		bounds = scaled.Bounds()
	}

	cells := make([]raster.Color, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cells = append(cells, flatten(img.At(x, y)))
		}
	}
	return raster.FromCells(width, height, cells), nil
}

// toImage renders the raster into an NRGBA image per the options.
func toImage(r raster.Raster, opts ExportOptions) *image.NRGBA {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, r.Width()*scale, r.Height()*scale))
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			c := r.Pixel(x, y)
			if opts.SkipBackground && c == opts.Background {
				continue // stays transparent
			}
			px := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetNRGBA(x*scale+dx, y*scale+dy, px)
				}
			}
		}
	}
	return img
}

// flatten drops alpha by compositing the pixel over white.
func flatten(c color.Color) raster.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return raster.White
	}
	// Values are alpha-premultiplied 16-bit; the white share is what alpha
	// leaves uncovered.
	white := (0xffff - a) >> 8
	return raster.Color{
		R: uint8(min(255, int(r>>8)+int(white))),
		G: uint8(min(255, int(g>>8)+int(white))),
		B: uint8(min(255, int(b>>8)+int(white))),
	}
}
