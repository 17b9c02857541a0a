package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/palettecraft/internal/colour"
	"github.com/jmylchreest/palettecraft/internal/gradient"
)

// Default image dimensions in pixels.
const (
	DefaultSwatchWidth  = 200
	DefaultSwatchHeight = 200

	DefaultGradientWidth  = 800
	DefaultGradientHeight = 200
)

// ErrEmptyPalette is returned when there is nothing to draw.
var ErrEmptyPalette = errors.New("palette has no colors")

// PNGOptions controls swatch rendering. Zero sizes use the defaults.
type PNGOptions struct {
	SwatchWidth  int
	SwatchHeight int
	Labels       bool
}

// Swatches draws colors as equal-width vertical stripes. With labels
// enabled each stripe carries its hex code in a contrasting colour.
func Swatches(colors []string, opts PNGOptions) (*image.RGBA, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	w, h := opts.SwatchWidth, opts.SwatchHeight
	if w <= 0 {
		w = DefaultSwatchWidth
	}
	if h <= 0 {
		h = DefaultSwatchHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, w*len(colors), h))
	for i, c := range colors {
		rgb := colour.ParseHex(c)
		rect := image.Rect(i*w, 0, (i+1)*w, h)
		draw.Draw(img, rect, image.NewUniform(color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}), image.Point{}, draw.Src)

		if opts.Labels {
			drawLabel(img, rect, rgb)
		}
	}
	return img, nil
}

// drawLabel centres the hex code near the bottom of rect.
func drawLabel(img *image.RGBA, rect image.Rectangle, rgb colour.RGB) {
	text := rgb.Hex()
	ink := color.RGBA{A: 255}
	if colour.ContrastRatioRGB(rgb, colour.RGB{R: 255, G: 255, B: 255}) > colour.ContrastRatioRGB(rgb, colour.RGB{}) {
		ink = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
	}
	width := d.MeasureString(text).Round()
	x := rect.Min.X + (rect.Dx()-width)/2
	y := rect.Max.Y - face.Height
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// PNG encodes the swatch strip to w.
func PNG(w io.Writer, colors []string, opts PNGOptions) error {
	img, err := Swatches(colors, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// GradientPNG renders cfg at width×height and encodes it to w. Zero sizes
// use the defaults.
func GradientPNG(w io.Writer, cfg gradient.Config, width, height int) error {
	if len(cfg.Colors) == 0 {
		return ErrEmptyPalette
	}
	if width <= 0 {
		width = DefaultGradientWidth
	}
	if height <= 0 {
		height = DefaultGradientHeight
	}
	if err := png.Encode(w, gradient.Render(cfg, width, height)); err != nil {
		return fmt.Errorf("failed to encode gradient png: %w", err)
	}
	return nil
}
