package gradient

import (
	"image"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/palettecraft/internal/colour"
)

// Render rasterises cfg into a w×h image. Adjacent stops are blended in HCL
// so intermediate colours stay in gamut. A config without colours renders
// transparent.
func Render(cfg Config, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(cfg.Colors) == 0 || w <= 0 || h <= 0 {
		return img
	}

	stops := make([]colorful.Color, len(cfg.Colors))
	for i, c := range cfg.Colors {
		rgb := colour.ParseHex(c)
		stops[i] = colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	}
	pos := cfg.positions()
	for i := range pos {
		pos[i] /= 100
	}

	project := projector(cfg, w, h)
	for y := range h {
		for x := range w {
			img.Set(x, y, sample(stops, pos, project(x, y)).Clamped())
		}
	}
	return img
}

// projector maps a pixel to its offset along the gradient line in [0,1].
func projector(cfg Config, w, h int) func(x, y int) float64 {
	fx := func(x int) float64 { return unit(x, w) }
	fy := func(y int) float64 { return unit(y, h) }

	if cfg.Type == Radial {
		cx, cy := float64(w-1)/2, float64(h-1)/2
		radius := math.Hypot(cx, cy)
		return func(x, y int) float64 {
			if radius == 0 {
				return 0
			}
			return math.Hypot(float64(x)-cx, float64(y)-cy) / radius
		}
	}

	dir := string(cfg.Direction)
	if dir == "" {
		dir = string(ToRight)
	}
	var dx, dy int
	switch {
	case strings.Contains(dir, "right"):
		dx = 1
	case strings.Contains(dir, "left"):
		dx = -1
	}
	switch {
	case strings.Contains(dir, "bottom"):
		dy = 1
	case strings.Contains(dir, "top"):
		dy = -1
	}
	axes := float64(abs(dx) + abs(dy))

	return func(x, y int) float64 {
		var t float64
		switch dx {
		case 1:
			t += fx(x)
		case -1:
			t += 1 - fx(x)
		}
		switch dy {
		case 1:
			t += fy(y)
		case -1:
			t += 1 - fy(y)
		}
		if axes == 0 {
			return 0
		}
		return t / axes
	}
}

func unit(v, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(v) / float64(size-1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sample returns the colour at offset t given stop colours and their offsets.
func sample(stops []colorful.Color, pos []float64, t float64) colorful.Color {
	if t <= pos[0] {
		return stops[0]
	}
	last := len(stops) - 1
	if t >= pos[last] {
		return stops[last]
	}
	for i := 0; i < last; i++ {
		a, b := pos[i], pos[i+1]
		if t < a || t > b {
			continue
		}
		if b == a {
			return stops[i+1]
		}
		return stops[i].BlendHcl(stops[i+1], (t-a)/(b-a))
	}
	return stops[last]
}
