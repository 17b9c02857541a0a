// Package harmony builds colour-theory palettes. Each scheme has a curated
// example swatch and can be derived from any base colour by rotating its hue
// on the HSL colour wheel.
package harmony

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/palettecraft/internal/colour"
)

// ErrUnknownScheme is returned for a scheme name that is not in the catalog.
var ErrUnknownScheme = errors.New("unknown harmony scheme")

// Scheme identifies a colour harmony.
type Scheme string

const (
	Analogous          Scheme = "analogous"
	Complementary      Scheme = "complementary"
	Triadic            Scheme = "triadic"
	Monochromatic      Scheme = "monochromatic"
	Tetradic           Scheme = "tetradic"
	SplitComplementary Scheme = "split-complementary"
	Warm               Scheme = "warm"
	Cool               Scheme = "cool"
	Neutral            Scheme = "neutral"
)

// Entry describes a scheme with a short explanation and an example swatch.
type Entry struct {
	Scheme      Scheme   `json:"scheme"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Swatch      []string `json:"swatch"`
}

var entries = []Entry{
	{Scheme: Analogous, Title: "Analogous Colors", Description: "Colors that are next to each other on the color wheel. They create serene and comfortable designs.", Swatch: []string{"#4F8EF7", "#4FF7D3", "#4FF77A"}},
	{Scheme: Complementary, Title: "Complementary Colors", Description: "Colors opposite each other on the color wheel. They create vibrant and high-contrast designs.", Swatch: []string{"#A259F7", "#F7A259"}},
	{Scheme: Triadic, Title: "Triadic Colors", Description: "Three colors evenly spaced on the color wheel. They offer strong visual contrast while maintaining harmony.", Swatch: []string{"#4FF77A", "#F7D24F", "#4F8EF7"}},
	{Scheme: Monochromatic, Title: "Monochromatic", Description: "Different shades, tints, and tones of a single color. Creates a cohesive and elegant look.", Swatch: []string{"#FFCCCC", "#FF6666", "#CC0000"}},
	{Scheme: Tetradic, Title: "Tetradic (Double Complementary)", Description: "Two complementary color pairs. Offers plenty of possibilities for color variation.", Swatch: []string{"#F7D24F", "#4F8EF7", "#A259F7", "#4FF77A"}},
	{Scheme: SplitComplementary, Title: "Split-Complementary", Description: "A base color and two colors adjacent to its complement. High contrast with less tension than complementary.", Swatch: []string{"#FFA259", "#4F8EF7", "#A259F7"}},
	{Scheme: Warm, Title: "Warm Colors", Description: "Colors from red through yellow. They evoke warmth and energy.", Swatch: []string{"#FF6666", "#FFA259", "#F7D24F"}},
	{Scheme: Cool, Title: "Cool Colors", Description: "Colors from blue through green. They evoke calm and relaxation.", Swatch: []string{"#4F8EF7", "#4FF7D3", "#4FF77A"}},
	{Scheme: Neutral, Title: "Neutral Colors", Description: "Grays, whites, blacks, and browns. Useful for backgrounds and balancing vibrant palettes.", Swatch: []string{"#F5F5F5", "#B0B0B0", "#333333"}},
}

// All returns every scheme in catalog order.
func All() []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Swatch = append([]string(nil), e.Swatch...)
		out[i] = e
	}
	return out
}

// Get looks a scheme up by id or by title, case-insensitively.
func Get(name string) (Entry, bool) {
	s, err := ParseScheme(name)
	if err != nil {
		return Entry{}, false
	}
	for _, e := range entries {
		if e.Scheme == s {
			e.Swatch = append([]string(nil), e.Swatch...)
			return e, true
		}
	}
	return Entry{}, false
}

// ParseScheme accepts a scheme id such as "split-complementary" or a title
// such as "Warm Colors".
func ParseScheme(name string) (Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range entries {
		if n == string(e.Scheme) || n == strings.ToLower(e.Title) {
			return e.Scheme, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Schemes returns the scheme ids in catalog order.
func Schemes() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = string(e.Scheme)
	}
	return out
}

// Hue offsets, in degrees, cycled through for the wheel schemes.
var offsets = map[Scheme][]float64{
	Complementary:      {0, 180},
	Triadic:            {0, 120, 240},
	Tetradic:           {0, 90, 180, 270},
	SplitComplementary: {0, 150, 210},
}

// arc is the part of the wheel a temperature scheme keeps its hues in.
type arc struct {
	centre, radius float64
}

var (
	warmArc = arc{centre: 30, radius: 30}
	coolArc = arc{centre: 180, radius: 60}
)

const (
	analogousStep = 30.0
	lightnessStep = 18.0
)

// Generate derives n colours for scheme from base. The first colour keeps the
// base hue, except for the warm and cool schemes which spread their hues over
// a fixed arc of the wheel and start from the hue nearest the base. Wheel
// schemes that need more colours than they have hues repeat the cycle with
// lighter or darker shades.
func Generate(scheme Scheme, base string, n int) ([]string, error) {
	if !colour.ValidHex(base) {
		return nil, fmt.Errorf("%w: %q", colour.ErrInvalidHex, base)
	}
	if n <= 0 {
		return []string{}, nil
	}
	hsl := colour.ParseHex(base).HSL()

	out := make([]string, n)
	switch scheme {
	case Complementary, Triadic, Tetradic, SplitComplementary:
		cycle := offsets[scheme]
		for i := range out {
			tier := i / len(cycle)
			out[i] = hex(colour.HSL{H: hsl.H + cycle[i%len(cycle)], S: hsl.S, L: shade(hsl.L, tier)})
		}
	case Analogous:
		mid := float64(n-1) / 2
		for i := range out {
			out[i] = hex(colour.HSL{H: hsl.H + (float64(i)-mid)*analogousStep, S: hsl.S, L: hsl.L})
		}
	case Monochromatic:
		for i, l := range spread(85, 20, n) {
			out[i] = hex(colour.HSL{H: hsl.H, S: hsl.S, L: l})
		}
	case Warm, Cool:
		a := warmArc
		if scheme == Cool {
			a = coolArc
		}
		hues := a.hues(n)
		first := nearest(hues, hsl.H)
		for i := range out {
			out[i] = hex(colour.HSL{H: hues[(first+i)%n], S: math.Max(hsl.S, 50), L: hsl.L})
		}
	case Neutral:
		s := math.Min(hsl.S, 10)
		for i, l := range spread(96, 20, n) {
			out[i] = hex(colour.HSL{H: hsl.H, S: s, L: l})
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	return out, nil
}

// hues returns n hues evenly spread across the arc in wheel order.
func (a arc) hues(n int) []float64 {
	return spread(a.centre-a.radius, a.centre+a.radius, n)
}

// nearest returns the index of the hue closest to h on the wheel.
func nearest(hues []float64, h float64) int {
	best := 0
	for i, hue := range hues {
		if colour.HueDistance(wrap(hue), wrap(h)) < colour.HueDistance(wrap(hues[best]), wrap(h)) {
			best = i
		}
	}
	return best
}

// shade lightens dark colours and darkens light ones, tier steps at a time.
func shade(l float64, tier int) float64 {
	if tier == 0 {
		return l
	}
	d := float64(tier) * lightnessStep
	if l > 50 {
		return math.Max(l-d, 5)
	}
	return math.Min(l+d, 95)
}

// spread returns n values evenly spaced from first to last.
func spread(first, last float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = (first + last) / 2
		return out
	}
	for i := range out {
		out[i] = first + (last-first)*float64(i)/float64(n-1)
	}
	return out
}

func wrap(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func hex(hsl colour.HSL) string {
	hsl.H = wrap(hsl.H)
	return colour.HSLToRGB(hsl).Hex()
}
