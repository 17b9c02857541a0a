// Package colour provides the colour-science core: hex parsing, RGB/HSL
// conversion, WCAG luminance and contrast, colour-blindness simulation and
// colour naming.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/palettecraft/internal/security"
)

// ErrInvalidHex is returned by the strict parsing helpers when a string is not
// a 6-digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// HSL returns the colour in HSL space.
func (rgb RGB) HSL() HSL {
	return ToHSL(rgb)
}

// HSL represents a colour in HSL space.
// H is in [0, 360), S and L are percentages in [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ParseHex parses a hex colour string (#RRGGBB or RRGGBB, any case) to RGB.
// Returns black if parsing fails.
func ParseHex(hex string) RGB {
	rgb, ok := parseHex(hex)
	if !ok {
		return RGB{}
	}
	return rgb
}

// NormalizeHex validates a hex colour (leading # optional) and returns it in
// canonical uppercase #RRGGBB form.
func NormalizeHex(hex string) (string, error) {
	rgb, ok := parseHex(strings.TrimSpace(hex))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return rgb.Hex(), nil
}

// ValidHex reports whether s is a manually entered colour of the exact form
// #RRGGBB. Unlike ParseHex the leading # is required.
func ValidHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, ok := parseHex(s)
	return ok
}

// parseHex is the single hex decoder shared by every parsing entry point.
func parseHex(hex string) (RGB, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return RGB{}, false
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return RGB{}, false
		}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ToHex formats fractional channel values as #RRGGBB. Each channel is rounded
// to the nearest integer and clamped to [0, 255].
func ToHex(r, g, b float64) string {
	return FromFloat(r, g, b).Hex()
}

// FromFloat builds an RGB from fractional 0-255 channel values, rounding and
// clamping each one.
func FromFloat(r, g, b float64) RGB {
	return RGB{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return security.SafeUint8(int(math.Round(math.Max(-1, math.Min(256, v)))))
}

// ToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-100), lightness (0-100).
func ToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB colour space.
// h is hue (0-360), s and l are percentages (0-100).
func HSLToRGB(hsl HSL) RGB {
	s := hsl.S / 100
	l := hsl.L / 100

	if s == 0 {
		v := l * 255
		return FromFloat(v, v, v)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return FromFloat(
		hueToRGB(p, q, hsl.H+120)*255,
		hueToRGB(p, q, hsl.H)*255,
		hueToRGB(p, q, hsl.H-120)*255,
	)
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
