// Package gradient builds CSS gradient descriptors from palette colours.
package gradient

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnknownType is returned when a gradient type is neither linear nor radial.
	ErrUnknownType = errors.New("unknown gradient type")
	// ErrUnknownDirection is returned for a direction outside the eight supported values.
	ErrUnknownDirection = errors.New("unknown gradient direction")
)

// Type is the gradient geometry.
type Type string

const (
	Linear Type = "linear"
	Radial Type = "radial"
)

// Direction is a linear gradient direction in hyphenated form, e.g. "to-bottom-right".
type Direction string

const (
	ToRight       Direction = "to-right"
	ToLeft        Direction = "to-left"
	ToBottom      Direction = "to-bottom"
	ToTop         Direction = "to-top"
	ToBottomRight Direction = "to-bottom-right"
	ToBottomLeft  Direction = "to-bottom-left"
	ToTopRight    Direction = "to-top-right"
	ToTopLeft     Direction = "to-top-left"
)

// DirectionInfo pairs a direction with a human readable label.
type DirectionInfo struct {
	Direction Direction `json:"direction"`
	Label     string    `json:"label"`
}

var directions = []DirectionInfo{
	{ToRight, "Left to Right"},
	{ToLeft, "Right to Left"},
	{ToBottom, "Top to Bottom"},
	{ToTop, "Bottom to Top"},
	{ToBottomRight, "Top-Left to Bottom-Right"},
	{ToBottomLeft, "Top-Right to Bottom-Left"},
	{ToTopRight, "Bottom-Left to Top-Right"},
	{ToTopLeft, "Bottom-Right to Top-Left"},
}

// Directions returns the supported directions in display order.
func Directions() []DirectionInfo {
	return append([]DirectionInfo(nil), directions...)
}

// ParseDirection accepts either the hyphenated or the CSS spaced form.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-"))
	for _, info := range directions {
		if info.Direction == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseType parses "linear" or "radial".
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case Linear, Radial:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Config describes a gradient. Stops are percentages parallel to Colors and
// are only honoured when both slices have the same length.
type Config struct {
	Type      Type      `json:"type"`
	Direction Direction `json:"direction,omitempty"`
	Colors    []string  `json:"colors"`
	Stops     []float64 `json:"stops,omitempty"`
}

// positions returns the stop percentage for each colour.
func (c Config) positions() []float64 {
	n := len(c.Colors)
	if len(c.Stops) == n {
		return append([]float64(nil), c.Stops...)
	}
	out := make([]float64, n)
	if n <= 1 {
		return out
	}
	for i := range out {
		out[i] = math.Round(float64(i) * 100 / float64(n-1))
	}
	return out
}

// BuildCSS renders cfg as a CSS background-image value.
func BuildCSS(cfg Config) string {
	pos := cfg.positions()
	parts := make([]string, len(cfg.Colors))
	for i, c := range cfg.Colors {
		parts[i] = c + " " + strconv.FormatFloat(pos[i], 'f', -1, 64) + "%"
	}
	stops := strings.Join(parts, ", ")

	if cfg.Type == Radial {
		return "radial-gradient(circle, " + stops + ")"
	}

	dir := cfg.Direction
	if dir == "" {
		dir = ToRight
	}
	return "linear-gradient(" + strings.ReplaceAll(string(dir), "-", " ") + ", " + stops + ")"
}

var fallback = []string{"#FF6B6B", "#4F8EF7", "#FFD93D", "#6BCB77", "#FF6F91"}

// atLeast returns unique when it has at least need colours, otherwise unique
// padded with the fallback colours and cut to size.
func atLeast(unique []string, need, size int) []string {
	if len(unique) >= need {
		return append([]string(nil), unique...)
	}
	padded := append(append([]string(nil), unique...), fallback...)
	return padded[:size]
}

// BuildPresets derives five ready-made gradients from a palette. Empty and
// duplicate colours are ignored, and fallback colours fill in when the
// palette has too few distinct entries.
func BuildPresets(colors []string) []Config {
	seen := make(map[string]bool)
	var unique []string
	for _, c := range colors {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}

	safe2 := atLeast(unique, 2, 2)
	safe3 := atLeast(unique, 3, 3)
	safeAll := atLeast(unique, 2, max(2, len(unique)))

	return []Config{
		{Type: Linear, Direction: ToRight, Colors: safe2},
		{Type: Linear, Direction: ToBottom, Colors: safe3},
		{Type: Linear, Direction: ToBottomRight, Colors: safe2},
		{Type: Radial, Colors: safe3},
		{Type: Linear, Direction: ToRight, Colors: safeAll},
	}
}
