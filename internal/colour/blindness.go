package colour

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownDeficiency is returned when a colour vision deficiency name is not recognised.
var ErrUnknownDeficiency = errors.New("unknown colour vision deficiency")

// Deficiency is a type of colour vision deficiency to simulate.
type Deficiency string

const (
	Normal       Deficiency = "normal"
	Protanopia   Deficiency = "protanopia"
	Deuteranopia Deficiency = "deuteranopia"
	Tritanopia   Deficiency = "tritanopia"
)

// DeficiencyInfo describes a simulation option for display.
type DeficiencyInfo struct {
	Type        Deficiency `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

var deficiencies = []DeficiencyInfo{
	{Type: Normal, Name: "Normal Vision", Description: "Standard colour vision without any deficiencies"},
	{Type: Protanopia, Name: "Protanopia", Description: "Red-blind - difficulty distinguishing red from green"},
	{Type: Deuteranopia, Name: "Deuteranopia", Description: "Green-blind - difficulty distinguishing red from green"},
	{Type: Tritanopia, Name: "Tritanopia", Description: "Blue-blind - difficulty distinguishing blue from yellow"},
}

// dichromacy mixes linear RGB; rows produce R', G', B'.
type dichromacy [3][3]float64

var matrices = map[Deficiency]dichromacy{
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
}

const simulationGamma = 2.2

// Deficiencies returns the supported simulation types in display order.
func Deficiencies() []DeficiencyInfo {
	out := make([]DeficiencyInfo, len(deficiencies))
	copy(out, deficiencies)
	return out
}

// ParseDeficiency converts a name such as "Protanopia" to a Deficiency.
func ParseDeficiency(name string) (Deficiency, error) {
	d := Deficiency(strings.ToLower(strings.TrimSpace(name)))
	if d == Normal {
		return d, nil
	}
	if _, ok := matrices[d]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDeficiency, name)
}

// Simulate returns how hex appears to a viewer with the given deficiency.
// Normal vision (and any unrecognised type) returns the input unchanged.
func Simulate(hex string, d Deficiency) string {
	m, ok := matrices[d]
	if !ok {
		return hex
	}

	rgb := ParseHex(hex)
	lin := [3]float64{
		math.Pow(float64(rgb.R)/255, simulationGamma),
		math.Pow(float64(rgb.G)/255, simulationGamma),
		math.Pow(float64(rgb.B)/255, simulationGamma),
	}

	var out [3]float64
	for row := range m {
		v := m[row][0]*lin[0] + m[row][1]*lin[1] + m[row][2]*lin[2]
		v = math.Max(0, math.Min(1, v))
		out[row] = math.Pow(v, 1/simulationGamma) * 255
	}

	return ToHex(out[0], out[1], out[2])
}

// SimulatePalette applies Simulate to every colour, preserving order.
func SimulatePalette(colours []string, d Deficiency) []string {
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = Simulate(c, d)
	}
	return out
}
