// Package palette provides palette generation and lock-aware editing sessions.
package palette

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/jmylchreest/palettecraft/internal/colour"
)

// DefaultSize is the number of slots in a generated palette.
const DefaultSize = 5

// Palette is an ordered set of colours with a lock flag per slot.
type Palette struct {
	Colors []string
	Locked []bool
}

// New creates an unlocked palette from the given colours.
func New(colors []string) *Palette {
	return &Palette{
		Colors: append([]string(nil), colors...),
		Locked: make([]bool, len(colors)),
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Get returns the colour at the specified index.
func (p *Palette) Get(index int) (string, error) {
	if index < 0 || index >= len(p.Colors) {
		return "", fmt.Errorf("%w: %d (palette has %d colors)", ErrSlotOutOfRange, index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over every slot index and colour.
func (p *Palette) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ColorJSON is a single slot in JSON output.
type ColorJSON struct {
	Hex    string       `json:"hex"`
	RGB    colour.RGB   `json:"rgb"`
	HSL    colour.HSL   `json:"hsl"`
	Name   string       `json:"name"`
	Locked bool         `json:"locked"`
	Grades ContrastPair `json:"grades"`
}

// ContrastPair holds the WCAG grades of a colour against white and black text.
type ContrastPair struct {
	White colour.WCAGGrade `json:"white"`
	Black colour.WCAGGrade `json:"black"`
}

// PaletteJSON is the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// Describe expands every slot with derived colour information.
func (p *Palette) Describe() PaletteJSON {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		rgb := colour.ParseHex(c)
		colors[i] = ColorJSON{
			Hex:    rgb.Hex(),
			RGB:    rgb,
			HSL:    rgb.HSL(),
			Name:   colour.Name(c),
			Locked: i < len(p.Locked) && p.Locked[i],
			Grades: ContrastPair{
				White: colour.Grade(colour.ContrastRatio(c, colour.White)),
				Black: colour.Grade(colour.ContrastRatio(c, colour.Black)),
			},
		}
	}
	return PaletteJSON{Count: len(colors), Colors: colors}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p.Describe(), "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colors:\n", len(p.Colors))
	for i, c := range p.Colors {
		lock := ""
		if i < len(p.Locked) && p.Locked[i] {
			lock = " [locked]"
		}
		fmt.Fprintf(&b, "  %2d: %s %s%s\n", i+1, strings.ToUpper(c), colour.Name(c), lock)
	}
	return b.String()
}
