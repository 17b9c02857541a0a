package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmylchreest/palettecraft/internal/colour"
	"github.com/jmylchreest/palettecraft/internal/palette"
)

// previewWidth is the width of the colour block printed before each slot.
const previewWidth = 8

// parseColours validates manual hex entries and returns them normalised.
func parseColours(args []string) ([]string, error) {
	colours := make([]string, 0, len(args))
	for _, arg := range args {
		if !colour.ValidHex(arg) {
			return nil, fmt.Errorf("%w: %q (expected #RRGGBB)", colour.ErrInvalidHex, arg)
		}
		hex, err := colour.NormalizeHex(arg)
		if err != nil {
			return nil, err
		}
		colours = append(colours, hex)
	}
	return colours, nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// gradeColours tints WCAG grades from green to red.
var gradeColours = map[colour.WCAGGrade]colour.RGB{
	colour.GradeAAA: {R: 0x43, G: 0xA0, B: 0x47},
	colour.GradeAA:  {R: 0x7C, G: 0xB3, B: 0x42},
	colour.GradeA:   {R: 0xFB, G: 0xC0, B: 0x2D},
	colour.GradeF:   {R: 0xE5, G: 0x39, B: 0x35},
}

// gradeLabel pads g to width and tints it when colour output is enabled.
func gradeLabel(g colour.WCAGGrade, width int) string {
	return colour.ColourString(gradeColours[g], fmt.Sprintf("%-*s", width, g))
}

// printPalette lists every slot with its name, lock state and WCAG grades.
// With preview enabled the slot number is drawn inside a block of the colour.
func printPalette(w io.Writer, p *palette.Palette, preview bool) {
	desc := p.Describe()
	for i, c := range desc.Colors {
		lock := ""
		if c.Locked {
			lock = " [locked]"
		}
		grades := fmt.Sprintf("white %s black %s", gradeLabel(c.Grades.White, 3), gradeLabel(c.Grades.Black, 3))
		if preview {
			fmt.Fprintf(w, "%s  %s  %-24s %s%s\n",
				colour.ColourPreviewWithText(c.RGB, strconv.Itoa(i+1), previewWidth), c.Hex, c.Name, grades, lock)
			continue
		}
		fmt.Fprintf(w, "%2d  %s  %-24s %s%s\n", i+1, c.Hex, c.Name, grades, lock)
	}
}

// createOutputFile opens path for writing, creating parent directories as
// needed. A leading ~/ is expanded to the home directory.
func createOutputFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 - Output path is user-supplied
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return f, nil
}

// writeOutputFile streams the output of write into path.
func writeOutputFile(path string, write func(io.Writer) error) error {
	f, err := createOutputFile(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
