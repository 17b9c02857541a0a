package colour

import (
	"math"
	"slices"
)

// Reference text colours used by the accessibility checks.
const (
	White = "#FFFFFF"
	Black = "#000000"
)

// alternativeStep is how far each channel moves when suggesting an alternative.
const alternativeStep = 40

// AccessibilityReport describes how readable white and black text is on a colour.
type AccessibilityReport struct {
	Index         int       `json:"index"`
	Colour        string    `json:"colour"`
	WhiteContrast float64   `json:"whiteContrast"`
	BlackContrast float64   `json:"blackContrast"`
	WhiteGrade    WCAGGrade `json:"whiteGrade"`
	BlackGrade    WCAGGrade `json:"blackGrade"`
	HasIssue      bool      `json:"hasIssue"`
	Alternative   string    `json:"alternative"`
}

// AuditPalette checks every colour against white and black text.
// A colour has an issue when neither white nor black reaches grade A.
func AuditPalette(colours []string) []AccessibilityReport {
	reports := make([]AccessibilityReport, len(colours))
	for i, c := range colours {
		white := ContrastRatio(c, White)
		black := ContrastRatio(c, Black)
		whiteGrade := Grade(white)
		blackGrade := Grade(black)

		reports[i] = AccessibilityReport{
			Index:         i,
			Colour:        c,
			WhiteContrast: roundTenth(white),
			BlackContrast: roundTenth(black),
			WhiteGrade:    whiteGrade,
			BlackGrade:    blackGrade,
			HasIssue:      whiteGrade == GradeF && blackGrade == GradeF,
			Alternative:   Alternative(c),
		}
	}
	return reports
}

// Alternative suggests a nearby colour that moves away from mid brightness:
// bright colours are darkened and dark colours lightened by a fixed step.
func Alternative(hex string) string {
	rgb := ParseHex(hex)
	delta := float64(alternativeStep)
	if PerceivedBrightness(rgb) > 128 {
		delta = -delta
	}
	return ToHex(float64(rgb.R)+delta, float64(rgb.G)+delta, float64(rgb.B)+delta)
}

// PerceivedBrightness is the YIQ brightness of a colour in [0, 255].
func PerceivedBrightness(rgb RGB) float64 {
	return (float64(rgb.R)*299 + float64(rgb.G)*587 + float64(rgb.B)*114) / 1000
}

// SuggestTextColours returns the palette colours that reach AA against bg,
// followed by white and black when they pass and are not already listed.
func SuggestTextColours(bg string, palette []string) []string {
	var suggestions []string
	for _, c := range palette {
		if ContrastRatio(bg, c) >= ThresholdAA {
			suggestions = append(suggestions, c)
		}
	}
	for _, c := range []string{White, Black} {
		if ContrastRatio(bg, c) >= ThresholdAA && !slices.Contains(suggestions, c) {
			suggestions = append(suggestions, c)
		}
	}
	return suggestions
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
