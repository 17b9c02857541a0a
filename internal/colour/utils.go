package colour

import (
	"math"
)

// WCAGGrade is the accessibility grade for a contrast ratio.
type WCAGGrade string

// WCAG grades, best first.
const (
	GradeAAA WCAGGrade = "AAA"
	GradeAA  WCAGGrade = "AA"
	GradeA   WCAGGrade = "A"
	GradeF   WCAGGrade = "F"
)

// Contrast thresholds. Each boundary is inclusive.
const (
	ThresholdAAA = 7.0
	ThresholdAA  = 4.5
	ThresholdA   = 3.0
)

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two hex colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) float64 {
	return ContrastRatioRGB(ParseHex(a), ParseHex(b))
}

// ContrastRatioRGB is ContrastRatio for already parsed colours.
func ContrastRatioRGB(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Grade maps a contrast ratio onto the WCAG grade ladder.
func Grade(ratio float64) WCAGGrade {
	switch {
	case ratio >= ThresholdAAA:
		return GradeAAA
	case ratio >= ThresholdAA:
		return GradeAA
	case ratio >= ThresholdA:
		return GradeA
	default:
		return GradeF
	}
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
