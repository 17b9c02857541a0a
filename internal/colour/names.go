package colour

import (
	"strings"
)

// namedColours maps uppercase hex values to well-known names.
// Some names repeat (Sky Blue, Violet) because distinct shades share them.
var namedColours = map[string]string{
	// Primaries and extremes.
	"#FF0000": "Pure Red",
	"#00FF00": "Pure Green",
	"#0000FF": "Pure Blue",
	"#FFFF00": "Pure Yellow",
	"#FF00FF": "Pure Magenta",
	"#00FFFF": "Pure Cyan",
	"#FFFFFF": "Pure White",
	"#000000": "Pure Black",

	// Reds.
	"#FF6B6B": "Coral Red",
	"#DC143C": "Crimson",
	"#B22222": "Fire Brick",
	"#8B0000": "Dark Red",
	"#FA8072": "Salmon",
	"#E9967A": "Dark Salmon",
	"#CD5C5C": "Indian Red",

	// Blues.
	"#4ECDC4": "Turquoise",
	"#45B7D1": "Sky Blue",
	"#1E90FF": "Dodger Blue",
	"#0000CD": "Medium Blue",
	"#000080": "Navy Blue",
	"#4169E1": "Royal Blue",
	"#6495ED": "Cornflower Blue",
	"#87CEEB": "Sky Blue",

	// Greens.
	"#90EE90": "Light Green",
	"#32CD32": "Lime Green",
	"#00FF7F": "Spring Green",
	"#00FA9A": "Medium Spring Green",
	"#98FB98": "Pale Green",
	"#8FBC8F": "Dark Sea Green",
	"#228B22": "Forest Green",

	// Yellows.
	"#F7DC6F": "Honey Gold",
	"#FFD700": "Gold",
	"#FFFFE0": "Light Yellow",
	"#FFFACD": "Lemon Chiffon",
	"#F0E68C": "Khaki",
	"#BDB76B": "Dark Khaki",
	"#DAA520": "Goldenrod",

	// Purples.
	"#BB8FCE": "Lavender",
	"#9370DB": "Medium Purple",
	"#8A2BE2": "Blue Violet",
	"#9400D3": "Violet",
	"#9932CC": "Dark Orchid",
	"#BA55D3": "Medium Orchid",
	"#DDA0DD": "Plum",
	"#EE82EE": "Violet",

	// Oranges.
	"#FFA500": "Orange",
	"#FF8C00": "Dark Orange",
	"#FF7F50": "Coral",
	"#FF6347": "Tomato",
	"#FF4500": "Orange Red",
	"#FFA07A": "Light Salmon",
	"#FFDAB9": "Peach Puff",
	"#FFE4B5": "Moccasin",

	// Pinks.
	"#FFC0CB": "Pink",
	"#FFB6C1": "Light Pink",
	"#FF69B4": "Hot Pink",
	"#FF1493": "Deep Pink",
	"#C71585": "Medium Violet Red",
	"#DB7093": "Pale Violet Red",

	// Browns.
	"#8B4513": "Saddle Brown",
	"#A0522D": "Sienna",
	"#D2691E": "Chocolate",
	"#CD853F": "Peru",
	"#DEB887": "Burlywood",
	"#F4A460": "Sandy Brown",
	"#D2B48C": "Tan",
	"#BC8F8F": "Rosy Brown",

	// Greys.
	"#808080": "Gray",
	"#A9A9A9": "Dark Gray",
	"#C0C0C0": "Silver",
	"#D3D3D3": "Light Gray",
	"#DCDCDC": "Gainsboro",
	"#F5F5F5": "White Smoke",
	"#696969": "Dim Gray",
	"#2F4F4F": "Dark Slate Gray",
}

// hueBucket is the upper (exclusive) hue bound for a base name.
type hueBucket struct {
	below float64
	name  string
}

// Red wraps around 0, so it is matched separately before the buckets.
var hueBuckets = []hueBucket{
	{60, "Orange"},
	{90, "Yellow"},
	{150, "Green"},
	{210, "Cyan"},
	{270, "Blue"},
	{330, "Purple"},
}

// Name returns a human-readable name for a hex colour. Well-known colours
// are looked up exactly; anything else is named from its HSL components.
func Name(hex string) string {
	if name, ok := namedColours[strings.ToUpper(hex)]; ok {
		return name
	}
	return describeHSL(ToHSL(ParseHex(hex)))
}

// describeHSL composes saturation prefix, lightness prefix and hue base name.
func describeHSL(hsl HSL) string {
	parts := make([]string, 0, 3)

	switch {
	case hsl.S < 20:
		parts = append(parts, "Gray")
	case hsl.S < 40:
		parts = append(parts, "Muted")
	case hsl.S > 80:
		parts = append(parts, "Vibrant")
	}

	switch {
	case hsl.L < 20:
		parts = append(parts, "Dark")
	case hsl.L < 40:
		parts = append(parts, "Deep")
	case hsl.L > 80:
		parts = append(parts, "Light")
	case hsl.L > 60:
		parts = append(parts, "Pale")
	}

	parts = append(parts, hueName(hsl.H))

	return strings.TrimSpace(strings.Join(parts, " "))
}

func hueName(h float64) string {
	if h < 30 || h >= 330 {
		return "Red"
	}
	for _, b := range hueBuckets {
		if h < b.below {
			return b.name
		}
	}
	return "Red"
}
