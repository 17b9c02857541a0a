// Package mood holds the curated mood palettes and resolves free-text queries to them.
package mood

import (
	"math/rand/v2"
	"strings"
)

// Entry is a curated palette keyed by mood.
type Entry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Colors   []string `json:"colors"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category"`
}

// Resolution is the outcome of resolving a query against the catalog.
type Resolution struct {
	Colors  []string `json:"colors"`
	Matched bool     `json:"matched"`
	Source  Source   `json:"source"`
	MoodID  string   `json:"moodId,omitempty"`
}

// Source records which rule produced a Resolution.
type Source string

const (
	SourceID      Source = "id"
	SourceKeyword Source = "keyword"
	SourceFamily  Source = "family"
	SourceDefault Source = "default"
)

// DefaultID is the mood used when nothing else matches.
const DefaultID = "sunset"

var entries = []Entry{
	{ID: "sunset", Name: "Sunset Dreams", Colors: []string{"#FF6B35", "#F7931E", "#FFD23F", "#F8BBD0", "#E57373"}, Keywords: []string{"sunset", "warm", "evening", "golden", "romantic"}, Category: "Nature"},
	{ID: "ocean", Name: "Ocean Depths", Colors: []string{"#006064", "#0097A7", "#00BCD4", "#4FC3F7", "#81D4FA"}, Keywords: []string{"ocean", "water", "calm", "blue", "peaceful"}, Category: "Nature"},
	{ID: "forest", Name: "Forest Whisper", Colors: []string{"#1B5E20", "#2E7D32", "#388E3C", "#66BB6A", "#A5D6A7"}, Keywords: []string{"forest", "nature", "green", "fresh", "natural"}, Category: "Nature"},
	{ID: "vintage", Name: "Vintage Charm", Colors: []string{"#8D6E63", "#A1887F", "#BCAAA4", "#D7CCC8", "#EFEBE9"}, Keywords: []string{"vintage", "retro", "old", "brown", "classic"}, Category: "Classic"},
	{ID: "neon", Name: "Neon Nights", Colors: []string{"#E91E63", "#9C27B0", "#3F51B5", "#00BCD4", "#4CAF50"}, Keywords: []string{"neon", "bright", "electric", "cyberpunk", "vibrant"}, Category: "Trendy"},
	{ID: "pastel", Name: "Pastel Softness", Colors: []string{"#F8BBD0", "#E1BEE7", "#C5CAE9", "#BBDEFB", "#C8E6C9"}, Keywords: []string{"pastel", "soft", "gentle", "light", "delicate"}, Category: "Trendy"},
	{ID: "tropical", Name: "Tropical Paradise", Colors: []string{"#FF5722", "#FF9800", "#FFEB3B", "#4CAF50", "#00BCD4"}, Keywords: []string{"tropical", "summer", "bright", "paradise", "vacation"}, Category: "Nature"},
	{ID: "monochrome", Name: "Monochrome Elegance", Colors: []string{"#000000", "#424242", "#757575", "#BDBDBD", "#FFFFFF"}, Keywords: []string{"black", "white", "gray", "minimal", "elegant"}, Category: "Classic"},
	{ID: "autumn", Name: "Autumn Leaves", Colors: []string{"#D32F2F", "#FF5722", "#FF9800", "#FFC107", "#8BC34A"}, Keywords: []string{"autumn", "fall", "leaves", "warm", "cozy"}, Category: "Seasons"},
	{ID: "cyberpunk", Name: "Cyberpunk Future", Colors: []string{"#E91E63", "#9C27B0", "#673AB7", "#3F51B5", "#00BCD4"}, Keywords: []string{"cyberpunk", "future", "tech", "purple", "neon"}, Category: "Trendy"},
	{ID: "cozy", Name: "Cozy Blanket", Colors: []string{"#A0522D", "#FFDAB9", "#FFF8DC", "#B22222", "#8B4513"}, Keywords: []string{"cozy", "warm", "blanket", "snug", "comfort"}, Category: "Feelings"},
	{ID: "energetic", Name: "Energetic Burst", Colors: []string{"#FF1744", "#FF9100", "#FFD600", "#00E676", "#2979FF"}, Keywords: []string{"energetic", "burst", "active", "vivid", "dynamic"}, Category: "Feelings"},
	{ID: "minimal", Name: "Minimal Zen", Colors: []string{"#FFFFFF", "#F5F5F5", "#BDBDBD", "#757575", "#212121"}, Keywords: []string{"minimal", "zen", "simple", "clean", "modern"}, Category: "Classic"},
	{ID: "royal", Name: "Royal Majesty", Colors: []string{"#512DA8", "#9575CD", "#FFD700", "#C0C0C0", "#212121"}, Keywords: []string{"royal", "majesty", "luxury", "gold", "purple"}, Category: "Classic"},
	{ID: "earthy", Name: "Earthy Roots", Colors: []string{"#6D4C41", "#A1887F", "#D7CCC8", "#8D6E63", "#4E342E"}, Keywords: []string{"earthy", "roots", "brown", "natural", "organic"}, Category: "Nature"},
	{ID: "ice", Name: "Icy Chill", Colors: []string{"#E0F7FA", "#B3E5FC", "#81D4FA", "#0288D1", "#01579B"}, Keywords: []string{"ice", "chill", "cold", "winter", "frost"}, Category: "Seasons"},
	{ID: "space", Name: "Space Odyssey", Colors: []string{"#212121", "#512DA8", "#1976D2", "#00B8D4", "#B2EBF2"}, Keywords: []string{"space", "odyssey", "galaxy", "star", "cosmos"}, Category: "Trendy"},
	{ID: "spring", Name: "Spring Bloom", Colors: []string{"#AED581", "#FFEB3B", "#FFB300", "#FF8A65", "#BA68C8"}, Keywords: []string{"spring", "bloom", "fresh", "flowers", "renewal"}, Category: "Seasons"},
	{ID: "rainy", Name: "Rainy Day", Colors: []string{"#90A4AE", "#B0BEC5", "#78909C", "#607D8B", "#263238"}, Keywords: []string{"rainy", "rain", "cloud", "wet", "storm"}, Category: "Seasons"},
	{ID: "luxury", Name: "Luxury Gold", Colors: []string{"#FFD700", "#C0C0C0", "#B8860B", "#8B8000", "#FFF8DC"}, Keywords: []string{"luxury", "gold", "rich", "elegant", "wealth"}, Category: "Classic"},
	{ID: "playful", Name: "Playful Fun", Colors: []string{"#FFEB3B", "#FF4081", "#536DFE", "#00E676", "#FF9100"}, Keywords: []string{"playful", "fun", "joy", "happy", "bright"}, Category: "Feelings"},
	{ID: "serene", Name: "Serene Calm", Colors: []string{"#B3E5FC", "#B2DFDB", "#C8E6C9", "#FFF9C4", "#FFECB3"}, Keywords: []string{"serene", "calm", "peaceful", "quiet", "soft"}, Category: "Feelings"},
	{ID: "mystic", Name: "Mystic Night", Colors: []string{"#4A148C", "#6A1B9A", "#283593", "#1565C0", "#00838F"}, Keywords: []string{"mystic", "night", "mystery", "deep", "dream"}, Category: "Trendy"},
	{ID: "bold", Name: "Bold Statement", Colors: []string{"#D50000", "#C51162", "#AA00FF", "#304FFE", "#00B8D4"}, Keywords: []string{"bold", "statement", "loud", "vivid", "striking"}, Category: "Trendy"},
	{ID: "retro", Name: "Retro Pop", Colors: []string{"#FF5252", "#FFEB3B", "#40C4FF", "#69F0AE", "#FFD740"}, Keywords: []string{"retro", "pop", "old", "classic", "vintage"}, Category: "Classic"},
	{ID: "brown1", Name: "Cocoa Comfort", Colors: []string{"#7B3F00", "#A0522D", "#D2B48C", "#8B5C2A", "#C19A6B"}, Keywords: []string{"brown", "cocoa", "warm", "earthy", "comfort"}, Category: "Feelings"},
	{ID: "brown2", Name: "Rustic Earth", Colors: []string{"#8B4513", "#A0522D", "#CD853F", "#DEB887", "#F4A460"}, Keywords: []string{"brown", "rustic", "earth", "natural", "wood"}, Category: "Nature"},
	{ID: "brown3", Name: "Vintage Leather", Colors: []string{"#5C4033", "#8B5C2A", "#A67B5B", "#C9AE5D", "#E5C29F"}, Keywords: []string{"brown", "vintage", "leather", "classic", "retro"}, Category: "Classic"},
}

// family is a palette chosen when a query names a basic colour.
type family struct {
	name   string
	colors []string
}

// Checked in order; the first family whose name appears in the query wins.
var families = []family{
	{"red", []string{"#F44336", "#E91E63", "#FF5722", "#FF9800", "#FFEB3B"}},
	{"blue", []string{"#2196F3", "#03A9F4", "#00BCD4", "#009688", "#4CAF50"}},
	{"green", []string{"#4CAF50", "#8BC34A", "#CDDC39", "#FFEB3B", "#FFC107"}},
	{"purple", []string{"#9C27B0", "#673AB7", "#3F51B5", "#2196F3", "#03A9F4"}},
	{"orange", []string{"#FF9800", "#FF5722", "#F44336", "#E91E63", "#9C27B0"}},
	{"yellow", []string{"#FFEB3B", "#FFC107", "#FF9800", "#FF5722", "#F44336"}},
	{"pink", []string{"#E91E63", "#F8BBD0", "#FCE4EC", "#F3E5F5", "#EDE7F6"}},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(entries))
	for i, e := range entries {
		m[e.ID] = i
	}
	return m
}()

func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// clone returns a copy of e whose slices do not alias the catalog.
func clone(e Entry) Entry {
	e.Colors = append([]string(nil), e.Colors...)
	e.Keywords = append([]string(nil), e.Keywords...)
	return e
}

// Resolve maps a query to a palette. Resolution tries an exact mood id, then
// the first mood with a keyword that contains or is contained by the query,
// then a basic colour family named in the query. When nothing matches the
// default mood's colours are returned with Matched set to false.
func Resolve(query string) Resolution {
	q := normalise(query)

	if i, ok := byID[q]; ok {
		return Resolution{Colors: clone(entries[i]).Colors, Matched: true, Source: SourceID, MoodID: entries[i].ID}
	}

	if q != "" {
		for _, e := range entries {
			for _, k := range e.Keywords {
				if strings.Contains(q, k) || strings.Contains(k, q) {
					return Resolution{Colors: clone(e).Colors, Matched: true, Source: SourceKeyword, MoodID: e.ID}
				}
			}
		}

		for _, f := range families {
			if strings.Contains(q, f.name) {
				return Resolution{Colors: append([]string(nil), f.colors...), Matched: true, Source: SourceFamily}
			}
		}
	}

	return Resolution{Colors: Default().Colors, Matched: false, Source: SourceDefault, MoodID: DefaultID}
}

// Search returns the moods whose keywords or display name contain query,
// case-insensitively, in catalog order. An empty query returns every mood.
func Search(query string) []Entry {
	q := normalise(query)
	var out []Entry
	for _, e := range entries {
		if q == "" || strings.Contains(strings.ToLower(e.Name), q) || keywordContains(e.Keywords, q) {
			out = append(out, clone(e))
		}
	}
	return out
}

func keywordContains(keywords []string, q string) bool {
	for _, k := range keywords {
		if strings.Contains(k, q) {
			return true
		}
	}
	return false
}

// Get returns the mood with the given id.
func Get(id string) (Entry, bool) {
	i, ok := byID[normalise(id)]
	if !ok {
		return Entry{}, false
	}
	return clone(entries[i]), true
}

// Default returns the fallback mood.
func Default() Entry {
	e, _ := Get(DefaultID)
	return e
}

// All returns every mood in catalog order.
func All() []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = clone(e)
	}
	return out
}

// IDs returns the mood ids in catalog order.
func IDs() []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

// Categories returns the distinct categories in order of first appearance.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// ByCategory returns the moods in a category, matched case-insensitively.
func ByCategory(category string) []Entry {
	c := normalise(category)
	var out []Entry
	for _, e := range entries {
		if strings.ToLower(e.Category) == c {
			out = append(out, clone(e))
		}
	}
	return out
}

// Random picks a mood uniformly using rng.
func Random(rng *rand.Rand) Entry {
	return clone(entries[rng.IntN(len(entries))])
}
