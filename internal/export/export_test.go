package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/jmylchreest/palettecraft/internal/gradient"
)

var testTime = time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.UTC)

func TestJSON(t *testing.T) {
	data, err := JSON("", []string{"#FF6B35", "#004E89"}, testTime)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("JSON() produced invalid JSON: %v", err)
	}
	if doc.Name != DefaultName {
		t.Errorf("name = %q, want %q", doc.Name, DefaultName)
	}
	if doc.Created != "2024-05-06T07:08:09.123Z" {
		t.Errorf("created = %q", doc.Created)
	}
	if doc.Format != "hex" || len(doc.Colors) != 2 || doc.Colors[1] != "#004E89" {
		t.Errorf("document = %+v", doc)
	}
	if !strings.Contains(string(data), "\n  \"colors\"") {
		t.Errorf("JSON() is not indented: %s", data)
	}
}

func TestJSONEmptyColorsIsArray(t *testing.T) {
	data, err := JSON("x", nil, testTime)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"colors": []`) {
		t.Errorf("JSON(nil) = %s, want an empty array", data)
	}
}

func TestSCSS(t *testing.T) {
	var buf bytes.Buffer
	colors := []string{"#111111", "#222222", "#333333"}
	if err := SCSS(&buf, colors, testTime); err != nil {
		t.Fatalf("SCSS() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"// ColorCraft Palette\n",
		"// Generated on 2024-05-06 07:08:09\n\n",
		"$color-1: #111111;\n$color-2: #222222;\n$color-3: #333333;\n\n// Usage example:",
		"//   background-color: $color-1;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SCSS() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "$color-4") {
		t.Error("SCSS() declared more variables than colours")
	}
}

func TestCSSVariables(t *testing.T) {
	var buf bytes.Buffer
	if err := CSSVariables(&buf, []string{"#111111", "#222222"}); err != nil {
		t.Fatalf("CSSVariables() error = %v", err)
	}
	want := "/* ColorCraft Palette */\n:root {\n  --color-1: #111111;\n  --color-2: #222222;\n}\n"
	if buf.String() != want {
		t.Errorf("CSSVariables() = %q, want %q", buf.String(), want)
	}
}

func TestPNGDimensions(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		opts  PNGOptions
		wantW int
		wantH int
	}{
		{name: "defaults", n: 5, wantW: 1000, wantH: 200},
		{name: "single", n: 1, wantW: 200, wantH: 200},
		{name: "custom", n: 3, opts: PNGOptions{SwatchWidth: 10, SwatchHeight: 20, Labels: true}, wantW: 30, wantH: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := make([]string, tt.n)
			for i := range colors {
				colors[i] = "#336699"
			}

			var buf bytes.Buffer
			if err := PNG(&buf, colors, tt.opts); err != nil {
				t.Fatalf("PNG() error = %v", err)
			}
			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSwatchesFillColours(t *testing.T) {
	img, err := Swatches([]string{"#FF0000", "#00FF00"}, PNGOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(10, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("first swatch pixel = %+v", got)
	}
	if got := img.RGBAAt(390, 10); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("second swatch pixel = %+v", got)
	}
}

func TestSwatchesLabelsDrawInk(t *testing.T) {
	img, err := Swatches([]string{"#000000"}, PNGOptions{Labels: true})
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for y := 150; y < 200 && !found; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).R > 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no label pixels drawn on a black swatch")
	}
}

func TestPNGEmpty(t *testing.T) {
	if err := PNG(&bytes.Buffer{}, nil, PNGOptions{}); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("PNG(nil) error = %v, want ErrEmptyPalette", err)
	}
}

func TestGradientPNG(t *testing.T) {
	var buf bytes.Buffer
	cfg := gradient.Config{Type: gradient.Linear, Colors: []string{"#FF0000", "#0000FF"}}
	if err := GradientPNG(&buf, cfg, 0, 0); err != nil {
		t.Fatalf("GradientPNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != DefaultGradientWidth || b.Dy() != DefaultGradientHeight {
		t.Errorf("bounds = %v", b)
	}
}

func TestWrite(t *testing.T) {
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, f, []string{"#123456"}, Options{Now: testTime}); err != nil {
				t.Fatalf("Write(%s) error = %v", f, err)
			}
			if buf.Len() == 0 {
				t.Errorf("Write(%s) wrote nothing", f)
			}
		})
	}

	if err := Write(&bytes.Buffer{}, Format("gif"), nil, Options{}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write(gif) error = %v, want ErrUnknownFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(" SCSS "); err != nil || f != FormatSCSS {
		t.Errorf("ParseFormat(SCSS) = %q, %v", f, err)
	}
	if _, err := ParseFormat("pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(pdf) error = %v", err)
	}
	if FormatPNG.Extension() != ".png" {
		t.Errorf("Extension() = %q", FormatPNG.Extension())
	}
}
