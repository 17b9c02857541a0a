package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettecraft/internal/api"
	"github.com/jmylchreest/palettecraft/internal/cli"
	"github.com/jmylchreest/palettecraft/internal/colour"
	"github.com/jmylchreest/palettecraft/internal/export"
	"github.com/jmylchreest/palettecraft/internal/harmony"
	"github.com/jmylchreest/palettecraft/internal/mood"
	"github.com/jmylchreest/palettecraft/internal/palette"
	"github.com/jmylchreest/palettecraft/internal/store"
)

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"CONFIG", "COUNT", "SERVER", "LOG_LEVEL", "STORE", "DB", "ADDR", "LOG_JSON"} {
		t.Setenv("PALETTECRAFT_"+key, "")
	}

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func paletteLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestGenerateCommand(t *testing.T) {
	t.Run("SeededIsReproducible", func(t *testing.T) {
		first, _, err := execute(t, "generate", "--seed", "42")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		second, _, err := execute(t, "generate", "--seed", "42")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if first != second {
			t.Errorf("seeded output differs:\n%s\n%s", first, second)
		}
		if got := len(paletteLines(first)); got != palette.DefaultSize {
			t.Errorf("got %d colours, want %d:\n%s", got, palette.DefaultSize, first)
		}
	})

	t.Run("Count", func(t *testing.T) {
		out, _, err := execute(t, "generate", "--count", "3")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if got := len(paletteLines(out)); got != 3 {
			t.Errorf("got %d colours, want 3", got)
		}
	})

	t.Run("InvalidCount", func(t *testing.T) {
		_, _, err := execute(t, "generate", "--count", "0")
		if err == nil || !strings.Contains(err.Error(), "count must be between") {
			t.Errorf("expected count error, got %v", err)
		}
	})

	t.Run("LockedSlotSurvives", func(t *testing.T) {
		out, _, err := execute(t, "generate", "#111111", "#222222", "#333333", "--lock", "1", "--seed", "7", "--json")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		var got palette.PaletteJSON
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if got.Count != 3 {
			t.Fatalf("count = %d, want 3", got.Count)
		}
		if got.Colors[0].Hex != "#111111" || !got.Colors[0].Locked {
			t.Errorf("slot 1 = %+v, want locked #111111", got.Colors[0])
		}
		if got.Colors[1].Locked {
			t.Error("slot 2 should not be locked")
		}
	})

	t.Run("LockOutOfRange", func(t *testing.T) {
		_, _, err := execute(t, "generate", "--lock", "9")
		if !errors.Is(err, palette.ErrSlotOutOfRange) {
			t.Errorf("expected ErrSlotOutOfRange, got %v", err)
		}
	})

	t.Run("InvalidHex", func(t *testing.T) {
		_, _, err := execute(t, "generate", "#12345G")
		if !errors.Is(err, colour.ErrInvalidHex) {
			t.Errorf("expected ErrInvalidHex, got %v", err)
		}
	})

	t.Run("Mood", func(t *testing.T) {
		out, _, err := execute(t, "generate", "--mood", "ocean", "--json")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		var got palette.PaletteJSON
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		want, _ := mood.Get("ocean")
		for i, c := range got.Colors {
			if !strings.EqualFold(c.Hex, want.Colors[i]) {
				t.Errorf("slot %d = %s, want %s", i+1, c.Hex, want.Colors[i])
			}
		}
	})

	t.Run("UnknownMoodFallsBack", func(t *testing.T) {
		_, stderr, err := execute(t, "generate", "--mood", "qqqq")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if !strings.Contains(stderr, `No mood matched "qqqq"`) {
			t.Errorf("expected fallback notice, got %q", stderr)
		}
	})
}

func TestGenerateExport(t *testing.T) {
	dir := t.TempDir()

	t.Run("JSONToStdout", func(t *testing.T) {
		out, _, err := execute(t, "generate", "#FF6B35", "#FFD23F", "--export", "json")
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		var doc export.Document
		if err := json.Unmarshal([]byte(out), &doc); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if doc.Name != export.DefaultName || doc.Format != "hex" || len(doc.Colors) != 2 {
			t.Errorf("unexpected document: %+v", doc)
		}
	})

	t.Run("PNGFromExtension", func(t *testing.T) {
		path := filepath.Join(dir, "swatches", "ocean.png")
		if _, _, err := execute(t, "generate", "--mood", "ocean", "--output", path); err != nil {
			t.Fatalf("export failed: %v", err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("PNG not written: %v", err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("invalid PNG: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != export.DefaultSwatchWidth*palette.DefaultSize || b.Dy() != export.DefaultSwatchHeight {
			t.Errorf("PNG size = %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("SCSS", func(t *testing.T) {
		path := filepath.Join(dir, "palette.scss")
		if _, _, err := execute(t, "generate", "#000000", "#FFFFFF", "--export", "scss", "--output", path); err != nil {
			t.Fatalf("export failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{"$color-1: #000000;", "$color-2: #FFFFFF;"} {
			if !strings.Contains(string(data), want) {
				t.Errorf("SCSS missing %q:\n%s", want, data)
			}
		}
	})

	t.Run("PNGNeedsOutput", func(t *testing.T) {
		if _, _, err := execute(t, "generate", "--export", "png"); err == nil {
			t.Error("expected error for PNG to stdout")
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, _, err := execute(t, "generate", "--export", "gif")
		if !errors.Is(err, export.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})
}

func TestContrastCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "black on white",
			args: []string{"contrast", "#FFFFFF", "#000000"},
			want: []string{"Contrast ratio: 21.00:1", "Grade: AAA"},
		},
		{
			name: "identical colours",
			args: []string{"contrast", "#777777", "#777777"},
			want: []string{"Contrast ratio: 1.00:1", "Grade: F"},
		},
		{
			name: "suggest",
			args: []string{"contrast", "#000000", "--suggest", "--palette", "#FFD23F,#111111"},
			want: []string{"Readable text colours on #000000:", "#FFD23F", "#FFFFFF"},
		},
		{name: "missing foreground", args: []string{"contrast", "#000000"}, wantErr: true},
		{name: "invalid colour", args: []string{"contrast", "black", "#FFFFFF"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestAuditCommand(t *testing.T) {
	out, _, err := execute(t, "audit", "#FFFFFF", "#000000")
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	for _, want := range []string{"On White", "On Black", "Alternative", "#D7D7D7", "#282828"} {
		if !strings.Contains(out, want) {
			t.Errorf("audit output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "audit", "#FFFFFF", "--json")
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	var reports []colour.AccessibilityReport
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(reports) != 1 || reports[0].BlackGrade != colour.GradeAAA || reports[0].WhiteGrade != colour.GradeF {
		t.Errorf("unexpected report: %+v", reports)
	}
}

func TestSimulateCommand(t *testing.T) {
	out, _, err := execute(t, "simulate", "Protanopia", "#FF0000")
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	want := colour.Simulate("#FF0000", colour.Protanopia)
	if !strings.Contains(out, "protanopia") || !strings.Contains(out, want) {
		t.Errorf("simulate output missing header or %s:\n%s", want, out)
	}

	out, _, err = execute(t, "simulate", "all", "#00FF00")
	if err != nil {
		t.Fatalf("simulate all failed: %v", err)
	}
	header := paletteLines(out)[0]
	for _, d := range colour.Deficiencies() {
		if !strings.Contains(header, string(d.Type)) {
			t.Errorf("header %q missing %s", header, d.Type)
		}
	}

	_, _, err = execute(t, "simulate", "achromatopsia", "#00FF00")
	if !errors.Is(err, colour.ErrUnknownDeficiency) {
		t.Errorf("expected ErrUnknownDeficiency, got %v", err)
	}
}

func TestNameCommand(t *testing.T) {
	out, _, err := execute(t, "name", "#ff0000", "#3A7BD5")
	if err != nil {
		t.Fatalf("name failed: %v", err)
	}
	for _, hex := range []string{"#FF0000", "#3A7BD5"} {
		if !strings.Contains(out, hex+"  "+colour.Name(hex)) {
			t.Errorf("output missing name of %s:\n%s", hex, out)
		}
	}
}

func TestMoodsCommand(t *testing.T) {
	out, _, err := execute(t, "moods")
	if err != nil {
		t.Fatalf("moods failed: %v", err)
	}
	if got := len(paletteLines(out)) - 2; got < len(mood.All()) {
		t.Errorf("listed %d rows, want at least %d", got, len(mood.All()))
	}

	out, _, err = execute(t, "moods", "zen")
	if err != nil {
		t.Fatalf("moods failed: %v", err)
	}
	if !strings.Contains(out, "minimal") || strings.Contains(out, "sunset") {
		t.Errorf("search for zen should only list minimal:\n%s", out)
	}

	out, _, err = execute(t, "moods", "depths")
	if err != nil {
		t.Fatalf("moods failed: %v", err)
	}
	if !strings.Contains(out, "Ocean Depths") {
		t.Errorf("search should match display names:\n%s", out)
	}

	for _, query := range []string{"qqq", "brown1"} {
		out, _, err = execute(t, "moods", query)
		if err != nil {
			t.Fatalf("moods failed: %v", err)
		}
		if !strings.Contains(out, "No moods found") {
			t.Errorf("moods %s: expected empty notice, got %q", query, out)
		}
	}

	out, _, err = execute(t, "moods", "--help")
	if err != nil {
		t.Fatalf("moods --help failed: %v", err)
	}
	if !strings.Contains(out, "display name or\nkeywords") {
		t.Errorf("help should describe name and keyword matching:\n%s", out)
	}

	out, _, err = execute(t, "moods", "--category", "seasons", "--json")
	if err != nil {
		t.Fatalf("moods failed: %v", err)
	}
	var entries []mood.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(entries) != len(mood.ByCategory("Seasons")) {
		t.Errorf("got %d seasonal moods, want %d", len(entries), len(mood.ByCategory("Seasons")))
	}
}

func TestMoodCommand(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "ocean", want: "Matched mood"},
		{query: "dark red", want: "Matched colour family"},
		{query: "nonexistent-zzz", want: `No mood matched "nonexistent-zzz", using sunset`},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			out, _, err := execute(t, "mood", tt.query)
			if err != nil {
				t.Fatalf("mood failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}

	out, _, err := execute(t, "mood", "ocean", "--json")
	if err != nil {
		t.Fatalf("mood failed: %v", err)
	}
	var res mood.Resolution
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !res.Matched || res.Source != mood.SourceID || res.MoodID != "ocean" {
		t.Errorf("unexpected resolution: %+v", res)
	}
}

func TestHarmonyCommand(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		out, _, err := execute(t, "harmony")
		if err != nil {
			t.Fatalf("harmony failed: %v", err)
		}
		for _, want := range []string{"Scheme", "split-complementary", "Warm Colors", "#F5F5F5"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("FromBase", func(t *testing.T) {
		out, _, err := execute(t, "harmony", "triadic", "#ff0000", "--count", "3")
		if err != nil {
			t.Fatalf("harmony failed: %v", err)
		}
		lines := paletteLines(out)
		if len(lines) != 4 || lines[0] != "Triadic Colors from #FF0000" {
			t.Fatalf("unexpected output:\n%s", out)
		}
		for i, want := range []string{"#FF0000", "#00FF00", "#0000FF"} {
			if !strings.Contains(lines[i+1], want) {
				t.Errorf("slot %d = %q, want %s", i+1, lines[i+1], want)
			}
		}
	})

	t.Run("SchemeTitle", func(t *testing.T) {
		out, _, err := execute(t, "harmony", "Complementary Colors", "#FF0000", "--count", "2")
		if err != nil {
			t.Fatalf("harmony failed: %v", err)
		}
		if !strings.Contains(out, "#00FFFF") {
			t.Errorf("output missing the complement:\n%s", out)
		}
	})

	t.Run("SeededIsReproducible", func(t *testing.T) {
		first, _, err := execute(t, "harmony", "analogous", "--seed", "7", "--count", "4")
		if err != nil {
			t.Fatalf("harmony failed: %v", err)
		}
		second, _, err := execute(t, "harmony", "analogous", "--seed", "7", "--count", "4")
		if err != nil {
			t.Fatalf("harmony failed: %v", err)
		}
		if first != second {
			t.Errorf("seeded output differs:\n%s\n%s", first, second)
		}
		if got := len(paletteLines(first)); got != 5 {
			t.Errorf("got %d lines, want a title and 4 colours:\n%s", got, first)
		}
	})

	t.Run("LockedBase", func(t *testing.T) {
		out, _, err := execute(t, "harmony", "complementary", "#FF0000", "#111111", "--lock", "1")
		if err != nil {
			t.Fatalf("harmony failed: %v", err)
		}
		lines := paletteLines(out)
		if len(lines) != 3 {
			t.Fatalf("unexpected output:\n%s", out)
		}
		if !strings.Contains(lines[1], "#FF0000") || !strings.HasSuffix(lines[1], "[locked]") {
			t.Errorf("locked slot = %q", lines[1])
		}
		if !strings.Contains(lines[2], "#00FFFF") {
			t.Errorf("second slot = %q, want #00FFFF", lines[2])
		}
	})

	t.Run("Swatch", func(t *testing.T) {
		out, _, err := execute(t, "harmony", "warm", "--swatch")
		if err != nil {
			t.Fatalf("harmony failed: %v", err)
		}
		if !strings.HasPrefix(out, "Warm Colors example\n") || !strings.Contains(out, "#FF6666") {
			t.Errorf("unexpected output:\n%s", out)
		}
		if _, _, err := execute(t, "harmony", "warm", "--swatch", "#FF0000"); err == nil {
			t.Error("expected error for --swatch with colours")
		}
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := execute(t, "harmony", "complementary", "#FF0000", "--count", "2", "--json")
		if err != nil {
			t.Fatalf("harmony failed: %v", err)
		}
		var got struct {
			Scheme string `json:"scheme"`
			Base   string `json:"base"`
			Count  int    `json:"count"`
			Colors []struct {
				Hex string `json:"hex"`
			} `json:"colors"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, out)
		}
		if got.Scheme != "complementary" || got.Base != "#FF0000" || got.Count != 2 || got.Colors[1].Hex != "#00FFFF" {
			t.Errorf("unexpected JSON: %+v", got)
		}
	})

	t.Run("UnknownScheme", func(t *testing.T) {
		_, _, err := execute(t, "harmony", "rainbow", "#FF0000")
		if !errors.Is(err, harmony.ErrUnknownScheme) {
			t.Errorf("error = %v, want ErrUnknownScheme", err)
		}
	})
}

func TestGradientCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "linear",
			args: []string{"gradient", "#ff0000", "#0000FF"},
			want: "background: linear-gradient(to right, #FF0000 0%, #0000FF 100%);",
		},
		{
			name: "direction",
			args: []string{"gradient", "#FF0000", "#0000FF", "--direction", "to bottom right"},
			want: "linear-gradient(to bottom right,",
		},
		{
			name: "radial with stops",
			args: []string{"gradient", "#FF0000", "#0000FF", "--type", "radial", "--stops", "10,90"},
			want: "radial-gradient(circle, #FF0000 10%, #0000FF 90%)",
		},
		{name: "stops mismatch", args: []string{"gradient", "#FF0000", "#0000FF", "--stops", "10"}, wantErr: true},
		{name: "bad direction", args: []string{"gradient", "#FF0000", "--direction", "sideways"}, wantErr: true},
		{name: "bad type", args: []string{"gradient", "#FF0000", "--type", "conic"}, wantErr: true},
		{name: "png with presets", args: []string{"gradient", "#FF0000", "#0000FF", "--presets", "--png", "presets.png"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}

	t.Run("presets", func(t *testing.T) {
		out, _, err := execute(t, "gradient", "#FF6B35", "#FFD23F", "--presets")
		if err != nil {
			t.Fatalf("gradient failed: %v", err)
		}
		if got := len(paletteLines(out)); got != 5 {
			t.Errorf("got %d presets, want 5:\n%s", got, out)
		}
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gradient.png")
		if _, _, err := execute(t, "gradient", "#FF6B35", "#FFD23F", "--png", path, "--width", "100", "--height", "20"); err != nil {
			t.Fatalf("gradient failed: %v", err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		cfg, err := png.DecodeConfig(f)
		if err != nil {
			t.Fatalf("invalid PNG: %v", err)
		}
		if cfg.Width != 100 || cfg.Height != 20 {
			t.Errorf("PNG size = %dx%d, want 100x20", cfg.Width, cfg.Height)
		}
	})
}

func TestShareCommands(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(store.NewMemoryStore(), hclog.NewNullLogger(), 0)))
	defer srv.Close()

	out, _, err := execute(t, "share", "create", "--server", srv.URL, "--name", "Sunset", "#FF6B35", "#F7931E")
	if err != nil {
		t.Fatalf("share create failed: %v", err)
	}
	shareID := strings.TrimSpace(out)
	if len(shareID) != store.ShareIDLength {
		t.Fatalf("share id = %q, want %d characters", shareID, store.ShareIDLength)
	}

	out, _, err = execute(t, "share", "get", "--server", srv.URL, shareID)
	if err != nil {
		t.Fatalf("share get failed: %v", err)
	}
	for _, want := range []string{"Sunset (shared", "#FF6B35", "#F7931E"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := execute(t, "share", "get", "--server", srv.URL, "missing"); err == nil {
		t.Error("expected error for unknown share id")
	}
	if _, _, err := execute(t, "share", "create", "--server", srv.URL, "#FF6B35"); err == nil {
		t.Error("expected error without --name")
	}
	if _, _, err := execute(t, "share", "get", "--server", "ftp://example.com", shareID); err == nil {
		t.Error("expected error for non-http server URL")
	}

	t.Run("QRCode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "share-qr.png")
		out, _, err := execute(t, "share", "create", "--server", srv.URL, "--name", "Sunset", "#FF6B35", "#F7931E", "--qr", path, "--styled")
		if err != nil {
			t.Fatalf("share create failed: %v", err)
		}
		if id := strings.TrimSpace(out); len(id) != store.ShareIDLength {
			t.Errorf("share id = %q", id)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("invalid PNG: %v", err)
		}
		if b := img.Bounds(); b.Dx() != export.DefaultQRSize || b.Dy() != export.DefaultQRSize {
			t.Errorf("QR size = %v, want %dx%d", b, export.DefaultQRSize, export.DefaultQRSize)
		}
		r, g, b, _ := img.At(0, 0).RGBA()
		if r>>8 != 0xF7 || g>>8 != 0x93 || b>>8 != 0x1E {
			t.Errorf("styled background = %02X%02X%02X, want the second palette colour", r>>8, g>>8, b>>8)
		}
	})

	t.Run("StyledNeedsQR", func(t *testing.T) {
		if _, _, err := execute(t, "share", "create", "--server", srv.URL, "--name", "Sunset", "#FF6B35", "--styled"); err == nil {
			t.Error("expected error for --styled without --qr")
		}
	})
}

func TestGlobalFlags(t *testing.T) {
	t.Run("Version", func(t *testing.T) {
		out, _, err := execute(t, "version")
		if err != nil {
			t.Fatalf("version failed: %v", err)
		}
		if !strings.HasPrefix(out, "palettecraft version ") {
			t.Errorf("unexpected version output %q", out)
		}
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud", "version")
		if err == nil || !strings.Contains(err.Error(), "invalid log level") {
			t.Errorf("expected log level error, got %v", err)
		}
	})

	t.Run("ConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("generate:\n  count: 3\n  preview: false\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		out, _, err := execute(t, "--config", path, "generate")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if got := len(paletteLines(out)); got != 3 {
			t.Errorf("got %d colours, want 3 from config", got)
		}
	})

	t.Run("MissingConfigFile", func(t *testing.T) {
		if _, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version"); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
