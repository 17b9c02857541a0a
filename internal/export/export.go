// Package export writes palettes as JSON documents, PNG swatch strips and stylesheets.
package export

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"
)

// DefaultName is the palette name used when none is given.
const DefaultName = "ColorCraft Palette"

// ErrUnknownFormat is returned for an export format that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatSCSS Format = "scss"
	FormatCSS  Format = "css"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatPNG, FormatSCSS, FormatCSS}
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("export").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.tmpl"))

// isoMillis matches JavaScript's Date.toISOString output.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Document is the JSON export format.
type Document struct {
	Name    string   `json:"name"`
	Colors  []string `json:"colors"`
	Created string   `json:"created"`
	Format  string   `json:"format"`
}

// JSON renders the palette as an indented JSON document.
func JSON(name string, colors []string, now time.Time) ([]byte, error) {
	if name == "" {
		name = DefaultName
	}
	if colors == nil {
		colors = []string{}
	}
	doc := Document{
		Name:    name,
		Colors:  colors,
		Created: now.UTC().Format(isoMillis),
		Format:  "hex",
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}
	return data, nil
}

type stylesheet struct {
	Name      string
	Generated string
	Colors    []string
}

func render(w io.Writer, tmpl string, data stylesheet) error {
	if err := templates.ExecuteTemplate(w, tmpl, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl, err)
	}
	return nil
}

// SCSS writes one $color-N variable per colour, numbered from 1.
func SCSS(w io.Writer, colors []string, now time.Time) error {
	return render(w, "palette.scss.tmpl", stylesheet{
		Name:      DefaultName,
		Generated: now.Format(time.DateTime),
		Colors:    colors,
	})
}

// CSSVariables writes a :root block with one --color-N custom property per colour.
func CSSVariables(w io.Writer, colors []string) error {
	return render(w, "palette.css.tmpl", stylesheet{
		Name:   DefaultName,
		Colors: colors,
	})
}

// Options controls Write.
type Options struct {
	Name string
	Now  time.Time
	PNG  PNGOptions
}

// Write exports colors to w in the given format.
func Write(w io.Writer, format Format, colors []string, opts Options) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	switch format {
	case FormatJSON:
		data, err := JSON(opts.Name, colors, now)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatPNG:
		return PNG(w, colors, opts.PNG)
	case FormatSCSS:
		return SCSS(w, colors, now)
	case FormatCSS:
		return CSSVariables(w, colors)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
