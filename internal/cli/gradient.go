package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecraft/internal/export"
	"github.com/jmylchreest/palettecraft/internal/gradient"
)

type gradientOptions struct {
	kind      gradient.Type
	direction gradient.Direction
	stops     []float64
	presets   bool
	png       string
	width     int
	height    int
	asJSON    bool
}

func newGradientCmd(root *rootOptions) *cobra.Command {
	opts := &gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient <hex>...",
		Short: "Build CSS gradients from a palette",
		Long:  buildGradientHelp(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradient(cmd, root, opts, args)
		},
	}

	directions := make([]string, 0, len(gradient.Directions()))
	for _, d := range gradient.Directions() {
		directions = append(directions, string(d.Direction))
	}
	cmd.Flags().VarP(newParsedValue(gradient.Linear, &opts.kind, gradient.ParseType,
		[]string{string(gradient.Linear), string(gradient.Radial)}), "type", "t", "gradient type (linear, radial)")
	cmd.Flags().VarP(newParsedValue(gradient.ToRight, &opts.direction, gradient.ParseDirection, directions),
		"direction", "d", "direction of a linear gradient")
	cmd.Flags().Float64SliceVar(&opts.stops, "stops", nil, "stop positions in percent, one per colour")
	cmd.Flags().BoolVar(&opts.presets, "presets", false, "print the five preset gradients for the palette")
	cmd.Flags().StringVar(&opts.png, "png", "", "render the gradient to a PNG file (not with --presets)")
	cmd.Flags().IntVar(&opts.width, "width", export.DefaultGradientWidth, "PNG width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", export.DefaultGradientHeight, "PNG height in pixels")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print gradients as JSON")

	return cmd
}

func runGradient(cmd *cobra.Command, root *rootOptions, opts *gradientOptions, args []string) error {
	colours, err := parseColours(args)
	if err != nil {
		return err
	}

	if len(opts.stops) > 0 && len(opts.stops) != len(colours) {
		return fmt.Errorf("--stops needs one position per colour: got %d stops for %d colours", len(opts.stops), len(colours))
	}
	for _, s := range opts.stops {
		if s < 0 || s > 100 {
			return fmt.Errorf("stop %v is outside 0-100", s)
		}
	}

	if opts.presets && opts.png != "" {
		return fmt.Errorf("--png renders a single gradient and cannot be combined with --presets")
	}

	cfg := gradient.Config{Type: opts.kind, Colors: colours, Stops: opts.stops}
	if opts.kind == gradient.Linear {
		cfg.Direction = opts.direction
	}

	configs := []gradient.Config{cfg}
	if opts.presets {
		configs = gradient.BuildPresets(colours)
	}

	if opts.png != "" {
		if opts.width <= 0 || opts.height <= 0 {
			return fmt.Errorf("PNG size must be positive, got %dx%d", opts.width, opts.height)
		}
		err := writeOutputFile(opts.png, func(w io.Writer) error {
			return export.GradientPNG(w, cfg, opts.width, opts.height)
		})
		if err != nil {
			return fmt.Errorf("failed to render gradient: %w", err)
		}
		root.logger.Info("gradient rendered", "path", opts.png, "width", opts.width, "height", opts.height)
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		rendered := make([]gradientJSON, len(configs))
		for i, c := range configs {
			rendered[i] = gradientJSON{Config: c, CSS: gradient.BuildCSS(c)}
		}
		return writeJSON(out, rendered)
	}

	for _, c := range configs {
		if opts.presets {
			fmt.Fprintf(out, "%-24s ", presetLabel(c))
		}
		fmt.Fprintf(out, "background: %s;\n", gradient.BuildCSS(c))
	}
	return nil
}

type gradientJSON struct {
	gradient.Config
	CSS string `json:"css"`
}

func presetLabel(c gradient.Config) string {
	if c.Type == gradient.Radial {
		return "radial"
	}
	return "linear " + string(c.Direction)
}

func buildGradientHelp() string {
	var b strings.Builder
	b.WriteString(`Build a CSS gradient from the given colours. Stops are spread evenly
unless --stops gives one position per colour.

Directions:
`)
	for _, d := range gradient.Directions() {
		fmt.Fprintf(&b, "  %-16s %s\n", d.Direction, d.Label)
	}
	b.WriteString(`
Examples:
  palettecraft gradient '#FF6B35' '#FFD23F'
  palettecraft gradient '#0077BE' '#00A8CC' '#40E0D0' --direction to-bottom-right
  palettecraft gradient '#FF6B35' '#FFD23F' --type radial --png sun.png
  palettecraft gradient '#2D5016' '#8FBC8F' --presets`)
	return b.String()
}
