package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecraft/internal/export"
	"github.com/jmylchreest/palettecraft/internal/palette"
)

// maxGenerateCount bounds --count.
const maxGenerateCount = 20

type generateOptions struct {
	mood    string
	count   int
	seed    uint64
	locks   []int
	preview bool
	asJSON  bool
	format  string
	output  string
	name    string
	labels  bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [hex...]",
		Short: "Generate a random or mood-based palette",
		Long: `Generate a colour palette and show each colour's name and WCAG grades.

Without arguments a random palette of --count colours is generated. Colours
given as arguments become the starting palette instead; slots named with
--lock keep their colour while the other slots are regenerated.

With --mood the palette comes from the mood catalog. A mood id, a keyword
such as "beach" or a colour family such as "dark red" are accepted. When
nothing matches, the sunset palette is used and a notice is printed.

Examples:
  # Five random colours
  palettecraft generate

  # Reproducible palette
  palettecraft generate --seed 42 --count 6

  # Keep the first two colours and regenerate the rest
  palettecraft generate '#1A1A2E' '#16213E' '#0F3460' '#E94560' '#F5F5F5' --lock 1 --lock 2

  # Mood palette exported as SCSS
  palettecraft generate --mood ocean --export scss --output ocean.scss

  # PNG swatches, format taken from the file extension
  palettecraft generate --mood forest --output forest.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.mood, "mood", "m", "", "mood id, keyword or colour family")
	cmd.Flags().IntVarP(&opts.count, "count", "c", palette.DefaultSize, fmt.Sprintf("number of random colours (1-%d)", maxGenerateCount))
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible palettes")
	cmd.Flags().IntSliceVarP(&opts.locks, "lock", "l", nil, "lock slot N (1-based, repeatable)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour blocks in the terminal")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the palette as JSON")
	cmd.Flags().StringVarP(&opts.format, "export", "e", "", "export format (json, png, scss, css)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "export file (default: stdout)")
	cmd.Flags().StringVar(&opts.name, "name", export.DefaultName, "palette name used in JSON exports")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw hex labels on PNG swatches")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, args []string) error {
	count := opts.count
	if !cmd.Flags().Changed("count") {
		count = root.cfg.Generate.Count
	}
	if count < 1 || count > maxGenerateCount {
		return fmt.Errorf("count must be between 1 and %d, got %d", maxGenerateCount, count)
	}

	preview := opts.preview
	if !cmd.Flags().Changed("preview") {
		preview = root.cfg.Generate.Preview
	}
	preview = preview && ansiEnabled(cmd.OutOrStdout())

	format, err := resolveExportFormat(opts.format, opts.output)
	if err != nil {
		return err
	}
	if format == export.FormatPNG && opts.output == "" {
		return fmt.Errorf("PNG export requires --output")
	}

	start, err := parseColours(args)
	if err != nil {
		return err
	}

	sessionOpts := []palette.SessionOption{palette.WithSize(count)}
	if cmd.Flags().Changed("seed") {
		sessionOpts = append(sessionOpts, palette.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed))))
	}
	if len(start) > 0 {
		sessionOpts = append(sessionOpts, palette.WithColors(start))
	}
	session := palette.NewSession(sessionOpts...)

	for _, slot := range opts.locks {
		if err := session.SetLocked(slot-1, true); err != nil {
			return fmt.Errorf("invalid --lock %d: %w", slot, err)
		}
	}

	switch {
	case opts.mood != "":
		res := session.ApplyMood(opts.mood)
		root.logger.Debug("mood resolved", "query", opts.mood, "source", res.Source, "mood", res.MoodID)
		if !res.Matched {
			fmt.Fprintf(cmd.ErrOrStderr(), "No mood matched %q, using the %s palette\n", opts.mood, res.MoodID)
		}
	case len(start) > 0 && len(opts.locks) > 0:
		session.Regenerate()
	}

	p := session.Palette()
	out := cmd.OutOrStdout()

	if format != "" {
		exportOpts := export.Options{
			Name: opts.name,
			Now:  time.Now(),
			PNG:  export.PNGOptions{Labels: opts.labels},
		}
		write := func(w io.Writer) error {
			return export.Write(w, format, p.Colors, exportOpts)
		}
		if opts.output == "" {
			return write(out)
		}
		if err := writeOutputFile(opts.output, write); err != nil {
			return fmt.Errorf("failed to export palette: %w", err)
		}
		root.logger.Info("palette exported", "format", format, "path", opts.output)
	}

	if opts.asJSON {
		return writeJSON(out, p.Describe())
	}
	printPalette(out, p, preview)
	return nil
}

// resolveExportFormat picks the export format from --export, falling back to
// the extension of --output.
func resolveExportFormat(flag, output string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if output == "" {
		return "", nil
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q, use --export", output)
	}
	return export.ParseFormat(ext)
}
