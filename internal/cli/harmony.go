package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecraft/internal/harmony"
	"github.com/jmylchreest/palettecraft/internal/palette"
)

type harmonyOptions struct {
	count   int
	seed    uint64
	locks   []int
	swatch  bool
	preview bool
	asJSON  bool
}

// harmonyResult is the JSON shape of a generated harmony.
type harmonyResult struct {
	Scheme harmony.Scheme `json:"scheme"`
	Title  string         `json:"title"`
	Base   string         `json:"base,omitempty"`
	palette.PaletteJSON
}

func newHarmonyCmd(root *rootOptions) *cobra.Command {
	opts := &harmonyOptions{}

	cmd := &cobra.Command{
		Use:   "harmony [scheme] [hex...]",
		Short: "Build colour-theory harmony palettes",
		Long: fmt.Sprintf(`Without arguments, list the colour harmony schemes with an example swatch.

With a scheme, build a palette of --count colours from a base colour by
rotating its hue around the colour wheel. A single colour argument is the
base. Several colour arguments become the starting palette, and slots named
with --lock keep their colour; the first locked colour is then the base.
Without any colour a random base is used.

Schemes: %s

Examples:
  palettecraft harmony
  palettecraft harmony triadic '#FF6B35'
  palettecraft harmony complementary --seed 7 --count 4
  palettecraft harmony analogous '#1A1A2E' '#0F3460' '#E94560' --lock 3
  palettecraft harmony warm --swatch`, strings.Join(harmony.Schemes(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listHarmonies(cmd, opts)
			}
			return runHarmony(cmd, root, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "c", palette.DefaultSize, fmt.Sprintf("number of colours (1-%d)", maxGenerateCount))
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for the base colour")
	cmd.Flags().IntSliceVarP(&opts.locks, "lock", "l", nil, "lock slot N (1-based, repeatable)")
	cmd.Flags().BoolVar(&opts.swatch, "swatch", false, "print the scheme's example swatch instead of deriving one")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour blocks in the terminal")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return cmd
}

func listHarmonies(cmd *cobra.Command, opts *harmonyOptions) error {
	out := cmd.OutOrStdout()
	entries := harmony.All()
	if opts.asJSON {
		return writeJSON(out, entries)
	}

	table := NewTable([]string{"Scheme", "Title", "Swatch", "Description"})
	table.SetColumnMaxWidth(3, 48)
	for _, e := range entries {
		table.AddRow([]string{string(e.Scheme), e.Title, strings.Join(e.Swatch, " "), e.Description})
	}
	fmt.Fprint(out, table.Render())
	return nil
}

func runHarmony(cmd *cobra.Command, root *rootOptions, opts *harmonyOptions, args []string) error {
	entry, ok := harmony.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %q (choose from %s)", harmony.ErrUnknownScheme, args[0], strings.Join(harmony.Schemes(), ", "))
	}

	colours, err := parseColours(args[1:])
	if err != nil {
		return err
	}

	preview := opts.preview
	if !cmd.Flags().Changed("preview") {
		preview = root.cfg.Generate.Preview
	}
	preview = preview && ansiEnabled(cmd.OutOrStdout())

	result := harmonyResult{Scheme: entry.Scheme, Title: entry.Title}
	var p *palette.Palette

	if opts.swatch {
		if len(colours) > 0 || len(opts.locks) > 0 {
			return fmt.Errorf("--swatch takes no colours or locks")
		}
		p = palette.New(entry.Swatch)
	} else {
		count := opts.count
		if !cmd.Flags().Changed("count") {
			count = root.cfg.Generate.Count
		}
		if count < 1 || count > maxGenerateCount {
			return fmt.Errorf("count must be between 1 and %d, got %d", maxGenerateCount, count)
		}

		sessionOpts := []palette.SessionOption{palette.WithSize(count)}
		if cmd.Flags().Changed("seed") {
			sessionOpts = append(sessionOpts, palette.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed))))
		}
		base := ""
		switch len(colours) {
		case 0:
		case 1:
			base = colours[0]
		default:
			sessionOpts = append(sessionOpts, palette.WithColors(colours))
		}
		session := palette.NewSession(sessionOpts...)

		for _, slot := range opts.locks {
			if err := session.SetLocked(slot-1, true); err != nil {
				return fmt.Errorf("invalid --lock %d: %w", slot, err)
			}
		}

		result.Base, err = session.ApplyHarmony(entry.Scheme, base)
		if err != nil {
			return err
		}
		root.logger.Debug("harmony applied", "scheme", entry.Scheme, "base", result.Base, "count", session.Palette().Len())
		p = session.Palette()
	}

	out := cmd.OutOrStdout()
	result.PaletteJSON = p.Describe()
	if opts.asJSON {
		return writeJSON(out, result)
	}

	if result.Base != "" {
		fmt.Fprintf(out, "%s from %s\n", entry.Title, result.Base)
	} else {
		fmt.Fprintf(out, "%s example\n", entry.Title)
	}
	printPalette(out, p, preview)
	return nil
}
