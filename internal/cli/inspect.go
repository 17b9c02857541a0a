package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecraft/internal/colour"
)

func newContrastCmd() *cobra.Command {
	var (
		suggest bool
		asJSON  bool
		palette []string
	)

	cmd := &cobra.Command{
		Use:   "contrast <background> [foreground]",
		Short: "Check the WCAG contrast between two colours",
		Long: `Print the WCAG contrast ratio and grade of a foreground colour on a background.

Grades: AAA (7:1 and above), AA (4.5:1), A (3:1), F (below 3:1).

With --suggest, list the colours that reach AA on the background: any
--palette colours that pass, then white and black.

Examples:
  palettecraft contrast '#1A1A2E' '#F5F5F5'
  palettecraft contrast '#FF6B35' --suggest --palette '#FFD23F,#2E294E'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && !suggest {
				return fmt.Errorf("a foreground colour is required unless --suggest is set")
			}
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			candidates, err := parseColours(palette)
			if err != nil {
				return err
			}

			bg := colours[0]
			result := contrastResult{Background: bg}
			if len(colours) == 2 {
				ratio := colour.ContrastRatio(bg, colours[1])
				result.Foreground = colours[1]
				result.Ratio = ratio
				result.Grade = colour.Grade(ratio)
			}
			if suggest {
				result.Suggestions = colour.SuggestTextColours(bg, candidates)
				if result.Suggestions == nil {
					result.Suggestions = []string{}
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, result)
			}
			if result.Foreground != "" {
				fmt.Fprintf(out, "Contrast ratio: %.2f:1\n", result.Ratio)
				fmt.Fprintf(out, "Grade: %s\n", gradeLabel(result.Grade, 0))
			}
			if suggest {
				if len(result.Suggestions) == 0 {
					fmt.Fprintf(out, "No text colour reaches AA on %s\n", bg)
					return nil
				}
				fmt.Fprintf(out, "Readable text colours on %s:\n", bg)
				for _, c := range result.Suggestions {
					fmt.Fprintf(out, "  %s  %.2f:1\n", c, colour.ContrastRatio(bg, c))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&suggest, "suggest", false, "suggest readable text colours for the background")
	cmd.Flags().StringSliceVar(&palette, "palette", nil, "candidate text colours for --suggest")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

type contrastResult struct {
	Background  string           `json:"background"`
	Foreground  string           `json:"foreground,omitempty"`
	Ratio       float64          `json:"ratio,omitempty"`
	Grade       colour.WCAGGrade `json:"grade,omitempty"`
	Suggestions []string         `json:"suggestions,omitempty"`
}

func newAuditCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "audit <hex>...",
		Short: "Audit a palette for text readability",
		Long: `Check every colour against white and black text and suggest an alternative
that moves away from mid brightness.

Example:
  palettecraft audit '#FF6B35' '#F7931E' '#FFD23F'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			reports := colour.AuditPalette(colours)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), reports)
			}

			table := NewTable([]string{"#", "Colour", "On White", "On Black", "Alternative", "Status"})
			for _, r := range reports {
				status := "ok"
				if r.HasIssue {
					status = "low contrast"
				}
				table.AddRow([]string{
					fmt.Sprintf("%d", r.Index+1),
					r.Colour,
					fmt.Sprintf("%.1f %s", r.WhiteContrast, r.WhiteGrade),
					fmt.Sprintf("%.1f %s", r.BlackContrast, r.BlackGrade),
					r.Alternative,
					status,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the audit as JSON")
	return cmd
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <type|all> <hex>...",
		Short: "Simulate colour vision deficiencies",
		Long:  buildSimulateHelp(),
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var types []colour.Deficiency
			if strings.EqualFold(args[0], "all") {
				for _, info := range colour.Deficiencies() {
					types = append(types, info.Type)
				}
			} else {
				d, err := colour.ParseDeficiency(args[0])
				if err != nil {
					return err
				}
				types = []colour.Deficiency{d}
			}

			colours, err := parseColours(args[1:])
			if err != nil {
				return err
			}

			headers := make([]string, 0, len(types)+1)
			headers = append(headers, "Original")
			simulated := make([][]string, len(types))
			for i, d := range types {
				headers = append(headers, string(d))
				simulated[i] = colour.SimulatePalette(colours, d)
			}

			table := NewTable(headers)
			for row, c := range colours {
				cells := []string{c}
				for i := range types {
					cells = append(cells, simulated[i][row])
				}
				table.AddRow(cells)
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
	return cmd
}

func buildSimulateHelp() string {
	var b strings.Builder
	b.WriteString("Show how colours appear with a colour vision deficiency.\n\nTypes:\n")
	for _, info := range colour.Deficiencies() {
		fmt.Fprintf(&b, "  %-13s %s\n", info.Type, info.Description)
	}
	b.WriteString(`  all           every type side by side

Example:
  palettecraft simulate deuteranopia '#FF0000' '#00FF00'`)
	return b.String()
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <hex>...",
		Short: "Name colours",
		Long: `Print a human-readable name for each colour. Exact matches use the
built-in table; other colours get a descriptive name from their hue,
saturation and lightness.

Example:
  palettecraft name '#FF0000' '#3A7BD5'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range colours {
				rgb := colour.ParseHex(c)
				if colour.DisableColourOutput {
					fmt.Fprintf(out, "%s  %s\n", c, colour.Name(c))
					continue
				}
				fmt.Fprintln(out, colour.FormatColourWithLabel(rgb, colour.Name(c), previewWidth))
			}
			return nil
		},
	}
}
