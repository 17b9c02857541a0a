package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecraft/internal/colour"
	"github.com/jmylchreest/palettecraft/internal/mood"
	"github.com/jmylchreest/palettecraft/internal/palette"
)

func newMoodsCmd() *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "moods [query]",
		Short: "List or search the mood catalog",
		Long: fmt.Sprintf(`List the mood palettes. With a query, only moods whose display name or
keywords contain it are shown.

Categories: %s

Examples:
  palettecraft moods
  palettecraft moods gold
  palettecraft moods --category Seasons`, strings.Join(mood.Categories(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []mood.Entry
			switch {
			case len(args) == 1:
				entries = mood.Search(args[0])
			case category != "":
				entries = mood.ByCategory(category)
			default:
				entries = mood.All()
			}
			if len(args) == 1 && category != "" {
				filtered := entries[:0]
				for _, e := range entries {
					if strings.EqualFold(e.Category, category) {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if entries == nil {
					entries = []mood.Entry{}
				}
				return writeJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No moods found")
				return nil
			}

			table := NewTable([]string{"ID", "Name", "Category", "Colours", "Keywords"})
			table.SetColumnMaxWidth(4, 40)
			for _, e := range entries {
				table.AddRow([]string{e.ID, e.Name, e.Category, strings.Join(e.Colors, " "), strings.Join(e.Keywords, ", ")})
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show moods in this category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the moods as JSON")
	return cmd
}

func newMoodCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "mood <query>",
		Short: "Resolve a mood, keyword or colour family to a palette",
		Long: `Resolve free text to a palette. The query is tried as a mood id, then
against mood keywords, then as a basic colour family (red, blue, green,
purple, orange, yellow, pink). When nothing matches the sunset palette is
returned and the fallback is reported.

Examples:
  palettecraft mood ocean
  palettecraft mood "winter wonderland"
  palettecraft mood "dark red"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := mood.Resolve(args[0])
			root.logger.Debug("mood resolved", "query", args[0], "source", res.Source, "mood", res.MoodID)

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, res)
			}

			switch res.Source {
			case mood.SourceFamily:
				fmt.Fprintf(out, "Matched colour family in %q\n", args[0])
			case mood.SourceDefault:
				fmt.Fprintf(out, "No mood matched %q, using %s\n", args[0], res.MoodID)
			default:
				e, _ := mood.Get(res.MoodID)
				fmt.Fprintf(out, "Matched mood %s (%s) by %s\n", e.Name, e.ID, res.Source)
			}
			printPalette(out, palette.New(res.Colors), !colour.DisableColourOutput)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the resolution as JSON")
	return cmd
}
