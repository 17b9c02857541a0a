// Package cli provides the command-line interface for palettecraft.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecraft/internal/colour"
	"github.com/jmylchreest/palettecraft/internal/config"
	"github.com/jmylchreest/palettecraft/internal/logging"
	"github.com/jmylchreest/palettecraft/internal/version"
)

// rootOptions carries the global flags and the state built from them before
// any subcommand runs.
type rootOptions struct {
	verbose    bool
	configPath string
	logLevel   string

	cfg    *config.Config
	logger hclog.Logger
}

// NewRootCmd builds the palettecraft command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "palettecraft",
		Short: "A colour palette workshop for the terminal",
		Long: `palettecraft generates, inspects and shares colour palettes.

Generate random or mood-based palettes, check them against WCAG contrast
grades, preview them through colour-blindness simulations, build CSS
gradients and export the result as JSON, PNG, SCSS or CSS variables.
Palettes can be shared through a small HTTP API served by 'palettecraft serve'.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $PALETTECRAFT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(opts),
		newContrastCmd(),
		newAuditCmd(),
		newSimulateCmd(),
		newNameCmd(),
		newMoodsCmd(),
		newMoodCmd(opts),
		newHarmonyCmd(opts),
		newGradientCmd(opts),
		newServeCmd(opts),
		newShareCmd(opts),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger.
func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.logLevel != "" {
		if !logging.ValidLevel(o.logLevel) {
			return fmt.Errorf("invalid log level %q", o.logLevel)
		}
		cfg.Log.Level = o.logLevel
	}

	o.cfg = cfg
	o.logger = logging.New(logging.Options{
		Level:   cfg.Log.Level,
		JSON:    cfg.Log.JSON,
		Verbose: o.verbose,
		Output:  cmd.ErrOrStderr(),
	})
	o.logger.Debug("configuration loaded", "sources", cfg.LoadedFrom)

	colour.DisableColourOutput = !ansiEnabled(cmd.OutOrStdout())
	return nil
}

// ansiEnabled reports whether w is a terminal that can render ANSI colour.
func ansiEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
