package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecraft/internal/export"
	"github.com/jmylchreest/palettecraft/internal/palette"
	httputil "github.com/jmylchreest/palettecraft/internal/util/http"
)

func newShareCmd(root *rootOptions) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share palettes through a palettecraft server",
		Long: `Store palettes on a running 'palettecraft serve' instance and fetch them
back by share id. The server defaults to the client.server config value
($PALETTECRAFT_SERVER).`,
	}
	cmd.PersistentFlags().StringVar(&server, "server", "", "share server base URL")

	newClient := func() (*httputil.ShareClient, error) {
		base := root.cfg.Client.Server
		if server != "" {
			base = server
		}
		return httputil.NewShareClient(base, root.cfg.Client.Timeout)
	}

	var (
		name   string
		asJSON bool
		qrPath string
		styled bool
	)
	createCmd := &cobra.Command{
		Use:   "create <hex>...",
		Short: "Share a palette and print its share id",
		Example: `  palettecraft share create --name Sunset '#FF6B35' '#F7931E' '#FFD23F'
  palettecraft share create --server https://palettes.example.com --name Ocean '#0077BE' '#00A8CC'
  palettecraft share create --name Forest '#2D5016' '#F5F5DC' --qr forest-qr.png --styled`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			if styled && qrPath == "" {
				return fmt.Errorf("--styled requires --qr")
			}
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			resp, err := c.Share(commandContext(cmd), name, colours)
			if err != nil {
				return err
			}
			root.logger.Debug("palette shared", "share_id", resp.ShareID, "id", resp.Palette.ID)

			if qrPath != "" {
				if err := writeShareQR(qrPath, c.ShareURL(resp.ShareID), colours, styled); err != nil {
					return err
				}
				root.logger.Info("share QR code written", "path", qrPath, "url", c.ShareURL(resp.ShareID), "styled", styled)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.ShareID)
			return nil
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "palette name (required)")
	createCmd.Flags().BoolVar(&asJSON, "json", false, "print the stored palette as JSON")
	createCmd.Flags().StringVar(&qrPath, "qr", "", "write a PNG QR code of the share link")
	createCmd.Flags().BoolVar(&styled, "styled", false, "colour the QR code with the first two palette colours")

	var getJSON bool
	getCmd := &cobra.Command{
		Use:     "get <share-id>",
		Short:   "Fetch a shared palette",
		Example: `  palettecraft share get V1StGXR8_Z`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			p, err := c.Get(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if getJSON {
				return writeJSON(out, p)
			}
			fmt.Fprintf(out, "%s (shared %s)\n", p.Name, p.CreatedAt.Format("2006-01-02 15:04"))
			printPalette(out, palette.New(p.Colors), false)
			return nil
		},
	}
	getCmd.Flags().BoolVar(&getJSON, "json", false, "print the palette as JSON")

	cmd.AddCommand(createCmd, getCmd)
	return cmd
}

// writeShareQR renders link as a QR code into path. Styled codes use the
// first palette colour for the modules and the second for the background.
func writeShareQR(path, link string, colours []string, styled bool) error {
	opts := export.QROptions{}
	if styled {
		opts = export.StyledQROptions(colours)
	}
	if err := writeOutputFile(path, func(w io.Writer) error {
		return export.QRCode(w, link, opts)
	}); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}
