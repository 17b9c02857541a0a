package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettecraft/internal/api"
	"github.com/jmylchreest/palettecraft/internal/store"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr    string
		backend string
		dbPath  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette sharing API",
		Long: `Run the HTTP API used to share palettes.

Routes:
  GET    /health
  POST   /api/palettes/share          {"name": "...", "colors": ["#RRGGBB", ...]}
  GET    /api/palettes/share/{shareId}
  GET    /api/palettes
  DELETE /api/palettes/{id}
  GET    /api/moods?q=query
  GET    /api/moods/resolve?q=query

Palettes are kept in memory unless --store sqlite is given.

Examples:
  palettecraft serve
  palettecraft serve --addr :9000 --store sqlite --db ./palettes.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := root.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("store") {
				cfg.Store.Backend = backend
			}
			if cmd.Flags().Changed("db") {
				cfg.Store.Path = dbPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			st, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer func() {
				if err := st.Close(); err != nil {
					root.logger.Warn("failed to close store", "error", err)
				}
			}()
			root.logger.Info("store opened", "backend", cfg.Store.Backend, "path", storePathForLog(cfg.Store.Backend, cfg.Store.Path))

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := api.NewHTTPServer(api.Config{
				Addr:            cfg.Server.Addr,
				ReadTimeout:     cfg.Server.ReadTimeout,
				WriteTimeout:    cfg.Server.WriteTimeout,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
				MaxBodyBytes:    cfg.Server.MaxBodyBytes,
			}, st, root.logger.Named("api"))

			return api.ListenAndServe(ctx, server, root.logger.Named("api"), cfg.Server.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&backend, "store", store.BackendMemory, "palette store (memory, sqlite)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")

	return cmd
}

func storePathForLog(backend, path string) string {
	if backend == store.BackendSQLite {
		return path
	}
	return "-"
}

// commandContext returns cmd's context, or Background when run outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
