package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rackplan/internal/httpapi"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

Endpoints:
  POST /v1/layout   compute a layout for the panels in the request body
  GET  /v1/config   effective settings
  GET  /healthz     liveness probe
  GET  /debug/chart sample dataset as an interactive chart

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "settings file (YAML or TOML)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// runServe blocks until the context is canceled or the server fails.
func (c *CLI) runServe(ctx context.Context, configPath, addr string) error {
	cfg, err := c.loadConfig(configPath)
	if err != nil {
		return err
	}

	server, err := httpapi.NewServer(cfg, loggerFromContext(ctx))
	if err != nil {
		return err
	}
	return server.ListenAndServe(ctx, addr)
}
