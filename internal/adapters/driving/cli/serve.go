package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/arbeidssokere/internal/adapters/driving/web"
	"github.com/custodia-labs/arbeidssokere/internal/logger"
)

var (
	serveAddr    string
	serveOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve charts and tables over HTTP",
	Long: `Load the dataset once and serve it as a web page with selectors,
a chart and an accessible table.

Endpoints:
  /          interactive page
  /api/view  view state as JSON (?kind=&category=&year=)
  /healthz   readiness
  /metrics   Prometheus metrics

A failed load keeps the server running in the error state.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from server.addr)")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "allow-origin", nil, "origins allowed to call /api/view (default any)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = svc.ServerAddr
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	view := svc.NewView(nil)

	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	err = view.Load(loadCtx)
	cancel()
	if err != nil {
		logger.Warn("Serving in error state: %v", err)
	} else {
		logger.Info("Loaded %d records", view.State().RecordCount)
	}

	server := web.NewServer(view, web.Config{
		Addr:           addr,
		AllowedOrigins: serveOrigins,
	})
	cmd.PrintErrf("Serving on http://%s\n", server.Addr())
	return server.Run(ctx)
}
