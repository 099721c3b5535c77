package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vidpub/internal/config"
	"vidpub/internal/logutil"
	"vidpub/internal/server"
)

func newServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the publish API over HTTP",
		Long: "serve exposes GET /health and POST /publish on the configured port " +
			"(--port, the PORT environment variable, or 8080).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetVerbose(verbose)

			cfg := config.Load()
			if port > 0 {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(newProcessor(cfg), cfg.Port).ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default: PORT env or 8080)")

	return cmd
}
