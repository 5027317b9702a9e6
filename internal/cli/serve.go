package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llehouerou/reel/internal/server"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve search suggestions over HTTP",
		Long: `Serve search suggestions as JSON.

  GET /search?q=<query>   returns {status, columns, rows, count}

Any other path is a bad request; POST, PUT, PATCH and DELETE are refused.`,
		Example: `  reel serve
  reel serve --addr :8484`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.ServerAddr()
			}
			st, err := openStack(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			var serverOpts []server.Option
			if cfg.Debug {
				serverOpts = append(serverOpts, server.WithRequestLog(log.Writer()))
			}
			srv := server.New(addr, st.provider, serverOpts...)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving suggestions on http://%s/search\n", addr)
			log.Printf("serving on %s", addr)
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
