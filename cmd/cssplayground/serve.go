package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cssplayground/internal/server"
)

type serveOptions struct {
	addr            string
	shutdownTimeout time.Duration
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the health-check server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return server.New(server.Options{
				Addr:            opts.addr,
				ShutdownTimeout: opts.shutdownTimeout,
				Logger:          log,
			}).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", server.DefaultAddr, "Address to listen on")
	cmd.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", server.DefaultShutdownTimeout, "How long to wait for in-flight requests on shutdown")

	return cmd
}
