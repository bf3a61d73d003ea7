// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lincalc/calc"
	"github.com/katalvlaran/lincalc/internal/config"
	"github.com/katalvlaran/lincalc/internal/httpapi"
	"github.com/katalvlaran/lincalc/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCmd() *cobra.Command {
	var host string
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return a.serve(cmd.Context(), cfg.Server)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "Listen host (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config and $PORT)")

	return cmd
}

func (a *app) serve(ctx context.Context, cfg config.ServerConfig) error {
	reg := metrics.New(true)
	engine := calc.New(calc.WithLogger(a.log), calc.WithRecorder(reg))
	srv := httpapi.NewServer(cfg, engine,
		httpapi.WithLogger(a.log), httpapi.WithMetrics(reg), httpapi.WithVersion(version))

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.log.Info().Msg("server stopped")

	return <-errc
}
