package main

import (
	"context"
	"errors"
	"go-currency-converter/convert"
	"go-currency-converter/http"
	nhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			provider := newProvider(cfg, logger, reg)

			var convertService convert.Service = convert.NewService(provider)
			convertService = convert.NewInstrumentingService(reg, convertService)
			convertService = convert.NewLoggingService(log.With(logger, "component", "convert"), convertService)

			handler := http.NewServer(convertService, reg, log.With(logger, "component", "http"), cfg.HTTP.AllowedOrigins...)
			server := &nhttp.Server{
				Addr:              cfg.HTTP.Address,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				level.Info(logger).Log("msg", "listening", "address", cfg.HTTP.Address)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				// The only fetch of the session. A failure is logged by the provider
				// and leaves conversion inert; it never stops the server.
				_, _ = provider.Load(ctx)
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				level.Info(logger).Log("msg", "shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
}
