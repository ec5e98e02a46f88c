package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"skychart/internal/api"
	"skychart/internal/api/handler/v1handler"
	"skychart/internal/chart"
	"skychart/internal/config"
	"skychart/internal/worker"
	"skychart/pkg/ephemeris"
	"skychart/pkg/logger"
	"skychart/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// openEphemeris opens an instrumented session on the configured provider.
func openEphemeris(ctx context.Context, cfg *config.Config, meter metric.Meter) (*ephemeris.Session, func()) {
	client, err := getEphemeris(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create ephemeris client", zap.Error(err))
	}
	instrumented, err := ephemeris.Instrument(client, meter)
	if err != nil {
		logger.Fatal(ctx, "could not instrument ephemeris client", zap.Error(err))
	}
	session := ephemeris.Open(instrumented)

	return session, func() {
		logger.Info(ctx, "closing ephemeris session...")
		if err := session.Close(); err != nil {
			logger.Warn(ctx, "could not close ephemeris session", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			session, closeSession := openEphemeris(ctx, cfg, metrics.Meter(mp))
			defer closeSession()

			charts := chart.New(strg, session, chart.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, charts, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:          v1handler.Deps{Charts: charts},
				MeterProvider: mp,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
