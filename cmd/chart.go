package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"skychart/internal/chart"
	"skychart/internal/config"
	"skychart/internal/report"
	"skychart/pkg/ephemeris"
	"skychart/pkg/logger"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// chartCommand fetches positions for one or more instants and prints their
// zodiac placements, without touching the database.
func chartCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [instant...]",
		Short: "Prints the zodiac placement of every body at the given instants (default now)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			frameName, _ := cmd.Flags().GetString("frame")
			formatName, _ := cmd.Flags().GetString("format")

			format, err := report.ParseFormat(formatName)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if frameName == "" {
				frameName = cfg.Charts.DefaultFrame
			}
			frame, err := ephemeris.ParseFrame(frameName)
			if err != nil {
				return err //nolint: wrapcheck
			}

			instants := make([]time.Time, 0, len(args))
			for _, a := range args {
				at, err := chart.ParseInstant(a)
				if err != nil {
					return err //nolint: wrapcheck
				}
				instants = append(instants, at)
			}
			if len(instants) == 0 {
				instants = append(instants, time.Now().UTC().Truncate(time.Second))
			}

			session, closeSession := openEphemeris(ctx, cfg, noop.NewMeterProvider().Meter(""))
			defer closeSession()

			entries, err := computeEntries(ctx, session, frame, instants, cfg.Report.Concurrency)
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), format, entries) //nolint: wrapcheck
		},
	}

	cmd.Flags().String("frame", "", "Coordinate frame: geocentric or heliocentric (default from config)")
	cmd.Flags().StringP("format", "o", "table", "Output format: table, json or yaml")

	return cmd
}

// computeEntries fetches every instant concurrently, at most limit at a time,
// and returns the entries in the order of instants.
func computeEntries(ctx context.Context,
	client ephemeris.Client,
	frame ephemeris.Frame,
	instants []time.Time,
	limit int) ([]report.Entry, error) {
	entries := make([]report.Entry, len(instants))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, at := range instants {
		g.Go(func() error {
			batch, _, err := client.Positions(gctx, ephemeris.Query{
				At:     at,
				Frame:  frame,
				Bodies: ephemeris.DefaultBodies(),
			})
			if err != nil {
				return fmt.Errorf("could not fetch positions for %s: %w", at.Format(time.RFC3339), err)
			}

			result := chart.Build(batch)
			if len(result.Skipped) > 0 {
				logger.Debug(gctx, "some bodies were skipped",
					zap.Time("at", at),
					zap.Int("skipped", len(result.Skipped)))
			}
			entries[i] = report.Entry{At: at, Frame: string(frame), Result: result}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return entries, nil
}
