package main

import (
	"context"

	"skychart/internal/config"
	"skychart/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the chart
// and job queue tables to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.Migrate(ctx); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date")
		},
	}

	return cmd
}
