package main

import (
	"github.com/spf13/cobra"

	"github.com/emsp/platform/internal/infrastructure/config"
	"github.com/emsp/platform/internal/infrastructure/db/mongo"
	"github.com/emsp/platform/pkg/logger"
)

// NewEnsureIndexesCmd creates the ensure-indexes subcommand.
func NewEnsureIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the MongoDB indexes used by the API",
		Long: `Create the unique and lookup indexes of every collection.
Existing indexes with the same keys are left untouched. serve runs the
same step on startup.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			log := logger.Init(logger.Options{
				Level:   cfg.LogLevel,
				Pretty:  cfg.IsDevelopment(),
				Service: "emsp",
				Version: version,
			})

			client, db, err := mongo.Connect(ctx, mongo.Config{
				URI:      cfg.Mongo.URI,
				Database: cfg.Mongo.Database,
				Timeout:  cfg.Mongo.Timeout,
			})
			if err != nil {
				return err
			}
			defer disconnect(client, log)

			if err := prepareDatabase(ctx, db, log); err != nil {
				return err
			}
			cmd.Println("indexes ensured on", cfg.Mongo.Database)
			return nil
		},
	}
}
