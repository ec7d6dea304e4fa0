package cmd

import (
	"venue-manager/core/database"
	"venue-manager/feature/rooms/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the database tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(true)
		if err != nil {
			return err
		}
		if err := database.Migrate(rt.db, models.All()...); err != nil {
			return err
		}
		rt.log.Info("Database schema is up to date", zap.String("driver", rt.cfg.Database.Driver))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
