package main

import (
	"github.com/fekuna/omnipos-scm-service/internal/database"
	"github.com/fekuna/omnipos-scm-service/internal/simulation"
	"github.com/spf13/cobra"
)

// scm migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create any missing tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, appLogger, db, err := boot()
		if err != nil {
			return err
		}
		defer db.Close()
		defer appLogger.Sync()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		appLogger.Info("Schema is up to date")
		return nil
	},
}

// scm reset
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe every table and reseed the demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, appLogger, db, err := boot()
		if err != nil {
			return err
		}
		defer db.Close()
		defer appLogger.Sync()

		if err := database.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		return simulation.NewService(db, appLogger).Reset(cmd.Context())
	},
}
