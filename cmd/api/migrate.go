package main

import (
	"github.com/spf13/cobra"

	"kitchen-planner-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.SafeAutoMigrate(db, logger); err != nil {
			return err
		}
		logger.Info("Database migrations completed")
		return nil
	},
}
