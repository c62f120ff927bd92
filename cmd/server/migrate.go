package main

import (
	"fmt"

	"fyyur/internal/database"
	"fyyur/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		defer pool.Close()

		applied, err := database.Migrate(cmd.Context(), pool)
		if err != nil {
			return err
		}

		logger.WithComponent("cli").Info("migrations applied", zap.Strings("applied", applied))
		fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", len(applied))
		return nil
	},
}
