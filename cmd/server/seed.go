package main

import (
	"errors"
	"fmt"

	"fyyur/internal/database"
	"fyyur/internal/seed"
	"fyyur/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample venues, artists and shows",
	Long:  `Load the sample listings into an empty database. Nothing is written when venues already exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logger.WithComponent("cli")

		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		defer pool.Close()

		services := newServices(pool)
		res, err := seed.Run(ctx, services.Venues, services.Artists, services.Shows)
		if errors.Is(err, seed.ErrNotEmpty) {
			log.Warn("seed skipped", zap.Error(err))
			fmt.Fprintln(cmd.OutOrStdout(), "database already has venues, nothing seeded")
			return nil
		}
		if err != nil {
			return err
		}

		log.Info("seed loaded", zap.Int("venues", res.Venues), zap.Int("artists", res.Artists), zap.Int("shows", res.Shows))
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d venues, %d artists, %d shows\n", res.Venues, res.Artists, res.Shows)
		return nil
	},
}
