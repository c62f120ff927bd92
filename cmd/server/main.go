package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"fyyur/config"
	"fyyur/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	envFile  string
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Fyyur venue and artist booking directory",
	Long: `Fyyur lists venues and artists, and the shows that connect them.

Without a subcommand it behaves like "server serve". Use "server migrate" to
create the schema and "server seed" to load the sample listings.`,
	SilenceUsage: true,
	RunE:         runServe,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env 不存在時直接用環境變數
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}

		if logLevel != "" {
			lv, err := zapcore.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger.SetLevel(lv)
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.WithComponent("cli").Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
