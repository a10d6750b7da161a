package commands

import (
	"fmt"
	"os"

	"github.com/mytheresa/go-shop/config"
	"github.com/mytheresa/go-shop/database"
	"github.com/mytheresa/go-shop/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Global flags
	envFile  string
	logLevel string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Shop catalog schema tooling",
	Long: `Tooling around the shop catalog schema: apply migrations, inspect the
named route table and resolve the canonical path of stored records.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level, overrides LOG_LEVEL")
}

// setup loads configuration, builds the logger and connects to the store.
func setup() (config.Config, *zap.Logger, *gorm.DB, error) {
	cfg := config.Load(envFile)
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return cfg, nil, nil, err
	}
	log = log.With(zap.String("app", cfg.AppName))

	db, err := database.Open(cfg.DB, log)
	if err != nil {
		return cfg, log, nil, err
	}
	return cfg, log, db, nil
}
