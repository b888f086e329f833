// Package cli wires the bespokedbikes commands: serve, migrate and seed.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	intconfig "bespokedbikes/internal/config"
	"bespokedbikes/internal/utils"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configDir string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "bespokedbikes",
	Short: "BespokedBikes sales tracking API",
	Long: `BespokedBikes serves the customers, products, salespersons, sales and
discounts of a bicycle retailer over a JSON HTTP API backed by MySQL.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding config.yaml and .env (default: searched upward from the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// loadConfig reads the configuration and sets up logging.
func loadConfig() (intconfig.AppConfig, error) {
	var (
		cfg intconfig.AppConfig
		err error
	)
	if configDir != "" {
		cfg, err = intconfig.LoadFrom(configDir)
	} else {
		cfg, err = intconfig.Load()
	}
	if err != nil {
		return intconfig.AppConfig{}, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	utils.InitLogger(cfg.Logging.Level)
	return cfg, nil
}

// connect loads the configuration and opens the shared database handle.
func connect() (intconfig.AppConfig, *sql.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return intconfig.AppConfig{}, nil, err
	}
	db, err := intconfig.ConnectDB(cfg.Database)
	if err != nil {
		return intconfig.AppConfig{}, nil, err
	}
	return cfg, db, nil
}
