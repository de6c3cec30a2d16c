package commands

import (
	"github.com/spf13/cobra"

	"github.com/vaibhavrajebhosale/swing-digest/pkg/config"
	"github.com/vaibhavrajebhosale/swing-digest/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "digest",
	Short: "Swing-trade watchlist digest",
	Long: `Watchlist digest for the US swing-trade workflow.

Pulls the latest snapshot tables from the CDN, builds a five-section
plain-text digest, prints it, and posts it as a comment on the tracking
issue (plus optionally an assistant thread).

Usage:
  go run ./cmd/digest [command]

Examples:
  go run ./cmd/digest run
  go run ./cmd/digest print
  go run ./cmd/digest schedule --cron "0 21 * * 1-5"`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads configuration and builds the logger shared by all commands
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.New(cfg), nil
}
