// icytower is a vertical platform climber for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	icytower play            - Play in the terminal
//	icytower window          - Play in a desktop window
//	icytower scores          - Show the leaderboard
//	icytower serve           - Start SSH server for remote play
//	icytower config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.icytower/scores.db)
//	--config <path>     - Load a custom YAML config
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/games/icy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "icytower",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "icytower",
	Short: "Icy Tower - climb a tower of collapsing platforms",
	Long: `Icy Tower is a vertical platform climber. Jump from ledge to ledge,
keep moving before platforms collapse, and climb as high as you can.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  icytower play
  icytower play --seed 42
  icytower window --config ./my-icy.yaml
  icytower serve --ssh :2222
  icytower scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.icytower/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagConfig != "" {
		// Fail early instead of silently falling back to defaults in Reset.
		if _, err := config.LoadIcy(flagConfig); err != nil {
			return err
		}
	}
	icy.SetConfigPath(flagConfig)
	return nil
}
