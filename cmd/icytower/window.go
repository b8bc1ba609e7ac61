package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/icy-tower/internal/games/icy"
	"github.com/vovakirdan/icy-tower/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a climb in a desktop window drawn at world resolution.

Controls are the same as in the terminal; Q closes the window.

Examples:
  icytower window
  icytower window --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	game := icy.New()
	store := openStore()
	sink := openSink()
	defer closeStore(store)
	defer sink.Close()

	logger.Debug("opening window", "fps", flagFPS, "seed", flagSeed)
	// Screen size is unused by the window host.
	return window.Run(game, store, sink, runtimeConfig(0, 0))
}
