package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/icy-tower/internal/audio"
	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/core"
	"github.com/vovakirdan/icy-tower/internal/games/icy"
	"github.com/vovakirdan/icy-tower/internal/platform/tui"
	"github.com/vovakirdan/icy-tower/internal/storage"
)

var flagNoAudio bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a climb in the terminal.

Controls:
  Left/Right, A/D   - Move
  Space/Up/W        - Jump
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  icytower play
  icytower play --seed 42 --no-audio
  icytower play --config ./my-icy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
	windowCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := icy.New()
	store := openStore()
	sink := openSink()

	runErr := tui.Run(game, store, sink, runtimeConfig(width, height))

	sink.Close()
	closeStore(store)

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// runtimeConfig builds the host config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the leaderboard. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("scores database open", "path", flagDBPath)
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}

// openSink opens the audio device. Play continues silently without one.
func openSink() *audio.Sink {
	if flagNoAudio {
		return nil
	}

	cfg, err := config.LoadIcy(flagConfig)
	if err != nil {
		cfg = config.DefaultIcyConfig()
	}

	sink := audio.NewSink(cfg.Audio)
	if err := sink.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}
	return sink
}
