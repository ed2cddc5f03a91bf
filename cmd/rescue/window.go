package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vampire-rescue/internal/core"
	"github.com/vovakirdan/vampire-rescue/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Start playing in a desktop window rendered with Ebitengine.

Controls:
  WASD/Arrows    - Move
  Click/Space    - Shoot toward the mouse pointer
  Enter          - Start
  P/Esc          - Pause
  R              - Restart
  Q              - Quit

Examples:
  rescue window
  rescue window --width 1600 --height 900 --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) error {
	game, err := createGame(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logConfigSource(logger)
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logSessionStart(logger, store, "window", game.ID())
	err = window.Run(game, store, cfg, window.Options{
		Player: localUser(),
		Width:  flagWidth,
		Height: flagHeight,
		Logger: logger,
	})
	logger.Info("session ended", "frontend", "window")
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
