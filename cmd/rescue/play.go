package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
	"github.com/vovakirdan/vampire-rescue/internal/platform/tui"
	"github.com/vovakirdan/vampire-rescue/internal/registry"
	"github.com/vovakirdan/vampire-rescue/internal/storage"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  WASD/Arrows    - Move
  Click/Space    - Shoot toward the mouse pointer
  Enter          - Start
  P/Esc          - Pause
  R              - Restart
  Ctrl+S         - Save a screenshot to ~/.rescue/screenshots
  Q/Ctrl+C       - Quit

Terminals report no key releases, so a movement key counts as held for
--hold-ticks ticks after its last press or repeat.

Difficulty options:
  easy   - Fewer vampires, more power-ups, 300 HP
  normal - Default configuration
  hard   - More vampires, fewer power-ups, 150 HP

Examples:
  rescue play
  rescue play --difficulty easy
  rescue play --seed 1234 --fps 60
  rescue play --config ./my-rescue.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a movement key stays held after a key event")
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := createGame(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logConfigSource(logger)
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logSessionStart(logger, store, "tui", game.ID())
	err = tui.Run(game, store, cfg, tui.Options{
		Player:    localUser(),
		HoldTicks: flagHoldTicks,
		Logger:    logger,
	})
	logger.Info("session ended", "frontend", "tui")
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// createGame instantiates the named game, or the default one.
func createGame(args []string) (registry.Game, error) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q; run 'rescue list' to see available games", gameID)
	}
	return registry.Create(gameID)
}

// openStore opens the runs database. The game works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// logConfigSource reports which configuration the game will load.
func logConfigSource(logger *log.Logger) {
	if _, src, err := config.Load(flagConfig); err != nil {
		logger.Warn("config could not be loaded, using defaults", "path", flagConfig, "error", err)
	} else {
		logger.Debug("config loaded", "source", src, "difficulty", flagDifficulty)
	}
}

// logSessionStart reports the session and the best run so far.
func logSessionStart(logger *log.Logger, store *storage.Store, frontend, gameID string) {
	best := 0
	if store != nil {
		if hs, err := store.HighScore(gameID); err == nil {
			best = hs
		}
	}
	logger.Info("session started", "frontend", frontend, "game", gameID, "fps", flagFPS, "best", best)
}

// localUser returns the login name recorded with local runs.
func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
