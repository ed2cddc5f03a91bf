// Package window runs a game in a desktop window using Ebitengine.
// The game draws itself through a Canvas adapter; input is polled once
// per tick and handed to the simulation as a core.InputFrame.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/vampire-rescue/internal/core"
	"github.com/vovakirdan/vampire-rescue/internal/registry"
	"github.com/vovakirdan/vampire-rescue/internal/storage"
)

// Default window size in pixels.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Options configures a window session.
type Options struct {
	Player string
	Width  int
	Height int
	// Logger receives run and storage events. Nil discards them.
	Logger *log.Logger
}

// App adapts a registry.Game to ebiten.Game.
type App struct {
	game    registry.Game
	drawer  registry.Drawer // Nil when the game only renders to a Screen
	input   inputSource
	tracker *storage.Tracker
	logger  *log.Logger
	config  core.RuntimeConfig

	screen *core.Screen // Fallback buffer for games without Draw
	state  core.GameState
	done   bool
}

// NewApp creates the window adapter and resets the game.
func NewApp(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) *App {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.PixelW, cfg.PixelH = opts.Width, opts.Height

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &App{
		game:    game,
		input:   ebitenInput{},
		tracker: storage.NewTracker(store, game.ID(), opts.Player, cfg.Seed),
		logger:  logger,
		config:  cfg,
	}
	if d, ok := game.(registry.Drawer); ok {
		a.drawer = d
	} else {
		a.screen = core.NewScreen(opts.Width/fallbackCellW, opts.Height/fallbackCellH)
	}

	game.Reset(cfg)
	return a
}

// Cell size used to render games that have no pixel drawing.
const (
	fallbackCellW = 8
	fallbackCellH = 16
)

// Update advances the game by one tick.
func (a *App) Update() error {
	frame := readInput(a.input)
	if frame.Has(core.ActionQuit) {
		a.quit()
		return ebiten.Termination
	}

	result := a.game.Step(frame)
	a.state = result.State
	a.logRun(a.tracker.Observe(a.state))
	return nil
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	canvas := NewCanvas(screen)

	if a.drawer != nil {
		a.drawer.Draw(canvas)
		return
	}

	a.screen.Clear()
	a.game.Render(a.screen)
	drawScreen(canvas, a.screen)
}

// Layout keeps one window pixel per viewport pixel and reports size changes
// to the game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.config.PixelW || outsideHeight != a.config.PixelH {
		a.config.PixelW, a.config.PixelH = outsideWidth, outsideHeight
		if r, ok := a.game.(registry.Resizer); ok {
			r.Resize(a.config)
		}
	}
	return outsideWidth, outsideHeight
}

// quit records an unfinished run, once.
func (a *App) quit() {
	if a.done {
		return
	}
	a.done = true
	a.logRun(a.tracker.Quit())
}

func (a *App) logRun(run *storage.RunRecord, err error) {
	switch {
	case err != nil:
		a.logger.Error("could not save run", "game", a.game.ID(), "error", err)
	case run != nil:
		a.logger.Info("run saved", "id", run.ID, "outcome", run.Outcome,
			"saved", run.Saved, "ticks", run.Ticks)
	}
}

// drawScreen paints a character buffer cell by cell.
func drawScreen(c *Canvas, s *core.Screen) {
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			c.Text(float64(x*fallbackCellW), float64(y*fallbackCellH), string(cell.Rune), cell.Color)
		}
	}
}

// Run opens a window and runs the game until it is closed or quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(game, store, cfg, opts)

	ebiten.SetWindowSize(app.config.PixelW, app.config.PixelH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.config.TickRate)

	err := ebiten.RunGame(app)
	// Closing the window ends the run too.
	app.quit()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
