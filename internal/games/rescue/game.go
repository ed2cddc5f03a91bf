// Package rescue implements Vampire Rescue: a top-down action game where
// the player roams a walled map, shoots vampires back to health and picks
// up power-ups while avoiding their bites.
package rescue

import (
	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
	"github.com/vovakirdan/vampire-rescue/internal/registry"
)

// Session states
const (
	StateStart    = "start"    // Title screen, waiting for the first shot or Enter
	StatePlaying  = "playing"  // Simulation running
	StatePaused   = "paused"   // Simulation frozen
	StateGameOver = "gameover" // Player died
	StateWin      = "win"      // Every enemy saved
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select none.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// loadConfig resolves the configuration from the CLI settings, falling back
// to the built-in defaults when it cannot be loaded.
func loadConfig() config.RescueConfig {
	cfg, _, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultRescueConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg
}

// Game implements the Vampire Rescue session.
type Game struct {
	world    *World
	controls Controls
	camera   Camera

	state      string
	tickCount  int
	lastEvents FrameEvents

	runtime     core.RuntimeConfig
	cfg         config.RescueConfig
	fixedConfig bool // Use cfg as given instead of loading it on Reset
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses the given configuration.
func NewWithConfig(cfg config.RescueConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rescue"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Vampire Rescue"
}

// Reset builds a fresh world and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedConfig {
		g.cfg = loadConfig()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	g.world = NewWorld(g.cfg, runtime.TickRate, runtime.Seed)
	g.world.Reset()
	g.controls = NewControls()
	g.Resize(runtime)

	g.state = StateStart
	g.tickCount = 0
	g.lastEvents = FrameEvents{}
}

// Resize adapts the viewport to a new screen size without touching the run.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	g.runtime.PixelW, g.runtime.PixelH = runtime.PixelW, runtime.PixelH

	g.camera.ViewW, g.camera.ViewH = viewportSize(g.runtime, g.cfg.Render)
	if g.world != nil {
		g.camera.Follow(g.world.Player.Box, g.cfg.Map)
	}
}

// viewportSize returns the viewport in pixels, derived from the character
// grid when no pixel size is given.
func viewportSize(rt core.RuntimeConfig, r config.RenderConfig) (float64, float64) {
	w, h := float64(rt.PixelW), float64(rt.PixelH)
	if w <= 0 {
		w = float64(rt.ScreenW) * r.CellWidth
	}
	if h <= 0 {
		h = float64(rt.ScreenH) * r.CellHeight
	}
	return w, h
}

// restart regenerates the world and starts playing straight away.
func (g *Game) restart() {
	g.world.Reset()
	g.camera.Follow(g.world.Player.Box, g.cfg.Map)
	g.controls.ResetTrigger()
	g.state = StatePlaying
	g.tickCount = 0
	g.lastEvents = FrameEvents{}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.controls.Sample(in)

	switch g.state {
	case StateStart:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.state = StatePlaying
			g.controls.ResetTrigger()
		}

	case StatePaused:
		switch {
		case in.Has(core.ActionRestart):
			g.restart()
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			g.state = StatePlaying
		}

	case StateGameOver, StateWin:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.state = StatePaused
			g.controls.ResetTrigger()
			break
		}

		g.tickCount++
		g.lastEvents = g.world.Step(&g.controls, &g.camera)

		switch {
		case g.world.Lost():
			g.state = StateGameOver
			g.controls.ResetTrigger()
		case g.world.Won():
			g.state = StateWin
			g.controls.ResetTrigger()
		}
	}

	g.controls.EndFrame()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	saved := 0
	if g.world != nil {
		saved = g.world.Player.Saved
	}
	return core.GameState{
		Score:    saved,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
		Ticks:    g.tickCount,
	}
}

// Phase returns the session state name.
func (g *Game) Phase() string {
	return g.state
}

// World returns the simulated world.
func (g *Game) World() *World {
	return g.world
}

// Camera returns the current camera.
func (g *Game) Camera() Camera {
	return g.camera
}

// LastEvents returns what happened during the most recent simulated frame.
func (g *Game) LastEvents() FrameEvents {
	return g.lastEvents
}

// Register the game with the registry
func init() {
	registry.Register("rescue", func() registry.Game {
		return New()
	})
}
