package rescue

import (
	"strings"
	"testing"

	"github.com/vovakirdan/vampire-rescue/internal/config"
	"github.com/vovakirdan/vampire-rescue/internal/core"
	"github.com/vovakirdan/vampire-rescue/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     12345,
	}
}

func newTestGame() *Game {
	g := NewWithConfig(config.DefaultRescueConfig())
	g.Reset(testRuntime())
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Define a sequence of inputs: start, then wander around and shoot
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionConfirm)
		case i%40 < 20:
			in.Set(core.ActionRight)
			in.Set(core.ActionDown)
		default:
			in.Set(core.ActionLeft)
		}
		if i%7 == 0 {
			in.Set(core.ActionFire)
			in.SetPointer(float64(i%13)*90, float64(i%11)*60)
		}
		if i%7 == 3 {
			in.Set(core.ActionFireRelease)
		}
		inputs[i] = in
	}

	run := func() Snapshot {
		g := newTestGame()
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.PlayerX != snap2.PlayerX || snap1.PlayerY != snap2.PlayerY {
		t.Error("Determinism failed: player positions differ")
	}
	if snap1.Tick == 0 {
		t.Error("the game never started")
	}
}

func TestGameSeedChangesMap(t *testing.T) {
	a := newTestGame()
	rt := testRuntime()
	rt.Seed = 777
	b := NewWithConfig(config.DefaultRescueConfig())
	b.Reset(rt)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("different seeds should generate different maps")
	}
}

func TestGameStateMachine(t *testing.T) {
	g := newTestGame()

	if g.Phase() != StateStart {
		t.Fatalf("phase = %s, expected %s", g.Phase(), StateStart)
	}
	g.Step(core.NewInputFrame())
	if g.Phase() != StateStart || g.State().Ticks != 0 {
		t.Error("the title screen should wait for input")
	}

	g.Step(frameWith(core.ActionConfirm))
	if g.Phase() != StatePlaying {
		t.Fatalf("phase = %s, expected playing", g.Phase())
	}

	g.Step(core.NewInputFrame())
	ticks := g.State().Ticks

	res := g.Step(frameWith(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	g.Step(core.NewInputFrame())
	if g.State().Ticks != ticks {
		t.Error("simulation advanced while paused")
	}

	g.Step(frameWith(core.ActionPause))
	if g.Phase() != StatePlaying {
		t.Errorf("phase = %s, expected playing after unpause", g.Phase())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame()
	g.Step(frameWith(core.ActionConfirm))

	g.World().Player.Health = 0
	g.World().Player.Saved = 2
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("state = %+v, expected a loss", res.State)
	}
	if res.State.Score != 2 {
		t.Errorf("score = %d, expected the saved count", res.State.Score)
	}

	g.Step(core.NewInputFrame())
	if g.Phase() != StateGameOver {
		t.Error("game over should wait for restart")
	}

	g.Step(frameWith(core.ActionRestart))
	p := g.World().Player
	if g.Phase() != StatePlaying {
		t.Errorf("phase = %s, expected playing after restart", g.Phase())
	}
	if p.Health != p.MaxHealth || p.Saved != 0 || g.State().Ticks != 0 {
		t.Errorf("restart did not reset the run: %+v ticks %d", p.Body, g.State().Ticks)
	}
	if len(g.World().Enemies) == 0 {
		t.Error("restart should generate new enemies")
	}
}

func TestGameWin(t *testing.T) {
	g := newTestGame()
	g.Step(frameWith(core.ActionConfirm))

	g.World().Enemies = nil
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || !res.State.Won || g.Phase() != StateWin {
		t.Errorf("state = %+v, phase %s, expected a win", res.State, g.Phase())
	}
}

func TestGameStartWithFireDoesNotShoot(t *testing.T) {
	g := newTestGame()

	g.Step(frameWith(core.ActionFire))
	g.Step(core.NewInputFrame())

	if g.Phase() != StatePlaying {
		t.Fatalf("phase = %s, expected playing", g.Phase())
	}
	if n := len(g.World().Projectiles); n != 0 {
		t.Errorf("projectiles = %d, the starting click should not fire", n)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "VAMPIRE RESCUE") {
		t.Errorf("title screen missing:\n%s", screen.String())
	}

	g.Step(frameWith(core.ActionConfirm))
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "@") {
		t.Errorf("player not drawn:\n%s", out)
	}
	if !strings.Contains(screen.Row(0), "HP") || !strings.Contains(screen.Row(0), "Saved 0") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}
	if strings.Contains(out, "VAMPIRE RESCUE") {
		t.Error("title overlay should be gone while playing")
	}
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := newTestGame()
	before := g.Snapshot()

	rt := testRuntime()
	rt.ScreenW = 120
	g.Resize(rt)

	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("resize should not change the simulation")
	}
	if cam := g.Camera(); cam.ViewW != 120*16 {
		t.Errorf("view width = %v, expected %v", cam.ViewW, 120*16)
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health, maxHealth int
		expected          string
	}{
		{200, 200, "[##########]"},
		{100, 200, "[#####.....]"},
		{0, 200, "[..........]"},
		{-30, 200, "[..........]"},
	}

	for _, tc := range tests {
		if got := healthBar(tc.health, tc.maxHealth, 10); got != tc.expected {
			t.Errorf("healthBar(%d, %d) = %q, expected %q", tc.health, tc.maxHealth, got, tc.expected)
		}
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("rescue")
	if err != nil {
		t.Fatalf("rescue not registered: %v", err)
	}
	if g.Title() != "Vampire Rescue" {
		t.Errorf("title = %q", g.Title())
	}
	if _, ok := g.(registry.Drawer); !ok {
		t.Error("rescue should support canvas drawing")
	}
}
