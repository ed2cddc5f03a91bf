package rescue

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/vampire-rescue/internal/core"
)

// Sprites of the map entities
var (
	PlayerSprite     = core.Sprite{Glyph: '@', Color: core.ColorBrightCyan}
	RockSprite       = core.Sprite{Glyph: '▓', Color: core.ColorGray}
	ProjectileSprite = core.Sprite{Glyph: '•', Color: core.ColorBrightYellow}
)

// tierSprites is indexed by Tier; stronger tiers repeat the last entry.
var tierSprites = []core.Sprite{
	{Glyph: 'v', Color: core.ColorMagenta},
	{Glyph: 'V', Color: core.ColorBrightMagenta},
	{Glyph: 'W', Color: core.ColorRed},
	{Glyph: 'Ŵ', Color: core.ColorBrightRed},
}

// hudLine is the pixel height of one overlay text line.
const hudLine = 32

// TierSprite returns how enemies of a tier are drawn.
func TierSprite(t Tier) core.Sprite {
	if int(t) < len(tierSprites) {
		return tierSprites[t]
	}
	return tierSprites[len(tierSprites)-1]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewScreenCanvas(dst, g.cfg.Render.CellWidth, g.cfg.Render.CellHeight))
}

// Draw draws the current game state onto a canvas in viewport pixels.
func (g *Game) Draw(c core.Canvas) {
	if g.world == nil {
		return
	}

	g.drawWorld(c)
	g.drawHUD(c)
	g.drawOverlay(c)
}

// drawWorld draws every entity inside the camera view.
func (g *Game) drawWorld(c core.Canvas) {
	w := g.world
	cam := g.camera
	margin := g.cfg.Render.CullMargin

	m := g.cfg.Map
	c.Outline(cam.ToView(core.NewBox(m.Left, m.Top, m.Width(), m.Height())), core.ColorGray)

	for _, r := range w.Rocks {
		if cam.Visible(r.Box, margin) {
			c.Fill(cam.ToView(r.Box), RockSprite)
		}
	}
	for _, pu := range w.PowerUps {
		if cam.Visible(pu.Box, margin) {
			c.Fill(cam.ToView(pu.Box), pu.Kind.Sprite())
		}
	}
	for _, e := range w.Enemies {
		if cam.Visible(e.Box, margin) {
			c.Fill(cam.ToView(e.Box), TierSprite(e.Tier))
		}
	}

	c.Fill(cam.ToView(w.Player.Box), PlayerSprite)

	for _, pr := range w.Projectiles {
		if cam.Visible(pr.Box, margin) {
			c.Fill(cam.ToView(pr.Box), ProjectileSprite)
		}
	}
}

// drawHUD draws health, attack and the rescue counters.
func (g *Game) drawHUD(c core.Canvas) {
	p := g.world.Player
	vw, _ := c.Size()

	status := fmt.Sprintf("HP %s %d/%d  ATK %d", healthBar(p.Health, p.MaxHealth, 10), max(p.Health, 0), p.MaxHealth, p.AttackDamage)
	c.Text(0, 0, status, core.ColorBrightGreen)

	counters := fmt.Sprintf("Saved %d  Left %d", p.Saved, len(g.world.Enemies))
	if p.QuickShoot {
		counters = "QUICK  " + counters
	}
	c.Text(vw-c.TextWidth(counters), 0, counters, core.ColorBrightWhite)
}

// healthBar renders health as a fixed-width bar.
func healthBar(health, maxHealth, width int) string {
	filled := 0
	if maxHealth > 0 && health > 0 {
		filled = core.Clamp(health*width/maxHealth, 0, width)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// drawOverlay draws the menu screens.
func (g *Game) drawOverlay(c core.Canvas) {
	saved := g.world.Player.Saved

	switch g.state {
	case StateStart:
		drawCenteredBox(c, "VAMPIRE RESCUE", "WASD to move, click to shoot, Enter to start")
	case StatePaused:
		drawCenteredBox(c, "PAUSED", "P to resume, R to restart")
	case StateGameOver:
		drawCenteredBox(c, "GAME OVER", fmt.Sprintf("Saved %d  |  Press R to restart", saved))
	case StateWin:
		drawCenteredBox(c, "ALL VAMPIRES SAVED!", fmt.Sprintf("Saved %d  |  Press R to restart", saved))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(c core.Canvas, title, subtitle string) {
	vw, vh := c.Size()

	textW := max(c.TextWidth(title), c.TextWidth(subtitle))
	pad := c.TextWidth("  ")
	box := core.NewBox((vw-textW)/2-pad, vh/2-2*hudLine, textW+2*pad, 4*hudLine)

	c.Fill(box, core.Sprite{Glyph: ' ', Color: core.ColorDefault})
	c.Outline(box, core.ColorWhite)
	c.Text((vw-c.TextWidth(title))/2, vh/2-hudLine, title, core.ColorBrightYellow)
	c.Text((vw-c.TextWidth(subtitle))/2, vh/2, subtitle, core.ColorWhite)
}
