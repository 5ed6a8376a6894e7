package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/realm-runner/internal/core"
	"github.com/vovakirdan/realm-runner/internal/field"
)

// Top-down projection: columns are lateral X, rows are longitudinal Z with
// the run direction pointing up the screen.
const (
	cellsPerUnitX = 4.0
	cellsPerUnitZ = 1.5
	shakeCells    = 20.0 // Screen cells per unit of camera offset
	playerRowFrac = 0.75 // Player row as a fraction of the screen height
)

// Visual characters for rendering
const (
	PlayerGrounded = '@'
	PlayerAirborne = 'o'
	PlayerShadow   = '·'
	StableChar     = '█'
	UnstableChar   = '▓'
	BreakingChar   = '░'
)

// palette holds the colors for one realm.
type palette struct {
	stable, unstable, breaking, player, hud core.Color
}

var (
	lightPalette  = palette{core.ColorCyan, core.ColorYellow, core.ColorRed, core.ColorBrightWhite, core.ColorWhite}
	shadowPalette = palette{core.ColorViolet, core.ColorMagenta, core.ColorOrange, core.ColorGreen, core.ColorGray}
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	pal := lightPalette
	if !g.realm.IsLight() {
		pal = shadowPalette
	}

	body := g.ctrl.Body()
	off := g.camera.LocalOffset
	originCol := dst.Width()/2 + int(math.Round(off.X()*shakeCells))
	playerRow := int(float64(dst.Height())*playerRowFrac) + int(math.Round(off.Y()*shakeCells))

	toScreen := func(x, z float64) (int, int) {
		col := originCol + int(math.Round(x*cellsPerUnitX))
		row := playerRow - int(math.Round((z-body.Position.Z())*cellsPerUnitZ))
		return col, row
	}

	for _, p := range g.field.Active() {
		g.drawPlatform(dst, p, pal, toScreen)
	}

	col, row := toScreen(body.Position.X(), body.Position.Z())
	if body.Grounded {
		dst.SetColor(col, row, PlayerGrounded, pal.player)
	} else {
		lift := int(math.Round((body.Position.Y() - g.cfg.Ground.FootOffset - g.cfg.World.PlatformHeight) * 0.5))
		dst.SetColor(col, row, PlayerShadow, pal.hud)
		dst.SetColor(col, row-lift, PlayerAirborne, pal.player)
	}

	g.drawHUD(dst, pal)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawPlatform(dst *core.Screen, p *field.Platform, pal palette, toScreen func(x, z float64) (int, int)) {
	pos := p.Position()
	tpl := p.Template()
	x0, z1 := toScreen(pos.X()-tpl.Width/2, pos.Z()+tpl.Depth/2)
	x1, z0 := toScreen(pos.X()+tpl.Width/2, pos.Z()-tpl.Depth/2)

	fill, color := StableChar, pal.stable
	switch {
	case p.Breaking():
		fill, color = BreakingChar, pal.breaking
	case p.Unstable():
		fill, color = UnstableChar, pal.unstable
	}
	dst.DrawRect(core.NewRect(x0, z1, max(1, x1-x0), max(1, z0-z1)), fill, color)
}

func (g *Game) drawHUD(dst *core.Screen, pal palette) {
	realmName := "LIGHT"
	if !g.realm.IsLight() {
		realmName = "SHADOW"
	}
	left := fmt.Sprintf(" Score: %d  Best: %d ", g.tracker.Display(), g.tracker.DisplayHigh())
	dst.DrawTextColor(2, 0, left, pal.hud)

	right := fmt.Sprintf(" %s  %.0fm ", realmName, g.distance)
	if g.difficulty.IsEnabled() {
		right = fmt.Sprintf(" %s  %.0fm  Spd: %.1f ", realmName, g.distance, g.Speed())
	}
	dst.DrawTextColor(dst.Width()-len(right)-2, 0, right, pal.hud)

	if g.falls > 0 {
		dst.DrawTextColor(2, 1, fmt.Sprintf(" Falls: %d ", g.falls), pal.breaking)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
