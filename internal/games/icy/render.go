package icy

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/icy-tower/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '═'
	PlayerChar   = '█'
	StarChar     = '*'
	TeleportChar = '◎'
)

// Minimum terminal size for a playable field
const (
	minScreenW = 24
	minScreenH = 12
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// platformColors maps lifecycle states to colours.
var platformColors = map[PlatformState]core.Color{
	StateResting:  core.ColorCyan,
	StateStanding: core.ColorYellow,
	StateDecaying: core.ColorOrange,
	StateFalling:  core.ColorRed,
}

// Color returns the colour a platform is drawn in.
func (p PlatformView) Color() core.Color {
	if p.Moving && p.State == StateResting {
		return core.ColorBlue
	}
	return platformColors[p.State]
}

// Color returns the colour an enemy variant is drawn in.
func (k EnemyKind) Color() core.Color {
	return enemyBehaviors[k].color
}

// field maps world units onto the bordered playfield.
type field struct {
	inner          core.Rect // Drawable cells inside the border
	worldW, worldH float64
}

// layoutField centres a playfield keeping the world's aspect ratio.
func layoutField(dst *core.Screen, worldW, worldH float64) field {
	h := dst.Height() - 3 // HUD row plus the border
	w := int(math.Round(float64(h) * worldW / worldH * cellAspect))
	w = core.Min(w, dst.Width()-2)
	x := (dst.Width() - w - 2) / 2
	return field{
		inner:  core.NewRect(x+1, 2, w, h),
		worldW: worldW,
		worldH: worldH,
	}
}

func (f field) col(x float64) int {
	return f.inner.X + int(math.Floor(x/f.worldW*float64(f.inner.W)))
}

func (f field) row(y float64) int {
	return f.inner.Y + int(math.Floor(y/f.worldH*float64(f.inner.H)))
}

// cells converts a world box into screen cells; anything visible is at
// least one cell.
func (f field) cells(b core.Box) core.Rect {
	x, y := f.col(b.X), f.row(b.Y)
	w := core.Max(1, f.col(b.Right())-x)
	h := core.Max(1, f.row(b.Bottom())-y)
	return core.NewRect(x, y, w, h)
}

// fill paints r clipped to the field interior.
func (f field) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	for y := core.Max(r.Y, f.inner.Y); y < core.Min(r.Bottom(), f.inner.Bottom()); y++ {
		for x := core.Max(r.X, f.inner.X); x < core.Min(r.Right(), f.inner.Right()); x++ {
			dst.SetColored(x, y, glyph, c)
		}
	}
}

// text writes s clipped to the field interior.
func (f field) text(dst *core.Screen, x, y int, s string, c core.Color) {
	if y < f.inner.Y || y >= f.inner.Bottom() {
		return
	}
	for i, r := range []rune(s) {
		if x+i >= f.inner.X && x+i < f.inner.Right() {
			dst.SetColored(x+i, y, r, c)
		}
	}
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.Snapshot()
	f := layoutField(dst, snap.WorldW, snap.WorldH)

	g.renderHUD(dst, &snap)
	dst.DrawBox(core.NewRect(f.inner.X-1, f.inner.Y-1, f.inner.W+2, f.inner.H+2))
	g.renderPlatforms(dst, f, &snap)
	g.renderPlayer(dst, f, &snap)
	g.renderOverlay(dst, &snap)
}

// renderHUD draws score, best score and the invincibility timer on row 0.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %04d", snap.Score), core.ColorWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Best: %04d", max(snap.Best, snap.Score)))

	right := fmt.Sprintf("Floor %d", snap.Highest)
	color := core.ColorDefault
	if snap.Invincible {
		right = fmt.Sprintf("★ %.1fs", snap.InvincibleLeft.Seconds())
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, color)
}

// renderPlatforms draws platforms in ascending y with their entities.
func (g *Game) renderPlatforms(dst *core.Screen, f field, snap *Snapshot) {
	labelEvery := g.cfg.Platforms.LabelEvery

	for _, p := range snap.Platforms {
		r := f.cells(p.Box)
		r.H = 1

		f.fill(dst, r, PlatformChar, p.Color())

		if labelEvery > 0 && p.Index > 0 && p.Index%labelEvery == 0 {
			f.text(dst, r.X+1, r.Y, strconv.Itoa(p.Index), core.ColorGray)
		}

		above := r.Y - 1
		if p.Star {
			f.text(dst, r.X+r.W/2, above, string(StarChar), core.ColorYellow)
		}
		if p.Teleport {
			f.text(dst, r.X, above, string(TeleportChar), core.ColorMagenta)
		}
		if p.Enemy != nil {
			e := f.cells(p.Enemy.Box)
			f.text(dst, e.X, above, string(enemyBehaviors[p.Enemy.Kind].glyph), p.Enemy.Kind.Color())
		}
	}
}

// renderPlayer draws the climber, blinking while invincible.
func (g *Game) renderPlayer(dst *core.Screen, f field, snap *Snapshot) {
	if snap.Invincible && (snap.Tick/4)%2 == 1 {
		return
	}
	r := f.cells(snap.Player.Box)
	f.fill(dst, r, PlayerChar, core.ColorBrightRed)
}

// renderOverlay draws pause and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch {
	case snap.GameOver:
		title := "GAME OVER"
		if (snap.OverTicks/15)%2 == 1 {
			title = ""
		}
		subtitle := fmt.Sprintf("Score: %04d  |  R to restart", snap.Score)
		drawCenteredBox(dst, title, subtitle)

	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case snap.Tick == 0:
		dst.DrawTextCentered(dst.Height()-1, "←/→ move  SPACE jump")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
