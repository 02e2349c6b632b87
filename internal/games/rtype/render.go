package rtype

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-rtype/internal/core"
)

// Terminal glyphs for tiles, keyed by palette glyph.
var tileRunes = map[rune]rune{
	'#': '█',
	'=': '▀',
	'%': '▓',
}

var (
	enemyFrames     = []rune{'|', '/', '─', '\\'}
	explosionFrames = []rune{'·', '+', '*', '✶', '✹', '✺', '*', '·'}
)

// viewport maps world pixels of the visible camera window to screen cells.
type viewport struct {
	top    int // first playfield row
	cols   int
	rows   int
	scroll float64
	sx, sy float64 // cells per world pixel
}

func (v viewport) cell(p core.Vec) (int, int) {
	x := int(math.Floor((p.X - v.scroll) * v.sx))
	y := v.top + int(math.Floor(p.Y*v.sy))
	return x, y
}

// rect returns the cells covered by a world box, at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.cell(core.V(b.X, b.Y))
	x1, y1 := v.cell(core.V(b.Right(), b.Bottom()))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the HUD on the first row and the camera view below it.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil || dst.Height() < 4 || dst.Width() < 10 {
		return
	}
	w := g.world

	vp := viewport{
		top:    1,
		cols:   dst.Width(),
		rows:   dst.Height() - 1,
		scroll: w.scroll,
	}
	vp.sx = float64(vp.cols) / float64(w.cfg.World.ViewWidth)
	vp.sy = float64(vp.rows) / float64(w.cfg.World.ViewHeight)

	g.renderHUD(dst)
	w.renderTerrain(dst, vp)
	w.renderEntities(dst, vp)
	g.renderOverlay(dst, vp)
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	hearts := strings.Repeat("♥", w.boss.HP)
	if !w.boss.Active {
		hearts = "-"
	}
	hud := fmt.Sprintf(" SCORE %06d   BOSS %s   %s", w.score, hearts, w.phase)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	progress := fmt.Sprintf("%3.0f%% ", 100*w.scroll/w.cfg.World.ScrollLimit)
	dst.DrawTextColored(dst.Width()-len(progress), 0, progress, core.ColorGray)
}

func (w *World) renderTerrain(dst *core.Screen, vp viewport) {
	if w.level == nil {
		return
	}
	for cy := 0; cy < vp.rows; cy++ {
		wy := (float64(cy) + 0.5) / vp.sy
		for cx := 0; cx < vp.cols; cx++ {
			wx := vp.scroll + (float64(cx)+0.5)/vp.sx
			ts := float64(w.level.Tile)
			tile := w.level.TileAt(int(math.Floor(wx/ts)), int(math.Floor(wy/ts)))
			if tile == 0 {
				continue
			}
			g := w.level.Glyph(tile)
			if r, ok := tileRunes[g]; ok {
				g = r
			}
			dst.SetColored(cx, vp.top+cy, g, core.ColorBlue)
		}
	}
}

func (w *World) renderEntities(dst *core.Screen, vp viewport) {
	t := vp.rect(w.turret.Bounds())
	dst.DrawRect(t, '▄', core.ColorRed)
	dst.SetColored(t.X+t.W/2, t.Y, '▲', core.ColorBrightRed)

	if w.boss.Active {
		b := vp.rect(w.boss.Bounds())
		dst.DrawRect(b, '▓', core.ColorMagenta)
		dst.DrawBox(b, core.ColorBrightRed)
	}

	if w.enemy.Active {
		frame := enemyFrames[int(w.enemy.Angle/45)%len(enemyFrames)]
		dst.DrawRect(vp.rect(w.enemy.Bounds()), frame, core.ColorGreen)
	}

	w.missiles.Each(func(_ core.Handle, m *Projectile) {
		x, y := vp.cell(m.Pos)
		dst.SetColored(x, y, '═', core.ColorBrightYellow)
	})
	w.bullets.Each(func(_ core.Handle, b *Projectile) {
		x, y := vp.cell(b.Pos)
		dst.SetColored(x, y, '•', core.ColorBrightRed)
	})

	if w.player.Visible && w.player.Alive {
		p := vp.rect(w.player.Bounds())
		dst.DrawRect(p, '=', core.ColorBrightCyan)
		dst.SetColored(p.Right()-1, p.Y+p.H/2, '▶', core.ColorBrightCyan)
	}

	for _, e := range w.explosions {
		x, y := vp.cell(e.Pos)
		frame := w.explosionFrame(e.Age)
		glyph := explosionFrames[frame%len(explosionFrames)]
		dst.SetColored(x, y, glyph, core.ColorOrange)
		if frame >= 2 && frame < 6 {
			dst.SetColored(x-1, y, '*', core.ColorYellow)
			dst.SetColored(x+1, y, '*', core.ColorYellow)
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen, vp viewport) {
	w := g.world
	mid := vp.top + vp.rows/2

	switch {
	case w.overlay.Start:
		dst.DrawTextCentered(mid-2, "R - T Y P E", core.ColorBrightYellow)
		dst.DrawTextCentered(mid, "[ PRESS ENTER ]", core.ColorWhite)
		dst.DrawTextCentered(mid+2, "arrows move · space fires · p pauses", core.ColorGray)
	case w.overlay.GameOver:
		x, y := vp.cell(w.overlay.GameOverPos)
		drawCenteredAt(dst, x, y, "GAME OVER", core.ColorBrightRed)
		x, y = vp.cell(w.overlay.RestartPos)
		drawCenteredAt(dst, x, y, "[ R ] RESTART", core.ColorWhite)
	case w.phase == PhaseWin:
		dst.DrawTextCentered(mid, "BOSS DESTROYED", core.ColorBrightYellow)
		dst.DrawTextCentered(mid+2, "[ R ] PLAY AGAIN", core.ColorWhite)
	}

	if g.paused {
		dst.DrawTextCentered(mid, " PAUSED ", core.ColorBrightWhite)
	}
}

func drawCenteredAt(dst *core.Screen, x, y int, text string, c core.Color) {
	dst.DrawTextColored(x-len([]rune(text))/2, y, text, c)
}
