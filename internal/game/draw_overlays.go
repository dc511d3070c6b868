package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawTargetLines draws faint dashed lines from each footballer to their
// brain target. For the selected footballer the line is brighter and ends in
// a small marker.
func (g *Game) drawTargetLines(screen *ebiten.Image) {
	for _, f := range g.match.all {
		if f.sentOff || f == g.match.control {
			continue
		}
		dest := f.brain.Target
		if dest.dist(f.pos) < 1.5 {
			continue
		}

		isSelected := g.inspector.selected == f
		var lineCol color.RGBA
		if f.side == SideHome {
			lineCol = color.RGBA{R: 160, G: 50, B: 40, A: 40}
			if isSelected {
				lineCol = color.RGBA{R: 240, G: 90, B: 70, A: 120}
			}
		} else {
			lineCol = color.RGBA{R: 40, G: 60, B: 160, A: 40}
			if isSelected {
				lineCol = color.RGBA{R: 80, G: 120, B: 240, A: 120}
			}
		}

		sx, sy := g.toScreen(f.pos)
		ex, ey := g.toScreen(dest)
		dx, dy := ex-sx, ey-sy
		total := float32(math.Hypot(float64(dx), float64(dy)))
		ndx, ndy := dx/total, dy/total
		const dashLen, gapLen = 8, 6
		thickness := float32(1)
		if isSelected {
			thickness = 1.5
		}
		for drawn := float32(0); drawn < total; drawn += dashLen + gapLen {
			segEnd := min(drawn+dashLen, total)
			vector.StrokeLine(screen, sx+ndx*drawn, sy+ndy*drawn, sx+ndx*segEnd, sy+ndy*segEnd, thickness, lineCol, false)
		}
		if isSelected {
			vector.StrokeCircle(screen, ex, ey, 4, 1, color.RGBA{R: 255, G: 240, B: 60, A: 160}, true)
		}
	}
}

// drawSelectedInfo labels the selected footballer's pass options with their
// lane quality when they have the ball, or their state otherwise.
func (g *Game) drawSelectedInfo(screen *ebiten.Image) {
	sel := g.inspector.selected
	if sel == nil || sel.sentOff {
		return
	}
	m := g.match
	x, y := g.toScreen(sel.pos)
	label := fmt.Sprintf("%s %s", sel.label, sel.brain.State)
	vector.FillRect(screen, x+10, y-22, float32(len(label)*6+8), 16, color.RGBA{R: 15, G: 18, B: 15, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, label, int(x)+14, int(y)-22)

	if m.ball.carrier != sel {
		return
	}
	opps := m.side(sel.side.Opponent()).Active()
	attack := m.attackDir(sel.side)
	for _, mate := range m.side(sel.side).Active() {
		if mate == sel {
			continue
		}
		q := PassQuality(sel.pos, mate, opps, attack)
		mx, my := g.toScreen(mate.pos)
		c := color.RGBA{R: 220, G: 60, B: 60, A: 90}
		switch {
		case q > passThreshold:
			c = color.RGBA{R: 60, G: 220, B: 60, A: 140}
		case q > 0.5:
			c = color.RGBA{R: 230, G: 200, B: 60, A: 110}
		}
		vector.StrokeLine(screen, x, y, mx, my, 1, c, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.2f", q), int(mx)+8, int(my)+4)
	}
}
