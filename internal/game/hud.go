package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// hudScale is the upscale applied to HUD text (basicfont is 7x13 at 1x).
const hudScale = 2

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// hudText draws s at (x,y) scaled by scale in col.
func hudText(screen *ebiten.Image, s string, x, y float64, scale float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.LineSpacing = hudFace.Metrics().HAscent + hudFace.Metrics().HDescent + 2
	text.Draw(screen, s, hudFace, op)
}

// drawScoreboard renders the score, clock and possession at the top left.
func (g *Game) drawScoreboard(screen *ebiten.Image) {
	m := g.match
	h, a := m.Score()
	hp, _, _ := m.home.Kit.RGBA()
	ap, _, _ := m.away.Kit.RGBA()

	x := float32(borderWidth)
	y := float32(borderWidth)
	vector.FillRect(screen, x, y, 300, 86, color.RGBA{R: 6, G: 10, B: 6, A: 220}, false)
	vector.StrokeRect(screen, x, y, 300, 86, 1, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	vector.FillRect(screen, x+8, y+10, 6, 24, hp, false)
	vector.FillRect(screen, x+8, y+40, 6, 24, ap, false)

	white := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	hudText(screen, fmt.Sprintf("%-4s %2d", m.home.Team.Short, h), float64(x+20), float64(y+8), hudScale, white)
	hudText(screen, fmt.Sprintf("%-4s %2d", m.away.Team.Short, a), float64(x+20), float64(y+38), hudScale, white)
	hudText(screen, m.clock.Display(), float64(x+170), float64(y+8), hudScale, white)
	hudText(screen, m.clock.State().String(), float64(x+170), float64(y+38), 1, color.RGBA{R: 170, G: 200, B: 170, A: 255})
	hudText(screen, fmt.Sprintf("poss %2.0f%% - %2.0f%%", m.PossessionPct(SideHome), m.PossessionPct(SideAway)),
		float64(x+170), float64(y+56), 1, color.RGBA{R: 170, G: 200, B: 170, A: 255})
}

// drawPowerMeter shows the charge of a held finger above the scoreboard
// corner of the pitch.
func (g *Game) drawPowerMeter(screen *ebiten.Image) {
	p := g.ctrl.HeldPower(g.now())
	if p <= 0 {
		return
	}
	x := float32(borderWidth)
	y := float32(borderWidth + 96)
	const w, h = 300, 14
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 20, G: 20, B: 20, A: 220}, false)
	c := color.RGBA{R: 80, G: 220, B: 80, A: 255}
	switch {
	case p > 0.8:
		c = color.RGBA{R: 240, G: 60, B: 40, A: 255}
	case p > 0.5:
		c = color.RGBA{R: 240, G: 200, B: 40, A: 255}
	}
	vector.FillRect(screen, x, y, w*float32(p), h, c, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{R: 200, G: 200, B: 200, A: 200}, false)
}

// drawHUD renders the key legend at the bottom left.
func (g *Game) drawHUD(screen *ebiten.Image) {
	heat := "off"
	if g.heatLayer >= 0 {
		heat = HeatKindName(HeatKind(g.heatLayer))
	}
	lines := []string{
		fmt.Sprintf("%s  speed %.1fx", g.match.Mode.Name, g.simSpeed),
		"WASD move  Shift sprint",
		"Space shoot  E pass  Tab switch",
		"swipe/tap/hold or draw a trick",
		"P pause  ,/. speed",
		fmt.Sprintf("H heat [%s]  T targets", heat),
		"C copy report  I inspector view",
		"right-click inspect  F1 hide",
	}
	const lineH = 16
	boxW := float32(300)
	boxH := float32(len(lines)*lineH + 10)
	x := float32(borderWidth)
	y := float32(g.height-borderWidth) - boxH - 16
	vector.FillRect(screen, x, y, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(screen, x, y, boxW, boxH, 1, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	hudText(screen, strings.Join(lines, "\n"), float64(x+6), float64(y+4), 1, color.RGBA{R: 200, G: 220, B: 200, A: 255})
}

// drawBanner centres msg over the pitch.
func (g *Game) drawBanner(screen *ebiten.Image, msg string) {
	cx, cy := g.toScreen(vec{})
	w := float32(len(msg)*7*hudScale + 24)
	vector.FillRect(screen, cx-w/2, cy-24, w, 40, color.RGBA{R: 0, G: 0, B: 0, A: 190}, false)
	hudText(screen, msg, float64(cx-w/2+12), float64(cy-20), hudScale, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
