package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector panel, rendered into an offscreen buffer at 1x then blitted at inspScale.
const (
	inspScale = 2   // scale factor for inspector text rendering
	inspBufW  = 220 // buffer width in pixels (~36 chars at debug font)
	inspBufH  = 300 // buffer height in pixels
	inspPad   = 4   // padding in buffer-space pixels
	inspLineH = 13  // line height in buffer-space pixels
)

// Inspector holds the selected footballer and view toggle state.
type Inspector struct {
	selected *Footballer
	rawView  bool // false = curated, true = raw dump
}

// handleInspectorClick selects the footballer under the cursor. A click on
// empty grass clears the selection. Returns true if someone was hit.
func (g *Game) handleInspectorClick(mx, my int) bool {
	p := g.toPitch(mx, my)
	// Pick radius: 12 screen pixels expressed in metres.
	clickRadius := 12.0 / float64(g.scale)
	best := math.MaxFloat64
	var hit *Footballer
	for _, f := range g.match.all {
		if f.sentOff {
			continue
		}
		if d := f.pos.dist(p); d < clickRadius && d < best {
			best = d
			hit = f
		}
	}
	g.inspector.selected = hit
	return hit != nil
}

// drawInspector renders the inspector panel into an offscreen buffer at 1x,
// then blits it onto the screen at inspScale, left of the commentary.
func (g *Game) drawInspector(screen *ebiten.Image) {
	f := g.inspector.selected
	if f == nil {
		return
	}

	g.inspBuf.Clear()
	buf := g.inspBuf
	bw := float32(inspBufW)
	bh := float32(inspBufH)

	panelBg := color.RGBA{R: 14, G: 16, B: 14, A: 230}
	panelBorder := color.RGBA{R: 55, G: 80, B: 55, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, panelBg, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, panelBorder, false)
	vector.StrokeLine(buf, 1, 1, bw-1, 1, 1.0, color.RGBA{R: 70, G: 110, B: 70, A: 60}, false)

	lx := inspPad
	ly := inspPad

	ctl := ""
	if f == g.match.control {
		ctl = " [YOU]"
	}
	title := fmt.Sprintf("[ %s %s %s%s ]", f.label, f.role, f.profile.Name, ctl)
	ebitenutil.DebugPrintAt(buf, title, lx, ly)
	ly += inspLineH + 2

	viewName := "CURATED"
	if g.inspector.rawView {
		viewName = "RAW"
	}
	ebitenutil.DebugPrintAt(buf, fmt.Sprintf("view: %s  [I] toggle", viewName), lx, ly)
	ly += inspLineH + 4

	vector.StrokeLine(buf, float32(lx), float32(ly), bw-float32(inspPad), float32(ly), 1.0, panelBorder, false)
	ly += 4

	if g.inspector.rawView {
		g.drawInspectorRaw(buf, f, lx, ly)
	} else {
		g.drawInspectorCurated(buf, f, lx, ly)
	}

	px := g.width - panelWidth - inspBufW*inspScale - 12
	py := g.height - inspBufH*inspScale - 8
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(inspScale), float64(inspScale))
	opts.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(buf, opts)
}

// drawInspectorCurated draws the organised, human-readable inspector view.
func (g *Game) drawInspectorCurated(buf *ebiten.Image, f *Footballer, lx, ly int) {
	a := f.attr()
	c := f.cond
	s := f.stats

	line := func(text string) {
		ebitenutil.DebugPrintAt(buf, text, lx, ly)
		ly += inspLineH
	}
	section := func(title string) {
		ly += 3
		ebitenutil.DebugPrintAt(buf, "-- "+title+" --", lx, ly)
		ly += inspLineH
	}
	bar := func(label string, v float64) {
		filled := int(clamp(v, 0, 1) * 14)
		b := ""
		for i := 0; i < 14; i++ {
			if i < filled {
				b += "#"
			} else {
				b += "."
			}
		}
		ebitenutil.DebugPrintAt(buf, fmt.Sprintf("%-8s %s %.2f", label, b, v), lx, ly)
		ly += inspLineH
	}

	section("SITUATION")
	line(fmt.Sprintf("state: %s", f.brain.State))
	line(fmt.Sprintf("target: (%.0f,%.0f)", f.brain.Target.x, f.brain.Target.y))
	if g.match.ball.carrier == f {
		line("on the ball")
	}
	line(fmt.Sprintf("nearby: %d  range %.0fm", len(f.aware.Nearby), f.aware.MaxRange))

	section("CONDITION")
	bar("fitness", c.EffectiveFitness())
	bar("fatigue", c.Fatigue)
	bar("sprint", c.SprintPool/sprintPoolMax)
	bar("confid.", c.Confidence)

	section("RATINGS")
	line(fmt.Sprintf("ovr %d  spd %d  pas %d", f.profile.Overall(), a.Speed, a.Passing))
	line(fmt.Sprintf("sht %d  drb %d  tkl %d", a.Shooting, a.Dribbling, a.Tackling))
	line(fmt.Sprintf("skill %d*  weak foot %d*", a.SkillMoves, a.WeakFoot))

	section("MATCH")
	line(fmt.Sprintf("G %d  A %d  shots %d/%d", s.Goals, s.Assists, s.ShotsOnTarget, s.Shots))
	line(fmt.Sprintf("pass %d/%d  tkl %d/%d", s.PassesCompleted, s.PassesAttempted, s.TacklesWon, s.TacklesAttempted))
	line(fmt.Sprintf("dist %.0fm  rating %.1f", s.Distance, s.Rating()))
	gr := gradeFootballer(f, g.match.Mode.MatchMinutes())
	line(fmt.Sprintf("grade %s (%.0f)", gr.Grade, gr.Score))
}

// drawInspectorRaw dumps every field verbatim.
func (g *Game) drawInspectorRaw(buf *ebiten.Image, f *Footballer, lx, ly int) {
	line := func(text string) {
		ebitenutil.DebugPrintAt(buf, text, lx, ly)
		ly += inspLineH
	}
	b := &f.brain
	c := &f.cond
	line(fmt.Sprintf("id=%d %s side=%s", f.id, f.label, f.side))
	line(fmt.Sprintf("pos=(%.1f,%.1f) vel=(%.1f,%.1f)", f.pos.x, f.pos.y, f.vel.x, f.vel.y))
	line(fmt.Sprintf("slot=(%.1f,%.1f) hdg=%.2f", f.slot.x, f.slot.y, f.aware.Heading))
	line(fmt.Sprintf("st=%s tgt=(%.1f,%.1f)", b.State, b.Target.x, b.Target.y))
	passTo := "-"
	if b.PassTo != nil {
		passTo = b.PassTo.label
	}
	line(fmt.Sprintf("passTo=%s trick=%s", passTo, b.Trick))
	line(fmt.Sprintf("since=%.2f sup=%.0f", b.sinceDecide, b.supportSide))
	line(fmt.Sprintf("sprint=%v tcd=%.2f", f.sprinting, f.tackleCooldown))
	line(fmt.Sprintf("yel=%d off=%v", f.yellowCards, f.sentOff))
	line("-- condition --")
	line(fmt.Sprintf("fit=%.2f fat=%.3f", c.FitnessBase, c.Fatigue))
	line(fmt.Sprintf("pool=%.2f conf=%.2f", c.SprintPool, c.Confidence))
	line(fmt.Sprintf("spd=%.2f acc=%.2f", f.topSpeed(), c.AccuracyMul()))
	line("-- stats --")
	line(f.stats.String())
	line(fmt.Sprintf("poss=%.1fs top=%.1fm/s", f.stats.PossessionTime, f.stats.TopSpeed))
	for i, o := range f.aware.Nearby {
		if i >= 4 {
			line(fmt.Sprintf("  +%d more", len(f.aware.Nearby)-4))
			break
		}
		line(fmt.Sprintf("  %s (%.0f,%.0f) %.1fm", o.label, o.pos.x, o.pos.y, o.pos.dist(f.pos)))
	}
}
