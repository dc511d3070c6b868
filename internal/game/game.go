package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"

	"github.com/Garsondee/Pitch-Sense/internal/touch"
)

// borderWidth is the pixel gap between the window edge and the pitch.
const borderWidth = 24

// Window size in pixels.
const (
	ScreenWidth  = 1904
	ScreenHeight = 912
)

// mouseFinger is the finger id the mouse reports as.
const mouseFinger = -1

// heatColors maps each heat layer to its overlay colour.
var heatColors = [heatKindCount]color.RGBA{
	HeatHome: {R: 255, G: 60, B: 40, A: 150},
	HeatAway: {R: 40, G: 140, B: 255, A: 150},
	HeatBall: {R: 255, G: 230, B: 0, A: 160},
}

// touchPoint is the last known screen position of a finger.
type touchPoint struct{ x, y int }

type Game struct {
	width   int
	height  int
	pitchX  int     // screen x of the west touchline
	pitchY  int     // screen y of the north goal line
	scale   float32 // pixels per metre
	frame   int
	match   *Match
	ctrl    *touch.Controller
	actions *touch.Buffer
	touches *intmap.Map[ebiten.TouchID, touchPoint]

	mouseDown bool
	mouseLast touchPoint

	// Overlay toggles.
	showHUD     bool
	showTargets bool
	heatLayer   int // -1 off, otherwise a HeatKind
	prevKeys    map[ebiten.Key]bool

	inspector Inspector
	inspBuf   *ebiten.Image

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0.5, 1, 2, 4
	tickAccum float64

	status      string // transient message, e.g. "report copied"
	statusUntil int
}

// New builds the interactive game. opts configure the match; the player
// controls the home side.
func New(opts ...MatchOption) *Game {
	all := append([]MatchOption{WithSeed(time.Now().UnixNano()), WithUserControl(SideHome)}, opts...)
	cfg := touch.DefaultConfig()
	cfg.ScreenHeight = ScreenHeight
	g := &Game{
		width:       ScreenWidth,
		height:      ScreenHeight,
		match:       NewMatch(all...),
		ctrl:        touch.NewController(cfg, nil),
		actions:     touch.NewBuffer(cfg.BufferAge),
		touches:     intmap.New[ebiten.TouchID, touchPoint](4),
		showHUD:     true,
		showTargets: false,
		heatLayer:   -1,
		prevKeys:    make(map[ebiten.Key]bool),
		simSpeed:    1,
		inspBuf:     ebiten.NewImage(inspBufW, inspBufH),
	}
	g.scale = float32(g.height-2*borderWidth) / float32(2*pitchHalfLength+2*goalDepth)
	pitchW := int(2 * pitchHalfWidth * g.scale)
	g.pitchX = (g.width - panelWidth - pitchW) / 2
	g.pitchY = (g.height - int(2*pitchHalfLength*g.scale)) / 2
	return g
}

// Match exposes the running match.
func (g *Game) Match() *Match { return g.match }

// now is the input clock: frames since start at the tick rate.
func (g *Game) now() time.Duration {
	return time.Duration(g.frame) * time.Second / tickRate
}

// toScreen maps pitch metres to screen pixels. North is up.
func (g *Game) toScreen(p vec) (float32, float32) {
	return float32(g.pitchX) + float32(p.x+pitchHalfWidth)*g.scale,
		float32(g.pitchY) + float32(pitchHalfLength-p.y)*g.scale
}

// toPitch is the inverse of toScreen.
func (g *Game) toPitch(sx, sy int) vec {
	return vec{
		x: float64(float32(sx-g.pitchX)/g.scale) - pitchHalfWidth,
		y: pitchHalfLength - float64(float32(sy-g.pitchY)/g.scale),
	}
}

func (g *Game) Update() error {
	g.frame++
	g.handleKeys()
	g.handleTouches()
	g.handleMouse()

	now := g.now()
	for _, a := range g.actions.Drain(now) {
		g.match.Apply(a)
	}
	g.ctrl.Cleanup(now)

	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.match.Step()
	}
	return nil
}

// feed passes one finger sample to the touch controller. Screen Y grows
// downward; the controller expects it growing upward.
func (g *Game) feed(id int, p touchPoint, phase touch.Phase) {
	info := touch.Info{
		FingerID: id,
		X:        float64(p.x),
		Y:        float64(g.height - p.y),
		Phase:    phase,
		Pressure: 1,
		At:       g.now(),
	}
	g.actions.Push(g.ctrl.Handle(info, g.match.UserHasBall())...)
}

// heldPhase is the phase reported for a finger that is still down. Every
// held finger reports each frame so the controller keeps it alive.
func heldPhase(prev, cur touchPoint) touch.Phase {
	if prev == cur {
		return touch.Stationary
	}
	return touch.Moved
}

// handleTouches turns ebiten touch state into Began/Moved/Stationary/Ended
// samples.
func (g *Game) handleTouches() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p := touchPoint{x, y}
		g.touches.Put(id, p)
		g.feed(int(id), p, touch.Began)
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p := touchPoint{x, y}
		last, ok := g.touches.Get(id)
		if !ok {
			continue
		}
		g.touches.Put(id, p)
		g.feed(int(id), p, heldPhase(last, p))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		p, ok := g.touches.Get(id)
		if !ok {
			continue
		}
		g.touches.Del(id)
		g.feed(int(id), p, touch.Ended)
	}
}

// handleMouse drives the left button as a finger and the right button as
// the inspector picker.
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	p := touchPoint{mx, my}
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case down && !g.mouseDown:
		g.feed(mouseFinger, p, touch.Began)
	case down:
		g.feed(mouseFinger, p, heldPhase(g.mouseLast, p))
	case !down && g.mouseDown:
		g.feed(mouseFinger, g.mouseLast, touch.Ended)
	}
	g.mouseDown = down
	g.mouseLast = p

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.handleInspectorClick(mx, my)
	}
}

// pressed reports a key going down this frame.
func (g *Game) pressed(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = ebiten.IsKeyPressed(k)
	return cur[k] && !g.prevKeys[k]
}

// handleKeys processes keyboard play and the overlay toggles.
func (g *Game) handleKeys() {
	cur := map[ebiten.Key]bool{}
	at := g.now()

	// Keyboard play mirrors the touch actions.
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if dx != 0 || dy != 0 {
		l := math.Hypot(dx, dy)
		g.actions.Push(touch.Action{Kind: touch.ActionMove, DirX: dx / l, DirY: dy / l, Power: 1, At: at})
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.actions.Push(touch.Action{Kind: touch.ActionSprint, Power: 1, At: at})
	}
	if g.pressed(cur, ebiten.KeySpace) {
		g.actions.Push(touch.Action{Kind: touch.ActionShoot, DirX: dx, DirY: dy, Power: 0.8, At: at})
	}
	if g.pressed(cur, ebiten.KeyE) {
		g.actions.Push(touch.Action{Kind: touch.ActionPass, DirX: dx, DirY: dy, At: at})
	}
	if g.pressed(cur, ebiten.KeyTab) {
		g.actions.Push(touch.Action{Kind: touch.ActionSwitch, At: at})
	}

	// P: pause/resume the match clock.
	if g.pressed(cur, ebiten.KeyP) {
		g.match.TogglePause()
	}
	// ,/. : simulation speed.
	speeds := []float64{0.5, 1, 2, 4}
	if g.pressed(cur, ebiten.KeyComma) {
		for i := len(speeds) - 1; i >= 0; i-- {
			if speeds[i] < g.simSpeed {
				g.simSpeed = speeds[i]
				break
			}
		}
	}
	if g.pressed(cur, ebiten.KeyPeriod) {
		for _, s := range speeds {
			if s > g.simSpeed {
				g.simSpeed = s
				break
			}
		}
	}
	// H: cycle heatmap layers, then off.
	if g.pressed(cur, ebiten.KeyH) {
		g.heatLayer++
		if g.heatLayer >= int(heatKindCount) {
			g.heatLayer = -1
		}
	}
	// T: brain target lines.
	if g.pressed(cur, ebiten.KeyT) {
		g.showTargets = !g.showTargets
	}
	// F1: HUD legend.
	if g.pressed(cur, ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}
	// I: inspector raw/curated view.
	if g.pressed(cur, ebiten.KeyI) {
		g.inspector.rawView = !g.inspector.rawView
	}
	// C: copy the match report.
	if g.pressed(cur, ebiten.KeyC) {
		if err := setClipboardText(BuildReport(g.match).Format()); err != nil {
			g.flash("clipboard: " + err.Error())
		} else {
			g.flash("report copied to clipboard")
		}
	}
	g.prevKeys = cur
}

// flash shows a status line for three seconds.
func (g *Game) flash(msg string) {
	g.status = msg
	g.statusUntil = g.frame + 3*tickRate
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})
	g.drawPitch(screen)
	if g.heatLayer >= 0 {
		g.drawHeatLayer(screen, g.match.heat.Layer(HeatKind(g.heatLayer)), heatColors[g.heatLayer])
	}
	if g.showTargets {
		g.drawTargetLines(screen)
	}

	m := g.match
	hp, hs, _ := m.home.Kit.RGBA()
	ap, as, _ := m.away.Kit.RGBA()
	for _, f := range m.all {
		if f.side == SideHome {
			f.Draw(screen, g.toScreen, g.scale, hp, hs, f == m.control)
		} else {
			f.Draw(screen, g.toScreen, g.scale, ap, as, f == m.control)
		}
	}
	m.ball.Draw(screen, g.toScreen, g.scale)
	g.drawShouts(screen)

	g.drawScoreboard(screen)
	g.drawPowerMeter(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
	g.drawSelectedInfo(screen)
	m.commentary.Draw(screen, g.width-panelWidth, g.height, hp, ap)
	g.drawInspector(screen)
	if m.Over() {
		g.drawBanner(screen, m.ResultText())
	} else if m.clock.State() == ClockPaused {
		g.drawBanner(screen, "PAUSED")
	}
	if g.frame < g.statusUntil {
		ebitenutil.DebugPrintAt(screen, g.status, borderWidth, g.height-borderWidth)
	}
}

// drawPitch renders grass stripes, the markings and both goals.
func (g *Game) drawPitch(screen *ebiten.Image) {
	x0, y0 := g.toScreen(vec{-pitchHalfWidth, pitchHalfLength})
	x1, y1 := g.toScreen(vec{pitchHalfWidth, -pitchHalfLength})
	w, h := x1-x0, y1-y0

	const stripes = 10
	sh := h / stripes
	for i := 0; i < stripes; i++ {
		c := color.RGBA{R: 38, G: 112, B: 46, A: 255}
		if i%2 == 1 {
			c = color.RGBA{R: 44, G: 124, B: 52, A: 255}
		}
		vector.FillRect(screen, x0, y0+float32(i)*sh, w, sh, c, false)
	}

	line := color.RGBA{R: 235, G: 240, B: 235, A: 220}
	vector.StrokeRect(screen, x0, y0, w, h, 2, line, false)
	cx, cy := g.toScreen(vec{})
	vector.StrokeLine(screen, x0, cy, x1, cy, 2, line, false)
	vector.StrokeCircle(screen, cx, cy, float32(centreCircle)*g.scale, 2, line, true)
	vector.DrawFilledCircle(screen, cx, cy, 3, line, true)

	for _, dir := range []float64{1, -1} {
		// Penalty box and six-yard box.
		for _, box := range []struct{ halfW, depth float64 }{{20.16, penaltyDepth}, {9.16, 5.5}} {
			bx0, by0 := g.toScreen(vec{-box.halfW, dir * pitchHalfLength})
			bx1, by1 := g.toScreen(vec{box.halfW, dir * (pitchHalfLength - box.depth)})
			vector.StrokeRect(screen, bx0, min(by0, by1), bx1-bx0, float32(math.Abs(float64(by1-by0))), 2, line, false)
		}
		// Goal frame behind the line.
		gx0, gy0 := g.toScreen(vec{-goalHalfWidth, dir * (pitchHalfLength + goalDepth)})
		gx1, gy1 := g.toScreen(vec{goalHalfWidth, dir * pitchHalfLength})
		top := min(gy0, gy1)
		gh := float32(math.Abs(float64(gy1 - gy0)))
		vector.FillRect(screen, gx0, top, gx1-gx0, gh, color.RGBA{R: 200, G: 200, B: 200, A: 60}, false)
		vector.StrokeRect(screen, gx0, top, gx1-gx0, gh, 2, color.RGBA{R: 255, G: 255, B: 255, A: 255}, false)
	}
}

// drawHeatLayer shades every warm cell of layer in baseCol.
func (g *Game) drawHeatLayer(screen *ebiten.Image, layer *HeatLayer, baseCol color.RGBA) {
	cell := float32(heatCell) * g.scale
	for row := 0; row < layer.rows; row++ {
		for col := 0; col < layer.cols; col++ {
			v := layer.At(row, col)
			if v < 0.02 {
				continue
			}
			cx, cy := cellToPitch(col, row)
			sx, sy := g.toScreen(vec{cx, cy})
			c := baseCol
			c.A = uint8(float32(baseCol.A) * v)
			vector.FillRect(screen, sx-cell/2, sy-cell/2, cell, cell, c, false)
		}
	}
}

// Layout returns the fixed window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// GameWidth is the playfield width left of the commentary panel.
func (g *Game) GameWidth() int {
	return g.width - panelWidth
}

// Describe is a one-line window title suffix.
func (g *Game) Describe() string {
	m := g.match
	return fmt.Sprintf("%s v %s (%s)", m.home.Team.Name, m.away.Team.Name, m.Mode.Name)
}
