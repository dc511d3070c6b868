package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

const (
	shoutLifetime = 120 // ticks a call stays on screen
	shoutCooldown = 480 // ticks between calls from one footballer
	shoutEvery    = 20  // ticks between new calls across the pitch
	manOnRange    = 3.0
	timeRange     = 8.0
	openRange     = 5.0
	callRange     = 15.0 // only teammates this close warn the carrier
)

// Shout is an on-pitch call from one footballer to a teammate.
type Shout struct {
	Player *Footballer
	Text   string
	age    int
}

var (
	manOnCalls = []string{"Man on!", "Behind you!", "Man on, man on!"}
	timeCalls  = []string{"Time!", "You've got time", "Turn!"}
	openCalls  = []string{"Here!", "Square!", "Yes!", "Feet!", "Down the line!"}
)

// pick chooses a phrase without touching the match RNG.
func (m *Match) pick(f *Footballer, calls []string) string {
	return calls[(m.tick/shoutEvery+f.id)%len(calls)]
}

// callFor returns what f would shout right now, or "".
func (m *Match) callFor(f *Footballer) string {
	c := m.ball.carrier
	if c == nil {
		if f.role == player.Goalkeeper && f.brain.State == StateChasingBall {
			return "Keeper's!"
		}
		return ""
	}
	if c.side != f.side || c == f {
		return ""
	}
	opps := m.side(f.side.Opponent()).Active()
	_, pressure := nearest(c.pos, opps)
	if f.pos.dist(c.pos) < callRange {
		switch {
		case pressure < manOnRange:
			return m.pick(f, manOnCalls)
		case pressure > timeRange:
			return m.pick(f, timeCalls)
		}
	}
	if f.brain.State == StateSupporting {
		if _, free := nearest(f.pos, opps); free > openRange {
			return m.pick(f, openCalls)
		}
	}
	return ""
}

// updateShouts ages live calls and lets at most one footballer speak every
// shoutEvery ticks.
func (m *Match) updateShouts() {
	kept := m.shouts[:0]
	for _, s := range m.shouts {
		s.age++
		if s.age < shoutLifetime && !s.Player.sentOff {
			kept = append(kept, s)
		}
	}
	m.shouts = kept

	if m.tick%shoutEvery != 0 || len(m.all) == 0 {
		return
	}
	start := (m.tick / shoutEvery) % len(m.all)
	for i := range m.all {
		f := m.all[(start+i)%len(m.all)]
		if f.sentOff || m.tick-f.lastShout < shoutCooldown {
			continue
		}
		text := m.callFor(f)
		if text == "" {
			continue
		}
		f.lastShout = m.tick
		m.shouts = append(m.shouts, &Shout{Player: f, Text: text})
		m.log.AddVerbose(m.tick, f.label, f.side.String(), catAI, "shout", text, 0)
		return
	}
}

// Shouts returns the calls currently on screen.
func (m *Match) Shouts() []*Shout { return m.shouts }

// drawShouts renders each live call as a small bubble above its footballer.
func (g *Game) drawShouts(screen *ebiten.Image) {
	const (
		charW = 7
		lineH = 15
		padX  = 5
		padY  = 2
	)
	hp, _, _ := g.match.home.Kit.RGBA()
	ap, _, _ := g.match.away.Kit.RGBA()
	for _, s := range g.match.shouts {
		f := s.Player
		progress := float64(s.age) / shoutLifetime
		alpha := float32(1)
		if progress > 0.7 {
			alpha = float32(1 - (progress-0.7)/0.3)
		}
		x, y := g.toScreen(f.pos)
		w := float32(len(s.Text)*charW + padX*2)
		h := float32(lineH + padY*2)
		bx := x - w/2
		by := y - float32(footballerRadius)*g.scale - h - 6

		vector.FillRect(screen, bx, by, w, h, color.RGBA{R: 20, G: 22, B: 20, A: uint8(210 * alpha)}, false)
		accent := hp
		if f.side == SideAway {
			accent = ap
		}
		accent.A = uint8(220 * alpha)
		vector.FillRect(screen, bx, by, 3, h, accent, false)
		vector.StrokeLine(screen, x, by+h, x, y-float32(footballerRadius)*g.scale,
			0.5, color.RGBA{R: 120, G: 120, B: 120, A: uint8(90 * alpha)}, false)
		hudText(screen, s.Text, float64(bx+padX+1), float64(by+padY), 1,
			color.RGBA{R: 235, G: 235, B: 235, A: uint8(255 * alpha)})
	}
}
