package game

import (
	"math"

	"github.com/Garsondee/Pitch-Sense/internal/touch"
)

const (
	moveHold   = 0.25 // seconds a move command keeps the player running
	sprintHold = 0.5
	passCone   = math.Pi / 3 // receivers within this angle of a directed pass
)

// UserHasBall reports whether the controlled footballer is in possession.
func (m *Match) UserHasBall() bool {
	return m.control != nil && m.ball.carrier == m.control
}

// Apply executes one touch action for the controlled footballer. Directions
// arrive in pitch space: +Y is north.
func (m *Match) Apply(a touch.Action) {
	f := m.control
	if f == nil || f.sentOff || !m.clock.Running() {
		return
	}
	dir := vec{a.DirX, a.DirY}
	hasBall := m.ball.carrier == f
	m.log.AddVerbose(m.tick, f.label, f.side.String(), catInput, a.Kind.String(), "", a.Power)

	switch a.Kind {
	case touch.ActionMove:
		if dir.len() > 0 {
			m.moveDir = dir.unit()
			m.moveTTL = moveHold
		}
	case touch.ActionSprint:
		m.sprintOn = sprintHold
	case touch.ActionShoot:
		if !hasBall {
			return
		}
		var aim vec
		if dir.len() > 0 {
			// Bend the swipe onto the goal line.
			goal := goalCentre(m.attackDir(f.side))
			ahead := (goal.y - f.pos.y) / math.Max(math.Abs(dir.y), 0.2)
			aim = vec{f.pos.x + dir.x*math.Abs(ahead), goal.y}
			aim.x = clamp(aim.x, -pitchHalfWidth, pitchHalfWidth)
		}
		m.shoot(f, aim, clamp(a.Power, 0.2, 1))
	case touch.ActionPass:
		if !hasBall {
			return
		}
		if mate := m.passTarget(f, dir); mate != nil {
			m.passTo(f, mate, a.Power)
		}
	case touch.ActionTrick:
		if hasBall {
			m.attemptTrick(f, a.Trick, true)
		}
	case touch.ActionSwitch:
		m.switchControl()
	}
}

// passTarget picks the best receiver. A directed pass only considers
// teammates inside passCone of dir; an undirected one takes the best lane.
func (m *Match) passTarget(f *Footballer, dir vec) *Footballer {
	var best *Footballer
	bestQ := -1.0
	attack := m.attackDir(f.side)
	opps := m.side(f.side.Opponent()).Active()
	for _, mate := range m.side(f.side).Active() {
		if mate == f {
			continue
		}
		if dir.len() > 0 && angleBetween(dir.heading(), mate.pos.sub(f.pos).heading()) > passCone {
			continue
		}
		if q := PassQuality(f.pos, mate, opps, attack); q > bestQ {
			best, bestQ = mate, q
		}
	}
	return best
}

// switchControl moves control to the teammate nearest the ball.
func (m *Match) switchControl() {
	var cands []*Footballer
	for _, f := range m.side(m.userSide).Active() {
		if f != m.control {
			cands = append(cands, f)
		}
	}
	if next := m.nearestTo(cands, m.ball.pos); next != nil {
		m.log.Add(m.tick, next.label, next.side.String(), catInput, "switch", "control", 0)
		m.control = next
		m.moveDir = vec{}
	}
}

// actUser moves the controlled footballer along the last move command.
func (m *Match) actUser(f *Footballer) {
	if m.sprintOn > 0 {
		m.sprintOn -= dt
	}
	f.sprinting = m.sprintOn > 0
	if m.moveTTL <= 0 {
		f.stand()
		return
	}
	m.moveTTL -= dt
	mul := 1.0
	if m.ball.carrier == f {
		mul = dribbleSpeedMul
	}
	f.moveToward(f.pos.add(m.moveDir.scale(5)), mul)
}
