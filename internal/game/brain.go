package game

import (
	"math"
	"math/rand"

	"github.com/Garsondee/Pitch-Sense/internal/gesture"
	"github.com/Garsondee/Pitch-Sense/internal/player"
)

// --- Brain states ---

// BrainState is what a footballer is currently trying to do.
type BrainState int

const (
	StatePositioning BrainState = iota // hold the formation spot
	StateChasingBall                   // loose ball nearby
	StatePressing                      // close down the opposing carrier
	StateMarking                       // stay goal-side of an opponent
	StateSupporting                    // offer a passing option to the carrier
	StatePassing                       // release a pass this tick
	StateShooting                      // release a shot this tick
	StateDribbling                     // take an opponent on with a trick
	StateHoldingBall                   // carry the ball toward goal
)

func (s BrainState) String() string {
	switch s {
	case StatePositioning:
		return "positioning"
	case StateChasingBall:
		return "chasing"
	case StatePressing:
		return "pressing"
	case StateMarking:
		return "marking"
	case StateSupporting:
		return "supporting"
	case StatePassing:
		return "passing"
	case StateShooting:
		return "shooting"
	case StateDribbling:
		return "dribbling"
	case StateHoldingBall:
		return "holding"
	default:
		return "unknown"
	}
}

// Decision thresholds.
const (
	decisionInterval = 0.2  // seconds between re-decisions
	passThreshold    = 0.7  // pass quality needed to release a pass
	shootRange       = 25.0 // metres from goal
	shootAngle       = math.Pi / 4
	dribbleMin       = 1.0 // opponent distance band that triggers a take-on
	dribbleMax       = 3.0
	chaseRange       = 5.0
	markRange        = 10.0
	markGap          = 2.0
	supportAhead     = 5.0
	supportWide      = 3.0
	supportRange     = 25.0
	pressers         = 2 // outfield players per side who close down the carrier
)

// View is the snapshot a brain decides from. The match builds it once per
// decision so the brain never reads live match state.
type View struct {
	Self       vec
	Heading    float64
	Role       player.Position
	Slot       vec     // formation spot already mapped to the current end
	AttackDir  float64 // +1 attacking north, -1 south
	Ball       vec
	HasBall    bool
	Carrier    *Footballer // nil when the ball is loose
	CarrierOwn bool        // carrier is a teammate
	IsPresser  bool
	Teammates  []*Footballer
	Opponents  []*Footballer
	SkillMoves int
}

// Brain is an explicit state machine that re-decides on a fixed interval.
type Brain struct {
	State  BrainState
	Target vec
	PassTo *Footballer
	Trick  gesture.Trick

	sinceDecide float64
	supportSide float64
}

// Due advances the decision timer by elapsed seconds and reports whether a
// new decision should be taken. The first call is always due.
func (b *Brain) Due(elapsed float64) bool {
	b.sinceDecide += elapsed
	if b.sinceDecide >= decisionInterval || b.supportSide == 0 {
		b.sinceDecide = 0
		return true
	}
	return false
}

// Decide picks the next state from v. rng breaks ties in trick choice and
// support side.
func (b *Brain) Decide(v View, rng *rand.Rand) BrainState {
	if b.supportSide == 0 || rng.Intn(4) == 0 {
		b.supportSide = 1
		if rng.Intn(2) == 0 {
			b.supportSide = -1
		}
	}
	b.PassTo = nil
	b.Trick = gesture.None
	if v.HasBall {
		b.decideWithBall(v, rng)
	} else {
		b.decideWithoutBall(v)
	}
	return b.State
}

func (b *Brain) decideWithBall(v View, rng *rand.Rand) {
	if mate, q := bestPassOption(v); mate != nil && q > passThreshold {
		b.State = StatePassing
		b.PassTo = mate
		b.Target = mate.pos
		return
	}
	goal := goalCentre(v.AttackDir)
	if inShootingPosition(v.Self, v.Heading, goal) {
		b.State = StateShooting
		b.Target = goal
		return
	}
	if opp, d := nearest(v.Self, v.Opponents); opp != nil && d > dribbleMin && d < dribbleMax {
		b.State = StateDribbling
		b.Trick = ChooseTrick(v.SkillMoves, rng)
		b.Target = opp.pos
		return
	}
	b.State = StateHoldingBall
	b.Target = v.Self.add(safeDirection(v).scale(5))
}

func (b *Brain) decideWithoutBall(v View) {
	if v.Role == player.Goalkeeper {
		b.decideKeeper(v)
		return
	}
	switch {
	case v.Self.dist(v.Ball) < chaseRange && !v.CarrierOwn:
		b.State = StateChasingBall
		b.Target = v.Ball
	case v.Carrier != nil && !v.CarrierOwn && v.IsPresser:
		b.State = StatePressing
		b.Target = v.Carrier.pos
	case !v.CarrierOwn && b.markTarget(v):
		b.State = StateMarking
	case v.Carrier != nil && v.CarrierOwn && v.Self.dist(v.Carrier.pos) < supportRange:
		b.State = StateSupporting
		x, y := SlotWorld(v.Carrier.pos.x, v.Carrier.pos.y, v.Carrier.aware.Heading, supportAhead, supportWide*b.supportSide)
		b.Target = clampToPitch(vec{x, y})
	default:
		b.State = StatePositioning
		b.Target = shapeSpot(v.Slot, v.Ball, v.AttackDir)
	}
}

// markTarget picks the nearest opponent inside markRange and stands between
// them and the ball.
func (b *Brain) markTarget(v View) bool {
	opp, d := nearest(v.Self, v.Opponents)
	if opp == nil || d >= markRange {
		return false
	}
	b.Target = opp.pos.add(v.Ball.sub(opp.pos).unit().scale(markGap))
	return true
}

// decideKeeper keeps the goalkeeper on a short leash: come for a loose ball
// in the box, otherwise guard the line on the ball side.
func (b *Brain) decideKeeper(v View) {
	own := goalCentre(-v.AttackDir)
	inBox := math.Abs(v.Ball.y-own.y) < penaltyDepth && math.Abs(v.Ball.x) < 20
	if inBox && v.Self.dist(v.Ball) < chaseRange && !v.CarrierOwn {
		b.State = StateChasingBall
		b.Target = v.Ball
		return
	}
	b.State = StatePositioning
	toBall := v.Ball.sub(own).unit()
	b.Target = own.add(toBall.scale(2.5))
}

// ChooseTrick picks a trick for an AI take-on. Five-star and four-star
// dribblers use the whole repertoire, three-star players the first four and
// everyone else only step-overs.
func ChooseTrick(skillMoves int, rng *rand.Rand) gesture.Trick {
	all := gesture.AllTricks()
	switch {
	case skillMoves >= 4:
		return all[rng.Intn(len(all))]
	case skillMoves >= 3:
		return all[rng.Intn(4)]
	default:
		return all[rng.Intn(2)]
	}
}

// PassQuality scores a pass from from to mate in [0,1]: 30% distance, 40%
// clear lane and 30% how close the receiver is to the goal being attacked.
func PassQuality(from vec, mate *Footballer, opponents []*Footballer, attackDir float64) float64 {
	d := from.dist(mate.pos)
	distScore := clamp01(1 - d/30)
	pathScore := 0.3
	if laneClear(from, mate.pos, opponents) {
		pathScore = 1
	}
	posScore := clamp01(1 - mate.pos.dist(goalCentre(attackDir))/50)
	return distScore*0.3 + pathScore*0.4 + posScore*0.3
}

func bestPassOption(v View) (*Footballer, float64) {
	var best *Footballer
	bestQ := 0.0
	for _, m := range v.Teammates {
		if m.sentOff || m.pos == v.Self {
			continue
		}
		if q := PassQuality(v.Self, m, v.Opponents, v.AttackDir); q > bestQ {
			best, bestQ = m, q
		}
	}
	return best, bestQ
}

// inShootingPosition: within shootRange of goal and facing it within
// shootAngle.
func inShootingPosition(self vec, heading float64, goal vec) bool {
	if self.dist(goal) > shootRange {
		return false
	}
	return angleBetween(heading, goal.sub(self).heading()) < shootAngle
}

// safeDirection heads for goal, bending away from the nearest opponent the
// closer they are.
func safeDirection(v View) vec {
	dir := goalCentre(v.AttackDir).sub(v.Self).unit()
	if opp, d := nearest(v.Self, v.Opponents); opp != nil && d < 6 {
		away := v.Self.sub(opp.pos).unit()
		w := (6 - d) / 6 * 1.5
		dir = dir.add(away.scale(w)).unit()
	}
	return dir
}

// shapeSpot slides the formation spot with the ball so the team keeps its
// shape as play moves.
func shapeSpot(slot, ball vec, attackDir float64) vec {
	shift := vec{ball.x * 0.2, ball.y * 0.4}
	// No one pushes more than 20m ahead of their slot.
	p := slot.add(shift)
	if p.y*attackDir > slot.y*attackDir+20 {
		p.y = slot.y + 20*attackDir
	}
	return clampToPitch(p)
}

func nearest(from vec, fs []*Footballer) (*Footballer, float64) {
	var best *Footballer
	bestD := math.MaxFloat64
	for _, f := range fs {
		if f.sentOff {
			continue
		}
		if d := from.dist(f.pos); d < bestD {
			best, bestD = f, d
		}
	}
	return best, bestD
}
