package game

import (
	"fmt"
	"math"
	"sort"

	"github.com/Garsondee/Pitch-Sense/internal/gesture"
	"github.com/Garsondee/Pitch-Sense/internal/player"
)

// Duel and discipline tuning.
const (
	tackleRange    = 1.5
	tackleCooldown = 1.0
	foulRate       = 0.08 // at Aggression 99
	yellowChance   = 0.3  // of a foul
	redChance      = 0.03 // of a foul, straight red
	trickRange     = 4.0
	trickBurst     = 1.5 // metres gained by a successful trick
	keeperReach    = 1.5
)

// rules applies everything that follows the ball moving: saves, goals, out
// of play, pickups and tackles.
func (m *Match) rules() {
	b := m.ball
	if b.flight == flightShot && !b.saveTaken {
		m.trySave()
	}
	for _, dir := range []float64{1, -1} {
		if segmentHits(b.prev, b.pos, goalMouth(dir)) {
			m.goal(dir)
			return
		}
	}
	if !onPitch(b.pos) {
		m.outOfPlay()
		return
	}
	if b.carrier == nil {
		m.pickups()
		return
	}
	m.tackles()
}

// --- Possession ---

// pickups gives a free ball to the closest footballer able to collect it.
func (m *Match) pickups() {
	cands := make([]*Footballer, 0, 4)
	for _, f := range m.all {
		if m.ball.canCollect(f) {
			cands = append(cands, f)
		}
	}
	if len(cands) == 0 {
		if m.ball.Speed() == 0 && m.pass != nil {
			m.resolvePass(nil)
		}
		return
	}
	sort.Slice(cands, func(i, j int) bool {
		return cands[i].pos.dist(m.ball.pos) < cands[j].pos.dist(m.ball.pos)
	})
	m.gainPossession(cands[0])
}

// gainPossession attaches the ball to f and settles any pass in flight.
func (m *Match) gainPossession(f *Footballer) {
	prev := m.ball.lastTouch
	m.resolvePass(f)
	if prev == nil || prev.side != f.side {
		m.lastPass = nil
	}
	m.ball.attach(f)
	m.log.Add(m.tick, f.label, f.side.String(), catBall, "possession", "on the ball", 0)
	if m.user && f.side == m.userSide {
		m.control = f
	}
}

// resolvePass settles the pending pass now that receiver has the ball, or
// as incomplete when receiver is nil.
func (m *Match) resolvePass(receiver *Footballer) {
	p := m.pass
	if p == nil {
		return
	}
	m.pass = nil
	switch {
	case receiver == nil:
		p.from.stats.RecordPass(false)
	case receiver.side == p.from.side && receiver != p.from:
		p.from.stats.RecordPass(true)
		m.lastPass = &completedPass{from: p.from, to: receiver, at: m.clock.Elapsed()}
		m.log.Add(m.tick, p.from.label, p.from.side.String(), catBall, "pass_complete", "to "+receiver.label, 0)
	case receiver.side != p.from.side:
		p.from.stats.RecordPass(false)
		receiver.stats.Interceptions++
		m.log.Add(m.tick, receiver.label, receiver.side.String(), catBall, "interception", "cut out "+p.from.label, 0)
	default:
		p.from.stats.RecordPass(false)
	}
}

// --- Passing and shooting ---

// passTo plays the ball toward where mate will be half a second from now.
// power 0 lets distance pick the weight.
func (m *Match) passTo(f, mate *Footballer, power float64) {
	target := mate.pos.add(mate.vel.scale(0.5))
	d := f.pos.dist(target)
	if power <= 0 {
		power = clamp(d/20, 0.2, 1)
	}
	spread := (1 - float64(f.attr().Passing)/99) * 0.15 / f.cond.AccuracyMul()
	dir := fromHeading(target.sub(m.ball.pos).heading() + m.rng.NormFloat64()*spread)
	m.ball.kick(f, dir, power*passSpeedPerPow, flightPass)
	m.pass = &pendingPass{from: f, to: mate}
	m.log.Add(m.tick, f.label, f.side.String(), catBall, "pass", fmt.Sprintf("to %s (%.0fm)", mate.label, d), power)
}

// shoot strikes at goal. A zero aim picks a spot inside the posts; power 0
// lets distance pick it.
func (m *Match) shoot(f *Footballer, aim vec, power float64) {
	goal := goalCentre(m.attackDir(f.side))
	if aim == (vec{}) {
		aim = vec{(m.rng.Float64()*2 - 1) * (goalHalfWidth - 0.5), goal.y}
	}
	d := f.pos.dist(goal)
	if power <= 0 {
		power = clamp(d/25, 0.5, 1)
	}
	miss := (1 - float64(f.attr().Technique)/100) / f.cond.AccuracyMul()
	aim.x += (m.rng.Float64()*2 - 1) * miss * goalHalfWidth * 1.5

	onTarget := math.Abs(aim.x) < goalHalfWidth
	f.stats.RecordShot(onTarget)
	m.ball.kick(f, aim.sub(m.ball.pos), power*shotSpeedPerPow, flightShot)
	m.ball.shotPower = power
	m.resolvePass(nil)
	m.log.Add(m.tick, f.label, f.side.String(), catBall, "shot", fmt.Sprintf("%.0fm on_target=%v", d, onTarget), power)
	m.commentary.Add(CommentaryLine{Minute: m.minute(), Label: f.label, Side: f.side, Message: fmt.Sprintf("shoots from %.0fm", d)})
}

// trySave gives the defending keeper one attempt at a shot within reach.
func (m *Match) trySave() {
	shooter := m.ball.origin
	if shooter == nil {
		return
	}
	gk := m.side(shooter.side.Opponent()).Keeper()
	if gk == nil {
		return
	}
	a := gk.attr()
	reach := keeperReach + float64(a.Diving)/99*keeperReach
	if gk.pos.dist(m.ball.pos) > reach {
		return
	}
	m.ball.saveTaken = true
	rating := float64(a.Diving+a.Reflexes+a.Handling) / 3
	p := clamp(0.25+0.55*rating/99-0.15*m.ball.shotPower, 0.05, 0.9)
	if m.rng.Float64() >= p {
		return
	}
	gk.stats.Saves++
	m.ball.attach(gk)
	m.record(gk.side, gk, "save", "saves from "+shooter.label)
	if m.user && gk.side == m.userSide {
		m.control = gk
	}
}

// --- Goals and restarts ---

// goal credits the side attacking the goal at end dir.
func (m *Match) goal(dir float64) {
	scoring := SideHome
	if m.attackDir(SideHome) != dir {
		scoring = SideAway
	}
	m.resolvePass(nil)
	scorer := m.ball.lastTouch
	ev := GoalEvent{Minute: m.minute(), Side: scoring, Scorer: scorer}
	m.score[scoring]++
	ev.Home, ev.Away = m.score[SideHome], m.score[SideAway]

	switch {
	case scorer == nil:
		m.record(scoring, nil, "goal", fmt.Sprintf("GOAL! %d-%d", ev.Home, ev.Away))
	case scorer.side != scoring:
		ev.OwnGoal = true
		m.record(scoring, scorer, "own_goal", fmt.Sprintf("own goal by %s, %d-%d", scorer.label, ev.Home, ev.Away))
	default:
		scorer.stats.Goals++
		scorer.cond.Boost(0.2)
		if lp := m.lastPass; lp != nil && lp.to == scorer && lp.from.side == scoring &&
			m.clock.Elapsed()-lp.at <= assistWindow*m.clock.scale {
			lp.from.stats.Assists++
			ev.Assister = lp.from
		}
		detail := fmt.Sprintf("GOAL! %s scores, %d-%d", scorer.label, ev.Home, ev.Away)
		if ev.Assister != nil {
			detail += " (assist " + ev.Assister.label + ")"
		}
		m.record(scoring, scorer, "goal", detail)
	}
	for _, fn := range m.onGoal {
		fn(ev)
	}
	m.kickoff(scoring.Opponent())
}

// outOfPlay restarts with a throw-in, goal kick or corner for the side that
// did not touch the ball last.
func (m *Match) outOfPlay() {
	m.resolvePass(nil)
	b := m.ball
	restartSide := SideHome
	if b.lastTouch != nil {
		restartSide = b.lastTouch.side.Opponent()
	}
	spot := clampToPitch(b.pos)
	kind := "throw_in"
	if math.Abs(b.pos.y) > pitchHalfLength {
		end := math.Copysign(1, b.pos.y)
		defending := SideHome
		if m.attackDir(SideHome) == end {
			defending = SideAway
		}
		if restartSide == defending {
			kind = "goal_kick"
			spot = vec{0, end * (pitchHalfLength - 6)}
		} else {
			kind = "corner"
			spot = vec{math.Copysign(pitchHalfWidth-0.5, b.pos.x), end * (pitchHalfLength - 0.5)}
		}
	} else {
		spot.x = math.Copysign(pitchHalfWidth-0.3, b.pos.x)
	}

	ts := m.side(restartSide)
	taker := m.nearestTo(ts.Active(), spot)
	if kind == "goal_kick" {
		if gk := ts.Keeper(); gk != nil {
			taker = gk
		}
	}
	b.placeAt(spot)
	if taker == nil {
		return
	}
	taker.pos = spot
	taker.aware.Heading = vec{0, m.attackDir(restartSide)}.heading()
	b.attach(taker)
	m.log.Add(m.tick, taker.label, restartSide.String(), catBall, kind, "restart", 0)
	if m.user && restartSide == m.userSide {
		m.control = taker
	}
}

// --- Duels ---

// tackles lets opponents close to the carrier challenge for the ball.
func (m *Match) tackles() {
	c := m.ball.carrier
	for _, o := range m.side(c.side.Opponent()).Active() {
		if o.tackleCooldown > 0 || o.pos.dist(c.pos) > tackleRange {
			continue
		}
		if o != m.control && o.brain.State != StatePressing && o.brain.State != StateChasingBall && o.brain.State != StateMarking {
			continue
		}
		o.tackleCooldown = tackleCooldown
		if m.foul(o, c) {
			return
		}
		p := clamp(0.3+float64(o.attr().Tackling-c.attr().BallControl)/200, 0.05, 0.7)
		if m.rng.Float64() < p {
			o.stats.RecordTackle(true)
			c.stats.DuelsLost++
			m.log.Add(m.tick, o.label, o.side.String(), catBall, "tackle", "won from "+c.label, p)
			m.lastPass = nil
			m.ball.attach(o)
			if m.user && o.side == m.userSide {
				m.control = o
			}
			return
		}
		o.stats.RecordTackle(false)
		c.stats.DuelsWon++
		m.log.Add(m.tick, o.label, o.side.String(), catBall, "tackle", "missed "+c.label, p)
	}
}

// foul rolls whether tackler fouls carrier and books them. The carrier keeps
// the ball for the free kick.
func (m *Match) foul(tackler, carrier *Footballer) bool {
	if m.rng.Float64() >= float64(tackler.attr().Aggression)/99*foulRate {
		return false
	}
	tackler.stats.Fouls++
	m.log.Add(m.tick, tackler.label, tackler.side.String(), catMatch, "foul", "on "+carrier.label, 0)
	roll := m.rng.Float64()
	switch {
	case roll < redChance:
		m.sendOff(tackler, "straight red")
	case roll < redChance+yellowChance:
		tackler.yellowCards++
		tackler.stats.YellowCards++
		if tackler.yellowCards >= 2 {
			m.sendOff(tackler, "second yellow")
		} else {
			m.record(tackler.side, tackler, "yellow", "booked for a foul on "+carrier.label)
		}
	}
	for _, o := range m.side(tackler.side).Active() {
		if o.pos.dist(carrier.pos) < 9.15 {
			o.tackleCooldown = math.Max(o.tackleCooldown, 2)
		}
	}
	return true
}

func (m *Match) sendOff(f *Footballer, why string) {
	f.sentOff = true
	f.stats.RedCards++
	f.vel = vec{}
	m.record(f.side, f, "red", "sent off, "+why)
	if f == m.control {
		m.control = m.nearestTo(m.side(f.side).Active(), m.ball.pos)
	}
}

// attemptTrick resolves a take-on against the nearest opponent. With nobody
// close the trick always comes off.
func (m *Match) attemptTrick(f *Footballer, t gesture.Trick, user bool) bool {
	var opps []*Footballer
	for _, o := range m.side(f.side.Opponent()).Active() {
		if o.pos.dist(f.pos) < trickRange {
			opps = append(opps, o)
		}
	}
	def, _ := nearest(f.pos, opps)
	a := f.attr()
	success := true
	if def != nil {
		skill := float64(a.Dribbling+a.Agility)/2 + float64(a.SkillMoves)*4
		p := clamp(0.45+(skill-float64(def.attr().Tackling))/150*f.cond.AccuracyMul(), 0.1, 0.9)
		success = m.rng.Float64() < p
		f.stats.RecordDribble(success)
	}
	f.stats.TricksPerformed++

	if success {
		f.cond.Boost(0.05)
		f.pos = clampToPitch(f.pos.add(f.facing().scale(trickBurst)))
		m.ball.pos = f.pos.add(f.facing().scale(carryOffset))
		if def != nil {
			def.tackleCooldown = math.Max(def.tackleCooldown, 1.5)
		}
	} else {
		f.cond.Boost(-0.05)
		def.stats.DuelsWon++
		m.ball.attach(def)
		if m.user && def.side == m.userSide {
			m.control = def
		}
	}
	m.log.Add(m.tick, f.label, f.side.String(), catTrick, t.String(), fmt.Sprintf("success=%v", success), 0)
	if success {
		m.commentary.Add(CommentaryLine{Minute: m.minute(), Label: f.label, Side: f.side, Message: "beats their marker with a " + t.String()})
	}
	ev := TrickEvent{Minute: m.minute(), Player: f, Trick: t, Success: success, User: user}
	for _, fn := range m.onTrick {
		fn(ev)
	}
	return success
}

// PlayerStats returns every footballer's stats in squad order, home first.
func (m *Match) PlayerStats() []player.MatchStats {
	out := make([]player.MatchStats, len(m.all))
	for i, f := range m.all {
		out[i] = f.stats
	}
	return out
}
