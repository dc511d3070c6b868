package game

// TestMatch is a headless match harness for tests. It steps the same Match
// the ebiten shell drives and adds helpers to stage scenarios.
type TestMatch struct {
	*Match
	SimLog *SimLog
}

// NewTestMatch builds a match seeded with 1 unless opts set a seed.
func NewTestMatch(opts ...MatchOption) *TestMatch {
	all := append([]MatchOption{WithSeed(1)}, opts...)
	m := NewMatch(all...)
	return &TestMatch{Match: m, SimLog: m.log}
}

// SkipKickoff starts the clock and drops the kickoff pause so scenario
// tests begin in open play.
func (tm *TestMatch) SkipKickoff() *TestMatch {
	tm.clock.Start()
	tm.freeze = 0
	return tm
}

// RunTicks advances the match n ticks.
func (tm *TestMatch) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tm.Step()
	}
}

// RunUntil advances up to maxTicks, stopping as soon as predicate holds.
// It returns the tick at which the predicate was satisfied, or -1.
func (tm *TestMatch) RunUntil(predicate func(*TestMatch) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		tm.Step()
		if predicate(tm) {
			return tm.tick
		}
	}
	return -1
}

// Player finds a footballer by label ("H10", "A1"), or nil.
func (tm *TestMatch) Player(label string) *Footballer {
	for _, f := range tm.all {
		if f.label == label {
			return f
		}
	}
	return nil
}

// Only sends off everyone except the listed labels, leaving a quiet pitch.
func (tm *TestMatch) Only(labels ...string) *TestMatch {
	keep := map[string]bool{}
	for _, l := range labels {
		keep[l] = true
	}
	for _, f := range tm.all {
		if !keep[f.label] {
			f.sentOff = true
		}
	}
	if tm.control != nil && tm.control.sentOff {
		tm.control = tm.nearestTo(tm.side(tm.userSide).Active(), tm.ball.pos)
	}
	return tm
}

// Place moves a footballer to (x,y) facing heading.
func (tm *TestMatch) Place(label string, x, y, heading float64) *Footballer {
	f := tm.Player(label)
	if f == nil {
		return nil
	}
	f.pos = vec{x, y}
	f.vel = vec{}
	f.aware.Heading = heading
	return f
}

// GiveBall hands the ball to label and, under user control, takes control
// of them.
func (tm *TestMatch) GiveBall(label string) {
	f := tm.Player(label)
	if f == nil {
		return
	}
	tm.pass = nil
	tm.ball.attach(f)
	if tm.user && f.side == tm.userSide {
		tm.control = f
	}
}

// PlaceBall drops a dead ball at (x,y).
func (tm *TestMatch) PlaceBall(x, y float64) {
	tm.pass = nil
	tm.ball.placeAt(vec{x, y})
}

// FootballerSnapshot is a lightweight copy of one footballer.
type FootballerSnapshot struct {
	Label   string
	Side    Side
	X, Y    float64
	State   BrainState
	HasBall bool
	Fatigue float64
}

// MatchSnapshot captures the match at one tick.
type MatchSnapshot struct {
	Tick        int
	Home, Away  int
	Clock       string
	Footballers []FootballerSnapshot
}

// Snapshot returns the current state of the match.
func (tm *TestMatch) Snapshot() MatchSnapshot {
	h, a := tm.Score()
	snap := MatchSnapshot{Tick: tm.tick, Home: h, Away: a, Clock: tm.clock.Display()}
	for _, f := range tm.all {
		if f.sentOff {
			continue
		}
		snap.Footballers = append(snap.Footballers, FootballerSnapshot{
			Label:   f.label,
			Side:    f.side,
			X:       f.pos.x,
			Y:       f.pos.y,
			State:   f.brain.State,
			HasBall: tm.ball.carrier == f,
			Fatigue: f.cond.Fatigue,
		})
	}
	return snap
}
