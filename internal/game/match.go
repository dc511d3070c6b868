package game

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/Garsondee/Pitch-Sense/internal/gesture"
	"github.com/Garsondee/Pitch-Sense/internal/kit"
	"github.com/Garsondee/Pitch-Sense/internal/league"
	"github.com/Garsondee/Pitch-Sense/internal/player"
)

const (
	halfTimeBreak = 3.0 // real seconds between halves
	restartPause  = 1.0 // real seconds players hold still after a goal
	assistWindow  = 10  // seconds of play a completed pass stays assist-worthy
)

// TeamSide is one team as it takes the field.
type TeamSide struct {
	Team      league.Team
	Side      Side
	Formation player.Formation
	Kit       kit.Kit
	Players   []*Footballer
}

// Active returns the footballers still on the pitch.
func (t *TeamSide) Active() []*Footballer {
	out := make([]*Footballer, 0, len(t.Players))
	for _, f := range t.Players {
		if !f.sentOff {
			out = append(out, f)
		}
	}
	return out
}

// Keeper returns the goalkeeper, or nil when they have been sent off.
func (t *TeamSide) Keeper() *Footballer {
	for _, f := range t.Players {
		if f.role == player.Goalkeeper && !f.sentOff {
			return f
		}
	}
	return nil
}

// MatchEvent is a headline moment kept for the report.
type MatchEvent struct {
	Minute int
	Kind   string // kickoff, goal, own_goal, save, yellow, red, half_time, full_time
	Side   Side
	Player string
	Detail string
}

// GoalEvent is delivered to goal listeners.
type GoalEvent struct {
	Minute   int
	Side     Side // side credited with the goal
	Scorer   *Footballer
	Assister *Footballer // nil when unassisted
	OwnGoal  bool
	Home     int
	Away     int
}

// TrickEvent is delivered to trick listeners.
type TrickEvent struct {
	Minute  int
	Player  *Footballer
	Trick   gesture.Trick
	Success bool
	User    bool
}

type pendingPass struct {
	from, to *Footballer
}

type completedPass struct {
	from, to *Footballer
	at       float64 // clock seconds
}

// Match runs one football match on a fixed 60 Hz tick.
type Match struct {
	ID   uuid.UUID
	Mode Mode

	home, away *TeamSide
	ball       *Ball
	clock      *MatchClock
	log        *SimLog
	commentary *Commentary
	rng        *rand.Rand

	tick       int
	score      [2]int
	possession [2]int // ticks on the ball per side
	reporter   *MatchReporter
	heat       *Heatmap
	clockScale float64
	kitsSet    bool
	formations [2]player.Formation
	homeTeam   league.Team
	awayTeam   league.Team

	all      []*Footballer
	pressers map[*Footballer]bool
	pass     *pendingPass
	lastPass *completedPass
	events   []MatchEvent
	shouts   []*Shout
	interval float64 // half-time break remaining
	freeze   float64 // restart pause remaining

	user     bool
	userSide Side
	control  *Footballer
	moveDir  vec
	moveTTL  float64
	sprintOn float64

	onGoal  []func(GoalEvent)
	onTrick []func(TrickEvent)
}

// matchOptionKind controls the pass in which an option is applied.
type matchOptionKind int

const (
	matchOptSetup matchOptionKind = iota // seed, mode, verbose, clock scale
	matchOptTeams                        // teams, formations, kits
	matchOptPost                         // user control, applied after squads exist
)

// MatchOption configures a Match during construction.
type MatchOption struct {
	kind matchOptionKind
	fn   func(*Match)
}

// WithSeed makes the match deterministic.
func WithSeed(seed int64) MatchOption {
	return MatchOption{matchOptSetup, func(m *Match) {
		m.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}}
}

// WithMode sets the mode, which decides team size and half length.
func WithMode(mode Mode) MatchOption {
	return MatchOption{matchOptSetup, func(m *Match) { m.Mode = mode }}
}

// WithVerbose records per-decision entries in the SimLog.
func WithVerbose(v bool) MatchOption {
	return MatchOption{matchOptSetup, func(m *Match) { m.log = NewSimLog(v) }}
}

// WithClockScale runs scale match seconds per real second. Headless runs use
// large values to play a full match quickly.
func WithClockScale(scale float64) MatchOption {
	return MatchOption{matchOptSetup, func(m *Match) { m.clockScale = scale }}
}

// WithHomeTeam sets the home club.
func WithHomeTeam(t league.Team) MatchOption {
	return MatchOption{matchOptTeams, func(m *Match) { m.homeTeam = t }}
}

// WithAwayTeam sets the away club.
func WithAwayTeam(t league.Team) MatchOption {
	return MatchOption{matchOptTeams, func(m *Match) { m.awayTeam = t }}
}

// WithFormation overrides a side's formation.
func WithFormation(side Side, f player.Formation) MatchOption {
	return MatchOption{matchOptTeams, func(m *Match) { m.formations[side] = f + 1 }}
}

// WithKits sets both kits. Clashing kits send the away side out in its third.
func WithKits(home, away kit.Kit) MatchOption {
	return MatchOption{matchOptPost, func(m *Match) {
		m.home.Kit, m.away.Kit = home, away
		m.kitsSet = true
	}}
}

// WithUserControl hands one footballer of side to touch input.
func WithUserControl(side Side) MatchOption {
	return MatchOption{matchOptPost, func(m *Match) {
		m.user = true
		m.userSide = side
	}}
}

// NewMatch builds a match from opts in three ordered passes: setup, teams,
// then anything that needs the squads on the pitch.
func NewMatch(opts ...MatchOption) *Match {
	demo := league.DemoTeams()
	m := &Match{
		ID:         uuid.New(),
		Mode:       DefaultMode(),
		log:        NewSimLog(false),
		commentary: NewCommentary(),
		rng:        rand.New(rand.NewSource(1)), // #nosec G404 -- default seed
		clockScale: 1,
		homeTeam:   demo[0],
		awayTeam:   demo[1],
		pressers:   map[*Footballer]bool{},
		reporter:   NewMatchReporter(reportWindow),
		heat:       NewHeatmap(),
	}
	for _, o := range opts {
		if o.kind == matchOptSetup {
			o.fn(m)
		}
	}
	for _, o := range opts {
		if o.kind == matchOptTeams {
			o.fn(m)
		}
	}
	m.clock = NewMatchClock(m.Mode.HalfMinutes, m.clockScale)
	m.home = m.buildSide(SideHome, m.homeTeam)
	m.away = m.buildSide(SideAway, m.awayTeam)
	m.all = append(append([]*Footballer{}, m.home.Players...), m.away.Players...)
	m.ball = NewBall(vec{})
	m.assignKits()
	for _, o := range opts {
		if o.kind == matchOptPost {
			o.fn(m)
		}
	}
	if m.kitsSet {
		m.assignKits()
	}
	m.kickoff(SideHome)
	if m.user {
		m.control = m.nearestTo(m.side(m.userSide).Active(), m.ball.pos)
	}
	return m
}

// buildSide generates a squad for t, nudged toward the team's unit ratings.
func (m *Match) buildSide(side Side, t league.Team) *TeamSide {
	t.Normalize()
	form := t.Formation
	if m.formations[side] != 0 {
		form = m.formations[side] - 1
	}
	ts := &TeamSide{Team: t, Side: side, Formation: form}
	lineup := lineupFor(form, m.Mode.PlayersPerSide)
	slots := formationSlots(lineup)
	for i, pos := range lineup {
		prof := player.Generate(m.rng, fmt.Sprintf("%s #%d", t.Short, i+1), t.ID, pos)
		prof.Number = i + 1
		unit := t.Midfield
		switch {
		case pos == player.Goalkeeper || pos.IsDefender():
			unit = t.Defense
		case pos.IsAttacker():
			unit = t.Attack
		}
		keeper := pos == player.Goalkeeper
		prof.Attributes.Shift(unit-prof.Attributes.Overall(pos), keeper)
		f := NewFootballer(int(side)*100+i, side, prof, pos, vec{}, 0)
		f.slot = slots[i]
		ts.Players = append(ts.Players, f)
	}
	return ts
}

// assignKits falls back to defaults and resolves a primary colour clash by
// switching the away side to its third kit.
func (m *Match) assignKits() {
	if m.home.Kit.Primary == "" {
		m.home.Kit, _ = kit.Default(kit.Home)
	}
	if m.away.Kit.Primary == "" {
		m.away.Kit, _ = kit.Default(kit.Away)
	}
	if kit.Clashes(m.home.Kit, m.away.Kit) {
		m.away.Kit, _ = kit.Default(kit.Third)
	}
	m.home.Kit.TeamID = m.home.Team.ID
	m.away.Kit.TeamID = m.away.Team.ID
}

// --- Accessors ---

func (m *Match) Tick() int                  { return m.tick }
func (m *Match) Clock() *MatchClock         { return m.clock }
func (m *Match) Ball() *Ball                { return m.ball }
func (m *Match) Log() *SimLog               { return m.log }
func (m *Match) Commentary() *Commentary    { return m.commentary }
func (m *Match) Home() *TeamSide            { return m.home }
func (m *Match) Away() *TeamSide            { return m.away }
func (m *Match) Footballers() []*Footballer { return m.all }
func (m *Match) Events() []MatchEvent       { return m.events }
func (m *Match) Controlled() *Footballer    { return m.control }

// Score returns home and away goals.
func (m *Match) Score() (home, away int) { return m.score[SideHome], m.score[SideAway] }

// PossessionPct is side's share of the ball in percent; 50 before anyone
// has had it.
func (m *Match) PossessionPct(s Side) float64 {
	total := m.possession[SideHome] + m.possession[SideAway]
	if total == 0 {
		return 50
	}
	return float64(m.possession[s]) / float64(total) * 100
}

// Reporter returns the windowed behaviour reporter.
func (m *Match) Reporter() *MatchReporter { return m.reporter }

// Heat returns the positional heatmap.
func (m *Match) Heat() *Heatmap { return m.heat }

// Over reports whether the final whistle has gone.
func (m *Match) Over() bool { return m.clock.State() == ClockEnded }

// ResultText is the scoreline banner using the club names.
func (m *Match) ResultText() string {
	return ResultText(m.home.Team.Name, m.away.Team.Name, m.score[SideHome], m.score[SideAway])
}

// OnGoal registers a goal listener.
func (m *Match) OnGoal(fn func(GoalEvent)) { m.onGoal = append(m.onGoal, fn) }

// OnTrick registers a trick listener.
func (m *Match) OnTrick(fn func(TrickEvent)) { m.onTrick = append(m.onTrick, fn) }

func (m *Match) side(s Side) *TeamSide {
	if s == SideAway {
		return m.away
	}
	return m.home
}

// attackDir is +1 when side attacks the north goal. Home attacks north in
// the first half.
func (m *Match) attackDir(s Side) float64 {
	d := m.clock.HalfSign()
	if s == SideAway {
		d = -d
	}
	return d
}

// --- Tick loop ---

// Step advances the match by one tick.
func (m *Match) Step() {
	m.tick++
	switch m.clock.State() {
	case ClockPreGame:
		m.clock.Start()
		m.record(SideHome, nil, "kickoff", m.home.Team.Name+" get us underway")
	case ClockPaused, ClockEnded:
		return
	case ClockHalfTime:
		m.interval -= dt
		if m.interval <= 0 {
			m.clock.StartSecondHalf()
			m.kickoff(SideAway)
			m.record(SideAway, nil, "kickoff", "second half underway")
		}
		return
	}

	if m.freeze > 0 {
		m.freeze -= dt
		for _, f := range m.all {
			f.stand()
		}
	} else {
		m.sense()
		m.decide()
		m.act()
	}
	m.ball.step(dt)
	m.rules()
	m.tickStats()
	m.updateShouts()

	switch m.clock.Advance(dt) {
	case ClockHalfTimeReached:
		m.interval = halfTimeBreak
		m.resolvePass(nil)
		m.record(SideHome, nil, "half_time", fmt.Sprintf("half time %d-%d", m.score[SideHome], m.score[SideAway]))
	case ClockFullTimeReached:
		m.resolvePass(nil)
		m.record(SideHome, nil, "full_time", m.ResultText())
	}
}

// RunToEnd plays ticks until full time or maxTicks, returning ticks played.
func (m *Match) RunToEnd(maxTicks int) int {
	n := 0
	for !m.Over() && n < maxTicks {
		m.Step()
		n++
	}
	return n
}

// TogglePause pauses or resumes the clock.
func (m *Match) TogglePause() { m.clock.TogglePause() }

// sense refreshes awareness and the pressing assignment.
func (m *Match) sense() {
	for _, f := range m.all {
		if f.sentOff {
			continue
		}
		f.aware.MaxRange = awarenessRadius
		f.aware.MaxRange = f.aware.DegradeRange(f.cond.Fatigue)
		f.aware.Scan(f.pos.x, f.pos.y, m.all)
	}

	clear(m.pressers)
	c := m.ball.carrier
	if c == nil {
		return
	}
	var chasers []*Footballer
	for _, f := range m.side(c.side.Opponent()).Active() {
		if f.role != player.Goalkeeper {
			chasers = append(chasers, f)
		}
	}
	sort.Slice(chasers, func(i, j int) bool {
		return chasers[i].pos.dist(c.pos) < chasers[j].pos.dist(c.pos)
	})
	for i := 0; i < len(chasers) && i < pressers; i++ {
		m.pressers[chasers[i]] = true
	}
}

// view builds the decision snapshot for f.
func (m *Match) view(f *Footballer) View {
	c := m.ball.carrier
	v := View{
		Self:       f.pos,
		Heading:    f.aware.Heading,
		Role:       f.role,
		AttackDir:  m.attackDir(f.side),
		Ball:       m.ball.pos,
		HasBall:    c == f,
		IsPresser:  m.pressers[f],
		SkillMoves: f.attr().SkillMoves,
	}
	v.Slot = slotToWorld(f.slot, v.AttackDir)
	if c != nil && c != f {
		v.Carrier = c
		v.CarrierOwn = c.side == f.side
	}
	for _, o := range m.side(f.side).Active() {
		if o != f {
			v.Teammates = append(v.Teammates, o)
		}
	}
	for _, o := range f.aware.Nearby {
		if o.side != f.side {
			v.Opponents = append(v.Opponents, o)
		}
	}
	return v
}

func (m *Match) decide() {
	for _, f := range m.all {
		if f.sentOff || f == m.control {
			continue
		}
		if !f.brain.Due(dt) {
			continue
		}
		old := f.brain.State
		next := f.brain.Decide(m.view(f), m.rng)
		if next != old {
			m.log.AddVerbose(m.tick, f.label, f.side.String(), catAI, "state_change", old.String()+" → "+next.String(), 0)
		}
	}
}

func (m *Match) act() {
	for _, f := range m.all {
		if f.sentOff {
			continue
		}
		if f.tackleCooldown > 0 {
			f.tackleCooldown -= dt
		}
		if f == m.control {
			m.actUser(f)
			continue
		}
		m.actAI(f)
	}
}

func (m *Match) actAI(f *Footballer) {
	b := &f.brain
	hasBall := m.ball.carrier == f
	f.sprinting = false
	switch b.State {
	case StatePassing:
		if hasBall && b.PassTo != nil && !b.PassTo.sentOff {
			m.passTo(f, b.PassTo, 0)
			b.State = StatePositioning
			return
		}
	case StateShooting:
		if hasBall {
			m.shoot(f, vec{}, 0)
			b.State = StatePositioning
			return
		}
	case StateDribbling:
		if hasBall && b.Trick != gesture.None {
			m.attemptTrick(f, b.Trick, false)
			b.Trick = gesture.None
		}
		if m.ball.carrier == f {
			f.moveToward(f.pos.add(safeDirection(m.view(f)).scale(5)), dribbleSpeedMul)
			return
		}
	case StateHoldingBall:
		if hasBall {
			f.moveToward(b.Target, dribbleSpeedMul)
			return
		}
	case StateChasingBall:
		f.sprinting = true
		f.moveToward(m.ball.pos, 1)
		return
	case StatePressing:
		if c := m.ball.carrier; c != nil && c.side != f.side {
			f.sprinting = true
			f.moveToward(c.pos, 1)
			return
		}
	case StateMarking, StateSupporting, StatePositioning:
		if f.pos.dist(b.Target) < arriveRadius {
			f.aware.UpdateHeading(m.ball.pos.sub(f.pos).heading(), turnRate)
			f.stand()
			return
		}
		f.moveToward(b.Target, 0.8)
		return
	}
	f.stand()
}

// --- Listeners and records ---

func (m *Match) minute() int { return m.clock.Minute() }

// record appends a headline event to the log, the commentary and the report.
func (m *Match) record(side Side, f *Footballer, kind, detail string) {
	label, team := "--", "--"
	if f != nil {
		label, team = f.label, f.side.String()
	}
	m.log.Add(m.tick, label, team, catMatch, kind, detail, float64(m.minute()))
	m.commentary.Add(CommentaryLine{Minute: m.minute(), Label: label, Side: side, Neutral: f == nil, Message: detail})
	m.events = append(m.events, MatchEvent{Minute: m.minute(), Kind: kind, Side: side, Player: label, Detail: detail})
}

// nearestTo returns the footballer in fs closest to p.
func (m *Match) nearestTo(fs []*Footballer, p vec) *Footballer {
	f, _ := nearest(p, fs)
	return f
}

// tickStats adds possession time, feeds the reporter and heatmap and samples
// condition into the log.
func (m *Match) tickStats() {
	if c := m.ball.carrier; c != nil {
		c.stats.PossessionTime += dt * m.clock.scale
		m.possession[c.side]++
	}
	m.reporter.Collect(m)
	m.heat.Update(m.all, m.ball.pos)
	if m.tick%(tickRate*10) != 0 {
		return
	}
	for _, f := range m.all {
		if !f.sentOff {
			m.log.AddVerbose(m.tick, f.label, f.side.String(), catStats, "fatigue", fmt.Sprintf("%.2f", f.cond.Fatigue), f.cond.Fatigue)
		}
	}
}

// kickoff lines both sides up in their own halves and gives the ball to the
// most advanced central player of side.
func (m *Match) kickoff(side Side) {
	m.resolvePass(nil)
	m.lastPass = nil
	for _, ts := range []*TeamSide{m.home, m.away} {
		dir := m.attackDir(ts.Side)
		for _, f := range ts.Active() {
			f.pos = kickoffSpot(f.slot, dir)
			f.vel = vec{}
			f.aware.Heading = vec{0, dir}.heading()
			f.brain = Brain{State: StatePositioning}
		}
	}
	m.ball.placeAt(vec{})
	taker := m.nearestTo(m.side(side).Active(), vec{})
	if taker != nil {
		taker.pos = vec{0, -0.8 * m.attackDir(side)}
		m.ball.attach(taker)
		m.log.Add(m.tick, taker.label, side.String(), catBall, "possession", "kickoff", 0)
	}
	m.freeze = restartPause
}

// PlayFixture adapts the engine to a league.PlayFunc: each fixture is a full
// match between the two clubs at clockScale.
func PlayFixture(clockScale float64) league.PlayFunc {
	return func(rng *rand.Rand, home, away league.Team) (int, int) {
		m := NewMatch(
			WithSeed(rng.Int63()),
			WithClockScale(clockScale),
			WithHomeTeam(home),
			WithAwayTeam(away),
		)
		m.RunToEnd(math.MaxInt32)
		return m.Score()
	}
}
