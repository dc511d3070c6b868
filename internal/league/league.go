package league

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Result is a played match.
type Result struct {
	ID        uuid.UUID
	Season    int
	Matchday  int
	Home      int
	Away      int
	HomeGoals int
	AwayGoals int
	PlayedAt  time.Time
}

// Winner returns the winning team id, or 0 for a draw.
func (r Result) Winner() int {
	switch {
	case r.HomeGoals > r.AwayGoals:
		return r.Home
	case r.AwayGoals > r.HomeGoals:
		return r.Away
	}
	return 0
}

// Simulation constants.
const (
	homeAdvantage = 3
	drawChance    = 0.25
)

// SimulateScore draws a scoreline from the team ratings. The home side gets
// a small rating bonus; a quarter of the probability mass goes to draws.
func SimulateScore(rng *rand.Rand, home, away Team) (int, int) {
	hs := float64(home.Overall + homeAdvantage)
	as := float64(away.Overall)
	homeWin := hs / (hs + as)
	// Keep some room for away wins when the home side is far stronger.
	if homeWin > 1-drawChance {
		homeWin = 1 - drawChance
	}

	roll := rng.Float64()
	switch {
	case roll < homeWin:
		h := 1 + rng.Intn(3)
		return h, rng.Intn(h)
	case roll < homeWin+drawChance:
		g := rng.Intn(3)
		return g, g
	default:
		a := 1 + rng.Intn(3)
		return rng.Intn(a), a
	}
}

// League is one season of a round-robin competition.
type League struct {
	Name   string
	Season int

	order     []int
	teams     map[int]Team
	fixtures  []Fixture
	results   []Result
	table     map[int]*Standing
	matchday  int
	listeners []func(Result)
}

// New schedules a season for teams.
func New(name string, season int, teams []Team) (*League, error) {
	if len(teams) < 2 {
		return nil, ErrTooFewTeams
	}
	l := &League{
		Name:     name,
		Season:   season,
		teams:    make(map[int]Team, len(teams)),
		table:    make(map[int]*Standing, len(teams)),
		matchday: 1,
	}
	for _, t := range teams {
		if _, dup := l.teams[t.ID]; dup {
			return nil, fmt.Errorf("team %d: %w", t.ID, ErrDuplicateID)
		}
		t.Normalize()
		l.teams[t.ID] = t
		l.order = append(l.order, t.ID)
		l.table[t.ID] = &Standing{TeamID: t.ID, Name: t.Name}
	}
	fx, err := Schedule(l.order)
	if err != nil {
		return nil, err
	}
	l.fixtures = fx
	return l, nil
}

// OnResult registers a callback fired after every registered result.
func (l *League) OnResult(fn func(Result)) {
	l.listeners = append(l.listeners, fn)
}

// Teams returns the teams in entry order.
func (l *League) Teams() []Team {
	out := make([]Team, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.teams[id])
	}
	return out
}

// Team looks up a team by id.
func (l *League) Team(id int) (Team, bool) {
	t, ok := l.teams[id]
	return t, ok
}

// Fixtures returns the full schedule.
func (l *League) Fixtures() []Fixture {
	return append([]Fixture(nil), l.fixtures...)
}

// FixturesFor returns the fixtures of one matchday.
func (l *League) FixturesFor(matchday int) []Fixture {
	var out []Fixture
	for _, f := range l.fixtures {
		if f.Matchday == matchday {
			out = append(out, f)
		}
	}
	return out
}

// Matchdays is the number of matchdays in the season.
func (l *League) Matchdays() int {
	n := len(l.order)
	if n%2 == 1 {
		n++
	}
	return 2 * (n - 1)
}

// CurrentMatchday is the next matchday to be simulated.
func (l *League) CurrentMatchday() int { return l.matchday }

// Results returns every registered result in order.
func (l *League) Results() []Result {
	return append([]Result(nil), l.results...)
}

// RegisterResult records a played match and updates the table. A matching
// unplayed fixture is marked as played.
func (l *League) RegisterResult(home, away, homeGoals, awayGoals int) (Result, error) {
	if home == away {
		return Result{}, ErrSameTeam
	}
	hs, ok := l.table[home]
	if !ok {
		return Result{}, fmt.Errorf("home %d: %w", home, ErrUnknownTeam)
	}
	as, ok := l.table[away]
	if !ok {
		return Result{}, fmt.Errorf("away %d: %w", away, ErrUnknownTeam)
	}
	if homeGoals < 0 || awayGoals < 0 {
		return Result{}, ErrBadScore
	}

	md := l.matchday
	for i := range l.fixtures {
		f := &l.fixtures[i]
		if !f.Played && f.Home == home && f.Away == away {
			f.Played = true
			md = f.Matchday
			break
		}
	}

	hs.record(homeGoals, awayGoals)
	as.record(awayGoals, homeGoals)
	r := Result{
		ID:        uuid.New(),
		Season:    l.Season,
		Matchday:  md,
		Home:      home,
		Away:      away,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
		PlayedAt:  time.Now(),
	}
	l.results = append(l.results, r)
	for _, fn := range l.listeners {
		fn(r)
	}
	return r, nil
}

// Table returns the sorted standings.
func (l *League) Table() []Standing {
	rows := make([]Standing, 0, len(l.table))
	for _, id := range l.order {
		s := *l.table[id]
		s.form = append([]byte(nil), s.form...)
		rows = append(rows, s)
	}
	sortStandings(rows)
	return rows
}

// Position returns the team's current 1-based table position, or 0.
func (l *League) Position(teamID int) int {
	for _, s := range l.Table() {
		if s.TeamID == teamID {
			return s.Position
		}
	}
	return 0
}

// IsSeasonComplete reports whether every pairing has been played twice.
func (l *League) IsSeasonComplete() bool {
	n := len(l.order)
	return len(l.results) >= n*(n-1)
}

// AverageGoals is the mean number of goals per registered match.
func (l *League) AverageGoals() float64 {
	if len(l.results) == 0 {
		return 0
	}
	total := 0
	for _, r := range l.results {
		total += r.HomeGoals + r.AwayGoals
	}
	return float64(total) / float64(len(l.results))
}

// Champion returns the table leader once the season is over.
func (l *League) Champion() (Standing, bool) {
	if !l.IsSeasonComplete() {
		return Standing{}, false
	}
	return l.Table()[0], true
}

// PlayFunc decides the score of a fixture. SimulateScore fits.
type PlayFunc func(rng *rand.Rand, home, away Team) (int, int)

// PlayMatchday plays every unplayed fixture of the current matchday with
// play and moves on to the next matchday.
func (l *League) PlayMatchday(rng *rand.Rand, play PlayFunc) ([]Result, error) {
	if l.matchday > l.Matchdays() {
		return nil, nil
	}
	var out []Result
	for _, f := range l.FixturesFor(l.matchday) {
		if f.Played {
			continue
		}
		hg, ag := play(rng, l.teams[f.Home], l.teams[f.Away])
		r, err := l.RegisterResult(f.Home, f.Away, hg, ag)
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	l.matchday++
	return out, nil
}

// SimulateMatchday plays the current matchday with SimulateScore.
func (l *League) SimulateMatchday(rng *rand.Rand) ([]Result, error) {
	return l.PlayMatchday(rng, SimulateScore)
}

// SimulateSeason plays every remaining matchday.
func (l *League) SimulateSeason(rng *rand.Rand) error {
	for l.matchday <= l.Matchdays() {
		if _, err := l.SimulateMatchday(rng); err != nil {
			return err
		}
	}
	return nil
}
