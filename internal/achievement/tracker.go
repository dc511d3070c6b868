package achievement

import (
	"sort"
	"time"

	"github.com/Garsondee/Pitch-Sense/internal/gesture"
)

// RequiredXP is the experience needed to leave level.
func RequiredXP(level int) int {
	return level*1000 + (level-1)*500
}

// MatchOutcome is what the tracker needs to know about a finished match.
type MatchOutcome struct {
	GoalsFor      int
	GoalsAgainst  int
	PlayerGoals   int
	PlayerAssists int
	Cards         int
	Stadium       string
}

// Unlock records when an achievement was earned.
type Unlock struct {
	Achievement Achievement
	At          time.Time
}

// Tracker holds one profile's statistics and unlocked achievements.
type Tracker struct {
	catalog  []Achievement
	stats    map[string]int
	unlocked map[string]time.Time
	tricks   map[gesture.Trick]bool
	stadiums map[string]bool

	onUnlock []func(Achievement)
	onLevel  []func(int)
	now      func() time.Time
}

// NewTracker returns a tracker at level 1 over catalog, or Defaults when
// catalog is empty.
func NewTracker(catalog ...Achievement) *Tracker {
	if len(catalog) == 0 {
		catalog = Defaults()
	}
	return &Tracker{
		catalog:  catalog,
		stats:    map[string]int{StatLevel: 1},
		unlocked: map[string]time.Time{},
		tricks:   map[gesture.Trick]bool{},
		stadiums: map[string]bool{},
		now:      time.Now,
	}
}

// OnUnlock registers a callback for newly unlocked achievements.
func (t *Tracker) OnUnlock(fn func(Achievement)) { t.onUnlock = append(t.onUnlock, fn) }

// OnLevelUp registers a callback receiving the new level.
func (t *Tracker) OnLevelUp(fn func(int)) { t.onLevel = append(t.onLevel, fn) }

// Stat returns a statistic, zero when never set.
func (t *Tracker) Stat(key string) int { return t.stats[key] }

// Level is the current profile level.
func (t *Tracker) Level() int { return t.stats[StatLevel] }

// Experience is the accumulated XP.
func (t *Tracker) Experience() int { return t.stats[StatExperience] }

// Coins is the accumulated coin balance.
func (t *Tracker) Coins() int { return t.stats[StatCoins] }

// Set overwrites a statistic and returns anything it unlocked.
func (t *Tracker) Set(key string, v int) []Achievement {
	t.stats[key] = v
	return t.evaluate()
}

// Increment adds by to a statistic and returns anything it unlocked.
func (t *Tracker) Increment(key string, by int) []Achievement {
	t.stats[key] += by
	return t.evaluate()
}

// evaluate unlocks every completed achievement and applies level-ups until
// nothing changes; rewards and levels can feed further unlocks.
func (t *Tracker) evaluate() []Achievement {
	var out []Achievement
	for {
		progressed := false
		for _, a := range t.catalog {
			if _, done := t.unlocked[a.ID]; done || !a.Completed(t.stats) {
				continue
			}
			t.unlocked[a.ID] = t.now()
			t.stats[StatExperience] += a.XP
			t.stats[StatCoins] += a.Coins
			out = append(out, a)
			progressed = true
			for _, fn := range t.onUnlock {
				fn(a)
			}
		}
		for t.stats[StatExperience] >= RequiredXP(t.stats[StatLevel]) {
			t.stats[StatLevel]++
			progressed = true
			for _, fn := range t.onLevel {
				fn(t.stats[StatLevel])
			}
		}
		if !progressed {
			return out
		}
	}
}

// OnMatchCompleted folds a finished match into the statistics.
func (t *Tracker) OnMatchCompleted(m MatchOutcome) []Achievement {
	s := t.stats
	s[StatMatchesPlayed]++
	s[StatSeasonMatches]++
	s[StatGoals] += m.PlayerGoals
	s[StatCareerGoals] += m.PlayerGoals
	s[StatGoalsThisMatch] = m.PlayerGoals
	s[StatAssists] += m.PlayerAssists
	s[StatAssistsThisMatch] = m.PlayerAssists
	s[StatCardsThisMatch] = m.Cards

	switch {
	case m.GoalsFor > m.GoalsAgainst:
		s[StatWins]++
		s[StatCurrentStreak]++
		s[StatWinStreak] = max(s[StatWinStreak], s[StatCurrentStreak])
	case m.GoalsFor == m.GoalsAgainst:
		s[StatDraws]++
		s[StatCurrentStreak] = 0
	default:
		s[StatLosses]++
		s[StatSeasonLosses]++
		s[StatCurrentStreak] = 0
	}
	if m.GoalsAgainst == 0 {
		s[StatCleanSheets]++
	}
	if m.Stadium != "" && !t.stadiums[m.Stadium] {
		t.stadiums[m.Stadium] = true
		s[StatStadiums] = len(t.stadiums)
	}
	return t.evaluate()
}

// OnSkillMove records an attempted trick. Only successful tricks count
// toward the unique-trick collection.
func (t *Tracker) OnSkillMove(trick gesture.Trick, success bool) []Achievement {
	if trick == gesture.None {
		return nil
	}
	if !success {
		return t.Increment(StatSkillMovesFailed, 1)
	}
	t.tricks[trick] = true
	t.stats[StatUniqueTricks] = len(t.tricks)
	return t.Increment(StatSkillMoves, 1)
}

// OnTrophyWon counts a trophy for the career and the running season.
func (t *Tracker) OnTrophyWon() []Achievement {
	t.stats[StatTrophies]++
	t.stats[StatTrophiesThisSeason]++
	return t.evaluate()
}

// OnStadiumPlayed records a visit to a stadium.
func (t *Tracker) OnStadiumPlayed(name string) []Achievement {
	if name == "" || t.stadiums[name] {
		return nil
	}
	t.stadiums[name] = true
	return t.Set(StatStadiums, len(t.stadiums))
}

// OnCareerStarted marks the first career.
func (t *Tracker) OnCareerStarted() []Achievement {
	return t.Set(StatCareerStarted, 1)
}

// OnSeasonCompleted evaluates season awards and clears the season counters.
func (t *Tracker) OnSeasonCompleted() []Achievement {
	out := t.Increment(StatSeasonsPlayed, 1)
	t.stats[StatSeasonMatches] = 0
	t.stats[StatSeasonLosses] = 0
	t.stats[StatTrophiesThisSeason] = 0
	return out
}

// ResetMatch clears the per-match counters.
func (t *Tracker) ResetMatch() {
	t.stats[StatGoalsThisMatch] = 0
	t.stats[StatAssistsThisMatch] = 0
	t.stats[StatCardsThisMatch] = 0
}

// IsUnlocked reports whether id has been earned.
func (t *Tracker) IsUnlocked(id string) bool {
	_, ok := t.unlocked[id]
	return ok
}

// Unlocked lists earned achievements, oldest first.
func (t *Tracker) Unlocked() []Unlock {
	var out []Unlock
	for _, a := range t.catalog {
		if at, ok := t.unlocked[a.ID]; ok {
			out = append(out, Unlock{Achievement: a, At: at})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}

// Locked lists achievements still to earn, in catalog order.
func (t *Tracker) Locked() []Achievement {
	var out []Achievement
	for _, a := range t.catalog {
		if !t.IsUnlocked(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// ProgressOf returns the current value and target of an achievement.
func (t *Tracker) ProgressOf(id string) (current, target int, ok bool) {
	for _, a := range t.catalog {
		if a.ID == id {
			return min(t.stats[a.Stat], a.Target), a.Target, true
		}
	}
	return 0, 0, false
}

// Progress is the share of the catalog unlocked, in percent.
func (t *Tracker) Progress() float64 {
	if len(t.catalog) == 0 {
		return 0
	}
	return float64(len(t.unlocked)) / float64(len(t.catalog)) * 100
}
