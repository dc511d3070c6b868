package league

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CupKind picks the prize pool of a knockout tournament.
type CupKind int

const (
	CupDomestic CupKind = iota
	CupLeague
	CupChampions
)

func (k CupKind) String() string {
	switch k {
	case CupDomestic:
		return "cup"
	case CupLeague:
		return "league"
	case CupChampions:
		return "champions"
	default:
		return "unknown"
	}
}

// ParseCupKind accepts the String form.
func ParseCupKind(s string) (CupKind, error) {
	for _, k := range []CupKind{CupDomestic, CupLeague, CupChampions} {
		if k.String() == s {
			return k, nil
		}
	}
	return CupDomestic, fmt.Errorf("unknown tournament type %q", s)
}

// PrizePool returns the total prize money for the kind.
func (k CupKind) PrizePool() decimal.Decimal {
	switch k {
	case CupLeague:
		return decimal.NewFromInt(2_000_000)
	case CupChampions:
		return decimal.NewFromInt(5_000_000)
	default:
		return decimal.NewFromInt(1_000_000)
	}
}

// Tie is one knockout pairing. A bye has Away == 0 and goes straight through.
type Tie struct {
	Home      int
	Away      int
	HomeGoals int
	AwayGoals int
	Penalties bool
	Winner    int
}

// Bye reports whether the tie is a walkover.
func (t Tie) Bye() bool { return t.Away == 0 }

// Loser returns the eliminated team, or 0 for a bye.
func (t Tie) Loser() int {
	if t.Bye() {
		return 0
	}
	if t.Winner == t.Home {
		return t.Away
	}
	return t.Home
}

// Tournament is a single-elimination competition seeded by rating.
type Tournament struct {
	ID     uuid.UUID
	Name   string
	Kind   CupKind
	Rounds [][]Tie

	teams   map[int]Team
	pending []int // teams still alive, in bracket order
	winner  int
}

// NewTournament seeds teams by overall rating. Fields that are not a power of
// two give the top seeds first-round byes.
func NewTournament(name string, kind CupKind, teams []Team) (*Tournament, error) {
	if len(teams) < 2 {
		return nil, ErrTooFewTeams
	}
	t := &Tournament{
		ID:    uuid.New(),
		Name:  name,
		Kind:  kind,
		teams: make(map[int]Team, len(teams)),
	}
	seeded := make([]Team, 0, len(teams))
	for _, tm := range teams {
		if tm.ID == 0 {
			return nil, fmt.Errorf("team %q: id 0 is reserved: %w", tm.Name, ErrUnknownTeam)
		}
		if _, dup := t.teams[tm.ID]; dup {
			return nil, fmt.Errorf("team %d: %w", tm.ID, ErrDuplicateID)
		}
		tm.Normalize()
		t.teams[tm.ID] = tm
		seeded = append(seeded, tm)
	}
	sort.SliceStable(seeded, func(i, j int) bool { return seeded[i].Overall > seeded[j].Overall })

	size := 1
	for size < len(seeded) {
		size *= 2
	}
	// Slots past the field are byes.
	for _, i := range bracketOrder(size) {
		if i < len(seeded) {
			t.pending = append(t.pending, seeded[i].ID)
		} else {
			t.pending = append(t.pending, 0)
		}
	}
	return t, nil
}

// bracketOrder returns zero-based seed indices in draw order for a bracket of
// size slots. Each adjacent pair sums to size-1 and the top two seeds sit in
// opposite halves, so favourites can only meet late.
func bracketOrder(size int) []int {
	order := []int{0}
	for n := 2; n <= size; n *= 2 {
		next := make([]int, 0, n)
		for _, s := range order {
			next = append(next, s, n-1-s)
		}
		order = next
	}
	return order
}

// RoundName names a round by how many teams enter it.
func RoundName(entrants int) string {
	switch entrants {
	case 2:
		return "Final"
	case 4:
		return "Semi-final"
	case 8:
		return "Quarter-final"
	default:
		return fmt.Sprintf("Round of %d", entrants)
	}
}

// Done reports whether a winner has been decided.
func (t *Tournament) Done() bool { return t.winner != 0 }

// Winner returns the champion once Done.
func (t *Tournament) Winner() (Team, bool) {
	tm, ok := t.teams[t.winner]
	return tm, ok
}

// NextRoundName names the round PlayRound will play next.
func (t *Tournament) NextRoundName() string {
	return RoundName(len(t.pending))
}

// PlayRound plays the current round with play. Knockout draws go to
// penalties, which the stronger side wins slightly more often.
func (t *Tournament) PlayRound(rng *rand.Rand, play PlayFunc) ([]Tie, error) {
	if t.Done() {
		return nil, nil
	}
	var ties []Tie
	var next []int
	for i := 0; i+1 < len(t.pending); i += 2 {
		tie := Tie{Home: t.pending[i], Away: t.pending[i+1]}
		switch {
		case tie.Home == 0:
			tie.Home, tie.Away = tie.Away, 0
			tie.Winner = tie.Home
		case tie.Bye():
			tie.Winner = tie.Home
		default:
			home, away := t.teams[tie.Home], t.teams[tie.Away]
			tie.HomeGoals, tie.AwayGoals = play(rng, home, away)
			switch {
			case tie.HomeGoals > tie.AwayGoals:
				tie.Winner = tie.Home
			case tie.AwayGoals > tie.HomeGoals:
				tie.Winner = tie.Away
			default:
				tie.Penalties = true
				hp := float64(home.Overall) / float64(home.Overall+away.Overall)
				if rng.Float64() < hp {
					tie.Winner = tie.Home
				} else {
					tie.Winner = tie.Away
				}
			}
		}
		ties = append(ties, tie)
		next = append(next, tie.Winner)
	}
	t.Rounds = append(t.Rounds, ties)
	t.pending = next
	if len(next) == 1 {
		t.winner = next[0]
	}
	return ties, nil
}

// Play runs the tournament to completion with SimulateScore.
func (t *Tournament) Play(rng *rand.Rand) (Team, error) {
	for !t.Done() {
		if _, err := t.PlayRound(rng, SimulateScore); err != nil {
			return Team{}, err
		}
	}
	w, _ := t.Winner()
	return w, nil
}

// Prize returns what teamID earned: half the pool for the winner, a quarter
// for the runner-up and an eighth for each beaten semi-finalist.
func (t *Tournament) Prize(teamID int) decimal.Decimal {
	pool := t.Kind.PrizePool()
	if !t.Done() {
		return decimal.Zero
	}
	if teamID == t.winner {
		return pool.Div(decimal.NewFromInt(2))
	}
	n := len(t.Rounds)
	if n >= 1 && t.Rounds[n-1][0].Loser() == teamID {
		return pool.Div(decimal.NewFromInt(4))
	}
	if n >= 2 {
		for _, tie := range t.Rounds[n-2] {
			if tie.Loser() == teamID {
				return pool.Div(decimal.NewFromInt(8))
			}
		}
	}
	return decimal.Zero
}
