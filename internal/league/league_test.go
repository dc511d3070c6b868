package league

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic test
}

func TestSchedule_DoubleRoundRobin(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 7, 10} {
		ids := make([]int, n)
		for i := range ids {
			ids[i] = i + 1
		}
		fx, err := Schedule(ids)
		require.NoError(t, err)
		assert.Len(t, fx, n*(n-1), "n=%d", n)

		seen := map[[2]int]int{}
		perDay := map[int]map[int]bool{}
		for _, f := range fx {
			assert.NotEqual(t, f.Home, f.Away)
			seen[[2]int{f.Home, f.Away}]++
			if perDay[f.Matchday] == nil {
				perDay[f.Matchday] = map[int]bool{}
			}
			assert.False(t, perDay[f.Matchday][f.Home], "n=%d team %d twice on day %d", n, f.Home, f.Matchday)
			assert.False(t, perDay[f.Matchday][f.Away], "n=%d team %d twice on day %d", n, f.Away, f.Matchday)
			perDay[f.Matchday][f.Home] = true
			perDay[f.Matchday][f.Away] = true
		}
		for _, a := range ids {
			for _, b := range ids {
				if a != b {
					assert.Equal(t, 1, seen[[2]int{a, b}], "n=%d %d v %d", n, a, b)
				}
			}
		}
	}
}

func TestSchedule_TooFewTeams(t *testing.T) {
	_, err := Schedule([]int{1})
	assert.ErrorIs(t, err, ErrTooFewTeams)
}

func TestLeague_TableOrdering(t *testing.T) {
	teams := []Team{
		{ID: 1, Name: "Alpha", Attack: 70, Midfield: 70, Defense: 70},
		{ID: 2, Name: "Bravo", Attack: 70, Midfield: 70, Defense: 70},
		{ID: 3, Name: "Charlie", Attack: 70, Midfield: 70, Defense: 70},
		{ID: 4, Name: "Delta", Attack: 70, Midfield: 70, Defense: 70},
	}
	l, err := New("Test", 1, teams)
	require.NoError(t, err)

	mustRegister := func(h, a, hg, ag int) {
		_, err := l.RegisterResult(h, a, hg, ag)
		require.NoError(t, err)
	}
	mustRegister(1, 2, 1, 0) // Alpha 3pts, GD +1
	mustRegister(3, 4, 3, 0) // Charlie 3pts, GD +3
	mustRegister(2, 4, 2, 2) // Bravo 1, Delta 1

	table := l.Table()
	require.Len(t, table, 4)
	assert.Equal(t, "Charlie", table[0].Name)
	assert.Equal(t, "Alpha", table[1].Name)
	// Bravo and Delta level on points; Bravo has GD -1, Delta -3.
	assert.Equal(t, "Bravo", table[2].Name)
	assert.Equal(t, "Delta", table[3].Name)
	for i, row := range table {
		assert.Equal(t, i+1, row.Position)
	}
	assert.Equal(t, 1, l.Position(3))
	assert.Equal(t, "W", table[0].Form())
	assert.Equal(t, "LD", table[2].Form())
	assert.InDelta(t, 8.0/3, l.AverageGoals(), 1e-9)
	assert.Contains(t, FormatTable(table), "Charlie")
}

func TestLeague_GoalsForBreaksTie(t *testing.T) {
	l, err := New("Test", 1, []Team{{ID: 1, Name: "Zed"}, {ID: 2, Name: "Amp"}, {ID: 3, Name: "Mid"}})
	require.NoError(t, err)
	_, _ = l.RegisterResult(1, 3, 3, 2)
	_, _ = l.RegisterResult(2, 3, 1, 0)
	table := l.Table()
	// Both on 3 points and +1, Zed scored more.
	assert.Equal(t, "Zed", table[0].Name)
	assert.Equal(t, "Amp", table[1].Name)
}

func TestLeague_RegisterErrors(t *testing.T) {
	l, err := New("Test", 1, DemoTeams())
	require.NoError(t, err)

	_, err = l.RegisterResult(1, 1, 0, 0)
	assert.ErrorIs(t, err, ErrSameTeam)
	_, err = l.RegisterResult(1, 99, 0, 0)
	assert.True(t, errors.Is(err, ErrUnknownTeam))
	_, err = l.RegisterResult(1, 2, -1, 0)
	assert.ErrorIs(t, err, ErrBadScore)

	_, err = New("Dup", 1, []Team{{ID: 1}, {ID: 1}})
	assert.ErrorIs(t, err, ErrDuplicateID)
	_, err = New("Solo", 1, []Team{{ID: 1}})
	assert.ErrorIs(t, err, ErrTooFewTeams)
}

func TestLeague_SimulateSeason(t *testing.T) {
	teams := DemoTeams()
	l, err := New("Demo", 2026, teams)
	require.NoError(t, err)

	var fired int
	l.OnResult(func(Result) { fired++ })

	assert.False(t, l.IsSeasonComplete())
	_, ok := l.Champion()
	assert.False(t, ok)

	require.NoError(t, l.SimulateSeason(seeded(1)))
	n := len(teams)
	assert.True(t, l.IsSeasonComplete())
	assert.Len(t, l.Results(), n*(n-1))
	assert.Equal(t, n*(n-1), fired)
	for _, f := range l.Fixtures() {
		assert.True(t, f.Played)
	}

	points := 0
	for _, row := range l.Table() {
		assert.Equal(t, 2*(n-1), row.Played)
		points += row.Points
	}
	// Every match hands out 3 points, or 2 when drawn.
	draws := 0
	for _, r := range l.Results() {
		if r.Winner() == 0 {
			draws++
		}
	}
	assert.Equal(t, 3*len(l.Results())-draws, points)

	champ, ok := l.Champion()
	assert.True(t, ok)
	assert.Equal(t, 1, champ.Position)
	assert.Greater(t, l.AverageGoals(), 0.0)

	more, err := l.SimulateMatchday(seeded(2))
	assert.NoError(t, err)
	assert.Empty(t, more)
}

func TestSimulateScore_Shapes(t *testing.T) {
	rng := seeded(3)
	home := Team{ID: 1, Overall: 75}
	away := Team{ID: 2, Overall: 75}
	for i := 0; i < 500; i++ {
		h, a := SimulateScore(rng, home, away)
		assert.GreaterOrEqual(t, h, 0)
		assert.GreaterOrEqual(t, a, 0)
		assert.LessOrEqual(t, h, 3)
		assert.LessOrEqual(t, a, 3)
	}
}

func TestTeam_Normalize(t *testing.T) {
	tm := Team{Name: "Big Club", Attack: 120, Midfield: 0, Defense: 60}
	tm.Normalize()
	assert.Equal(t, 99, tm.Attack)
	assert.Equal(t, 1, tm.Midfield)
	assert.Equal(t, (99+1+60)/3, tm.Overall)
	assert.Equal(t, "Big", tm.Short)
	assert.Equal(t, 5, tm.Prestige)
}

func TestTournament_Bracket(t *testing.T) {
	teams := DemoTeams() // six teams: two byes
	tr, err := NewTournament("Demo Cup", CupChampions, teams)
	require.NoError(t, err)
	assert.Equal(t, "Quarter-final", tr.NextRoundName())

	first, err := tr.PlayRound(seeded(4), SimulateScore)
	require.NoError(t, err)
	require.Len(t, first, 4)
	byes := 0
	for _, tie := range first {
		if tie.Bye() {
			byes++
		}
		assert.NotZero(t, tie.Winner)
	}
	assert.Equal(t, 2, byes)

	champ, err := tr.Play(seeded(5))
	require.NoError(t, err)
	assert.True(t, tr.Done())
	assert.Len(t, tr.Rounds, 3)

	pool := CupChampions.PrizePool()
	assert.True(t, tr.Prize(champ.ID).Equal(pool.Div(decimal.NewFromInt(2))))
	runnerUp := tr.Rounds[2][0].Loser()
	assert.True(t, tr.Prize(runnerUp).Equal(decimal.NewFromInt(1_250_000)))

	total := decimal.Zero
	for _, tm := range teams {
		total = total.Add(tr.Prize(tm.ID))
	}
	assert.True(t, total.Equal(pool))
}

func TestBracketOrder(t *testing.T) {
	assert.Equal(t, []int{0, 1}, bracketOrder(2))
	assert.Equal(t, []int{0, 3, 1, 2}, bracketOrder(4))
	assert.Equal(t, []int{0, 7, 3, 4, 1, 6, 2, 5}, bracketOrder(8))
}

func TestTournament_TopSeedsMeetInFinal(t *testing.T) {
	var teams []Team
	for i := 1; i <= 8; i++ {
		r := 95 - i*5
		teams = append(teams, Team{ID: i, Name: fmt.Sprintf("Club %d", i), Attack: r, Midfield: r, Defense: r})
	}
	tr, err := NewTournament("Seeded Cup", CupDomestic, teams)
	require.NoError(t, err)

	favourite := func(_ *rand.Rand, home, away Team) (int, int) {
		if home.Overall > away.Overall {
			return 1, 0
		}
		return 0, 1
	}
	for !tr.Done() {
		_, err := tr.PlayRound(seeded(8), favourite)
		require.NoError(t, err)
	}
	require.Len(t, tr.Rounds, 3)
	final := tr.Rounds[2][0]
	assert.ElementsMatch(t, []int{1, 2}, []int{final.Home, final.Away})
	champ, ok := tr.Winner()
	require.True(t, ok)
	assert.Equal(t, 1, champ.ID)
}

func TestTournament_PenaltiesDecideDraws(t *testing.T) {
	tr, err := NewTournament("Shootout", CupDomestic, []Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})
	require.NoError(t, err)
	alwaysDraw := func(*rand.Rand, Team, Team) (int, int) { return 1, 1 }
	ties, err := tr.PlayRound(seeded(6), alwaysDraw)
	require.NoError(t, err)
	require.Len(t, ties, 1)
	assert.True(t, ties[0].Penalties)
	assert.True(t, tr.Done())
	assert.Equal(t, "Final", RoundName(2))
}

func TestParseCupKind(t *testing.T) {
	k, err := ParseCupKind("league")
	require.NoError(t, err)
	assert.Equal(t, CupLeague, k)
	assert.True(t, k.PrizePool().Equal(decimal.NewFromInt(2_000_000)))
	_, err = ParseCupKind("friendly")
	assert.Error(t, err)
}
