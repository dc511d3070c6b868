package career

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestNew_Defaults(t *testing.T) {
	c := New("Sam", 3, 7)
	assert.True(t, c.Budget.Equal(StartingBudget))
	assert.Equal(t, 1, c.Season)
	assert.Equal(t, MinReputation, c.Reputation)
	assert.Equal(t, ContractSeasons, c.ContractYears)
	require.Len(t, c.Objectives, 4)
	assert.Equal(t, 6, c.Objectives[0].Target)
	assert.Zero(t, c.Progress())
}

func TestLeagueTargetByPrestige(t *testing.T) {
	assert.Equal(t, 4, leagueTarget(10))
	assert.Equal(t, 4, leagueTarget(9))
	assert.Equal(t, 6, leagueTarget(7))
	assert.Equal(t, 10, leagueTarget(5))
	assert.Equal(t, 15, leagueTarget(1))
}

func TestCompleteObjective_PaysOnce(t *testing.T) {
	c := New("Sam", 1, 5)
	var events []Event
	c.OnEvent(func(e Event) { events = append(events, e) })

	require.NoError(t, c.CompleteObjective(ObjCupProgress))
	require.NoError(t, c.CompleteObjective(ObjCupProgress))
	assert.True(t, c.Budget.Equal(d(5_500_000)))
	require.Len(t, events, 1)
	assert.Equal(t, EventObjectiveCompleted, events[0].Kind)

	assert.ErrorIs(t, c.CompleteObjective("win_the_lottery"), ErrUnknownObjective)
}

func TestUpdateObjective_Directions(t *testing.T) {
	c := New("Sam", 1, 5) // league target 10
	require.NoError(t, c.UpdateObjective(ObjYouthDevelopment, 1))
	assert.Zero(t, c.CompletedObjectives())
	require.NoError(t, c.UpdateObjective(ObjYouthDevelopment, 2))
	assert.Equal(t, 1, c.CompletedObjectives())

	c.SetLeaguePosition(12)
	assert.Equal(t, 1, c.CompletedObjectives())
	c.SetLeaguePosition(9)
	assert.Equal(t, 2, c.CompletedObjectives())

	require.NoError(t, c.UpdateObjective(ObjCupProgress, 16))
	assert.Equal(t, 2, c.CompletedObjectives())
	require.NoError(t, c.UpdateObjective(ObjCupProgress, 8))
	assert.Equal(t, 3, c.CompletedObjectives())
}

func TestUpdateSeasonStats_Points(t *testing.T) {
	c := New("Sam", 1, 5)
	c.UpdateSeasonStats(20, 10, 8, 60, 35)
	assert.Equal(t, 70, c.Current.Points)
	assert.Equal(t, 38, c.Current.Played())

	c.RecordMatch(2, 2)
	c.RecordMatch(0, 1)
	assert.Equal(t, 71, c.Current.Points)
	assert.Equal(t, 40, c.Current.Played())
}

func TestAddTransfer(t *testing.T) {
	c := New("Sam", 1, 5)
	_, err := c.AddTransfer(Buy, "Striker", d(3_000_000))
	require.NoError(t, err)
	assert.True(t, c.Budget.Equal(d(2_000_000)))

	_, err = c.AddTransfer(Buy, "Keeper", d(2_500_000))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, c.Budget.Equal(d(2_000_000)))
	assert.False(t, c.CanAfford(d(2_000_001)))

	tr, err := c.AddTransfer(Sell, "Winger", d(750_000))
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Season)
	assert.True(t, c.Budget.Equal(d(2_750_000)))
	assert.Len(t, c.Transfers, 2)

	_, err = c.AddTransfer(Buy, "Free", decimal.Zero)
	assert.ErrorIs(t, err, ErrBadFee)
}

func TestSeasonBonus(t *testing.T) {
	c := New("Sam", 1, 9)
	// No matches played: no division by zero, no win bonus.
	assert.True(t, c.SeasonBonus().Equal(decimal.Zero))

	c.UpdateSeasonStats(19, 10, 9, 50, 40)
	c.Current.Position = 3
	c.AddTrophy("Cup")
	// 2M top four + 0.5 * 1M win ratio + 500k trophy.
	assert.True(t, c.SeasonBonus().Equal(d(3_000_000)), c.SeasonBonus().String())

	c.Current.Position = 6
	assert.True(t, c.SeasonBonus().Equal(d(2_000_000)))
	c.Current.Position = 7
	assert.True(t, c.SeasonBonus().Equal(d(1_000_000)))
}

func TestAdvanceSeason(t *testing.T) {
	c := New("Sam", 1, 9)
	var kinds []EventKind
	c.OnEvent(func(e Event) { kinds = append(kinds, e.Kind) })

	c.UpdateSeasonStats(19, 10, 9, 50, 40)
	c.SetLeaguePosition(2) // meets the top-4 objective: +1M

	rec, err := c.AdvanceSeason()
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Season)
	assert.Equal(t, 2, rec.Objectives) // league + financial
	// 5M + 1M league + 200k financial + 2M top four + 500k win ratio.
	assert.True(t, c.Budget.Equal(d(8_700_000)), c.Budget.String())
	assert.Equal(t, 3, c.Reputation)
	assert.Equal(t, 2, c.Season)
	assert.Equal(t, 1, c.ContractYears)
	assert.Zero(t, c.Current.Points)
	assert.Zero(t, c.CompletedObjectives())
	assert.Len(t, c.History, 1)
	assert.Contains(t, kinds, EventSeasonAdvanced)
	assert.InDelta(t, 4, c.Progress(), 1e-9)

	_, err = c.AdvanceSeason()
	require.NoError(t, err)
	assert.Equal(t, ContractSeasons, c.ContractYears)
	assert.Contains(t, kinds, EventContractRenewed)
}

func TestAdvanceSeason_ReputationCapped(t *testing.T) {
	c := New("Sam", 1, 5)
	for i := 0; i < 5; i++ {
		for _, o := range []ObjectiveKind{ObjLeaguePosition, ObjCupProgress, ObjYouthDevelopment} {
			require.NoError(t, c.CompleteObjective(o))
		}
		_, err := c.AdvanceSeason()
		require.NoError(t, err)
	}
	assert.Equal(t, MaxReputation, c.Reputation)
}

func TestAdvanceSeason_CareerOver(t *testing.T) {
	c := New("Sam", 1, 5)
	for i := 0; i < MaxSeasons; i++ {
		_, err := c.AdvanceSeason()
		require.NoError(t, err)
	}
	assert.True(t, c.Over())
	assert.InDelta(t, 100, c.Progress(), 1e-9)
	_, err := c.AdvanceSeason()
	assert.ErrorIs(t, err, ErrCareerOver)
	assert.Contains(t, c.Summary(), "season 25/25")
}

func TestChangeTeam(t *testing.T) {
	c := New("Sam", 1, 3)
	_, _ = c.AdvanceSeason()
	c.ChangeTeam(8, 9)
	assert.Equal(t, 8, c.TeamID)
	assert.Equal(t, ContractSeasons, c.ContractYears)
	assert.Equal(t, 4, c.Objectives[0].Target)
	assert.Equal(t, 8, c.Current.TeamID)
}
