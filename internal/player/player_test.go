package player

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_ClampNeverExceeds99(t *testing.T) {
	a := DefaultAttributes()
	a.Speed = 140
	a.Finishing = -3
	a.Reflexes = 0
	a.WeakFoot = 9
	a.SkillMoves = 0
	a.Clamp()

	assert.Equal(t, 99, a.Speed)
	assert.Equal(t, 1, a.Finishing)
	assert.Equal(t, 1, a.Reflexes)
	assert.Equal(t, 5, a.WeakFoot)
	assert.Equal(t, 1, a.SkillMoves)
	for _, r := range a.ratings() {
		assert.GreaterOrEqual(t, *r, MinRating)
		assert.LessOrEqual(t, *r, MaxRating)
	}
}

func TestAttributes_Shift(t *testing.T) {
	a := DefaultAttributes()
	a.Shift(40, false)
	assert.Equal(t, MaxRating, a.Speed)
	assert.Equal(t, 1, a.Diving, "outfield shift leaves goalkeeping alone")

	gk := DefaultAttributes()
	gk.Shift(-10, true)
	assert.Equal(t, MinRating, gk.Reflexes)
	assert.Equal(t, DefaultRating, gk.Speed)
}

func TestAttributes_DefaultOverall(t *testing.T) {
	a := DefaultAttributes()
	assert.Equal(t, 70, a.Overall(Striker))
	for _, p := range Positions()[1:] {
		assert.Equal(t, 70, a.PositionRating(p), p.String())
	}
	// Default goalkeeping ratings are 1, so a keeper is poor.
	assert.Less(t, a.Overall(Goalkeeper), 40)
}

func TestAttributes_GoalkeeperOverall(t *testing.T) {
	a := DefaultAttributes()
	a.Diving, a.Handling, a.Kicking, a.GKPositioning, a.Reflexes = 90, 90, 90, 90, 90
	// (450*60 + 420*25 + 280*15) / 510
	assert.Equal(t, (450*60+420*25+280*15)/510, a.Overall(Goalkeeper))
}

func TestAttributes_PositionRatingFavoursSpecialists(t *testing.T) {
	a := DefaultAttributes()
	a.Shooting, a.Finishing = 95, 95
	assert.Greater(t, a.PositionRating(Striker), a.PositionRating(CenterBack))
	assert.Equal(t, Striker, a.BestPosition())
}

func TestAttributes_Traits(t *testing.T) {
	a := DefaultAttributes()
	assert.Zero(t, a.Traits())
	a.SkillMoves = 5
	a.Shooting = 90
	tr := a.Traits()
	assert.True(t, tr.Has(TraitSkillMoveSpecialist))
	assert.True(t, tr.Has(TraitPowerShooter))
	assert.False(t, tr.Has(TraitDefensiveWall))
}

func TestGenerate_RangesAndMoney(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- deterministic test
	for _, pos := range Positions() {
		for i := 0; i < 50; i++ {
			p := Generate(rng, "Test", 3, pos)
			require.Equal(t, pos, p.Position)
			assert.Equal(t, 3, p.TeamID)
			assert.GreaterOrEqual(t, p.Age, 18)
			assert.Less(t, p.Age, 35)
			for _, r := range p.Attributes.ratings() {
				assert.GreaterOrEqual(t, *r, MinRating)
				assert.LessOrEqual(t, *r, MaxRating)
			}
			assert.GreaterOrEqual(t, p.Attributes.SkillMoves, 1)
			assert.LessOrEqual(t, p.Attributes.SkillMoves, 5)

			base := p.Wage.Div(decimal.NewFromInt(500)).IntPart()
			assert.GreaterOrEqual(t, base, int64(45))
			assert.Less(t, base, int64(85))
			assert.True(t, p.MarketValue.Equal(decimal.NewFromInt(base*50_000)))
		}
	}
}

func TestGenerate_GoalkeeperCanKeep(t *testing.T) {
	rng := rand.New(rand.NewSource(11)) // #nosec G404 -- deterministic test
	gk := Generate(rng, "Keeper", 1, Goalkeeper)
	assert.GreaterOrEqual(t, gk.Attributes.Diving, 60)
	assert.GreaterOrEqual(t, gk.Attributes.Kicking, 50)
	out := Generate(rng, "Mid", 1, CentralMidfield)
	assert.Equal(t, 1, out.Attributes.Reflexes)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(5)), "A", 1, Striker) // #nosec G404 -- deterministic test
	b := Generate(rand.New(rand.NewSource(5)), "A", 1, Striker) // #nosec G404 -- deterministic test
	assert.Equal(t, a.Attributes, b.Attributes)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition(" st ")
	require.NoError(t, err)
	assert.Equal(t, Striker, p)
	_, err = ParsePosition("sweeper")
	assert.Error(t, err)
	assert.Equal(t, "??", Position(-1).String())
}

func TestPosition_HomeSpots(t *testing.T) {
	_, gy := Goalkeeper.Home()
	_, sy := Striker.Home()
	assert.Less(t, gy, sy)
	lx, _ := LeftWing.Home()
	rx, _ := RightWing.Home()
	assert.Less(t, lx, 0.0)
	assert.Greater(t, rx, 0.0)
}

func TestMatchStats_Accuracy(t *testing.T) {
	var s MatchStats
	assert.Zero(t, s.PassAccuracy())
	assert.Zero(t, s.ShotAccuracy())

	s.RecordPass(true)
	s.RecordPass(true)
	s.RecordPass(false)
	s.RecordPass(true)
	s.RecordShot(true)
	s.RecordShot(false)
	assert.InDelta(t, 75, s.PassAccuracy(), 1e-9)
	assert.InDelta(t, 50, s.ShotAccuracy(), 1e-9)
}

func TestMatchStats_RatingBounds(t *testing.T) {
	var s MatchStats
	assert.InDelta(t, 6.0, s.Rating(), 1e-9)

	s.Goals = 20
	assert.Equal(t, 10.0, s.Rating())

	s = MatchStats{RedCards: 3}
	assert.Equal(t, 1.0, s.Rating())
}

func TestMatchStats_MovementAndAdd(t *testing.T) {
	var s MatchStats
	s.RecordMovement(0.2, 1.0/60)
	s.RecordMovement(0.1, 1.0/60)
	s.RecordMovement(-1, 1)
	assert.InDelta(t, 0.3, s.Distance, 1e-9)
	assert.InDelta(t, 12, s.TopSpeed, 1e-9)

	var total MatchStats
	total.Add(s)
	total.Add(MatchStats{Goals: 2, TopSpeed: 3})
	assert.Equal(t, 2, total.Goals)
	assert.InDelta(t, 12, total.TopSpeed, 1e-9)

	s.RecordTackle(true)
	s.RecordDribble(false)
	assert.Equal(t, 1, s.DuelsWon)
	assert.Equal(t, 1, s.DuelsLost)
	assert.Contains(t, s.String(), "Tk1/1")
}

func TestFormation_LineupsHaveOneKeeper(t *testing.T) {
	for _, f := range Formations() {
		line := f.Lineup()
		require.Len(t, line, 11, f.String())
		keepers := 0
		for _, p := range line {
			if p == Goalkeeper {
				keepers++
			}
		}
		assert.Equal(t, 1, keepers, f.String())
		assert.Equal(t, Goalkeeper, line[0])

		parsed, err := ParseFormation(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	_, err := ParseFormation("2-3-5")
	assert.Error(t, err)
}
