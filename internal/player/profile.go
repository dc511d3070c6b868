package player

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money scale used when generating players.
var (
	valuePerRating = decimal.NewFromInt(50_000)
	wagePerRating  = decimal.NewFromInt(500)
)

// Profile is a footballer as squad screens and the match engine see one.
type Profile struct {
	ID          uuid.UUID
	Name        string
	Age         int
	TeamID      int
	Number      int
	Position    Position
	Attributes  Attributes
	MarketValue decimal.Decimal
	Wage        decimal.Decimal // per week
}

// NewProfile returns a profile with default attributes.
func NewProfile(name string, pos Position) Profile {
	return Profile{
		ID:          uuid.New(),
		Name:        name,
		Age:         24,
		Position:    pos,
		Attributes:  DefaultAttributes(),
		MarketValue: decimal.NewFromInt(1_000_000),
		Wage:        decimal.NewFromInt(10_000),
	}
}

// Overall is the rating at the profile's own position.
func (p Profile) Overall() int {
	return p.Attributes.Overall(p.Position)
}

// Generate rolls a random player around a base rating in [45,85) and then
// bends the attributes toward the position.
func Generate(rng *rand.Rand, name string, teamID int, pos Position) Profile {
	base := 45 + rng.Intn(40)
	spread := rng.Intn(11)

	roll := func() int {
		if spread == 0 {
			return base
		}
		return base + rng.Intn(2*spread) - spread
	}

	a := DefaultAttributes()
	for _, r := range a.ratings()[:18] {
		*r = roll()
	}
	adjustForPosition(rng, &a, pos)
	a.WeakFoot = 1 + rng.Intn(5)
	a.SkillMoves = 1 + rng.Intn(5)
	a.Clamp()

	return Profile{
		ID:          uuid.New(),
		Name:        name,
		Age:         18 + rng.Intn(17),
		TeamID:      teamID,
		Position:    pos,
		Attributes:  a,
		MarketValue: valuePerRating.Mul(decimal.NewFromInt(int64(base))),
		Wage:        wagePerRating.Mul(decimal.NewFromInt(int64(base))),
	}
}

func adjustForPosition(rng *rand.Rand, a *Attributes, pos Position) {
	between := func(lo, hi int) int { return lo + rng.Intn(hi-lo) }

	switch pos {
	case Goalkeeper:
		a.Diving = between(60, 95)
		a.Handling = between(60, 95)
		a.Kicking = between(50, 85)
		a.GKPositioning = between(60, 90)
		a.Reflexes = between(60, 95)
	case CenterBack:
		a.Marking += 10
		a.Tackling += 10
		a.Strength += 8
		a.Jumping += 8
		a.Speed -= 5
		a.Dribbling -= 8
	case LeftBack, RightBack:
		a.Speed += 8
		a.Acceleration += 8
		a.Stamina += 10
		a.Shooting -= 10
		a.Finishing -= 10
	case DefensiveMidfield:
		a.Tackling += 8
		a.Marking += 8
		a.Passing += 5
		a.Shooting -= 8
		a.Speed -= 3
	case CentralMidfield:
		a.Passing += 10
		a.BallControl += 8
		a.Vision += 8
		a.Stamina += 8
	case AttackingMidfield:
		a.Passing += 8
		a.BallControl += 10
		a.Vision += 10
		a.Technique += 8
		a.Tackling -= 8
	case LeftWing, RightWing:
		a.Speed += 10
		a.Acceleration += 10
		a.Dribbling += 10
		a.Agility += 8
		a.Strength -= 5
		a.Marking -= 10
	case Striker:
		a.Shooting += 10
		a.Finishing += 10
		a.Positioning += 8
		a.Strength += 5
		a.Marking -= 10
		a.Tackling -= 10
	}
}
