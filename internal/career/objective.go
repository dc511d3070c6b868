package career

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ObjectiveKind identifies a board objective.
type ObjectiveKind string

const (
	ObjLeaguePosition   ObjectiveKind = "league_position"
	ObjCupProgress      ObjectiveKind = "cup_progress"
	ObjYouthDevelopment ObjectiveKind = "youth_development"
	ObjFinancial        ObjectiveKind = "financial"
)

// Objective is a target the board sets for one season.
type Objective struct {
	Kind        ObjectiveKind
	Description string
	Target      int
	Progress    int
	Reward      decimal.Decimal
	Completed   bool
}

// met reports whether progress satisfies the target. League position and
// cup round (teams left in the round reached) are better when lower;
// everything else counts up.
func (o Objective) met() bool {
	if o.Kind == ObjLeaguePosition || o.Kind == ObjCupProgress {
		return o.Progress > 0 && o.Progress <= o.Target
	}
	return o.Progress >= o.Target
}

// leagueTarget maps club prestige to the expected finishing position.
func leagueTarget(prestige int) int {
	switch {
	case prestige >= 9:
		return 4
	case prestige >= 7:
		return 6
	case prestige >= 5:
		return 10
	default:
		return 15
	}
}

// objectivesFor builds the standard board objectives for a club.
func objectivesFor(prestige int) []Objective {
	target := leagueTarget(prestige)
	return []Objective{
		{
			Kind:        ObjLeaguePosition,
			Description: fmt.Sprintf("Finish in the top %d", target),
			Target:      target,
			Reward:      decimal.NewFromInt(1_000_000),
		},
		{
			Kind:        ObjCupProgress,
			Description: "Reach the last 8 of the cup",
			Target:      8,
			Reward:      decimal.NewFromInt(500_000),
		},
		{
			Kind:        ObjYouthDevelopment,
			Description: "Promote 2 academy players",
			Target:      2,
			Reward:      decimal.NewFromInt(300_000),
		},
		{
			Kind:        ObjFinancial,
			Description: "Do not finish the season in deficit",
			Target:      0,
			Reward:      decimal.NewFromInt(200_000),
		},
	}
}
