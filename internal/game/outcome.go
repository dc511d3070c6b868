package game

import "fmt"

// Outcome is the result of a match from the home side's point of view.
type Outcome int

const (
	OutcomeUnfinished Outcome = iota
	OutcomeHomeWin
	OutcomeAwayWin
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHomeWin:
		return "home_win"
	case OutcomeAwayWin:
		return "away_win"
	case OutcomeDraw:
		return "draw"
	case OutcomeUnfinished:
		return "unfinished"
	default:
		return "unknown"
	}
}

// OutcomeReason explains an outcome with the numbers behind it.
type OutcomeReason struct {
	Outcome        Outcome
	HomeGoals      int
	AwayGoals      int
	HomeShots      int
	AwayShots      int
	HomeSentOff    int
	AwaySentOff    int
	HomePossession float64 // percent
	Description    string
}

// DetermineOutcome reads the result off m. A match that has not reached
// full time is unfinished whatever the score.
func DetermineOutcome(m *Match) OutcomeReason {
	r := OutcomeReason{}
	r.HomeGoals, r.AwayGoals = m.Score()
	r.HomePossession = m.PossessionPct(SideHome)
	for _, f := range m.Footballers() {
		shots := &r.HomeShots
		sent := &r.HomeSentOff
		if f.side == SideAway {
			shots, sent = &r.AwayShots, &r.AwaySentOff
		}
		*shots += f.stats.Shots
		if f.sentOff {
			*sent++
		}
	}

	switch {
	case !m.Over():
		r.Outcome = OutcomeUnfinished
		r.Description = fmt.Sprintf("in progress at %s, %d-%d", m.Clock().Display(), r.HomeGoals, r.AwayGoals)
		return r
	case r.HomeGoals > r.AwayGoals:
		r.Outcome = OutcomeHomeWin
	case r.AwayGoals > r.HomeGoals:
		r.Outcome = OutcomeAwayWin
	default:
		r.Outcome = OutcomeDraw
	}
	r.Description = fmt.Sprintf("%s (shots %d-%d, possession %.0f%%-%.0f%%)",
		m.ResultText(), r.HomeShots, r.AwayShots, r.HomePossession, 100-r.HomePossession)
	if r.HomeSentOff+r.AwaySentOff > 0 {
		r.Description += fmt.Sprintf(", red cards %d-%d", r.HomeSentOff, r.AwaySentOff)
	}
	return r
}
