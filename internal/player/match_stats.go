package player

import (
	"fmt"
	"math"
)

// MatchStats accumulates one footballer's numbers over a single match.
type MatchStats struct {
	Goals            int
	Assists          int
	Shots            int
	ShotsOnTarget    int
	PassesAttempted  int
	PassesCompleted  int
	TacklesAttempted int
	TacklesWon       int
	Interceptions    int
	Fouls            int
	YellowCards      int
	RedCards         int
	DribblesAttempt  int
	DribblesWon      int
	Saves            int
	DuelsWon         int
	DuelsLost        int
	TricksPerformed  int
	Distance         float64 // metres covered
	TopSpeed         float64 // metres per second
	PossessionTime   float64 // seconds on the ball
}

// RecordShot counts a shot and whether it was on target.
func (s *MatchStats) RecordShot(onTarget bool) {
	s.Shots++
	if onTarget {
		s.ShotsOnTarget++
	}
}

// RecordPass counts a pass attempt.
func (s *MatchStats) RecordPass(completed bool) {
	s.PassesAttempted++
	if completed {
		s.PassesCompleted++
	}
}

// RecordTackle counts a tackle and, when won, a won duel.
func (s *MatchStats) RecordTackle(won bool) {
	s.TacklesAttempted++
	if won {
		s.TacklesWon++
		s.DuelsWon++
	} else {
		s.DuelsLost++
	}
}

// RecordDribble counts a take-on.
func (s *MatchStats) RecordDribble(beatMan bool) {
	s.DribblesAttempt++
	if beatMan {
		s.DribblesWon++
		s.DuelsWon++
	} else {
		s.DuelsLost++
	}
}

// RecordMovement adds distance travelled during dt seconds.
func (s *MatchStats) RecordMovement(dist, dt float64) {
	if dist <= 0 || dt <= 0 {
		return
	}
	s.Distance += dist
	s.TopSpeed = math.Max(s.TopSpeed, dist/dt)
}

// PassAccuracy is the completion percentage, 0 when no pass was tried.
func (s MatchStats) PassAccuracy() float64 {
	if s.PassesAttempted == 0 {
		return 0
	}
	return float64(s.PassesCompleted) / float64(s.PassesAttempted) * 100
}

// ShotAccuracy is the on-target percentage.
func (s MatchStats) ShotAccuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.ShotsOnTarget) / float64(s.Shots) * 100
}

// Rating is the 1-10 match rating starting from 6.0.
func (s MatchStats) Rating() float64 {
	r := 6.0
	r += float64(s.Goals) * 0.3
	r += float64(s.Assists) * 0.2
	r += s.PassAccuracy() * 0.01
	r += float64(s.TacklesWon) * 0.1
	r += float64(s.Interceptions) * 0.05
	r += float64(s.Saves) * 0.1
	r -= float64(s.Fouls) * 0.1
	r -= float64(s.YellowCards) * 0.2
	r -= float64(s.RedCards) * 2
	return math.Max(1, math.Min(10, r))
}

// Add folds other into s, keeping the higher top speed.
func (s *MatchStats) Add(o MatchStats) {
	s.Goals += o.Goals
	s.Assists += o.Assists
	s.Shots += o.Shots
	s.ShotsOnTarget += o.ShotsOnTarget
	s.PassesAttempted += o.PassesAttempted
	s.PassesCompleted += o.PassesCompleted
	s.TacklesAttempted += o.TacklesAttempted
	s.TacklesWon += o.TacklesWon
	s.Interceptions += o.Interceptions
	s.Fouls += o.Fouls
	s.YellowCards += o.YellowCards
	s.RedCards += o.RedCards
	s.DribblesAttempt += o.DribblesAttempt
	s.DribblesWon += o.DribblesWon
	s.Saves += o.Saves
	s.DuelsWon += o.DuelsWon
	s.DuelsLost += o.DuelsLost
	s.TricksPerformed += o.TricksPerformed
	s.Distance += o.Distance
	s.TopSpeed = math.Max(s.TopSpeed, o.TopSpeed)
	s.PossessionTime += o.PossessionTime
}

// String is a one-line summary used in match reports.
func (s MatchStats) String() string {
	return fmt.Sprintf("G%d A%d Sh%d/%d Pa%d/%d Tk%d/%d Sv%d Dist%.0fm Rt%.1f",
		s.Goals, s.Assists, s.ShotsOnTarget, s.Shots,
		s.PassesCompleted, s.PassesAttempted,
		s.TacklesWon, s.TacklesAttempted, s.Saves, s.Distance, s.Rating())
}
