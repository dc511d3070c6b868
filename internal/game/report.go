package game

import (
	"fmt"
	"strings"
)

const (
	reportSampleEvery = tickRate // one sample per real second
	reportWindow      = 60       // samples kept for the rolling window
	reportHistoryMax  = 600
)

// ReportSample is one snapshot of team behaviour.
type ReportSample struct {
	Tick       int
	Minute     int
	HomeStates map[BrainState]int
	AwayStates map[BrainState]int
	Possession Side // valid when Loose is false
	Loose      bool
	BallThird  int // 0 home defensive third, 1 middle, 2 home attacking third
}

// MatchReporter samples the match at a fixed interval and summarises the
// most recent window.
type MatchReporter struct {
	window  int
	history []ReportSample
}

// NewMatchReporter keeps window samples for WindowSummary.
func NewMatchReporter(window int) *MatchReporter {
	if window <= 0 {
		window = reportWindow
	}
	return &MatchReporter{window: window}
}

// Collect takes a sample when the tick falls on the sampling interval.
func (r *MatchReporter) Collect(m *Match) {
	if m.tick%reportSampleEvery != 0 {
		return
	}
	s := ReportSample{
		Tick:       m.tick,
		Minute:     m.minute(),
		HomeStates: map[BrainState]int{},
		AwayStates: map[BrainState]int{},
		Loose:      true,
	}
	for _, f := range m.all {
		if f.sentOff {
			continue
		}
		if f.side == SideHome {
			s.HomeStates[f.brain.State]++
		} else {
			s.AwayStates[f.brain.State]++
		}
	}
	if c := m.ball.carrier; c != nil {
		s.Possession = c.side
		s.Loose = false
	}
	// Thirds are measured along the home side's attack.
	y := m.ball.pos.y * m.attackDir(SideHome)
	switch {
	case y < -pitchHalfLength/3:
		s.BallThird = 0
	case y > pitchHalfLength/3:
		s.BallThird = 2
	default:
		s.BallThird = 1
	}
	r.history = append(r.history, s)
	if len(r.history) > reportHistoryMax {
		r.history = r.history[len(r.history)-reportHistoryMax:]
	}
}

// History returns every kept sample, oldest first.
func (r *MatchReporter) History() []ReportSample { return r.history }

// Latest returns the newest sample, or nil before the first.
func (r *MatchReporter) Latest() *ReportSample {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// WindowReport aggregates the last window of samples.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	// State distribution as percentages (0-100).
	HomeStatePct map[BrainState]float64
	AwayStatePct map[BrainState]float64

	HomePossessionPct float64
	LoosePct          float64
	BallThirdPct      [3]float64
}

// WindowSummary aggregates the current window, or nil with no samples.
func (r *MatchReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}
	samples := r.history
	if len(samples) > r.window {
		samples = samples[len(samples)-r.window:]
	}
	wr := &WindowReport{
		FromTick:     samples[0].Tick,
		ToTick:       samples[len(samples)-1].Tick,
		SampleCount:  len(samples),
		HomeStatePct: map[BrainState]float64{},
		AwayStatePct: map[BrainState]float64{},
	}
	homeTotal, awayTotal := 0, 0
	homeBall, loose := 0, 0
	for _, s := range samples {
		for st, n := range s.HomeStates {
			wr.HomeStatePct[st] += float64(n)
			homeTotal += n
		}
		for st, n := range s.AwayStates {
			wr.AwayStatePct[st] += float64(n)
			awayTotal += n
		}
		switch {
		case s.Loose:
			loose++
		case s.Possession == SideHome:
			homeBall++
		}
		wr.BallThirdPct[s.BallThird]++
	}
	for st := range wr.HomeStatePct {
		wr.HomeStatePct[st] = wr.HomeStatePct[st] / float64(max(1, homeTotal)) * 100
	}
	for st := range wr.AwayStatePct {
		wr.AwayStatePct[st] = wr.AwayStatePct[st] / float64(max(1, awayTotal)) * 100
	}
	n := float64(len(samples))
	owned := len(samples) - loose
	if owned > 0 {
		wr.HomePossessionPct = float64(homeBall) / float64(owned) * 100
	} else {
		wr.HomePossessionPct = 50
	}
	wr.LoosePct = float64(loose) / n * 100
	for i := range wr.BallThirdPct {
		wr.BallThirdPct[i] = wr.BallThirdPct[i] / n * 100
	}
	return wr
}

// Format returns the window summary as text.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Behaviour Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)

	for _, side := range []struct {
		name string
		pct  map[BrainState]float64
	}{{"HOME", wr.HomeStatePct}, {"AWAY", wr.AwayStatePct}} {
		fmt.Fprintf(&sb, "\n--- %s State Distribution ---\n", side.name)
		for st := StatePositioning; st <= StateHoldingBall; st++ {
			if pct := side.pct[st]; pct > 0.5 {
				fmt.Fprintf(&sb, "  %-12s %5.1f%%\n", st, pct)
			}
		}
	}
	sb.WriteString("\n--- Ball ---\n")
	fmt.Fprintf(&sb, "  possession home=%.0f%% away=%.0f%%  loose=%.0f%%\n",
		wr.HomePossessionPct, 100-wr.HomePossessionPct, wr.LoosePct)
	fmt.Fprintf(&sb, "  thirds (home view) def=%.0f%% mid=%.0f%% att=%.0f%%\n",
		wr.BallThirdPct[0], wr.BallThirdPct[1], wr.BallThirdPct[2])
	return sb.String()
}

// MatchReport is the full post-match write-up.
type MatchReport struct {
	Mode      string
	Home      string
	Away      string
	HomeGoals int
	AwayGoals int
	Outcome   OutcomeReason
	Events    []MatchEvent
	Grades    []PlayerGrade
	Window    *WindowReport
	Ticks     int
}

// BuildReport gathers the report for m as it stands.
func BuildReport(m *Match) MatchReport {
	h, a := m.Score()
	return MatchReport{
		Mode:      m.Mode.Name,
		Home:      m.home.Team.Name,
		Away:      m.away.Team.Name,
		HomeGoals: h,
		AwayGoals: a,
		Outcome:   DetermineOutcome(m),
		Events:    m.events,
		Grades:    GradePlayers(m.all, m.Mode.MatchMinutes()),
		Window:    m.reporter.WindowSummary(),
		Ticks:     m.tick,
	}
}

// Format renders the whole report, suitable for the clipboard or a terminal.
func (r MatchReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s: %s %d - %d %s ===\n", r.Mode, r.Home, r.HomeGoals, r.AwayGoals, r.Away)
	fmt.Fprintf(&sb, "%s\n", r.Outcome.Description)
	fmt.Fprintf(&sb, "ticks=%d\n", r.Ticks)

	sb.WriteString("\n--- Events ---\n")
	n := 0
	for _, e := range r.Events {
		if e.Kind == "kickoff" {
			continue
		}
		fmt.Fprintf(&sb, "  %2d' %-9s %-4s %s\n", e.Minute, e.Kind, e.Player, e.Detail)
		n++
	}
	if n == 0 {
		sb.WriteString("  none\n")
	}
	sb.WriteString(FormatGrades(r.Grades))
	sb.WriteString("\n")
	sb.WriteString(FormatGradesSummary(r.Grades))
	if r.Window != nil {
		sb.WriteString("\n")
		sb.WriteString(r.Window.Format())
	}
	return sb.String()
}
