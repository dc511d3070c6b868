package game

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

// PlayerGrade is the post-match assessment of one footballer.
type PlayerGrade struct {
	Label   string
	Side    Side
	Role    player.Position
	Grade   string  // A+, A, B+, B, C+, C, D, F
	Score   float64 // 0-100
	Rating  float64 // 1-10 match rating
	SentOff bool

	// Situation scores (0-100; -1 = not enough data to grade).
	AttackScore  float64
	PassingScore float64
	DefendScore  float64
	WorkScore    float64

	GoodTraits []string
	BadTraits  []string

	Stats player.MatchStats
}

// GradePlayers grades every footballer, home side first, best first.
func GradePlayers(fs []*Footballer, matchMinutes int) []PlayerGrade {
	grades := make([]PlayerGrade, 0, len(fs))
	for _, f := range fs {
		grades = append(grades, gradeFootballer(f, matchMinutes))
	}
	sort.Slice(grades, func(i, j int) bool {
		if grades[i].Side != grades[j].Side {
			return grades[i].Side < grades[j].Side
		}
		if grades[i].Score != grades[j].Score {
			return grades[i].Score > grades[j].Score
		}
		return grades[i].Label < grades[j].Label
	})
	return grades
}

func gradeFootballer(f *Footballer, matchMinutes int) PlayerGrade {
	s := f.stats
	g := PlayerGrade{
		Label:        f.label,
		Side:         f.side,
		Role:         f.role,
		Rating:       s.Rating(),
		SentOff:      f.sentOff,
		AttackScore:  -1,
		PassingScore: -1,
		DefendScore:  -1,
		WorkScore:    -1,
		Stats:        s,
	}

	// --- Attack: goals, shots on target, take-ons ---
	if s.Shots+s.DribblesAttempt > 0 {
		v := 50.0
		v += 20 * float64(s.Goals)
		v += 20 * perfFrac(s.ShotsOnTarget, s.Shots)
		v += 15 * perfFrac(s.DribblesWon, s.DribblesAttempt)
		v -= 10 * perfFrac(s.Shots-s.ShotsOnTarget, max(1, s.Shots))
		g.AttackScore = perfClamp(v)
	}

	// --- Passing: completion with a bonus for assists ---
	if s.PassesAttempted >= 3 {
		v := 30 + 0.6*s.PassAccuracy() + 10*float64(s.Assists)
		g.PassingScore = perfClamp(v)
	}

	// --- Defending: tackles, interceptions, saves; fouls cost ---
	if s.TacklesAttempted+s.Interceptions+s.Saves > 0 {
		v := 50.0
		v += 25 * perfFrac(s.TacklesWon, max(1, s.TacklesAttempted))
		v += 5 * float64(s.Interceptions)
		v += 8 * float64(s.Saves)
		v -= 5 * float64(s.Fouls)
		g.DefendScore = perfClamp(v)
	}

	// --- Work rate: distance per match minute ---
	if matchMinutes > 0 && s.Distance > 0 {
		perMin := s.Distance / float64(matchMinutes)
		g.WorkScore = perfClamp(40 + perMin*0.5)
	}

	type scoredWeight struct {
		score  float64
		weight float64
	}
	var items []scoredWeight
	for _, it := range []scoredWeight{
		{g.AttackScore, 0.30},
		{g.PassingScore, 0.25},
		{g.DefendScore, 0.25},
		{g.WorkScore, 0.20},
	} {
		if it.score >= 0 {
			items = append(items, it)
		}
	}
	if len(items) > 0 {
		totalW, totalS := 0.0, 0.0
		for _, it := range items {
			totalW += it.weight
			totalS += it.score * it.weight
		}
		g.Score = totalS / totalW
	} else {
		g.Score = 50
	}
	// Blend with the match rating so cards and goals always count.
	g.Score = perfClamp(0.7*g.Score + 0.3*(g.Rating*10))
	if f.sentOff {
		g.Score = math.Min(g.Score, 40)
	}
	g.Grade = PerfLetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = perfDetectTraits(s)
	return g
}

func perfDetectTraits(s player.MatchStats) (good, bad []string) {
	if s.Goals >= 3 {
		good = append(good, "hat-trick")
	} else if s.Goals > 0 {
		good = append(good, "scorer")
	}
	if s.Assists > 0 {
		good = append(good, "creator")
	}
	if s.PassesAttempted >= 10 && s.PassAccuracy() >= 85 {
		good = append(good, "metronome")
	}
	if s.TacklesWon >= 3 {
		good = append(good, "ball-winner")
	}
	if s.DribblesWon >= 3 {
		good = append(good, "trickster")
	}
	if s.Saves >= 3 {
		good = append(good, "shot-stopper")
	}

	if s.PassesAttempted >= 5 && s.PassAccuracy() < 50 {
		bad = append(bad, "wasteful")
	}
	if s.Shots >= 3 && s.ShotsOnTarget == 0 {
		bad = append(bad, "off-target")
	}
	if s.Fouls >= 3 {
		bad = append(bad, "reckless")
	}
	if s.RedCards > 0 {
		bad = append(bad, "sent-off")
	}
	if s.DribblesAttempt >= 3 && s.DribblesWon == 0 {
		bad = append(bad, "dispossessed")
	}
	return good, bad
}

// FormatGrades returns the per-player grade table.
func FormatGrades(grades []PlayerGrade) string {
	var sb strings.Builder
	sb.WriteString("\n=== Player Grades ===\n")

	current := Side(-1)
	for _, g := range grades {
		if g.Side != current {
			current = g.Side
			fmt.Fprintf(&sb, "\n--- %s ---\n", strings.ToUpper(g.Side.String()))
		}
		status := ""
		if g.SentOff {
			status = " [sent off]"
		}
		fmt.Fprintf(&sb, "  %-3s  %-4s %-2s  rating=%.1f  %s%s\n",
			g.Grade, g.Label, g.Role, g.Rating, g.Stats, status)
		if len(g.GoodTraits) > 0 {
			fmt.Fprintf(&sb, "       Good: %s\n", strings.Join(g.GoodTraits, ", "))
		}
		if len(g.BadTraits) > 0 {
			fmt.Fprintf(&sb, "       Bad:  %s\n", strings.Join(g.BadTraits, ", "))
		}
	}
	return sb.String()
}

// FormatGradesSummary returns one line per side with the average grade and
// the most common traits.
func FormatGradesSummary(grades []PlayerGrade) string {
	var sb strings.Builder
	type sideStats struct {
		count     int
		scoreSum  float64
		goodCount map[string]int
		badCount  map[string]int
	}
	sides := map[Side]*sideStats{}
	for _, g := range grades {
		ss, ok := sides[g.Side]
		if !ok {
			ss = &sideStats{goodCount: map[string]int{}, badCount: map[string]int{}}
			sides[g.Side] = ss
		}
		ss.count++
		ss.scoreSum += g.Score
		for _, t := range g.GoodTraits {
			ss.goodCount[t]++
		}
		for _, t := range g.BadTraits {
			ss.badCount[t]++
		}
	}
	for _, side := range []Side{SideHome, SideAway} {
		ss, ok := sides[side]
		if !ok {
			continue
		}
		avg := ss.scoreSum / float64(ss.count)
		fmt.Fprintf(&sb, "  %s: avg_score=%.1f (%s)\n", strings.ToUpper(side.String()), avg, PerfLetterGrade(avg))
		if len(ss.goodCount) > 0 {
			fmt.Fprintf(&sb, "    Top good: %s\n", perfTopTraits(ss.goodCount, 4))
		}
		if len(ss.badCount) > 0 {
			fmt.Fprintf(&sb, "    Top bad:  %s\n", perfTopTraits(ss.badCount, 4))
		}
	}
	return sb.String()
}

func perfFrac(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func perfClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// PerfLetterGrade maps a 0-100 score to a letter grade.
func PerfLetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

func perfTopTraits(counts map[string]int, n int) string {
	type kv struct {
		trait string
		count int
	}
	var items []kv
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].trait < items[j].trait
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s(%d)", it.trait, it.count)
	}
	return strings.Join(parts, ", ")
}
