package game

import (
	"math"
	"strings"
	"testing"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

func TestPerfLetterGrade_Boundaries(t *testing.T) {
	cases := map[float64]string{
		100: "A+", 93: "A+", 92.9: "A", 85: "A", 78: "B+", 70: "B",
		62: "C+", 55: "C", 45: "D", 44.9: "F", 0: "F",
	}
	for score, want := range cases {
		if got := PerfLetterGrade(score); got != want {
			t.Fatalf("PerfLetterGrade(%.1f) = %s, want %s", score, got, want)
		}
	}
}

func TestGradeFootballer_ScorerBeatsIdle(t *testing.T) {
	idle := footballerAt(9, SideHome, player.Striker, 0, 0)
	scorer := footballerAt(10, SideHome, player.Striker, 0, 0)
	scorer.stats = player.MatchStats{Goals: 3, Shots: 4, ShotsOnTarget: 4, Distance: 6000}

	gi := gradeFootballer(idle, 90)
	gs := gradeFootballer(scorer, 90)
	// No involvement: neutral 50 blended with a 6.0 rating.
	if math.Abs(gi.Score-53) > 1e-9 {
		t.Fatalf("idle score = %.1f", gi.Score)
	}
	if gs.Score <= gi.Score {
		t.Fatalf("scorer %.1f should beat idle %.1f", gs.Score, gi.Score)
	}
	if len(gs.GoodTraits) == 0 || gs.GoodTraits[0] != "hat-trick" {
		t.Fatalf("scorer traits %v", gs.GoodTraits)
	}
}

func TestGradeFootballer_SentOffCapped(t *testing.T) {
	f := footballerAt(4, SideAway, player.CenterBack, 0, 0)
	f.stats = player.MatchStats{TacklesAttempted: 5, TacklesWon: 5, RedCards: 1}
	f.sentOff = true
	g := gradeFootballer(f, 90)
	if g.Score > 40 {
		t.Fatalf("sent-off score %.1f above cap", g.Score)
	}
	if !g.SentOff || len(g.BadTraits) == 0 {
		t.Fatalf("grade %+v", g)
	}
}

func TestGradePlayers_SortedBySideThenScore(t *testing.T) {
	a := footballerAt(1, SideAway, player.Striker, 0, 0)
	h1 := footballerAt(2, SideHome, player.Striker, 0, 0)
	h2 := footballerAt(3, SideHome, player.Striker, 0, 0)
	h2.stats = player.MatchStats{Goals: 1, Shots: 1, ShotsOnTarget: 1}

	grades := GradePlayers([]*Footballer{a, h1, h2}, 90)
	if grades[0].Label != h2.label || grades[1].Label != h1.label || grades[2].Label != a.label {
		t.Fatalf("order %s %s %s", grades[0].Label, grades[1].Label, grades[2].Label)
	}
	out := FormatGrades(grades) + FormatGradesSummary(grades)
	for _, want := range []string{"--- HOME ---", "--- AWAY ---", "avg_score=", "scorer"} {
		if !strings.Contains(out, want) {
			t.Fatalf("grades output missing %q:\n%s", want, out)
		}
	}
}
