package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Garsondee/Pitch-Sense/internal/achievement"
	"github.com/Garsondee/Pitch-Sense/internal/career"
	"github.com/Garsondee/Pitch-Sense/internal/game"
	"github.com/Garsondee/Pitch-Sense/internal/gesture"
)

func TestTeamGoalCounts(t *testing.T) {
	grades := []game.PlayerGrade{
		{Side: game.SideHome, SentOff: true},
		{Side: game.SideHome},
		{Side: game.SideAway},
		{Side: game.SideAway},
	}
	grades[1].Stats.Goals = 2
	grades[2].Stats.Goals = 1

	hg, ag, hs, as := teamGoalCounts(grades)
	if hg != 2 || ag != 1 {
		t.Fatalf("expected goals home=2 away=1, got home=%d away=%d", hg, ag)
	}
	if hs != 1 || as != 0 {
		t.Fatalf("expected sent off home=1 away=0, got home=%d away=%d", hs, as)
	}
}

func TestClassifyMatch_StalemateWhenGoallessAndQuiet(t *testing.T) {
	rs := runStats{shots: 3}
	kind, reason := classifyMatch(rs)
	if kind != "stalemate" {
		t.Fatalf("expected stalemate, got %s (reason=%s)", kind, reason)
	}
	if !strings.Contains(reason, "low_threat") {
		t.Fatalf("expected reason to mention low_threat, got: %s", reason)
	}
}

func TestClassifyMatch_RoutOnBigMargin(t *testing.T) {
	rs := runStats{shots: 20}
	rs.report.HomeGoals = 0
	rs.report.AwayGoals = 4
	if kind, reason := classifyMatch(rs); kind != "rout" {
		t.Fatalf("expected rout, got %s (reason=%s)", kind, reason)
	}
}

func TestClassifyMatch_ContestOtherwise(t *testing.T) {
	rs := runStats{shots: 12}
	rs.report.HomeGoals = 2
	rs.report.AwayGoals = 1
	if kind, _ := classifyMatch(rs); kind != "contest" {
		t.Fatalf("expected contest, got %s", kind)
	}
}

func TestTopTrait_TiesBreakAlphabetically(t *testing.T) {
	got := topTrait(map[string]int{"work_rate": 2, "clinical": 2, "wasteful": 1})
	if got != "clinical(2)" {
		t.Fatalf("expected clinical(2), got %s", got)
	}
	if topTrait(nil) != "" {
		t.Fatal("expected empty trait for no counts")
	}
}

func TestParsePoints(t *testing.T) {
	pts, err := parsePoints(" 0,0  10,-5\t20.5,3 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	if pts[2].X != 20.5 || pts[1].Y != -5 {
		t.Fatalf("unexpected points %+v", pts)
	}
	if pts[2].T != 2*sampleGap {
		t.Fatalf("expected timestamps spaced by %v, got %v", sampleGap, pts[2].T)
	}
	if _, err := parsePoints("1,2 3"); err == nil {
		t.Fatal("expected an error for a point without a comma")
	}
	if _, err := parsePoints("1,x"); err == nil {
		t.Fatal("expected an error for a bad number")
	}
}

func TestClassify_TemplateShape(t *testing.T) {
	pts, err := parsePoints("0,0 80,0 80,-80")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var buf bytes.Buffer
	if err := classify(&buf, gesture.Default(), pts); err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "trick: "+gesture.Elastico.String()) {
		t.Fatalf("expected elastico, got:\n%s", buf.String())
	}
}

func TestClassify_TooFewPoints(t *testing.T) {
	pts, _ := parsePoints("5,5")
	if err := classify(&bytes.Buffer{}, gesture.Default(), pts); err == nil {
		t.Fatal("expected an error for a single point")
	}
}

func TestRunMatches_KeepsRunOrder(t *testing.T) {
	o := matchesOptions{runs: 3, seedBase: 10, seedStep: 5, scale: 900, workers: 2}
	all, err := runMatches(context.Background(), o, game.DefaultMode())
	if err != nil {
		t.Fatalf("runMatches: %v", err)
	}
	for i, rs := range all {
		if rs.runIndex != i+1 || rs.seed != 10+int64(i)*5 {
			t.Fatalf("run %d out of order: index=%d seed=%d", i, rs.runIndex, rs.seed)
		}
		if rs.report.Outcome.Outcome == game.OutcomeUnfinished {
			t.Fatalf("run %d did not finish", rs.runIndex)
		}
	}
}

func TestRunMatches_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := matchesOptions{runs: 2, seedBase: 1, seedStep: 1, scale: 60, workers: 1}
	if _, err := runMatches(ctx, o, game.DefaultMode()); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}

func TestSeasonCommand_PrintsTableAndCareer(t *testing.T) {
	var buf bytes.Buffer
	if err := runSeasons(&buf, seasonOptions{teams: 4, club: 1, seed: 3, manager: "Test", seasons: 1}); err != nil {
		t.Fatalf("season: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"=== Season 1 ===", "=== Career ===", "=== Achievements ===", "season_advanced"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestSeasonCommand_UnknownClub(t *testing.T) {
	if err := runSeasons(&bytes.Buffer{}, seasonOptions{teams: 4, club: 6, seasons: 1}); err == nil {
		t.Fatal("expected an error for a club outside the league")
	}
}

func TestSyncReputation_UnlocksLegendaryManager(t *testing.T) {
	car := career.New("Test", 1, 50)
	tracker := achievement.NewTracker()
	syncReputation(car, tracker)
	if tracker.IsUnlocked("legendary_manager") {
		t.Fatal("unlocked at starting reputation")
	}
	car.Reputation = career.MaxReputation
	syncReputation(car, tracker)
	if !tracker.IsUnlocked("legendary_manager") {
		t.Fatalf("reputation %d did not unlock legendary_manager", car.Reputation)
	}
	if got := tracker.Stat(achievement.StatReputation); got != career.MaxReputation {
		t.Fatalf("tracked reputation = %d", got)
	}
}

func TestTournamentCommand_HasWinner(t *testing.T) {
	var buf bytes.Buffer
	if err := runTournament(&buf, tournamentOptions{kind: "champions", teams: 6, seed: 9}); err != nil {
		t.Fatalf("tournament: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "--- Final ---") || !strings.Contains(out, "winner: ") {
		t.Fatalf("expected a final and a winner:\n%s", out)
	}
	if !strings.Contains(out, "(bye)") {
		t.Fatalf("six entrants should produce byes:\n%s", out)
	}
}
