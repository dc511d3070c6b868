package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

// footballerAt builds a default-rated footballer for geometry and AI tests.
func footballerAt(id int, side Side, role player.Position, x, y float64) *Footballer {
	prof := player.NewProfile("Test", role)
	prof.Number = id
	return NewFootballer(id, side, prof, role, vec{x, y}, math.Pi/2)
}

func TestGoalMouth_BehindLine(t *testing.T) {
	n := goalMouth(1)
	if n.minY != pitchHalfLength || n.maxY <= n.minY {
		t.Fatalf("north mouth should start on the goal line: %+v", n)
	}
	s := goalMouth(-1)
	if s.maxY != -pitchHalfLength || s.minY >= s.maxY {
		t.Fatalf("south mouth should end on the goal line: %+v", s)
	}
}

func TestSegmentHits_ShotCrossesLine(t *testing.T) {
	if !segmentHits(vec{0, 49.5}, vec{0.5, 50.5}, goalMouth(1)) {
		t.Fatal("ball crossing between the posts should hit the mouth")
	}
	if segmentHits(vec{6, 49.5}, vec{6, 50.5}, goalMouth(1)) {
		t.Fatal("ball crossing wide of the post should miss")
	}
	if segmentHits(vec{0, 40}, vec{0, 45}, goalMouth(1)) {
		t.Fatal("ball short of the line should miss")
	}
}

func TestSegmentHitT_EntryParameter(t *testing.T) {
	tt, ok := segmentHitT(vec{0, 48}, vec{0, 52}, goalMouth(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(tt-0.5) > 1e-9 {
		t.Fatalf("expected entry at t=0.5, got %.3f", tt)
	}
}

func TestSegmentHits_VerticalSegmentOutsideSlab(t *testing.T) {
	// Zero x-delta outside the x range must not count.
	if segmentHits(vec{10, 40}, vec{10, 60}, goalMouth(1)) {
		t.Fatal("vertical segment outside the posts should miss")
	}
}

func TestDistToSegment(t *testing.T) {
	a, b := vec{0, 0}, vec{10, 0}
	if d := distToSegment(vec{5, 3}, a, b); math.Abs(d-3) > 1e-9 {
		t.Fatalf("expected 3, got %.3f", d)
	}
	if d := distToSegment(vec{-4, 3}, a, b); math.Abs(d-5) > 1e-9 {
		t.Fatalf("beyond the end should measure to the end point, got %.3f", d)
	}
	if d := distToSegment(vec{1, 1}, a, a); math.Abs(d-math.Sqrt2) > 1e-9 {
		t.Fatalf("degenerate segment should measure to the point, got %.3f", d)
	}
}

func TestLaneClear(t *testing.T) {
	a, b := vec{0, 0}, vec{0, 20}
	if !laneClear(a, b, nil) {
		t.Fatal("empty lane should be clear")
	}
	blocker := footballerAt(1, SideAway, player.CenterBack, 0.5, 10)
	if laneClear(a, b, []*Footballer{blocker}) {
		t.Fatal("opponent standing in the lane should block it")
	}
	wide := footballerAt(2, SideAway, player.CenterBack, 5, 10)
	if !laneClear(a, b, []*Footballer{wide}) {
		t.Fatal("opponent 5m wide should not block")
	}
	onReceiver := footballerAt(3, SideAway, player.CenterBack, 0, 20.2)
	if !laneClear(a, b, []*Footballer{onReceiver}) {
		t.Fatal("blocker on the receiver should be ignored")
	}
}
