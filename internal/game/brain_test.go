package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Garsondee/Pitch-Sense/internal/gesture"
	"github.com/Garsondee/Pitch-Sense/internal/player"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(7)) // #nosec G404 -- test harness
}

// --- States ---

func TestBrainState_String(t *testing.T) {
	if StatePressing.String() != "pressing" || StateHoldingBall.String() != "holding" {
		t.Fatal("unexpected state names")
	}
	if BrainState(99).String() != "unknown" {
		t.Fatal("out of range state should be unknown")
	}
}

func TestBrain_DueEveryInterval(t *testing.T) {
	var b Brain
	if !b.Due(0) {
		t.Fatal("first call should be due")
	}
	b.supportSide = 1
	if b.Due(0.1) {
		t.Fatal("should not re-decide before the interval")
	}
	if !b.Due(0.11) {
		t.Fatal("should re-decide once the interval has passed")
	}
}

// --- With the ball ---

func TestDecide_PassesToOpenTeammateNearGoal(t *testing.T) {
	self := footballerAt(1, SideHome, player.CentralMidfield, 0, 20)
	mate := footballerAt(2, SideHome, player.Striker, 0, 38)
	v := View{
		Self: self.pos, Heading: math.Pi / 2, Role: player.CentralMidfield,
		AttackDir: 1, Ball: self.pos, HasBall: true,
		Teammates: []*Footballer{mate},
	}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StatePassing {
		t.Fatalf("expected passing, got %s (quality %.2f)", s, PassQuality(self.pos, mate, nil, 1))
	}
	if b.PassTo != mate {
		t.Fatal("pass target should be the open teammate")
	}
}

func TestDecide_ShootsWhenFacingGoalInRange(t *testing.T) {
	v := View{
		Self: vec{2, 35}, Heading: math.Pi / 2, Role: player.Striker,
		AttackDir: 1, Ball: vec{2, 35}, HasBall: true,
	}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StateShooting {
		t.Fatalf("expected shooting, got %s", s)
	}
	if b.Target != goalCentre(1) {
		t.Fatalf("shot should aim at the north goal, got %+v", b.Target)
	}
}

func TestDecide_NoShotFacingAway(t *testing.T) {
	v := View{
		Self: vec{2, 35}, Heading: -math.Pi / 2, Role: player.Striker,
		AttackDir: 1, Ball: vec{2, 35}, HasBall: true,
	}
	var b Brain
	if s := b.Decide(v, testRNG()); s == StateShooting {
		t.Fatal("should not shoot while facing own goal")
	}
}

func TestDecide_DribblesPastCloseOpponent(t *testing.T) {
	opp := footballerAt(9, SideAway, player.CenterBack, 0, 2)
	v := View{
		Self: vec{0, 0}, Heading: math.Pi / 2, Role: player.CentralMidfield,
		AttackDir: 1, Ball: vec{0, 0}, HasBall: true,
		Opponents: []*Footballer{opp}, SkillMoves: 5,
	}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StateDribbling {
		t.Fatalf("expected dribbling, got %s", s)
	}
	if !b.Trick.Valid() || b.Trick == gesture.None {
		t.Fatalf("dribble should pick a trick, got %s", b.Trick)
	}
}

func TestDecide_HoldsBallAndAdvances(t *testing.T) {
	v := View{
		Self: vec{0, -10}, Heading: math.Pi / 2, Role: player.CentralMidfield,
		AttackDir: 1, Ball: vec{0, -10}, HasBall: true,
	}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StateHoldingBall {
		t.Fatalf("expected holding, got %s", s)
	}
	if b.Target.y <= v.Self.y {
		t.Fatalf("holding should carry toward goal, target %+v", b.Target)
	}
}

// --- Without the ball ---

func TestDecide_ChasesLooseBall(t *testing.T) {
	v := View{Self: vec{0, 0}, Role: player.CentralMidfield, AttackDir: 1, Ball: vec{3, 0}}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StateChasingBall {
		t.Fatalf("expected chasing, got %s", s)
	}
}

func TestDecide_DoesNotChaseTeammatesBall(t *testing.T) {
	carrier := footballerAt(2, SideHome, player.Striker, 3, 0)
	v := View{
		Self: vec{0, 0}, Role: player.CentralMidfield, AttackDir: 1, Ball: vec{3, 0},
		Carrier: carrier, CarrierOwn: true,
	}
	var b Brain
	if s := b.Decide(v, testRNG()); s == StateChasingBall {
		t.Fatal("should not chase a ball a teammate already has")
	}
	if b.State != StateSupporting {
		t.Fatalf("expected supporting, got %s", b.State)
	}
}

func TestDecide_PressesOnlyWhenSelected(t *testing.T) {
	carrier := footballerAt(9, SideAway, player.Striker, 0, 20)
	v := View{
		Self: vec{0, 0}, Role: player.CentralMidfield, AttackDir: 1, Ball: carrier.pos,
		Carrier: carrier, IsPresser: true,
	}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StatePressing {
		t.Fatalf("expected pressing, got %s", s)
	}
	v.IsPresser = false
	v.Opponents = []*Footballer{footballerAt(8, SideAway, player.LeftWing, 4, 0)}
	if s := b.Decide(v, testRNG()); s != StateMarking {
		t.Fatalf("non-presser near an opponent should mark, got %s", s)
	}
}

func TestDecide_MarkingStandsBallSide(t *testing.T) {
	opp := footballerAt(8, SideAway, player.LeftWing, 5, 0)
	v := View{
		Self: vec{0, 0}, Role: player.CenterBack, AttackDir: 1, Ball: vec{5, 30},
		Opponents: []*Footballer{opp},
	}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StateMarking {
		t.Fatalf("expected marking, got %s", s)
	}
	want := vec{5, markGap}
	if b.Target.dist(want) > 1e-9 {
		t.Fatalf("mark spot should be %.1fm toward the ball from the opponent, got %+v", markGap, b.Target)
	}
}

func TestDecide_PositionsWhenNothingElse(t *testing.T) {
	v := View{Self: vec{0, -30}, Role: player.CenterBack, Slot: vec{0, -30}, AttackDir: 1, Ball: vec{0, 30}}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StatePositioning {
		t.Fatalf("expected positioning, got %s", s)
	}
}

func TestDecide_KeeperStaysOnLine(t *testing.T) {
	v := View{Self: vec{0, -48}, Role: player.Goalkeeper, AttackDir: 1, Ball: vec{0, 20}}
	var b Brain
	if s := b.Decide(v, testRNG()); s != StatePositioning {
		t.Fatalf("keeper should hold position, got %s", s)
	}
	if b.Target.y > -45 {
		t.Fatalf("keeper target should stay near the line, got %+v", b.Target)
	}
	v.Ball = vec{1, -46}
	if s := b.Decide(v, testRNG()); s != StateChasingBall {
		t.Fatalf("keeper should claim a loose ball in the box, got %s", s)
	}
}

// --- Helpers ---

func TestPassQuality_BlockedLaneScoresLower(t *testing.T) {
	from := vec{0, 0}
	mate := footballerAt(2, SideHome, player.Striker, 0, 15)
	open := PassQuality(from, mate, nil, 1)
	blocker := footballerAt(9, SideAway, player.CenterBack, 0, 7)
	blocked := PassQuality(from, mate, []*Footballer{blocker}, 1)
	if blocked >= open {
		t.Fatalf("blocked lane should score lower: open %.2f, blocked %.2f", open, blocked)
	}
	if math.Abs(open-blocked-0.28) > 1e-9 {
		t.Fatalf("blocking should cost 0.4×0.7, got %.3f", open-blocked)
	}
}

func TestChooseTrick_BySkillMoves(t *testing.T) {
	rng := testRNG()
	all := gesture.AllTricks()
	for i := 0; i < 200; i++ {
		if tr := ChooseTrick(1, rng); tr != gesture.StepOverRight && tr != gesture.StepOverLeft {
			t.Fatalf("one-star dribbler should only step over, got %s", tr)
		}
		if tr := ChooseTrick(3, rng); tr > all[3] {
			t.Fatalf("three-star dribbler limited to the first four tricks, got %s", tr)
		}
	}
	seen := map[gesture.Trick]bool{}
	for i := 0; i < 2000; i++ {
		seen[ChooseTrick(5, rng)] = true
	}
	if len(seen) != len(all) {
		t.Fatalf("five-star dribbler should reach every trick, saw %d of %d", len(seen), len(all))
	}
}

func TestShapeSpot_CapsAdvanceAheadOfSlot(t *testing.T) {
	if p := shapeSpot(vec{0, -30}, vec{0, 60}, 1); math.Abs(p.y-(-10)) > 1e-9 {
		t.Fatalf("north-attacking spot at y=%.2f, want capped at -10", p.y)
	}
	if p := shapeSpot(vec{0, 30}, vec{0, -60}, -1); math.Abs(p.y-10) > 1e-9 {
		t.Fatalf("south-attacking spot at y=%.2f, want capped at 10", p.y)
	}
	if p := shapeSpot(vec{0, -30}, vec{0, -40}, 1); math.Abs(p.y-(-46)) > 1e-9 {
		t.Fatalf("retreating spot at y=%.2f, want -46", p.y)
	}
}
