package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

func TestFormationSlots_ElevenOnOwnSide(t *testing.T) {
	for _, f := range player.Formations() {
		slots := formationSlots(lineupFor(f, 11))
		if len(slots) != 11 {
			t.Fatalf("%s: expected 11 slots, got %d", f, len(slots))
		}
		if slots[0].y > -40 {
			t.Fatalf("%s: goalkeeper slot should be near own goal, got y=%.1f", f, slots[0].y)
		}
		for i, s := range slots {
			if !onPitch(s) {
				t.Fatalf("%s: slot %d off the pitch: %+v", f, i, s)
			}
		}
	}
}

func TestFormationSlots_DuplicatesSpread(t *testing.T) {
	slots := formationSlots([]player.Position{player.CenterBack, player.CenterBack, player.CenterBack})
	if slots[0].x >= slots[1].x || slots[1].x >= slots[2].x {
		t.Fatalf("centre backs should spread left to right: %+v", slots)
	}
	if math.Abs(slots[1].x) > 1e-9 {
		t.Fatalf("middle centre back should sit centrally, got x=%.2f", slots[1].x)
	}
	for i := 1; i < 3; i++ {
		if slots[i].y != slots[0].y {
			t.Fatalf("shared position should share depth: %+v", slots)
		}
	}
}

func TestLineupFor_Futsal(t *testing.T) {
	l := lineupFor(player.F442, 5)
	if len(l) != 5 || l[0] != player.Goalkeeper || l[4] != player.Striker {
		t.Fatalf("unexpected futsal lineup %v", l)
	}
}

func TestSlotToWorld_MirrorsForSouth(t *testing.T) {
	s := vec{-20, -30} // left back
	n := slotToWorld(s, 1)
	south := slotToWorld(s, -1)
	if n != s {
		t.Fatalf("north-facing slot should be unchanged, got %+v", n)
	}
	if south.x != 20 || south.y != 30 {
		t.Fatalf("south-facing slot should rotate through 180°, got %+v", south)
	}
}

func TestKickoffSpot_OwnHalf(t *testing.T) {
	striker := vec{0, 35}
	for _, dir := range []float64{1, -1} {
		p := kickoffSpot(striker, dir)
		if p.y*dir >= 0 {
			t.Fatalf("dir %.0f: kickoff spot should be in own half, got y=%.1f", dir, p.y)
		}
	}
}

func TestSlotWorld_ForwardAndRight(t *testing.T) {
	// Heading north (+Y): forward is +Y, right is +X.
	x, y := SlotWorld(0, 0, math.Pi/2, 5, 3)
	if math.Abs(x-3) > 1e-9 || math.Abs(y-5) > 1e-9 {
		t.Fatalf("expected (3,5), got (%.3f,%.3f)", x, y)
	}
	// Heading east (+X): right is -Y.
	x, y = SlotWorld(10, 10, 0, 2, 4)
	if math.Abs(x-12) > 1e-9 || math.Abs(y-6) > 1e-9 {
		t.Fatalf("expected (12,6), got (%.3f,%.3f)", x, y)
	}
}
