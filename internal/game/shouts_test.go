package game

import (
	"slices"
	"testing"
)

func TestCallFor_ManOnAndTime(t *testing.T) {
	tm := NewTestMatch().SkipKickoff().Only("H10", "H8", "A3")
	tm.Place("H10", 0, 0, 0)
	tm.Place("H8", 6, 0, 0)
	tm.GiveBall("H10")
	h8 := tm.Player("H8")

	tm.Place("A3", 0, 1.5, 0)
	if got := tm.callFor(h8); !slices.Contains(manOnCalls, got) {
		t.Fatalf("pressed carrier: got %q, want a man-on call", got)
	}

	tm.Place("A3", 0, 30, 0)
	if got := tm.callFor(h8); !slices.Contains(timeCalls, got) {
		t.Fatalf("free carrier: got %q, want a time call", got)
	}

	if got := tm.callFor(tm.Player("A3")); got != "" {
		t.Fatalf("opponent should not call for the carrier, got %q", got)
	}
	if got := tm.callFor(tm.Player("H10")); got != "" {
		t.Fatalf("carrier should not call to themselves, got %q", got)
	}
}

func TestCallFor_KeeperClaimsLooseBall(t *testing.T) {
	tm := NewTestMatch().SkipKickoff()
	gk := tm.Player("H1")
	tm.PlaceBall(0, -40)
	gk.brain.State = StateChasingBall
	if got := tm.callFor(gk); got != "Keeper's!" {
		t.Fatalf("got %q, want the keeper's call", got)
	}
}

func TestShouts_ExpireAndRespectCooldown(t *testing.T) {
	tm := NewTestMatch(WithVerbose(true)).SkipKickoff().Only("H10", "H8", "A3")
	tm.Place("H10", 0, 0, 0)
	tm.Place("H8", 6, 0, 0)
	tm.Place("A3", 0, 30, 0)
	tm.GiveBall("H10")

	tm.tick = shoutEvery
	tm.updateShouts()
	if len(tm.Shouts()) != 1 {
		t.Fatalf("expected one call on the sampling tick, got %d", len(tm.Shouts()))
	}
	if s := tm.Shouts()[0]; s.Player.label != "H8" {
		t.Fatalf("expected H8 to call, got %s", s.Player.label)
	}

	for i := 0; i < shoutLifetime; i++ {
		tm.tick++
		tm.updateShouts()
	}
	if n := len(tm.Shouts()); n != 0 {
		t.Fatalf("expected calls to expire inside the cooldown, got %d live", n)
	}
	if got := tm.SimLog.Filter(catAI, "shout"); len(got) != 1 {
		t.Fatalf("expected one logged call, got %d", len(got))
	}
}
