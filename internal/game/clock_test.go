package game

import "testing"

func TestMatchClock_Halves(t *testing.T) {
	c := NewMatchClock(45, 60) // one real second is a match minute
	if c.State() != ClockPreGame {
		t.Fatalf("new clock should be pre-game, got %s", c.State())
	}
	if ev := c.Advance(1); ev != ClockNoEvent || c.Elapsed() != 0 {
		t.Fatal("clock should not run before kickoff")
	}
	c.Start()

	var ev ClockEvent
	ticks := 0
	for ev == ClockNoEvent {
		ev = c.Advance(dt)
		ticks++
	}
	if ev != ClockHalfTimeReached || c.State() != ClockHalfTime {
		t.Fatalf("expected half time, got event %d state %s", ev, c.State())
	}
	if c.Minute() != 45 || c.Display() != "45:00" {
		t.Fatalf("half should end on 45:00, got %s", c.Display())
	}
	if ticks < 45*tickRate-1 || ticks > 45*tickRate+1 {
		t.Fatalf("expected about %d ticks in the half, got %d", 45*tickRate, ticks)
	}
	if c.HalfSign() != 1 {
		t.Fatal("first half sign should be +1")
	}

	c.StartSecondHalf()
	if c.Half() != 2 || c.HalfSign() != -1 || !c.Running() {
		t.Fatal("second half should be running with ends switched")
	}
	ev = ClockNoEvent
	for ev == ClockNoEvent {
		ev = c.Advance(dt)
	}
	if ev != ClockFullTimeReached || c.State() != ClockEnded || c.Display() != "90:00" {
		t.Fatalf("expected full time at 90:00, got %s %s", c.State(), c.Display())
	}
	if c.Advance(1) != ClockNoEvent || c.Elapsed() != 90*60 {
		t.Fatal("ended clock must not move")
	}
}

func TestMatchClock_Pause(t *testing.T) {
	c := NewMatchClock(20, 1)
	c.Start()
	c.Advance(10)
	c.TogglePause()
	if c.State() != ClockPaused {
		t.Fatalf("expected paused, got %s", c.State())
	}
	c.Advance(10)
	if c.Elapsed() != 10 {
		t.Fatalf("paused clock moved to %.1f", c.Elapsed())
	}
	c.TogglePause()
	if !c.Running() {
		t.Fatal("unpause should resume play")
	}
}

func TestMatchClock_Defaults(t *testing.T) {
	c := NewMatchClock(0, 0)
	c.Start()
	c.Advance(60)
	if c.Minute() != 1 {
		t.Fatalf("zero scale should default to real time, minute %d", c.Minute())
	}
}

func TestResultText(t *testing.T) {
	cases := []struct {
		h, a int
		want string
	}{
		{2, 1, "Rovers wins 2-1!"},
		{0, 3, "Athletic wins 3-0!"},
		{1, 1, "Draw 1-1!"},
	}
	for _, tc := range cases {
		if got := ResultText("Rovers", "Athletic", tc.h, tc.a); got != tc.want {
			t.Fatalf("ResultText(%d,%d) = %q, want %q", tc.h, tc.a, got, tc.want)
		}
	}
}
