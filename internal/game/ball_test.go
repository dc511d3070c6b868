package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

func TestBall_DragSlowsAndStops(t *testing.T) {
	b := NewBall(vec{})
	kicker := footballerAt(1, SideHome, player.CentralMidfield, 0, 0)
	b.kick(kicker, vec{0, 1}, 20, flightPass)

	b.step(1)
	want := 20 * math.Exp(-ballDrag)
	if math.Abs(b.Speed()-want) > 1e-9 {
		t.Fatalf("expected speed %.3f after 1s, got %.3f", want, b.Speed())
	}

	b = NewBall(vec{})
	b.kick(kicker, vec{0, 1}, 20, flightPass)
	for i := 0; i < 20*tickRate; i++ {
		b.step(dt)
	}
	if b.Speed() != 0 {
		t.Fatalf("ball should come to rest, speed %.4f", b.Speed())
	}
	if b.flight != flightNone {
		t.Fatal("resting ball should have no flight")
	}
	// Total roll is roughly v0/k.
	if b.pos.y > 20/ballDrag+0.5 {
		t.Fatalf("ball rolled further than drag allows: %.2f", b.pos.y)
	}
}

func TestBall_CarriedFollowsCarrier(t *testing.T) {
	f := footballerAt(1, SideHome, player.Striker, 5, 5)
	b := NewBall(vec{})
	b.attach(f)
	f.pos = vec{6, 8}
	b.step(dt)
	want := f.pos.add(f.facing().scale(carryOffset))
	if b.pos.dist(want) > 1e-9 {
		t.Fatalf("ball should sit in front of carrier, got %+v want %+v", b.pos, want)
	}
	if b.LastTouch() != f || b.Carrier() != f {
		t.Fatal("carrier should be recorded")
	}
}

func TestBall_KickerGrace(t *testing.T) {
	f := footballerAt(1, SideHome, player.Striker, 0, 0)
	b := NewBall(vec{0, 0.5})
	b.attach(f)
	b.kick(f, vec{0, 1}, 1, flightPass)
	if b.canCollect(f) {
		t.Fatal("kicker should not recollect during grace")
	}
	for i := 0; i < tickRate; i++ {
		b.step(dt)
	}
	f.pos = b.pos
	if !b.canCollect(f) {
		t.Fatal("kicker may collect once grace has passed")
	}
}

func TestBall_FastBallRunsPast(t *testing.T) {
	kicker := footballerAt(1, SideHome, player.Striker, 0, -5)
	def := footballerAt(2, SideAway, player.CenterBack, 0, 0.5)
	b := NewBall(vec{})
	b.kick(kicker, vec{0, 1}, 25, flightShot)
	if b.canCollect(def) {
		t.Fatal("outfield player should not trap a 25 m/s shot")
	}
	b.vel = vec{0, 5}
	if !b.canCollect(def) {
		t.Fatal("slow ball within reach should be collectable")
	}
}

func TestBall_PlaceAtClearsState(t *testing.T) {
	f := footballerAt(1, SideHome, player.Striker, 0, 0)
	b := NewBall(vec{})
	b.attach(f)
	b.placeAt(vec{10, -20})
	if b.Carrier() != nil || b.Speed() != 0 {
		t.Fatal("placed ball should be dead")
	}
	if x, y := b.Position(); x != 10 || y != -20 {
		t.Fatalf("unexpected position (%.1f,%.1f)", x, y)
	}
}
