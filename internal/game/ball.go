package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Ball tuning.
const (
	ballDrag        = 1.2  // per second; speed decays as exp(-ballDrag·t)
	ballRestSpeed   = 0.05 // below this the ball stops
	pickupMaxSpeed  = 14.0 // faster balls run past a player
	kickGrace       = 0.3  // seconds the kicker cannot collect their own kick
	passSpeedPerPow = 30.0
	shotSpeedPerPow = 32.0
	ballRadius      = 0.22
)

// flightKind tags a ball that left a foot on purpose.
type flightKind int

const (
	flightNone flightKind = iota
	flightPass
	flightShot
)

// Ball is kinematic: either glued in front of its carrier or rolling freely
// with linear drag.
type Ball struct {
	pos  vec
	prev vec
	vel  vec

	carrier   *Footballer
	lastTouch *Footballer
	kicker    *Footballer // blocked from collecting during grace
	origin    *Footballer // who started the current flight
	grace     float64

	flight    flightKind
	shotPower float64
	saveTaken bool
}

// NewBall places a stationary ball at p.
func NewBall(p vec) *Ball {
	return &Ball{pos: p, prev: p}
}

// Position returns the ball position in metres.
func (b *Ball) Position() (x, y float64) { return b.pos.x, b.pos.y }

// Carrier returns the footballer in possession, or nil.
func (b *Ball) Carrier() *Footballer { return b.carrier }

// LastTouch returns whoever touched the ball last.
func (b *Ball) LastTouch() *Footballer { return b.lastTouch }

// Speed is the free-ball speed in m/s.
func (b *Ball) Speed() float64 { return b.vel.len() }

// attach gives the ball to f and clears any flight.
func (b *Ball) attach(f *Footballer) {
	b.carrier = f
	b.lastTouch = f
	b.vel = vec{}
	b.flight = flightNone
	b.kicker = nil
	b.origin = nil
	b.grace = 0
	b.pos = clampToPitch(f.pos.add(f.facing().scale(carryOffset)))
	b.prev = b.pos
}

// kick releases the ball from by along dir at speed.
func (b *Ball) kick(by *Footballer, dir vec, speed float64, kind flightKind) {
	b.carrier = nil
	b.lastTouch = by
	b.kicker = by
	b.origin = by
	b.grace = kickGrace
	b.vel = dir.unit().scale(speed)
	b.flight = kind
	b.saveTaken = false
}

// placeAt drops a dead ball at p for a restart.
func (b *Ball) placeAt(p vec) {
	b.carrier = nil
	b.vel = vec{}
	b.flight = flightNone
	b.kicker = nil
	b.origin = nil
	b.pos = p
	b.prev = p
}

// step advances the ball by dt seconds and remembers where it came from so
// line crossings can be tested on the swept segment.
func (b *Ball) step(dt float64) {
	b.prev = b.pos
	if b.carrier != nil {
		b.pos = clampToPitch(b.carrier.pos.add(b.carrier.facing().scale(carryOffset)))
		return
	}
	if b.grace > 0 {
		b.grace -= dt
		if b.grace <= 0 {
			b.kicker = nil
		}
	}
	b.pos = b.pos.add(b.vel.scale(dt))
	b.vel = b.vel.scale(math.Exp(-ballDrag * dt))
	if b.vel.len() < ballRestSpeed {
		b.vel = vec{}
		b.flight = flightNone
	}
}

// canCollect reports whether f may take a free ball this tick.
func (b *Ball) canCollect(f *Footballer) bool {
	if b.carrier != nil || f.sentOff || f == b.kicker {
		return false
	}
	if f.pos.dist(b.pos) > controlRadius {
		return false
	}
	return b.vel.len() < pickupMaxSpeed
}

// Draw renders the ball and a short velocity trail.
func (b *Ball) Draw(screen *ebiten.Image, toScreen func(vec) (float32, float32), scale float32) {
	x, y := toScreen(b.pos)
	if b.vel.len() > 1 {
		tx, ty := toScreen(b.pos.sub(b.vel.scale(0.08)))
		vector.StrokeLine(screen, x, y, tx, ty, 2, color.RGBA{R: 255, G: 255, B: 255, A: 90}, true)
	}
	vector.DrawFilledCircle(screen, x, y, float32(ballRadius*2)*scale, color.White, true)
	vector.StrokeCircle(screen, x, y, float32(ballRadius*2)*scale, 1, color.Black, true)
}
