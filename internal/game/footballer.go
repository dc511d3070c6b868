package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

const (
	footballerRadius = 0.6 // metres, drawing only
	arriveRadius     = 0.4 // close enough to a movement target
	controlRadius    = 1.2 // a free ball this close can be collected
	carryOffset      = 0.7 // ball sits this far in front of the carrier
)

// Footballer is one player on the pitch: a profile, a role in the team shape,
// a kinematic body and an AI brain.
type Footballer struct {
	id      int
	label   string // "H7", "A10"
	side    Side
	profile player.Profile
	role    player.Position
	slot    vec // formation spot for a side attacking north

	pos   vec
	vel   vec
	aware Awareness
	cond  Condition
	brain Brain
	stats player.MatchStats

	sprinting      bool
	tackleCooldown float64
	yellowCards    int
	sentOff        bool
	lastShout      int
}

// NewFootballer places a footballer at pos facing heading.
func NewFootballer(id int, side Side, prof player.Profile, role player.Position, pos vec, heading float64) *Footballer {
	return &Footballer{
		id:        id,
		label:     fmt.Sprintf("%s%d", sideLabel(side), prof.Number),
		side:      side,
		profile:   prof,
		role:      role,
		pos:       pos,
		aware:     NewAwareness(heading),
		cond:      NewCondition(prof.Attributes.Stamina),
		brain:     Brain{State: StatePositioning},
		lastShout: -shoutCooldown,
	}
}

func (f *Footballer) ID() int                  { return f.id }
func (f *Footballer) Label() string            { return f.label }
func (f *Footballer) Side() Side               { return f.side }
func (f *Footballer) Role() player.Position    { return f.role }
func (f *Footballer) Profile() player.Profile  { return f.profile }
func (f *Footballer) Stats() player.MatchStats { return f.stats }
func (f *Footballer) State() BrainState        { return f.brain.State }
func (f *Footballer) Position() (x, y float64) { return f.pos.x, f.pos.y }
func (f *Footballer) Heading() float64         { return f.aware.Heading }
func (f *Footballer) SentOff() bool            { return f.sentOff }
func (f *Footballer) Condition() Condition     { return f.cond }

// attr is shorthand for the footballer's ratings.
func (f *Footballer) attr() player.Attributes { return f.profile.Attributes }

// topSpeed is the flat-out running speed in metres per second.
func (f *Footballer) topSpeed() float64 {
	a := f.attr()
	base := 5.0 + 3.0*float64(a.Speed)/99.0
	return base * f.cond.SpeedMul()
}

// moveToward runs toward target for one tick at speedMul of top speed and
// returns the distance covered.
func (f *Footballer) moveToward(target vec, speedMul float64) float64 {
	d := target.sub(f.pos)
	dist := d.len()
	if dist < arriveRadius {
		f.vel = vec{}
		f.cond.AccumulateFatigue(0, dt)
		f.cond.RecoverSprint(dt)
		return 0
	}
	f.aware.UpdateHeading(d.heading(), turnRate)

	speed := f.topSpeed() * speedMul
	if f.sprinting && f.cond.UseSprint(dt) {
		speed *= sprintSpeedMul
	} else {
		f.cond.RecoverSprint(dt)
	}
	step := math.Min(speed*dt, dist)
	f.vel = d.unit().scale(step / dt)
	f.pos = clampToPitch(f.pos.add(d.unit().scale(step)))
	f.cond.AccumulateFatigue(clamp01(speedMul), dt)
	f.stats.RecordMovement(step, dt)
	return step
}

// stand stops the footballer for this tick.
func (f *Footballer) stand() {
	f.vel = vec{}
	f.cond.AccumulateFatigue(0, dt)
	f.cond.RecoverSprint(dt)
}

// facing returns the unit vector the footballer is looking along.
func (f *Footballer) facing() vec { return fromHeading(f.aware.Heading) }

// Draw renders the footballer as a kit-coloured disc with a heading tick.
// toScreen maps pitch metres to screen pixels; scale is pixels per metre.
func (f *Footballer) Draw(screen *ebiten.Image, toScreen func(vec) (float32, float32), scale float32, primary, secondary color.RGBA, selected bool) {
	if f.sentOff {
		return
	}
	x, y := toScreen(f.pos)
	r := float32(footballerRadius) * scale
	vector.DrawFilledCircle(screen, x, y, r, primary, true)
	vector.StrokeCircle(screen, x, y, r, 1.5, secondary, true)
	if selected {
		vector.StrokeCircle(screen, x, y, r+3, 1.5, color.RGBA{R: 255, G: 255, B: 0, A: 230}, true)
	}
	hx, hy := toScreen(f.pos.add(f.facing().scale(footballerRadius * 2)))
	vector.StrokeLine(screen, x, y, hx, hy, 1.5, color.RGBA{R: 255, G: 255, B: 255, A: 180}, true)
}
