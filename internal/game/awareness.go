package game

import "math"

const (
	awarenessFOVDeg = 200.0 // footballers scan well past their shoulders
	awarenessRadius = 15.0  // metres
	turnRate        = 0.2   // radians per tick
)

// Awareness tracks where a footballer is facing and which opponents they
// have noticed this tick.
type Awareness struct {
	Heading  float64 // radians, 0 = east, pi/2 = north
	FOV      float64 // radians, total arc width
	MaxRange float64 // metres

	Nearby []*Footballer
}

// NewAwareness returns an awareness facing initialHeading.
func NewAwareness(initialHeading float64) Awareness {
	return Awareness{
		Heading:  initialHeading,
		FOV:      awarenessFOVDeg * math.Pi / 180.0,
		MaxRange: awarenessRadius,
	}
}

// InCone reports whether (px,py) is inside the awareness cone of an observer
// at (ox,oy).
func (a *Awareness) InCone(ox, oy, px, py float64) bool {
	dx := px - ox
	dy := py - oy
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > a.MaxRange || dist < 1e-6 {
		return false
	}
	diff := normalizeAngle(math.Atan2(dy, dx) - a.Heading)
	half := a.FOV / 2.0
	return diff >= -half && diff <= half
}

// UpdateHeading rotates the heading toward targetAngle by at most rate.
func (a *Awareness) UpdateHeading(targetAngle float64, rate float64) {
	diff := normalizeAngle(targetAngle - a.Heading)
	switch {
	case math.Abs(diff) <= rate:
		a.Heading = normalizeAngle(targetAngle)
	case diff > 0:
		a.Heading = normalizeAngle(a.Heading + rate)
	default:
		a.Heading = normalizeAngle(a.Heading - rate)
	}
}

// HeadingTo returns the angle in radians from (ox,oy) toward (tx,ty).
func HeadingTo(ox, oy, tx, ty float64) float64 {
	return math.Atan2(ty-oy, tx-ox)
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// angleBetween is the absolute difference of two headings in radians.
func angleBetween(a, b float64) float64 {
	return math.Abs(normalizeAngle(a - b))
}

// Scan refreshes Nearby from the candidates inside the cone. Sent-off
// players are ignored.
func (a *Awareness) Scan(ox, oy float64, candidates []*Footballer) {
	a.Nearby = a.Nearby[:0]
	for _, c := range candidates {
		if c.sentOff {
			continue
		}
		if a.InCone(ox, oy, c.pos.x, c.pos.y) {
			a.Nearby = append(a.Nearby, c)
		}
	}
}

// DegradeRange shrinks the scan range as the footballer tires.
func (a *Awareness) DegradeRange(fatigue float64) float64 {
	return a.MaxRange * (1.0 - fatigue*0.3)
}
