package game

import "math"

// Pitch geometry in metres. The origin is the centre spot, X runs across the
// pitch and Y runs from the south goal (y = -pitchHalfLength) to the north goal.
const (
	pitchHalfLength = 50.0
	pitchHalfWidth  = 32.0
	goalHalfWidth   = 3.66
	goalDepth       = 2.0
	penaltyDepth    = 16.5
	centreCircle    = 9.15
)

// tickRate is the fixed simulation rate; every tick advances dt seconds.
const (
	tickRate = 60
	dt       = 1.0 / tickRate
)

// Side distinguishes the two teams on the pitch.
type Side int

const (
	SideHome Side = iota
	SideAway
)

func (s Side) String() string {
	if s == SideHome {
		return "home"
	}
	return "away"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// sideLabel is the short team column used in SimLog lines.
func sideLabel(s Side) string {
	if s == SideHome {
		return "H"
	}
	return "A"
}

// vec is a small 2D helper; the simulation works on plain float pairs.
type vec struct{ x, y float64 }

func (v vec) add(o vec) vec       { return vec{v.x + o.x, v.y + o.y} }
func (v vec) sub(o vec) vec       { return vec{v.x - o.x, v.y - o.y} }
func (v vec) scale(k float64) vec { return vec{v.x * k, v.y * k} }
func (v vec) dot(o vec) float64   { return v.x*o.x + v.y*o.y }
func (v vec) len() float64        { return math.Hypot(v.x, v.y) }
func (v vec) dist(o vec) float64  { return v.sub(o).len() }
func (v vec) heading() float64    { return math.Atan2(v.y, v.x) }
func fromHeading(h float64) vec   { return vec{math.Cos(h), math.Sin(h)} }
func (v vec) unit() vec {
	l := v.len()
	if l < 1e-9 {
		return vec{}
	}
	return vec{v.x / l, v.y / l}
}

// onPitch reports whether p is inside the touchlines and goal lines.
func onPitch(p vec) bool {
	return math.Abs(p.x) <= pitchHalfWidth && math.Abs(p.y) <= pitchHalfLength
}

// clampToPitch pulls p back inside the field of play.
func clampToPitch(p vec) vec {
	return vec{
		x: math.Max(-pitchHalfWidth, math.Min(pitchHalfWidth, p.x)),
		y: math.Max(-pitchHalfLength, math.Min(pitchHalfLength, p.y)),
	}
}

// goalCentre returns the centre of the goal that a side attacking in
// direction dir (+1 north, -1 south) shoots at.
func goalCentre(dir float64) vec {
	return vec{0, dir * pitchHalfLength}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
