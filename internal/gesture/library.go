package gesture

import "time"

// Template is a reference polyline for one trick, in screen pixels.
type Template struct {
	Trick     Trick
	Points    []Point
	Tolerance float64 // pixel distance at which similarity reaches zero
	HoldAtEnd bool    // gesture must dwell on its last point
}

// Library is an ordered set of templates. Order breaks score ties.
type Library []Template

// Dwell requirements for HoldAtEnd templates.
const (
	dwellRadius = 12.0
	dwellTime   = 250 * time.Millisecond
)

// DefaultLibrary returns the built-in trick templates.
//
// FakeShot traces the same stroke as Nutmeg plus a hold, so it sits first and
// wins the tie whenever the hold is present.
func DefaultLibrary() Library {
	return Library{
		{Trick: StepOverRight, Tolerance: 30, Points: []Point{P(0, 0), P(100, 0)}},
		{Trick: StepOverLeft, Tolerance: 30, Points: []Point{P(0, 0), P(-100, 0)}},
		{Trick: Roulette, Tolerance: 40, Points: []Point{
			P(0, 0), P(50, 0), P(50, 50), P(0, 50), P(-50, 50),
			P(-50, 0), P(-50, -50), P(0, -50), P(50, -50), P(50, 0),
		}},
		{Trick: Elastico, Tolerance: 35, Points: []Point{P(0, 0), P(80, 0), P(80, -80)}},
		{Trick: FakeShot, Tolerance: 20, HoldAtEnd: true, Points: []Point{P(0, 0), P(0, 80), P(0, 80)}},
		{Trick: Nutmeg, Tolerance: 25, Points: []Point{P(0, 0), P(0, 100)}},
		{Trick: RainbowFlick, Tolerance: 30, Points: []Point{P(0, 0), P(30, 50), P(60, 80), P(90, 50), P(120, 0)}},
		{Trick: HeelFlick, Tolerance: 25, Points: []Point{P(0, 0), P(0, -100)}},
		{Trick: Scorpion, Tolerance: 40, Points: []Point{P(0, 0), P(50, 50), P(0, 100), P(-50, 150)}},
		{Trick: Rabona, Tolerance: 35, Points: []Point{P(0, 0), P(-50, 30), P(-70, 70), P(-50, 110), P(0, 140)}},
		{Trick: Bicycle, Tolerance: 45, Points: []Point{
			P(0, 0), P(40, 40), P(0, 80), P(-40, 40), P(0, 0),
			P(40, -40), P(0, -80), P(-40, -40), P(0, 0),
		}},
		{Trick: Chop, Tolerance: 30, Points: []Point{P(0, 0), P(70, -70)}},
		{Trick: CutInside, Tolerance: 35, Points: []Point{P(0, 0), P(50, 0), P(70, 30), P(50, 60), P(0, 60)}},
		{Trick: BodyFeint, Tolerance: 25, Points: []Point{P(0, 0), P(60, 0), P(-60, 0)}},
		{Trick: Dummy, Tolerance: 30, Points: []Point{P(0, 0), P(40, 40), P(0, 80), P(-40, 120), P(0, 160)}},
		{Trick: Spin, Tolerance: 25, Points: []Point{P(0, 0), P(30, 30), P(0, 60), P(-30, 30), P(0, 0)}},
	}
}

// Tricks returns the tricks in library order.
func (l Library) Tricks() []Trick {
	out := make([]Trick, len(l))
	for i, t := range l {
		out[i] = t.Trick
	}
	return out
}

// Lookup returns the template for trick t.
func (l Library) Lookup(t Trick) (Template, bool) {
	for _, tpl := range l {
		if tpl.Trick == t {
			return tpl, true
		}
	}
	return Template{}, false
}
