package game

import "math"

const (
	sprintPoolMax   = 6.0 // seconds of sprint a fresh player has
	sprintSpeedMul  = 1.3
	dribbleSpeedMul = 0.85
)

// Condition is a footballer's physical and mental state during a match.
type Condition struct {
	FitnessBase float64 // 0-1, from the stamina rating
	Fatigue     float64 // 0-1, 0 = fresh
	SprintPool  float64 // seconds of sprint remaining
	Confidence  float64 // 0-1, rises with good actions and drops with bad ones
}

// NewCondition derives the starting condition from a stamina rating.
func NewCondition(stamina int) Condition {
	return Condition{
		FitnessBase: clamp(float64(stamina)/99, 0.2, 1),
		SprintPool:  sprintPoolMax,
		Confidence:  0.5,
	}
}

// EffectiveFitness is fitness degraded by fatigue.
func (c *Condition) EffectiveFitness() float64 {
	return c.FitnessBase * (1.0 - c.Fatigue*0.8)
}

// AccumulateFatigue adds fatigue for exertion in [0,1] over dt seconds.
// Zero exertion recovers instead.
func (c *Condition) AccumulateFatigue(exertion, dt float64) {
	if exertion > 0 {
		rate := 0.004 * exertion / c.FitnessBase
		c.Fatigue = math.Min(1.0, c.Fatigue+rate*dt)
		return
	}
	c.Fatigue = math.Max(0.0, c.Fatigue-0.006*c.FitnessBase*dt)
}

// UseSprint drains the sprint pool and reports whether sprinting was possible.
func (c *Condition) UseSprint(dt float64) bool {
	if c.SprintPool <= 0 {
		return false
	}
	c.SprintPool = math.Max(0, c.SprintPool-dt)
	return true
}

// RecoverSprint refills the sprint pool while jogging.
func (c *Condition) RecoverSprint(dt float64) {
	c.SprintPool = math.Min(sprintPoolMax, c.SprintPool+dt*0.5*c.FitnessBase)
}

// Boost nudges confidence; negative amounts knock it.
func (c *Condition) Boost(amount float64) {
	c.Confidence = clamp01(c.Confidence + amount)
}

// SpeedMul is the multiplier on top speed from fitness and fatigue.
func (c *Condition) SpeedMul() float64 {
	return 0.7 + 0.3*c.EffectiveFitness()
}

// AccuracyMul scales shot and pass precision. A tired, rattled player is
// less accurate.
func (c *Condition) AccuracyMul() float64 {
	return (1.0 - c.Fatigue*0.3) * (0.85 + 0.3*c.Confidence)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
