package game

import (
	"math"
	"testing"
)

func TestEffectiveFitness_Fresh(t *testing.T) {
	c := Condition{FitnessBase: 0.8}
	if ef := c.EffectiveFitness(); math.Abs(ef-0.8) > 1e-9 {
		t.Fatalf("expected 0.8, got %.4f", ef)
	}
}

func TestEffectiveFitness_Fatigued(t *testing.T) {
	c := Condition{FitnessBase: 1.0, Fatigue: 1.0}
	// 1.0 * (1 - 0.8) = 0.2
	if ef := c.EffectiveFitness(); math.Abs(ef-0.2) > 1e-9 {
		t.Fatalf("expected 0.2, got %.4f", ef)
	}
}

func TestAccumulateFatigue_IncreasesAndRecovers(t *testing.T) {
	c := NewCondition(60)
	c.AccumulateFatigue(1.0, 10)
	if c.Fatigue <= 0 {
		t.Fatal("fatigue should increase with exertion")
	}
	before := c.Fatigue
	c.AccumulateFatigue(0, 10)
	if c.Fatigue >= before {
		t.Fatal("fatigue should decrease when resting")
	}
}

func TestAccumulateFatigue_Cap(t *testing.T) {
	c := Condition{FitnessBase: 0.2, Fatigue: 0.999}
	c.AccumulateFatigue(1.0, 100)
	if c.Fatigue > 1.0 {
		t.Fatalf("fatigue should cap at 1.0, got %.4f", c.Fatigue)
	}
}

func TestNewCondition_ClampsFitness(t *testing.T) {
	if c := NewCondition(1); c.FitnessBase != 0.2 {
		t.Fatalf("fitness floor should be 0.2, got %.3f", c.FitnessBase)
	}
	if c := NewCondition(99); c.FitnessBase != 1 {
		t.Fatalf("fitness for 99 stamina should be 1, got %.3f", c.FitnessBase)
	}
}

func TestSprintPool_Drains(t *testing.T) {
	c := NewCondition(70)
	for i := 0; i < int(sprintPoolMax*tickRate); i++ {
		c.UseSprint(dt)
	}
	if c.UseSprint(dt) {
		t.Fatal("sprint should be exhausted after the full pool")
	}
	c.RecoverSprint(1)
	if c.SprintPool <= 0 {
		t.Fatal("sprint pool should recover")
	}
}

func TestConfidence_AffectsAccuracy(t *testing.T) {
	low := Condition{FitnessBase: 1, Confidence: 0}
	high := Condition{FitnessBase: 1, Confidence: 1}
	if low.AccuracyMul() >= high.AccuracyMul() {
		t.Fatalf("confident player should be more accurate: %.3f vs %.3f", low.AccuracyMul(), high.AccuracyMul())
	}
	high.Boost(5)
	if high.Confidence != 1 {
		t.Fatalf("confidence should clamp at 1, got %.3f", high.Confidence)
	}
}
