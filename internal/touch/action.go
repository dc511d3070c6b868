// Package touch turns raw finger events into gameplay actions: taps, swipes,
// charged shots and recognised tricks.
package touch

import (
	"math"
	"time"

	"github.com/Garsondee/Pitch-Sense/internal/gesture"
)

// Phase is the lifecycle stage of a finger.
type Phase int

const (
	Began Phase = iota
	Moved
	Stationary
	Ended
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Moved:
		return "moved"
	case Stationary:
		return "stationary"
	case Ended:
		return "ended"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Info is one finger sample. Coordinates are in pixels with Y growing upward.
type Info struct {
	FingerID int
	X, Y     float64
	Phase    Phase
	Pressure float64
	At       time.Duration
}

// ActionKind is what the controlled player should do.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionShoot
	ActionPass
	ActionTrick
	ActionSwitch // change control to the nearest teammate
	ActionSprint
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionShoot:
		return "shoot"
	case ActionPass:
		return "pass"
	case ActionTrick:
		return "trick"
	case ActionSwitch:
		return "switch"
	case ActionSprint:
		return "sprint"
	default:
		return "unknown"
	}
}

// Action is a command for the controlled player. Dir is a unit vector or
// zero when the receiver should pick the direction itself.
type Action struct {
	Kind   ActionKind
	DirX   float64
	DirY   float64
	Power  float64
	Trick  gesture.Trick
	Finger int
	At     time.Duration
}

func unit(dx, dy float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return dx / l, dy / l
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
