package game

import (
	"fmt"
	"math"
)

// ClockState is the phase of a match.
type ClockState int

const (
	ClockPreGame ClockState = iota
	ClockPlaying
	ClockHalfTime
	ClockPaused
	ClockEnded
)

func (s ClockState) String() string {
	switch s {
	case ClockPreGame:
		return "pre-game"
	case ClockPlaying:
		return "playing"
	case ClockHalfTime:
		return "half-time"
	case ClockPaused:
		return "paused"
	case ClockEnded:
		return "full-time"
	default:
		return "unknown"
	}
}

// ClockEvent is what Advance reports when a half runs out.
type ClockEvent int

const (
	ClockNoEvent ClockEvent = iota
	ClockHalfTimeReached
	ClockFullTimeReached
)

// MatchClock runs match time in seconds. One real second of simulation
// advances the clock by scale match seconds.
type MatchClock struct {
	state      ClockState
	resumeTo   ClockState
	half       int
	elapsed    float64 // match seconds since kickoff
	halfLength float64 // match seconds
	scale      float64
}

// NewMatchClock returns a clock for halves of halfMinutes played at scale.
func NewMatchClock(halfMinutes int, scale float64) *MatchClock {
	if halfMinutes <= 0 {
		halfMinutes = 45
	}
	if scale <= 0 {
		scale = 1
	}
	return &MatchClock{state: ClockPreGame, half: 1, halfLength: float64(halfMinutes) * 60, scale: scale}
}

func (c *MatchClock) State() ClockState { return c.state }
func (c *MatchClock) Half() int         { return c.half }
func (c *MatchClock) Elapsed() float64  { return c.elapsed }

// Minute is the match minute as shown on a scoreboard, starting at 0.
func (c *MatchClock) Minute() int { return int(c.elapsed / 60) }

// Display formats the elapsed time as MM:SS.
func (c *MatchClock) Display() string {
	s := int(math.Floor(c.elapsed))
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// HalfSign is +1 in the first half and -1 in the second; sides switch ends
// at half time.
func (c *MatchClock) HalfSign() float64 {
	if c.half >= 2 {
		return -1
	}
	return 1
}

// Running reports whether play is live.
func (c *MatchClock) Running() bool { return c.state == ClockPlaying }

// Start kicks off the first half.
func (c *MatchClock) Start() {
	if c.state == ClockPreGame {
		c.state = ClockPlaying
	}
}

// Advance moves the clock by dt real seconds while playing. Stoppage is not
// added; the whistle blows exactly on time.
func (c *MatchClock) Advance(dt float64) ClockEvent {
	if c.state != ClockPlaying {
		return ClockNoEvent
	}
	c.elapsed += dt * c.scale
	switch {
	case c.half == 1 && c.elapsed >= c.halfLength:
		c.elapsed = c.halfLength
		c.state = ClockHalfTime
		return ClockHalfTimeReached
	case c.half == 2 && c.elapsed >= 2*c.halfLength:
		c.elapsed = 2 * c.halfLength
		c.state = ClockEnded
		return ClockFullTimeReached
	}
	return ClockNoEvent
}

// StartSecondHalf resumes play after the interval.
func (c *MatchClock) StartSecondHalf() {
	if c.state != ClockHalfTime {
		return
	}
	c.half = 2
	c.elapsed = c.halfLength
	c.state = ClockPlaying
}

// TogglePause pauses a live or interval clock, or resumes a paused one.
func (c *MatchClock) TogglePause() {
	switch c.state {
	case ClockPaused:
		c.state = c.resumeTo
	case ClockPlaying, ClockHalfTime, ClockPreGame:
		c.resumeTo = c.state
		c.state = ClockPaused
	}
}

// ResultText is the final-whistle banner, winner's score first.
func ResultText(homeName, awayName string, home, away int) string {
	switch {
	case home > away:
		return fmt.Sprintf("%s wins %d-%d!", homeName, home, away)
	case away > home:
		return fmt.Sprintf("%s wins %d-%d!", awayName, away, home)
	default:
		return fmt.Sprintf("Draw %d-%d!", home, away)
	}
}
