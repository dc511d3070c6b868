// Package player holds footballer data: attributes, ratings, generation and
// per-match statistics.
package player

import (
	"fmt"
	"strings"
)

// Position is a footballer's preferred role on the pitch.
type Position int

const (
	Goalkeeper Position = iota
	CenterBack
	LeftBack
	RightBack
	DefensiveMidfield
	CentralMidfield
	AttackingMidfield
	LeftWing
	RightWing
	Striker
	positionCount
)

var positionCodes = [...]string{"GK", "CB", "LB", "RB", "DM", "CM", "AM", "LW", "RW", "ST"}

func (p Position) String() string {
	if p < 0 || p >= positionCount {
		return "??"
	}
	return positionCodes[p]
}

// ParsePosition accepts the two-letter code, case-insensitively.
func ParsePosition(s string) (Position, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for i, c := range positionCodes {
		if c == code {
			return Position(i), nil
		}
	}
	return Goalkeeper, fmt.Errorf("unknown position %q", s)
}

// Positions lists every position, goalkeeper first.
func Positions() []Position {
	out := make([]Position, positionCount)
	for i := range out {
		out[i] = Position(i)
	}
	return out
}

// Home returns the default pitch spot for the position, for a side attacking
// toward +Y with its own goal at y = -50.
func (p Position) Home() (x, y float64) {
	switch p {
	case Goalkeeper:
		return 0, -45
	case CenterBack:
		return 0, -30
	case LeftBack:
		return -20, -30
	case RightBack:
		return 20, -30
	case DefensiveMidfield:
		return 0, -15
	case CentralMidfield:
		return 0, 0
	case AttackingMidfield:
		return 0, 15
	case LeftWing:
		return -25, 20
	case RightWing:
		return 25, 20
	case Striker:
		return 0, 35
	}
	return 0, 0
}

// IsDefender reports whether the position sits in the back line.
func (p Position) IsDefender() bool {
	return p == CenterBack || p == LeftBack || p == RightBack
}

// IsAttacker reports whether the position plays in the front line.
func (p Position) IsAttacker() bool {
	return p == LeftWing || p == RightWing || p == Striker
}
