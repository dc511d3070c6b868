package gesture

import (
	"fmt"
	"strings"
)

// Trick names a dribbling move. None means no template matched.
type Trick int

const (
	None Trick = iota
	StepOverRight
	StepOverLeft
	Roulette
	Elastico
	Nutmeg
	RainbowFlick
	HeelFlick
	Scorpion
	Rabona
	Bicycle
	Chop
	CutInside
	FakeShot
	BodyFeint
	Dummy
	Spin
	trickCount
)

var trickNames = [...]string{
	None:          "none",
	StepOverRight: "step_over_right",
	StepOverLeft:  "step_over_left",
	Roulette:      "roulette",
	Elastico:      "elastico",
	Nutmeg:        "nutmeg",
	RainbowFlick:  "rainbow_flick",
	HeelFlick:     "heel_flick",
	Scorpion:      "scorpion",
	Rabona:        "rabona",
	Bicycle:       "bicycle",
	Chop:          "chop",
	CutInside:     "cut_inside",
	FakeShot:      "fake_shot",
	BodyFeint:     "body_feint",
	Dummy:         "dummy",
	Spin:          "spin",
}

func (t Trick) String() string {
	if t < 0 || t >= trickCount {
		return "unknown"
	}
	return trickNames[t]
}

// Valid reports whether t is a member of the enumeration.
func (t Trick) Valid() bool {
	return t >= None && t < trickCount
}

// ParseTrick resolves a trick name as printed by String. Case, spaces and
// dashes are ignored.
func ParseTrick(s string) (Trick, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for i, name := range trickNames {
		if name == key {
			return Trick(i), nil
		}
	}
	return None, fmt.Errorf("unknown trick %q", s)
}

// AllTricks lists every real trick (None excluded) in declaration order.
func AllTricks() []Trick {
	out := make([]Trick, 0, int(trickCount)-1)
	for t := StepOverRight; t < trickCount; t++ {
		out = append(out, t)
	}
	return out
}
