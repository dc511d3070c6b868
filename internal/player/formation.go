package player

import "fmt"

// Formation is a team shape, named the usual back-to-front way.
type Formation int

const (
	F442 Formation = iota
	F433
	F352
	F4231
	F541
)

var formationNames = [...]string{"4-4-2", "4-3-3", "3-5-2", "4-2-3-1", "5-4-1"}

func (f Formation) String() string {
	if f < 0 || int(f) >= len(formationNames) {
		return "?"
	}
	return formationNames[f]
}

// Formations lists every supported shape.
func Formations() []Formation {
	return []Formation{F442, F433, F352, F4231, F541}
}

// ParseFormation resolves names like "4-3-3".
func ParseFormation(s string) (Formation, error) {
	for i, n := range formationNames {
		if n == s {
			return Formation(i), nil
		}
	}
	return F442, fmt.Errorf("unknown formation %q", s)
}

// Lineup returns the eleven positions of the shape, goalkeeper first and
// then back to front, left to right.
func (f Formation) Lineup() []Position {
	switch f {
	case F433:
		return []Position{Goalkeeper, LeftBack, CenterBack, CenterBack, RightBack,
			CentralMidfield, DefensiveMidfield, CentralMidfield, LeftWing, Striker, RightWing}
	case F352:
		return []Position{Goalkeeper, CenterBack, CenterBack, CenterBack,
			LeftWing, CentralMidfield, DefensiveMidfield, CentralMidfield, RightWing, Striker, Striker}
	case F4231:
		return []Position{Goalkeeper, LeftBack, CenterBack, CenterBack, RightBack,
			DefensiveMidfield, DefensiveMidfield, LeftWing, AttackingMidfield, RightWing, Striker}
	case F541:
		return []Position{Goalkeeper, LeftBack, CenterBack, CenterBack, CenterBack, RightBack,
			LeftWing, CentralMidfield, CentralMidfield, RightWing, Striker}
	default:
		return []Position{Goalkeeper, LeftBack, CenterBack, CenterBack, RightBack,
			LeftWing, CentralMidfield, CentralMidfield, RightWing, Striker, Striker}
	}
}
