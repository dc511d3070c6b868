package player

// Attribute bounds.
const (
	MinRating     = 1
	MaxRating     = 99
	DefaultRating = 70
	MinStars      = 1
	MaxStars      = 5
)

// Attributes are the footballer ratings. Every rating lives in [1,99];
// weak foot and skill moves are star ratings in [1,5].
type Attributes struct {
	// Physical
	Speed, Acceleration, Stamina, Strength, Jumping, Agility int
	// Technical
	BallControl, Dribbling, Passing, Shooting, Technique, Finishing int
	// Mental
	Vision, Positioning, Marking, Tackling, Aggression, WorkRate int
	// Goalkeeping
	Diving, Handling, Kicking, GKPositioning, Reflexes int

	WeakFoot   int
	SkillMoves int
}

// DefaultAttributes returns an average outfield player with no goalkeeping.
func DefaultAttributes() Attributes {
	d := DefaultRating
	return Attributes{
		Speed: d, Acceleration: d, Stamina: d, Strength: d, Jumping: d, Agility: d,
		BallControl: d, Dribbling: d, Passing: d, Shooting: d, Technique: d, Finishing: d,
		Vision: d, Positioning: d, Marking: d, Tackling: d, Aggression: d, WorkRate: d,
		Diving: 1, Handling: 1, Kicking: 1, GKPositioning: 1, Reflexes: 1,
		WeakFoot: 3, SkillMoves: 3,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (a *Attributes) ratings() []*int {
	return []*int{
		&a.Speed, &a.Acceleration, &a.Stamina, &a.Strength, &a.Jumping, &a.Agility,
		&a.BallControl, &a.Dribbling, &a.Passing, &a.Shooting, &a.Technique, &a.Finishing,
		&a.Vision, &a.Positioning, &a.Marking, &a.Tackling, &a.Aggression, &a.WorkRate,
		&a.Diving, &a.Handling, &a.Kicking, &a.GKPositioning, &a.Reflexes,
	}
}

// Clamp forces every rating into range.
func (a *Attributes) Clamp() {
	for _, r := range a.ratings() {
		*r = clampInt(*r, MinRating, MaxRating)
	}
	a.WeakFoot = clampInt(a.WeakFoot, MinStars, MaxStars)
	a.SkillMoves = clampInt(a.SkillMoves, MinStars, MaxStars)
}

// Shift moves every rating by delta and clamps. Goalkeeping ratings only
// move for keepers, whose outfield ratings stay put.
func (a *Attributes) Shift(delta int, keeper bool) {
	rs := a.ratings()
	if keeper {
		rs = rs[18:]
	} else {
		rs = rs[:18]
	}
	for _, r := range rs {
		*r += delta
	}
	a.Clamp()
}

// Physical returns the sum of the six physical ratings.
func (a Attributes) Physical() int {
	return a.Speed + a.Acceleration + a.Stamina + a.Strength + a.Jumping + a.Agility
}

// Technical returns the sum of the six technical ratings.
func (a Attributes) Technical() int {
	return a.BallControl + a.Dribbling + a.Passing + a.Shooting + a.Technique + a.Finishing
}

// Mental returns the sum of the six mental ratings.
func (a Attributes) Mental() int {
	return a.Vision + a.Positioning + a.Marking + a.Tackling + a.Aggression + a.WorkRate
}

// Goalkeeping returns the sum of the five goalkeeping ratings.
func (a Attributes) Goalkeeping() int {
	return a.Diving + a.Handling + a.Kicking + a.GKPositioning + a.Reflexes
}

// Overall is the headline rating. Goalkeepers weight keeping 60, physical 25
// and a subset of mental 15; outfielders weight physical 25, technical 40 and
// mental 35.
func (a Attributes) Overall(pos Position) int {
	if pos == Goalkeeper {
		total := a.Goalkeeping()*60 + a.Physical()*25 +
			(a.Vision+a.Positioning+a.Aggression+a.WorkRate)*15
		return total / (5*60 + 6*25 + 4*15)
	}
	total := a.Physical()*25 + a.Technical()*40 + a.Mental()*35
	return total / (6*25 + 6*40 + 6*35)
}

// PositionRating scores how well the attributes suit pos. Each formula
// divides by the sum of its weights, so a flat 70 player rates 70 everywhere
// outfield.
func (a Attributes) PositionRating(pos Position) int {
	switch pos {
	case Goalkeeper:
		return a.Overall(Goalkeeper)
	case CenterBack:
		return (a.Marking*3 + a.Tackling*3 + a.Positioning*2 + a.Strength*2 + a.Jumping*2 +
			a.Speed + a.Acceleration + a.Stamina + a.Agility + a.WorkRate + a.Aggression) / 18
	case LeftBack, RightBack:
		return (a.Speed*2 + a.Acceleration*2 + a.Stamina*2 + a.Marking*2 + a.Tackling*2 +
			a.Passing*2 + a.Positioning + a.Strength + a.Agility + a.WorkRate + a.Aggression) / 17
	case DefensiveMidfield:
		return (a.Tackling*2 + a.Marking*2 + a.Passing*2 + a.Positioning*2 + a.WorkRate*2 +
			a.Strength + a.Stamina + a.BallControl + a.Vision + a.Aggression) / 15
	case CentralMidfield:
		return (a.Passing*3 + a.BallControl*2 + a.Vision*2 + a.Positioning*2 + a.Stamina*2 +
			a.Technique + a.Dribbling + a.Marking + a.Tackling + a.WorkRate) / 16
	case AttackingMidfield:
		return (a.Passing*2 + a.BallControl*2 + a.Vision*2 + a.Technique*2 + a.Dribbling*2 +
			a.Shooting + a.Finishing + a.Positioning + a.Speed + a.Agility) / 15
	case LeftWing, RightWing:
		return (a.Speed*3 + a.Acceleration*2 + a.Dribbling*2 + a.BallControl*2 + a.Agility*2 +
			a.Passing + a.Shooting + a.Technique + a.Stamina + a.WorkRate) / 16
	case Striker:
		return (a.Shooting*3 + a.Finishing*3 + a.Positioning*2 + a.BallControl*2 +
			a.Strength + a.Jumping + a.Speed + a.Acceleration + a.Technique + a.Agility) / 16
	}
	return a.Overall(pos)
}

// BestPosition returns the position with the highest PositionRating.
// Ties keep the earlier position.
func (a Attributes) BestPosition() Position {
	best, bestRating := Goalkeeper, -1
	for _, p := range Positions() {
		if r := a.PositionRating(p); r > bestRating {
			best, bestRating = p, r
		}
	}
	return best
}

// Trait is a specialist flag derived from the attributes.
type Trait uint8

const (
	TraitSkillMoveSpecialist Trait = 1 << iota
	TraitSpeedDemon
	TraitPowerShooter
	TraitPlaymaker
	TraitDefensiveWall
	TraitGoalScorer
)

// Traits derives the specialist flags.
func (a Attributes) Traits() Trait {
	var t Trait
	if a.SkillMoves >= 4 {
		t |= TraitSkillMoveSpecialist
	}
	if a.Speed >= 85 && a.Acceleration >= 80 {
		t |= TraitSpeedDemon
	}
	if a.Shooting >= 85 {
		t |= TraitPowerShooter
	}
	if a.Passing+a.Vision >= 170 {
		t |= TraitPlaymaker
	}
	if a.Marking+a.Tackling >= 170 {
		t |= TraitDefensiveWall
	}
	if a.Finishing >= 85 {
		t |= TraitGoalScorer
	}
	return t
}

// Has reports whether flag is set.
func (t Trait) Has(flag Trait) bool { return t&flag != 0 }
