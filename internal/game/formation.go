package game

import (
	"math"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

// slotSpacing is the lateral gap in metres between footballers who share a
// position in the lineup (two centre backs, three central midfielders).
const slotSpacing = 14.0

// FutsalLineup is the five-a-side shape used when a mode fields five.
func FutsalLineup() []player.Position {
	return []player.Position{player.Goalkeeper, player.CenterBack, player.LeftWing, player.RightWing, player.Striker}
}

// lineupFor returns n positions: the formation's eleven, the futsal five, or
// the first n of the formation for any other size.
func lineupFor(f player.Formation, n int) []player.Position {
	if n == 5 {
		return FutsalLineup()
	}
	l := f.Lineup()
	if n > 0 && n < len(l) {
		return l[:n]
	}
	return l
}

// formationSlots maps a lineup to local spots for a side attacking north.
// Positions that appear more than once are spread symmetrically across the
// pitch around the position's home spot.
func formationSlots(lineup []player.Position) []vec {
	count := map[player.Position]int{}
	for _, p := range lineup {
		count[p]++
	}
	seen := map[player.Position]int{}
	out := make([]vec, len(lineup))
	for i, p := range lineup {
		x, y := p.Home()
		n := count[p]
		k := seen[p]
		seen[p]++
		if n > 1 {
			x += (float64(k) - float64(n-1)/2) * slotSpacing
		}
		out[i] = vec{x, y}
	}
	return out
}

// slotToWorld mirrors a north-facing slot for the end a side attacks.
// Rotating through 180 degrees keeps left backs on their own left.
func slotToWorld(slot vec, attackDir float64) vec {
	return vec{slot.x * attackDir, slot.y * attackDir}
}

// kickoffSpot pulls a slot back into its own half for a kickoff.
func kickoffSpot(slot vec, attackDir float64) vec {
	w := slotToWorld(slot, attackDir)
	if w.y*attackDir > -1 {
		w.y = -attackDir * math.Min(centreCircle+1, math.Abs(w.y)+1)
	}
	return w
}

// SlotWorld converts a local (forward, right) offset into a world position
// given an anchor position and heading.
func SlotWorld(anchorX, anchorY, heading, fwd, right float64) (float64, float64) {
	fx := math.Cos(heading)
	fy := math.Sin(heading)
	// Right is 90° clockwise from forward.
	rx := fy
	ry := -fx

	wx := anchorX + fx*fwd + rx*right
	wy := anchorY + fy*fwd + ry*right
	return wx, wy
}
