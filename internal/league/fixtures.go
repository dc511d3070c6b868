package league

// Fixture is one scheduled match.
type Fixture struct {
	Matchday int // 1-based
	Home     int
	Away     int
	Played   bool
}

const bye = -1

// Schedule builds a double round robin with the circle method. Every pair
// meets twice, once at each ground; an odd field gives one team a bye per
// matchday.
func Schedule(teamIDs []int) ([]Fixture, error) {
	if len(teamIDs) < 2 {
		return nil, ErrTooFewTeams
	}
	ids := append([]int(nil), teamIDs...)
	if len(ids)%2 == 1 {
		ids = append(ids, bye)
	}
	n := len(ids)
	rounds := n - 1

	var first []Fixture
	for r := 0; r < rounds; r++ {
		for i := 0; i < n/2; i++ {
			home, away := ids[i], ids[n-1-i]
			if home == bye || away == bye {
				continue
			}
			// Alternate venues so nobody plays a long run at home.
			if (i == 0 && r%2 == 1) || (i > 0 && i%2 == 1) {
				home, away = away, home
			}
			first = append(first, Fixture{Matchday: r + 1, Home: home, Away: away})
		}
		// Rotate everyone but the first slot one step clockwise.
		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}

	out := make([]Fixture, 0, len(first)*2)
	out = append(out, first...)
	for _, f := range first {
		out = append(out, Fixture{Matchday: f.Matchday + rounds, Home: f.Away, Away: f.Home})
	}
	return out, nil
}
