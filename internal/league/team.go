// Package league runs domestic leagues and knockout tournaments: fixtures,
// results, standings and quick match simulation.
package league

import (
	"errors"
	"fmt"

	"github.com/Garsondee/Pitch-Sense/internal/player"
)

var (
	ErrTooFewTeams = errors.New("league: need at least two teams")
	ErrUnknownTeam = errors.New("league: unknown team")
	ErrSameTeam    = errors.New("league: a team cannot play itself")
	ErrDuplicateID = errors.New("league: duplicate team id")
	ErrBadScore    = errors.New("league: negative score")
)

// Team is a club entered in a competition. Ratings live in [1,99].
type Team struct {
	ID        int
	Name      string
	Short     string
	Attack    int
	Midfield  int
	Defense   int
	Overall   int // derived from the unit ratings when zero
	Formation player.Formation
	Stadium   string
	Capacity  int
	Prestige  int // 1-10, drives career objectives
}

func clampRating(v int) int {
	if v < player.MinRating {
		return player.MinRating
	}
	if v > player.MaxRating {
		return player.MaxRating
	}
	return v
}

// Normalize clamps the ratings and fills in Overall and Short.
func (t *Team) Normalize() {
	t.Attack = clampRating(t.Attack)
	t.Midfield = clampRating(t.Midfield)
	t.Defense = clampRating(t.Defense)
	if t.Overall == 0 {
		t.Overall = (t.Attack + t.Midfield + t.Defense) / 3
	}
	t.Overall = clampRating(t.Overall)
	if t.Short == "" {
		t.Short = shortName(t.Name)
	}
	if t.Prestige < 1 {
		t.Prestige = max(1, min(10, t.Overall/10))
	}
}

func shortName(name string) string {
	var out []rune
	for _, r := range name {
		if r == ' ' {
			continue
		}
		out = append(out, r)
		if len(out) == 3 {
			break
		}
	}
	return string(out)
}

func (t Team) String() string {
	return fmt.Sprintf("%s (%d)", t.Name, t.Overall)
}

// DemoTeams returns a small set of fictional clubs for quick play and tests.
func DemoTeams() []Team {
	teams := []Team{
		{ID: 1, Name: "Northbridge Rovers", Attack: 82, Midfield: 80, Defense: 78, Formation: player.F433, Stadium: "Riverside Park", Capacity: 41000},
		{ID: 2, Name: "Castleford Athletic", Attack: 76, Midfield: 79, Defense: 81, Formation: player.F4231, Stadium: "The Keep", Capacity: 32000},
		{ID: 3, Name: "Port Alder", Attack: 74, Midfield: 72, Defense: 70, Formation: player.F442, Stadium: "Harbour Road", Capacity: 18000},
		{ID: 4, Name: "Vale United", Attack: 69, Midfield: 71, Defense: 73, Formation: player.F541, Stadium: "Vale Ground", Capacity: 15000},
		{ID: 5, Name: "Stonehill City", Attack: 79, Midfield: 77, Defense: 75, Formation: player.F352, Stadium: "Stonehill Arena", Capacity: 36000},
		{ID: 6, Name: "Marsh Town", Attack: 65, Midfield: 66, Defense: 68, Formation: player.F442, Stadium: "The Marshes", Capacity: 9000},
	}
	for i := range teams {
		teams[i].Normalize()
	}
	return teams
}
