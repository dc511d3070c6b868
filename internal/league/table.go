package league

import (
	"fmt"
	"sort"
	"strings"
)

// Standing is one row of the league table.
type Standing struct {
	TeamID       int
	Name         string
	Position     int
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	form         []byte
}

// GoalDifference is goals for minus goals against.
func (s Standing) GoalDifference() int { return s.GoalsFor - s.GoalsAgainst }

// Form returns up to the last five results, oldest first, as W/D/L letters.
func (s Standing) Form() string { return string(s.form) }

func (s *Standing) record(scored, conceded int) {
	s.Played++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	var mark byte
	switch {
	case scored > conceded:
		s.Won++
		s.Points += 3
		mark = 'W'
	case scored == conceded:
		s.Drawn++
		s.Points++
		mark = 'D'
	default:
		s.Lost++
		mark = 'L'
	}
	s.form = append(s.form, mark)
	if len(s.form) > 5 {
		s.form = s.form[len(s.form)-5:]
	}
}

// sortStandings orders by points, goal difference, goals scored and finally
// name, then numbers the rows from 1.
func sortStandings(rows []Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Name < b.Name
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
}

// FormatTable renders standings as a fixed-width text table.
func FormatTable(rows []Standing) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-3s %-22s %3s %3s %3s %3s %4s %4s %4s %4s  %s\n",
		"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts", "Form")
	for _, r := range rows {
		fmt.Fprintf(&sb, "%-3d %-22s %3d %3d %3d %3d %4d %4d %+4d %4d  %s\n",
			r.Position, r.Name, r.Played, r.Won, r.Drawn, r.Lost,
			r.GoalsFor, r.GoalsAgainst, r.GoalDifference(), r.Points, r.Form())
	}
	return sb.String()
}
