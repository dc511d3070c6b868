package game

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Log categories.
const (
	catMatch = "match"
	catAI    = "ai"
	catBall  = "ball"
	catInput = "input"
	catTrick = "trick"
	catStats = "stats"
)

// SimLogEntry is one recorded match event.
type SimLogEntry struct {
	Tick     int
	Player   string  // label e.g. "H9", "A1", or "--" for match events
	Team     string  // "home", "away", or "--"
	Category string  // match, ai, ball, input, trick, stats
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] H9   ai        state_change     positioning → chasing
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Player, e.Category, e.Key, e.Value)
}

// SimLog collects structured match events. Unlike Commentary (the on-screen
// ring buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-decision and periodic
// stat entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, who, team, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Player:   who,
		Team:     team,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, who, team, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, who, team, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

func (sl *SimLog) where(keep func(SimLogEntry) bool) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// matches is true when e has category and key; empty matches anything.
func (e SimLogEntry) matches(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// Filter returns entries with category and key; either may be empty.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.matches(category, key) })
}

// FilterPlayer returns entries for one footballer label.
func (sl *SimLog) FilterPlayer(label string) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.Player == label })
}

// FilterTickRange returns entries within [fromTick, toTick].
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.Tick >= fromTick && e.Tick <= toTick })
}

// CountCategory counts entries with category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if e.matches(category, key) {
			n++
		}
	}
	return n
}

// LastOf returns the newest entry with category and key.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if sl.entries[i].matches(category, key) {
			return sl.entries[i], true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry reports whether any entry has category and key and a value
// containing valueSubstr.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	return slices.ContainsFunc(sl.entries, func(e SimLogEntry) bool {
		return e.matches(category, key) && strings.Contains(e.Value, valueSubstr)
	})
}

func formatEntries(entries []SimLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Format renders the whole log, one line per entry.
func (sl *SimLog) Format() string { return formatEntries(sl.entries) }

// FormatRange renders the entries between two ticks.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	return formatEntries(sl.FilterTickRange(fromTick, toTick))
}

// Summary returns a short summary of the match state: score, brain states
// per side and the busiest players on the ball.
func (sl *SimLog) Summary(tick int, footballers []*Footballer, home, away int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", tick)
	fmt.Fprintf(&sb, "Score: home %d - %d away\n", home, away)

	states := map[Side]map[BrainState]int{SideHome: {}, SideAway: {}}
	onPitchCount := map[Side]int{}
	for _, f := range footballers {
		if f.sentOff {
			continue
		}
		onPitchCount[f.side]++
		states[f.side][f.brain.State]++
	}
	for _, side := range []Side{SideHome, SideAway} {
		fmt.Fprintf(&sb, "%s states: ", side)
		for st := StatePositioning; st <= StateHoldingBall; st++ {
			if n := states[side][st]; n > 0 {
				fmt.Fprintf(&sb, "%s=%d  ", st, n)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "On pitch: home=%d  away=%d\n", onPitchCount[SideHome], onPitchCount[SideAway])

	touches := map[string]int{}
	for _, e := range sl.entries {
		if e.Category == catBall && e.Key == "possession" {
			touches[e.Player]++
		}
	}
	type row struct {
		label string
		n     int
	}
	var rows []row
	for l, n := range touches {
		rows = append(rows, row{l, n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].n != rows[j].n {
			return rows[i].n > rows[j].n
		}
		return rows[i].label < rows[j].label
	})
	if len(rows) > 3 {
		rows = rows[:3]
	}
	if len(rows) == 0 {
		sb.WriteString("Touches: none\n")
	}
	for _, r := range rows {
		fmt.Fprintf(&sb, "Touches: %s x%d\n", r.label, r.n)
	}
	return sb.String()
}
