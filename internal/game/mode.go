package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ModeByID for ids outside the catalogue.
var ErrUnknownMode = errors.New("game: unknown mode")

// Mode is a way to play. HalfMinutes is the length of each half of a match
// played in the mode; MaxPlayers counts human participants.
type Mode struct {
	ID             string
	Name           string
	Description    string
	PlayersPerSide int
	HalfMinutes    int
	MaxPlayers     int
	MaxSeasons     int // career only
	Unlocked       bool
}

// Mode ids.
const (
	ModeQuickMatch = "quick_match"
	ModeCareer     = "career"
	ModeTournament = "tournament"
	ModeFutsal     = "futsal"
	ModeOnline     = "online"
)

// Modes returns the catalogue in menu order.
func Modes() []Mode {
	return []Mode{
		{ID: ModeQuickMatch, Name: "Quick Match", Description: "Jump into a quick match with any team",
			PlayersPerSide: 11, HalfMinutes: 45, MaxPlayers: 2, Unlocked: true},
		{ID: ModeCareer, Name: "Career Mode", Description: "Build your legacy as a manager",
			PlayersPerSide: 11, HalfMinutes: 45, MaxPlayers: 1, MaxSeasons: 25, Unlocked: true},
		{ID: ModeTournament, Name: "Tournament", Description: "Compete in various tournaments",
			PlayersPerSide: 11, HalfMinutes: 45, MaxPlayers: 32, Unlocked: true},
		{ID: ModeFutsal, Name: "Futsal", Description: "Fast-paced 5v5 indoor football",
			PlayersPerSide: 5, HalfMinutes: 20, MaxPlayers: 2, Unlocked: true},
		{ID: ModeOnline, Name: "Online Match", Description: "Play against other players online",
			PlayersPerSide: 11, HalfMinutes: 45, MaxPlayers: 2},
	}
}

// DefaultMode is the quick match.
func DefaultMode() Mode { return Modes()[0] }

// ModeByID looks a mode up by id, ignoring case and surrounding space.
func ModeByID(id string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, m := range Modes() {
		if m.ID == key {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, id)
}

// MatchMinutes is the full length of a match in the mode.
func (m Mode) MatchMinutes() int { return 2 * m.HalfMinutes }

func (m Mode) String() string { return m.Name }
