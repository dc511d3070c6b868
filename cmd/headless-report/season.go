package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Pitch-Sense/internal/achievement"
	"github.com/Garsondee/Pitch-Sense/internal/career"
	"github.com/Garsondee/Pitch-Sense/internal/game"
	"github.com/Garsondee/Pitch-Sense/internal/league"
)

type seasonOptions struct {
	teams   int
	club    int
	seed    int64
	manager string
	engine  bool
	scale   float64
	seasons int
}

func seasonCmd() *cobra.Command {
	var o seasonOptions
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Simulate league seasons with a career and achievements attached",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeasons(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().IntVar(&o.teams, "teams", len(league.DemoTeams()), "clubs in the league (2 up to the demo list)")
	cmd.Flags().IntVar(&o.club, "club", 1, "team id the manager takes charge of")
	cmd.Flags().Int64Var(&o.seed, "seed", 7, "RNG seed")
	cmd.Flags().StringVar(&o.manager, "manager", "Headless Manager", "manager name")
	cmd.Flags().BoolVar(&o.engine, "engine", false, "play the club's fixtures on the match engine instead of the quick scoreline model")
	cmd.Flags().Float64Var(&o.scale, "scale", 120, "match seconds per real second when --engine is set")
	cmd.Flags().IntVar(&o.seasons, "seasons", 1, "seasons to play")
	return cmd
}

// starLine is what the club's best performer did in the last engine match.
type starLine struct {
	goals, assists, cards int
}

func runSeasons(w io.Writer, o seasonOptions) error {
	demo := league.DemoTeams()
	if o.teams < 2 || o.teams > len(demo) {
		return fmt.Errorf("--teams must be between 2 and %d, got %d", len(demo), o.teams)
	}
	teams := demo[:o.teams]
	var club league.Team
	found := false
	for _, t := range teams {
		if t.ID == o.club {
			club, found = t, true
		}
	}
	if !found {
		return fmt.Errorf("--club %d: %w", o.club, league.ErrUnknownTeam)
	}
	club.Normalize()

	rng := rand.New(rand.NewSource(o.seed)) // #nosec G404 -- simulation randomness
	car := career.New(o.manager, club.ID, club.Prestige)
	tracker := achievement.NewTracker()
	car.OnEvent(func(e career.Event) {
		fmt.Fprintf(w, "  [career] %s: %s\n", e.Kind, e.Detail)
	})
	tracker.OnUnlock(func(a achievement.Achievement) {
		fmt.Fprintf(w, "  [achievement] %s (+%d xp, +%d coins)\n", a.Name, a.XP, a.Coins)
	})
	tracker.OnLevelUp(func(level int) {
		fmt.Fprintf(w, "  [level] reached %d\n", level)
	})
	tracker.OnCareerStarted()
	syncReputation(car, tracker)

	for s := 1; s <= o.seasons && !car.Over(); s++ {
		if err := playSeason(w, o, teams, club, s, rng, car, tracker); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\n=== Career ===")
	fmt.Fprintln(w, car.Summary())
	for _, rec := range car.History {
		fmt.Fprintf(w, "  season %d: pos=%d W%d D%d L%d pts=%d objectives=%d bonus=%s\n",
			rec.Season, rec.Position, rec.Won, rec.Drawn, rec.Lost, rec.Points, rec.Objectives, rec.Bonus.StringFixed(0))
	}
	fmt.Fprintln(w, "\n=== Achievements ===")
	fmt.Fprintf(w, "level=%d xp=%d coins=%d unlocked=%.0f%%\n",
		tracker.Level(), tracker.Experience(), tracker.Coins(), tracker.Progress())
	for _, u := range tracker.Unlocked() {
		fmt.Fprintf(w, "  %-24s %s\n", u.Achievement.Name, u.Achievement.Rarity)
	}
	return nil
}

func playSeason(w io.Writer, o seasonOptions, teams []league.Team, club league.Team, season int,
	rng *rand.Rand, car *career.Career, tracker *achievement.Tracker) error {
	lg, err := league.New("Headless League", season, teams)
	if err != nil {
		return err
	}

	var star starLine
	var play league.PlayFunc = league.SimulateScore
	if o.engine {
		play = clubFixture(club.ID, o.scale, tracker, &star)
	}

	stadiums := map[int]string{}
	for _, t := range lg.Teams() {
		stadiums[t.ID] = t.Stadium
	}
	lg.OnResult(func(r league.Result) {
		var gf, ga int
		switch club.ID {
		case r.Home:
			gf, ga = r.HomeGoals, r.AwayGoals
		case r.Away:
			gf, ga = r.AwayGoals, r.HomeGoals
		default:
			return
		}
		car.RecordMatch(gf, ga)
		tracker.OnMatchCompleted(achievement.MatchOutcome{
			GoalsFor:      gf,
			GoalsAgainst:  ga,
			PlayerGoals:   star.goals,
			PlayerAssists: star.assists,
			Cards:         star.cards,
			Stadium:       stadiums[r.Home],
		})
		star = starLine{}
	})

	fmt.Fprintf(w, "=== Season %d ===\n", season)
	for !lg.IsSeasonComplete() {
		if _, err := lg.PlayMatchday(rng, play); err != nil {
			return fmt.Errorf("season %d matchday %d: %w", season, lg.CurrentMatchday(), err)
		}
	}
	fmt.Fprint(w, league.FormatTable(lg.Table()))
	fmt.Fprintf(w, "average goals per match: %.2f\n", lg.AverageGoals())

	car.SetLeaguePosition(lg.Position(club.ID))
	if champ, ok := lg.Champion(); ok && champ.TeamID == club.ID {
		car.AddTrophy(fmt.Sprintf("%s %d", lg.Name, season))
		tracker.OnTrophyWon()
	}
	tracker.OnSeasonCompleted()
	if _, err := car.AdvanceSeason(); err != nil {
		return err
	}
	syncReputation(car, tracker)
	return nil
}

// syncReputation copies the manager's reputation into the tracker.
func syncReputation(car *career.Career, tracker *achievement.Tracker) {
	tracker.Set(achievement.StatReputation, car.Reputation)
}

// clubFixture plays the club's own fixtures on the match engine, feeding
// tricks into the tracker and the best performer's line into star. Other
// fixtures use the quick scoreline model.
func clubFixture(clubID int, scale float64, tracker *achievement.Tracker, star *starLine) league.PlayFunc {
	return func(rng *rand.Rand, home, away league.Team) (int, int) {
		if home.ID != clubID && away.ID != clubID {
			return league.SimulateScore(rng, home, away)
		}
		side := game.SideHome
		if away.ID == clubID {
			side = game.SideAway
		}
		m := game.NewMatch(
			game.WithSeed(rng.Int63()),
			game.WithClockScale(scale),
			game.WithHomeTeam(home),
			game.WithAwayTeam(away),
		)
		m.OnTrick(func(e game.TrickEvent) {
			if e.Player.Side() == side {
				tracker.OnSkillMove(e.Trick, e.Success)
			}
		})
		m.RunToEnd(math.MaxInt32)

		*star = starLine{}
		for _, f := range m.Footballers() {
			if f.Side() != side {
				continue
			}
			st := f.Stats()
			if st.Goals*2+st.Assists > star.goals*2+star.assists {
				star.goals, star.assists = st.Goals, st.Assists
			}
			if f.SentOff() {
				star.cards++
			}
		}
		return m.Score()
	}
}
