package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Pitch-Sense/internal/game"
	"github.com/Garsondee/Pitch-Sense/internal/league"
)

type tournamentOptions struct {
	kind   string
	teams  int
	seed   int64
	engine bool
	scale  float64
}

func tournamentCmd() *cobra.Command {
	var o tournamentOptions
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Simulate a knockout tournament and print the bracket and prize money",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTournament(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().StringVar(&o.kind, "kind", league.CupDomestic.String(), "prize pool: cup, league or champions")
	cmd.Flags().IntVar(&o.teams, "teams", len(league.DemoTeams()), "entrants (2 up to the demo list)")
	cmd.Flags().Int64Var(&o.seed, "seed", 7, "RNG seed")
	cmd.Flags().BoolVar(&o.engine, "engine", false, "play every tie on the match engine")
	cmd.Flags().Float64Var(&o.scale, "scale", 120, "match seconds per real second when --engine is set")
	return cmd
}

func runTournament(w io.Writer, o tournamentOptions) error {
	kind, err := league.ParseCupKind(o.kind)
	if err != nil {
		return err
	}
	demo := league.DemoTeams()
	if o.teams < 2 || o.teams > len(demo) {
		return fmt.Errorf("--teams must be between 2 and %d, got %d", len(demo), o.teams)
	}
	teams := demo[:o.teams]
	t, err := league.NewTournament("Headless "+kind.String(), kind, teams)
	if err != nil {
		return err
	}
	names := map[int]string{0: "bye"}
	for _, tm := range teams {
		names[tm.ID] = tm.Name
	}

	var play league.PlayFunc = league.SimulateScore
	if o.engine {
		play = game.PlayFixture(o.scale)
	}
	rng := rand.New(rand.NewSource(o.seed)) // #nosec G404 -- simulation randomness

	fmt.Fprintf(w, "=== %s (%s, pool %s) ===\n", t.Name, t.Kind, t.Kind.PrizePool().StringFixed(0))
	for !t.Done() {
		round := t.NextRoundName()
		ties, err := t.PlayRound(rng, play)
		if err != nil {
			return fmt.Errorf("%s: %w", round, err)
		}
		fmt.Fprintf(w, "\n--- %s ---\n", round)
		for _, tie := range ties {
			fmt.Fprintln(w, "  "+formatTie(tie, names))
		}
	}

	champ, _ := t.Winner()
	fmt.Fprintf(w, "\nwinner: %s\n", champ.Name)
	fmt.Fprintln(w, "prize money:")
	for _, tm := range teams {
		if p := t.Prize(tm.ID); p.IsPositive() {
			fmt.Fprintf(w, "  %-22s %s\n", tm.Name, p.StringFixed(0))
		}
	}
	return nil
}

func formatTie(tie league.Tie, names map[int]string) string {
	if tie.Bye() {
		return fmt.Sprintf("%s (bye)", names[tie.Home])
	}
	s := fmt.Sprintf("%s %d - %d %s", names[tie.Home], tie.HomeGoals, tie.AwayGoals, names[tie.Away])
	if tie.Penalties {
		s += fmt.Sprintf(", %s win on penalties", names[tie.Winner])
	}
	return s
}
