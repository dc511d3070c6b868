package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Pitch-Sense/internal/game"
)

const (
	chunkTicks  = 600
	maxRunTicks = 2_000_000
)

type runStats struct {
	runIndex int
	seed     int64

	firstGoalTick int
	firstCardTick int
	firstTrick    int

	shots         int
	passes        int
	passesDone    int
	interceptions int
	tacklesWon    int
	tackles       int
	tricks        int

	report game.MatchReport
}

type matchesOptions struct {
	runs     int
	seedBase int64
	seedStep int64
	mode     string
	scale    float64
	workers  int
}

func matchesCmd() *cobra.Command {
	var o matchesOptions
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Play seeded full matches and print per-run and aggregate reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.runs <= 0 {
				return fmt.Errorf("--runs must be > 0")
			}
			if o.scale <= 0 {
				return fmt.Errorf("--scale must be > 0")
			}
			mode, err := game.ModeByID(o.mode)
			if err != nil {
				return err
			}
			all, err := runMatches(cmd.Context(), o, mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== Headless Match Report ===\n")
			fmt.Fprintf(out, "mode=%s runs=%d scale=%.0f seed_base=%d seed_step=%d\n\n",
				mode.ID, o.runs, o.scale, o.seedBase, o.seedStep)
			for _, rs := range all {
				printRun(out, rs)
			}
			printAggregate(out, all)
			return nil
		},
	}
	cmd.Flags().IntVar(&o.runs, "runs", 5, "number of headless matches")
	cmd.Flags().Int64Var(&o.seedBase, "seed-base", 42, "base RNG seed for run 1")
	cmd.Flags().Int64Var(&o.seedStep, "seed-step", 1, "seed increment between runs")
	cmd.Flags().StringVar(&o.mode, "mode", game.ModeQuickMatch, "game mode id")
	cmd.Flags().Float64Var(&o.scale, "scale", 60, "match seconds per real second")
	cmd.Flags().IntVar(&o.workers, "workers", 4, "matches played at once")
	return cmd
}

// runMatches plays every run concurrently; results keep run order.
func runMatches(ctx context.Context, o matchesOptions, mode game.Mode) ([]runStats, error) {
	out := make([]runStats, o.runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, o.workers))
	for i := range o.runs {
		g.Go(func() error {
			seed := o.seedBase + int64(i)*o.seedStep
			rs, err := runMatch(ctx, i+1, seed, mode, o.scale)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i+1, seed, err)
			}
			out[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func runMatch(ctx context.Context, runIndex int, seed int64, mode game.Mode, scale float64) (runStats, error) {
	m := game.NewMatch(
		game.WithSeed(seed),
		game.WithMode(mode),
		game.WithClockScale(scale),
	)
	for !m.Over() {
		if err := ctx.Err(); err != nil {
			return runStats{}, err
		}
		if m.Tick() > maxRunTicks {
			return runStats{}, fmt.Errorf("no final whistle after %d ticks", m.Tick())
		}
		m.RunToEnd(chunkTicks)
	}

	sl := m.Log()
	entries := sl.Entries()
	tacklesWon := 0
	tricks := 0
	for _, e := range entries {
		switch {
		case e.Category == "ball" && e.Key == "tackle" && strings.HasPrefix(e.Value, "won"):
			tacklesWon++
		case e.Category == "trick":
			tricks++
		}
	}
	return runStats{
		runIndex:      runIndex,
		seed:          seed,
		firstGoalTick: firstTick(entries, "match", "goal", ""),
		firstCardTick: firstTick(entries, "match", "yellow", ""),
		firstTrick:    firstTick(entries, "trick", "", "success=true"),
		shots:         sl.CountCategory("ball", "shot"),
		passes:        sl.CountCategory("ball", "pass"),
		passesDone:    sl.CountCategory("ball", "pass_complete"),
		interceptions: sl.CountCategory("ball", "interception"),
		tackles:       sl.CountCategory("ball", "tackle"),
		tacklesWon:    tacklesWon,
		tricks:        tricks,
		report:        game.BuildReport(m),
	}, nil
}

// firstTick returns the tick of the first entry matching category, key
// (any key when empty) and containing contains, or -1.
func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || (key != "" && e.Key != key) {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// teamGoalCounts totals goals and dismissals per side from the grades.
func teamGoalCounts(grades []game.PlayerGrade) (homeGoals, awayGoals, homeSentOff, awaySentOff int) {
	for _, g := range grades {
		if g.Side == game.SideHome {
			homeGoals += g.Stats.Goals
			if g.SentOff {
				homeSentOff++
			}
		} else {
			awayGoals += g.Stats.Goals
			if g.SentOff {
				awaySentOff++
			}
		}
	}
	return homeGoals, awayGoals, homeSentOff, awaySentOff
}

// classifyMatch labels a run as a stalemate, a rout or a contest.
func classifyMatch(rs runStats) (string, string) {
	r := rs.report
	margin := r.HomeGoals - r.AwayGoals
	if margin < 0 {
		margin = -margin
	}
	switch {
	case r.HomeGoals == 0 && r.AwayGoals == 0 && rs.shots < 6:
		return "stalemate", fmt.Sprintf("goalless_low_threat shots=%d", rs.shots)
	case r.HomeGoals == 0 && r.AwayGoals == 0:
		return "stalemate", fmt.Sprintf("goalless shots=%d", rs.shots)
	case margin >= 3:
		return "rout", fmt.Sprintf("margin=%d", margin)
	default:
		return "contest", fmt.Sprintf("margin=%d", margin)
	}
}

func printRun(w io.Writer, rs runStats) {
	r := rs.report
	kind, reason := classifyMatch(rs)
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "result: %s %d - %d %s (%s) ticks=%d\n", r.Home, r.HomeGoals, r.AwayGoals, r.Away, r.Outcome.Outcome, r.Ticks)
	fmt.Fprintf(w, "shape: %s (%s)\n", kind, reason)
	fmt.Fprintf(w, "phase_markers: first_goal=%d first_card=%d first_trick=%d\n",
		rs.firstGoalTick, rs.firstCardTick, rs.firstTrick)
	fmt.Fprintf(w, "event_totals: shots=%d passes=%d/%d interceptions=%d tackles=%d/%d tricks=%d\n",
		rs.shots, rs.passesDone, rs.passes, rs.interceptions, rs.tacklesWon, rs.tackles, rs.tricks)
	if wr := r.Window; wr != nil {
		fmt.Fprintf(w, "window_samples=%d window_tick_range=%d..%d possession_home=%.0f%% loose=%.0f%%\n",
			wr.SampleCount, wr.FromTick, wr.ToTick, wr.HomePossessionPct, wr.LoosePct)
	}
	fmt.Fprint(w, game.FormatGrades(r.Grades))
	fmt.Fprintln(w)
}

func printAggregate(w io.Writer, all []runStats) {
	var homeWins, awayWins, draws, goals int
	var shots, passes, passesDone, tricks int
	goalTicks := make([]int, 0, len(all))
	shapes := map[string]struct{}{}

	type labelAgg struct {
		scoreSum float64
		count    int
		sentOff  int
		goals    int
		good     map[string]int
		bad      map[string]int
	}
	aggs := map[string]*labelAgg{}

	for _, rs := range all {
		r := rs.report
		switch r.Outcome.Outcome {
		case game.OutcomeHomeWin:
			homeWins++
		case game.OutcomeAwayWin:
			awayWins++
		case game.OutcomeDraw:
			draws++
		}
		goals += r.HomeGoals + r.AwayGoals
		shots += rs.shots
		passes += rs.passes
		passesDone += rs.passesDone
		tricks += rs.tricks
		if rs.firstGoalTick >= 0 {
			goalTicks = append(goalTicks, rs.firstGoalTick)
		}
		kind, _ := classifyMatch(rs)
		shapes[kind] = struct{}{}
		for _, g := range r.Grades {
			ag, ok := aggs[g.Label]
			if !ok {
				ag = &labelAgg{good: map[string]int{}, bad: map[string]int{}}
				aggs[g.Label] = ag
			}
			ag.scoreSum += g.Score
			ag.count++
			ag.goals += g.Stats.Goals
			if g.SentOff {
				ag.sentOff++
			}
			for _, t := range g.GoodTraits {
				ag.good[t]++
			}
			for _, t := range g.BadTraits {
				ag.bad[t]++
			}
		}
	}

	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d home_wins=%d away_wins=%d draws=%d\n", len(all), homeWins, awayWins, draws)
	fmt.Fprintf(w, "avg_per_run: goals=%.2f shots=%.1f passes=%.1f completed=%.1f tricks=%.1f\n",
		avg(goals, len(all)), avg(shots, len(all)), avg(passes, len(all)), avg(passesDone, len(all)), avg(tricks, len(all)))
	fmt.Fprintf(w, "first_goal_avg_tick=%s shapes=[%s]\n", avgTickString(goalTicks), joinSet(shapes))

	fmt.Fprintln(w, "\n=== Aggregate Player Performance ===")
	labels := make([]string, 0, len(aggs))
	for label := range aggs {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		ag := aggs[label]
		avgS := ag.scoreSum / float64(max(1, ag.count))
		fmt.Fprintf(w, "  %-4s %-2s (avg=%.1f) goals=%d sent_off=%d", label, game.PerfLetterGrade(avgS), avgS, ag.goals, ag.sentOff)
		if tg := topTrait(ag.good); tg != "" {
			fmt.Fprintf(w, "  good=%s", tg)
		}
		if tb := topTrait(ag.bad); tb != "" {
			fmt.Fprintf(w, "  bad=%s", tb)
		}
		fmt.Fprintln(w)
	}

	if len(all) > 0 {
		fmt.Fprintln(w, "\n--- Team Summary (across all runs) ---")
		fmt.Fprint(w, game.FormatGradesSummary(collectAllGrades(all)))
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// topTrait returns the most frequent trait with its count. Ties go to the
// alphabetically first name.
func topTrait(counts map[string]int) string {
	best := ""
	bestN := 0
	for k, v := range counts {
		if v > bestN || (v == bestN && k < best) {
			best, bestN = k, v
		}
	}
	if bestN == 0 {
		return ""
	}
	return fmt.Sprintf("%s(%d)", best, bestN)
}

func collectAllGrades(all []runStats) []game.PlayerGrade {
	var out []game.PlayerGrade
	for _, rs := range all {
		out = append(out, rs.report.Grades...)
	}
	return out
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
