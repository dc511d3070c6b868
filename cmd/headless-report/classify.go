package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Pitch-Sense/internal/gesture"
)

// sampleGap is the time assumed between typed points.
const sampleGap = 16 * time.Millisecond

func classifyCmd() *cobra.Command {
	var points string
	var threshold float64
	cmd := &cobra.Command{
		Use:     "classify [x,y ...]",
		Short:   "Classify a gesture given as a list of x,y points",
		Example: `  headless-report classify --points "0,0 10,10 20,0 30,10"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if points == "" {
				points = strings.Join(args, " ")
			}
			pts, err := parsePoints(points)
			if err != nil {
				return err
			}
			var opts []gesture.Option
			if threshold > 0 {
				opts = append(opts, gesture.WithThreshold(threshold))
			}
			return classify(cmd.OutOrStdout(), gesture.Default(opts...), pts)
		},
	}
	cmd.Flags().StringVar(&points, "points", "", `space separated points, e.g. "0,0 5,5 10,0"`)
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "similarity threshold (0 keeps the default)")
	return cmd
}

// parsePoints reads "x,y x,y ..." into timed gesture points.
func parsePoints(s string) ([]gesture.Point, error) {
	fields := strings.Fields(s)
	pts := make([]gesture.Point, 0, len(fields))
	for i, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %d %q: want x,y", i+1, f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %d x: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %d y: %w", i+1, err)
		}
		pts = append(pts, gesture.Point{X: x, Y: y, T: time.Duration(i) * sampleGap})
	}
	return pts, nil
}

func classify(w io.Writer, r *gesture.Recognizer, pts []gesture.Point) error {
	res, err := r.Match(pts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "trick: %s (score %.3f, threshold %.3f)\n", res.Trick, res.Score, r.Threshold())
	for _, t := range gesture.AllTricks() {
		if s, ok := res.Scores[t]; ok {
			fmt.Fprintf(w, "  %-14s %.3f\n", t, s)
		}
	}
	return nil
}
