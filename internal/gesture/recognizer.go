package gesture

import (
	"errors"
	"fmt"
)

// Recogniser defaults.
const (
	DefaultThreshold     = 0.7
	DefaultResampleCount = 32
)

var (
	// ErrTooFewPoints is returned when a gesture has fewer than two samples.
	ErrTooFewPoints = errors.New("gesture: need at least two points")
	// ErrEmptyTemplate is returned for a template without extent.
	ErrEmptyTemplate = errors.New("gesture: template has no extent")
)

// Result is the outcome of classifying one gesture.
type Result struct {
	Trick  Trick
	Score  float64           // similarity of the winning template, 0 when Trick is None
	Scores map[Trick]float64 // similarity against every template
}

// Recognizer is a nearest-template classifier over a fixed Library.
// It holds no per-gesture state; Match may run concurrently as long as
// SetToleranceOverride is not called at the same time.
type Recognizer struct {
	lib         Library
	shapes      [][]Point
	tolerances  []float64 // normalised to the unit box
	threshold   float64
	samples     int
	tolOverride float64
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithThreshold sets the similarity a template must exceed to win.
func WithThreshold(v float64) Option {
	return func(r *Recognizer) { r.threshold = clamp01(v) }
}

// WithResampleCount sets how many points both paths are resampled to.
func WithResampleCount(n int) Option {
	return func(r *Recognizer) {
		if n >= 2 {
			r.samples = n
		}
	}
}

// WithToleranceOverride replaces every template tolerance with px.
// Zero restores the per-template values.
func WithToleranceOverride(px float64) Option {
	return func(r *Recognizer) { r.tolOverride = px }
}

// NewRecognizer prepares the templates in lib for matching.
func NewRecognizer(lib Library, opts ...Option) (*Recognizer, error) {
	r := &Recognizer{
		lib:       lib,
		threshold: DefaultThreshold,
		samples:   DefaultResampleCount,
	}
	for _, o := range opts {
		o(r)
	}
	r.shapes = make([][]Point, len(lib))
	for i, tpl := range lib {
		if len(tpl.Points) < 2 || BoundingBox(tpl.Points).Side() == 0 {
			return nil, fmt.Errorf("%s: %w", tpl.Trick, ErrEmptyTemplate)
		}
		r.shapes[i] = Resample(Normalize(tpl.Points), r.samples)
	}
	r.computeTolerances()
	return r, nil
}

// Default returns a Recognizer over DefaultLibrary.
func Default(opts ...Option) *Recognizer {
	r, err := NewRecognizer(DefaultLibrary(), opts...)
	if err != nil {
		panic(err) // built-in templates are static
	}
	return r
}

// SetToleranceOverride changes the global tolerance at runtime.
func (r *Recognizer) SetToleranceOverride(px float64) {
	r.tolOverride = px
	r.computeTolerances()
}

func (r *Recognizer) computeTolerances() {
	r.tolerances = make([]float64, len(r.lib))
	for i, tpl := range r.lib {
		tol := tpl.Tolerance
		if r.tolOverride > 0 {
			tol = r.tolOverride
		}
		r.tolerances[i] = tol / BoundingBox(tpl.Points).Side()
	}
}

// Threshold returns the winning similarity bound.
func (r *Recognizer) Threshold() float64 { return r.threshold }

// Library returns the templates in match order.
func (r *Recognizer) Library() Library { return r.lib }

// Match classifies pts, returning ErrTooFewPoints for degenerate input.
func (r *Recognizer) Match(pts []Point) (Result, error) {
	res := Result{Trick: None, Scores: make(map[Trick]float64, len(r.lib))}
	if len(pts) < 2 {
		return res, ErrTooFewPoints
	}

	shape := Resample(Normalize(pts), r.samples)
	dwell := dwellAtEnd(pts, dwellRadius)

	for i, tpl := range r.lib {
		score := 0.0
		if r.tolerances[i] > 0 {
			score = clamp01(1 - meanDistance(shape, r.shapes[i])/r.tolerances[i])
		}
		if tpl.HoldAtEnd && dwell < dwellTime {
			score = 0
		}
		res.Scores[tpl.Trick] = score
		if score > r.threshold && score > res.Score {
			res.Trick = tpl.Trick
			res.Score = score
		}
	}
	return res, nil
}

// Classify is Match without the error: degenerate input is None.
func (r *Recognizer) Classify(pts []Point) Result {
	res, _ := r.Match(pts)
	return res
}
