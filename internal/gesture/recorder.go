package gesture

import "time"

// Recorder limits.
const (
	MinPointSpacing = 10.0        // pixels between consecutive samples
	MaxPoints       = 20          // oldest samples are dropped beyond this
	PatternWindow   = time.Second // a gesture idle for longer than this starts over
	MinPathLength   = 100.0       // shorter paths are never classified
)

// Recorder accumulates the samples of one continuous touch and hands them to
// a Recognizer when the touch ends. The zero value is not usable; call
// NewRecorder.
type Recorder struct {
	rec    *Recognizer
	points []Point
	last   time.Duration // time of the newest accepted sample
	active bool
}

// NewRecorder returns a Recorder classifying with r.
func NewRecorder(r *Recognizer) *Recorder {
	return &Recorder{rec: r, points: make([]Point, 0, MaxPoints+1)}
}

// Begin starts a new gesture at p, discarding anything recorded before.
func (r *Recorder) Begin(p Point) {
	r.points = append(r.points[:0], p)
	r.last = p.T
	r.active = true
}

// Add records p if it is far enough from the previous sample. A sample
// arriving more than the pattern window after the last accepted one
// restarts the gesture from p.
func (r *Recorder) Add(p Point) {
	if !r.active {
		r.Begin(p)
		return
	}
	if p.T-r.last > PatternWindow {
		r.Begin(p)
		return
	}
	if Dist(r.points[len(r.points)-1], p) < MinPointSpacing {
		return
	}
	r.push(p)
}

func (r *Recorder) push(p Point) {
	r.points = append(r.points, p)
	r.last = p.T
	if over := len(r.points) - MaxPoints; over > 0 {
		r.points = append(r.points[:0], r.points[over:]...)
	}
}

// Active reports whether a gesture is in progress.
func (r *Recorder) Active() bool { return r.active }

// Points returns a copy of the recorded samples.
func (r *Recorder) Points() []Point {
	out := make([]Point, len(r.points))
	copy(out, r.points)
	return out
}

// Ready reports whether the recorded path is long enough to classify.
func (r *Recorder) Ready() bool {
	return len(r.points) >= 2 && PathLength(r.points) >= MinPathLength
}

// Finish closes the gesture at release point p and classifies it. The
// release sample bypasses the spacing filter so a hold at the end of the
// stroke is visible to templates that need one. The recorder is reset.
func (r *Recorder) Finish(p Point) Result {
	defer r.Reset()
	if !r.active {
		return Result{Trick: None}
	}
	if p.T-r.last <= PatternWindow {
		r.push(p)
	}
	if !r.Ready() {
		return Result{Trick: None}
	}
	return r.rec.Classify(r.points)
}

// Reset drops the current gesture.
func (r *Recorder) Reset() {
	r.points = r.points[:0]
	r.active = false
}
