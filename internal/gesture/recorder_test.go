package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func swipe(r *Recorder, from, to Point, steps int, dt time.Duration) {
	r.Begin(from)
	for i := 1; i <= steps; i++ {
		k := float64(i) / float64(steps)
		r.Add(Point{
			X: from.X + (to.X-from.X)*k,
			Y: from.Y + (to.Y-from.Y)*k,
			T: from.T + time.Duration(i)*dt,
		})
	}
}

func TestRecorder_DropsClosePoints(t *testing.T) {
	r := NewRecorder(Default())
	r.Begin(P(0, 0))
	r.Add(Point{X: 4, Y: 0, T: time.Millisecond})
	r.Add(Point{X: 9, Y: 0, T: 2 * time.Millisecond})
	assert.Len(t, r.Points(), 1)
	r.Add(Point{X: 12, Y: 0, T: 3 * time.Millisecond})
	assert.Len(t, r.Points(), 2)
}

func TestRecorder_KeepsNewestPoints(t *testing.T) {
	r := NewRecorder(Default())
	swipe(r, P(0, 0), P(600, 0), 30, 10*time.Millisecond)
	pts := r.Points()
	assert.Len(t, pts, MaxPoints)
	assert.InDelta(t, 600, pts[len(pts)-1].X, 1e-9)
}

func TestRecorder_WindowRestartsGesture(t *testing.T) {
	r := NewRecorder(Default())
	swipe(r, P(0, 0), P(100, 0), 5, 10*time.Millisecond)
	r.Add(Point{X: 400, Y: 0, T: 2 * time.Second})
	pts := r.Points()
	assert.Len(t, pts, 1)
	assert.Equal(t, 400.0, pts[0].X)
}

func TestRecorder_SlowStrokeKeepsAllPoints(t *testing.T) {
	r := NewRecorder(Default())
	swipe(r, P(100, 200), P(300, 200), 15, 100*time.Millisecond)
	pts := r.Points()
	assert.Len(t, pts, 16)
	assert.Equal(t, 100.0, pts[0].X)

	res := r.Finish(Point{X: 300, Y: 200, T: 1500 * time.Millisecond})
	assert.Equal(t, StepOverRight, res.Trick)
}

func TestRecorder_ReadyNeedsLength(t *testing.T) {
	r := NewRecorder(Default())
	swipe(r, P(0, 0), P(60, 0), 3, 10*time.Millisecond)
	assert.False(t, r.Ready())
	res := r.Finish(Point{X: 60, T: 50 * time.Millisecond})
	assert.Equal(t, None, res.Trick)
	assert.False(t, r.Active())
}

func TestRecorder_FinishClassifies(t *testing.T) {
	r := NewRecorder(Default())
	swipe(r, P(100, 200), P(260, 200), 8, 15*time.Millisecond)
	assert.True(t, r.Ready())

	res := r.Finish(Point{X: 260, Y: 200, T: 130 * time.Millisecond})
	assert.Equal(t, StepOverRight, res.Trick)
	assert.Empty(t, r.Points())
}

func TestRecorder_FinishWithHoldGivesFakeShot(t *testing.T) {
	r := NewRecorder(Default())
	swipe(r, P(50, 50), P(50, 170), 6, 20*time.Millisecond)
	res := r.Finish(Point{X: 50, Y: 170, T: 500 * time.Millisecond})
	assert.Equal(t, FakeShot, res.Trick)
}

func TestRecorder_FinishWithoutBegin(t *testing.T) {
	r := NewRecorder(Default())
	assert.Equal(t, None, r.Finish(P(1, 1)).Trick)
}
