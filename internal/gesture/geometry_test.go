package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FitsUnitBox(t *testing.T) {
	pts := Normalize([]Point{P(200, 100), P(260, 100), P(260, 130)})
	b := BoundingBox(pts)
	assert.InDelta(t, 0, b.MinX, 1e-9)
	assert.InDelta(t, 0, b.MinY, 1e-9)
	assert.InDelta(t, 1, b.Side(), 1e-9)
	// Aspect ratio survives: 60 wide, 30 tall.
	assert.InDelta(t, 0.5, b.Height(), 1e-9)
}

func TestNormalize_PreservesDirection(t *testing.T) {
	right := Normalize([]Point{P(0, 0), P(100, 0)})
	left := Normalize([]Point{P(0, 0), P(-100, 0)})
	assert.Less(t, right[0].X, right[1].X)
	assert.Greater(t, left[0].X, left[1].X)
}

func TestNormalize_Degenerate(t *testing.T) {
	pts := Normalize([]Point{P(5, 5), P(5, 5), P(5, 5)})
	for _, p := range pts {
		assert.Zero(t, p.X)
		assert.Zero(t, p.Y)
	}
	assert.Empty(t, Normalize(nil))
}

func TestResample_CountAndEndpoints(t *testing.T) {
	in := []Point{P(0, 0), P(10, 0), P(10, 30)}
	for _, n := range []int{2, 5, 32, 64} {
		out := Resample(in, n)
		require.Len(t, out, n)
		assert.Equal(t, in[0], out[0])
		assert.InDelta(t, 10, out[n-1].X, 1e-9)
		assert.InDelta(t, 30, out[n-1].Y, 1e-9)
	}
}

func TestResample_EvenSpacing(t *testing.T) {
	out := Resample([]Point{P(0, 0), P(90, 0), P(90, 90)}, 7)
	want := PathLength(out) / 6
	for i := 1; i < len(out); i++ {
		assert.InDelta(t, want, Dist(out[i-1], out[i]), 1e-6, "segment %d", i)
	}
}

func TestResample_InterpolatesTime(t *testing.T) {
	out := Resample([]Point{{X: 0, T: 0}, {X: 100, T: 100 * time.Millisecond}}, 3)
	require.Len(t, out, 3)
	assert.Equal(t, 50*time.Millisecond, out[1].T)
}

func TestResample_ZeroLengthPath(t *testing.T) {
	out := Resample([]Point{P(3, 4), P(3, 4)}, 4)
	require.Len(t, out, 4)
	for _, p := range out {
		assert.Equal(t, P(3, 4), p)
	}
	assert.Nil(t, Resample(nil, 4))
}

func TestDwellAtEnd(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0, T: 0},
		{X: 0, Y: 50, T: 100 * time.Millisecond},
		{X: 0, Y: 80, T: 200 * time.Millisecond},
		{X: 2, Y: 81, T: 500 * time.Millisecond},
	}
	assert.Equal(t, 300*time.Millisecond, dwellAtEnd(pts, dwellRadius))
	assert.Zero(t, dwellAtEnd(pts[:1], dwellRadius))
}
