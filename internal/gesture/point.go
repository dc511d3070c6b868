// Package gesture recognises dribbling tricks from the path a finger draws
// on the screen.
package gesture

import (
	"math"
	"time"
)

// Point is one sample of a gesture. Y grows upward; callers flip screen
// coordinates before recording.
type Point struct {
	X, Y float64
	T    time.Duration // time since an arbitrary epoch shared by the whole gesture
}

// P is shorthand for an untimed point, used by template tables and tests.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the euclidean distance between two points, ignoring time.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		T: a.T + time.Duration(float64(b.T-a.T)*t),
	}
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width of the box.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height of the box.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Side returns the larger of width and height.
func (b Box) Side() float64 { return math.Max(b.Width(), b.Height()) }

// BoundingBox returns the bounds of pts. An empty slice yields the zero Box.
func BoundingBox(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// PathLength is the summed length of every segment of the polyline.
func PathLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += Dist(pts[i-1], pts[i])
	}
	return total
}

// Normalize moves the bounding box minimum to the origin and scales both axes
// by the larger box side, so the path fits the unit box with its aspect ratio
// and direction intact. A path with no extent collapses onto the origin.
func Normalize(pts []Point) []Point {
	out := make([]Point, len(pts))
	if len(pts) == 0 {
		return out
	}
	b := BoundingBox(pts)
	side := b.Side()
	for i, p := range pts {
		out[i] = Point{T: p.T}
		if side > 0 {
			out[i].X = (p.X - b.MinX) / side
			out[i].Y = (p.Y - b.MinY) / side
		}
	}
	return out
}

// Resample returns n points spaced evenly along the arc length of pts.
// The first and last input points are always kept.
func Resample(pts []Point, n int) []Point {
	if len(pts) == 0 || n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{pts[0]}
	}
	out := make([]Point, 0, n)
	out = append(out, pts[0])

	total := PathLength(pts)
	if total == 0 {
		for len(out) < n {
			out = append(out, pts[len(pts)-1])
		}
		return out
	}

	interval := total / float64(n-1)
	acc := 0.0
	prev := pts[0]
	for i := 1; i < len(pts) && len(out) < n-1; {
		cur := pts[i]
		d := Dist(prev, cur)
		if d > 0 && acc+d >= interval {
			q := lerp(prev, cur, (interval-acc)/d)
			out = append(out, q)
			prev = q
			acc = 0
			continue
		}
		acc += d
		prev = cur
		i++
	}
	for len(out) < n {
		out = append(out, pts[len(pts)-1])
	}
	return out
}

// meanDistance is the average point-wise distance of two equal-length paths.
func meanDistance(a, b []Point) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Dist(a[i], b[i])
	}
	return sum / float64(n)
}

// dwellAtEnd reports how long the path lingered within radius of its final point.
func dwellAtEnd(pts []Point, radius float64) time.Duration {
	if len(pts) < 2 {
		return 0
	}
	last := pts[len(pts)-1]
	j := len(pts) - 1
	for j > 0 && Dist(pts[j-1], last) <= radius {
		j--
	}
	return last.T - pts[j].T
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
