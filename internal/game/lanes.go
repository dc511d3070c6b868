package game

import "math"

// box is an axis-aligned rectangle in pitch metres.
type box struct {
	minX, minY, maxX, maxY float64
}

// goalMouth returns the box behind the goal line that counts as "in the net"
// for the goal at the end dir points to.
func goalMouth(dir float64) box {
	if dir > 0 {
		return box{-goalHalfWidth, pitchHalfLength, goalHalfWidth, pitchHalfLength + goalDepth}
	}
	return box{-goalHalfWidth, -pitchHalfLength - goalDepth, goalHalfWidth, -pitchHalfLength}
}

// segmentHitT returns the first segment parameter t in [0,1] where the line
// from o to e enters b. The bool is false when the segment misses.
func segmentHitT(o, e vec, b box) (float64, bool) {
	d := e.sub(o)
	tMin, tMax := 0.0, 1.0

	slab := func(origin, delta, lo, hi float64) bool {
		if math.Abs(delta) < 1e-12 {
			return origin >= lo && origin <= hi
		}
		inv := 1.0 / delta
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		return tMin <= tMax
	}
	if !slab(o.x, d.x, b.minX, b.maxX) || !slab(o.y, d.y, b.minY, b.maxY) {
		return 0, false
	}
	if tMax < 0 || tMin > 1 {
		return 0, false
	}
	return tMin, true
}

// segmentHits reports whether the segment o→e touches b.
func segmentHits(o, e vec, b box) bool {
	_, hit := segmentHitT(o, e, b)
	return hit
}

// distToSegment is the shortest distance from p to the segment a→b.
func distToSegment(p, a, b vec) float64 {
	ab := b.sub(a)
	l2 := ab.dot(ab)
	if l2 < 1e-12 {
		return p.dist(a)
	}
	t := clamp(p.sub(a).dot(ab)/l2, 0, 1)
	return p.dist(a.add(ab.scale(t)))
}

// laneClearance is how close an opponent may stand to a passing lane before
// the lane counts as blocked.
const laneClearance = 1.5

// laneClear reports whether no blocker stands within laneClearance of the
// lane from a to b. Blockers at either end are ignored.
func laneClear(a, b vec, blockers []*Footballer) bool {
	for _, f := range blockers {
		p := f.pos
		if p.dist(a) < 0.5 || p.dist(b) < 0.5 {
			continue
		}
		if distToSegment(p, a, b) < laneClearance {
			return false
		}
	}
	return true
}
