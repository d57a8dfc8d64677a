package kernel

import (
	"math"
	"sort"
)

// pass is the local shape of a chain through a point: one ray along the
// way it came in and one along the way it leaves. A terminal pass, at the
// extremity of an open or disconnected chain, has a single ray.
type pass struct {
	rays []Point
}

func (p pass) terminal() bool { return len(p.rays) < 2 }

// passesAt collects every pass the chain makes through x.
func (c Chain) passesAt(x Point) []pass {
	segs := c.nonNull()
	n := len(segs)
	if n == 0 {
		return nil
	}
	closed := c.IsClosed()
	var out []pass
	for i, s := range segs {
		dir := s.Vector()
		switch {
		case x.Equal(s.Start):
			joined := i > 0 && segs[i-1].End.Equal(s.Start)
			if i == 0 && closed {
				joined = true
			}
			if !joined {
				out = append(out, pass{rays: []Point{dir}})
			}
		case x.Equal(s.End):
			var next *Segment
			if i+1 < n && segs[i+1].Start.Equal(s.End) {
				next = &segs[i+1]
			} else if i == n-1 && closed {
				next = &segs[0]
			}
			if next == nil {
				out = append(out, pass{rays: []Point{dir.Scale(-1)}})
			} else {
				out = append(out, pass{rays: []Point{dir.Scale(-1), next.Vector()}})
			}
		case s.Contains(x):
			out = append(out, pass{rays: []Point{dir.Scale(-1), dir}})
		}
	}
	return out
}

func sameRay(a, b Point) bool {
	ua := a.Scale(1 / a.Norm())
	ub := b.Scale(1 / b.Norm())
	return math.Abs(ua.Cross(ub)) <= Epsilon && ua.Dot(ub) > 0
}

// inArc reports whether angle lies strictly inside the counterclockwise
// arc from a to b.
func inArc(angle, a, b float64) bool {
	return NormalizeAngle(angle-a) < NormalizeAngle(b-a) && NormalizeAngle(angle-a) > 0
}

// crosses reports whether pass q goes from one side of pass p to the other.
// Passes that share a ray run together there and never cross.
func (p pass) crosses(q pass) bool {
	if p.terminal() || q.terminal() {
		return false
	}
	for _, a := range p.rays {
		for _, b := range q.rays {
			if sameRay(a, b) {
				return false
			}
		}
	}
	a0, a1 := p.rays[0].Angle(), p.rays[1].Angle()
	return inArc(q.rays[0].Angle(), a0, a1) != inArc(q.rays[1].Angle(), a0, a1)
}

// Intersect returns the points where a and b properly cross, sorted along a.
func Intersect(a, b Chain) []Point {
	if !BoundsOverlap(a, b) {
		return nil
	}
	var pts []Point
	for _, sa := range a {
		for _, sb := range b {
			if p, ok := Crossing(sa, sb); ok {
				pts = append(pts, p)
			}
		}
	}

	for _, x := range touchCandidates(a, b) {
		if passesCross(a.passesAt(x), b.passesAt(x)) {
			pts = append(pts, x)
		}
	}
	return a.sortAlong(dedup(pts))
}

// AutoIntersect returns the points where the chain crosses itself, either
// between two segment interiors or at a vertex visited twice.
func AutoIntersect(c Chain) []Point {
	var pts []Point
	for i := range c {
		for j := i + 1; j < len(c); j++ {
			if p, ok := Crossing(c[i], c[j]); ok {
				pts = append(pts, p)
			}
		}
	}
	for _, x := range dedup(c.Vertices()) {
		passes := c.passesAt(x)
		for i := range passes {
			for j := i + 1; j < len(passes); j++ {
				if passes[i].crosses(passes[j]) {
					pts = append(pts, x)
				}
			}
		}
	}
	return c.sortAlong(dedup(pts))
}

func passesCross(pa, pb []pass) bool {
	for _, p := range pa {
		for _, q := range pb {
			if p.crosses(q) {
				return true
			}
		}
	}
	return false
}

// touchCandidates lists the segment extremities of either chain lying on
// the other one.
func touchCandidates(a, b Chain) []Point {
	var pts []Point
	for _, s := range a {
		for _, p := range [2]Point{s.Start, s.End} {
			if b.Contains(p) {
				pts = append(pts, p)
			}
		}
	}
	for _, s := range b {
		for _, p := range [2]Point{s.Start, s.End} {
			if a.Contains(p) {
				pts = append(pts, p)
			}
		}
	}
	return dedup(pts)
}

// TouchesAtExtremity reports whether a segment extremity of either chain
// lies on the other.
func TouchesAtExtremity(a, b Chain) bool {
	if !BoundsOverlap(a, b) {
		return false
	}
	return len(touchCandidates(a, b)) > 0
}

func dedup(pts []Point) []Point {
	out := pts[:0:0]
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

func (c Chain) sortAlong(pts []Point) []Point {
	if len(pts) < 2 {
		return pts
	}
	pos := make(map[int]float64, len(pts))
	idx := make([]int, len(pts))
	for i, p := range pts {
		idx[i] = i
		pos[i] = c.ArcPosition(p)
	}
	sort.SliceStable(idx, func(i, j int) bool { return pos[idx[i]] < pos[idx[j]] })
	out := make([]Point, len(pts))
	for i, k := range idx {
		out[i] = pts[k]
	}
	return out
}
