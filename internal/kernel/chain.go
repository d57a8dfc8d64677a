package kernel

import "math"

// Chain is an ordered list of leaf segments traversed from the start of
// the first one to the end of the last one. Consecutive segments are
// expected, not required, to share their junction point.
type Chain []Segment

func (c Chain) IsEmpty() bool { return len(c) == 0 }

// Start returns the first point, or the origin for an empty chain.
func (c Chain) Start() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[0].Start
}

// End returns the last point, or the origin for an empty chain.
func (c Chain) End() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[len(c)-1].End
}

func (c Chain) Length() float64 {
	var l float64
	for _, s := range c {
		l += s.Length()
	}
	return l
}

// IsClosed reports whether a non-degenerate chain ends where it starts.
func (c Chain) IsClosed() bool {
	return len(c) > 0 && c.Length() > Epsilon && c.Start().Equal(c.End())
}

// Clone returns an independent copy.
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	out := make(Chain, len(c))
	copy(out, c)
	return out
}

// Reverse returns the chain traversed backwards.
func (c Chain) Reverse() Chain {
	out := make(Chain, len(c))
	for i, s := range c {
		out[len(c)-1-i] = s.Reverse()
	}
	return out
}

// Map applies f to every segment extremity.
func (c Chain) Map(f func(Point) (Point, error)) (Chain, error) {
	out := make(Chain, len(c))
	for i, s := range c {
		a, err := f(s.Start)
		if err != nil {
			return nil, err
		}
		b, err := f(s.End)
		if err != nil {
			return nil, err
		}
		out[i] = Segment{a, b}
	}
	return out, nil
}

// Apply returns the chain with f applied to every segment extremity.
func (c Chain) Apply(f func(Point) Point) Chain {
	out := make(Chain, len(c))
	for i, s := range c {
		out[i] = Segment{f(s.Start), f(s.End)}
	}
	return out
}

// cumulative returns the arc length at the start of every segment.
func (c Chain) cumulative() []float64 {
	cum := make([]float64, len(c))
	var l float64
	for i, s := range c {
		cum[i] = l
		l += s.Length()
	}
	return cum
}

// RelativePoint returns the point at fraction t of the arc length.
// An empty chain answers the origin for every t.
func (c Chain) RelativePoint(t float64) Point {
	if len(c) == 0 {
		return Point{}
	}
	if t <= 0 {
		return c.Start()
	}
	if t >= 1 {
		return c.End()
	}
	if len(c) == 1 {
		return c[0].At(t)
	}
	return c.PointAtArc(t * c.Length())
}

// PointAtArc returns the point at arc length s from the start.
func (c Chain) PointAtArc(s float64) Point {
	if len(c) == 0 {
		return Point{}
	}
	if s <= 0 {
		return c.Start()
	}
	var acc float64
	for _, seg := range c {
		l := seg.Length()
		if l == 0 {
			continue
		}
		if s <= acc+l {
			return seg.At((s - acc) / l)
		}
		acc += l
	}
	// Round-off past the last leaf lands on the end point.
	return c.End()
}

// Closest returns the point of the chain nearest to p and the index of
// the segment holding it. The earliest segment wins ties. An empty chain
// answers the origin and -1.
func (c Chain) Closest(p Point) (Point, int) {
	best, idx := Point{}, -1
	bestDist := math.Inf(1)
	for i, s := range c {
		q, _ := s.Closest(p)
		if d := q.Dist(p); d < bestDist {
			best, idx, bestDist = q, i, d
		}
	}
	return best, idx
}

// RelativePosition returns the fraction of arc length at which the point
// of the chain nearest to p sits.
func (c Chain) RelativePosition(p Point) float64 {
	total := c.Length()
	if total == 0 {
		return 0
	}
	return c.ArcPosition(p) / total
}

// ArcPosition returns the arc length of the point of the chain nearest to p.
func (c Chain) ArcPosition(p Point) float64 {
	_, idx := c.Closest(p)
	if idx < 0 {
		return 0
	}
	cum := c.cumulative()
	_, t := c[idx].Closest(p)
	return cum[idx] + t*c[idx].Length()
}

// Contains reports whether p lies on one of the segments.
func (c Chain) Contains(p Point) bool {
	for _, s := range c {
		if s.Contains(p) {
			return true
		}
	}
	return false
}

// ContainsInterior is Contains without the start and end points of an open
// chain. A closed chain has no extremities.
func (c Chain) ContainsInterior(p Point) bool {
	if !c.Contains(p) {
		return false
	}
	if c.IsClosed() {
		return true
	}
	return !p.Equal(c.Start()) && !p.Equal(c.End())
}

// RayArea casts a ray from p toward +X and returns the signed crossing
// count of the chain with it: +1 for every segment going up across the
// ray, -1 for every one going down. Vertices on the ray are taken with a
// half-open rule so a junction counts once.
func (c Chain) RayArea(p Point) float64 {
	var winding int
	for _, s := range c {
		a, b := s.Start, s.End
		side := b.Sub(a).Cross(p.Sub(a))
		if a.Y <= p.Y {
			if b.Y > p.Y && side > 0 {
				winding++
			}
		} else if b.Y <= p.Y && side < 0 {
			winding--
		}
	}
	return float64(winding)
}

// SignedArea returns the shoelace area of the closed chain, positive when
// it winds counterclockwise.
func (c Chain) SignedArea() float64 {
	var a float64
	for _, s := range c {
		a += s.Start.Cross(s.End)
	}
	return a / 2
}

// Bounds returns the corners of the bounding box; ok is false when empty.
func (c Chain) Bounds() (min, max Point, ok bool) {
	if len(c) == 0 {
		return Point{}, Point{}, false
	}
	min, max = c[0].Bounds()
	for _, s := range c[1:] {
		lo, hi := s.Bounds()
		min = Point{math.Min(min.X, lo.X), math.Min(min.Y, lo.Y)}
		max = Point{math.Max(max.X, hi.X), math.Max(max.Y, hi.Y)}
	}
	return min, max, true
}

// BoundsOverlap reports whether the boxes of a and b meet within tolerance.
func BoundsOverlap(a, b Chain) bool {
	amin, amax, ok := a.Bounds()
	if !ok {
		return false
	}
	bmin, bmax, ok := b.Bounds()
	if !ok {
		return false
	}
	return amin.X <= bmax.X+Epsilon && bmin.X <= amax.X+Epsilon &&
		amin.Y <= bmax.Y+Epsilon && bmin.Y <= amax.Y+Epsilon
}

// Vertices returns the ordered vertex list. Junctions shared by two
// consecutive segments appear once.
func (c Chain) Vertices() []Point {
	if len(c) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(c)+1)
	for i, s := range c {
		if i == 0 || !s.Start.Equal(c[i-1].End) {
			pts = append(pts, s.Start)
		}
		pts = append(pts, s.End)
	}
	return pts
}

// IsVertex reports whether p matches any segment extremity.
func (c Chain) IsVertex(p Point) bool {
	for _, s := range c {
		if s.HasExtremity(p) {
			return true
		}
	}
	return false
}

// Direction selects the tangent side used by Bearing.
type Direction int

const (
	// Alpha looks back along the incoming segment.
	Alpha Direction = iota
	// Beta looks forward along the outgoing segment.
	Beta
)

// Bearing returns the tangent angle at p, in [0, 2π). At a vertex, Alpha
// takes the reverse of the incoming segment and Beta the outgoing one. A
// closed chain wraps around its start. Null segments are skipped.
func (c Chain) Bearing(p Point, dir Direction) float64 {
	segs := c.nonNull()
	if len(segs) == 0 {
		return 0
	}
	idx := -1
	for i, s := range segs {
		if s.Contains(p) {
			idx = i
			break
		}
	}
	if idx < 0 {
		_, idx = segs.Closest(p)
	}

	closed := c.IsClosed()
	in, out := idx, idx
	switch {
	case p.Equal(segs[idx].End):
		out = idx + 1
		if out == len(segs) {
			out = -1
			if closed {
				out = 0
			}
		}
	case p.Equal(segs[idx].Start):
		in = idx - 1
		if in < 0 && closed {
			in = len(segs) - 1
		}
	}

	if dir == Alpha {
		if in < 0 {
			in = out
		}
		return segs[in].Vector().Scale(-1).Angle()
	}
	if out < 0 {
		out = in
	}
	return segs[out].Vector().Angle()
}

func (c Chain) nonNull() Chain {
	out := make(Chain, 0, len(c))
	for _, s := range c {
		if !s.IsNull() {
			out = append(out, s)
		}
	}
	return out
}
