package kernel

import "math"

// Segment is a directed straight line piece. Start == End is a valid null
// segment of length zero.
type Segment struct {
	Start, End Point
}

func (s Segment) Vector() Point { return s.End.Sub(s.Start) }

func (s Segment) Length() float64 { return s.Start.Dist(s.End) }

func (s Segment) IsNull() bool { return s.Start.Equal(s.End) }

func (s Segment) Reverse() Segment { return Segment{s.End, s.Start} }

// At returns the point at parameter t. The extremities are returned
// exactly at t == 0 and t == 1.
func (s Segment) At(t float64) Point {
	switch t {
	case 0:
		return s.Start
	case 1:
		return s.End
	}
	return s.Start.Add(s.Vector().Scale(t))
}

// Param returns the unclamped parameter of the orthogonal projection of p
// on the supporting line. Null segments give 0.
func (s Segment) Param(p Point) float64 {
	v := s.Vector()
	l2 := v.Dot(v)
	if l2 == 0 {
		return 0
	}
	return p.Sub(s.Start).Dot(v) / l2
}

// Closest returns the point of s nearest to p and its parameter.
func (s Segment) Closest(p Point) (Point, float64) {
	t := s.Param(p)
	if t <= 0 {
		return s.Start, 0
	}
	if t >= 1 {
		return s.End, 1
	}
	return s.At(t), t
}

// Distance returns the distance from p to the nearest point of s.
func (s Segment) Distance(p Point) float64 {
	c, _ := s.Closest(p)
	return c.Dist(p)
}

// LineDistance returns the distance from p to the supporting line of s.
func (s Segment) LineDistance(p Point) float64 {
	l := s.Length()
	if l == 0 {
		return p.Dist(s.Start)
	}
	return math.Abs(s.Vector().Cross(p.Sub(s.Start))) / l
}

// Contains reports whether p lies on s within tolerance.
func (s Segment) Contains(p Point) bool {
	c, _ := s.Closest(p)
	return near(c.Dist(p), c.magnitude(p))
}

// HasExtremity reports whether p is one of the extremities of s.
func (s Segment) HasExtremity(p Point) bool {
	return p.Equal(s.Start) || p.Equal(s.End)
}

// Bounds returns the lower left and upper right corners of s.
func (s Segment) Bounds() (Point, Point) {
	return Point{math.Min(s.Start.X, s.End.X), math.Min(s.Start.Y, s.End.Y)},
		Point{math.Max(s.Start.X, s.End.X), math.Max(s.Start.Y, s.End.Y)}
}

// Crossing returns the point where a and b cross at an interior point of
// both. Touching at an extremity, collinear overlap and parallel segments
// are not crossings.
func Crossing(a, b Segment) (Point, bool) {
	if a.IsNull() || b.IsNull() {
		return Point{}, false
	}
	if b.Contains(a.Start) || b.Contains(a.End) || a.Contains(b.Start) || a.Contains(b.End) {
		return Point{}, false
	}
	va, vb := a.Vector(), b.Vector()
	d := va.Cross(vb)
	if d == 0 {
		return Point{}, false
	}
	w := b.Start.Sub(a.Start)
	t := w.Cross(vb) / d
	u := w.Cross(va) / d
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return Point{}, false
	}
	return a.At(t), true
}

// IsParallel reports whether a and b have the same or opposite direction.
// Null segments are parallel to nothing.
func IsParallel(a, b Segment) bool {
	if a.IsNull() || b.IsNull() {
		return false
	}
	ua := a.Vector().Scale(1 / a.Length())
	ub := b.Vector().Scale(1 / b.Length())
	return math.Abs(ua.Cross(ub)) <= Epsilon
}

// Overlap is the collinear portion shared by two segments, expressed on
// the first one.
type Overlap struct {
	T0, T1 float64 // parameters on the first segment, T0 < T1
	P0, P1 Point   // boundary points matching T0 and T1
}

// CollinearOverlap returns the portion of a that b runs along. The longer
// segment serves as the reference line, so the answer does not depend on
// argument order beyond the parameter frame it is expressed in.
func CollinearOverlap(a, b Segment) (Overlap, bool) {
	if a.IsNull() || b.IsNull() {
		return Overlap{}, false
	}
	base, other := a, b
	if b.Length() > a.Length() {
		base, other = b, a
	}
	if base.LineDistance(other.Start) > Epsilon || base.LineDistance(other.End) > Epsilon {
		return Overlap{}, false
	}

	u0, u1 := base.Param(other.Start), base.Param(other.End)
	p0, p1 := other.Start, other.End
	if u0 > u1 {
		u0, u1 = u1, u0
		p0, p1 = p1, p0
	}
	if u0 < 0 {
		u0, p0 = 0, base.Start
	}
	if u1 > 1 {
		u1, p1 = 1, base.End
	}
	if u1 <= u0 {
		return Overlap{}, false
	}

	t0, t1 := a.Param(p0), a.Param(p1)
	if t0 > t1 {
		t0, t1 = t1, t0
		p0, p1 = p1, p0
	}
	t0 = math.Max(0, t0)
	t1 = math.Min(1, t1)
	if t1 <= t0 {
		return Overlap{}, false
	}
	return Overlap{T0: t0, T1: t1, P0: p0, P1: p1}, true
}
