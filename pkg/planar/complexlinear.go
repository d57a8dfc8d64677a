package planar

import (
	"github.com/beetlebugorg/planar/internal/kernel"
)

// ComplexLinear is an ordered chain of leaf segments, open or closed.
//
// Linears appended or inserted into a ComplexLinear are copied in and
// flattened, so NumberOfLinears always counts leaf segments. The chain is
// traversed from the start of its first leaf to the end of its last one.
// Keeping consecutive leaves connected is up to the caller.
//
// A chain is closed when its end point matches its start point within
// GlobalEpsilon; no flag is kept. Methods that mutate the receiver are
// not safe for concurrent use; Clone per goroutine instead.
//
// Example:
//
//	sys := planar.NewCoordinateSystem()
//	path := planar.NewPolySegmentXY(sys, [][2]float64{{0, 0}, {10, 10}, {20, 10}})
//
//	fmt.Println(path.Length())          // 24.142135623730951
//	fmt.Println(path.NumberOfLinears()) // 2
//	mid := path.RelativePoint(0.5)
type ComplexLinear struct {
	sys  *CoordinateSystem
	segs kernel.Chain
}

// NewComplexLinear creates an empty chain of sys.
func NewComplexLinear(sys *CoordinateSystem) *ComplexLinear {
	return &ComplexLinear{sys: sys}
}

// NewPolySegment creates the chain through the given positions, which are
// converted into sys. Fewer than two positions give an empty chain.
func NewPolySegment(sys *CoordinateSystem, points ...Position) (*ComplexLinear, error) {
	pts := make([]kernel.Point, len(points))
	for i, p := range points {
		q, err := pointIn(p, sys)
		if err != nil {
			return nil, err
		}
		pts[i] = q
	}
	return &ComplexLinear{sys: sys, segs: chainThrough(pts)}, nil
}

// NewPolySegmentXY creates the chain through the given coordinate pairs of sys.
func NewPolySegmentXY(sys *CoordinateSystem, coords [][2]float64) *ComplexLinear {
	pts := make([]kernel.Point, len(coords))
	for i, c := range coords {
		pts[i] = kernel.Point{X: c[0], Y: c[1]}
	}
	return &ComplexLinear{sys: sys, segs: chainThrough(pts)}
}

func chainThrough(pts []kernel.Point) kernel.Chain {
	if len(pts) < 2 {
		return nil
	}
	c := make(kernel.Chain, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		c = append(c, kernel.Segment{Start: pts[i-1], End: pts[i]})
	}
	return c
}

func (l *ComplexLinear) CoordSys() *CoordinateSystem { return l.sys }

func (l *ComplexLinear) leaves() kernel.Chain { return l.segs }

// StartPoint returns the first point, or the origin when empty.
func (l *ComplexLinear) StartPoint() Position { return positionOf(l.sys, l.segs.Start()) }

// EndPoint returns the last point, or the origin when empty.
func (l *ComplexLinear) EndPoint() Position { return positionOf(l.sys, l.segs.End()) }

// NumberOfLinears returns the number of leaf segments.
func (l *ComplexLinear) NumberOfLinears() int { return len(l.segs) }

// Linear returns leaf segment i.
func (l *ComplexLinear) Linear(i int) (Segment, error) {
	if i < 0 || i >= len(l.segs) {
		return Segment{}, &ErrIndexOutOfRange{Index: i, Len: len(l.segs)}
	}
	return Segment{seg: l.segs[i], sys: l.sys}, nil
}

// IsEmpty reports whether the chain has no leaf segment.
func (l *ComplexLinear) IsEmpty() bool { return len(l.segs) == 0 }

// IsAutoClosed reports whether the end point matches the start point.
func (l *ComplexLinear) IsAutoClosed() bool { return l.segs.IsClosed() }

// Length returns the sum of the leaf lengths.
func (l *ComplexLinear) Length() float64 { return l.segs.Length() }

// Extent returns the union of the leaf extents, undefined when empty.
func (l *ComplexLinear) Extent() Extent { return extentOf(l.sys, l.segs) }

// Vertices returns the ordered vertex positions.
func (l *ComplexLinear) Vertices() []Position { return positionsOf(l.sys, l.segs.Vertices()) }

// Drop returns the vertex sequence describing the chain. The tolerance
// argument is ignored: leaves are straight, so the vertices are exact.
func (l *ComplexLinear) Drop(_ float64) []Position {
	return l.Vertices()
}

// RelativePoint returns the point at fraction t of the arc length. The
// extremities are exact at 0 and 1. An empty chain answers the origin of
// its system.
func (l *ComplexLinear) RelativePoint(t float64) Position {
	return positionOf(l.sys, l.segs.RelativePoint(t))
}

// RelativePosition returns the fraction of arc length of the point of the
// chain nearest to p. An empty chain answers 0.
func (l *ComplexLinear) RelativePosition(p Position) (float64, error) {
	q, err := pointIn(p, l.sys)
	if err != nil {
		return 0, err
	}
	return l.segs.RelativePosition(q), nil
}

// ClosestPoint returns the point of the chain nearest to p. When several
// leaves are equally near, the earliest one in traversal order wins. An
// empty chain answers the origin of its system.
func (l *ComplexLinear) ClosestPoint(p Position) (Position, error) {
	q, err := pointIn(p, l.sys)
	if err != nil {
		return Position{}, err
	}
	c, _ := l.segs.Closest(q)
	return positionOf(l.sys, c), nil
}

// IsPointOn reports whether p lies on the chain. ExcludeExtremities
// rejects the start and end points of an open chain only.
func (l *ComplexLinear) IsPointOn(p Position, policy ExtremityPolicy) (bool, error) {
	return isPointOn(l.sys, l.segs, p, policy)
}

// RayArea casts a ray from p toward +X and returns the signed count of
// leaves crossing it, +1 going up and -1 going down. Inside a closed
// chain the result is non-zero; outside it is exactly zero. It is not an
// area.
func (l *ComplexLinear) RayArea(p Position) (float64, error) {
	return rayArea(l.sys, l.segs, p)
}

// Bearing returns the tangent direction at p. At a vertex Alpha looks
// back along the incoming leaf and Beta forward along the outgoing one.
func (l *ComplexLinear) Bearing(p Position, dir Direction) (Bearing, error) {
	return bearing(l.sys, l.segs, p, dir)
}

// AngularAcceleration is always zero: every leaf is straight.
func (l *ComplexLinear) AngularAcceleration(p Position, dir Direction) (float64, error) {
	if _, err := pointIn(p, l.sys); err != nil {
		return 0, err
	}
	return 0, nil
}

// Clone returns a deep copy.
func (l *ComplexLinear) Clone() *ComplexLinear {
	return &ComplexLinear{sys: l.sys, segs: l.segs.Clone()}
}

// CopyInCoordSys returns a deep copy with every vertex expressed in sys.
// It fails when the conversion needs the inverse of a projective model.
func (l *ComplexLinear) CopyInCoordSys(sys *CoordinateSystem) (*ComplexLinear, error) {
	c, err := chainIn(l, sys)
	if err != nil {
		return nil, err
	}
	return &ComplexLinear{sys: sys, segs: c.Clone()}, nil
}

// MakeEmpty removes every leaf.
func (l *ComplexLinear) MakeEmpty() { l.segs = nil }

// AppendLinear copies the leaves of other, converted into the system of
// l, after the last leaf.
func (l *ComplexLinear) AppendLinear(other Linear) error {
	c, err := chainIn(other, l.sys)
	if err != nil {
		return err
	}
	l.segs = append(l.segs, c...)
	return nil
}

// InsertLinear copies the leaves of other, converted into the system of
// l, before the first leaf.
func (l *ComplexLinear) InsertLinear(other Linear) error {
	c, err := chainIn(other, l.sys)
	if err != nil {
		return err
	}
	segs := make(kernel.Chain, 0, len(c)+len(l.segs))
	segs = append(segs, c...)
	l.segs = append(segs, l.segs...)
	return nil
}

// AppendPosition extends the chain with a leaf from its end point to p.
// On an empty chain it creates a null leaf at p.
func (l *ComplexLinear) AppendPosition(p Position) error {
	q, err := pointIn(p, l.sys)
	if err != nil {
		return err
	}
	start := q
	if len(l.segs) > 0 {
		start = l.segs.End()
	}
	l.segs = append(l.segs, kernel.Segment{Start: start, End: q})
	return nil
}

// Reverse flips the traversal direction in place.
func (l *ComplexLinear) Reverse() { l.segs = l.segs.Reverse() }

// Move translates every vertex by d.
func (l *ComplexLinear) Move(d Displacement) {
	off := kernel.Point{X: d.dx, Y: d.dy}
	l.segs = l.segs.Apply(func(p kernel.Point) kernel.Point { return p.Add(off) })
}

// Scale scales every vertex by factor around origin.
func (l *ComplexLinear) Scale(factor float64, origin Position) error {
	o, err := pointIn(origin, l.sys)
	if err != nil {
		return err
	}
	l.segs = l.segs.Apply(func(p kernel.Point) kernel.Point { return p.ScaleAround(factor, o) })
	return nil
}

// Rotate turns every vertex by angle radians around origin.
func (l *ComplexLinear) Rotate(angle float64, origin Position) error {
	o, err := pointIn(origin, l.sys)
	if err != nil {
		return err
	}
	l.segs = l.segs.Apply(func(p kernel.Point) kernel.Point { return p.Rotate(angle, o) })
	return nil
}
