package planar

import "github.com/beetlebugorg/planar/internal/kernel"

// Segment is a directed straight line between two positions of one
// coordinate system. A segment whose extremities coincide is a valid null
// segment of length zero.
type Segment struct {
	seg kernel.Segment
	sys *CoordinateSystem
}

// NewSegment creates the segment from start to end. The end point is
// converted into the system of start.
func NewSegment(start, end Position) (Segment, error) {
	e, err := pointIn(end, start.sys)
	if err != nil {
		return Segment{}, err
	}
	return Segment{seg: kernel.Segment{Start: start.point(), End: e}, sys: start.sys}, nil
}

// NewSegmentXY creates the segment (x1, y1) to (x2, y2) of sys.
func NewSegmentXY(sys *CoordinateSystem, x1, y1, x2, y2 float64) Segment {
	return Segment{seg: kernel.Segment{Start: kernel.Point{X: x1, Y: y1}, End: kernel.Point{X: x2, Y: y2}}, sys: sys}
}

func (s Segment) CoordSys() *CoordinateSystem { return s.sys }
func (s Segment) StartPoint() Position        { return positionOf(s.sys, s.seg.Start) }
func (s Segment) EndPoint() Position          { return positionOf(s.sys, s.seg.End) }
func (s Segment) Length() float64             { return s.seg.Length() }
func (s Segment) NumberOfLinears() int        { return 1 }
func (s Segment) IsNull() bool                { return s.seg.IsNull() }

func (s Segment) Extent() Extent { return extentOf(s.sys, s.leaves()) }

func (s Segment) leaves() kernel.Chain { return kernel.Chain{s.seg} }

// RelativePoint returns the point at fraction t of the segment, linearly
// interpolated. t is not clamped.
func (s Segment) RelativePoint(t float64) Position {
	return positionOf(s.sys, s.seg.At(t))
}

// RelativePosition returns the parameter of p projected orthogonally on
// the segment, clamped to [0, 1].
func (s Segment) RelativePosition(p Position) (float64, error) {
	q, err := pointIn(p, s.sys)
	if err != nil {
		return 0, err
	}
	_, t := s.seg.Closest(q)
	return t, nil
}

// ClosestPoint returns the point of the segment nearest to p.
func (s Segment) ClosestPoint(p Position) (Position, error) {
	q, err := pointIn(p, s.sys)
	if err != nil {
		return Position{}, err
	}
	c, _ := s.seg.Closest(q)
	return positionOf(s.sys, c), nil
}

// IsPointOn reports whether p lies on the segment within GlobalEpsilon.
func (s Segment) IsPointOn(p Position, policy ExtremityPolicy) (bool, error) {
	return isPointOn(s.sys, s.leaves(), p, policy)
}

// Intersect returns the points where other properly crosses the segment.
// Touching at an extremity and collinear overlap give no point.
func (s Segment) Intersect(other Linear) ([]Position, error) {
	return intersect(s.sys, s.leaves(), other)
}

// Crosses reports whether Intersect finds any point.
func (s Segment) Crosses(other Linear) (bool, error) {
	return crosses(s.sys, s.leaves(), other)
}

// AreAdjacent reports whether an extremity of one curve lies on the other.
func (s Segment) AreAdjacent(other Linear) (bool, error) {
	return areAdjacent(s.sys, s.leaves(), other)
}

// AreContiguous reports whether other runs along the segment for longer
// than GlobalEpsilon.
func (s Segment) AreContiguous(other Linear) (bool, error) {
	return areContiguous(s.sys, s.leaves(), other)
}

// ContiguousnessPoints returns the boundary pair of each stretch shared
// with other, in order along the segment.
func (s Segment) ContiguousnessPoints(other Linear) ([]Position, error) {
	return contiguousnessPoints(s.sys, s.leaves(), other)
}

// ContiguousnessPointsAt returns the boundaries of the shared stretch
// holding at. ok is false when at is on no such stretch.
func (s Segment) ContiguousnessPointsAt(other Linear, at Position) (first, second Position, ok bool, err error) {
	return contiguousnessPointsAt(s.sys, s.leaves(), other, at)
}

// AreContiguousAt reports whether the segment and other share a stretch
// holding at.
func (s Segment) AreContiguousAt(other Linear, at Position) (bool, error) {
	_, _, ok, err := s.ContiguousnessPointsAt(other, at)
	return ok, err
}

// Bearing returns the direction of the segment, reversed for Alpha.
func (s Segment) Bearing(p Position, dir Direction) (Bearing, error) {
	return bearing(s.sys, s.leaves(), p, dir)
}

// AngularAcceleration is always zero on a straight segment.
func (s Segment) AngularAcceleration(p Position, dir Direction) (float64, error) {
	if _, err := pointIn(p, s.sys); err != nil {
		return 0, err
	}
	return 0, nil
}

// RayArea returns the signed crossing count of the segment with the ray
// from p toward +X.
func (s Segment) RayArea(p Position) (float64, error) {
	return rayArea(s.sys, s.leaves(), p)
}

// IsParallel reports whether both segments have the same or opposite
// direction. Null segments are parallel to nothing.
func (s Segment) IsParallel(other Segment) (bool, error) {
	o, err := chainIn(other, s.sys)
	if err != nil {
		return false, err
	}
	return kernel.IsParallel(s.seg, o[0]), nil
}

// Reverse returns the segment running from end to start.
func (s Segment) Reverse() Segment {
	return Segment{seg: s.seg.Reverse(), sys: s.sys}
}

// Move translates the segment by d.
func (s *Segment) Move(d Displacement) {
	off := kernel.Point{X: d.dx, Y: d.dy}
	s.seg = kernel.Segment{Start: s.seg.Start.Add(off), End: s.seg.End.Add(off)}
}

// Scale scales the segment by factor around origin.
func (s *Segment) Scale(factor float64, origin Position) error {
	o, err := pointIn(origin, s.sys)
	if err != nil {
		return err
	}
	s.seg = kernel.Segment{Start: s.seg.Start.ScaleAround(factor, o), End: s.seg.End.ScaleAround(factor, o)}
	return nil
}

// Rotate turns the segment by angle radians around origin.
func (s *Segment) Rotate(angle float64, origin Position) error {
	o, err := pointIn(origin, s.sys)
	if err != nil {
		return err
	}
	s.seg = kernel.Segment{Start: s.seg.Start.Rotate(angle, o), End: s.seg.End.Rotate(angle, o)}
	return nil
}
