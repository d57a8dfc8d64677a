package planar

import "github.com/beetlebugorg/planar/internal/kernel"

// PolygonOfSegments is a shape bounded by a closed chain of segments.
type PolygonOfSegments struct {
	region
}

// NewPolygonOfSegments creates the polygon through the given positions,
// converted into sys. The ring is closed when the last position differs
// from the first.
func NewPolygonOfSegments(sys *CoordinateSystem, points ...Position) (*PolygonOfSegments, error) {
	pts := make([]kernel.Point, 0, len(points)+1)
	for _, p := range points {
		q, err := pointIn(p, sys)
		if err != nil {
			return nil, err
		}
		pts = append(pts, q)
	}
	pts = ensureRingClosure(pts)
	if len(pts) < 4 {
		return nil, &ErrNotClosed{Shape: "polygon"}
	}
	return &PolygonOfSegments{region{sys: sys, outer: chainThrough(pts)}}, nil
}

// NewPolygonOfSegmentsXY creates the polygon through coordinate pairs of sys.
func NewPolygonOfSegmentsXY(sys *CoordinateSystem, coords [][2]float64) (*PolygonOfSegments, error) {
	points := make([]Position, len(coords))
	for i, c := range coords {
		points[i] = NewPosition(sys, c[0], c[1])
	}
	return NewPolygonOfSegments(sys, points...)
}

// NewPolygonFromLinear creates the polygon bounded by l, which must be
// auto-closed.
func NewPolygonFromLinear(l *ComplexLinear) (*PolygonOfSegments, error) {
	if err := closedRing("polygon", l.segs); err != nil {
		return nil, err
	}
	return &PolygonOfSegments{region{sys: l.sys, outer: l.segs.Clone()}}, nil
}

// ensureRingClosure appends the first point when the ring does not end on it.
func ensureRingClosure(pts []kernel.Point) []kernel.Point {
	if len(pts) < 3 {
		return pts // Not enough points for a ring
	}
	if pts[0].Equal(pts[len(pts)-1]) {
		return pts
	}
	return append(pts, pts[0])
}

// Clone returns an independent copy.
func (p *PolygonOfSegments) Clone() *PolygonOfSegments {
	return &PolygonOfSegments{region{sys: p.sys, outer: p.outer.Clone()}}
}

// Move translates the polygon by d.
func (p *PolygonOfSegments) Move(d Displacement) {
	b := p.Boundary()
	b.Move(d)
	p.outer = b.segs
}

// Scale scales the polygon by factor around origin.
func (p *PolygonOfSegments) Scale(factor float64, origin Position) error {
	b := p.Boundary()
	if err := b.Scale(factor, origin); err != nil {
		return err
	}
	p.outer = b.segs
	return nil
}

// ComplexShape is a shape bounded by any closed curve, including chains
// assembled from other complex linears.
type ComplexShape struct {
	region
}

// NewComplexShape creates the shape bounded by l, which must end where it
// starts. The leaves are copied.
func NewComplexShape(l Linear) (*ComplexShape, error) {
	c := l.leaves().Clone()
	if err := closedRing("complex shape", c); err != nil {
		return nil, err
	}
	return &ComplexShape{region{sys: l.CoordSys(), outer: c}}, nil
}

// Clone returns an independent copy.
func (s *ComplexShape) Clone() *ComplexShape {
	return &ComplexShape{region{sys: s.sys, outer: s.outer.Clone()}}
}
