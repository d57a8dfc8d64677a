package planar

import "github.com/beetlebugorg/planar/internal/kernel"

// Linear is a directed curve made of straight leaf segments. It is
// implemented by Segment and *ComplexLinear.
type Linear interface {
	CoordSys() *CoordinateSystem
	StartPoint() Position
	EndPoint() Position
	Length() float64
	Extent() Extent
	NumberOfLinears() int

	leaves() kernel.Chain
}

// ExtremityPolicy tells IsPointOn whether the start and end points of an
// open curve count as on it.
type ExtremityPolicy int

const (
	IncludeExtremities ExtremityPolicy = iota
	ExcludeExtremities
)

// String returns the policy name.
func (p ExtremityPolicy) String() string {
	if p == ExcludeExtremities {
		return "ExcludeExtremities"
	}
	return "IncludeExtremities"
}

// chainIn returns the leaf segments of l expressed in sys.
func chainIn(l Linear, sys *CoordinateSystem) (kernel.Chain, error) {
	c := l.leaves()
	if l.CoordSys() == sys {
		return c, nil
	}
	t, err := l.CoordSys().TransformTo(sys)
	if err != nil {
		return nil, err
	}
	return c.Map(t.point)
}

func positionsOf(sys *CoordinateSystem, pts []kernel.Point) []Position {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Position, len(pts))
	for i, p := range pts {
		out[i] = positionOf(sys, p)
	}
	return out
}

// The predicates below back both Segment and ComplexLinear, so the two
// always agree on the same geometry.

func isPointOn(sys *CoordinateSystem, c kernel.Chain, p Position, policy ExtremityPolicy) (bool, error) {
	q, err := pointIn(p, sys)
	if err != nil {
		return false, err
	}
	if policy == ExcludeExtremities {
		return c.ContainsInterior(q), nil
	}
	return c.Contains(q), nil
}

func intersect(sys *CoordinateSystem, c kernel.Chain, other Linear) ([]Position, error) {
	o, err := chainIn(other, sys)
	if err != nil {
		return nil, err
	}
	return positionsOf(sys, kernel.Intersect(c, o)), nil
}

func crosses(sys *CoordinateSystem, c kernel.Chain, other Linear) (bool, error) {
	pts, err := intersect(sys, c, other)
	return len(pts) > 0, err
}

func areAdjacent(sys *CoordinateSystem, c kernel.Chain, other Linear) (bool, error) {
	o, err := chainIn(other, sys)
	if err != nil {
		return false, err
	}
	return kernel.TouchesAtExtremity(c, o), nil
}

func areContiguous(sys *CoordinateSystem, c kernel.Chain, other Linear) (bool, error) {
	o, err := chainIn(other, sys)
	if err != nil {
		return false, err
	}
	return len(kernel.ContiguousRegions(c, o)) > 0, nil
}

func contiguousnessPoints(sys *CoordinateSystem, c kernel.Chain, other Linear) ([]Position, error) {
	o, err := chainIn(other, sys)
	if err != nil {
		return nil, err
	}
	var out []Position
	for _, r := range kernel.ContiguousRegions(c, o) {
		out = append(out, positionOf(sys, r.P0), positionOf(sys, r.P1))
	}
	return out, nil
}

func contiguousnessPointsAt(sys *CoordinateSystem, c kernel.Chain, other Linear, at Position) (Position, Position, bool, error) {
	o, err := chainIn(other, sys)
	if err != nil {
		return Position{}, Position{}, false, err
	}
	x, err := pointIn(at, sys)
	if err != nil {
		return Position{}, Position{}, false, err
	}
	r, ok := kernel.RegionAt(c, o, x)
	if !ok {
		return Position{}, Position{}, false, nil
	}
	return positionOf(sys, r.P0), positionOf(sys, r.P1), true, nil
}

func bearing(sys *CoordinateSystem, c kernel.Chain, p Position, dir Direction) (Bearing, error) {
	q, err := pointIn(p, sys)
	if err != nil {
		return Bearing{}, err
	}
	return NewBearing(c.Bearing(q, dir)), nil
}

func rayArea(sys *CoordinateSystem, c kernel.Chain, p Position) (float64, error) {
	q, err := pointIn(p, sys)
	if err != nil {
		return 0, err
	}
	return c.RayArea(q), nil
}
