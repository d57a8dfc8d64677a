package planar

import (
	"github.com/beetlebugorg/planar/internal/kernel"
	"github.com/ctessum/geom"
	"github.com/dhconnelly/rtreego"
)

// SpatialPosition classifies a point or curve against a shape.
type SpatialPosition int

const (
	Out SpatialPosition = iota
	In
	On
	PartiallyIn
)

// String returns the classification name.
func (s SpatialPosition) String() string {
	switch s {
	case In:
		return "In"
	case On:
		return "On"
	case PartiallyIn:
		return "PartiallyIn"
	default:
		return "Out"
	}
}

// Shape is a closed region bounded by an outer ring and zero or more
// hole rings. It is implemented by *Rectangle, *PolygonOfSegments,
// *ComplexShape and *HoledShape.
type Shape interface {
	CoordSys() *CoordinateSystem
	Boundary() *ComplexLinear
	Holes() []*ComplexLinear
	Extent() Extent
	Area() float64
	Perimeter() float64
	IsPointIn(p Position) (bool, error)
	IsPointOn(p Position) (bool, error)
	SpatialPositionOf(p Position) (SpatialPosition, error)
	SpatialPositionOfLinear(l Linear) (SpatialPosition, error)
	Polygon() geom.Polygon
	Bounds() rtreego.Rect

	rings() []kernel.Chain
}

// region carries the rings of a shape and the queries shared by every
// shape type.
type region struct {
	sys   *CoordinateSystem
	outer kernel.Chain
	holes []kernel.Chain
}

func (r *region) CoordSys() *CoordinateSystem { return r.sys }

func (r *region) rings() []kernel.Chain {
	return append([]kernel.Chain{r.outer}, r.holes...)
}

// Boundary returns a copy of the outer ring.
func (r *region) Boundary() *ComplexLinear {
	return &ComplexLinear{sys: r.sys, segs: r.outer.Clone()}
}

// Holes returns copies of the hole rings.
func (r *region) Holes() []*ComplexLinear {
	if len(r.holes) == 0 {
		return nil
	}
	out := make([]*ComplexLinear, len(r.holes))
	for i, h := range r.holes {
		out[i] = &ComplexLinear{sys: r.sys, segs: h.Clone()}
	}
	return out
}

// Extent returns the extent of the outer ring.
func (r *region) Extent() Extent { return extentOf(r.sys, r.outer) }

// Area returns the enclosed area, holes excluded.
func (r *region) Area() float64 {
	a := area(r.outer)
	for _, h := range r.holes {
		a -= area(h)
	}
	return a
}

// Perimeter returns the total length of every ring.
func (r *region) Perimeter() float64 {
	var p float64
	for _, c := range r.rings() {
		p += c.Length()
	}
	return p
}

func (r *region) classify(p kernel.Point) SpatialPosition {
	for _, c := range r.rings() {
		if c.Contains(p) {
			return On
		}
	}
	if r.outer.RayArea(p) == 0 {
		return Out
	}
	for _, h := range r.holes {
		if h.RayArea(p) != 0 {
			return Out
		}
	}
	return In
}

// SpatialPositionOf tells whether p is inside the shape, outside it, or on
// one of its rings.
func (r *region) SpatialPositionOf(p Position) (SpatialPosition, error) {
	q, err := pointIn(p, r.sys)
	if err != nil {
		return Out, err
	}
	return r.classify(q), nil
}

// IsPointIn reports whether p is strictly inside the shape.
func (r *region) IsPointIn(p Position) (bool, error) {
	s, err := r.SpatialPositionOf(p)
	return s == In, err
}

// IsPointOn reports whether p lies on a ring. Rings are closed, so no
// extremity is ever excluded.
func (r *region) IsPointOn(p Position) (bool, error) {
	s, err := r.SpatialPositionOf(p)
	return s == On, err
}

// SpatialPositionOfLinear classifies a whole curve. A curve crossing a
// ring is PartiallyIn; otherwise its vertices and leaf midpoints decide,
// points on a ring being neutral. A curve lying entirely on the rings is On.
func (r *region) SpatialPositionOfLinear(l Linear) (SpatialPosition, error) {
	c, err := chainIn(l, r.sys)
	if err != nil {
		return Out, err
	}
	for _, ring := range r.rings() {
		if len(kernel.Intersect(c, ring)) > 0 {
			return PartiallyIn, nil
		}
	}

	var in, out bool
	for _, s := range c {
		for _, p := range [3]kernel.Point{s.Start, s.At(0.5), s.End} {
			switch r.classify(p) {
			case In:
				in = true
			case Out:
				out = true
			}
		}
	}
	switch {
	case in && out:
		return PartiallyIn, nil
	case in:
		return In, nil
	case out:
		return Out, nil
	}
	return On, nil
}

// closedRing checks that c is non-empty and ends where it starts.
func closedRing(shape string, c kernel.Chain) error {
	if !c.IsClosed() {
		return &ErrNotClosed{Shape: shape}
	}
	return nil
}
