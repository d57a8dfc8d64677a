package planar

import (
	"math"

	"github.com/beetlebugorg/planar/internal/kernel"
)

// Rectangle is an axis-aligned rectangle of a coordinate system. Its
// boundary ring runs (xmin, ymin), (xmin, ymax), (xmax, ymax),
// (xmax, ymin) and back.
type Rectangle struct {
	region
	xmin, ymin float64
	xmax, ymax float64
}

// NewRectangle creates the rectangle spanned by two opposite corners,
// given in either order.
func NewRectangle(sys *CoordinateSystem, x1, y1, x2, y2 float64) *Rectangle {
	r := &Rectangle{
		xmin: math.Min(x1, x2),
		ymin: math.Min(y1, y2),
		xmax: math.Max(x1, x2),
		ymax: math.Max(y1, y2),
	}
	r.sys = sys
	r.build()
	return r
}

// NewRectangleFromCorners creates the rectangle spanned by two positions.
// The second corner is converted into the system of the first.
func NewRectangleFromCorners(a, b Position) (*Rectangle, error) {
	q, err := pointIn(b, a.sys)
	if err != nil {
		return nil, err
	}
	return NewRectangle(a.sys, a.x, a.y, q.X, q.Y), nil
}

func (r *Rectangle) build() {
	r.outer = chainThrough([]kernel.Point{
		{X: r.xmin, Y: r.ymin},
		{X: r.xmin, Y: r.ymax},
		{X: r.xmax, Y: r.ymax},
		{X: r.xmax, Y: r.ymin},
		{X: r.xmin, Y: r.ymin},
	})
}

func (r *Rectangle) XMin() float64 { return r.xmin }
func (r *Rectangle) YMin() float64 { return r.ymin }
func (r *Rectangle) XMax() float64 { return r.xmax }
func (r *Rectangle) YMax() float64 { return r.ymax }

func (r *Rectangle) Width() float64  { return r.xmax - r.xmin }
func (r *Rectangle) Height() float64 { return r.ymax - r.ymin }

// Area returns width times height.
func (r *Rectangle) Area() float64 { return r.Width() * r.Height() }

// Clone returns an independent copy.
func (r *Rectangle) Clone() *Rectangle {
	return NewRectangle(r.sys, r.xmin, r.ymin, r.xmax, r.ymax)
}

// Move translates the rectangle by d.
func (r *Rectangle) Move(d Displacement) {
	r.xmin, r.xmax = r.xmin+d.dx, r.xmax+d.dx
	r.ymin, r.ymax = r.ymin+d.dy, r.ymax+d.dy
	r.build()
}

// Scale scales the rectangle by factor around origin. A negative factor
// keeps the corners normalized.
func (r *Rectangle) Scale(factor float64, origin Position) error {
	o, err := pointIn(origin, r.sys)
	if err != nil {
		return err
	}
	a := kernel.Point{X: r.xmin, Y: r.ymin}.ScaleAround(factor, o)
	b := kernel.Point{X: r.xmax, Y: r.ymax}.ScaleAround(factor, o)
	*r = *NewRectangle(r.sys, a.X, a.Y, b.X, b.Y)
	return nil
}

// RectangleRelation classifies how two rectangles sit relative to each other.
type RectangleRelation int

const (
	Disjoint RectangleRelation = iota
	CornerTouching
	ContiguousByEdge
	Overlapping
	Englobing
	Included
	Equal
)

// String returns the relation name.
func (r RectangleRelation) String() string {
	switch r {
	case CornerTouching:
		return "CornerTouching"
	case ContiguousByEdge:
		return "ContiguousByEdge"
	case Overlapping:
		return "Overlapping"
	case Englobing:
		return "Englobing"
	case Included:
		return "Included"
	case Equal:
		return "Equal"
	default:
		return "Disjoint"
	}
}

// Relation classifies other against r from the overlap of their X and Y
// intervals, within GlobalEpsilon. Englobing means r holds other, Included
// the reverse. Rectangles that only share an edge stretch are
// ContiguousByEdge, those sharing only a corner are CornerTouching.
//
// The corners of other are converted into the system of r; under a
// rotating model the result describes the bounding box of other there.
func (r *Rectangle) Relation(other *Rectangle) (RectangleRelation, error) {
	e, err := other.Extent().In(r.sys)
	if err != nil {
		return Disjoint, err
	}
	oxmin, oymin, oxmax, oymax := e.xmin, e.ymin, e.xmax, e.ymax

	overlapX := math.Min(r.xmax, oxmax) - math.Max(r.xmin, oxmin)
	overlapY := math.Min(r.ymax, oymax) - math.Max(r.ymin, oymin)
	if overlapX < -kernel.Epsilon || overlapY < -kernel.Epsilon {
		return Disjoint, nil
	}

	touchX := overlapX <= kernel.Epsilon
	touchY := overlapY <= kernel.Epsilon
	switch {
	case touchX && touchY:
		return CornerTouching, nil
	case touchX || touchY:
		return ContiguousByEdge, nil
	}

	if kernel.Equal(r.xmin, oxmin) && kernel.Equal(r.ymin, oymin) &&
		kernel.Equal(r.xmax, oxmax) && kernel.Equal(r.ymax, oymax) {
		return Equal, nil
	}
	if holds(r.xmin, r.ymin, r.xmax, r.ymax, oxmin, oymin, oxmax, oymax) {
		return Englobing, nil
	}
	if holds(oxmin, oymin, oxmax, oymax, r.xmin, r.ymin, r.xmax, r.ymax) {
		return Included, nil
	}
	return Overlapping, nil
}

func holds(axmin, aymin, axmax, aymax, bxmin, bymin, bxmax, bymax float64) bool {
	return axmin <= bxmin+kernel.Epsilon && aymin <= bymin+kernel.Epsilon &&
		axmax >= bxmax-kernel.Epsilon && aymax >= bymax-kernel.Epsilon
}

// Overlaps reports whether the interiors of the two rectangles meet.
func (r *Rectangle) Overlaps(other *Rectangle) (bool, error) {
	rel, err := r.Relation(other)
	if err != nil {
		return false, err
	}
	switch rel {
	case Overlapping, Englobing, Included, Equal:
		return true, nil
	}
	return false, nil
}
