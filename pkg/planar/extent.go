package planar

import (
	"math"

	"github.com/beetlebugorg/planar/internal/kernel"
	"github.com/ctessum/geom"
	"github.com/dhconnelly/rtreego"
)

// Extent is an axis-aligned bounding box in a coordinate system.
//
// An extent built from no geometry is undefined: its bounds read as NaN,
// it overlaps and contains nothing, and it cannot be turned into an
// R-tree rectangle.
type Extent struct {
	xmin, ymin float64
	xmax, ymax float64
	defined    bool
	sys        *CoordinateSystem
}

// NewExtent creates an undefined extent of sys.
func NewExtent(sys *CoordinateSystem) Extent {
	return Extent{sys: sys}
}

// NewExtentFromCorners creates the extent spanned by two opposite corners,
// given in either order.
func NewExtentFromCorners(sys *CoordinateSystem, x1, y1, x2, y2 float64) Extent {
	return Extent{
		xmin:    math.Min(x1, x2),
		ymin:    math.Min(y1, y2),
		xmax:    math.Max(x1, x2),
		ymax:    math.Max(y1, y2),
		defined: true,
		sys:     sys,
	}
}

func extentOf(sys *CoordinateSystem, c kernel.Chain) Extent {
	min, max, ok := c.Bounds()
	if !ok {
		return NewExtent(sys)
	}
	return NewExtentFromCorners(sys, min.X, min.Y, max.X, max.Y)
}

func (e Extent) CoordSys() *CoordinateSystem { return e.sys }

// IsDefined reports whether the extent holds any geometry.
func (e Extent) IsDefined() bool { return e.defined }

// XMin returns the lower X bound, or NaN when undefined.
func (e Extent) XMin() float64 { return e.bound(e.xmin) }

// YMin returns the lower Y bound, or NaN when undefined.
func (e Extent) YMin() float64 { return e.bound(e.ymin) }

// XMax returns the upper X bound, or NaN when undefined.
func (e Extent) XMax() float64 { return e.bound(e.xmax) }

// YMax returns the upper Y bound, or NaN when undefined.
func (e Extent) YMax() float64 { return e.bound(e.ymax) }

func (e Extent) bound(v float64) float64 {
	if !e.defined {
		return math.NaN()
	}
	return v
}

// Width returns xmax - xmin, or 0 when undefined.
func (e Extent) Width() float64 {
	if !e.defined {
		return 0
	}
	return e.xmax - e.xmin
}

// Height returns ymax - ymin, or 0 when undefined.
func (e Extent) Height() float64 {
	if !e.defined {
		return 0
	}
	return e.ymax - e.ymin
}

// Add returns the extent grown to hold p.
func (e Extent) Add(p Position) (Extent, error) {
	q, err := pointIn(p, e.sys)
	if err != nil {
		return Extent{}, err
	}
	if !e.defined {
		return NewExtentFromCorners(e.sys, q.X, q.Y, q.X, q.Y), nil
	}
	e.xmin, e.ymin = math.Min(e.xmin, q.X), math.Min(e.ymin, q.Y)
	e.xmax, e.ymax = math.Max(e.xmax, q.X), math.Max(e.ymax, q.Y)
	return e, nil
}

// Union returns the smallest extent holding both e and o.
func (e Extent) Union(o Extent) (Extent, error) {
	o, err := o.In(e.sys)
	if err != nil {
		return Extent{}, err
	}
	switch {
	case !o.defined:
		return e, nil
	case !e.defined:
		return o, nil
	}
	return NewExtentFromCorners(e.sys,
		math.Min(e.xmin, o.xmin), math.Min(e.ymin, o.ymin),
		math.Max(e.xmax, o.xmax), math.Max(e.ymax, o.ymax)), nil
}

// Overlaps reports whether the two boxes meet within GlobalEpsilon.
// Boxes sharing only an edge or a corner overlap.
func (e Extent) Overlaps(o Extent) (bool, error) {
	o, err := o.In(e.sys)
	if err != nil {
		return false, err
	}
	if !e.defined || !o.defined {
		return false, nil
	}
	return e.xmin <= o.xmax+kernel.Epsilon && o.xmin <= e.xmax+kernel.Epsilon &&
		e.ymin <= o.ymax+kernel.Epsilon && o.ymin <= e.ymax+kernel.Epsilon, nil
}

// Contains reports whether p lies inside or on the box.
func (e Extent) Contains(p Position) (bool, error) {
	q, err := pointIn(p, e.sys)
	if err != nil {
		return false, err
	}
	if !e.defined {
		return false, nil
	}
	return q.X >= e.xmin-kernel.Epsilon && q.X <= e.xmax+kernel.Epsilon &&
		q.Y >= e.ymin-kernel.Epsilon && q.Y <= e.ymax+kernel.Epsilon, nil
}

// In returns the extent of the corners of e expressed in sys.
func (e Extent) In(sys *CoordinateSystem) (Extent, error) {
	if e.sys == sys {
		return e, nil
	}
	if !e.defined {
		if _, err := e.sys.TransformTo(sys); err != nil {
			return Extent{}, err
		}
		return NewExtent(sys), nil
	}
	out := NewExtent(sys)
	for _, c := range [4][2]float64{{e.xmin, e.ymin}, {e.xmin, e.ymax}, {e.xmax, e.ymax}, {e.xmax, e.ymin}} {
		var err error
		if out, err = out.Add(NewPosition(e.sys, c[0], c[1])); err != nil {
			return Extent{}, err
		}
	}
	return out, nil
}

// Rect converts the extent into an R-tree rectangle. Zero widths are
// widened to a small positive length, as rtreego rejects them.
func (e Extent) Rect() (rtreego.Rect, error) {
	if !e.defined {
		return rtreego.Rect{}, &ErrUndefinedExtent{}
	}
	point := rtreego.Point{e.xmin, e.ymin}
	lengths := []float64{
		math.Max(e.xmax-e.xmin, minRectLength),
		math.Max(e.ymax-e.ymin, minRectLength),
	}
	return rtreego.NewRect(point, lengths)
}

// GeomBounds converts the extent into ctessum/geom bounds. An undefined
// extent gives inverted infinite bounds that extend to any point.
func (e Extent) GeomBounds() *geom.Bounds {
	if !e.defined {
		return geom.NewBounds()
	}
	return &geom.Bounds{
		Min: geom.Point{X: e.xmin, Y: e.ymin},
		Max: geom.Point{X: e.xmax, Y: e.ymax},
	}
}
