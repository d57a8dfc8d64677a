package planar

import (
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// Intersection returns the region covered by both a and b, expressed in
// the system of a. The result may hold several disjoint pieces, each with
// its own holes, and is empty when the shapes do not overlap.
//
// Region operations are computed by the ctessum/geom polygon clipper. The
// vertices of the result are new points, not snapped to the inputs.
func Intersection(a, b Shape) ([]*HoledShape, error) {
	return clip("intersection", a, b, func(pa, pb geom.Polygon) geom.Polygonal {
		return pa.Intersection(pb)
	})
}

// Union returns the region covered by a or b, expressed in the system of a.
func Union(a, b Shape) ([]*HoledShape, error) {
	return clip("union", a, b, func(pa, pb geom.Polygon) geom.Polygonal {
		return pa.Union(pb)
	})
}

// Difference returns the region of a not covered by b, expressed in the
// system of a.
func Difference(a, b Shape) ([]*HoledShape, error) {
	return clip("difference", a, b, func(pa, pb geom.Polygon) geom.Polygonal {
		return pa.Difference(pb)
	})
}

// SymmetricDifference returns the region covered by exactly one of a and
// b, expressed in the system of a.
func SymmetricDifference(a, b Shape) ([]*HoledShape, error) {
	return clip("symmetric difference", a, b, func(pa, pb geom.Polygon) geom.Polygonal {
		return pa.XOr(pb)
	})
}

func clip(op string, a, b Shape, f func(pa, pb geom.Polygon) geom.Polygonal) ([]*HoledShape, error) {
	sys := a.CoordSys()
	other := region{sys: sys}
	for i, ring := range b.rings() {
		c, err := chainIn(&ComplexLinear{sys: b.CoordSys(), segs: ring}, sys)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"operation": op,
			}).Debug("planar: operand of a region operation cannot be converted")
			return nil, err
		}
		if i == 0 {
			other.outer = c
		} else {
			other.holes = append(other.holes, c)
		}
	}

	result := flatten(f(a.Polygon(), other.Polygon()))
	shapes := FromPolygon(sys, result)
	logger.WithFields(logrus.Fields{
		"operation": op,
		"rings":     len(result),
		"shapes":    len(shapes),
	}).Debug("planar: region operation")
	return shapes, nil
}

// flatten gathers every ring of p into one polygon. FromPolygon sorts
// them back into outer rings and holes.
func flatten(p geom.Polygonal) geom.Polygon {
	var rings geom.Polygon
	for _, poly := range p.Polygons() {
		rings = append(rings, poly...)
	}
	return rings
}
