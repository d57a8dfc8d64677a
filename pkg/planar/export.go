package planar

import (
	"github.com/beetlebugorg/planar/internal/kernel"
	"github.com/ctessum/geom"
)

// LineString returns the vertices of the chain as a ctessum/geom line.
func (l *ComplexLinear) LineString() geom.LineString {
	pts := l.segs.Vertices()
	ls := make(geom.LineString, len(pts))
	for i, p := range pts {
		ls[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return ls
}

// FromLineString creates the chain through the points of ls, read as
// coordinates of sys.
func FromLineString(sys *CoordinateSystem, ls geom.LineString) *ComplexLinear {
	return &ComplexLinear{sys: sys, segs: chainThrough(fromGeomPoints(ls))}
}

// Polygon returns the rings of the shape, outer ring first, as a
// ctessum/geom polygon. Rings are closed.
func (r *region) Polygon() geom.Polygon {
	var poly geom.Polygon
	for _, c := range r.rings() {
		pts := c.Vertices()
		ring := make([]geom.Point, len(pts))
		for i, p := range pts {
			ring[i] = geom.Point{X: p.X, Y: p.Y}
		}
		poly = append(poly, ring)
	}
	return poly
}

// FromPolygon builds holed shapes from a ctessum/geom polygon read as
// coordinates of sys. Rings are sorted into outer rings and holes by
// nesting: a ring inside an even number of others is an outer ring, and
// a ring inside an odd number is a hole of the innermost outer ring
// around it. Rings with fewer than three vertices are skipped.
func FromPolygon(sys *CoordinateSystem, p geom.Polygon) []*HoledShape {
	var rings []kernel.Chain
	for _, r := range p {
		pts := ensureRingClosure(fromGeomPoints(r))
		if len(pts) < 4 {
			continue
		}
		rings = append(rings, chainThrough(pts))
	}

	depth := make([]int, len(rings))
	parent := make([]int, len(rings))
	for i, ri := range rings {
		parent[i] = -1
		probe := ringProbe(ri)
		for j, rj := range rings {
			if i == j || rj.RayArea(probe) == 0 {
				continue
			}
			depth[i]++
			if parent[i] < 0 || area(rj) < area(rings[parent[i]]) {
				parent[i] = j
			}
		}
	}

	var out []*HoledShape
	index := make(map[int]*HoledShape)
	for i, r := range rings {
		if depth[i]%2 == 0 {
			h := &HoledShape{region{sys: sys, outer: r}}
			index[i] = h
			out = append(out, h)
		}
	}
	for i, r := range rings {
		if depth[i]%2 == 1 && parent[i] >= 0 {
			if h, ok := index[parent[i]]; ok {
				h.holes = append(h.holes, r)
			}
		}
	}
	return out
}

// ringProbe returns a point of the ring away from its vertices, used to
// test which rings hold it.
func ringProbe(c kernel.Chain) kernel.Point {
	best := c[0]
	for _, s := range c[1:] {
		if s.Length() > best.Length() {
			best = s
		}
	}
	return best.At(0.5)
}

func area(c kernel.Chain) float64 {
	a := c.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

func fromGeomPoints(pts []geom.Point) []kernel.Point {
	out := make([]kernel.Point, len(pts))
	for i, p := range pts {
		out[i] = kernel.Point{X: p.X, Y: p.Y}
	}
	return out
}
