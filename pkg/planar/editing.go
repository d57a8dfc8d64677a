package planar

import (
	"sort"

	"github.com/beetlebugorg/planar/internal/kernel"
)

// Shorten keeps only the part of the chain between fractions start and
// end of its arc length, 0 <= start <= end <= 1. Leaves outside the range
// are dropped and the boundary leaves are cut at the exact positions.
// Shorten(0, 1) leaves the chain unchanged.
func (l *ComplexLinear) Shorten(start, end float64) error {
	if !(start >= 0 && end <= 1 && start <= end) {
		return &ErrInvalidRelativePosition{Start: start, End: end}
	}
	l.segs = l.segs.Sub(start, end)
	return nil
}

// ShortenBetween is Shorten with both cuts given as positions on the
// chain, start coming first along it.
func (l *ComplexLinear) ShortenBetween(start, end Position) error {
	t0, err := l.RelativePosition(start)
	if err != nil {
		return err
	}
	t1, err := l.RelativePosition(end)
	if err != nil {
		return err
	}
	return l.Shorten(t0, t1)
}

// ShortenTo keeps the part of the chain before fraction end.
func (l *ComplexLinear) ShortenTo(end float64) error {
	return l.Shorten(0, end)
}

// ShortenFrom keeps the part of the chain after fraction start.
func (l *ComplexLinear) ShortenFrom(start float64) error {
	return l.Shorten(start, 1)
}

// ShortenToPoint keeps the part of the chain before p.
func (l *ComplexLinear) ShortenToPoint(p Position) error {
	t, err := l.RelativePosition(p)
	if err != nil {
		return err
	}
	return l.ShortenTo(t)
}

// ShortenFromPoint keeps the part of the chain after p.
func (l *ComplexLinear) ShortenFromPoint(p Position) error {
	t, err := l.RelativePosition(p)
	if err != nil {
		return err
	}
	return l.ShortenFrom(t)
}

// SplitAtAllOnPoints inserts a vertex at every point lying on the chain
// and returns how many were inserted. Points off the chain or matching an
// existing vertex are skipped, so a second call with the same points
// inserts nothing.
func (l *ComplexLinear) SplitAtAllOnPoints(points []Position) (int, error) {
	pts := make([]kernel.Point, 0, len(points))
	for _, p := range points {
		q, err := pointIn(p, l.sys)
		if err != nil {
			return 0, err
		}
		pts = append(pts, q)
	}
	var n int
	l.segs, n = l.segs.SplitAt(pts)
	return n, nil
}

// SplitAtAllIntersectionPoints inserts a vertex at every point where other
// crosses the chain and returns how many were inserted.
func (l *ComplexLinear) SplitAtAllIntersectionPoints(other Linear) (int, error) {
	pts, err := l.Intersect(other)
	if err != nil {
		return 0, err
	}
	return l.SplitAtAllOnPoints(pts)
}

// RemovePoint removes vertex i, the start of leaf i or the end point when
// i equals NumberOfLinears, joining the leaves on either side of it.
func (l *ComplexLinear) RemovePoint(i int) error {
	if i < 0 || i > len(l.segs) || len(l.segs) == 0 {
		return &ErrIndexOutOfRange{Index: i, Len: len(l.segs) + 1}
	}
	l.segs = l.segs.RemoveVertex(i)
	return nil
}

// AdjustStartPointTo moves the start point of the chain to p. An empty
// chain is left alone.
func (l *ComplexLinear) AdjustStartPointTo(p Position) error {
	q, err := pointIn(p, l.sys)
	if err != nil {
		return err
	}
	if len(l.segs) > 0 {
		l.segs[0].Start = q
	}
	return nil
}

// AdjustEndPointTo moves the end point of the chain to p. An empty chain
// is left alone.
func (l *ComplexLinear) AdjustEndPointTo(p Position) error {
	q, err := pointIn(p, l.sys)
	if err != nil {
		return err
	}
	if len(l.segs) > 0 {
		l.segs[len(l.segs)-1].End = q
	}
	return nil
}

// SortPointsByRelativePosition returns the points, converted into the
// system of the chain, ordered by the relative position of their nearest
// point on it.
func (l *ComplexLinear) SortPointsByRelativePosition(points []Position) ([]Position, error) {
	type keyed struct {
		p Position
		t float64
	}
	ks := make([]keyed, len(points))
	for i, p := range points {
		q, err := p.In(l.sys)
		if err != nil {
			return nil, err
		}
		ks[i] = keyed{p: q, t: l.segs.RelativePosition(q.point())}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].t < ks[j].t })
	out := make([]Position, len(ks))
	for i, k := range ks {
		out[i] = k.p
	}
	return out, nil
}
