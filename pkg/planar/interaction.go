package planar

import "github.com/beetlebugorg/planar/internal/kernel"

// Intersect returns the points where other properly crosses the chain,
// ordered along the chain.
//
// Only true crossings count. Chains that touch at an extremity, meet at a
// vertex and leave on the same side, or run together along a shared
// stretch give no point. A crossing through a vertex of either chain is
// reported once.
func (l *ComplexLinear) Intersect(other Linear) ([]Position, error) {
	return intersect(l.sys, l.segs, other)
}

// Crosses reports whether Intersect finds any point.
func (l *ComplexLinear) Crosses(other Linear) (bool, error) {
	return crosses(l.sys, l.segs, other)
}

// AreAdjacent reports whether the curves touch: some leaf extremity of
// one lies on the other.
func (l *ComplexLinear) AreAdjacent(other Linear) (bool, error) {
	return areAdjacent(l.sys, l.segs, other)
}

// AreContiguous reports whether the curves run together along a stretch
// longer than GlobalEpsilon. The answer is symmetric and does not depend
// on how either curve is split into leaves or on their directions.
func (l *ComplexLinear) AreContiguous(other Linear) (bool, error) {
	return areContiguous(l.sys, l.segs, other)
}

// ContiguousnessPoints returns the two boundary points of every shared
// stretch, pair after pair in order along the chain. Stretches
// continuing across the start of a closed chain are reported as one.
func (l *ComplexLinear) ContiguousnessPoints(other Linear) ([]Position, error) {
	return contiguousnessPoints(l.sys, l.segs, other)
}

// ContiguousnessPointsAt returns the boundaries of the shared stretch
// holding at. ok is false when at lies on no shared stretch.
func (l *ComplexLinear) ContiguousnessPointsAt(other Linear, at Position) (first, second Position, ok bool, err error) {
	return contiguousnessPointsAt(l.sys, l.segs, other, at)
}

// AreContiguousAt reports whether the curves share a stretch holding at.
func (l *ComplexLinear) AreContiguousAt(other Linear, at Position) (bool, error) {
	_, _, ok, err := l.ContiguousnessPointsAt(other, at)
	return ok, err
}

// AutoIntersect returns the points where the chain crosses itself. Two
// consecutive leaves sharing their junction never cross there; a vertex
// the chain passes through twice does when the passes cross.
func (l *ComplexLinear) AutoIntersect() []Position {
	return positionsOf(l.sys, kernel.AutoIntersect(l.segs))
}

// AutoCrosses reports whether the chain crosses itself.
func (l *ComplexLinear) AutoCrosses() bool {
	return len(kernel.AutoIntersect(l.segs)) > 0
}

// IsAutoContiguous reports whether the chain runs back over itself along
// a stretch longer than GlobalEpsilon.
func (l *ComplexLinear) IsAutoContiguous() bool {
	return kernel.AutoContiguous(l.segs)
}
