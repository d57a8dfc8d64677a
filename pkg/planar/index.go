package planar

import (
	"github.com/beetlebugorg/planar/internal/kernel"
	"github.com/dhconnelly/rtreego"
)

// minRectLength widens degenerate extents, as rtreego requires non-zero
// rectangle dimensions.
const minRectLength = kernel.Epsilon

// Bounds implements rtreego.Spatial, so linears and shapes can be stored
// in an R-tree built by the caller. An empty geometry answers the zero
// rectangle.
//
// Example:
//
//	tree := rtreego.NewTree(2, 25, 50)
//	tree.Insert(path)
//	tree.Insert(planar.NewRectangle(sys, 0, 0, 10, 10))
//
//	query, _ := planar.NewExtentFromCorners(sys, 2, 2, 4, 4).Rect()
//	for _, hit := range tree.SearchIntersect(query) {
//	    fmt.Printf("%T\n", hit)
//	}
func (l *ComplexLinear) Bounds() rtreego.Rect {
	return rectOf(l.Extent())
}

// Bounds implements rtreego.Spatial.
func (s Segment) Bounds() rtreego.Rect {
	return rectOf(s.Extent())
}

// Bounds implements rtreego.Spatial.
func (r *region) Bounds() rtreego.Rect {
	return rectOf(r.Extent())
}

func rectOf(e Extent) rtreego.Rect {
	rect, _ := e.Rect()
	return rect
}
