// Package planar is a 2D vector-geometry kernel.
//
// It provides positions, segments, polylines and composite curves,
// rectangles, polygons and holed shapes, all expressed in coordinate
// systems organised as a tree of composable transforms. On top of those it
// answers tolerance-aware questions about curves: length and
// parametrization, closest points, proper crossings, adjacency,
// contiguousness (two curves running together), self-intersection, and
// containment.
//
// # Coordinate systems
//
// A CoordinateSystem is either a root or derived from a parent through a
// TransformModel (Identity, Translation, Stretch, Similitude, Affine or
// Projective). Geometry in different systems of one tree can be combined:
// operands are converted into the receiver's system, and the conversion
// fails with *ErrNonInvertibleTransform when it needs the inverse of a
// projective model.
//
//	world := planar.NewCoordinateSystem()
//	local := world.Derive(planar.Translation{DX: 100, DY: 0})
//
//	a := planar.NewPolySegmentXY(world, [][2]float64{{100, -5}, {100, 5}})
//	b := planar.NewSegmentXY(local, -5, 0, 5, 0)
//
//	pts, err := a.Intersect(b) // one point, (100, 0) of world
//
// # Tolerance
//
// Every predicate uses the same absolute tolerance, GlobalEpsilon. Points
// closer than that are equal, a point that near a curve is on it, and two
// curves are contiguous only along a shared stretch longer than it.
//
// # Degenerate geometry
//
// Null segments, empty chains and undefined extents are valid values. An
// empty chain has length 0, an undefined extent, and answers the origin
// of its system for RelativePoint and ClosestPoint. Only failed
// coordinate conversions, out-of-range relative positions and unclosed
// shape boundaries are reported as errors.
package planar

import "github.com/beetlebugorg/planar/internal/kernel"

// GlobalEpsilon is the tolerance shared by every predicate of the package.
const GlobalEpsilon = kernel.Epsilon
