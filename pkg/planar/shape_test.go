package planar

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestRectangleRing(t *testing.T) {
	root := NewCoordinateSystem()
	r := NewRectangle(root, 10, 10, 0, 0)

	if r.XMin() != 0 || r.YMin() != 0 || r.XMax() != 10 || r.YMax() != 10 {
		t.Errorf("Expected normalized corners, got (%v,%v)-(%v,%v)", r.XMin(), r.YMin(), r.XMax(), r.YMax())
	}
	if r.Area() != 100 || r.Perimeter() != 40 {
		t.Errorf("Expected area 100 and perimeter 40, got %v and %v", r.Area(), r.Perimeter())
	}

	b := r.Boundary()
	if !b.IsAutoClosed() || b.NumberOfLinears() != 4 {
		t.Fatalf("Expected a closed ring of 4 leaves")
	}
	expected := [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}
	for i, v := range b.Vertices() {
		samePos(t, v, expected[i][0], expected[i][1])
	}

	beta, _ := b.Bearing(NewPosition(root, 0, 0), Beta)
	if !scalar.EqualWithinAbs(beta.Radians(), math.Pi/2, 1e-12) {
		t.Errorf("Expected ring to leave its start going up, got %v", beta.Radians())
	}
	if ok, _ := b.IsPointOn(NewPosition(root, 0, 0), ExcludeExtremities); !ok {
		t.Errorf("Expected ring start to be on the boundary")
	}
}

func TestSpatialPositionOf(t *testing.T) {
	root := NewCoordinateSystem()
	r := NewRectangle(root, 0, 0, 10, 10)

	tests := []struct {
		name     string
		x, y     float64
		expected SpatialPosition
	}{
		{"inside", 5, 5, In},
		{"edge", 10, 5, On},
		{"corner", 0, 0, On},
		{"outside", 15, 5, Out},
		{"below", 5, -1, Out},
		{"just above within epsilon", 5, 10 + 0.9*GlobalEpsilon, On},
		{"just above outside epsilon", 5, 10 + 1.1*GlobalEpsilon, Out},
		{"just below outside epsilon", 5, 10 - 1.1*GlobalEpsilon, In},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.SpatialPositionOf(NewPosition(root, tt.x, tt.y))
			if err != nil {
				t.Fatalf("Failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}

			in, _ := r.IsPointIn(NewPosition(root, tt.x, tt.y))
			on, _ := r.IsPointOn(NewPosition(root, tt.x, tt.y))
			if in != (tt.expected == In) || on != (tt.expected == On) {
				t.Errorf("Expected IsPointIn=%v IsPointOn=%v, got %v %v",
					tt.expected == In, tt.expected == On, in, on)
			}
		})
	}
}

func TestRectangleRelation(t *testing.T) {
	root := NewCoordinateSystem()
	child := root.Derive(Translation{DX: 10})
	base := NewRectangle(root, 0, 0, 10, 10)

	tests := []struct {
		name     string
		other    *Rectangle
		expected RectangleRelation
	}{
		{"disjoint", NewRectangle(root, 20, 20, 30, 30), Disjoint},
		{"corner", NewRectangle(root, 10, 10, 20, 20), CornerTouching},
		{"edge", NewRectangle(root, 10, 0, 20, 10), ContiguousByEdge},
		{"partial edge", NewRectangle(root, 10, 5, 20, 15), ContiguousByEdge},
		{"edge within epsilon", NewRectangle(root, 10+0.5*GlobalEpsilon, 0, 20, 10), ContiguousByEdge},
		{"gap beyond epsilon", NewRectangle(root, 10+1.1*GlobalEpsilon, 0, 20, 10), Disjoint},
		{"overlapping", NewRectangle(root, 5, 5, 15, 15), Overlapping},
		{"englobing", NewRectangle(root, 2, 2, 8, 8), Englobing},
		{"included", NewRectangle(root, -5, -5, 15, 15), Included},
		{"equal", NewRectangle(root, 0, 0, 10, 10), Equal},
		{"edge across systems", NewRectangle(child, 0, 0, 10, 10), ContiguousByEdge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.Relation(tt.other)
			if err != nil {
				t.Fatalf("Failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}

			overlaps, _ := base.Overlaps(tt.other)
			wantOverlap := tt.expected >= Overlapping
			if overlaps != wantOverlap {
				t.Errorf("Expected Overlaps=%v, got %v", wantOverlap, overlaps)
			}
		})
	}
}

func TestRectangleRelationMatchesBoundaries(t *testing.T) {
	root := NewCoordinateSystem()
	base := NewRectangle(root, 0, 0, 10, 10)

	edge := NewRectangle(root, 10, 0, 20, 10)
	if ok, _ := base.Boundary().AreContiguous(edge.Boundary()); !ok {
		t.Errorf("Expected edge neighbours to have contiguous boundaries")
	}

	corner := NewRectangle(root, 10, 10, 20, 20)
	if ok, _ := base.Boundary().AreContiguous(corner.Boundary()); ok {
		t.Errorf("Expected corner neighbours not to have contiguous boundaries")
	}
	if ok, _ := base.Boundary().AreAdjacent(corner.Boundary()); !ok {
		t.Errorf("Expected corner neighbours to have adjacent boundaries")
	}
}

func TestRectangleEdits(t *testing.T) {
	root := NewCoordinateSystem()
	r := NewRectangle(root, 0, 0, 2, 1)
	c := r.Clone()

	r.Move(NewDisplacement(1, 1))
	if r.XMin() != 1 || r.YMax() != 2 || c.XMin() != 0 {
		t.Errorf("Expected moved rectangle and untouched clone")
	}
	if in, _ := r.IsPointIn(NewPosition(root, 2, 1.5)); !in {
		t.Errorf("Expected moved ring to follow the corners")
	}

	if err := r.Scale(-1, NewPosition(root, 0, 0)); err != nil {
		t.Fatalf("Failed: %v", err)
	}
	if r.XMin() != -3 || r.XMax() != -1 || r.YMin() != -2 || r.YMax() != -1 {
		t.Errorf("Expected (-3,-2)-(-1,-1), got (%v,%v)-(%v,%v)", r.XMin(), r.YMin(), r.XMax(), r.YMax())
	}

	fromCorners, err := NewRectangleFromCorners(NewPosition(root, 4, 4), NewPosition(root.Derive(Translation{DX: 1}), 0, 0))
	if err != nil {
		t.Fatalf("Failed: %v", err)
	}
	if fromCorners.Width() != 3 || fromCorners.Height() != 4 {
		t.Errorf("Expected 3 x 4, got %v x %v", fromCorners.Width(), fromCorners.Height())
	}
}

func TestPolygonOfSegments(t *testing.T) {
	root := NewCoordinateSystem()

	tri, err := NewPolygonOfSegmentsXY(root, [][2]float64{{0, 0}, {4, 0}, {0, 3}})
	if err != nil {
		t.Fatalf("Failed: %v", err)
	}
	if !scalar.EqualWithinAbs(tri.Area(), 6, 1e-12) || !scalar.EqualWithinAbs(tri.Perimeter(), 12, 1e-12) {
		t.Errorf("Expected area 6 and perimeter 12, got %v and %v", tri.Area(), tri.Perimeter())
	}
	if tri.Boundary().NumberOfLinears() != 3 {
		t.Errorf("Expected the ring to be closed with 3 leaves, got %d", tri.Boundary().NumberOfLinears())
	}

	_, err = NewPolygonOfSegmentsXY(root, [][2]float64{{0, 0}, {4, 0}})
	var nc *ErrNotClosed
	if !errors.As(err, &nc) {
		t.Errorf("Expected ErrNotClosed, got %v", err)
	}

	_, err = NewPolygonFromLinear(NewPolySegmentXY(root, [][2]float64{{0, 0}, {4, 0}, {0, 3}}))
	if !errors.As(err, &nc) {
		t.Errorf("Expected ErrNotClosed for an open chain, got %v", err)
	}

	moved := tri.Clone()
	moved.Move(NewDisplacement(10, 0))
	if in, _ := moved.IsPointIn(NewPosition(root, 11, 1)); !in {
		t.Errorf("Expected (11, 1) inside the moved triangle")
	}
	if in, _ := tri.IsPointIn(NewPosition(root, 11, 1)); in {
		t.Errorf("Expected the original triangle untouched")
	}
	if err := moved.Scale(2, NewPosition(root, 10, 0)); err != nil {
		t.Fatalf("Failed: %v", err)
	}
	if !scalar.EqualWithinAbs(moved.Area(), 24, 1e-9) {
		t.Errorf("Expected area 24, got %v", moved.Area())
	}
}

func TestComplexShape(t *testing.T) {
	root := NewCoordinateSystem()
	ring := NewComplexLinear(root)
	for _, part := range []*ComplexLinear{
		NewPolySegmentXY(root, [][2]float64{{0, 0}, {10, 0}, {10, 10}}),
		NewPolySegmentXY(root, [][2]float64{{10, 10}, {0, 10}, {0, 0}}),
	} {
		if err := ring.AppendLinear(part); err != nil {
			t.Fatalf("Failed: %v", err)
		}
	}

	s, err := NewComplexShape(ring)
	if err != nil {
		t.Fatalf("Failed: %v", err)
	}
	if !scalar.EqualWithinAbs(s.Area(), 100, 1e-12) {
		t.Errorf("Expected area 100, got %v", s.Area())
	}
	if in, _ := s.IsPointIn(NewPosition(root, 3, 7)); !in {
		t.Errorf("Expected (3, 7) inside")
	}

	_, err = NewComplexShape(NewSegmentXY(root, 0, 0, 1, 1))
	var nc *ErrNotClosed
	if !errors.As(err, &nc) {
		t.Errorf("Expected ErrNotClosed, got %v", err)
	}
}

func TestHoledShape(t *testing.T) {
	root := NewCoordinateSystem()
	h := NewHoledShape(NewRectangle(root, 0, 0, 10, 10))
	if err := h.AddHole(NewRectangle(root, 2, 2, 4, 4)); err != nil {
		t.Fatalf("Failed: %v", err)
	}

	if h.NumberOfHoles() != 1 || len(h.Holes()) != 1 {
		t.Errorf("Expected 1 hole, got %d", h.NumberOfHoles())
	}
	if !scalar.EqualWithinAbs(h.Area(), 96, 1e-12) {
		t.Errorf("Expected area 96, got %v", h.Area())
	}
	if !scalar.EqualWithinAbs(h.Perimeter(), 48, 1e-12) {
		t.Errorf("Expected perimeter 48, got %v", h.Perimeter())
	}

	tests := []struct {
		name     string
		x, y     float64
		expected SpatialPosition
	}{
		{"solid part", 5, 5, In},
		{"in hole", 3, 3, Out},
		{"hole edge", 2, 3, On},
		{"outer edge", 0, 3, On},
		{"outside", -1, 3, Out},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := h.SpatialPositionOf(NewPosition(root, tt.x, tt.y))
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	c := h.Clone()
	if err := c.AddHole(NewRectangle(root, 6, 6, 8, 8)); err != nil {
		t.Fatalf("Failed: %v", err)
	}
	if h.NumberOfHoles() != 1 || c.NumberOfHoles() != 2 {
		t.Errorf("Expected clone holes to be independent")
	}
}

func TestSpatialPositionOfLinear(t *testing.T) {
	root := NewCoordinateSystem()
	r := NewRectangle(root, 0, 0, 10, 10)
	h := NewHoledShape(r)
	if err := h.AddHole(NewRectangle(root, 2, 2, 4, 4)); err != nil {
		t.Fatalf("Failed: %v", err)
	}

	tests := []struct {
		name     string
		shape    Shape
		linear   Linear
		expected SpatialPosition
	}{
		{"inside", r, NewSegmentXY(root, 2, 2, 8, 8), In},
		{"outside", r, NewSegmentXY(root, 20, 20, 30, 30), Out},
		{"crossing", r, NewSegmentXY(root, 5, 5, 15, 5), PartiallyIn},
		{"along an edge", r, NewPolySegmentXY(root, [][2]float64{{0, 0}, {0, 10}, {10, 10}}), On},
		{"touching from outside", r, NewSegmentXY(root, 10, 5, 15, 5), Out},
		{"touching from inside", r, NewSegmentXY(root, 5, 5, 10, 5), In},
		{"crossing a hole", h, NewSegmentXY(root, 1, 3, 3, 3), PartiallyIn},
		{"inside a hole", h, NewSegmentXY(root, 2.5, 3, 3.5, 3), Out},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.shape.SpatialPositionOfLinear(tt.linear)
			if err != nil {
				t.Fatalf("Failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
