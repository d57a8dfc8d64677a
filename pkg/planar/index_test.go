package planar

import (
	"reflect"
	"testing"

	"github.com/dhconnelly/rtreego"
)

func TestBoundsInTree(t *testing.T) {
	root := NewCoordinateSystem()

	tree := rtreego.NewTree(2, 25, 50)
	tree.Insert(NewRectangle(root, 0, 0, 10, 10))
	tree.Insert(NewPolySegmentXY(root, [][2]float64{{20, 20}, {30, 30}}))
	tree.Insert(NewSegmentXY(root, 100, 100, 101, 100))

	tests := []struct {
		name     string
		query    Extent
		expected int
	}{
		{"rectangle only", NewExtentFromCorners(root, 2, 2, 4, 4), 1},
		{"flat segment", NewExtentFromCorners(root, 100.5, 99, 100.6, 101), 1},
		{"everything", NewExtentFromCorners(root, -1, -1, 200, 200), 3},
		{"nothing", NewExtentFromCorners(root, 40, 40, 50, 50), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := tt.query.Rect()
			if err != nil {
				t.Fatalf("Failed: %v", err)
			}
			if got := len(tree.SearchIntersect(q)); got != tt.expected {
				t.Errorf("Expected %d hits, got %d", tt.expected, got)
			}
		})
	}
}

func TestBoundsOfEmptyGeometry(t *testing.T) {
	root := NewCoordinateSystem()
	if b := NewComplexLinear(root).Bounds(); !reflect.DeepEqual(b, rtreego.Rect{}) {
		t.Errorf("Expected the zero rectangle, got %v", b)
	}
}
