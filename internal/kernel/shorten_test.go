package kernel

import "testing"

func TestSub(t *testing.T) {
	c := poly(0, 0, 10, 0, 10, 10)

	tests := []struct {
		name   string
		t0, t1 float64
		want   []Point
	}{
		{"middle", 0.25, 0.75, []Point{{5, 0}, {10, 0}, {10, 5}}},
		{"full range", 0, 1, []Point{{0, 0}, {10, 0}, {10, 10}}},
		{"head", 0, 0.5, []Point{{0, 0}, {10, 0}}},
		{"tail", 0.5, 1, []Point{{10, 0}, {10, 10}}},
		{"inside one segment", 0.1, 0.2, []Point{{2, 0}, {4, 0}}},
		{"empty range", 0.5, 0.5, []Point{{10, 0}, {10, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Sub(tt.t0, tt.t1)
			var pts []Point
			for i, s := range got {
				if i == 0 {
					pts = append(pts, s.Start)
				}
				pts = append(pts, s.End)
			}
			if len(pts) != len(tt.want) {
				t.Fatalf("Expected %d points, got %d (%v)", len(tt.want), len(pts), pts)
			}
			for i := range tt.want {
				samePoint(t, pts[i], tt.want[i])
			}
		})
	}

	if got := c.Sub(0, 1); got.End() != c.End() || got.Start() != c.Start() {
		t.Errorf("Expected exact extremities for the full range")
	}
}

func TestSplitAt(t *testing.T) {
	c := poly(0, 0, 10, 0)
	pts := []Point{{5, 0}, {5, 0}, {5 + 0.5*Epsilon, 0}, {20, 0}, {0, 0}}

	split, n := c.SplitAt(pts)
	if n != 1 || len(split) != 2 {
		t.Fatalf("Expected 1 insertion and 2 segments, got %d and %d", n, len(split))
	}
	samePoint(t, split[0].End, Point{5, 0})

	again, n := split.SplitAt(pts)
	if n != 0 || len(again) != 2 {
		t.Errorf("Expected a second split to insert nothing, got %d", n)
	}
}

func TestRemoveVertex(t *testing.T) {
	c := poly(0, 0, 5, 0, 10, 0, 10, 10)

	got := c.RemoveVertex(1)
	if len(got) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(got))
	}
	samePoint(t, got[0].End, Point{10, 0})

	if got := c.RemoveVertex(0); len(got) != 2 || got.Start() != (Point{5, 0}) {
		t.Errorf("Expected the first segment dropped, got %v", got)
	}
	if got := c.RemoveVertex(3); len(got) != 2 || got.End() != (Point{10, 0}) {
		t.Errorf("Expected the last segment dropped, got %v", got)
	}
}
