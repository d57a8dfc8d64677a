package planar

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// samePos fails unless p is (x, y) within 1e-9.
func samePos(t *testing.T, p Position, x, y float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(p.X(), x, 1e-9) || !scalar.EqualWithinAbs(p.Y(), y, 1e-9) {
		t.Errorf("Expected (%v, %v), got (%v, %v)", x, y, p.X(), p.Y())
	}
}

func TestModelKindString(t *testing.T) {
	tests := []struct {
		model    TransformModel
		expected string
	}{
		{Identity{}, "Identity"},
		{Translation{}, "Translation"},
		{Stretch{}, "Stretch"},
		{Similitude{}, "Similitude"},
		{Affine{}, "Affine"},
		{Projective{}, "Projective"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if tt.model.Kind().String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.model.Kind().String())
			}
		})
	}
}

func TestModelMapToParent(t *testing.T) {
	tests := []struct {
		name   string
		model  TransformModel
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity{}, 3, 4, 3, 4},
		{"translation", Translation{DX: 3, DY: -5}, 1, 4, 4, -1},
		{"stretch", Stretch{DX: 1, DY: 2, SX: 2, SY: 0.5}, 2, 4, 5, 4},
		{"similitude", Similitude{Scale: 2, Rotation: math.Pi / 2}, 1, 0, 0, 2},
		{"affine skew", Affine{SX: 1, SY: 1, Skew: 1}, 0, 1, 1, 1},
		{"affine full", Affine{DX: 1, DY: 1, Rotation: math.Pi, SX: 2, SY: 3}, 1, 1, -1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, err := tt.model.MapToParent(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Failed to map: %v", err)
			}
			if !scalar.EqualWithinAbs(x, tt.wx, 1e-12) || !scalar.EqualWithinAbs(y, tt.wy, 1e-12) {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wx, tt.wy, x, y)
			}
		})
	}
}

func TestModelRoundTrip(t *testing.T) {
	models := []TransformModel{
		Identity{},
		Translation{DX: 3, DY: -2},
		Stretch{DX: 1, DY: 2, SX: 2, SY: 0.5},
		Similitude{DX: 5, DY: 5, Scale: 2, Rotation: math.Pi / 6},
		Affine{DX: 1, DY: 2, Rotation: math.Pi / 3, SX: 2, SY: 3, Skew: 0.5},
	}
	for _, m := range models {
		t.Run(m.Kind().String(), func(t *testing.T) {
			if !m.HasInverse() {
				t.Fatalf("Expected %v to be invertible", m.Kind())
			}
			x, y, err := m.MapToParent(3, 4)
			if err != nil {
				t.Fatalf("Failed to map: %v", err)
			}
			bx, by, err := m.MapFromParent(x, y)
			if err != nil {
				t.Fatalf("Failed to map back: %v", err)
			}
			if !scalar.EqualWithinAbs(bx, 3, 1e-9) || !scalar.EqualWithinAbs(by, 4, 1e-9) {
				t.Errorf("Expected (3, 4) back, got (%v, %v)", bx, by)
			}
		})
	}
}

func TestNonInvertibleModels(t *testing.T) {
	p := NewProjective(func(x, y float64) (float64, float64, error) { return 2 * x, y, nil })

	x, y, err := p.MapToParent(1, 1)
	if err != nil || x != 2 || y != 1 {
		t.Errorf("Expected (2, 1), got (%v, %v) err=%v", x, y, err)
	}

	_, _, err = p.MapFromParent(1, 1)
	var nie *ErrNonInvertibleTransform
	if !errors.As(err, &nie) {
		t.Fatalf("Expected ErrNonInvertibleTransform, got %v", err)
	}
	if nie.Kind != KindProjective {
		t.Errorf("Expected Projective kind, got %v", nie.Kind)
	}

	flat := Stretch{SX: 0, SY: 1}
	if flat.HasInverse() {
		t.Errorf("Expected zero scale stretch to be non-invertible")
	}
	if _, _, err := flat.MapFromParent(1, 1); !errors.As(err, &nie) {
		t.Errorf("Expected ErrNonInvertibleTransform, got %v", err)
	}
}

func TestLargeOffsetInverses(t *testing.T) {
	tests := []struct {
		name  string
		model TransformModel
	}{
		{"translation", Translation{DX: 1e8, DY: 1e8}},
		{"stretch", Stretch{DX: 1e8, DY: 1e8, SX: 1, SY: 1}},
		{"similitude", Similitude{DX: -3e9, DY: 1e8, Scale: 2}},
		{"affine", Affine{DX: 1e10, DY: -1e10, SX: 4, SY: 0.5}},
	}

	root := NewCoordinateSystem()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.model.HasInverse() {
				t.Fatalf("Expected %v to be invertible", tt.model.Kind())
			}
			px, py, err := tt.model.MapToParent(1, 2)
			if err != nil {
				t.Fatalf("Failed to map: %v", err)
			}
			x, y, err := tt.model.MapFromParent(px, py)
			if err != nil {
				t.Fatalf("Expected inverse, got %v", err)
			}
			if !scalar.EqualWithinAbs(x, 1, 1e-6) || !scalar.EqualWithinAbs(y, 2, 1e-6) {
				t.Errorf("Expected (1, 2), got (%v, %v)", x, y)
			}

			p, err := NewPosition(root, px, py).In(root.Derive(tt.model))
			if err != nil {
				t.Fatalf("Expected conversion, got %v", err)
			}
			if !scalar.EqualWithinAbs(p.X(), 1, 1e-6) || !scalar.EqualWithinAbs(p.Y(), 2, 1e-6) {
				t.Errorf("Expected (1, 2), got (%v, %v)", p.X(), p.Y())
			}
		})
	}
}

func TestTransformTo(t *testing.T) {
	root := NewCoordinateSystem()
	a := root.Derive(Translation{DX: 10})
	b := root.Derive(Similitude{Scale: 2})
	c := a.Derive(Stretch{DY: 5, SX: 1, SY: 1})

	tr, err := c.TransformTo(b)
	if err != nil {
		t.Fatalf("Failed to build transformation: %v", err)
	}
	if !tr.IsLinear() {
		t.Errorf("Expected a linear transformation")
	}
	x, y, err := tr.Apply(1, 1)
	if err != nil {
		t.Fatalf("Failed to apply: %v", err)
	}
	if !scalar.EqualWithinAbs(x, 5.5, 1e-12) || !scalar.EqualWithinAbs(y, 3, 1e-12) {
		t.Errorf("Expected (5.5, 3), got (%v, %v)", x, y)
	}

	back, err := b.TransformTo(c)
	if err != nil {
		t.Fatalf("Failed to build reverse transformation: %v", err)
	}
	x, y, _ = back.Apply(x, y)
	if !scalar.EqualWithinAbs(x, 1, 1e-12) || !scalar.EqualWithinAbs(y, 1, 1e-12) {
		t.Errorf("Expected (1, 1) back, got (%v, %v)", x, y)
	}

	same, err := c.TransformTo(c)
	if err != nil || !same.IsIdentity() {
		t.Errorf("Expected identity for the same system")
	}

	if c.Root() != root || !root.IsRoot() || c.Parent() != a {
		t.Errorf("Unexpected tree structure")
	}
}

func TestTransformToErrors(t *testing.T) {
	root := NewCoordinateSystem()
	other := NewCoordinateSystem().Derive(Translation{DX: 1})

	_, err := root.TransformTo(other)
	var unrelated *ErrUnrelatedCoordSys
	if !errors.As(err, &unrelated) {
		t.Errorf("Expected ErrUnrelatedCoordSys, got %v", err)
	}

	geo := root.Derive(NewProjective(func(x, y float64) (float64, float64, error) { return 2 * x, y, nil }))

	up, err := geo.TransformTo(root)
	if err != nil {
		t.Fatalf("Expected forward projective conversion, got %v", err)
	}
	if up.IsLinear() {
		t.Errorf("Expected a non-linear transformation")
	}
	x, y, err := up.Apply(3, 1)
	if err != nil || x != 6 || y != 1 {
		t.Errorf("Expected (6, 1), got (%v, %v) err=%v", x, y, err)
	}

	_, err = root.TransformTo(geo)
	var nie *ErrNonInvertibleTransform
	if !errors.As(err, &nie) {
		t.Errorf("Expected ErrNonInvertibleTransform, got %v", err)
	}

	p := NewPosition(root, 1, 1)
	if _, err := ChangeCoordSys(p, geo); !errors.As(err, &nie) {
		t.Errorf("Expected ChangeCoordSys to refuse, got %v", err)
	}
}

func TestProjectiveFromProj(t *testing.T) {
	m, err := NewProjectiveFromProj(
		"+proj=longlat +datum=WGS84 +no_defs",
		"+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs",
	)
	if err != nil {
		t.Fatalf("Failed to build projection: %v", err)
	}
	world := NewCoordinateSystem()
	geo := world.Derive(m)

	p, err := NewPosition(geo, 180, 0).In(world)
	if err != nil {
		t.Fatalf("Failed to project: %v", err)
	}
	if !scalar.EqualWithinAbs(p.X(), math.Pi*6378137, 1e-3) || !scalar.EqualWithinAbs(p.Y(), 0, 1e-3) {
		t.Errorf("Expected (%v, 0), got (%v, %v)", math.Pi*6378137, p.X(), p.Y())
	}

	if _, err := NewProjectiveFromProj("not a projection", "+proj=longlat"); err == nil {
		t.Errorf("Expected error for an unparsable definition")
	}
}
