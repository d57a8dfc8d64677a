package kernel

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Affine is a 2D affine map held as a 3x3 homogeneous matrix:
//
//	| a b c |
//	| d e f |
//	| 0 0 1 |
type Affine struct {
	m *mat.Dense
}

// ErrSingular is returned when inverting a map whose linear part has a
// zero or non-finite determinant.
var ErrSingular = errors.New("kernel: affine map is singular")

// NewAffine builds x' = a·x + b·y + c, y' = d·x + e·y + f.
func NewAffine(a, b, c, d, e, f float64) Affine {
	return Affine{m: mat.NewDense(3, 3, []float64{a, b, c, d, e, f, 0, 0, 1})}
}

func IdentityAffine() Affine { return NewAffine(1, 0, 0, 0, 1, 0) }

func TranslateAffine(dx, dy float64) Affine { return NewAffine(1, 0, dx, 0, 1, dy) }

func ScaleAffine(sx, sy float64) Affine { return NewAffine(sx, 0, 0, 0, sy, 0) }

func RotateAffine(angle float64) Affine {
	s, c := math.Sincos(angle)
	return NewAffine(c, -s, 0, s, c, 0)
}

// ShearAffine shears along X by k: x' = x + k·y.
func ShearAffine(k float64) Affine { return NewAffine(1, k, 0, 0, 1, 0) }

func (a Affine) dense() *mat.Dense {
	if a.m == nil {
		return IdentityAffine().m
	}
	return a.m
}

// Then returns the map that applies a first and next second.
func (a Affine) Then(next Affine) Affine {
	var r mat.Dense
	r.Mul(next.dense(), a.dense())
	return Affine{m: &r}
}

// Compose chains maps in application order.
func Compose(maps ...Affine) Affine {
	r := IdentityAffine()
	for _, m := range maps {
		r = r.Then(m)
	}
	return r
}

// Apply maps p.
func (a Affine) Apply(p Point) Point {
	m := a.dense()
	return Point{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2),
	}
}

// Det returns the determinant of the linear part.
func (a Affine) Det() float64 {
	m := a.dense()
	return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
}

// IsInvertible reports whether the map has an inverse.
func (a Affine) IsInvertible() bool {
	d := a.Det()
	return d != 0 && !math.IsNaN(d) && !math.IsInf(d, 0)
}

// Inverse returns the inverse map, solved in closed form from the
// determinant so that large offsets do not affect the result.
func (a Affine) Inverse() (Affine, error) {
	if !a.IsInvertible() {
		return Affine{}, ErrSingular
	}
	k := a.Coefficients()
	idet := 1 / a.Det()
	ia, ib := k[4]*idet, -k[1]*idet
	id, ie := -k[3]*idet, k[0]*idet
	inv := [6]float64{ia, ib, -(ia*k[2] + ib*k[5]), id, ie, -(id*k[2] + ie*k[5])}
	for _, v := range inv {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Affine{}, ErrSingular
		}
	}
	return NewAffine(inv[0], inv[1], inv[2], inv[3], inv[4], inv[5]), nil
}

// Coefficients returns a, b, c, d, e, f as laid out in NewAffine.
func (a Affine) Coefficients() [6]float64 {
	m := a.dense()
	return [6]float64{m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(1, 0), m.At(1, 1), m.At(1, 2)}
}
