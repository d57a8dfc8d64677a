package planar

import (
	"fmt"

	"github.com/beetlebugorg/planar/internal/kernel"
	"github.com/ctessum/geom/proj"
)

// ModelKind identifies a TransformModel variant.
type ModelKind int

const (
	KindIdentity ModelKind = iota
	KindTranslation
	KindStretch
	KindSimilitude
	KindAffine
	KindProjective
)

// String returns the model kind name.
func (k ModelKind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindTranslation:
		return "Translation"
	case KindStretch:
		return "Stretch"
	case KindSimilitude:
		return "Similitude"
	case KindAffine:
		return "Affine"
	case KindProjective:
		return "Projective"
	default:
		return fmt.Sprintf("ModelKind(%d)", int(k))
	}
}

// TransformModel maps points between a coordinate system and its parent.
//
// MapToParent takes coordinates expressed in the child system and returns
// them in the parent system. MapFromParent is the inverse. Every model
// except Projective has a closed-form inverse.
//
// The set of models is closed: Identity, Translation, Stretch, Similitude,
// Affine and Projective.
type TransformModel interface {
	Kind() ModelKind
	MapToParent(x, y float64) (float64, float64, error)
	MapFromParent(x, y float64) (float64, float64, error)
	HasInverse() bool

	// matrix returns the homogeneous matrix of linear models.
	matrix() (kernel.Affine, bool)
}

// mapLinear applies the forward matrix of a linear model.
func mapLinear(m TransformModel, x, y float64) (float64, float64, error) {
	a, _ := m.matrix()
	p := a.Apply(kernel.Point{X: x, Y: y})
	return p.X, p.Y, nil
}

// unmapLinear applies the inverse matrix of a linear model.
func unmapLinear(m TransformModel, x, y float64) (float64, float64, error) {
	a, _ := m.matrix()
	inv, err := a.Inverse()
	if err != nil {
		return 0, 0, &ErrNonInvertibleTransform{Kind: m.Kind(), Reason: err.Error()}
	}
	p := inv.Apply(kernel.Point{X: x, Y: y})
	return p.X, p.Y, nil
}

func invertible(m TransformModel) bool {
	a, _ := m.matrix()
	return a.IsInvertible()
}

// Identity leaves coordinates unchanged.
type Identity struct{}

func (Identity) Kind() ModelKind                                      { return KindIdentity }
func (Identity) MapToParent(x, y float64) (float64, float64, error)   { return x, y, nil }
func (Identity) MapFromParent(x, y float64) (float64, float64, error) { return x, y, nil }
func (Identity) HasInverse() bool                                     { return true }
func (Identity) matrix() (kernel.Affine, bool)                        { return kernel.IdentityAffine(), true }

// Translation offsets coordinates by (DX, DY).
type Translation struct {
	DX, DY float64
}

func (t Translation) Kind() ModelKind { return KindTranslation }

func (t Translation) MapToParent(x, y float64) (float64, float64, error) {
	return x + t.DX, y + t.DY, nil
}

func (t Translation) MapFromParent(x, y float64) (float64, float64, error) {
	return x - t.DX, y - t.DY, nil
}

func (t Translation) HasInverse() bool { return true }

func (t Translation) matrix() (kernel.Affine, bool) {
	return kernel.TranslateAffine(t.DX, t.DY), true
}

// Stretch scales each axis independently, then translates.
type Stretch struct {
	DX, DY float64
	SX, SY float64
}

func (s Stretch) Kind() ModelKind { return KindStretch }

func (s Stretch) MapToParent(x, y float64) (float64, float64, error) {
	return mapLinear(s, x, y)
}

func (s Stretch) MapFromParent(x, y float64) (float64, float64, error) {
	return unmapLinear(s, x, y)
}

func (s Stretch) HasInverse() bool { return invertible(s) }

func (s Stretch) matrix() (kernel.Affine, bool) {
	return kernel.Compose(kernel.ScaleAffine(s.SX, s.SY), kernel.TranslateAffine(s.DX, s.DY)), true
}

// Similitude scales uniformly, rotates counterclockwise by Rotation
// radians, then translates.
type Similitude struct {
	DX, DY   float64
	Scale    float64
	Rotation float64
}

func (s Similitude) Kind() ModelKind { return KindSimilitude }

func (s Similitude) MapToParent(x, y float64) (float64, float64, error) {
	return mapLinear(s, x, y)
}

func (s Similitude) MapFromParent(x, y float64) (float64, float64, error) {
	return unmapLinear(s, x, y)
}

func (s Similitude) HasInverse() bool { return invertible(s) }

func (s Similitude) matrix() (kernel.Affine, bool) {
	return kernel.Compose(
		kernel.ScaleAffine(s.Scale, s.Scale),
		kernel.RotateAffine(s.Rotation),
		kernel.TranslateAffine(s.DX, s.DY),
	), true
}

// Affine is the general linear model. Points are scaled by (SX, SY),
// sheared along X by Skew, rotated by Rotation radians and translated by
// (DX, DY), in that order.
type Affine struct {
	DX, DY   float64
	Rotation float64
	SX, SY   float64
	Skew     float64
}

func (a Affine) Kind() ModelKind { return KindAffine }

func (a Affine) MapToParent(x, y float64) (float64, float64, error) {
	return mapLinear(a, x, y)
}

func (a Affine) MapFromParent(x, y float64) (float64, float64, error) {
	return unmapLinear(a, x, y)
}

func (a Affine) HasInverse() bool { return invertible(a) }

func (a Affine) matrix() (kernel.Affine, bool) {
	return kernel.Compose(
		kernel.ScaleAffine(a.SX, a.SY),
		kernel.ShearAffine(a.Skew),
		kernel.RotateAffine(a.Rotation),
		kernel.TranslateAffine(a.DX, a.DY),
	), true
}

// Projective is a non-linear model backed by a map projection. It maps
// forward only.
type Projective struct {
	forward proj.Transformer
}

// NewProjective wraps a forward projection.
func NewProjective(forward proj.Transformer) Projective {
	return Projective{forward: forward}
}

// NewProjectiveFromProj builds the forward projection between two
// proj4 definitions, the child frame using src and the parent dst.
//
// Example:
//
//	m, err := planar.NewProjectiveFromProj(
//	    "+proj=longlat +datum=WGS84 +no_defs",
//	    "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs",
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mercator := planar.NewCoordinateSystem().Derive(m)
func NewProjectiveFromProj(src, dst string) (Projective, error) {
	srcSR, err := proj.Parse(src)
	if err != nil {
		return Projective{}, fmt.Errorf("planar: parsing source projection: %w", err)
	}
	dstSR, err := proj.Parse(dst)
	if err != nil {
		return Projective{}, fmt.Errorf("planar: parsing destination projection: %w", err)
	}
	t, err := srcSR.NewTransform(dstSR)
	if err != nil {
		return Projective{}, fmt.Errorf("planar: building projection: %w", err)
	}
	return Projective{forward: t}, nil
}

func (p Projective) Kind() ModelKind { return KindProjective }

// MapToParent applies the projection. A Projective without one leaves
// coordinates unchanged.
func (p Projective) MapToParent(x, y float64) (float64, float64, error) {
	if p.forward == nil {
		return x, y, nil
	}
	return p.forward(x, y)
}

// MapFromParent always fails: projective models have no inverse here.
func (p Projective) MapFromParent(x, y float64) (float64, float64, error) {
	return 0, 0, &ErrNonInvertibleTransform{Kind: KindProjective, Reason: "projective models map forward only"}
}

func (p Projective) HasInverse() bool { return false }

func (p Projective) matrix() (kernel.Affine, bool) { return kernel.Affine{}, false }
