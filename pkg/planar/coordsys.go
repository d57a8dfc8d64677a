package planar

import (
	"github.com/beetlebugorg/planar/internal/kernel"
	"github.com/sirupsen/logrus"
)

// CoordinateSystem is a node in a tree of frames. Each non-root node holds
// the model mapping its coordinates into its parent's.
//
// Systems are immutable once built and may be shared freely between
// positions, curves and goroutines. A system stays alive as long as
// anything refers to it.
//
// Example:
//
//	world := planar.NewCoordinateSystem()
//	sheet := world.Derive(planar.Similitude{DX: 100, DY: 50, Scale: 0.5})
//
//	p := planar.NewPosition(sheet, 10, 10)
//	w, err := p.In(world)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(w.X(), w.Y()) // 105 55
type CoordinateSystem struct {
	parent *CoordinateSystem
	model  TransformModel
	depth  int
}

// NewCoordinateSystem creates the root of a new tree.
func NewCoordinateSystem() *CoordinateSystem {
	return &CoordinateSystem{model: Identity{}}
}

// Derive creates a child system whose coordinates map into c through model.
// A nil model is taken as Identity.
func (c *CoordinateSystem) Derive(model TransformModel) *CoordinateSystem {
	if model == nil {
		model = Identity{}
	}
	return &CoordinateSystem{parent: c, model: model, depth: c.depth + 1}
}

// Parent returns the parent system, or nil for a root.
func (c *CoordinateSystem) Parent() *CoordinateSystem { return c.parent }

// Model returns the model mapping c into its parent. A root answers Identity.
func (c *CoordinateSystem) Model() TransformModel { return c.model }

// IsRoot reports whether c has no parent.
func (c *CoordinateSystem) IsRoot() bool { return c.parent == nil }

// Root returns the root of the tree holding c.
func (c *CoordinateSystem) Root() *CoordinateSystem {
	n := c
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Origin returns the position (0, 0) of c.
func (c *CoordinateSystem) Origin() Position {
	return Position{sys: c}
}

// TransformTo returns the conversion from coordinates of c into
// coordinates of target.
//
// The path climbs from c to the lowest common ancestor with forward
// models, then descends to target with inverse ones. When their models
// are all linear the path collapses into a single matrix. The conversion
// is refused when the descent crosses a model without an inverse.
func (c *CoordinateSystem) TransformTo(target *CoordinateSystem) (*Transformation, error) {
	if c == target {
		return &Transformation{linear: true, affine: kernel.IdentityAffine()}, nil
	}
	if c == nil || target == nil {
		return nil, &ErrUnrelatedCoordSys{}
	}

	up, down := c, target
	var ups, downs []*CoordinateSystem
	for up.depth > down.depth {
		ups = append(ups, up)
		up = up.parent
	}
	for down.depth > up.depth {
		downs = append(downs, down)
		down = down.parent
	}
	for up != down {
		if up.parent == nil || down.parent == nil {
			logger.WithFields(logrus.Fields{
				"sourceDepth": c.depth,
				"targetDepth": target.depth,
			}).Debug("planar: coordinate systems have different roots")
			return nil, &ErrUnrelatedCoordSys{}
		}
		ups = append(ups, up)
		downs = append(downs, down)
		up, down = up.parent, down.parent
	}

	t := &Transformation{linear: true, affine: kernel.IdentityAffine()}
	for _, n := range ups {
		t.steps = append(t.steps, step{model: n.model})
	}
	for i := len(downs) - 1; i >= 0; i-- {
		m := downs[i].model
		if !m.HasInverse() {
			logger.WithFields(logrus.Fields{
				"model": m.Kind().String(),
				"depth": downs[i].depth,
			}).Debug("planar: refusing conversion through a non-invertible model")
			return nil, &ErrNonInvertibleTransform{Kind: m.Kind(), Reason: "conversion path requires its inverse"}
		}
		t.steps = append(t.steps, step{model: m, inverse: true})
	}

	for _, s := range t.steps {
		a, ok := s.model.matrix()
		if !ok {
			t.linear = false
			break
		}
		if s.inverse {
			inv, err := a.Inverse()
			if err != nil {
				return nil, &ErrNonInvertibleTransform{Kind: s.model.Kind(), Reason: err.Error()}
			}
			a = inv
		}
		t.affine = t.affine.Then(a)
	}
	return t, nil
}

type step struct {
	model   TransformModel
	inverse bool
}

// Transformation converts coordinates from one system to another. It is
// obtained from CoordinateSystem.TransformTo.
type Transformation struct {
	steps  []step
	linear bool
	affine kernel.Affine
}

// IsLinear reports whether the conversion is a single affine map.
func (t *Transformation) IsLinear() bool { return t.linear }

// IsIdentity reports whether source and target are the same system.
func (t *Transformation) IsIdentity() bool { return len(t.steps) == 0 }

// Apply converts one coordinate pair.
func (t *Transformation) Apply(x, y float64) (float64, float64, error) {
	if t.linear {
		p := t.affine.Apply(kernel.Point{X: x, Y: y})
		return p.X, p.Y, nil
	}
	var err error
	for _, s := range t.steps {
		if s.inverse {
			x, y, err = s.model.MapFromParent(x, y)
		} else {
			x, y, err = s.model.MapToParent(x, y)
		}
		if err != nil {
			return 0, 0, err
		}
	}
	return x, y, nil
}

func (t *Transformation) point(p kernel.Point) (kernel.Point, error) {
	x, y, err := t.Apply(p.X, p.Y)
	return kernel.Point{X: x, Y: y}, err
}

// ChangeCoordSys re-expresses p in target.
func ChangeCoordSys(p Position, target *CoordinateSystem) (Position, error) {
	return p.In(target)
}
