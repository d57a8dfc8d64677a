package planar

import (
	"math"

	"github.com/beetlebugorg/planar/internal/kernel"
)

// Position is a point expressed in a coordinate system.
type Position struct {
	x, y float64
	sys  *CoordinateSystem
}

// NewPosition creates the point (x, y) of sys.
func NewPosition(sys *CoordinateSystem, x, y float64) Position {
	return Position{x: x, y: y, sys: sys}
}

func (p Position) X() float64                  { return p.x }
func (p Position) Y() float64                  { return p.y }
func (p Position) CoordSys() *CoordinateSystem { return p.sys }

// In returns p expressed in sys.
func (p Position) In(sys *CoordinateSystem) (Position, error) {
	if p.sys == sys {
		return p, nil
	}
	t, err := p.sys.TransformTo(sys)
	if err != nil {
		return Position{}, err
	}
	x, y, err := t.Apply(p.x, p.y)
	if err != nil {
		return Position{}, err
	}
	return Position{x: x, y: y, sys: sys}, nil
}

// Add returns p moved by d.
func (p Position) Add(d Displacement) Position {
	return Position{x: p.x + d.dx, y: p.y + d.dy, sys: p.sys}
}

// Sub returns the displacement from q to p, measured in the system of p.
func (p Position) Sub(q Position) (Displacement, error) {
	q, err := q.In(p.sys)
	if err != nil {
		return Displacement{}, err
	}
	return Displacement{dx: p.x - q.x, dy: p.y - q.y}, nil
}

// DistanceTo returns the distance from p to q in the system of p.
func (p Position) DistanceTo(q Position) (float64, error) {
	d, err := p.Sub(q)
	if err != nil {
		return 0, err
	}
	return d.Length(), nil
}

// Equal reports whether p and q are the same point within GlobalEpsilon.
// Positions that cannot be converted into each other's system are not equal.
func (p Position) Equal(q Position) bool {
	q, err := q.In(p.sys)
	if err != nil {
		return false
	}
	return p.point().Equal(q.point())
}

func (p Position) point() kernel.Point { return kernel.Point{X: p.x, Y: p.y} }

func positionOf(sys *CoordinateSystem, p kernel.Point) Position {
	return Position{x: p.X, y: p.Y, sys: sys}
}

// pointIn converts p into sys and returns its raw coordinates.
func pointIn(p Position, sys *CoordinateSystem) (kernel.Point, error) {
	q, err := p.In(sys)
	if err != nil {
		return kernel.Point{}, err
	}
	return q.point(), nil
}

// Displacement is a vector between two positions.
type Displacement struct {
	dx, dy float64
}

// NewDisplacement creates the vector (dx, dy).
func NewDisplacement(dx, dy float64) Displacement {
	return Displacement{dx: dx, dy: dy}
}

// NewDisplacementFromBearing creates the vector of the given length
// pointing along b.
func NewDisplacementFromBearing(b Bearing, distance float64) Displacement {
	s, c := math.Sincos(b.rad)
	return Displacement{dx: distance * c, dy: distance * s}
}

func (d Displacement) DX() float64 { return d.dx }
func (d Displacement) DY() float64 { return d.dy }

func (d Displacement) Length() float64 { return math.Hypot(d.dx, d.dy) }

// Bearing returns the direction of d. A null displacement points along +X.
func (d Displacement) Bearing() Bearing {
	return NewBearing(math.Atan2(d.dy, d.dx))
}

func (d Displacement) Add(o Displacement) Displacement {
	return Displacement{dx: d.dx + o.dx, dy: d.dy + o.dy}
}

func (d Displacement) Scale(f float64) Displacement {
	return Displacement{dx: d.dx * f, dy: d.dy * f}
}

// Reverse returns the opposite vector.
func (d Displacement) Reverse() Displacement {
	return Displacement{dx: -d.dx, dy: -d.dy}
}

// Bearing is a direction measured counterclockwise from +X, kept in [0, 2π).
type Bearing struct {
	rad float64
}

// NewBearing creates a bearing from an angle in radians.
func NewBearing(radians float64) Bearing {
	return Bearing{rad: kernel.NormalizeAngle(radians)}
}

// NewBearingDegrees creates a bearing from an angle in degrees.
func NewBearingDegrees(degrees float64) Bearing {
	return NewBearing(degrees * math.Pi / 180)
}

func (b Bearing) Radians() float64 { return b.rad }
func (b Bearing) Degrees() float64 { return b.rad * 180 / math.Pi }

// Reverse returns the opposite direction.
func (b Bearing) Reverse() Bearing { return NewBearing(b.rad + math.Pi) }

// Equal reports whether two bearings match within GlobalEpsilon radians,
// treating 0 and 2π as the same direction.
func (b Bearing) Equal(o Bearing) bool {
	d := math.Abs(b.rad - o.rad)
	return d <= kernel.Epsilon || 2*math.Pi-d <= kernel.Epsilon
}

// Direction selects which side of a point a tangent query looks at.
type Direction = kernel.Direction

const (
	// Alpha is the reverse tangent of the incoming segment.
	Alpha = kernel.Alpha
	// Beta is the forward tangent of the outgoing segment.
	Beta = kernel.Beta
)
