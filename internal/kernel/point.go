package kernel

import "math"

// Point is a location or a vector in a single frame.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Dot returns the scalar product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of p × q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Angle returns the direction of p taken as a vector, in [0, 2π).
func (p Point) Angle() float64 { return NormalizeAngle(math.Atan2(p.Y, p.X)) }

// Equal reports whether p and q are the same point within tolerance.
func (p Point) Equal(q Point) bool {
	return near(p.Dist(q), p.magnitude(q))
}

func (p Point) magnitude(q Point) float64 {
	return math.Max(math.Max(math.Abs(p.X), math.Abs(p.Y)), math.Max(math.Abs(q.X), math.Abs(q.Y)))
}

// Rotate turns p by angle radians around origin.
func (p Point) Rotate(angle float64, origin Point) Point {
	s, c := math.Sincos(angle)
	d := p.Sub(origin)
	return Point{origin.X + d.X*c - d.Y*s, origin.Y + d.X*s + d.Y*c}
}

// ScaleAround scales p by factor from origin.
func (p Point) ScaleAround(factor float64, origin Point) Point {
	return origin.Add(p.Sub(origin).Scale(factor))
}
