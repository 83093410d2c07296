package contour

import (
	"fmt"
	"math"
)

// Point is a location in design space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// TransformAbout applies aff with anchor treated as the origin.
func (pt Point) TransformAbout(aff Affine, anchor Point) Point {
	a := Vec2(anchor)
	return Point(Vec2(pt).Sub(a)).Transform(aff).Translate(a)
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// AxisLockedTo returns pt constrained to the horizontal or vertical line through
// o, whichever is closer. This is what holding shift while dragging a handle
// does: the handle keeps its position along the dominant axis and snaps onto o's
// coordinate on the other.
func (pt Point) AxisLockedTo(o Point) Point {
	d := o.Sub(pt)
	if math.Abs(d.X) > math.Abs(d.Y) {
		return Point{X: pt.X, Y: o.Y}
	}
	return Point{X: o.X, Y: pt.Y}
}
