package bezier

import "fmt"

// Point is a position in an arbitrary real coordinate space. The demo
// feeds normalized coordinates where 0,0 is the upper-left of the window
// and 1,1 is the lower-right, but nothing here assumes or clamps to that
// range.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Midpoint returns the point halfway between p and o.
func (p Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (p.X + o.X), Y: 0.5 * (p.Y + o.Y)}
}

// Lerp linearly interpolates between a and b. At t=0 the result is a, at
// t=1 it is b, and values in between move smoothly along the segment.
// t is not clamped; values outside [0,1] extrapolate past the endpoints.
func Lerp(t float64, a, b Point) Point {
	return Point{
		X: (1-t)*a.X + t*b.X,
		Y: (1-t)*a.Y + t*b.Y,
	}
}
