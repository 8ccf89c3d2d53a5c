// Package bezier evaluates quadratic and cubic Bezier curves as polylines
// using de Casteljau's algorithm: repeated linear interpolation between
// control points, one layer per curve degree.
package bezier

import "fmt"

// Flatten approximates the Bezier curve defined by ctrl with a polyline of
// steps straight segments. The returned slice holds steps+1 points; the
// first is ctrl[0] verbatim and the rest are the curve evaluated at
// t = i/steps for i in 1..steps. The degree of the curve is len(ctrl)-1.
//
// ctrl is never mutated and each call allocates a fresh result.
func Flatten(ctrl []Point, steps int) ([]Point, error) {
	if steps < 1 {
		return nil, fmt.Errorf("bezier: steps must be at least 1, got %d", steps)
	}
	if len(ctrl) < 2 {
		return nil, fmt.Errorf("bezier: need at least 2 control points, got %d", len(ctrl))
	}

	out := make([]Point, 0, steps+1)
	out = append(out, ctrl[0])

	// Scratch buffer for the interpolation layers. Each layer collapses
	// adjacent pairs until a single point remains.
	work := make([]Point, len(ctrl))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		copy(work, ctrl)
		for n := len(ctrl) - 1; n > 0; n-- {
			for j := 0; j < n; j++ {
				work[j] = Lerp(t, work[j], work[j+1])
			}
		}
		out = append(out, work[0])
	}
	return out, nil
}

// Quadratic approximates the degree-2 Bezier curve with control points
// p0, p1 and p2. One layer of interpolation between adjacent control
// points, then one more between the results.
func Quadratic(p0, p1, p2 Point, steps int) ([]Point, error) {
	return Flatten([]Point{p0, p1, p2}, steps)
}

// Cubic approximates the degree-3 Bezier curve with control points p0
// through p3. Same construction as Quadratic with one extra interpolation
// layer for the extra control point.
func Cubic(p0, p1, p2, p3 Point, steps int) ([]Point, error) {
	return Flatten([]Point{p0, p1, p2, p3}, steps)
}
