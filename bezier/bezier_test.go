package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuadraticKnownMidpoint(t *testing.T) {
	pts, err := Quadratic(Pt(0, 0), Pt(1, 0), Pt(1, 1), 2)
	if err != nil {
		t.Fatalf("Quadratic: %v", err)
	}
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	if pts[0] != Pt(0, 0) {
		t.Fatalf("first point %v, want p0 exactly", pts[0])
	}
	if pts[1] != Pt(0.75, 0.25) {
		t.Fatalf("midpoint %v, want (0.75, 0.25)", pts[1])
	}
	if pts[2] != Pt(1, 1) {
		t.Fatalf("endpoint %v, want p2", pts[2])
	}
}

func TestCubicSingleStepHitsEndpoint(t *testing.T) {
	p3 := Pt(1, 0)
	pts, err := Cubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), p3, 1)
	if err != nil {
		t.Fatalf("Cubic: %v", err)
	}
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
	if pts[0] != Pt(0, 0) {
		t.Fatalf("first point %v, want p0 exactly", pts[0])
	}
	// t=1 must reproduce the final control point bit-exactly for any
	// degree: every interpolation layer collapses to its right operand.
	if pts[1] != p3 {
		t.Fatalf("endpoint %v, want p3 %v exactly", pts[1], p3)
	}
}

func TestOutputLength(t *testing.T) {
	for _, steps := range []int{1, 2, 7, 20, 100} {
		q, err := Quadratic(Pt(0.2, 0.2), Pt(0.5, 0.9), Pt(0.9, 0.1), steps)
		if err != nil {
			t.Fatalf("Quadratic(steps=%d): %v", steps, err)
		}
		if len(q) != steps+1 {
			t.Fatalf("Quadratic(steps=%d): %d points, want %d", steps, len(q), steps+1)
		}
		c, err := Cubic(Pt(0.1, 0.9), Pt(0.3, 0.2), Pt(0.5, 1.6), Pt(0.8, 0.4), steps)
		if err != nil {
			t.Fatalf("Cubic(steps=%d): %v", steps, err)
		}
		if len(c) != steps+1 {
			t.Fatalf("Cubic(steps=%d): %d points, want %d", steps, len(c), steps+1)
		}
	}
}

func TestDeterminism(t *testing.T) {
	first, err := Cubic(Pt(0.1, 0.9), Pt(0.3, 0.2), Pt(0.5, 1.6), Pt(0.8, 0.4), 20)
	if err != nil {
		t.Fatalf("Cubic: %v", err)
	}
	second, _ := Cubic(Pt(0.1, 0.9), Pt(0.3, 0.2), Pt(0.5, 1.6), Pt(0.8, 0.4), 20)
	if d := cmp.Diff(first, second); d != "" {
		t.Fatalf("repeated evaluation differs (-first +second):\n%s", d)
	}
}

func TestDegenerateControlPoints(t *testing.T) {
	p := Pt(0.4, 0.4)
	pts, err := Quadratic(p, p, p, 5)
	if err != nil {
		t.Fatalf("Quadratic: %v", err)
	}
	for i, got := range pts {
		if got != p {
			t.Fatalf("point %d = %v, want %v", i, got, p)
		}
	}
}

func TestFlattenMatchesFixedArity(t *testing.T) {
	ctrl := []Point{Pt(0.2, 0.2), Pt(0.5, 0.9), Pt(0.9, 0.1)}
	general, err := Flatten(ctrl, 20)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	quad, err := Quadratic(ctrl[0], ctrl[1], ctrl[2], 20)
	if err != nil {
		t.Fatalf("Quadratic: %v", err)
	}
	if d := cmp.Diff(general, quad); d != "" {
		t.Fatalf("Flatten and Quadratic disagree (-general +quad):\n%s", d)
	}
}

func TestFlattenLeavesControlPointsAlone(t *testing.T) {
	ctrl := []Point{Pt(0.1, 0.9), Pt(0.3, 0.2), Pt(0.5, 1.6), Pt(0.8, 0.4)}
	orig := append([]Point(nil), ctrl...)
	if _, err := Flatten(ctrl, 10); err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if d := cmp.Diff(orig, ctrl); d != "" {
		t.Fatalf("control points mutated:\n%s", d)
	}
}

func TestInvalidArguments(t *testing.T) {
	if _, err := Quadratic(Pt(0, 0), Pt(0, 0), Pt(0, 0), 0); err == nil {
		t.Fatal("steps=0 should be rejected")
	}
	if _, err := Cubic(Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0), -3); err == nil {
		t.Fatal("negative steps should be rejected")
	}
	if _, err := Flatten([]Point{Pt(0, 0)}, 4); err == nil {
		t.Fatal("a single control point should be rejected")
	}
	if _, err := Flatten(nil, 4); err == nil {
		t.Fatal("nil control points should be rejected")
	}
}
