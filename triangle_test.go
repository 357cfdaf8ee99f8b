package gogeometry

import (
	"math"
	"testing"
)

func TestTriangleInequality(t *testing.T) {
	if _, err := ResolveSet(FamilyTriangle, map[string]float64{
		"side_a": 1, "side_b": 2, "side_c": 10,
	}); !IsImpossible(err) {
		t.Fatalf("triangle inequality: got %v, want impossible", err)
	}

	// Degenerate: the sides are collinear.
	if _, err := ResolveSet(FamilyTriangle, map[string]float64{
		"side_a": 1, "side_b": 2, "side_c": 3,
	}); !IsImpossible(err) {
		t.Fatalf("collinear sides: got %v, want impossible", err)
	}
}

func TestTriangleAngleEditUsesAdjacentSides(t *testing.T) {
	// Default 3-4-5; widening the right angle at C stretches side_c.
	snap := resolveOne(t, FamilyTriangle, "angle_c", 120)
	wantVal(t, snap, "side_a", 3)
	wantVal(t, snap, "side_b", 4)
	wantVal(t, snap, "side_c", math.Sqrt(9+16-2*3*4*math.Cos(Radians(120))))
}

func TestTriangleAngleEditsKeepSideLabels(t *testing.T) {
	// Editing any angle of the default 3-4-5 must move only the side opposite
	// that angle; the other two keep their labels and values.
	snap := resolveOne(t, FamilyTriangle, "angle_a", 60)
	wantVal(t, snap, "side_a", math.Sqrt(21)) // oppositeSide(4, 5, 60)
	wantVal(t, snap, "side_b", 4)
	wantVal(t, snap, "side_c", 5)
	wantVal(t, snap, "angle_a", 60)

	snap = resolveOne(t, FamilyTriangle, "angle_b", 60)
	wantVal(t, snap, "side_a", 3)
	wantVal(t, snap, "side_b", math.Sqrt(19)) // oppositeSide(3, 5, 60)
	wantVal(t, snap, "side_c", 5)
	wantVal(t, snap, "angle_b", 60)

	// Re-asserting the current angle is a no-op on every side.
	def := DefaultSnapshot(FamilyTriangle)
	cur, _ := def.Value("angle_a")
	snap, err := Resolve(FamilyTriangle, "angle_a", cur, def)
	if err != nil {
		t.Fatalf("re-asserting angle_a failed: %v", err)
	}
	wantVal(t, snap, "side_a", 3)
	wantVal(t, snap, "side_b", 4)
	wantVal(t, snap, "side_c", 5)
}

func TestTriangleMetricEditsRescale(t *testing.T) {
	snap := resolveOne(t, FamilyTriangle, "perimeter", 24)
	wantVal(t, snap, "side_a", 6)
	wantVal(t, snap, "side_b", 8)
	wantVal(t, snap, "side_c", 10)
	wantVal(t, snap, "area", 24)

	snap = resolveOne(t, FamilyTriangle, "area", 24)
	wantVal(t, snap, "side_c", 10)

	snap = resolveOne(t, FamilyTriangle, "circumradius", 5)
	wantVal(t, snap, "side_c", 10)
}

func TestClassifyTriangle(t *testing.T) {
	cases := []struct {
		sides [3]float64
		want  TriangleClass
	}{
		{[3]float64{3, 4, 5}, TriangleClass{TriangleScalene, TriangleRight, true}},
		{[3]float64{1, 1, 1}, TriangleClass{TriangleEquilateral, TriangleAcute, false}},
		{[3]float64{5, 5, 6}, TriangleClass{TriangleIsosceles, TriangleAcute, true}},
		{[3]float64{2, 3, 4}, TriangleClass{TriangleScalene, TriangleObtuse, false}},
		{[3]float64{5, 5, 8}, TriangleClass{TriangleIsosceles, TriangleObtuse, true}},
	}
	for _, tc := range cases {
		snap, err := ResolveSet(FamilyTriangle, map[string]float64{
			"side_a": tc.sides[0], "side_b": tc.sides[1], "side_c": tc.sides[2],
		})
		if err != nil {
			t.Fatalf("sides %v: ResolveSet failed: %v", tc.sides, err)
		}
		got, err := ClassifyTriangle(snap)
		if err != nil {
			t.Fatalf("sides %v: classify failed: %v", tc.sides, err)
		}
		if got != tc.want {
			t.Fatalf("sides %v: classified %+v, want %+v", tc.sides, got, tc.want)
		}
	}

	if _, err := ClassifyTriangle(DefaultSnapshot(FamilyRightTriangle)); err == nil {
		t.Fatalf("classifying a non-general-triangle snapshot should fail")
	}
}

func TestRightTriangle345(t *testing.T) {
	snap := DefaultSnapshot(FamilyRightTriangle)
	wantVal(t, snap, "hypotenuse", 5)
	wantVal(t, snap, "area", 6)
	wantVal(t, snap, "perimeter", 12)

	snap = resolveOne(t, FamilyRightTriangle, "hypotenuse", 10)
	wantVal(t, snap, "leg_a", 3)
	wantVal(t, snap, "leg_b", math.Sqrt(91))

	if _, err := Resolve(FamilyRightTriangle, "angle_a", 90, nil); !IsImpossible(err) {
		t.Fatalf("right angle as acute angle: got %v, want impossible", err)
	}
}

func TestRightTriangleAnglesSum(t *testing.T) {
	snap := resolveOne(t, FamilyRightTriangle, "angle_a", 30)
	a, _ := snap.Value("angle_a")
	b, _ := snap.Value("angle_b")
	if !approxEqualTol(a+b, 90, 1e-9, 1e-9) {
		t.Fatalf("acute angles sum to %v, want 90", a+b)
	}
	wantVal(t, snap, "leg_a", 4*math.Tan(Radians(30)))
}

func TestIsoscelesTriangleGuards(t *testing.T) {
	if _, err := ResolveSet(FamilyIsoscelesTriangle, map[string]float64{
		"leg": 2, "base": 4,
	}); !IsImpossible(err) {
		t.Fatalf("flat isosceles: got %v, want impossible", err)
	}

	snap := resolveOne(t, FamilyIsoscelesTriangle, "base", 8) // legs stay 5
	wantVal(t, snap, "height", 3)
	wantVal(t, snap, "area", 12)
}

func TestEquilateralTriangle(t *testing.T) {
	snap := resolveOne(t, FamilyEquilateralTriangle, "side", 2)
	wantVal(t, snap, "height", math.Sqrt(3))
	wantVal(t, snap, "area", math.Sqrt(3))
	wantVal(t, snap, "inradius", 1/math.Sqrt(3))
	wantVal(t, snap, "circumradius", 2/math.Sqrt(3))

	snap = resolveOne(t, FamilyEquilateralTriangle, "circumradius", 1)
	wantVal(t, snap, "side", math.Sqrt(3))
}

func TestSpecialRightTriangles(t *testing.T) {
	snap := resolveOne(t, FamilyTriangle306090, "hypotenuse", 4)
	wantVal(t, snap, "short_leg", 2)
	wantVal(t, snap, "long_leg", 2*math.Sqrt(3))

	snap = resolveOne(t, FamilyTriangle454590, "hypotenuse", math.Sqrt2)
	wantVal(t, snap, "leg", 1)
	wantVal(t, snap, "area", 0.5)
}
