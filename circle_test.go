package gogeometry

import (
	"math"
	"testing"
)

func TestCircleEdits(t *testing.T) {
	snap := resolveOne(t, FamilyCircle, "circumference", 2*math.Pi)
	wantVal(t, snap, "radius", 1)

	snap = resolveOne(t, FamilyCircle, "area", 9*math.Pi)
	wantVal(t, snap, "radius", 3)
	wantVal(t, snap, "diameter", 6)
}

func TestEllipseDerivedProperties(t *testing.T) {
	snap, err := ResolveSet(FamilyEllipse, map[string]float64{
		"semi_major": 5, "semi_minor": 3,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	wantVal(t, snap, "area", 15*math.Pi)
	wantVal(t, snap, "focal_distance", 4)
	wantVal(t, snap, "eccentricity", 0.8)
}

func TestEllipseAxisOrdering(t *testing.T) {
	// Driving the semi-minor axis above the semi-major axis is rejected.
	snap := DefaultSnapshot(FamilyEllipse) // a=2, b=1
	if _, err := Resolve(FamilyEllipse, "semi_minor", 3, snap); !IsImpossible(err) {
		t.Fatalf("minor above major: got %v, want impossible", err)
	}
	if _, err := Resolve(FamilyEllipse, "focal_distance", 2.5, snap); !IsImpossible(err) {
		t.Fatalf("focal distance above semi-major: got %v, want impossible", err)
	}
}

func TestEllipseCircumferenceRescales(t *testing.T) {
	def := DefaultSnapshot(FamilyEllipse)
	c0, _ := def.Value("circumference")
	snap, err := Resolve(FamilyEllipse, "circumference", 2*c0, def)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	// Uniform rescale doubles both axes and keeps the eccentricity.
	wantVal(t, snap, "semi_major", 4)
	wantVal(t, snap, "semi_minor", 2)
	e0, _ := def.Value("eccentricity")
	wantVal(t, snap, "eccentricity", e0)
}

func TestAnnulusOrderingGuard(t *testing.T) {
	snap := DefaultSnapshot(FamilyAnnulus) // outer 2, inner 1
	if _, err := Resolve(FamilyAnnulus, "inner_radius", 2.5, snap); !IsImpossible(err) {
		t.Fatalf("inner above outer: got %v, want impossible", err)
	}
	if _, err := Resolve(FamilyAnnulus, "outer_radius", 0.5, snap); !IsImpossible(err) {
		t.Fatalf("outer below inner: got %v, want impossible", err)
	}

	next, err := Resolve(FamilyAnnulus, "width", 2, snap)
	if err != nil {
		t.Fatalf("width edit failed: %v", err)
	}
	wantVal(t, next, "outer_radius", 3)
	wantVal(t, next, "area", math.Pi*8)
}

func TestCrescentRequiresIntersectingCircles(t *testing.T) {
	snap := DefaultSnapshot(FamilyCrescent) // outer 2, inner 1, distance 1.5
	if _, err := Resolve(FamilyCrescent, "center_distance", 5, snap); !IsImpossible(err) {
		t.Fatalf("disjoint circles: got %v, want impossible", err)
	}
	if _, err := Resolve(FamilyCrescent, "center_distance", 0.5, snap); !IsImpossible(err) {
		t.Fatalf("contained circle: got %v, want impossible", err)
	}
}

func TestCrescentAreaDecomposition(t *testing.T) {
	snap := DefaultSnapshot(FamilyCrescent)
	outer, _ := snap.Value("outer_radius")
	lens, _ := snap.Value("lens_area")
	area, _ := snap.Value("area")
	if !approxEqual(area, math.Pi*outer*outer-lens) {
		t.Fatalf("crescent area %v does not equal outer disc minus lens %v",
			area, math.Pi*outer*outer-lens)
	}

	// Area edits rescale; the lens keeps its proportion.
	next, err := Resolve(FamilyCrescent, "area", 4*area, snap)
	if err != nil {
		t.Fatalf("area edit failed: %v", err)
	}
	wantVal(t, next, "outer_radius", 2*outer)
	wantVal(t, next, "lens_area", 4*lens)
}

func TestVesicaPiscisProportions(t *testing.T) {
	snap := resolveOne(t, FamilyVesicaPiscis, "radius", 2)
	wantVal(t, snap, "width", 2)
	wantVal(t, snap, "height", 2*math.Sqrt(3))
	wantVal(t, snap, "area", 4*(2*math.Pi/3-math.Sqrt(3)/2))
	wantVal(t, snap, "perimeter", 8*math.Pi/3)

	// Height drives the radius back.
	snap = resolveOne(t, FamilyVesicaPiscis, "height", math.Sqrt(3))
	wantVal(t, snap, "radius", 1)
}
