package gogeometry

import (
	"math"
	"testing"
)

func TestRectangularPrismMetrics(t *testing.T) {
	snap, err := ResolveSet(FamilyRectangularPrism, map[string]float64{
		"length": 3, "width": 2, "height": 1,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	wantVal(t, snap, "volume", 6)
	wantVal(t, snap, "surface_area", 22)
	wantVal(t, snap, "lateral_area", 10)
	wantVal(t, snap, "space_diagonal", math.Sqrt(14))

	// Space diagonal pins the height with the base fixed.
	next, err := Resolve(FamilyRectangularPrism, "space_diagonal", math.Sqrt(29), snap)
	if err != nil {
		t.Fatalf("space diagonal edit failed: %v", err)
	}
	wantVal(t, next, "height", 4)

	if _, err := Resolve(FamilyRectangularPrism, "space_diagonal", 1, snap); !IsImpossible(err) {
		t.Fatalf("short space diagonal: got %v, want impossible", err)
	}
	if _, err := Resolve(FamilyRectangularPrism, "surface_area", 10, snap); !IsImpossible(err) {
		t.Fatalf("surface below twice the base: got %v, want impossible", err)
	}
}

func TestRegularPrismMetrics(t *testing.T) {
	// Square prism: the regular 4-gon closed forms are easy to check by hand.
	snap, err := ResolveSet(FamilyRegularPrism, map[string]float64{
		"sides": 4, "base_edge": 2, "height": 3,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	wantVal(t, snap, "base_area", 4)
	wantVal(t, snap, "lateral_area", 24)
	wantVal(t, snap, "surface_area", 32)
	wantVal(t, snap, "volume", 12)
	wantVal(t, snap, "apothem", 1)

	next, err := Resolve(FamilyRegularPrism, "volume", 24, snap)
	if err != nil {
		t.Fatalf("volume edit failed: %v", err)
	}
	wantVal(t, next, "height", 6)

	next, err = Resolve(FamilyRegularPrism, "base_area", 16, snap)
	if err != nil {
		t.Fatalf("base area edit failed: %v", err)
	}
	wantVal(t, next, "base_edge", 4)
}

func TestObliquePrismCavalieri(t *testing.T) {
	upright, err := ResolveSet(FamilyRegularPrism, map[string]float64{
		"sides": 4, "base_edge": 2, "height": 3,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	oblique, err := ResolveSet(FamilyObliquePrism, map[string]float64{
		"sides": 4, "base_edge": 2, "height": 3, "lean_angle": 40,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}

	// Same base and vertical height give the same volume regardless of lean.
	vu, _ := upright.Value("volume")
	vo, _ := oblique.Value("volume")
	if !approxEqual(vu, vo) {
		t.Fatalf("oblique volume %v differs from upright %v", vo, vu)
	}

	// Leaning stretches the lateral surface.
	lu, _ := upright.Value("lateral_area")
	lo, _ := oblique.Value("lateral_area")
	if lo <= lu {
		t.Fatalf("oblique lateral area %v not above upright %v", lo, lu)
	}

	wantVal(t, oblique, "lateral_edge", 3/math.Cos(Radians(40)))

	// The lateral edge pins the lean back.
	next, err := Resolve(FamilyObliquePrism, "lateral_edge", 6, oblique)
	if err != nil {
		t.Fatalf("lateral edge edit failed: %v", err)
	}
	wantVal(t, next, "lean_angle", 60)

	if _, err := Resolve(FamilyObliquePrism, "lateral_edge", 2, oblique); !IsImpossible(err) {
		t.Fatalf("lateral edge below height: got %v, want impossible", err)
	}
}

func TestPyramidMetrics(t *testing.T) {
	// Square pyramid, base edge 6, height 4: apothem 3, slant 5.
	snap, err := ResolveSet(FamilyPyramid, map[string]float64{
		"sides": 4, "base_edge": 6, "height": 4,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	wantVal(t, snap, "apothem", 3)
	wantVal(t, snap, "slant_height", 5)
	wantVal(t, snap, "lateral_edge", math.Sqrt(16+18))
	wantVal(t, snap, "base_area", 36)
	wantVal(t, snap, "lateral_area", 60)
	wantVal(t, snap, "surface_area", 96)
	wantVal(t, snap, "volume", 48)

	next, err := Resolve(FamilyPyramid, "slant_height", math.Sqrt(13), snap)
	if err != nil {
		t.Fatalf("slant edit failed: %v", err)
	}
	wantVal(t, next, "height", 2)

	if _, err := Resolve(FamilyPyramid, "slant_height", 2, snap); !IsImpossible(err) {
		t.Fatalf("slant below apothem: got %v, want impossible", err)
	}
	if _, err := Resolve(FamilyPyramid, "surface_area", 30, snap); !IsImpossible(err) {
		t.Fatalf("surface below the base: got %v, want impossible", err)
	}
}

func TestFrustumMetrics(t *testing.T) {
	// Square frustum, edges 6 and 2, height sqrt(21): apothem gap 2, slant 5.
	h := math.Sqrt(21)
	snap, err := ResolveSet(FamilyFrustum, map[string]float64{
		"sides": 4, "base_edge": 6, "top_edge": 2, "height": h,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	wantVal(t, snap, "slant_height", 5)
	wantVal(t, snap, "base_area", 36)
	wantVal(t, snap, "top_area", 4)
	wantVal(t, snap, "lateral_area", 80)
	wantVal(t, snap, "volume", h/3*(36+4+12))

	if _, err := Resolve(FamilyFrustum, "top_edge", 7, snap); !IsImpossible(err) {
		t.Fatalf("top wider than base: got %v, want impossible", err)
	}
	if _, err := Resolve(FamilyFrustum, "slant_height", 1, snap); !IsImpossible(err) {
		t.Fatalf("slant below the apothem gap: got %v, want impossible", err)
	}
}

func TestAntiprismAgainstSquareAntiprismForm(t *testing.T) {
	// The uniform square antiprism with unit edges has the classical height
	// 2^(-1/4) * sqrt(sqrt(2) - ... ); rather than quote it, verify the
	// lateral faces of any square antiprism are genuine unit-base triangles.
	snap, err := ResolveSet(FamilyAntiprism, map[string]float64{
		"sides": 4, "edge_length": 1, "height": 0.8,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	r := 1 / (2 * math.Sin(math.Pi/4))
	gap := r - 1/(2*math.Tan(math.Pi/4))
	wantVal(t, snap, "lateral_area", 4*math.Sqrt(0.64+gap*gap))
	wantVal(t, snap, "base_area", 1)

	// Volume inversions land back on the same height.
	vol, _ := snap.Value("volume")
	next, err := Resolve(FamilyAntiprism, "volume", 2*vol, snap)
	if err != nil {
		t.Fatalf("volume edit failed: %v", err)
	}
	wantVal(t, next, "height", 1.6)
}

func TestPlatonicSolidClosedForms(t *testing.T) {
	cases := []struct {
		f       Family
		edge    float64
		surface float64
		volume  float64
	}{
		{FamilyCube, 2, 24, 8},
		{FamilyTetrahedron, 1, math.Sqrt(3), math.Sqrt2 / 12},
		{FamilyOctahedron, 1, 2 * math.Sqrt(3), math.Sqrt2 / 3},
		{FamilyDodecahedron, 1, 3 * math.Sqrt(25+10*math.Sqrt(5)), (15 + 7*math.Sqrt(5)) / 4},
		{FamilyIcosahedron, 1, 5 * math.Sqrt(3), 5 * (3 + math.Sqrt(5)) / 12},
	}
	for _, tc := range cases {
		snap := resolveOne(t, tc.f, "edge_length", tc.edge)
		wantVal(t, snap, "surface_area", tc.surface)
		wantVal(t, snap, "volume", tc.volume)

		// The insphere touches every face: r = 3V/S.
		s, _ := snap.Value("surface_area")
		v, _ := snap.Value("volume")
		wantVal(t, snap, "inradius", 3*v/s)
	}
}

func TestUniformPolyhedronInversions(t *testing.T) {
	for _, f := range Families() {
		if !f.isUniformPolyhedron() {
			continue
		}
		def := DefaultSnapshot(f)
		vol, _ := def.Value("volume")
		snap, err := Resolve(f, "volume", 8*vol, def)
		if err != nil {
			t.Fatalf("%s: volume edit failed: %v", f, err)
		}
		wantVal(t, snap, "edge_length", 2)

		surf, _ := def.Value("surface_area")
		snap, err = Resolve(f, "surface_area", 9*surf, def)
		if err != nil {
			t.Fatalf("%s: surface edit failed: %v", f, err)
		}
		wantVal(t, snap, "edge_length", 3)

		cr, _ := def.Value("circumradius")
		snap, err = Resolve(f, "circumradius", 5*cr, def)
		if err != nil {
			t.Fatalf("%s: circumradius edit failed: %v", f, err)
		}
		wantVal(t, snap, "edge_length", 5)
	}
}

func TestTerracedSolidMetrics(t *testing.T) {
	// Three tiers, edges 3, 2, 1, each 0.5 tall.
	snap, err := ResolveSet(FamilyTerracedSolid, map[string]float64{
		"tiers": 3, "base_edge": 3, "top_edge": 1, "tier_height": 0.5,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	wantVal(t, snap, "total_height", 1.5)
	wantVal(t, snap, "volume", 0.5*(9+4+1))
	wantVal(t, snap, "surface_area", 2*9+4*0.5*(3+2+1))

	next, err := Resolve(FamilyTerracedSolid, "total_height", 3, snap)
	if err != nil {
		t.Fatalf("total height edit failed: %v", err)
	}
	wantVal(t, next, "tier_height", 1)

	if _, err := Resolve(FamilyTerracedSolid, "top_edge", 4, snap); !IsImpossible(err) {
		t.Fatalf("top wider than base: got %v, want impossible", err)
	}
	if _, err := Resolve(FamilyTerracedSolid, "tiers", 1, snap); !IsDomainViolation(err) {
		t.Fatalf("single tier: got %v, want domain violation", err)
	}
}
