package gogeometry

import (
	"math"
	"testing"
)

func TestSquareInversions(t *testing.T) {
	cases := []struct {
		name string
		v    float64
	}{
		{"side", 3},
		{"perimeter", 12},
		{"area", 9},
		{"diagonal", 3 * math.Sqrt2},
		{"inradius", 1.5},
		{"circumradius", 3 * math.Sqrt2 / 2},
	}
	for _, tc := range cases {
		snap := resolveOne(t, FamilySquare, tc.name, tc.v)
		wantVal(t, snap, "side", 3)
	}
}

func TestRectanglePinnedLength(t *testing.T) {
	snap := resolveOne(t, FamilyRectangle, "area", 6) // default length 2
	wantVal(t, snap, "width", 3)
	wantVal(t, snap, "length", 2)

	snap = resolveOne(t, FamilyRectangle, "diagonal", math.Sqrt(13))
	wantVal(t, snap, "width", 3)

	if _, err := Resolve(FamilyRectangle, "diagonal", 1.5, nil); !IsImpossible(err) {
		t.Fatalf("diagonal below length: got %v, want impossible", err)
	}
	if _, err := Resolve(FamilyRectangle, "perimeter", 3, nil); !IsImpossible(err) {
		t.Fatalf("perimeter below twice the length: got %v, want impossible", err)
	}
}

func TestRegularPolygonHexagon(t *testing.T) {
	snap, err := ResolveSet(FamilyRegularPolygon, map[string]float64{
		"sides": 6, "side_length": 2,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	wantVal(t, snap, "perimeter", 12)
	wantVal(t, snap, "circumradius", 2)
	wantVal(t, snap, "apothem", math.Sqrt(3))
	wantVal(t, snap, "area", 6*math.Sqrt(3))
	wantVal(t, snap, "interior_angle", 120)
	wantVal(t, snap, "exterior_angle", 60)
}

func TestRegularPolygonAnglePinsSideCount(t *testing.T) {
	// 135 degrees interior is the regular octagon; the side length stays.
	snap := resolveOne(t, FamilyRegularPolygon, "interior_angle", 135)
	wantVal(t, snap, "sides", 8)
	wantVal(t, snap, "side_length", 1)

	snap = resolveOne(t, FamilyRegularPolygon, "exterior_angle", 90)
	wantVal(t, snap, "sides", 4)

	// 100 degrees interior would need 4.5 sides.
	if _, err := Resolve(FamilyRegularPolygon, "interior_angle", 100, nil); !IsImpossible(err) {
		t.Fatalf("non-integral side count: got %v, want impossible", err)
	}
}

func TestRegularPolygonAngleRoundTrip(t *testing.T) {
	// Derived interior angles of awkward polygons survive being fed back in.
	for n := 3.0; n <= 12; n++ {
		snap, err := ResolveSet(FamilyRegularPolygon, map[string]float64{
			"sides": n, "side_length": 1,
		})
		if err != nil {
			t.Fatalf("n=%v: ResolveSet failed: %v", n, err)
		}
		interior, _ := snap.Value("interior_angle")
		next, err := Resolve(FamilyRegularPolygon, "interior_angle", interior, snap)
		if err != nil {
			t.Fatalf("n=%v: interior angle round trip failed: %v", n, err)
		}
		wantVal(t, next, "sides", n)
	}
}
