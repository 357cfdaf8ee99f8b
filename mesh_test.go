package gogeometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// helper: synthesize the default mesh of a solid family
func defaultMesh(t *testing.T, f Family) *SolidMesh {
	t.Helper()
	m, err := Synthesize(f, DefaultSnapshot(f))
	if err != nil {
		t.Fatalf("Synthesize(%s) failed: %v", f, err)
	}
	return m
}

func TestEverySolidMeshIsClosedAndConsistent(t *testing.T) {
	// Synthesize already cross-checks mesh surface and volume against the
	// solver's scalar results and verifies the Euler invariant, so a clean
	// return is the whole assertion.
	for _, f := range Families() {
		if !f.IsSolid() {
			continue
		}
		m := defaultMesh(t, f)
		if chi := m.EulerCharacteristic(); chi != 2 {
			t.Fatalf("%s: V-E+F = %d, want 2", f, chi)
		}
	}
}

func TestMeshCountsMatchKnownTopology(t *testing.T) {
	cases := []struct {
		f       Family
		v, e, fc int
	}{
		{FamilyRectangularPrism, 8, 12, 6},
		{FamilyCube, 8, 12, 6},
		{FamilyTetrahedron, 4, 6, 4},
		{FamilyOctahedron, 6, 12, 8},
		{FamilyDodecahedron, 20, 30, 12},
		{FamilyIcosahedron, 12, 30, 20},
		{FamilyTruncatedTetrahedron, 12, 18, 8},
		{FamilyCuboctahedron, 12, 24, 14},
		{FamilyTruncatedCube, 24, 36, 14},
		{FamilyTruncatedOctahedron, 24, 36, 14},
		{FamilyRhombicuboctahedron, 24, 48, 26},
		{FamilyIcosidodecahedron, 30, 60, 32},
		{FamilyTruncatedIcosahedron, 60, 90, 32},
		{FamilyRegularPrism, 12, 18, 8},   // hexagonal default
		{FamilyPyramid, 5, 8, 5},          // square default
		{FamilyFrustum, 8, 12, 6},         // square default
		{FamilyAntiprism, 8, 16, 10},      // square default
		{FamilyTerracedSolid, 24, 44, 22}, // three-tier default
	}
	for _, tc := range cases {
		m := defaultMesh(t, tc.f)
		if len(m.Vertices) != tc.v || len(m.Edges) != tc.e || len(m.Faces) != tc.fc {
			t.Fatalf("%s: got V=%d E=%d F=%d, want V=%d E=%d F=%d",
				tc.f, len(m.Vertices), len(m.Edges), len(m.Faces), tc.v, tc.e, tc.fc)
		}
	}
}

func TestMeshLabelsMirrorSnapshot(t *testing.T) {
	snap, err := ResolveSet(FamilyCube, map[string]float64{"edge_length": 2})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	m, err := Synthesize(FamilyCube, snap)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	want := map[string]float64{
		"surface_area": 24,
		"volume":       8,
		"vertex_count": 8,
		"edge_count":   12,
		"face_count":   6,
		"circumradius": math.Sqrt(3), // half the space diagonal of an edge-2 cube
		"midradius":    math.Sqrt2,
	}
	if diff := cmp.Diff(want, m.Labels, cmpopts.EquateApprox(1e-9, 1e-9)); diff != "" {
		t.Fatalf("cube labels mismatch (-want +got):\n%s", diff)
	}
}

func TestMeshCapBreakdownLabels(t *testing.T) {
	snap, err := ResolveSet(FamilyPyramid, map[string]float64{
		"sides": 4, "base_edge": 6, "height": 4,
	})
	if err != nil {
		t.Fatalf("ResolveSet failed: %v", err)
	}
	m, err := Synthesize(FamilyPyramid, snap)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !approxEqualTol(m.Labels["base_area"], 36, 1e-9, 1e-9) {
		t.Fatalf("base area label %v, want 36", m.Labels["base_area"])
	}
	if !approxEqualTol(m.Labels["lateral_area"], 60, 1e-9, 1e-9) {
		t.Fatalf("lateral area label %v, want 60", m.Labels["lateral_area"])
	}
}

func TestMeshEdgeLengthsAreUniformOnPolyhedra(t *testing.T) {
	for _, f := range Families() {
		if !f.isUniformPolyhedron() {
			continue
		}
		snap, err := ResolveSet(f, map[string]float64{"edge_length": 1.5})
		if err != nil {
			t.Fatalf("%s: ResolveSet failed: %v", f, err)
		}
		m, err := Synthesize(f, snap)
		if err != nil {
			t.Fatalf("%s: Synthesize failed: %v", f, err)
		}
		for _, e := range m.Edges {
			d := m.Vertices[e[0]].Sub(m.Vertices[e[1]]).Norm()
			if !approxEqualTol(d, 1.5, 1e-9, 1e-9) {
				t.Fatalf("%s: edge %v has length %v, want 1.5", f, e, d)
			}
		}
		if got := m.minEdgeLength(); !approxEqualTol(got, 1.5, 1e-9, 1e-9) {
			t.Fatalf("%s: min edge length %v, want 1.5", f, got)
		}
		// The templates are origin-centered, so the farthest vertex is the
		// circumradius the scalar solver reports.
		cr, _ := snap.Value("circumradius")
		if got := m.maxVertexNorm(); !approxEqualTol(got, cr, 1e-9, 1e-9) {
			t.Fatalf("%s: max vertex norm %v, solved circumradius %v", f, got, cr)
		}
	}
}

func TestMeshBoundsContainEveryVertex(t *testing.T) {
	for _, f := range Families() {
		if !f.IsSolid() {
			continue
		}
		m := defaultMesh(t, f)
		for _, v := range m.Vertices {
			if v.X < m.Bounds.Min.X || v.X > m.Bounds.Max.X ||
				v.Y < m.Bounds.Min.Y || v.Y > m.Bounds.Max.Y ||
				v.Z < m.Bounds.Min.Z || v.Z > m.Bounds.Max.Z {
				t.Fatalf("%s: vertex %v outside bounds %v", f, v, m.Bounds)
			}
		}
	}
}

func TestSynthesizeRejectsPlaneFigures(t *testing.T) {
	_, err := Synthesize(FamilyCircle, DefaultSnapshot(FamilyCircle))
	if !IsDomainViolation(err) {
		t.Fatalf("plane figure mesh: got %v, want domain violation", err)
	}
}

func TestSynthesizeRejectsMismatchedSnapshot(t *testing.T) {
	_, err := Synthesize(FamilyCube, DefaultSnapshot(FamilyTetrahedron))
	if !IsInternalConsistency(err) {
		t.Fatalf("family mismatch: got %v, want internal consistency", err)
	}
}
