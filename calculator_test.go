package gogeometry

import (
	"bytes"
	"log/slog"
	"math"
	"testing"
)

func TestCalculatorSessionLifecycle(t *testing.T) {
	c := New(FamilyCircle)
	if c.Family() != FamilyCircle {
		t.Fatalf("family = %s, want circle", c.Family())
	}
	if c.ID() == New(FamilyCircle).ID() {
		t.Fatalf("two sessions share an ID")
	}
	wantVal(t, c.Snapshot(), "radius", 1)

	if err := c.SetProperty("area", 4*math.Pi); err != nil {
		t.Fatalf("SetProperty failed: %v", err)
	}
	wantVal(t, c.Snapshot(), "radius", 2)

	c.Reset()
	wantVal(t, c.Snapshot(), "radius", 1)
}

func TestCalculatorKeepsStateOnFailedEdit(t *testing.T) {
	c := New(FamilyAnnulus) // outer 2, inner 1
	if err := c.SetProperty("inner_radius", 3); !IsImpossible(err) {
		t.Fatalf("inner above outer: got %v, want impossible", err)
	}
	wantVal(t, c.Snapshot(), "inner_radius", 1)
	wantVal(t, c.Snapshot(), "outer_radius", 2)

	if err := c.SetProperty("outer_radius", -5); !IsDomainViolation(err) {
		t.Fatalf("negative radius: got %v, want domain violation", err)
	}
	wantVal(t, c.Snapshot(), "outer_radius", 2)
}

func TestCalculatorIdempotentEdit(t *testing.T) {
	c := New(FamilyRightTriangle)
	if err := c.SetProperty("hypotenuse", 5); err != nil {
		t.Fatalf("no-op edit failed: %v", err)
	}
	// The short-circuit must not move the user-set flag.
	if pv, _ := c.Snapshot().Get("hypotenuse"); pv.Origin != OriginDerived {
		t.Fatalf("no-op edit flagged hypotenuse as user-set")
	}
}

func TestCalculatorSnapshotIsACopy(t *testing.T) {
	c := New(FamilySquare)
	held := c.Snapshot()
	if err := c.SetProperty("side", 7); err != nil {
		t.Fatalf("SetProperty failed: %v", err)
	}
	wantVal(t, held, "side", 1)
	wantVal(t, c.Snapshot(), "side", 7)
}

func TestCalculatorSolidEditsCrossCheckMesh(t *testing.T) {
	var buf bytes.Buffer
	c := New(FamilyCube).SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	if err := c.SetProperty("edge_length", 2); err != nil {
		t.Fatalf("SetProperty failed: %v", err)
	}
	wantVal(t, c.Snapshot(), "volume", 8)
	wantVal(t, c.Snapshot(), "surface_area", 24)
	if buf.Len() != 0 {
		t.Fatalf("healthy edit logged: %s", buf.String())
	}

	m, err := c.Mesh()
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if len(m.Vertices) != 8 || len(m.Edges) != 12 || len(m.Faces) != 6 {
		t.Fatalf("cube mesh: V=%d E=%d F=%d", len(m.Vertices), len(m.Edges), len(m.Faces))
	}
}

func TestCalculatorMeshOnPlaneFigure(t *testing.T) {
	if _, err := New(FamilyCircle).Mesh(); err == nil {
		t.Fatalf("plane figure mesh should fail")
	}
}

func TestCalculatorResolveInputs(t *testing.T) {
	c := New(FamilyTriangle)
	if err := c.ResolveInputs(map[string]float64{
		"side_a": 5, "side_b": 12, "side_c": 13,
	}); err != nil {
		t.Fatalf("ResolveInputs failed: %v", err)
	}
	wantVal(t, c.Snapshot(), "area", 30)

	// A failing batch keeps the resolved state.
	if err := c.ResolveInputs(map[string]float64{"side_a": 1}); !IsUnderdetermined(err) {
		t.Fatalf("partial batch: got %v, want underdetermined", err)
	}
	wantVal(t, c.Snapshot(), "area", 30)
}
