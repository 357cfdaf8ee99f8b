package gogeometry

import (
	"fmt"
	"sort"
)

// Resolve is the pure per-edit solving contract: the property just edited plus
// the previous snapshot (supplying the family's other still-pinned defining
// parameters) map to a freshly derived snapshot, or a SolveError. The previous
// snapshot is never mutated; on failure the caller keeps it.
//
// Every call re-derives the full property set from scratch: there is no
// incremental dirty-tracking.
func Resolve(f Family, name string, value float64, prev *Snapshot) (*Snapshot, error) {
	d, ok := PropertyDefFor(f, name)
	if !ok {
		return nil, domainErr(f, name, "unknown property")
	}
	if err := checkConstraint(f, d, value); err != nil {
		return nil, err
	}
	if prev == nil {
		prev = DefaultSnapshot(f)
	}
	if prev.family != f {
		panic(fmt.Sprintf("gogeometry: snapshot family %s does not match %s", prev.family, f))
	}

	next, err := solveFamily(f, name, value, prev)
	if err != nil {
		return nil, err
	}
	next.markUserSet(name)
	return next, nil
}

func solveFamily(f Family, name string, v float64, prev *Snapshot) (*Snapshot, error) {
	switch f {
	case FamilyCircle:
		return solveCircle(name, v, prev)
	case FamilyEllipse:
		return solveEllipse(name, v, prev)
	case FamilyAnnulus:
		return solveAnnulus(name, v, prev)
	case FamilyCrescent:
		return solveCrescent(name, v, prev)
	case FamilyVesicaPiscis:
		return solveVesicaPiscis(name, v, prev)
	case FamilySquare:
		return solveSquare(name, v, prev)
	case FamilyRectangle:
		return solveRectangle(name, v, prev)
	case FamilyRegularPolygon:
		return solveRegularPolygon(name, v, prev)
	case FamilyTriangle:
		return solveTriangle(name, v, prev)
	case FamilyRightTriangle:
		return solveRightTriangle(name, v, prev)
	case FamilyIsoscelesTriangle:
		return solveIsoscelesTriangle(name, v, prev)
	case FamilyEquilateralTriangle:
		return solveEquilateralTriangle(name, v, prev)
	case FamilyTriangle306090:
		return solveTriangle306090(name, v, prev)
	case FamilyTriangle454590:
		return solveTriangle454590(name, v, prev)
	case FamilyParallelogram:
		return solveParallelogram(name, v, prev)
	case FamilyRhombus:
		return solveRhombus(name, v, prev)
	case FamilyTrapezoid:
		return solveTrapezoid(name, v, prev)
	case FamilyKite:
		return solveKite(name, v, prev)
	case FamilyCyclicQuadrilateral:
		return solveCyclicQuadrilateral(name, v, prev)
	case FamilyTangentialQuadrilateral:
		return solveTangentialQuadrilateral(name, v, prev)
	case FamilyBicentricQuadrilateral:
		return solveBicentricQuadrilateral(name, v, prev)
	case FamilyRectangularPrism:
		return solveRectangularPrism(name, v, prev)
	case FamilyRegularPrism:
		return solveRegularPrism(name, v, prev)
	case FamilyObliquePrism:
		return solveObliquePrism(name, v, prev)
	case FamilyPyramid:
		return solvePyramid(name, v, prev)
	case FamilyFrustum:
		return solveFrustum(name, v, prev)
	case FamilyAntiprism:
		return solveAntiprism(name, v, prev)
	case FamilyTerracedSolid:
		return solveTerracedSolid(name, v, prev)
	default:
		if f.isUniformPolyhedron() {
			return solveUniformPolyhedron(f, name, v, prev)
		}
		panic("gogeometry: unknown family")
	}
}

// definingSet is one row of a family's batch decision table: a minimal
// combination of property names that uniquely determines the geometry, with
// the closed form that builds the snapshot from it.
type definingSet struct {
	names []string
	build func(in map[string]float64) (*Snapshot, error)
}

// ResolveSet is the batch entry point: an explicit map of pinned values is
// matched against the family's decision table of minimal defining sets. Fewer
// values than the family's degrees of freedom is Underdetermined; pinned
// values the chosen closed form does not consume are cross-checked against the
// derived result and reported Inconsistent on mismatch.
func ResolveSet(f Family, inputs map[string]float64) (*Snapshot, error) {
	for name, v := range inputs {
		d, ok := PropertyDefFor(f, name)
		if !ok {
			return nil, domainErr(f, name, "unknown property")
		}
		if err := checkConstraint(f, d, v); err != nil {
			return nil, err
		}
	}
	if len(inputs) < DegreesOfFreedom(f) {
		return nil, underdeterminedErr(f, fmt.Sprintf("need %d independent values, got %d",
			DegreesOfFreedom(f), len(inputs)))
	}

	for _, ds := range definingSets(f) {
		if !coversSet(ds.names, inputs) {
			continue
		}
		snap, err := ds.build(inputs)
		if err != nil {
			return nil, err
		}
		if err := checkLeftovers(f, snap, inputs, ds.names); err != nil {
			return nil, err
		}
		return snap, nil
	}

	// No explicit table row matched: replay the inputs as sequential edits in
	// registry order on the canonical default, then require every pinned value
	// to hold simultaneously in the result.
	snap := DefaultSnapshot(f)
	for _, name := range registryOrder(f, inputs) {
		next, err := Resolve(f, name, inputs[name], snap)
		if err != nil {
			return nil, err
		}
		snap = next
	}
	if err := checkLeftovers(f, snap, inputs, nil); err != nil {
		return nil, err
	}
	snap.markUserSet("") // batch results carry no single authoritative edit
	return snap, nil
}

func coversSet(names []string, inputs map[string]float64) bool {
	for _, n := range names {
		if _, ok := inputs[n]; !ok {
			return false
		}
	}
	return true
}

// checkLeftovers verifies every supplied value not consumed by the chosen
// defining set against the derived snapshot.
func checkLeftovers(f Family, snap *Snapshot, inputs map[string]float64, used []string) error {
	usedSet := make(map[string]bool, len(used))
	for _, n := range used {
		usedSet[n] = true
	}
	for name, want := range inputs {
		if usedSet[name] {
			continue
		}
		got := snap.val(name)
		if !approxEqualTol(got, want, 1e-9, 1e-6) {
			return inconsistentErr(f, name, fmt.Sprintf("supplied %v, derived %v", want, got))
		}
	}
	return nil
}

// registryOrder sorts the input names by their registry position so batch
// replay is deterministic and defining parameters apply before derived ones.
func registryOrder(f Family, inputs map[string]float64) []string {
	idx := make(map[string]int)
	for i, d := range RegistryFor(f) {
		idx[d.Name] = i
	}
	names := make([]string, 0, len(inputs))
	for n := range inputs {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return idx[names[i]] < idx[names[j]] })
	return names
}

// definingSets returns the explicit decision-table rows for a family. Families
// whose per-edit solver already covers every entry path return no rows and
// rely on batch replay. Rows are ordered most-stable-first: when several
// closed forms apply, the one avoiding inverse trigonometry wins.
func definingSets(f Family) []definingSet {
	switch f {
	case FamilyTriangle:
		return triangleDefiningSets()
	case FamilyRightTriangle:
		return rightTriangleDefiningSets()
	default:
		return nil
	}
}
