package gogeometry

// Family identifies one of the fixed shape kinds the engine can resolve. The
// set is closed: dispatch is an exhaustive switch, and adding a family means
// adding a variant plus one solver, never touching existing families.
type Family int

const (
	// Plane figures.
	FamilyCircle Family = iota
	FamilyEllipse
	FamilyAnnulus
	FamilyCrescent
	FamilyVesicaPiscis
	FamilySquare
	FamilyRectangle
	FamilyRegularPolygon

	// Triangles.
	FamilyTriangle
	FamilyRightTriangle
	FamilyIsoscelesTriangle
	FamilyEquilateralTriangle
	FamilyTriangle306090
	FamilyTriangle454590

	// Quadrilaterals.
	FamilyParallelogram
	FamilyRhombus
	FamilyTrapezoid
	FamilyKite
	FamilyCyclicQuadrilateral
	FamilyTangentialQuadrilateral
	FamilyBicentricQuadrilateral

	// Solids.
	FamilyRectangularPrism
	FamilyRegularPrism
	FamilyObliquePrism
	FamilyPyramid
	FamilyFrustum
	FamilyAntiprism
	FamilyTetrahedron
	FamilyCube
	FamilyOctahedron
	FamilyDodecahedron
	FamilyIcosahedron
	FamilyTruncatedTetrahedron
	FamilyCuboctahedron
	FamilyTruncatedCube
	FamilyTruncatedOctahedron
	FamilyRhombicuboctahedron
	FamilyIcosidodecahedron
	FamilyTruncatedIcosahedron
	FamilyTerracedSolid

	familyCount // sentinel, keep last
)

var familyNames = [familyCount]string{
	FamilyCircle:                  "circle",
	FamilyEllipse:                 "ellipse",
	FamilyAnnulus:                 "annulus",
	FamilyCrescent:                "crescent",
	FamilyVesicaPiscis:            "vesica_piscis",
	FamilySquare:                  "square",
	FamilyRectangle:               "rectangle",
	FamilyRegularPolygon:          "regular_polygon",
	FamilyTriangle:                "triangle",
	FamilyRightTriangle:           "right_triangle",
	FamilyIsoscelesTriangle:       "isosceles_triangle",
	FamilyEquilateralTriangle:     "equilateral_triangle",
	FamilyTriangle306090:          "triangle_30_60_90",
	FamilyTriangle454590:          "triangle_45_45_90",
	FamilyParallelogram:           "parallelogram",
	FamilyRhombus:                 "rhombus",
	FamilyTrapezoid:               "trapezoid",
	FamilyKite:                    "kite",
	FamilyCyclicQuadrilateral:     "cyclic_quadrilateral",
	FamilyTangentialQuadrilateral: "tangential_quadrilateral",
	FamilyBicentricQuadrilateral:  "bicentric_quadrilateral",
	FamilyRectangularPrism:        "rectangular_prism",
	FamilyRegularPrism:            "regular_prism",
	FamilyObliquePrism:            "oblique_prism",
	FamilyPyramid:                 "pyramid",
	FamilyFrustum:                 "frustum",
	FamilyAntiprism:               "antiprism",
	FamilyTetrahedron:             "tetrahedron",
	FamilyCube:                    "cube",
	FamilyOctahedron:              "octahedron",
	FamilyDodecahedron:            "dodecahedron",
	FamilyIcosahedron:             "icosahedron",
	FamilyTruncatedTetrahedron:    "truncated_tetrahedron",
	FamilyCuboctahedron:           "cuboctahedron",
	FamilyTruncatedCube:           "truncated_cube",
	FamilyTruncatedOctahedron:     "truncated_octahedron",
	FamilyRhombicuboctahedron:     "rhombicuboctahedron",
	FamilyIcosidodecahedron:       "icosidodecahedron",
	FamilyTruncatedIcosahedron:    "truncated_icosahedron",
	FamilyTerracedSolid:           "terraced_solid",
}

// Name returns the stable machine name used in serialized snapshots.
func (f Family) Name() string {
	if f < 0 || f >= familyCount {
		return "unknown"
	}
	return familyNames[f]
}

// String returns the machine name.
func (f Family) String() string { return f.Name() }

// FamilyFromName resolves a machine name back to its Family.
func FamilyFromName(name string) (Family, bool) {
	for f, n := range familyNames {
		if n == name {
			return Family(f), true
		}
	}
	return 0, false
}

// Families returns every supported family in declaration order.
func Families() []Family {
	out := make([]Family, familyCount)
	for i := range out {
		out[i] = Family(i)
	}
	return out
}

// IsSolid reports whether the family synthesizes a 3D mesh.
func (f Family) IsSolid() bool {
	return f >= FamilyRectangularPrism && f <= FamilyTerracedSolid
}

// isUniformPolyhedron reports whether the family is one of the fixed-template
// Platonic or Archimedean solids whose metrics are monomials in edge length.
func (f Family) isUniformPolyhedron() bool {
	return f >= FamilyTetrahedron && f <= FamilyTruncatedIcosahedron
}

// DefaultSnapshot returns the canonical default geometry for the family: the
// snapshot a fresh session starts from (unit circle, 3-4-5 right triangle,
// unit-edge cube, ...). Panics on an out-of-range family, which is a
// programmer error.
func DefaultSnapshot(f Family) *Snapshot {
	s, err := buildDefault(f)
	if err != nil {
		panic("gogeometry: default geometry for " + f.Name() + " failed: " + err.Error())
	}
	return s
}

func buildDefault(f Family) (*Snapshot, error) {
	switch f {
	case FamilyCircle:
		return buildCircle(1)
	case FamilyEllipse:
		return buildEllipse(2, 1)
	case FamilyAnnulus:
		return buildAnnulus(2, 1)
	case FamilyCrescent:
		return buildCrescent(2, 1, 1.5)
	case FamilyVesicaPiscis:
		return buildVesicaPiscis(1)
	case FamilySquare:
		return buildSquare(1)
	case FamilyRectangle:
		return buildRectangle(2, 1)
	case FamilyRegularPolygon:
		return buildRegularPolygon(6, 1)
	case FamilyTriangle:
		return buildTriangleSSS(3, 4, 5)
	case FamilyRightTriangle:
		return buildRightTriangle(3, 4)
	case FamilyIsoscelesTriangle:
		return buildIsoscelesTriangle(5, 6)
	case FamilyEquilateralTriangle:
		return buildEquilateralTriangle(1)
	case FamilyTriangle306090:
		return buildTriangle306090(1)
	case FamilyTriangle454590:
		return buildTriangle454590(1)
	case FamilyParallelogram:
		return buildParallelogram(2, 1, 60)
	case FamilyRhombus:
		return buildRhombus(1, 60)
	case FamilyTrapezoid:
		return buildTrapezoid(2, 1, 1)
	case FamilyKite:
		return buildKite(2, 3, 3)
	case FamilyCyclicQuadrilateral:
		return buildCyclicQuadrilateral(1, 1, 1, 1)
	case FamilyTangentialQuadrilateral:
		return buildTangentialQuadrilateral(2, 1.5, 1, 0.5)
	case FamilyBicentricQuadrilateral:
		return buildBicentricQuadrilateral(1, 1, 1)
	case FamilyRectangularPrism:
		return buildRectangularPrism(2, 1, 1)
	case FamilyRegularPrism:
		return buildRegularPrism(6, 1, 2)
	case FamilyObliquePrism:
		return buildObliquePrism(4, 1, 2, 30)
	case FamilyPyramid:
		return buildPyramid(4, 2, 3)
	case FamilyFrustum:
		return buildFrustum(4, 2, 1, 2)
	case FamilyAntiprism:
		return buildAntiprism(4, 1, 1)
	case FamilyTerracedSolid:
		return buildTerracedSolid(3, 3, 1, 0.5)
	default:
		if f.isUniformPolyhedron() {
			return buildUniformPolyhedron(f, 1)
		}
		panic("gogeometry: unknown family")
	}
}
