package gogeometry

import "math"

// Constraint is the domain restriction a property value must satisfy.
type Constraint int

const (
	Positive Constraint = iota
	NonNegative
	Angle0to180 // open interval, degrees
	Angle0to360 // open interval, degrees
	Probability0to1
	FreeReal
)

// PropertyDef declares one named property of a family: its unit class, its
// domain constraint and whether it is one of the family's independent defining
// parameters.
type PropertyDef struct {
	Name       string
	Unit       Unit
	Constraint Constraint
	Defining   bool
}

func def(name string, u Unit, c Constraint) PropertyDef {
	return PropertyDef{Name: name, Unit: u, Constraint: c}
}

func defining(name string, u Unit, c Constraint) PropertyDef {
	return PropertyDef{Name: name, Unit: u, Constraint: c, Defining: true}
}

// Shared sub-tables. Uniform polyhedra (Platonic and Archimedean) expose the
// same property set; the Platonic five additionally have an insphere.
var uniformPolyhedronDefs = []PropertyDef{
	defining("edge_length", UnitLength, Positive),
	def("surface_area", UnitArea, Positive),
	def("volume", UnitVolume, Positive),
	def("circumradius", UnitLength, Positive),
}

var platonicDefs = append(append([]PropertyDef{}, uniformPolyhedronDefs...),
	def("inradius", UnitLength, Positive),
)

var registry = map[Family][]PropertyDef{
	FamilyCircle: {
		defining("radius", UnitLength, Positive),
		def("diameter", UnitLength, Positive),
		def("circumference", UnitLength, Positive),
		def("area", UnitArea, Positive),
	},
	FamilyEllipse: {
		defining("semi_major", UnitLength, Positive),
		defining("semi_minor", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("circumference", UnitLength, Positive),
		def("eccentricity", UnitRatio, Probability0to1),
		def("focal_distance", UnitLength, NonNegative),
	},
	FamilyAnnulus: {
		defining("outer_radius", UnitLength, Positive),
		defining("inner_radius", UnitLength, Positive),
		def("width", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("outer_circumference", UnitLength, Positive),
		def("inner_circumference", UnitLength, Positive),
	},
	FamilyCrescent: {
		defining("outer_radius", UnitLength, Positive),
		defining("inner_radius", UnitLength, Positive),
		defining("center_distance", UnitLength, Positive),
		def("lens_area", UnitArea, Positive),
		def("area", UnitArea, Positive),
	},
	FamilyVesicaPiscis: {
		defining("radius", UnitLength, Positive),
		def("width", UnitLength, Positive),
		def("height", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
	},
	FamilySquare: {
		defining("side", UnitLength, Positive),
		def("perimeter", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("diagonal", UnitLength, Positive),
		def("inradius", UnitLength, Positive),
		def("circumradius", UnitLength, Positive),
	},
	FamilyRectangle: {
		defining("length", UnitLength, Positive),
		defining("width", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
		def("diagonal", UnitLength, Positive),
		def("aspect_ratio", UnitRatio, Positive),
	},
	FamilyRegularPolygon: {
		defining("sides", UnitCount, Positive),
		defining("side_length", UnitLength, Positive),
		def("perimeter", UnitLength, Positive),
		def("apothem", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("circumradius", UnitLength, Positive),
		def("interior_angle", UnitAngle, Angle0to180),
		def("exterior_angle", UnitAngle, Angle0to180),
	},
	FamilyTriangle: {
		defining("side_a", UnitLength, Positive),
		defining("side_b", UnitLength, Positive),
		defining("side_c", UnitLength, Positive),
		def("angle_a", UnitAngle, Angle0to180),
		def("angle_b", UnitAngle, Angle0to180),
		def("angle_c", UnitAngle, Angle0to180),
		def("perimeter", UnitLength, Positive),
		def("semiperimeter", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("inradius", UnitLength, Positive),
		def("circumradius", UnitLength, Positive),
	},
	FamilyRightTriangle: {
		defining("leg_a", UnitLength, Positive),
		defining("leg_b", UnitLength, Positive),
		def("hypotenuse", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
		def("angle_a", UnitAngle, Angle0to180),
		def("angle_b", UnitAngle, Angle0to180),
	},
	FamilyIsoscelesTriangle: {
		defining("leg", UnitLength, Positive),
		defining("base", UnitLength, Positive),
		def("height", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
		def("apex_angle", UnitAngle, Angle0to180),
		def("base_angle", UnitAngle, Angle0to180),
	},
	FamilyEquilateralTriangle: {
		defining("side", UnitLength, Positive),
		def("height", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
		def("inradius", UnitLength, Positive),
		def("circumradius", UnitLength, Positive),
	},
	FamilyTriangle306090: {
		defining("short_leg", UnitLength, Positive),
		def("long_leg", UnitLength, Positive),
		def("hypotenuse", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
	},
	FamilyTriangle454590: {
		defining("leg", UnitLength, Positive),
		def("hypotenuse", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
	},
	FamilyParallelogram: {
		defining("base", UnitLength, Positive),
		defining("side", UnitLength, Positive),
		defining("angle", UnitAngle, Angle0to180),
		def("height", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
		def("diagonal_p", UnitLength, Positive),
		def("diagonal_q", UnitLength, Positive),
	},
	FamilyRhombus: {
		defining("side", UnitLength, Positive),
		defining("angle", UnitAngle, Angle0to180),
		def("height", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
		def("diagonal_p", UnitLength, Positive),
		def("diagonal_q", UnitLength, Positive),
		def("inradius", UnitLength, Positive),
	},
	FamilyTrapezoid: {
		defining("base_a", UnitLength, Positive),
		defining("base_b", UnitLength, Positive),
		defining("height", UnitLength, Positive),
		def("leg", UnitLength, Positive),
		def("median", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
	},
	FamilyKite: {
		defining("side_a", UnitLength, Positive),
		defining("side_b", UnitLength, Positive),
		defining("diagonal_q", UnitLength, Positive),
		def("diagonal_p", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("perimeter", UnitLength, Positive),
	},
	FamilyCyclicQuadrilateral: {
		defining("side_a", UnitLength, Positive),
		defining("side_b", UnitLength, Positive),
		defining("side_c", UnitLength, Positive),
		defining("side_d", UnitLength, Positive),
		def("perimeter", UnitLength, Positive),
		def("semiperimeter", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("circumradius", UnitLength, Positive),
		def("angle_a", UnitAngle, Angle0to180),
		def("angle_b", UnitAngle, Angle0to180),
		def("angle_c", UnitAngle, Angle0to180),
		def("angle_d", UnitAngle, Angle0to180),
	},
	FamilyTangentialQuadrilateral: {
		defining("side_a", UnitLength, Positive),
		defining("side_b", UnitLength, Positive),
		defining("side_c", UnitLength, Positive),
		defining("inradius", UnitLength, Positive),
		def("side_d", UnitLength, Positive),
		def("perimeter", UnitLength, Positive),
		def("semiperimeter", UnitLength, Positive),
		def("area", UnitArea, Positive),
	},
	FamilyBicentricQuadrilateral: {
		defining("side_a", UnitLength, Positive),
		defining("side_b", UnitLength, Positive),
		defining("side_c", UnitLength, Positive),
		def("side_d", UnitLength, Positive),
		def("perimeter", UnitLength, Positive),
		def("semiperimeter", UnitLength, Positive),
		def("area", UnitArea, Positive),
		def("inradius", UnitLength, Positive),
		def("circumradius", UnitLength, Positive),
	},
	FamilyRectangularPrism: {
		defining("length", UnitLength, Positive),
		defining("width", UnitLength, Positive),
		defining("height", UnitLength, Positive),
		def("base_area", UnitArea, Positive),
		def("lateral_area", UnitArea, Positive),
		def("surface_area", UnitArea, Positive),
		def("volume", UnitVolume, Positive),
		def("space_diagonal", UnitLength, Positive),
	},
	FamilyRegularPrism: {
		defining("sides", UnitCount, Positive),
		defining("base_edge", UnitLength, Positive),
		defining("height", UnitLength, Positive),
		def("apothem", UnitLength, Positive),
		def("base_perimeter", UnitLength, Positive),
		def("base_area", UnitArea, Positive),
		def("lateral_area", UnitArea, Positive),
		def("surface_area", UnitArea, Positive),
		def("volume", UnitVolume, Positive),
	},
	FamilyObliquePrism: {
		defining("sides", UnitCount, Positive),
		defining("base_edge", UnitLength, Positive),
		defining("height", UnitLength, Positive),
		defining("lean_angle", UnitAngle, Angle0to180),
		def("lateral_edge", UnitLength, Positive),
		def("base_area", UnitArea, Positive),
		def("lateral_area", UnitArea, Positive),
		def("surface_area", UnitArea, Positive),
		def("volume", UnitVolume, Positive),
	},
	FamilyPyramid: {
		defining("sides", UnitCount, Positive),
		defining("base_edge", UnitLength, Positive),
		defining("height", UnitLength, Positive),
		def("apothem", UnitLength, Positive),
		def("slant_height", UnitLength, Positive),
		def("lateral_edge", UnitLength, Positive),
		def("base_area", UnitArea, Positive),
		def("lateral_area", UnitArea, Positive),
		def("surface_area", UnitArea, Positive),
		def("volume", UnitVolume, Positive),
	},
	FamilyFrustum: {
		defining("sides", UnitCount, Positive),
		defining("base_edge", UnitLength, Positive),
		defining("top_edge", UnitLength, Positive),
		defining("height", UnitLength, Positive),
		def("slant_height", UnitLength, Positive),
		def("base_area", UnitArea, Positive),
		def("top_area", UnitArea, Positive),
		def("lateral_area", UnitArea, Positive),
		def("surface_area", UnitArea, Positive),
		def("volume", UnitVolume, Positive),
	},
	FamilyAntiprism: {
		defining("sides", UnitCount, Positive),
		defining("edge_length", UnitLength, Positive),
		defining("height", UnitLength, Positive),
		def("base_area", UnitArea, Positive),
		def("lateral_area", UnitArea, Positive),
		def("surface_area", UnitArea, Positive),
		def("volume", UnitVolume, Positive),
	},
	FamilyTetrahedron:           platonicDefs,
	FamilyCube:                  platonicDefs,
	FamilyOctahedron:            platonicDefs,
	FamilyDodecahedron:          platonicDefs,
	FamilyIcosahedron:           platonicDefs,
	FamilyTruncatedTetrahedron:  uniformPolyhedronDefs,
	FamilyCuboctahedron:         uniformPolyhedronDefs,
	FamilyTruncatedCube:         uniformPolyhedronDefs,
	FamilyTruncatedOctahedron:   uniformPolyhedronDefs,
	FamilyRhombicuboctahedron:   uniformPolyhedronDefs,
	FamilyIcosidodecahedron:     uniformPolyhedronDefs,
	FamilyTruncatedIcosahedron:  uniformPolyhedronDefs,
	FamilyTerracedSolid: {
		defining("tiers", UnitCount, Positive),
		defining("base_edge", UnitLength, Positive),
		defining("top_edge", UnitLength, Positive),
		defining("tier_height", UnitLength, Positive),
		def("total_height", UnitLength, Positive),
		def("volume", UnitVolume, Positive),
		def("surface_area", UnitArea, Positive),
	},
}

// RegistryFor returns the ordered property declarations for a family. The
// returned slice is shared compiled-in data; callers must not modify it.
// Panics on an unknown family, which is a programmer error.
func RegistryFor(f Family) []PropertyDef {
	defs, ok := registry[f]
	if !ok {
		panic("gogeometry: unknown family")
	}
	return defs
}

// PropertyDefFor returns the declaration of one named property.
func PropertyDefFor(f Family, name string) (PropertyDef, bool) {
	for _, d := range RegistryFor(f) {
		if d.Name == name {
			return d, true
		}
	}
	return PropertyDef{}, false
}

// DegreesOfFreedom returns the number of independent values that uniquely
// determine the family's geometry.
func DegreesOfFreedom(f Family) int {
	n := 0
	for _, d := range RegistryFor(f) {
		if d.Defining {
			n++
		}
	}
	return n
}

// checkConstraint validates a single value against its declared constraint.
func checkConstraint(f Family, d PropertyDef, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domainErr(f, d.Name, "value must be finite")
	}
	switch d.Constraint {
	case Positive:
		if v <= 0 {
			return domainErr(f, d.Name, "must be > 0")
		}
	case NonNegative:
		if v < 0 {
			return domainErr(f, d.Name, "must be >= 0")
		}
	case Angle0to180:
		if v <= 0 || v >= 180 {
			return domainErr(f, d.Name, "must be in (0, 180) degrees")
		}
	case Angle0to360:
		if v <= 0 || v >= 360 {
			return domainErr(f, d.Name, "must be in (0, 360) degrees")
		}
	case Probability0to1:
		if v < 0 || v > 1 {
			return domainErr(f, d.Name, "must be in [0, 1]")
		}
	}
	if d.Unit == UnitCount && !isCount(v) {
		return domainErr(f, d.Name, "must be a whole number")
	}
	return nil
}
