package gogeometry

import "math"

// Solid families. Scalar metrics are resolved here; the mesh synthesizer
// builds vertex geometry from the resolved snapshot and cross-checks these
// numbers independently.

// Regular n-gon helpers shared by the prismatic families.
func ngonArea(n, edge float64) float64 {
	return n * edge * edge / (4 * math.Tan(math.Pi/n))
}

func ngonApothem(n, edge float64) float64 {
	return edge / (2 * math.Tan(math.Pi/n))
}

func ngonCircumradius(n, edge float64) float64 {
	return edge / (2 * math.Sin(math.Pi/n))
}

func checkSides(f Family, n float64) error {
	if !isCount(n) || n < 3 {
		return domainErr(f, "sides", "must be a whole number of at least 3")
	}
	return nil
}

func buildRectangularPrism(l, w, h float64) (*Snapshot, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{{"length", l}, {"width", w}, {"height", h}} {
		if p.v <= 0 {
			return nil, domainErr(FamilyRectangularPrism, p.name, "must be > 0")
		}
	}
	s := newSnapshot(FamilyRectangularPrism)
	s.put("length", l)
	s.put("width", w)
	s.put("height", h)
	s.put("base_area", l*w)
	s.put("lateral_area", 2*(l+w)*h)
	s.put("surface_area", 2*(l*w+l*h+w*h))
	s.put("volume", l*w*h)
	s.put("space_diagonal", math.Sqrt(l*l+w*w+h*h))
	s.markValid()
	return s, nil
}

func solveRectangularPrism(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	l := prev.val("length")
	w := prev.val("width")
	h := prev.val("height")
	switch name {
	case "length":
		l = v
	case "width":
		w = v
	case "height":
		h = v
	case "base_area":
		w = v / l
	case "lateral_area":
		h = v / (2 * (l + w))
	case "surface_area":
		h = (v - 2*l*w) / (2 * (l + w))
		if h <= 0 {
			return nil, impossibleErr(FamilyRectangularPrism, "surface area too small for the pinned base")
		}
	case "volume":
		h = v / (l * w)
	case "space_diagonal":
		if v*v <= l*l+w*w {
			return nil, impossibleErr(FamilyRectangularPrism, "space diagonal too short for the pinned base")
		}
		h = math.Sqrt(v*v - l*l - w*w)
	}
	return buildRectangularPrism(l, w, h)
}

func buildRegularPrism(n, edge, h float64) (*Snapshot, error) {
	if err := checkSides(FamilyRegularPrism, n); err != nil {
		return nil, err
	}
	if edge <= 0 {
		return nil, domainErr(FamilyRegularPrism, "base_edge", "must be > 0")
	}
	if h <= 0 {
		return nil, domainErr(FamilyRegularPrism, "height", "must be > 0")
	}
	base := ngonArea(n, edge)
	s := newSnapshot(FamilyRegularPrism)
	s.put("sides", n)
	s.put("base_edge", edge)
	s.put("height", h)
	s.put("apothem", ngonApothem(n, edge))
	s.put("base_perimeter", n*edge)
	s.put("base_area", base)
	s.put("lateral_area", n*edge*h)
	s.put("surface_area", 2*base+n*edge*h)
	s.put("volume", base*h)
	s.markValid()
	return s, nil
}

func solveRegularPrism(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	n := prev.val("sides")
	edge := prev.val("base_edge")
	h := prev.val("height")
	switch name {
	case "sides":
		n = v
	case "base_edge":
		edge = v
	case "height":
		h = v
	case "apothem":
		edge = 2 * v * math.Tan(math.Pi/n)
	case "base_perimeter":
		edge = v / n
	case "base_area":
		edge = math.Sqrt(4 * v * math.Tan(math.Pi/n) / n)
	case "lateral_area":
		h = v / (n * edge)
	case "surface_area":
		h = (v - 2*ngonArea(n, edge)) / (n * edge)
		if h <= 0 {
			return nil, impossibleErr(FamilyRegularPrism, "surface area too small for the pinned base")
		}
	case "volume":
		h = v / ngonArea(n, edge)
	}
	return buildRegularPrism(n, edge, h)
}

// obliqueLateralArea sums the parallelogram face areas of an n-gonal prism
// whose lateral translation leans by the given angle toward +x. The faces are
// not congruent, so the sum runs over the actual base ring.
func obliqueLateralArea(n, edge, h, leanDeg float64) float64 {
	r := ngonCircumradius(n, edge)
	shear := h * math.Tan(Radians(leanDeg))
	total := 0.0
	for i := 0; i < int(n); i++ {
		a0 := 2 * math.Pi * float64(i) / n
		a1 := 2 * math.Pi * float64(i+1) / n
		ex := r * (math.Cos(a1) - math.Cos(a0))
		ey := r * (math.Sin(a1) - math.Sin(a0))
		// |edge x (shear, 0, h)| with edge = (ex, ey, 0)
		cx := ey * h
		cy := -ex * h
		cz := -ey * shear
		total += math.Sqrt(cx*cx + cy*cy + cz*cz)
	}
	return total
}

func buildObliquePrism(n, edge, h, lean float64) (*Snapshot, error) {
	if err := checkSides(FamilyObliquePrism, n); err != nil {
		return nil, err
	}
	if edge <= 0 {
		return nil, domainErr(FamilyObliquePrism, "base_edge", "must be > 0")
	}
	if h <= 0 {
		return nil, domainErr(FamilyObliquePrism, "height", "must be > 0")
	}
	if lean <= 0 || lean >= 90 {
		return nil, domainErr(FamilyObliquePrism, "lean_angle", "must be in (0, 90) degrees")
	}
	base := ngonArea(n, edge)
	lat := obliqueLateralArea(n, edge, h, lean)
	s := newSnapshot(FamilyObliquePrism)
	s.put("sides", n)
	s.put("base_edge", edge)
	s.put("height", h)
	s.put("lean_angle", lean)
	s.put("lateral_edge", h/math.Cos(Radians(lean)))
	s.put("base_area", base)
	s.put("lateral_area", lat)
	s.put("surface_area", 2*base+lat)
	// The oblique volume equals base area times vertical height (Cavalieri).
	s.put("volume", base*h)
	s.markValid()
	return s, nil
}

func solveObliquePrism(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	n := prev.val("sides")
	edge := prev.val("base_edge")
	h := prev.val("height")
	lean := prev.val("lean_angle")
	switch name {
	case "sides":
		n = v
	case "base_edge":
		edge = v
	case "height":
		h = v
	case "lean_angle":
		lean = v
	case "lateral_edge":
		if v <= h {
			return nil, impossibleErr(FamilyObliquePrism, "lateral edge must exceed the vertical height")
		}
		lean = Degrees(math.Acos(h / v))
	case "base_area":
		edge = math.Sqrt(4 * v * math.Tan(math.Pi/n) / n)
	case "lateral_area":
		// Lateral area scales linearly with height at fixed lean.
		h = h * v / prev.val("lateral_area")
	case "surface_area":
		lat := v - 2*ngonArea(n, edge)
		if lat <= 0 {
			return nil, impossibleErr(FamilyObliquePrism, "surface area too small for the pinned base")
		}
		h = h * lat / prev.val("lateral_area")
	case "volume":
		h = v / ngonArea(n, edge)
	}
	return buildObliquePrism(n, edge, h, lean)
}

func buildPyramid(n, edge, h float64) (*Snapshot, error) {
	if err := checkSides(FamilyPyramid, n); err != nil {
		return nil, err
	}
	if edge <= 0 {
		return nil, domainErr(FamilyPyramid, "base_edge", "must be > 0")
	}
	if h <= 0 {
		return nil, domainErr(FamilyPyramid, "height", "must be > 0")
	}
	ap := ngonApothem(n, edge)
	r := ngonCircumradius(n, edge)
	base := ngonArea(n, edge)
	slant := math.Hypot(h, ap)
	lat := n * edge * slant / 2
	s := newSnapshot(FamilyPyramid)
	s.put("sides", n)
	s.put("base_edge", edge)
	s.put("height", h)
	s.put("apothem", ap)
	s.put("slant_height", slant)
	s.put("lateral_edge", math.Hypot(h, r))
	s.put("base_area", base)
	s.put("lateral_area", lat)
	s.put("surface_area", base+lat)
	s.put("volume", base*h/3)
	s.markValid()
	return s, nil
}

func solvePyramid(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	n := prev.val("sides")
	edge := prev.val("base_edge")
	h := prev.val("height")
	switch name {
	case "sides":
		n = v
	case "base_edge":
		edge = v
	case "height":
		h = v
	case "apothem":
		edge = 2 * v * math.Tan(math.Pi/n)
	case "slant_height":
		ap := ngonApothem(n, edge)
		if v <= ap {
			return nil, impossibleErr(FamilyPyramid, "slant height must exceed the base apothem")
		}
		h = math.Sqrt(v*v - ap*ap)
	case "lateral_edge":
		r := ngonCircumradius(n, edge)
		if v <= r {
			return nil, impossibleErr(FamilyPyramid, "lateral edge must exceed the base circumradius")
		}
		h = math.Sqrt(v*v - r*r)
	case "base_area":
		edge = math.Sqrt(4 * v * math.Tan(math.Pi/n) / n)
	case "lateral_area":
		slant := 2 * v / (n * edge)
		ap := ngonApothem(n, edge)
		if slant <= ap {
			return nil, impossibleErr(FamilyPyramid, "lateral area too small for the pinned base")
		}
		h = math.Sqrt(slant*slant - ap*ap)
	case "surface_area":
		lat := v - ngonArea(n, edge)
		if lat <= 0 {
			return nil, impossibleErr(FamilyPyramid, "surface area too small for the pinned base")
		}
		slant := 2 * lat / (n * edge)
		ap := ngonApothem(n, edge)
		if slant <= ap {
			return nil, impossibleErr(FamilyPyramid, "surface area too small for the pinned base")
		}
		h = math.Sqrt(slant*slant - ap*ap)
	case "volume":
		h = 3 * v / ngonArea(n, edge)
	}
	return buildPyramid(n, edge, h)
}

func buildFrustum(n, baseEdge, topEdge, h float64) (*Snapshot, error) {
	if err := checkSides(FamilyFrustum, n); err != nil {
		return nil, err
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"base_edge", baseEdge}, {"top_edge", topEdge}, {"height", h}} {
		if p.v <= 0 {
			return nil, domainErr(FamilyFrustum, p.name, "must be > 0")
		}
	}
	if topEdge >= baseEdge {
		return nil, impossibleErr(FamilyFrustum, "top edge must be shorter than the base edge")
	}
	a1 := ngonApothem(n, baseEdge)
	a2 := ngonApothem(n, topEdge)
	baseArea := ngonArea(n, baseEdge)
	topArea := ngonArea(n, topEdge)
	slant := math.Hypot(h, a1-a2)
	lat := n * (baseEdge + topEdge) / 2 * slant
	s := newSnapshot(FamilyFrustum)
	s.put("sides", n)
	s.put("base_edge", baseEdge)
	s.put("top_edge", topEdge)
	s.put("height", h)
	s.put("slant_height", slant)
	s.put("base_area", baseArea)
	s.put("top_area", topArea)
	s.put("lateral_area", lat)
	s.put("surface_area", baseArea+topArea+lat)
	// Prismatoid volume.
	s.put("volume", h/3*(baseArea+topArea+math.Sqrt(baseArea*topArea)))
	s.markValid()
	return s, nil
}

func solveFrustum(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	n := prev.val("sides")
	baseEdge := prev.val("base_edge")
	topEdge := prev.val("top_edge")
	h := prev.val("height")
	switch name {
	case "sides":
		n = v
	case "base_edge":
		baseEdge = v
	case "top_edge":
		topEdge = v
	case "height":
		h = v
	case "slant_height":
		da := ngonApothem(n, baseEdge) - ngonApothem(n, topEdge)
		if v <= da {
			return nil, impossibleErr(FamilyFrustum, "slant height too short for the pinned rings")
		}
		h = math.Sqrt(v*v - da*da)
	case "base_area":
		baseEdge = math.Sqrt(4 * v * math.Tan(math.Pi/n) / n)
	case "top_area":
		topEdge = math.Sqrt(4 * v * math.Tan(math.Pi/n) / n)
	case "lateral_area":
		slant := 2 * v / (n * (baseEdge + topEdge))
		da := ngonApothem(n, baseEdge) - ngonApothem(n, topEdge)
		if slant <= da {
			return nil, impossibleErr(FamilyFrustum, "lateral area too small for the pinned rings")
		}
		h = math.Sqrt(slant*slant - da*da)
	case "surface_area":
		lat := v - ngonArea(n, baseEdge) - ngonArea(n, topEdge)
		if lat <= 0 {
			return nil, impossibleErr(FamilyFrustum, "surface area too small for the pinned rings")
		}
		slant := 2 * lat / (n * (baseEdge + topEdge))
		da := ngonApothem(n, baseEdge) - ngonApothem(n, topEdge)
		if slant <= da {
			return nil, impossibleErr(FamilyFrustum, "surface area too small for the pinned rings")
		}
		h = math.Sqrt(slant*slant - da*da)
	case "volume":
		baseArea := ngonArea(n, baseEdge)
		topArea := ngonArea(n, topEdge)
		h = 3 * v / (baseArea + topArea + math.Sqrt(baseArea*topArea))
	}
	return buildFrustum(n, baseEdge, topEdge, h)
}

// antiprismMidArea is the cross-sectional area of an n-gonal antiprism at
// half height: the 2n-gon through the midpoints of the zig-zag lateral edges.
// It depends only on the ring geometry, which makes the volume linear in
// height via Simpson's rule (cross-section area is quadratic in z).
func antiprismMidArea(n, r float64) float64 {
	m := 2 * int(n)
	area := 0.0
	pt := func(i int) (float64, float64) {
		// Even indices: midpoint of bottom vertex i/2 and top vertex i/2;
		// odd: midpoint of top vertex (i-1)/2 and bottom vertex (i+1)/2.
		var a0, a1 float64
		if i%2 == 0 {
			a0 = 2 * math.Pi * float64(i/2) / n
			a1 = 2 * math.Pi * (float64(i/2) + 0.5) / n
		} else {
			a0 = 2 * math.Pi * (float64((i-1)/2) + 0.5) / n
			a1 = 2 * math.Pi * float64((i+1)/2) / n
		}
		return r / 2 * (math.Cos(a0) + math.Cos(a1)), r / 2 * (math.Sin(a0) + math.Sin(a1))
	}
	for i := 0; i < m; i++ {
		x0, y0 := pt(i)
		x1, y1 := pt((i + 1) % m)
		area += x0*y1 - x1*y0
	}
	return math.Abs(area) / 2
}

func buildAntiprism(n, edge, h float64) (*Snapshot, error) {
	if err := checkSides(FamilyAntiprism, n); err != nil {
		return nil, err
	}
	if edge <= 0 {
		return nil, domainErr(FamilyAntiprism, "edge_length", "must be > 0")
	}
	if h <= 0 {
		return nil, domainErr(FamilyAntiprism, "height", "must be > 0")
	}
	r := ngonCircumradius(n, edge)
	ap := ngonApothem(n, edge)
	cap := ngonArea(n, edge)
	// Each of the 2n lateral triangles stands on a ring edge with its apex on
	// the other ring, offset half a step; its height spans the gap.
	triHeight := math.Sqrt(h*h + (r-ap)*(r-ap))
	lat := n * edge * triHeight
	s := newSnapshot(FamilyAntiprism)
	s.put("sides", n)
	s.put("edge_length", edge)
	s.put("height", h)
	s.put("base_area", cap)
	s.put("lateral_area", lat)
	s.put("surface_area", 2*cap+lat)
	s.put("volume", h/6*(2*cap+4*antiprismMidArea(n, r)))
	s.markValid()
	return s, nil
}

func solveAntiprism(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	n := prev.val("sides")
	edge := prev.val("edge_length")
	h := prev.val("height")
	gap := func() float64 {
		return ngonCircumradius(n, edge) - ngonApothem(n, edge)
	}
	switch name {
	case "sides":
		n = v
	case "edge_length":
		edge = v
	case "height":
		h = v
	case "base_area":
		edge = math.Sqrt(4 * v * math.Tan(math.Pi/n) / n)
	case "lateral_area":
		triHeight := v / (n * edge)
		g := gap()
		if triHeight <= g {
			return nil, impossibleErr(FamilyAntiprism, "lateral area too small for the pinned rings")
		}
		h = math.Sqrt(triHeight*triHeight - g*g)
	case "surface_area":
		lat := v - 2*ngonArea(n, edge)
		if lat <= 0 {
			return nil, impossibleErr(FamilyAntiprism, "surface area too small for the pinned rings")
		}
		triHeight := lat / (n * edge)
		g := gap()
		if triHeight <= g {
			return nil, impossibleErr(FamilyAntiprism, "surface area too small for the pinned rings")
		}
		h = math.Sqrt(triHeight*triHeight - g*g)
	case "volume":
		cap := ngonArea(n, edge)
		mid := antiprismMidArea(n, ngonCircumradius(n, edge))
		h = 3 * v / (cap + 2*mid)
	}
	return buildAntiprism(n, edge, h)
}

// uniformCoeffs holds the unit-edge surface and volume coefficients of the
// fixed-template polyhedra: surface = cs*a^2, volume = cv*a^3.
type uniformCoeffs struct {
	cs, cv float64
}

var sqrt5 = math.Sqrt(5)

var uniformCoeffTable = map[Family]uniformCoeffs{
	FamilyTetrahedron:          {cs: math.Sqrt(3), cv: math.Sqrt2 / 12},
	FamilyCube:                 {cs: 6, cv: 1},
	FamilyOctahedron:           {cs: 2 * math.Sqrt(3), cv: math.Sqrt2 / 3},
	FamilyDodecahedron:         {cs: 3 * math.Sqrt(25+10*sqrt5), cv: (15 + 7*sqrt5) / 4},
	FamilyIcosahedron:          {cs: 5 * math.Sqrt(3), cv: 5 * (3 + sqrt5) / 12},
	FamilyTruncatedTetrahedron: {cs: 7 * math.Sqrt(3), cv: 23 * math.Sqrt2 / 12},
	FamilyCuboctahedron:        {cs: 6 + 2*math.Sqrt(3), cv: 5 * math.Sqrt2 / 3},
	FamilyTruncatedCube:        {cs: 2 * (6 + 6*math.Sqrt2 + math.Sqrt(3)), cv: (21 + 14*math.Sqrt2) / 3},
	FamilyTruncatedOctahedron:  {cs: 6 + 12*math.Sqrt(3), cv: 8 * math.Sqrt2},
	FamilyRhombicuboctahedron:  {cs: 18 + 2*math.Sqrt(3), cv: (12 + 10*math.Sqrt2) / 3},
	FamilyIcosidodecahedron:    {cs: 5*math.Sqrt(3) + 3*math.Sqrt(25+10*sqrt5), cv: (45 + 17*sqrt5) / 6},
	FamilyTruncatedIcosahedron: {cs: 30*math.Sqrt(3) + 3*math.Sqrt(25+10*sqrt5), cv: (125 + 43*sqrt5) / 4},
}

func buildUniformPolyhedron(f Family, edge float64) (*Snapshot, error) {
	if edge <= 0 {
		return nil, domainErr(f, "edge_length", "must be > 0")
	}
	co := uniformCoeffTable[f]
	s := newSnapshot(f)
	s.put("edge_length", edge)
	s.put("surface_area", co.cs*edge*edge)
	s.put("volume", co.cv*edge*edge*edge)
	s.put("circumradius", uniformCircumradiusCoeff(f)*edge)
	if _, ok := s.props["inradius"]; ok {
		// Platonic solids have an insphere tangent to every face: r = 3V/S.
		s.put("inradius", 3*co.cv/co.cs*edge)
	}
	s.markValid()
	return s, nil
}

func solveUniformPolyhedron(f Family, name string, v float64, _ *Snapshot) (*Snapshot, error) {
	co := uniformCoeffTable[f]
	var edge float64
	switch name {
	case "edge_length":
		edge = v
	case "surface_area":
		edge = math.Sqrt(v / co.cs)
	case "volume":
		edge = math.Cbrt(v / co.cv)
	case "circumradius":
		edge = v / uniformCircumradiusCoeff(f)
	case "inradius":
		edge = v * co.cs / (3 * co.cv)
	}
	return buildUniformPolyhedron(f, edge)
}

func buildTerracedSolid(tiers, baseEdge, topEdge, tierHeight float64) (*Snapshot, error) {
	if !isCount(tiers) || tiers < 2 {
		return nil, domainErr(FamilyTerracedSolid, "tiers", "must be a whole number of at least 2")
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"base_edge", baseEdge}, {"top_edge", topEdge}, {"tier_height", tierHeight}} {
		if p.v <= 0 {
			return nil, domainErr(FamilyTerracedSolid, p.name, "must be > 0")
		}
	}
	if topEdge >= baseEdge {
		return nil, impossibleErr(FamilyTerracedSolid, "top edge must be shorter than the base edge")
	}
	k := int(tiers)
	volume := 0.0
	lateral := 0.0
	for i := 0; i < k; i++ {
		e := terraceEdge(baseEdge, topEdge, k, i)
		volume += e * e * tierHeight
		lateral += 4 * e * tierHeight
	}
	s := newSnapshot(FamilyTerracedSolid)
	s.put("tiers", tiers)
	s.put("base_edge", baseEdge)
	s.put("top_edge", topEdge)
	s.put("tier_height", tierHeight)
	s.put("total_height", tiers*tierHeight)
	s.put("volume", volume)
	// Up-facing terrace rings plus the top cap telescope to the footprint.
	s.put("surface_area", 2*baseEdge*baseEdge+lateral)
	s.markValid()
	return s, nil
}

// terraceEdge interpolates the square edge of tier i (0-based, bottom first).
func terraceEdge(baseEdge, topEdge float64, tiers, i int) float64 {
	return baseEdge + (topEdge-baseEdge)*float64(i)/float64(tiers-1)
}

func solveTerracedSolid(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	tiers := prev.val("tiers")
	baseEdge := prev.val("base_edge")
	topEdge := prev.val("top_edge")
	tierHeight := prev.val("tier_height")
	switch name {
	case "tiers":
		tiers = v
	case "base_edge":
		baseEdge = v
	case "top_edge":
		topEdge = v
	case "tier_height":
		tierHeight = v
	case "total_height":
		tierHeight = v / tiers
	case "volume":
		sum := 0.0
		for i := 0; i < int(tiers); i++ {
			e := terraceEdge(baseEdge, topEdge, int(tiers), i)
			sum += e * e
		}
		tierHeight = v / sum
	case "surface_area":
		lat := v - 2*baseEdge*baseEdge
		if lat <= 0 {
			return nil, impossibleErr(FamilyTerracedSolid, "surface area too small for the pinned footprint")
		}
		sum := 0.0
		for i := 0; i < int(tiers); i++ {
			sum += 4 * terraceEdge(baseEdge, topEdge, int(tiers), i)
		}
		tierHeight = lat / sum
	}
	return buildTerracedSolid(tiers, baseEdge, topEdge, tierHeight)
}
