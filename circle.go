package gogeometry

import "math"

// Circular plane figures: circle, ellipse, annulus, crescent (lune), vesica
// piscis. Each build function derives the complete property set from the
// family's defining parameters; each solve function inverts whichever relation
// the edited property participates in and forward-substitutes into the rest.

func buildCircle(r float64) (*Snapshot, error) {
	if r <= 0 {
		return nil, domainErr(FamilyCircle, "radius", "must be > 0")
	}
	s := newSnapshot(FamilyCircle)
	s.put("radius", r)
	s.put("diameter", 2*r)
	s.put("circumference", 2*math.Pi*r)
	s.put("area", math.Pi*r*r)
	s.markValid()
	return s, nil
}

func solveCircle(name string, v float64, _ *Snapshot) (*Snapshot, error) {
	var r float64
	switch name {
	case "radius":
		r = v
	case "diameter":
		r = v / 2
	case "circumference":
		r = v / (2 * math.Pi)
	case "area":
		r = math.Sqrt(v / math.Pi)
	}
	return buildCircle(r)
}

func buildEllipse(a, b float64) (*Snapshot, error) {
	if a <= 0 || b <= 0 {
		return nil, domainErr(FamilyEllipse, "semi_minor", "must be > 0")
	}
	if a < b && !approxEqual(a, b) {
		return nil, impossibleErr(FamilyEllipse, "semi-major axis must be at least the semi-minor axis")
	}
	s := newSnapshot(FamilyEllipse)
	s.put("semi_major", a)
	s.put("semi_minor", b)
	s.put("area", math.Pi*a*b)
	s.put("circumference", ellipseCircumference(a, b))
	c := math.Sqrt(math.Max(a*a-b*b, 0))
	s.put("eccentricity", c/a)
	s.put("focal_distance", c)
	s.markValid()
	return s, nil
}

// ellipseCircumference uses Ramanujan's second approximation, accurate to
// well below the package tolerance for any eccentricity a closed ellipse
// admits.
func ellipseCircumference(a, b float64) float64 {
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

func solveEllipse(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	a := prev.val("semi_major")
	b := prev.val("semi_minor")
	switch name {
	case "semi_major":
		a = v
	case "semi_minor":
		b = v
	case "area":
		b = v / (math.Pi * a)
	case "eccentricity":
		if approxEqual(v, 1) || v > 1 {
			return nil, impossibleErr(FamilyEllipse, "eccentricity 1 degenerates the ellipse")
		}
		b = a * math.Sqrt(1-v*v)
	case "focal_distance":
		if v >= a {
			return nil, impossibleErr(FamilyEllipse, "focal distance must be less than the semi-major axis")
		}
		b = math.Sqrt(a*a - v*v)
	case "circumference":
		// No closed-form inverse exists; rescale the current shape uniformly.
		k := v / prev.val("circumference")
		a *= k
		b *= k
	}
	return buildEllipse(a, b)
}

func buildAnnulus(outer, inner float64) (*Snapshot, error) {
	if outer <= 0 || inner <= 0 {
		return nil, domainErr(FamilyAnnulus, "inner_radius", "must be > 0")
	}
	if outer <= inner {
		return nil, impossibleErr(FamilyAnnulus, "outer radius must exceed inner radius")
	}
	s := newSnapshot(FamilyAnnulus)
	s.put("outer_radius", outer)
	s.put("inner_radius", inner)
	s.put("width", outer-inner)
	s.put("area", math.Pi*(outer*outer-inner*inner))
	s.put("outer_circumference", 2*math.Pi*outer)
	s.put("inner_circumference", 2*math.Pi*inner)
	s.markValid()
	return s, nil
}

func solveAnnulus(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	outer := prev.val("outer_radius")
	inner := prev.val("inner_radius")
	switch name {
	case "outer_radius":
		outer = v
	case "inner_radius":
		inner = v
	case "width":
		outer = inner + v
	case "area":
		outer = math.Sqrt(v/math.Pi + inner*inner)
	case "outer_circumference":
		outer = v / (2 * math.Pi)
	case "inner_circumference":
		inner = v / (2 * math.Pi)
	}
	return buildAnnulus(outer, inner)
}

// lensArea is the area of intersection of two circles with radii rr and rl
// whose centers sit d apart. Callers guarantee the circles intersect.
func lensArea(rl, rr, d float64) float64 {
	t1 := (d*d + rl*rl - rr*rr) / (2 * d * rl)
	t2 := (d*d + rr*rr - rl*rl) / (2 * d * rr)
	t1 = math.Max(-1, math.Min(1, t1))
	t2 = math.Max(-1, math.Min(1, t2))
	k := (-d + rl + rr) * (d + rl - rr) * (d - rl + rr) * (d + rl + rr)
	return rl*rl*math.Acos(t1) + rr*rr*math.Acos(t2) - 0.5*math.Sqrt(math.Max(k, 0))
}

func buildCrescent(outer, inner, dist float64) (*Snapshot, error) {
	if outer <= 0 || inner <= 0 || dist <= 0 {
		return nil, domainErr(FamilyCrescent, "center_distance", "must be > 0")
	}
	// The two defining circles must genuinely intersect; otherwise no lune
	// exists (disjoint or one contained in the other).
	if dist >= outer+inner || dist <= math.Abs(outer-inner) {
		return nil, impossibleErr(FamilyCrescent, "defining circles do not intersect")
	}
	lens := lensArea(outer, inner, dist)
	s := newSnapshot(FamilyCrescent)
	s.put("outer_radius", outer)
	s.put("inner_radius", inner)
	s.put("center_distance", dist)
	s.put("lens_area", lens)
	s.put("area", math.Pi*outer*outer-lens)
	s.markValid()
	return s, nil
}

func solveCrescent(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	outer := prev.val("outer_radius")
	inner := prev.val("inner_radius")
	dist := prev.val("center_distance")
	switch name {
	case "outer_radius":
		outer = v
	case "inner_radius":
		inner = v
	case "center_distance":
		dist = v
	case "area", "lens_area":
		// Areas have no closed-form inverse in a single defining parameter;
		// rescale the configuration uniformly (areas scale quadratically).
		k := math.Sqrt(v / prev.val(name))
		outer *= k
		inner *= k
		dist *= k
	}
	return buildCrescent(outer, inner, dist)
}

// vesicaAreaCoeff is the lens area of a unit-radius vesica piscis:
// two unit circles whose centers sit one radius apart.
var vesicaAreaCoeff = 2*math.Pi/3 - math.Sqrt(3)/2

func buildVesicaPiscis(r float64) (*Snapshot, error) {
	if r <= 0 {
		return nil, domainErr(FamilyVesicaPiscis, "radius", "must be > 0")
	}
	s := newSnapshot(FamilyVesicaPiscis)
	s.put("radius", r)
	s.put("width", r)
	s.put("height", r*math.Sqrt(3))
	s.put("area", vesicaAreaCoeff*r*r)
	// Each bounding arc subtends 120 degrees.
	s.put("perimeter", 4*math.Pi*r/3)
	s.markValid()
	return s, nil
}

func solveVesicaPiscis(name string, v float64, _ *Snapshot) (*Snapshot, error) {
	var r float64
	switch name {
	case "radius", "width":
		r = v
	case "height":
		r = v / math.Sqrt(3)
	case "area":
		r = math.Sqrt(v / vesicaAreaCoeff)
	case "perimeter":
		r = 3 * v / (4 * math.Pi)
	}
	return buildVesicaPiscis(r)
}
