package gogeometry

import "math"

// Quadrilateral families. The cyclic, tangential and bicentric variants carry
// the classical constraints: opposite angles of a cyclic quadrilateral sum to
// 180 degrees (enforced by construction), a tangential quadrilateral satisfies
// the Pitot equality a+c = b+d, and a bicentric quadrilateral satisfies both.

func buildParallelogram(base, side, angle float64) (*Snapshot, error) {
	if base <= 0 {
		return nil, domainErr(FamilyParallelogram, "base", "must be > 0")
	}
	if side <= 0 {
		return nil, domainErr(FamilyParallelogram, "side", "must be > 0")
	}
	if angle <= 0 || angle >= 180 {
		return nil, domainErr(FamilyParallelogram, "angle", "must be in (0, 180) degrees")
	}
	sin := math.Sin(Radians(angle))
	cos := math.Cos(Radians(angle))
	s := newSnapshot(FamilyParallelogram)
	s.put("base", base)
	s.put("side", side)
	s.put("angle", angle)
	s.put("height", side*sin)
	s.put("area", base*side*sin)
	s.put("perimeter", 2*(base+side))
	s.put("diagonal_p", math.Sqrt(base*base+side*side-2*base*side*cos))
	s.put("diagonal_q", math.Sqrt(base*base+side*side+2*base*side*cos))
	s.markValid()
	return s, nil
}

func solveParallelogram(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	base := prev.val("base")
	side := prev.val("side")
	angle := prev.val("angle")
	switch name {
	case "base":
		base = v
	case "side":
		side = v
	case "angle":
		angle = v
	case "height":
		if v >= side && !approxEqual(v, side) {
			return nil, impossibleErr(FamilyParallelogram, "height cannot exceed the slanted side")
		}
		angle = Degrees(math.Asin(math.Min(v/side, 1)))
	case "area":
		side = v / (base * math.Sin(Radians(angle)))
	case "perimeter":
		side = v/2 - base
		if side <= 0 {
			return nil, impossibleErr(FamilyParallelogram, "perimeter too short for the pinned base")
		}
	case "diagonal_p":
		cos := (base*base + side*side - v*v) / (2 * base * side)
		if cos <= -1 || cos >= 1 {
			return nil, impossibleErr(FamilyParallelogram, "no parallelogram with that diagonal and the pinned sides")
		}
		angle = Degrees(math.Acos(cos))
	case "diagonal_q":
		cos := (v*v - base*base - side*side) / (2 * base * side)
		if cos <= -1 || cos >= 1 {
			return nil, impossibleErr(FamilyParallelogram, "no parallelogram with that diagonal and the pinned sides")
		}
		angle = Degrees(math.Acos(cos))
	}
	return buildParallelogram(base, side, angle)
}

func buildRhombus(side, angle float64) (*Snapshot, error) {
	if side <= 0 {
		return nil, domainErr(FamilyRhombus, "side", "must be > 0")
	}
	if angle <= 0 || angle >= 180 {
		return nil, domainErr(FamilyRhombus, "angle", "must be in (0, 180) degrees")
	}
	sin := math.Sin(Radians(angle))
	half := Radians(angle) / 2
	s := newSnapshot(FamilyRhombus)
	s.put("side", side)
	s.put("angle", angle)
	s.put("height", side*sin)
	s.put("area", side*side*sin)
	s.put("perimeter", 4*side)
	s.put("diagonal_p", 2*side*math.Sin(half))
	s.put("diagonal_q", 2*side*math.Cos(half))
	s.put("inradius", side*sin/2)
	s.markValid()
	return s, nil
}

func solveRhombus(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	side := prev.val("side")
	angle := prev.val("angle")
	asinDeg := func(sin float64, what string) (float64, error) {
		if sin > 1 && !approxEqual(sin, 1) {
			return 0, impossibleErr(FamilyRhombus, what+" too large for the pinned side")
		}
		return Degrees(math.Asin(math.Min(sin, 1))), nil
	}
	var err error
	switch name {
	case "side":
		side = v
	case "angle":
		angle = v
	case "height":
		if angle, err = asinDeg(v/side, "height"); err != nil {
			return nil, err
		}
	case "area":
		if angle, err = asinDeg(v/(side*side), "area"); err != nil {
			return nil, err
		}
	case "perimeter":
		side = v / 4
	case "diagonal_p":
		half, aerr := asinDeg(v/(2*side), "diagonal")
		if aerr != nil {
			return nil, aerr
		}
		angle = 2 * half
	case "diagonal_q":
		if v >= 2*side {
			return nil, impossibleErr(FamilyRhombus, "diagonal too large for the pinned side")
		}
		angle = 2 * Degrees(math.Acos(v/(2*side)))
	case "inradius":
		if angle, err = asinDeg(2*v/side, "inradius"); err != nil {
			return nil, err
		}
	}
	return buildRhombus(side, angle)
}

// buildTrapezoid resolves the isosceles trapezoid from its two parallel bases
// and height.
func buildTrapezoid(baseA, baseB, height float64) (*Snapshot, error) {
	if baseA <= 0 {
		return nil, domainErr(FamilyTrapezoid, "base_a", "must be > 0")
	}
	if baseB <= 0 {
		return nil, domainErr(FamilyTrapezoid, "base_b", "must be > 0")
	}
	if height <= 0 {
		return nil, domainErr(FamilyTrapezoid, "height", "must be > 0")
	}
	if approxEqual(baseA, baseB) {
		return nil, impossibleErr(FamilyTrapezoid, "parallel bases must differ")
	}
	leg := math.Hypot(height, (baseA-baseB)/2)
	s := newSnapshot(FamilyTrapezoid)
	s.put("base_a", baseA)
	s.put("base_b", baseB)
	s.put("height", height)
	s.put("leg", leg)
	s.put("median", (baseA+baseB)/2)
	s.put("area", (baseA+baseB)*height/2)
	s.put("perimeter", baseA+baseB+2*leg)
	s.markValid()
	return s, nil
}

func solveTrapezoid(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	baseA := prev.val("base_a")
	baseB := prev.val("base_b")
	height := prev.val("height")
	switch name {
	case "base_a":
		baseA = v
	case "base_b":
		baseB = v
	case "height":
		height = v
	case "leg":
		half := math.Abs(baseA-baseB) / 2
		if v <= half {
			return nil, impossibleErr(FamilyTrapezoid, "leg too short to join the pinned bases")
		}
		height = math.Sqrt(v*v - half*half)
	case "median":
		baseA = 2*v - baseB
		if baseA <= 0 {
			return nil, impossibleErr(FamilyTrapezoid, "median too short for the pinned base")
		}
	case "area":
		height = 2 * v / (baseA + baseB)
	case "perimeter":
		leg := (v - baseA - baseB) / 2
		half := math.Abs(baseA-baseB) / 2
		if leg <= half {
			return nil, impossibleErr(FamilyTrapezoid, "perimeter too short for the pinned bases")
		}
		height = math.Sqrt(leg*leg - half*half)
	}
	return buildTrapezoid(baseA, baseB, height)
}

// buildKite resolves a kite from its two distinct side lengths and the cross
// diagonal (the one split symmetrically by the axis).
func buildKite(sideA, sideB, diagQ float64) (*Snapshot, error) {
	if sideA <= 0 {
		return nil, domainErr(FamilyKite, "side_a", "must be > 0")
	}
	if sideB <= 0 {
		return nil, domainErr(FamilyKite, "side_b", "must be > 0")
	}
	if diagQ <= 0 {
		return nil, domainErr(FamilyKite, "diagonal_q", "must be > 0")
	}
	half := diagQ / 2
	if half >= sideA || half >= sideB {
		return nil, impossibleErr(FamilyKite, "cross diagonal too long for the sides")
	}
	diagP := math.Sqrt(sideA*sideA-half*half) + math.Sqrt(sideB*sideB-half*half)
	s := newSnapshot(FamilyKite)
	s.put("side_a", sideA)
	s.put("side_b", sideB)
	s.put("diagonal_q", diagQ)
	s.put("diagonal_p", diagP)
	s.put("area", diagP*diagQ/2)
	s.put("perimeter", 2*(sideA+sideB))
	s.markValid()
	return s, nil
}

func solveKite(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	sideA := prev.val("side_a")
	sideB := prev.val("side_b")
	diagQ := prev.val("diagonal_q")
	switch name {
	case "side_a":
		sideA = v
	case "side_b":
		sideB = v
	case "diagonal_q":
		diagQ = v
	case "diagonal_p":
		// Solve the axis split for the cross diagonal with both sides pinned.
		u := (v*v + sideA*sideA - sideB*sideB) / (2 * v)
		if u <= 0 || u >= sideA {
			return nil, impossibleErr(FamilyKite, "no kite with that axis diagonal and the pinned sides")
		}
		diagQ = 2 * math.Sqrt(sideA*sideA-u*u)
	case "area", "perimeter":
		k := v / prev.val(name)
		if name == "area" {
			k = math.Sqrt(k)
		}
		sideA, sideB, diagQ = sideA*k, sideB*k, diagQ*k
	}
	return buildKite(sideA, sideB, diagQ)
}

// quadSideCheck rejects side sets where one side reaches the sum of the other
// three, which cannot close into a quadrilateral.
func quadSideCheck(f Family, a, b, c, d float64) error {
	p := a + b + c + d
	for _, side := range []float64{a, b, c, d} {
		if side >= p-side {
			return impossibleErr(f, "one side is as long as the other three combined")
		}
	}
	return nil
}

func buildCyclicQuadrilateral(a, b, c, d float64) (*Snapshot, error) {
	for _, side := range []struct {
		name string
		v    float64
	}{{"side_a", a}, {"side_b", b}, {"side_c", c}, {"side_d", d}} {
		if side.v <= 0 {
			return nil, domainErr(FamilyCyclicQuadrilateral, side.name, "must be > 0")
		}
	}
	if err := quadSideCheck(FamilyCyclicQuadrilateral, a, b, c, d); err != nil {
		return nil, err
	}
	sp := (a + b + c + d) / 2
	rad := (sp - a) * (sp - b) * (sp - c) * (sp - d)
	if rad <= 0 {
		return nil, impossibleErr(FamilyCyclicQuadrilateral, "degenerate quadrilateral")
	}
	// Brahmagupta's formula: exact for the cyclic configuration.
	area := math.Sqrt(rad)
	angleA := Degrees(math.Acos(clampCos((a*a + b*b - c*c - d*d) / (2 * (a*b + c*d)))))
	angleB := Degrees(math.Acos(clampCos((b*b + c*c - d*d - a*a) / (2 * (b*c + a*d)))))

	s := newSnapshot(FamilyCyclicQuadrilateral)
	s.put("side_a", a)
	s.put("side_b", b)
	s.put("side_c", c)
	s.put("side_d", d)
	s.put("perimeter", 2*sp)
	s.put("semiperimeter", sp)
	s.put("area", area)
	s.put("circumradius", math.Sqrt((a*b+c*d)*(a*c+b*d)*(a*d+b*c))/(4*area))
	s.put("angle_a", angleA)
	s.put("angle_b", angleB)
	// Opposite angles of a cyclic quadrilateral sum to 180 degrees.
	s.put("angle_c", 180-angleA)
	s.put("angle_d", 180-angleB)
	s.markValid()
	return s, nil
}

func solveCyclicQuadrilateral(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	a := prev.val("side_a")
	b := prev.val("side_b")
	c := prev.val("side_c")
	d := prev.val("side_d")
	switch name {
	case "side_a":
		a = v
	case "side_b":
		b = v
	case "side_c":
		c = v
	case "side_d":
		d = v
	case "perimeter", "semiperimeter", "circumradius":
		k := v / prev.val(name)
		a, b, c, d = a*k, b*k, c*k, d*k
	case "area":
		k := math.Sqrt(v / prev.val("area"))
		a, b, c, d = a*k, b*k, c*k, d*k
	case "angle_a", "angle_b", "angle_c", "angle_d":
		// A cyclic quadrilateral is rigid once its four sides are pinned.
		return nil, inconsistentErr(FamilyCyclicQuadrilateral, name,
			"angles are determined by the four pinned sides")
	}
	return buildCyclicQuadrilateral(a, b, c, d)
}

func buildTangentialQuadrilateral(a, b, c, inradius float64) (*Snapshot, error) {
	for _, side := range []struct {
		name string
		v    float64
	}{{"side_a", a}, {"side_b", b}, {"side_c", c}, {"inradius", inradius}} {
		if side.v <= 0 {
			return nil, domainErr(FamilyTangentialQuadrilateral, side.name, "must be > 0")
		}
	}
	// Pitot: opposite side pairs of a tangential quadrilateral sum equally.
	d := a + c - b
	if d <= 0 {
		return nil, impossibleErr(FamilyTangentialQuadrilateral, "Pitot equality leaves no fourth side")
	}
	if err := quadSideCheck(FamilyTangentialQuadrilateral, a, b, c, d); err != nil {
		return nil, err
	}
	sp := a + c
	s := newSnapshot(FamilyTangentialQuadrilateral)
	s.put("side_a", a)
	s.put("side_b", b)
	s.put("side_c", c)
	s.put("inradius", inradius)
	s.put("side_d", d)
	s.put("perimeter", 2*sp)
	s.put("semiperimeter", sp)
	s.put("area", inradius*sp)
	s.markValid()
	return s, nil
}

func solveTangentialQuadrilateral(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	a := prev.val("side_a")
	b := prev.val("side_b")
	c := prev.val("side_c")
	r := prev.val("inradius")
	switch name {
	case "side_a":
		a = v
	case "side_b":
		b = v
	case "side_c":
		c = v
	case "inradius":
		r = v
	case "side_d":
		c = v + b - a
		if c <= 0 {
			return nil, impossibleErr(FamilyTangentialQuadrilateral, "Pitot equality leaves no third side")
		}
	case "perimeter", "semiperimeter":
		k := v / prev.val(name)
		a, b, c, r = a*k, b*k, c*k, r*k
	case "area":
		r = v / prev.val("semiperimeter")
	}
	return buildTangentialQuadrilateral(a, b, c, r)
}

func buildBicentricQuadrilateral(a, b, c float64) (*Snapshot, error) {
	for _, side := range []struct {
		name string
		v    float64
	}{{"side_a", a}, {"side_b", b}, {"side_c", c}} {
		if side.v <= 0 {
			return nil, domainErr(FamilyBicentricQuadrilateral, side.name, "must be > 0")
		}
	}
	d := a + c - b
	if d <= 0 {
		return nil, impossibleErr(FamilyBicentricQuadrilateral, "Pitot equality leaves no fourth side")
	}
	if err := quadSideCheck(FamilyBicentricQuadrilateral, a, b, c, d); err != nil {
		return nil, err
	}
	sp := a + c
	// For a bicentric quadrilateral the area collapses to sqrt(abcd).
	area := math.Sqrt(a * b * c * d)
	s := newSnapshot(FamilyBicentricQuadrilateral)
	s.put("side_a", a)
	s.put("side_b", b)
	s.put("side_c", c)
	s.put("side_d", d)
	s.put("perimeter", 2*sp)
	s.put("semiperimeter", sp)
	s.put("area", area)
	s.put("inradius", area/sp)
	s.put("circumradius", math.Sqrt((a*b+c*d)*(a*c+b*d)*(a*d+b*c))/(4*area))
	s.markValid()
	return s, nil
}

func solveBicentricQuadrilateral(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	a := prev.val("side_a")
	b := prev.val("side_b")
	c := prev.val("side_c")
	switch name {
	case "side_a":
		a = v
	case "side_b":
		b = v
	case "side_c":
		c = v
	case "side_d":
		c = v + b - a
		if c <= 0 {
			return nil, impossibleErr(FamilyBicentricQuadrilateral, "Pitot equality leaves no third side")
		}
	case "perimeter", "semiperimeter", "inradius", "circumradius":
		k := v / prev.val(name)
		a, b, c = a*k, b*k, c*k
	case "area":
		k := math.Sqrt(v / prev.val("area"))
		a, b, c = a*k, b*k, c*k
	}
	return buildBicentricQuadrilateral(a, b, c)
}
