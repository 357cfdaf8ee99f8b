package gogeometry

import (
	"fmt"
	"math"
	"strings"
)

// Triangle families. The general triangle supports entry from many minimal
// defining sets (three sides, two sides and the included angle, a side and two
// angles, two sides and the area); the decision table picks exactly one
// closed form per combination, preferring paths that avoid inverse
// trigonometry. Angles are always derived last, from settled sides.

func clampCos(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// oppositeAngle returns the angle (degrees) opposite side opp in a triangle
// with adjacent sides s1 and s2, via the law of cosines.
func oppositeAngle(opp, s1, s2 float64) float64 {
	return Degrees(math.Acos(clampCos((s1*s1 + s2*s2 - opp*opp) / (2 * s1 * s2))))
}

// oppositeSide is the inverse direction: the side opposite the given angle
// (degrees) enclosed by sides s1 and s2.
func oppositeSide(s1, s2, angle float64) float64 {
	return math.Sqrt(s1*s1 + s2*s2 - 2*s1*s2*math.Cos(Radians(angle)))
}

func buildTriangleSSS(a, b, c float64) (*Snapshot, error) {
	for _, side := range []struct {
		name string
		v    float64
	}{{"side_a", a}, {"side_b", b}, {"side_c", c}} {
		if side.v <= 0 {
			return nil, domainErr(FamilyTriangle, side.name, "must be > 0")
		}
	}
	if a+b <= c || b+c <= a || a+c <= b {
		return nil, impossibleErr(FamilyTriangle, "triangle inequality violated")
	}
	p := a + b + c
	sp := p / 2
	// Heron's formula: the numerically preferred path when all three sides
	// are known.
	rad := sp * (sp - a) * (sp - b) * (sp - c)
	if rad <= 0 {
		return nil, impossibleErr(FamilyTriangle, "degenerate triangle")
	}
	area := math.Sqrt(rad)

	s := newSnapshot(FamilyTriangle)
	s.put("side_a", a)
	s.put("side_b", b)
	s.put("side_c", c)
	s.put("angle_a", oppositeAngle(a, b, c))
	s.put("angle_b", oppositeAngle(b, a, c))
	s.put("angle_c", oppositeAngle(c, a, b))
	s.put("perimeter", p)
	s.put("semiperimeter", sp)
	s.put("area", area)
	s.put("inradius", area/sp)
	s.put("circumradius", a*b*c/(4*area))
	s.markValid()
	return s, nil
}

func buildTriangleSAS(a, b, angleC float64) (*Snapshot, error) {
	if angleC <= 0 || angleC >= 180 {
		return nil, domainErr(FamilyTriangle, "angle_c", "must be in (0, 180) degrees")
	}
	return buildTriangleSSS(a, b, oppositeSide(a, b, angleC))
}

// buildTriangleAAS resolves from one side and the two remaining angles, with
// the known side opposite the first supplied angle.
func buildTriangleAAS(side, angleOpposite, angleNext float64) (a, b, c float64, err error) {
	third := 180 - angleOpposite - angleNext
	if third <= 0 {
		return 0, 0, 0, impossibleErr(FamilyTriangle, "angles sum to 180 degrees or more")
	}
	k := side / math.Sin(Radians(angleOpposite))
	return side, k * math.Sin(Radians(angleNext)), k * math.Sin(Radians(third)), nil
}

func solveTriangle(name string, v float64, prev *Snapshot) (*Snapshot, error) {
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
	case "angle_a":
		// SAS with the two adjacent sides pinned; only the opposite side moves,
		// so every side keeps its label.
		a = oppositeSide(b, c, v)
	case "angle_b":
		b = oppositeSide(a, c, v)
	case "angle_c":
		c = oppositeSide(a, b, v)
	case "perimeter", "semiperimeter", "inradius", "circumradius":
		// Whole-shape metrics on a fully-shaped triangle rescale it uniformly.
		k := v / prev.val(name)
		a, b, c = a*k, b*k, c*k
	case "area":
		k := math.Sqrt(v / prev.val("area"))
		a, b, c = a*k, b*k, c*k
	}
	return buildTriangleSSS(a, b, c)
}

func triangleDefiningSets() []definingSet {
	sas := func(s1, s2, ang string) definingSet {
		return definingSet{
			names: []string{s1, s2, ang},
			build: func(in map[string]float64) (*Snapshot, error) {
				// The included angle is opposite the third, missing side; route
				// the computed side to that label so the supplied pair keeps
				// theirs.
				sides := map[string]float64{s1: in[s1], s2: in[s2]}
				opp := "side_" + strings.TrimPrefix(ang, "angle_")
				sides[opp] = oppositeSide(in[s1], in[s2], in[ang])
				return buildTriangleSSS(sides["side_a"], sides["side_b"], sides["side_c"])
			},
		}
	}
	aas := func(side, opp, next string) definingSet {
		return definingSet{
			names: []string{side, opp, next},
			build: func(in map[string]float64) (*Snapshot, error) {
				a, b, c, err := buildTriangleAAS(in[side], in[opp], in[next])
				if err != nil {
					return nil, err
				}
				switch side {
				case "side_a":
					return buildTriangleSSS(a, b, c)
				case "side_b":
					return buildTriangleSSS(c, a, b)
				default:
					return buildTriangleSSS(b, c, a)
				}
			},
		}
	}
	return []definingSet{
		{
			names: []string{"side_a", "side_b", "side_c"},
			build: func(in map[string]float64) (*Snapshot, error) {
				return buildTriangleSSS(in["side_a"], in["side_b"], in["side_c"])
			},
		},
		sas("side_a", "side_b", "angle_c"),
		sas("side_b", "side_c", "angle_a"),
		sas("side_a", "side_c", "angle_b"),
		aas("side_a", "angle_a", "angle_b"),
		aas("side_b", "angle_b", "angle_c"),
		aas("side_c", "angle_c", "angle_a"),
		{
			names: []string{"side_a", "side_b", "area"},
			build: func(in map[string]float64) (*Snapshot, error) {
				a, b, area := in["side_a"], in["side_b"], in["area"]
				sin := 2 * area / (a * b)
				if sin > 1 {
					return nil, impossibleErr(FamilyTriangle, "area too large for the two sides")
				}
				return buildTriangleSAS(a, b, Degrees(math.Asin(sin)))
			},
		},
	}
}

// TriangleShape labels the side structure of a general triangle.
type TriangleShape int

const (
	TriangleScalene TriangleShape = iota
	TriangleIsosceles
	TriangleEquilateral
)

// TriangleAngleKind labels the largest-angle structure.
type TriangleAngleKind int

const (
	TriangleAcute TriangleAngleKind = iota
	TriangleRight
	TriangleObtuse
)

// TriangleClass is the derived classification of a resolved general triangle.
type TriangleClass struct {
	Shape    TriangleShape
	Angles   TriangleAngleKind
	Heronian bool // all sides and the area are integers
}

// ClassifyTriangle derives the shape/angle classification from a valid
// general-triangle snapshot.
func ClassifyTriangle(s *Snapshot) (TriangleClass, error) {
	if s.family != FamilyTriangle {
		return TriangleClass{}, fmt.Errorf("cannot classify %s as a triangle", s.family)
	}
	if !s.valid {
		return TriangleClass{}, fmt.Errorf("cannot classify an unresolved snapshot")
	}
	a, b, c := s.val("side_a"), s.val("side_b"), s.val("side_c")

	var cls TriangleClass
	switch {
	case approxEqual(a, b) && approxEqual(b, c):
		cls.Shape = TriangleEquilateral
	case approxEqual(a, b) || approxEqual(b, c) || approxEqual(a, c):
		cls.Shape = TriangleIsosceles
	default:
		cls.Shape = TriangleScalene
	}

	// Compare the square of the longest side against the sum of the other
	// two squares instead of inspecting derived angles.
	longest := math.Max(a, math.Max(b, c))
	rest := a*a + b*b + c*c - longest*longest
	switch {
	case approxEqual(longest*longest, rest):
		cls.Angles = TriangleRight
	case longest*longest > rest:
		cls.Angles = TriangleObtuse
	default:
		cls.Angles = TriangleAcute
	}

	isInt := func(v float64) bool { return approxEqual(v, math.Round(v)) }
	cls.Heronian = isInt(a) && isInt(b) && isInt(c) && isInt(s.val("area"))
	return cls, nil
}

func buildRightTriangle(legA, legB float64) (*Snapshot, error) {
	if legA <= 0 {
		return nil, domainErr(FamilyRightTriangle, "leg_a", "must be > 0")
	}
	if legB <= 0 {
		return nil, domainErr(FamilyRightTriangle, "leg_b", "must be > 0")
	}
	hyp := math.Hypot(legA, legB)
	s := newSnapshot(FamilyRightTriangle)
	s.put("leg_a", legA)
	s.put("leg_b", legB)
	s.put("hypotenuse", hyp)
	s.put("area", legA*legB/2)
	s.put("perimeter", legA+legB+hyp)
	angleA := Degrees(math.Atan2(legA, legB))
	s.put("angle_a", angleA)
	s.put("angle_b", 90-angleA)
	s.markValid()
	return s, nil
}

func solveRightTriangle(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	legA := prev.val("leg_a")
	legB := prev.val("leg_b")
	switch name {
	case "leg_a":
		legA = v
	case "leg_b":
		legB = v
	case "hypotenuse":
		// Pythagoras with leg_a pinned; preferred over angle reconstruction.
		if v <= legA {
			return nil, impossibleErr(FamilyRightTriangle, "hypotenuse must exceed the pinned leg")
		}
		legB = math.Sqrt(v*v - legA*legA)
	case "area":
		legB = 2 * v / legA
	case "perimeter":
		k := v / prev.val("perimeter")
		legA, legB = legA*k, legB*k
	case "angle_a":
		if v >= 90 {
			return nil, impossibleErr(FamilyRightTriangle, "acute angles of a right triangle are below 90 degrees")
		}
		legA = legB * math.Tan(Radians(v))
	case "angle_b":
		if v >= 90 {
			return nil, impossibleErr(FamilyRightTriangle, "acute angles of a right triangle are below 90 degrees")
		}
		legB = legA * math.Tan(Radians(v))
	}
	return buildRightTriangle(legA, legB)
}

func rightTriangleDefiningSets() []definingSet {
	return []definingSet{
		{
			names: []string{"leg_a", "leg_b"},
			build: func(in map[string]float64) (*Snapshot, error) {
				return buildRightTriangle(in["leg_a"], in["leg_b"])
			},
		},
		{
			names: []string{"leg_a", "hypotenuse"},
			build: func(in map[string]float64) (*Snapshot, error) {
				a, h := in["leg_a"], in["hypotenuse"]
				if h <= a {
					return nil, impossibleErr(FamilyRightTriangle, "hypotenuse must exceed the leg")
				}
				return buildRightTriangle(a, math.Sqrt(h*h-a*a))
			},
		},
		{
			names: []string{"leg_b", "hypotenuse"},
			build: func(in map[string]float64) (*Snapshot, error) {
				b, h := in["leg_b"], in["hypotenuse"]
				if h <= b {
					return nil, impossibleErr(FamilyRightTriangle, "hypotenuse must exceed the leg")
				}
				return buildRightTriangle(math.Sqrt(h*h-b*b), b)
			},
		},
		{
			names: []string{"leg_a", "area"},
			build: func(in map[string]float64) (*Snapshot, error) {
				return buildRightTriangle(in["leg_a"], 2*in["area"]/in["leg_a"])
			},
		},
		{
			names: []string{"hypotenuse", "angle_a"},
			build: func(in map[string]float64) (*Snapshot, error) {
				h, ang := in["hypotenuse"], in["angle_a"]
				if ang >= 90 {
					return nil, impossibleErr(FamilyRightTriangle, "acute angles of a right triangle are below 90 degrees")
				}
				return buildRightTriangle(h*math.Sin(Radians(ang)), h*math.Cos(Radians(ang)))
			},
		},
	}
}

func buildIsoscelesTriangle(leg, base float64) (*Snapshot, error) {
	if leg <= 0 {
		return nil, domainErr(FamilyIsoscelesTriangle, "leg", "must be > 0")
	}
	if base <= 0 {
		return nil, domainErr(FamilyIsoscelesTriangle, "base", "must be > 0")
	}
	if base >= 2*leg {
		return nil, impossibleErr(FamilyIsoscelesTriangle, "base must be shorter than the two legs combined")
	}
	h := math.Sqrt(leg*leg - base*base/4)
	apex := 2 * Degrees(math.Asin(base/(2*leg)))
	s := newSnapshot(FamilyIsoscelesTriangle)
	s.put("leg", leg)
	s.put("base", base)
	s.put("height", h)
	s.put("area", base*h/2)
	s.put("perimeter", 2*leg+base)
	s.put("apex_angle", apex)
	s.put("base_angle", (180-apex)/2)
	s.markValid()
	return s, nil
}

func solveIsoscelesTriangle(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	leg := prev.val("leg")
	base := prev.val("base")
	switch name {
	case "leg":
		leg = v
	case "base":
		base = v
	case "height":
		leg = math.Sqrt(v*v + base*base/4)
	case "area":
		h := 2 * v / base
		leg = math.Sqrt(h*h + base*base/4)
	case "perimeter":
		if v <= base {
			return nil, impossibleErr(FamilyIsoscelesTriangle, "perimeter too short for the pinned base")
		}
		leg = (v - base) / 2
	case "apex_angle":
		base = 2 * leg * math.Sin(Radians(v)/2)
	case "base_angle":
		if v >= 90 {
			return nil, impossibleErr(FamilyIsoscelesTriangle, "base angles must be below 90 degrees")
		}
		base = 2 * leg * math.Cos(Radians(v))
	}
	return buildIsoscelesTriangle(leg, base)
}

func buildEquilateralTriangle(side float64) (*Snapshot, error) {
	if side <= 0 {
		return nil, domainErr(FamilyEquilateralTriangle, "side", "must be > 0")
	}
	s := newSnapshot(FamilyEquilateralTriangle)
	s.put("side", side)
	s.put("height", side*math.Sqrt(3)/2)
	s.put("area", side*side*math.Sqrt(3)/4)
	s.put("perimeter", 3*side)
	s.put("inradius", side/(2*math.Sqrt(3)))
	s.put("circumradius", side/math.Sqrt(3))
	s.markValid()
	return s, nil
}

func solveEquilateralTriangle(name string, v float64, _ *Snapshot) (*Snapshot, error) {
	var side float64
	switch name {
	case "side":
		side = v
	case "height":
		side = 2 * v / math.Sqrt(3)
	case "area":
		side = math.Sqrt(4 * v / math.Sqrt(3))
	case "perimeter":
		side = v / 3
	case "inradius":
		side = 2 * v * math.Sqrt(3)
	case "circumradius":
		side = v * math.Sqrt(3)
	}
	return buildEquilateralTriangle(side)
}

func buildTriangle306090(short float64) (*Snapshot, error) {
	if short <= 0 {
		return nil, domainErr(FamilyTriangle306090, "short_leg", "must be > 0")
	}
	s := newSnapshot(FamilyTriangle306090)
	s.put("short_leg", short)
	s.put("long_leg", short*math.Sqrt(3))
	s.put("hypotenuse", 2*short)
	s.put("area", short*short*math.Sqrt(3)/2)
	s.put("perimeter", short*(3+math.Sqrt(3)))
	s.markValid()
	return s, nil
}

func solveTriangle306090(name string, v float64, _ *Snapshot) (*Snapshot, error) {
	var short float64
	switch name {
	case "short_leg":
		short = v
	case "long_leg":
		short = v / math.Sqrt(3)
	case "hypotenuse":
		short = v / 2
	case "area":
		short = math.Sqrt(2 * v / math.Sqrt(3))
	case "perimeter":
		short = v / (3 + math.Sqrt(3))
	}
	return buildTriangle306090(short)
}

func buildTriangle454590(leg float64) (*Snapshot, error) {
	if leg <= 0 {
		return nil, domainErr(FamilyTriangle454590, "leg", "must be > 0")
	}
	s := newSnapshot(FamilyTriangle454590)
	s.put("leg", leg)
	s.put("hypotenuse", leg*math.Sqrt2)
	s.put("area", leg*leg/2)
	s.put("perimeter", leg*(2+math.Sqrt2))
	s.markValid()
	return s, nil
}

func solveTriangle454590(name string, v float64, _ *Snapshot) (*Snapshot, error) {
	var leg float64
	switch name {
	case "leg":
		leg = v
	case "hypotenuse":
		leg = v / math.Sqrt2
	case "area":
		leg = math.Sqrt(2 * v)
	case "perimeter":
		leg = v / (2 + math.Sqrt2)
	}
	return buildTriangle454590(leg)
}
