package gogeometry

import "math"

// Rectilinear plane figures: square, rectangle, regular n-gon.

func buildSquare(side float64) (*Snapshot, error) {
	if side <= 0 {
		return nil, domainErr(FamilySquare, "side", "must be > 0")
	}
	s := newSnapshot(FamilySquare)
	s.put("side", side)
	s.put("perimeter", 4*side)
	s.put("area", side*side)
	s.put("diagonal", side*math.Sqrt2)
	s.put("inradius", side/2)
	s.put("circumradius", side*math.Sqrt2/2)
	s.markValid()
	return s, nil
}

func solveSquare(name string, v float64, _ *Snapshot) (*Snapshot, error) {
	var side float64
	switch name {
	case "side":
		side = v
	case "perimeter":
		side = v / 4
	case "area":
		side = math.Sqrt(v)
	case "diagonal":
		side = v / math.Sqrt2
	case "inradius":
		side = 2 * v
	case "circumradius":
		side = 2 * v / math.Sqrt2
	}
	return buildSquare(side)
}

func buildRectangle(length, width float64) (*Snapshot, error) {
	if length <= 0 {
		return nil, domainErr(FamilyRectangle, "length", "must be > 0")
	}
	if width <= 0 {
		return nil, domainErr(FamilyRectangle, "width", "must be > 0")
	}
	s := newSnapshot(FamilyRectangle)
	s.put("length", length)
	s.put("width", width)
	s.put("area", length*width)
	s.put("perimeter", 2*(length+width))
	s.put("diagonal", math.Hypot(length, width))
	s.put("aspect_ratio", length/width)
	s.markValid()
	return s, nil
}

func solveRectangle(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	length := prev.val("length")
	width := prev.val("width")
	switch name {
	case "length":
		length = v
	case "width":
		width = v
	case "area":
		width = v / length
	case "perimeter":
		width = v/2 - length
		if width <= 0 {
			return nil, impossibleErr(FamilyRectangle, "perimeter too short for the pinned length")
		}
	case "diagonal":
		if v <= length {
			return nil, impossibleErr(FamilyRectangle, "diagonal must exceed the pinned length")
		}
		width = math.Sqrt(v*v - length*length)
	case "aspect_ratio":
		width = length / v
	}
	return buildRectangle(length, width)
}

func buildRegularPolygon(n, side float64) (*Snapshot, error) {
	if !isCount(n) || n < 3 {
		return nil, domainErr(FamilyRegularPolygon, "sides", "must be a whole number of at least 3")
	}
	if side <= 0 {
		return nil, domainErr(FamilyRegularPolygon, "side_length", "must be > 0")
	}
	t := math.Tan(math.Pi / n)
	s := newSnapshot(FamilyRegularPolygon)
	s.put("sides", n)
	s.put("side_length", side)
	s.put("perimeter", n*side)
	s.put("apothem", side/(2*t))
	s.put("area", n*side*side/(4*t))
	s.put("circumradius", side/(2*math.Sin(math.Pi/n)))
	s.put("interior_angle", (n-2)*180/n)
	s.put("exterior_angle", 360/n)
	s.markValid()
	return s, nil
}

func solveRegularPolygon(name string, v float64, prev *Snapshot) (*Snapshot, error) {
	n := prev.val("sides")
	side := prev.val("side_length")
	switch name {
	case "sides":
		n = v
	case "side_length":
		side = v
	case "perimeter":
		side = v / n
	case "apothem":
		side = 2 * v * math.Tan(math.Pi/n)
	case "area":
		side = math.Sqrt(4 * v * math.Tan(math.Pi/n) / n)
	case "circumradius":
		side = 2 * v * math.Sin(math.Pi/n)
	case "interior_angle", "exterior_angle":
		// Angles pin the side count, not the size. Only angles that land on a
		// whole-number polygon are admissible.
		ext := v
		if name == "interior_angle" {
			ext = 180 - v
		}
		m := 360 / ext
		rounded := math.Round(m)
		if rounded < 3 || !approxEqualTol(m, rounded, 1e-6, 1e-9) {
			return nil, impossibleErr(FamilyRegularPolygon, "no regular polygon has that angle")
		}
		n = rounded
	}
	return buildRegularPolygon(n, side)
}
