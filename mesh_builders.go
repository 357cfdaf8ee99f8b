package gogeometry

import (
	"fmt"
	"math"
	"sort"
)

// Per-family mesh construction. Prismatic families are built from regular
// polygon rings; the fixed-template polyhedra come from exact coordinate sets
// with faces recovered by supporting-plane detection.

// ngonRing places n vertices of a regular n-gon of circumradius r at height z,
// rotated by phase and shifted along x.
func ngonRing(n int, r, z, phase, shiftX float64) []Vec3 {
	ring := make([]Vec3, n)
	for i := 0; i < n; i++ {
		a := 2*math.Pi*float64(i)/float64(n) + phase
		ring[i] = Vec3{r*math.Cos(a) + shiftX, r * math.Sin(a), z}
	}
	return ring
}

func reversed(face []int) []int {
	out := make([]int, len(face))
	for i, v := range face {
		out[len(face)-1-i] = v
	}
	return out
}

func ringFace(start, n int) []int {
	face := make([]int, n)
	for i := range face {
		face[i] = start + i
	}
	return face
}

func meshRectangularPrism(l, w, h float64) *SolidMesh {
	m := &SolidMesh{
		Vertices: []Vec3{
			{0, 0, 0}, {l, 0, 0}, {l, w, 0}, {0, w, 0},
			{0, 0, h}, {l, 0, h}, {l, w, h}, {0, w, h},
		},
		Faces: [][]int{
			{3, 2, 1, 0},
			{4, 5, 6, 7},
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
	}
	return m
}

// meshPrism builds a right prism for shear 0, or an oblique prism whose top
// ring is carried along (shear, 0, h).
func meshPrism(n int, edge, h, shear float64) *SolidMesh {
	r := edge / (2 * math.Sin(math.Pi/float64(n)))
	verts := append(ngonRing(n, r, 0, 0, 0), ngonRing(n, r, h, 0, shear)...)
	faces := [][]int{reversed(ringFace(0, n)), ringFace(n, n)}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, []int{i, j, n + j, n + i})
	}
	return &SolidMesh{Vertices: verts, Faces: faces}
}

func meshPyramid(n int, edge, h float64) *SolidMesh {
	r := edge / (2 * math.Sin(math.Pi/float64(n)))
	verts := append(ngonRing(n, r, 0, 0, 0), Vec3{0, 0, h})
	faces := [][]int{reversed(ringFace(0, n))}
	for i := 0; i < n; i++ {
		faces = append(faces, []int{i, (i + 1) % n, n})
	}
	return &SolidMesh{Vertices: verts, Faces: faces}
}

func meshFrustum(n int, baseEdge, topEdge, h float64) *SolidMesh {
	sin := 2 * math.Sin(math.Pi/float64(n))
	verts := append(ngonRing(n, baseEdge/sin, 0, 0, 0), ngonRing(n, topEdge/sin, h, 0, 0)...)
	faces := [][]int{reversed(ringFace(0, n)), ringFace(n, n)}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, []int{i, j, n + j, n + i})
	}
	return &SolidMesh{Vertices: verts, Faces: faces}
}

func meshAntiprism(n int, edge, h float64) *SolidMesh {
	r := edge / (2 * math.Sin(math.Pi/float64(n)))
	twist := math.Pi / float64(n)
	verts := append(ngonRing(n, r, 0, 0, 0), ngonRing(n, r, h, twist, 0)...)
	faces := [][]int{reversed(ringFace(0, n)), ringFace(n, n)}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces,
			[]int{i, j, n + i},
			[]int{n + i, j, n + j})
	}
	return &SolidMesh{Vertices: verts, Faces: faces}
}

// meshTerracedSolid stacks square tiers. Each junction between tiers carries
// four planar trapezoid terrace faces from the wider square in to the
// narrower one.
func meshTerracedSolid(tiers int, baseEdge, topEdge, tierHeight float64) *SolidMesh {
	square := func(e, z float64) []Vec3 {
		half := e / 2
		return []Vec3{
			{-half, -half, z}, {half, -half, z}, {half, half, z}, {-half, half, z},
		}
	}
	m := &SolidMesh{}
	for i := 0; i < tiers; i++ {
		e := terraceEdge(baseEdge, topEdge, tiers, i)
		m.Vertices = append(m.Vertices, square(e, float64(i)*tierHeight)...)
		m.Vertices = append(m.Vertices, square(e, float64(i+1)*tierHeight)...)
	}
	bottom := func(tier int) int { return tier * 8 }
	top := func(tier int) int { return tier*8 + 4 }

	m.Faces = append(m.Faces, reversed(ringFace(bottom(0), 4)))
	m.Faces = append(m.Faces, ringFace(top(tiers-1), 4))
	for i := 0; i < tiers; i++ {
		b, t := bottom(i), top(i)
		for j := 0; j < 4; j++ {
			k := (j + 1) % 4
			m.Faces = append(m.Faces, []int{b + j, b + k, t + k, t + j})
		}
		if i+1 < tiers {
			// Terrace ring: tier i top square out to tier i+1 bottom square.
			o, in := top(i), bottom(i+1)
			for j := 0; j < 4; j++ {
				k := (j + 1) % 4
				m.Faces = append(m.Faces, []int{o + j, o + k, in + k, in + j})
			}
		}
	}
	return m
}

// polyTemplate is a unit coordinate set for one fixed-shape polyhedron with
// its faces recovered once at package init.
type polyTemplate struct {
	verts   []Vec3
	faces   [][]int
	minEdge float64
	maxNorm float64
}

var uniformTemplates = buildUniformTemplates()

func buildUniformTemplates() map[Family]*polyTemplate {
	gr := (1 + math.Sqrt(5)) / 2

	sets := map[Family][]Vec3{
		FamilyTetrahedron: {
			{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
		},
		FamilyCube:       signFlips(Vec3{1, 1, 1}),
		FamilyOctahedron: allPerms(Vec3{1, 0, 0}),
		FamilyDodecahedron: concat(
			signFlips(Vec3{1, 1, 1}),
			cyclicSigned(Vec3{0, 1 / gr, gr}),
		),
		FamilyIcosahedron:          cyclicSigned(Vec3{0, 1, gr}),
		FamilyTruncatedTetrahedron: evenSignPerms(Vec3{1, 1, 3}),
		FamilyCuboctahedron:        allPerms(Vec3{1, 1, 0}),
		FamilyTruncatedCube:        allPerms(Vec3{math.Sqrt2 - 1, 1, 1}),
		FamilyTruncatedOctahedron:  allPerms(Vec3{0, 1, 2}),
		FamilyRhombicuboctahedron:  allPerms(Vec3{1, 1, 1 + math.Sqrt2}),
		FamilyIcosidodecahedron: concat(
			cyclicSigned(Vec3{0, 0, gr}),
			cyclicSigned(Vec3{0.5, gr / 2, gr * gr / 2}),
		),
		FamilyTruncatedIcosahedron: concat(
			cyclicSigned(Vec3{0, 1, 3 * gr}),
			cyclicSigned(Vec3{1, 2 + gr, 2 * gr}),
			cyclicSigned(Vec3{2, 1 + 2*gr, gr}),
		),
	}

	out := make(map[Family]*polyTemplate, len(sets))
	for f, verts := range sets {
		t := &polyTemplate{verts: verts}
		t.faces = convexFaces(verts)
		t.minEdge = math.Inf(1)
		for _, e := range edgesFromFaces(t.faces) {
			if d := verts[e[0]].Sub(verts[e[1]]).Norm(); d < t.minEdge {
				t.minEdge = d
			}
		}
		for _, v := range verts {
			if n := v.Norm(); n > t.maxNorm {
				t.maxNorm = n
			}
		}
		out[f] = t
	}
	return out
}

func meshUniformPolyhedron(f Family, edge float64) *SolidMesh {
	t := uniformTemplates[f]
	k := edge / t.minEdge
	verts := make([]Vec3, len(t.verts))
	for i, v := range t.verts {
		verts[i] = v.Scale(k)
	}
	return &SolidMesh{Vertices: verts, Faces: t.faces}
}

// uniformCircumradiusCoeff is circumradius per unit edge, measured on the
// coordinate template.
func uniformCircumradiusCoeff(f Family) float64 {
	t := uniformTemplates[f]
	return t.maxNorm / t.minEdge
}

// Coordinate-set generators. Duplicates from zero or repeated components are
// collapsed.

func dedupe(vs []Vec3) []Vec3 {
	seen := make(map[string]bool, len(vs))
	var out []Vec3
	for _, v := range vs {
		k := fmt.Sprintf("%.9f,%.9f,%.9f", v.X+0, v.Y+0, v.Z+0)
		if !seen[k] {
			seen[k] = true
			out = append(out, v)
		}
	}
	return out
}

func concat(sets ...[]Vec3) []Vec3 {
	var out []Vec3
	for _, s := range sets {
		out = append(out, s...)
	}
	return dedupe(out)
}

// signFlips expands every combination of component signs.
func signFlips(v Vec3) []Vec3 {
	var out []Vec3
	for _, sx := range []float64{1, -1} {
		for _, sy := range []float64{1, -1} {
			for _, sz := range []float64{1, -1} {
				out = append(out, Vec3{sx * v.X, sy * v.Y, sz * v.Z})
			}
		}
	}
	return dedupe(out)
}

// allPerms expands every component permutation under every sign combination.
func allPerms(v Vec3) []Vec3 {
	c := []float64{v.X, v.Y, v.Z}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	var out []Vec3
	for _, p := range perms {
		out = append(out, signFlips(Vec3{c[p[0]], c[p[1]], c[p[2]]})...)
	}
	return dedupe(out)
}

// cyclicSigned expands the three cyclic rotations under every sign
// combination. Cyclic-only sets keep the icosahedral families chiral-correct.
func cyclicSigned(v Vec3) []Vec3 {
	var out []Vec3
	for _, r := range []Vec3{v, {v.Z, v.X, v.Y}, {v.Y, v.Z, v.X}} {
		out = append(out, signFlips(r)...)
	}
	return dedupe(out)
}

// evenSignPerms expands every permutation under sign combinations whose
// product is positive.
func evenSignPerms(v Vec3) []Vec3 {
	c := []float64{v.X, v.Y, v.Z}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	signs := [][3]float64{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	var out []Vec3
	for _, p := range perms {
		for _, s := range signs {
			out = append(out, Vec3{s[0] * c[p[0]], s[1] * c[p[1]], s[2] * c[p[2]]})
		}
	}
	return dedupe(out)
}

const planeTol = 1e-7

// convexFaces recovers the face loops of an origin-centered convex vertex set
// by supporting-plane detection: every vertex triple spans a candidate plane,
// and a plane all vertices sit on or below supports a face. Face vertices are
// wound counter-clockwise around the outward normal.
func convexFaces(verts []Vec3) [][]int {
	n := len(verts)
	seen := make(map[string]bool)
	var faces [][]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				nrm := verts[j].Sub(verts[i]).Cross(verts[k].Sub(verts[i]))
				if nrm.Norm() < planeTol {
					continue
				}
				d := nrm.Dot(verts[i])
				if d < 0 {
					nrm = nrm.Scale(-1)
					d = -d
				}
				scale := nrm.Norm()
				var face []int
				supporting := true
				for v := 0; v < n; v++ {
					off := nrm.Dot(verts[v]) - d
					switch {
					case off > planeTol*scale:
						supporting = false
					case off > -planeTol*scale:
						face = append(face, v)
					}
					if !supporting {
						break
					}
				}
				if !supporting || len(face) < 3 {
					continue
				}
				key := fmt.Sprint(face)
				if seen[key] {
					continue
				}
				seen[key] = true
				faces = append(faces, orientFace(verts, face, nrm))
			}
		}
	}
	return faces
}

// orientFace sorts the coplanar vertex set by angle around its centroid so the
// loop runs counter-clockwise seen from outside (against the outward normal).
func orientFace(verts []Vec3, face []int, outward Vec3) []int {
	c := Vec3{}
	for _, i := range face {
		c = c.Add(verts[i])
	}
	c = c.Scale(1 / float64(len(face)))
	nrm := outward.Scale(1 / outward.Norm())
	u := verts[face[0]].Sub(c)
	u = u.Scale(1 / u.Norm())
	w := nrm.Cross(u)
	out := append([]int(nil), face...)
	sort.Slice(out, func(a, b int) bool {
		pa := verts[out[a]].Sub(c)
		pb := verts[out[b]].Sub(c)
		return math.Atan2(pa.Dot(w), pa.Dot(u)) < math.Atan2(pb.Dot(w), pb.Dot(u))
	})
	return out
}
