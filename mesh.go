package gogeometry

import (
	"fmt"
	"math"
	"sort"
)

// Vec3 is a point or direction in mesh space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3  { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3  { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// SolidMesh is the closed boundary mesh of a solid family instance. Faces are
// planar vertex loops wound counter-clockwise seen from outside; edges are the
// deduplicated undirected face-loop edges with the lower index first.
type SolidMesh struct {
	Vertices []Vec3
	Edges    [][2]int
	Faces    [][]int
	Labels   map[string]float64
	Bounds   AABB
}

// edgesFromFaces extracts the undirected edge set of the face loops.
func edgesFromFaces(faces [][]int) [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, face := range faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			if a > b {
				a, b = b, a
			}
			k := [2]int{a, b}
			if !seen[k] {
				seen[k] = true
				edges = append(edges, k)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// faceArea fans the planar loop around its centroid, which stays exact for
// convex faces and any planar loop.
func faceArea(verts []Vec3, face []int) float64 {
	c := Vec3{}
	for _, i := range face {
		c = c.Add(verts[i])
	}
	c = c.Scale(1 / float64(len(face)))
	area := 0.0
	for i := range face {
		a := verts[face[i]].Sub(c)
		b := verts[face[(i+1)%len(face)]].Sub(c)
		area += a.Cross(b).Norm() / 2
	}
	return area
}

// SurfaceArea sums the face areas.
func (m *SolidMesh) SurfaceArea() float64 {
	total := 0.0
	for _, f := range m.Faces {
		total += faceArea(m.Vertices, f)
	}
	return total
}

// Volume applies the divergence theorem: each face fans into triangles against
// its centroid and every triangle contributes a signed tetrahedron against the
// origin. Outward winding makes the sum the enclosed volume.
func (m *SolidMesh) Volume() float64 {
	total := 0.0
	for _, face := range m.Faces {
		c := Vec3{}
		for _, i := range face {
			c = c.Add(m.Vertices[i])
		}
		c = c.Scale(1 / float64(len(face)))
		for i := range face {
			a := m.Vertices[face[i]]
			b := m.Vertices[face[(i+1)%len(face)]]
			total += c.Dot(a.Cross(b)) / 6
		}
	}
	return total
}

// EulerCharacteristic returns V - E + F, which is 2 for every closed
// genus-zero mesh this package synthesizes.
func (m *SolidMesh) EulerCharacteristic() int {
	return len(m.Vertices) - len(m.Edges) + len(m.Faces)
}

func (m *SolidMesh) computeBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	min, max := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}
	m.Bounds = AABB{Min: min, Max: max}
}

// minEdgeLength returns the shortest mesh edge, used to normalize coordinate
// templates to a requested edge length.
func (m *SolidMesh) minEdgeLength() float64 {
	min := math.Inf(1)
	for _, e := range m.Edges {
		d := m.Vertices[e[0]].Sub(m.Vertices[e[1]]).Norm()
		if d < min {
			min = d
		}
	}
	return min
}

// maxVertexNorm returns the circumradius of an origin-centered mesh.
func (m *SolidMesh) maxVertexNorm() float64 {
	max := 0.0
	for _, v := range m.Vertices {
		if n := v.Norm(); n > max {
			max = n
		}
	}
	return max
}

// finish derives edges, bounds and the metric labels from vertices and faces.
func (m *SolidMesh) finish() {
	m.Edges = edgesFromFaces(m.Faces)
	m.computeBounds()
	if m.Labels == nil {
		m.Labels = make(map[string]float64)
	}
	m.Labels["surface_area"] = m.SurfaceArea()
	m.Labels["volume"] = m.Volume()
	m.Labels["vertex_count"] = float64(len(m.Vertices))
	m.Labels["edge_count"] = float64(len(m.Edges))
	m.Labels["face_count"] = float64(len(m.Faces))
}

// labelCapBreakdown splits the ring-built surface into its horizontal caps
// and the lateral remainder. The first face is always the bottom cap; a face
// is horizontal when its vertex loop sits at one height.
func (m *SolidMesh) labelCapBreakdown() {
	horizontal := func(face []int) bool {
		z := m.Vertices[face[0]].Z
		for _, i := range face[1:] {
			if math.Abs(m.Vertices[i].Z-z) > epsMesh {
				return false
			}
		}
		return true
	}
	lateral := 0.0
	for _, face := range m.Faces {
		if !horizontal(face) {
			lateral += faceArea(m.Vertices, face)
		}
	}
	m.Labels["base_area"] = faceArea(m.Vertices, m.Faces[0])
	m.Labels["lateral_area"] = lateral
}

// Synthesize builds the boundary mesh of a resolved solid snapshot and
// cross-checks its measured surface area and volume against the snapshot's
// analytic values. A disagreement beyond tolerance means the solver and the
// synthesizer no longer describe the same solid, which is an internal fault,
// never a user error.
func Synthesize(f Family, snap *Snapshot) (*SolidMesh, error) {
	if !f.IsSolid() {
		return nil, domainErr(f, "", "family has no solid mesh")
	}
	if snap == nil || snap.family != f || !snap.Valid() {
		return nil, internalErr(f, "mesh synthesis requires a valid snapshot of the same family")
	}

	var m *SolidMesh
	switch f {
	case FamilyRectangularPrism:
		m = meshRectangularPrism(snap.val("length"), snap.val("width"), snap.val("height"))
	case FamilyRegularPrism:
		m = meshPrism(int(snap.val("sides")), snap.val("base_edge"), snap.val("height"), 0)
	case FamilyObliquePrism:
		shear := snap.val("height") * math.Tan(Radians(snap.val("lean_angle")))
		m = meshPrism(int(snap.val("sides")), snap.val("base_edge"), snap.val("height"), shear)
	case FamilyPyramid:
		m = meshPyramid(int(snap.val("sides")), snap.val("base_edge"), snap.val("height"))
	case FamilyFrustum:
		m = meshFrustum(int(snap.val("sides")), snap.val("base_edge"), snap.val("top_edge"), snap.val("height"))
	case FamilyAntiprism:
		m = meshAntiprism(int(snap.val("sides")), snap.val("edge_length"), snap.val("height"))
	case FamilyTerracedSolid:
		m = meshTerracedSolid(int(snap.val("tiers")), snap.val("base_edge"), snap.val("top_edge"), snap.val("tier_height"))
	default:
		m = meshUniformPolyhedron(f, snap.val("edge_length"))
	}
	m.finish()
	if f.isUniformPolyhedron() {
		m.Labels["circumradius"] = m.maxVertexNorm()
		mid := m.Vertices[m.Edges[0][0]].Add(m.Vertices[m.Edges[0][1]]).Scale(0.5)
		m.Labels["midradius"] = mid.Norm()
	} else {
		m.labelCapBreakdown()
		if want, ok := snap.Value("lateral_area"); ok {
			if !approxEqualTol(m.Labels["lateral_area"], want, epsMesh, epsMesh) {
				return nil, internalErr(f, fmt.Sprintf("mesh lateral area %v disagrees with solved %v",
					m.Labels["lateral_area"], want))
			}
		}
	}

	if chi := m.EulerCharacteristic(); chi != 2 {
		return nil, internalErr(f, fmt.Sprintf("mesh is not a closed surface: V-E+F = %d", chi))
	}
	if want := snap.val("surface_area"); !approxEqualTol(m.Labels["surface_area"], want, epsMesh, epsMesh) {
		return nil, internalErr(f, fmt.Sprintf("mesh surface area %v disagrees with solved %v",
			m.Labels["surface_area"], want))
	}
	if want := snap.val("volume"); !approxEqualTol(m.Labels["volume"], want, epsMesh, epsMesh) {
		return nil, internalErr(f, fmt.Sprintf("mesh volume %v disagrees with solved %v",
			m.Labels["volume"], want))
	}
	return m, nil
}
