package geom

import "math"

// NewFace builds a Face from an ordered, counter-clockwise (viewed from
// outside the solid) cycle of vertices, registering its perimeter edges in
// the polyhedron's shared edge set and deriving a normal via Newell's
// method plus a projector seeded on the first edge.
func (poly *Polyhedron) NewFace(verts []VertexID) *Face {
	n := newellNormal(poly.Vertices, verts)
	edges := make([]EdgeID, len(verts))
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		edges[i] = poly.EdgesOf.GetOrAdd(a, b)
	}
	origin := poly.Vertices.Coord(verts[0])
	seedDir := poly.Vertices.Coord(verts[1]).Sub(origin)
	proj := NewProjector(origin, n, seedDir)
	f := &Face{Vertices: verts, Edges: edges, Normal: n, Proj: proj}
	poly.Faces = append(poly.Faces, f)
	return f
}

// newellNormal computes a polygon normal robust to non-triangular, slightly
// non-planar input (Newell's method), the same technique used by mesh
// tessellators that must derive a normal from an arbitrary vertex cycle
// rather than trust a single cross product.
func newellNormal(pool *VertexPool, verts []VertexID) Vec3 {
	var nx, ny, nz float64
	n := len(verts)
	for i := 0; i < n; i++ {
		cur := pool.Coord(verts[i])
		nxt := pool.Coord(verts[(i+1)%n])
		nx += (cur.Y - nxt.Y) * (cur.Z + nxt.Z)
		ny += (cur.Z - nxt.Z) * (cur.X + nxt.X)
		nz += (cur.X - nxt.X) * (cur.Y + nxt.Y)
	}
	return NewVec3(nx, ny, nz).Normalized()
}

// AddBox appends an axis-aligned box spanning [min, min+size] to the
// polyhedron as six quadrilateral faces, each wound counter-clockwise when
// viewed from outside the box.
func (poly *Polyhedron) AddBox(min, size Vec3) {
	x0, y0, z0 := min.X, min.Y, min.Z
	x1, y1, z1 := min.X+size.X, min.Y+size.Y, min.Z+size.Z

	v := func(x, y, z float64) VertexID { return poly.Vertices.Add(NewVec3(x, y, z)) }

	// 0..7: the eight corners.
	c000 := v(x0, y0, z0)
	c100 := v(x1, y0, z0)
	c110 := v(x1, y1, z0)
	c010 := v(x0, y1, z0)
	c001 := v(x0, y0, z1)
	c101 := v(x1, y0, z1)
	c111 := v(x1, y1, z1)
	c011 := v(x0, y1, z1)

	poly.NewFace([]VertexID{c000, c010, c110, c100}) // bottom (-Z)
	poly.NewFace([]VertexID{c001, c101, c111, c011}) // top (+Z)
	poly.NewFace([]VertexID{c000, c100, c101, c001}) // front (-Y)
	poly.NewFace([]VertexID{c110, c010, c011, c111}) // back (+Y)
	poly.NewFace([]VertexID{c010, c000, c001, c011}) // left (-X)
	poly.NewFace([]VertexID{c100, c110, c111, c101}) // right (+X)
}

// AddCylinder appends a cylinder of the given height and radius, centered
// on the Z axis with its base at z=0, approximated with the given number of
// radial segments: two polygon caps plus `segments` rectangular side faces.
func (poly *Polyhedron) AddCylinder(height, radius float64, segments int) {
	if segments < 3 {
		segments = 3
	}
	bottom := make([]VertexID, segments)
	top := make([]VertexID, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x, y := radius*math.Cos(theta), radius*math.Sin(theta)
		bottom[i] = poly.Vertices.Add(NewVec3(x, y, 0))
		top[i] = poly.Vertices.Add(NewVec3(x, y, height))
	}

	bottomCap := make([]VertexID, segments)
	for i := 0; i < segments; i++ {
		bottomCap[i] = bottom[segments-1-i] // reverse so normal points -Z
	}
	poly.NewFace(bottomCap)
	poly.NewFace(top)

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		poly.NewFace([]VertexID{bottom[i], bottom[j], top[j], top[i]})
	}
}
