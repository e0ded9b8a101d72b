package brep

import (
	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/kernel"
)

// ToMesh ear-clip triangulates every face of s. facediv guarantees the
// loops it emits are simple (§8 property 2), and Box/Cylinder faces are
// simple by construction, so a classic O(n^2) ear clip is all that's
// needed here — no constrained Delaunay, no hole handling (holes are
// already stitched into their host loop by the time a face reaches here).
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	poly := unwrap(s)
	m := &kernel.Mesh{}

	for _, f := range poly.Faces {
		tris := earClip(k.geo, f, poly.Vertices)
		base := uint32(len(m.Vertices) / 3)
		for _, v := range f.Vertices {
			c := poly.Vertices.Coord(v)
			m.Vertices = append(m.Vertices, float32(c.X), float32(c.Y), float32(c.Z))
			m.Normals = append(m.Normals, float32(f.Normal.X), float32(f.Normal.Y), float32(f.Normal.Z))
		}
		for _, tri := range tris {
			m.Indices = append(m.Indices, base+uint32(tri[0]), base+uint32(tri[1]), base+uint32(tri[2]))
		}
	}
	return m, nil
}

// earClip triangulates a simple (possibly non-convex) polygon face,
// returning triangles as index triples into f.Vertices.
func earClip(k interface {
	Orient2D(a, b, c geom.Point2D) float64
}, f *geom.Face, pool *geom.VertexPool) [][3]int {
	n := len(f.Vertices)
	if n < 3 {
		return nil
	}
	pts := make([]geom.Point2D, n)
	for i, v := range f.Vertices {
		pts[i] = f.Proj.Project(pool.Coord(v))
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var tris [][3]int
	guard := 0
	for len(remaining) > 3 && guard < n*n+8 {
		guard++
		m := len(remaining)
		clipped := false
		for i := 0; i < m; i++ {
			ia := remaining[(i-1+m)%m]
			ib := remaining[i]
			ic := remaining[(i+1)%m]
			if !isEar(k, pts, remaining, ia, ib, ic) {
				continue
			}
			tris = append(tris, [3]int{ia, ib, ic})
			remaining = append(append([]int(nil), remaining[:i]...), remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break // degenerate polygon; emit what we have and stop
		}
	}
	if len(remaining) == 3 {
		tris = append(tris, [3]int{remaining[0], remaining[1], remaining[2]})
	}
	return tris
}

// isEar reports whether the triangle (ia, ib, ic) is a valid ear: convex at
// ib, and containing none of the polygon's other remaining vertices.
func isEar(k interface {
	Orient2D(a, b, c geom.Point2D) float64
}, pts []geom.Point2D, remaining []int, ia, ib, ic int) bool {
	if k.Orient2D(pts[ia], pts[ib], pts[ic]) <= 0 {
		return false
	}
	for _, j := range remaining {
		if j == ia || j == ib || j == ic {
			continue
		}
		if pointInTriangle(k, pts[j], pts[ia], pts[ib], pts[ic]) {
			return false
		}
	}
	return true
}

func pointInTriangle(k interface {
	Orient2D(a, b, c geom.Point2D) float64
}, p, a, b, c geom.Point2D) bool {
	d1 := k.Orient2D(a, b, p)
	d2 := k.Orient2D(b, c, p)
	d3 := k.Orient2D(c, a, p)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}
