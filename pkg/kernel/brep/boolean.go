package brep

import (
	"math"

	"github.com/lignincsg/lignin/pkg/facediv"
	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/kernel"
	"github.com/lignincsg/lignin/pkg/xsect"
)

// keepRule decides, for each divided face loop of one operand, whether to
// keep it as-is, keep it with its winding flipped, or drop it, based on
// whether its representative point falls inside or outside the other
// operand's original (undivided) boundary.
type keepRule func(inOther bool) (keep, flip bool)

// Union keeps every face of a lying outside b and every face of b lying
// outside a.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return k.boolean(a, b,
		func(inOther bool) (bool, bool) { return !inOther, false },
		func(inOther bool) (bool, bool) { return !inOther, false },
	)
}

// Difference keeps a's faces outside b and b's faces inside a, the latter
// with their winding flipped since they now bound a cavity.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return k.boolean(a, b,
		func(inOther bool) (bool, bool) { return !inOther, false },
		func(inOther bool) (bool, bool) { return inOther, true },
	)
}

// Intersection keeps only the faces of each operand lying inside the other.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return k.boolean(a, b,
		func(inOther bool) (bool, bool) { return inOther, false },
		func(inOther bool) (bool, bool) { return inOther, false },
	)
}

// boolean is the shared machinery behind Union/Difference/Intersection: run
// the intersection graph, divide each operand's faces along it, classify
// each resulting sub-face by a representative point's containment in the
// other operand, and stitch the kept sub-faces (remapped into a fresh
// vertex pool) into one output solid.
func (k *Kernel) boolean(a, b kernel.Solid, ruleA, ruleB keepRule) kernel.Solid {
	polyA := unwrap(a)
	polyB := unwrap(b)

	bundleA, bundleB, err := xsect.Intersect(polyA, polyB)
	if err != nil {
		// §7's framing carries over: a boolean op that cannot build a
		// consistent intersection graph degrades to the untouched operand
		// rather than failing the whole pipeline.
		bundleA, bundleB = geom.NewDataBundle(), geom.NewDataBundle()
	}

	loopsA, _, err := facediv.GenerateFaceLoops(polyA, bundleA, k.geo, nil)
	if err != nil {
		loopsA = nil
	}
	loopsB, _, err := facediv.GenerateFaceLoops(polyB, bundleB, k.geo, nil)
	if err != nil {
		loopsB = nil
	}

	out := geom.NewPolyhedron()
	remapA := newRemapper(polyA.Vertices, out.Vertices)
	remapB := newRemapper(polyB.Vertices, out.Vertices)

	for _, fl := range loopsA {
		p := loopCentroid(polyA.Vertices, fl.Loop)
		inB := pointInPolyhedron(p, polyB)
		keep, flip := ruleA(inB)
		addLoop(out, remapA, fl.Loop, keep, flip)
	}
	for _, fl := range loopsB {
		p := loopCentroid(polyB.Vertices, fl.Loop)
		inA := pointInPolyhedron(p, polyA)
		keep, flip := ruleB(inA)
		addLoop(out, remapB, fl.Loop, keep, flip)
	}

	return wrap(out)
}

func addLoop(out *geom.Polyhedron, remap *remapper, loop []geom.VertexID, keep, flip bool) {
	if !keep || len(loop) < 3 {
		return
	}
	mapped := make([]geom.VertexID, len(loop))
	for i, v := range loop {
		mapped[i] = remap.get(v)
	}
	if flip {
		for i, j := 0, len(mapped)-1; i < j; i, j = i+1, j-1 {
			mapped[i], mapped[j] = mapped[j], mapped[i]
		}
	}
	out.NewFace(mapped)
}

// remapper carries vertex handles from a source pool into a shared
// destination pool, minting each source vertex exactly once.
type remapper struct {
	src, dst *geom.VertexPool
	seen     map[geom.VertexID]geom.VertexID
}

func newRemapper(src, dst *geom.VertexPool) *remapper {
	return &remapper{src: src, dst: dst, seen: map[geom.VertexID]geom.VertexID{}}
}

func (r *remapper) get(v geom.VertexID) geom.VertexID {
	if id, ok := r.seen[v]; ok {
		return id
	}
	id := r.dst.Add(r.src.Coord(v))
	r.seen[v] = id
	return id
}

func loopCentroid(pool *geom.VertexPool, loop []geom.VertexID) geom.Vec3 {
	var sum geom.Vec3
	for _, v := range loop {
		sum = sum.Add(pool.Coord(v))
	}
	return sum.Scale(1 / float64(len(loop)))
}

// pointInPolyhedron classifies p against poly's boundary by casting a ray
// in a fixed, axis-skew direction and counting parity of triangle
// crossings across a fan triangulation of every face. The fan is exact for
// convex faces such as those Box and Cylinder build; a non-convex face of an
// operand loaded through Wrap is fanned the same way, and its fan can cover
// area outside the face. The ray-cast target is always the other operand's
// original polyhedron, never the divided side being classified.
func pointInPolyhedron(p geom.Vec3, poly *geom.Polyhedron) bool {
	dir := geom.NewVec3(0.9982, 0.0447, 0.0391) // arbitrary, avoids axis alignment
	crossings := 0
	for _, f := range poly.Faces {
		verts := f.Vertices
		for i := 1; i+1 < len(verts); i++ {
			a := poly.Vertices.Coord(verts[0])
			b := poly.Vertices.Coord(verts[i])
			c := poly.Vertices.Coord(verts[i+1])
			if rayTriangleHit(p, dir, a, b, c) {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

// rayTriangleHit is the Möller-Trumbore ray/triangle intersection test,
// restricted to strictly positive t (the forward ray).
func rayTriangleHit(origin, dir, a, b, c geom.Vec3) bool {
	const eps = 1e-12
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) < eps {
		return false
	}
	inv := 1 / det
	tvec := origin.Sub(a)
	u := tvec.Dot(pvec) * inv
	if u < 0 || u > 1 {
		return false
	}
	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec) * inv
	if v < 0 || u+v > 1 {
		return false
	}
	t := e2.Dot(qvec) * inv
	return t > eps
}
