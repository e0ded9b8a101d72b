package facediv

import (
	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// faceCtx bundles the three things every C4/C5/C6 helper needs: the vertex
// pool (to resolve a handle to a 3D coordinate), the face being divided
// (for its projector), and the geometry kernel. Threading one small struct
// through the recursive C4 -> C5 -> C6 call chain (§9: "naturally expressed
// as straight-line calls") is easier to read than three separate
// parameters repeated on every helper.
type faceCtx struct {
	pool   *geom.VertexPool
	face   *geom.Face
	kernel geomkernel.Kernel
}

func (c faceCtx) project(v geom.VertexID) geom.Point2D {
	return c.kernel.Project(c.face, c.pool.Coord(v))
}

func (c faceCtx) projectLoop(loop []geom.VertexID) []geom.Point2D {
	return projectLoop(c.pool, c.face, c.kernel, loop)
}

// projectLoop projects an open vertex cycle into F's 2D frame.
func projectLoop(pool *geom.VertexPool, f *geom.Face, k geomkernel.Kernel, loop []geom.VertexID) []geom.Point2D {
	pts := make([]geom.Point2D, len(loop))
	for i, v := range loop {
		pts[i] = k.Project(f, pool.Coord(v))
	}
	return pts
}

// reverseVertices returns a new slice with loop's vertices in reverse order.
func reverseVertices(loop []geom.VertexID) []geom.VertexID {
	out := make([]geom.VertexID, len(loop))
	for i, v := range loop {
		out[len(loop)-1-i] = v
	}
	return out
}

// perimeterPairs builds a set of unordered pairs from a base loop's
// consecutive vertices, used by the driver to discard split edges that
// merely coincide with the perimeter (§4.4 fast path 2).
func perimeterPairs(base []geom.VertexID) map[geom.UnorderedPair]struct{} {
	set := make(map[geom.UnorderedPair]struct{}, len(base))
	n := len(base)
	for i := 0; i < n; i++ {
		set[geom.MakeUnorderedPair(base[i], base[(i+1)%n])] = struct{}{}
	}
	return set
}
