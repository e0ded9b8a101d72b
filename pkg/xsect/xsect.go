// Package xsect computes the intersection graph between two polyhedra: for
// every pair of faces whose planes cross, it finds the 3D segment where the
// two polygons actually overlap and records it as a geom.DataBundle entry
// for each side, in the form pkg/facediv expects (divided edges for
// crossings that land on a face's own boundary, face-split edges for the
// resulting chords).
//
// spec.md §1 explicitly treats "building the intersection graph" as an
// external collaborator's job and out of scope for face division itself.
// This package is that collaborator's stand-in: a brute-force O(F_a * F_b)
// face-pair scan with no spatial index, adequate for the CLI demo and the
// brep backend's own tests but not a production intersection stage.
package xsect

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/lignincsg/lignin/pkg/geom"
)

// Options tunes the numerical tolerances of the intersection scan. The zero
// value is DefaultOptions.
type Options struct {
	// SignEps is the distance below which a vertex is treated as lying on
	// a plane rather than strictly to one side of it.
	SignEps float64
	// SnapEps is the distance below which two computed intersection
	// points (or an intersection point and an existing vertex) are
	// unified into the same vertex handle.
	SnapEps float64
}

// DefaultOptions returns the tolerances used when Intersect is called
// without an explicit Options.
func DefaultOptions() Options {
	return Options{SignEps: 1e-9, SnapEps: 1e-6}
}

// Intersect computes the face/face intersection segments between a and b
// and returns one DataBundle per polyhedron, ready to hand to
// facediv.GenerateFaceLoops. It never mutates a or b's faces or edges, only
// their vertex pools (new intersection vertices are appended) and the
// returned bundles.
func Intersect(a, b *geom.Polyhedron) (*geom.DataBundle, *geom.DataBundle, error) {
	return IntersectWithOptions(a, b, DefaultOptions())
}

// IntersectWithOptions is Intersect with explicit tolerances.
func IntersectWithOptions(a, b *geom.Polyhedron, opts Options) (*geom.DataBundle, *geom.DataBundle, error) {
	if a == nil || b == nil {
		return nil, nil, errors.New("xsect: nil polyhedron")
	}
	if opts == (Options{}) {
		opts = DefaultOptions()
	}

	bundleA := geom.NewDataBundle()
	bundleB := geom.NewDataBundle()
	snapA := newSnapper(a.Vertices, opts.SnapEps)
	snapB := newSnapper(b.Vertices, opts.SnapEps)

	edgeHitsA := map[geom.EdgeID][]edgeHit{}
	edgeHitsB := map[geom.EdgeID][]edgeHit{}

	for ia, fa := range a.Faces {
		boxA := faceBox(a.Vertices, fa)
		for ib, fb := range b.Faces {
			if !boxA.intersects(faceBox(b.Vertices, fb)) {
				continue
			}
			segs, err := facePairSegments(a.Vertices, fa, b.Vertices, fb, opts.SignEps)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "xsect: face %d x %d", ia, ib)
			}
			for _, seg := range segs {
				recordSegment(bundleA, a, geom.FaceID(ia), fa, seg.p0, seg.p1, seg.onEdgeA0, seg.onEdgeA1, snapA, edgeHitsA)
				recordSegment(bundleB, b, geom.FaceID(ib), fb, seg.p0, seg.p1, seg.onEdgeB0, seg.onEdgeB1, snapB, edgeHitsB)
			}
		}
	}

	finalizeDividedEdges(bundleA, a, edgeHitsA)
	finalizeDividedEdges(bundleB, b, edgeHitsB)
	return bundleA, bundleB, nil
}

// edgeHit is one intersection vertex landing on the interior of an existing
// edge, pending sort-by-position before it is written into DividedEdges.
type edgeHit struct {
	t float64 // parameter along the edge's canonical V1->V2 direction
	v geom.VertexID
}

// segment is one face-pair's contribution: a 3D chord (p0, p1), each end
// tagged with the edge of its owning face it lies on, if any.
type segment struct {
	p0, p1                     geom.Vec3
	onEdgeA0, onEdgeA1         edgeLoc
	onEdgeB0, onEdgeB1         edgeLoc
}

// edgeLoc names a face-local edge index an endpoint lies strictly inside,
// or has valid false if the endpoint is not on any edge of that face (an
// interior point, or a point that landed on an existing vertex and was
// already snapped).
type edgeLoc struct {
	faceEdgeIndex int
	valid         bool
}

func noEdge() edgeLoc { return edgeLoc{valid: false} }

type box3 struct{ lo, hi geom.Vec3 }

func faceBox(pool *geom.VertexPool, f *geom.Face) box3 {
	lo := pool.Coord(f.Vertices[0])
	hi := lo
	for _, v := range f.Vertices[1:] {
		c := pool.Coord(v)
		lo = geom.NewVec3(math.Min(lo.X, c.X), math.Min(lo.Y, c.Y), math.Min(lo.Z, c.Z))
		hi = geom.NewVec3(math.Max(hi.X, c.X), math.Max(hi.Y, c.Y), math.Max(hi.Z, c.Z))
	}
	return box3{lo: lo, hi: hi}
}

func (b box3) intersects(o box3) bool {
	const eps = 1e-9
	return b.lo.X <= o.hi.X+eps && b.hi.X >= o.lo.X-eps &&
		b.lo.Y <= o.hi.Y+eps && b.hi.Y >= o.lo.Y-eps &&
		b.lo.Z <= o.hi.Z+eps && b.hi.Z >= o.lo.Z-eps
}

// facePairSegments finds every 3D chord where fa and fb's polygon interiors
// coincide. The two planes meet along a line (unless parallel); each face's
// boundary crosses that line at a set of points, which pair up (sorted
// along the line) into the intervals where that face's interior overlaps
// the line. The chord set is the pairwise intersection of A's intervals
// with B's intervals — correct for any simple polygon, convex or not,
// since both interval families live on the same 1D line.
func facePairSegments(poolA *geom.VertexPool, fa *geom.Face, poolB *geom.VertexPool, fb *geom.Face, signEps float64) ([]segment, error) {
	na, nb := fa.Normal, fb.Normal
	u := na.Cross(nb)
	if u.Length() < signEps {
		return nil, nil // parallel or coplanar faces: out of scope (Non-goal)
	}
	u = u.Normalized()

	da := na.Dot(poolA.Coord(fa.Vertices[0]))
	db := nb.Dot(poolB.Coord(fb.Vertices[0]))
	origin, err := linePoint(na, da, nb, db)
	if err != nil {
		return nil, err
	}

	crossA := boundaryCrossings(poolA, fa, nb, db, origin, u, signEps)
	crossB := boundaryCrossings(poolB, fb, na, da, origin, u, signEps)
	if len(crossA) < 2 || len(crossB) < 2 {
		return nil, nil
	}

	intervalsA := pairCrossings(crossA)
	intervalsB := pairCrossings(crossB)

	var out []segment
	for _, ia := range intervalsA {
		for _, ib := range intervalsB {
			lo := math.Max(ia.lo, ib.lo)
			hi := math.Min(ia.hi, ib.hi)
			if hi-lo < signEps*4 {
				continue
			}
			p0 := origin.Add(u.Scale(lo))
			p1 := origin.Add(u.Scale(hi))
			out = append(out, segment{
				p0: p0, p1: p1,
				onEdgeA0: crossingEdge(crossA, lo), onEdgeA1: crossingEdge(crossA, hi),
				onEdgeB0: crossingEdge(crossB, lo), onEdgeB1: crossingEdge(crossB, hi),
			})
		}
	}
	return out, nil
}

// linePoint solves the 2x2 system giving the point in span(n1,n2) that
// satisfies both plane equations n1.X=d1 and n2.X=d2 — the minimal-norm
// point on their line of intersection.
func linePoint(n1 geom.Vec3, d1 float64, n2 geom.Vec3, d2 float64) (geom.Vec3, error) {
	n1n1 := n1.Dot(n1)
	n2n2 := n2.Dot(n2)
	n1n2 := n1.Dot(n2)
	det := n1n1*n2n2 - n1n2*n1n2
	if math.Abs(det) < 1e-18 {
		return geom.Vec3{}, errors.New("xsect: degenerate plane pair")
	}
	a := (d1*n2n2 - d2*n1n2) / det
	b := (d2*n1n1 - d1*n1n2) / det
	return n1.Scale(a).Add(n2.Scale(b)), nil
}

// crossPoint is one place a face's boundary pierces the other face's plane.
type crossPoint struct {
	t         float64 // position along the shared line
	edgeIndex int     // index into f.Edges of the edge this point lies on
}

// boundaryCrossings walks face f's edges and records every point where the
// edge crosses the plane (n, d), expressed as a parameter along the shared
// line (origin, dir).
func boundaryCrossings(pool *geom.VertexPool, f *geom.Face, n geom.Vec3, d float64, origin, dir geom.Vec3, eps float64) []crossPoint {
	m := len(f.Vertices)
	var out []crossPoint
	for i := 0; i < m; i++ {
		v1 := f.Vertices[i]
		v2 := f.Vertices[(i+1)%m]
		c1 := pool.Coord(v1)
		c2 := pool.Coord(v2)
		s1 := n.Dot(c1) - d
		s2 := n.Dot(c2) - d
		if math.Abs(s1) < eps && math.Abs(s2) < eps {
			continue // whole edge lies on the plane: degenerate, out of scope
		}
		if (s1 > 0) == (s2 > 0) {
			continue // no sign change: edge does not cross the plane
		}
		t := s1 / (s1 - s2)
		p := c1.Add(c2.Sub(c1).Scale(t))
		out = append(out, crossPoint{t: p.Sub(origin).Dot(dir), edgeIndex: i})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].t < out[j].t })
	return out
}

type interval struct{ lo, hi float64 }

func pairCrossings(pts []crossPoint) []interval {
	var out []interval
	for i := 0; i+1 < len(pts); i += 2 {
		out = append(out, interval{lo: pts[i].t, hi: pts[i+1].t})
	}
	return out
}

// crossingEdge reports which edge (if any) a boundary crossing list has an
// entry exactly at parameter t, within tolerance.
func crossingEdge(pts []crossPoint, t float64) edgeLoc {
	const eps = 1e-7
	for _, p := range pts {
		if math.Abs(p.t-t) < eps {
			return edgeLoc{faceEdgeIndex: p.edgeIndex, valid: true}
		}
	}
	return noEdge()
}

// recordSegment writes one endpoint pair of a chord into a face's data
// bundle: a vertex handle for each end (deduped via snap), a FaceSplitEdges
// entry for the chord, and (for whichever ends actually lie on one of the
// face's own edges) a pending edgeHit for later DividedEdges assembly.
func recordSegment(bundle *geom.DataBundle, poly *geom.Polyhedron, faceID geom.FaceID, f *geom.Face, p0, p1 geom.Vec3, loc0, loc1 edgeLoc, snap *snapper, hits map[geom.EdgeID][]edgeHit) {
	v0 := snap.get(p0)
	v1 := snap.get(p1)
	if v0 == v1 {
		return // degenerate chord
	}
	bundle.AddFaceSplitEdge(faceID, v0, v1)
	registerEdgeHit(poly, f, loc0, v0, hits)
	registerEdgeHit(poly, f, loc1, v1, hits)
}

// registerEdgeHit records that vertex v lies on the edge loc names, so that
// finalizeDividedEdges can later splice it into that edge's DividedEdges
// entry. t is measured from the edge's canonical V1 regardless of which
// direction f itself walks the edge — DividedEdges is always stored in
// canonical V1->V2 order (§3), and assembleBaseLoop is the one that decides
// whether to walk it forwards or backwards for a given face.
func registerEdgeHit(poly *geom.Polyhedron, f *geom.Face, loc edgeLoc, v geom.VertexID, hits map[geom.EdgeID][]edgeHit) {
	if !loc.valid {
		return
	}
	edgeID := f.Edges[loc.faceEdgeIndex]
	canon := poly.EdgesOf.Edge(edgeID)
	if v == canon.V1 || v == canon.V2 {
		return // snapped onto an existing endpoint, not an interior split
	}
	t := poly.Vertices.Coord(v).Sub(poly.Vertices.Coord(canon.V1)).Length()
	hits[edgeID] = append(hits[edgeID], edgeHit{t: t, v: v})
}

// finalizeDividedEdges sorts each edge's pending hits by distance from its
// canonical V1 endpoint and writes the ordered vertex list into the bundle,
// deduplicating repeated hits from multiple face pairs landing on the same
// point.
func finalizeDividedEdges(bundle *geom.DataBundle, poly *geom.Polyhedron, hits map[geom.EdgeID][]edgeHit) {
	for edgeID, list := range hits {
		sort.Slice(list, func(i, j int) bool { return list[i].t < list[j].t })
		var ordered []geom.VertexID
		for i, h := range list {
			if i > 0 && h.v == list[i-1].v {
				continue
			}
			ordered = append(ordered, h.v)
		}
		bundle.DividedEdges[edgeID] = ordered
	}
}
