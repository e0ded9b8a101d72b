package facediv

import (
	"log"

	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// GenerateFaceLoops is the driver API spec.md exposes as generateFaceLoops
// (§6): for each face of the polyhedron, produce zero-or-more simple loops
// and return them as (face, loop) pairs, plus the total number of vertex
// handles emitted across all loops as a size hint for the caller.
func GenerateFaceLoops(poly *geom.Polyhedron, bundle *geom.DataBundle, k geomkernel.Kernel, opts *Options) ([]FaceLoop, int, error) {
	hooks := opts.hooks()
	var out []FaceLoop
	total := 0
	for i, f := range poly.Faces {
		faceID := geom.FaceID(i)
		ctx := faceCtx{pool: poly.Vertices, face: f, kernel: k}
		loops, err := faceLoopsForFace(ctx, faceID, poly.EdgesOf, bundle, hooks)
		if err != nil {
			// §7: propagation never leaks across face boundaries; this face
			// is an isolated retry unit, so we log and move on with
			// whatever faceLoopsForFace already fell back to.
			log.Printf("facediv: face %d: %v", i, err)
		}
		for _, loop := range loops {
			hooks.LoopEmitted(faceID, loop)
			out = append(out, FaceLoop{Face: faceID, Loop: loop})
			total += len(loop)
		}
	}
	return out, total, nil
}

// faceLoopsForFace is the per-face orchestration of §4.4: the fast paths,
// then C3 dispatch to either the "no paths" branch (the base loop plus each
// interior loop as a face), C4, or (on C4 failure) C5 followed by C6.
func faceLoopsForFace(ctx faceCtx, faceID geom.FaceID, edges *geom.EdgeSet, bundle *geom.DataBundle, hooks Hooks) ([][]geom.VertexID, error) {
	base := assembleBaseLoop(ctx.face, edges, bundle)
	hooks.BaseLoopAssembled(faceID, base)

	splitSet, ok := bundle.FaceSplitEdges[faceID]
	if !ok {
		hooks.FastPathTaken(faceID, 1)
		return [][]geom.VertexID{base}, nil
	}

	perimeter := perimeterPairs(base)
	var splitEdges []geom.UnorderedPair
	for pair := range splitSet {
		if _, onPerimeter := perimeter[pair]; !onPerimeter {
			splitEdges = append(splitEdges, pair)
		}
	}
	if len(splitEdges) == 0 {
		hooks.FastPathTaken(faceID, 3)
		return [][]geom.VertexID{base}, nil
	}

	indexOf := make(map[geom.VertexID]int, len(base))
	for i, v := range base {
		indexOf[v] = i
	}
	if len(splitEdges) == 1 {
		if loops, ok := trySplitAtChord(base, indexOf, splitEdges[0]); ok {
			hooks.FastPathTaken(faceID, 4)
			return loops, nil
		}
	}

	paths, loops := composePathsAndLoops(splitEdges, base)

	if len(paths) == 0 {
		// loops found here can't touch the boundary or each other, so each
		// splits cleanly into a hole (oriented negative wrt. the face,
		// carved out of base) and a face loop of its own: the same
		// vertices in the opposite orientation, standing for the sub-face
		// the loop encloses.
		faceLoops := [][]geom.VertexID{base}
		holeLoops := make([][]geom.VertexID, len(loops))
		for i, l := range loops {
			if ctx.kernel.SignedArea(ctx.projectLoop(l)) < 0 {
				holeLoops[i] = l
				faceLoops = append(faceLoops, reverseVertices(l))
			} else {
				holeLoops[i] = reverseVertices(l)
				faceLoops = append(faceLoops, l)
			}
		}
		return mergeHolesIntoFaces(ctx, faceLoops, holeLoops)
	}

	resolved, err := resolveCrossings(ctx, base, paths, loops)
	if err == nil {
		return resolved, nil
	}
	hooks.CrossingResolverFellBack(faceID, err)

	var directed []directedEdge
	for _, pair := range splitEdges {
		directed = append(directed, directedEdge{From: pair.Lo, To: pair.Hi})
		directed = append(directed, directedEdge{From: pair.Hi, To: pair.Lo})
	}
	n := len(base)
	for i := 0; i < n; i++ {
		directed = append(directed, directedEdge{From: base[i], To: base[(i+1)%n]})
	}
	faceLoops, holeLoops, err := splitPlanarGraph(ctx, directed)
	if err != nil {
		// §7: failure emits the base loop as a safe approximation.
		return [][]geom.VertexID{base}, err
	}
	merged, err := mergeHolesIntoFaces(ctx, faceLoops, holeLoops)
	if err != nil {
		return [][]geom.VertexID{base}, err
	}
	return merged, nil
}

// trySplitAtChord implements fast path 4 (§4.4): a single split edge whose
// both endpoints lie on the base loop cleanly divides it into two sub-loops
// without needing the general C3/C4 machinery.
func trySplitAtChord(base []geom.VertexID, indexOf map[geom.VertexID]int, chord geom.UnorderedPair) ([][]geom.VertexID, bool) {
	i1, ok1 := indexOf[chord.Lo]
	i2, ok2 := indexOf[chord.Hi]
	if !ok1 || !ok2 {
		return nil, false
	}
	if i1 > i2 {
		i1, i2 = i2, i1
	}
	n := len(base)
	loopA := append([]geom.VertexID(nil), base[i1:i2+1]...)
	loopB := make([]geom.VertexID, 0, n-(i2-i1)+1)
	loopB = append(loopB, base[i2:]...)
	loopB = append(loopB, base[:i1+1]...)
	return [][]geom.VertexID{loopA, loopB}, true
}
