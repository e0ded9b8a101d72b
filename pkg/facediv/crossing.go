package facediv

import (
	"sort"

	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// crossingEntry is one chord dividing the base loop: a path attached to B at
// indices e0 and e1 (e0 <= e1, per Step B's normalization), oriented e0 -> e1.
type crossingEntry struct {
	e0, e1 int
	path   []geom.VertexID
}

// resolveCrossings is C4 (§4.5): combine the base loop with crossing paths
// to divide it into sub-loops, then embed non-crossing paths and interior
// loops into the correct sub-loop. It never "declines" outright — per the
// open question in §9 about processCrossingEdges' missing explicit success
// return, this implementation treats every input as processable and only
// reports failure when a nested C5/C6 call hits a fatal graph invariant
// violation, which the driver then escalates to its own top-level fallback.
func resolveCrossings(ctx faceCtx, base []geom.VertexID, paths, loops [][]geom.VertexID) ([][]geom.VertexID, error) {
	n := len(base)
	indexOf := make(map[geom.VertexID]int, n)
	for i, v := range base {
		indexOf[v] = i
	}
	baseProj := ctx.projectLoop(base)

	endpointCount := map[geom.VertexID]int{}
	for _, p := range paths {
		endpointCount[p[0]]++
		endpointCount[p[len(p)-1]]++
	}

	resolveEnd := func(v, adj geom.VertexID) int {
		i, ok := indexOf[v]
		if !ok {
			return n
		}
		if endpointCount[v] <= 1 {
			return i
		}
		a := baseProj[(i-1+n)%n]
		b := baseProj[i]
		c := baseProj[(i+1)%n]
		p := ctx.project(adj)
		if internalToAngle(ctx.kernel, a, b, c, p) {
			return i
		}
		return n
	}

	var crossings []crossingEntry
	var noncrossings [][]geom.VertexID
	for _, p := range paths {
		frontIdx := resolveEnd(p[0], p[1])
		backIdx := resolveEnd(p[len(p)-1], p[len(p)-2])
		if frontIdx < n && backIdx < n {
			path := append([]geom.VertexID(nil), p...)
			e0, e1 := frontIdx, backIdx
			if e0 == e1 {
				if ctx.kernel.SignedArea(ctx.projectLoop(path)) < 0 {
					path = reverseVertices(path)
				}
			} else if e0 > e1 {
				e0, e1 = e1, e0
				path = reverseVertices(path)
			}
			crossings = append(crossings, crossingEntry{e0: e0, e1: e1, path: path})
		} else {
			noncrossings = append(noncrossings, p)
		}
	}

	crossings = append(crossings, crossingEntry{e0: 0, e1: n - 1, path: []geom.VertexID{base[0], base[n-1]}})

	sort.SliceStable(crossings, func(i, j int) bool {
		if crossings[i].e0 != crossings[j].e0 {
			return crossings[i].e0 < crossings[j].e0
		}
		if crossings[i].e1 != crossings[j].e1 {
			return crossings[i].e1 > crossings[j].e1
		}
		areaI := ctx.kernel.SignedArea(ctx.projectLoop(crossings[i].path))
		areaJ := ctx.kernel.SignedArea(ctx.projectLoop(crossings[j].path))
		return areaI > areaJ
	})

	subLoops := divideBaseLoop(base, crossings)

	var final [][]geom.VertexID
	for _, d := range subLoops {
		included, err := incorporateIntoSubLoop(ctx, d, noncrossings, loops, indexOf)
		if err != nil {
			return nil, err
		}
		final = append(final, included...)
	}
	return final, nil
}

// divideBaseLoop is Step D: walk the sorted crossings, using nested chords
// as shortcuts around the base loop where they exist, emitting exactly one
// sub-loop per crossing.
func divideBaseLoop(base []geom.VertexID, crossings []crossingEntry) [][]geom.VertexID {
	result := make([][]geom.VertexID, len(crossings))
	for k, c := range crossings {
		var loop []geom.VertexID
		pos := c.e0
		j := k + 1
		for pos != c.e1 {
			if j >= len(crossings) || crossings[j].e0 >= c.e1 {
				loop = append(loop, base[pos:c.e1]...)
				pos = c.e1
				break
			}
			c2 := crossings[j]
			loop = append(loop, base[pos:c2.e0]...)
			loop = append(loop, c2.path[:len(c2.path)-1]...)
			pos = c2.e1
			j++
			for j < len(crossings) && crossings[j].e0 < c2.e1 {
				j++
			}
		}
		closing := reverseVertices(c.path)
		loop = append(loop, closing[:len(closing)-1]...)
		result[k] = loop
	}
	return result
}

// incorporateIntoSubLoop is Step E for one sub-loop D: find which
// non-crossing paths and interior loops belong inside D, and either emit D
// unchanged or hand the combined directed edge set off to C5 then C6.
func incorporateIntoSubLoop(ctx faceCtx, d []geom.VertexID, noncrossings, interiorLoops [][]geom.VertexID, indexOf map[geom.VertexID]int) ([][]geom.VertexID, error) {
	dProj := ctx.projectLoop(d)
	aabb := ctx.kernel.FitAABB(dProj)

	// A non-crossing path's test point is whichever end is NOT on the base
	// loop; if somehow neither end is on it, the front end is as good as
	// any other point on the path.
	pathTestPoint := func(p []geom.VertexID) geom.Point2D {
		if _, onBase := indexOf[p[0]]; onBase {
			return ctx.project(p[len(p)-1])
		}
		return ctx.project(p[0])
	}

	var includedPaths, includedLoops []int
	for i, p := range noncrossings {
		tp := pathTestPoint(p)
		if !aabb.Intersects(tp) {
			continue
		}
		if ctx.kernel.PointInPoly(dProj, tp) != geomkernel.Outside {
			includedPaths = append(includedPaths, i)
		}
	}
	for i, l := range interiorLoops {
		tp := ctx.project(l[0])
		if !aabb.Intersects(tp) {
			continue
		}
		if ctx.kernel.PointInPoly(dProj, tp) != geomkernel.Outside {
			includedLoops = append(includedLoops, i)
		}
	}

	if len(includedPaths) == 0 && len(includedLoops) == 0 {
		return [][]geom.VertexID{d}, nil
	}

	var directed []directedEdge
	nD := len(d)
	for i := 0; i < nD; i++ {
		directed = append(directed, directedEdge{From: d[i], To: d[(i+1)%nD]})
	}
	addBothWays := func(loop []geom.VertexID, closed bool) {
		m := len(loop)
		limit := m - 1
		if closed {
			limit = m
		}
		for i := 0; i < limit; i++ {
			j := (i + 1) % m
			directed = append(directed, directedEdge{From: loop[i], To: loop[j]})
			directed = append(directed, directedEdge{From: loop[j], To: loop[i]})
		}
	}
	for _, i := range includedPaths {
		addBothWays(noncrossings[i], false)
	}
	for _, i := range includedLoops {
		addBothWays(interiorLoops[i], true)
	}

	faceLoops, holeLoops, err := splitPlanarGraph(ctx, directed)
	if err != nil {
		return nil, err
	}
	return mergeHolesIntoFaces(ctx, faceLoops, holeLoops)
}
