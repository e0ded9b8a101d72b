package facediv

import (
	"math"

	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// halfEdge is one outbound edge in the C5 graph (§3: "Graph (C5)"). visited
// is 0 until the edge is walked during the extraction of the loop currently
// in progress; it then holds that edge's 1-based position in the walk, so a
// repeat visit reveals exactly how much of the walk was a discardable
// prefix (§4.6).
type halfEdge struct {
	src, tgt geom.VertexID
	theta    float64
	visited  int
}

// splitPlanarGraph is C5 (§4.6): the fallback that extracts face loops and
// hole loops from a directed edge set by repeatedly walking the
// most-clockwise-continuation tour of the graph.
func splitPlanarGraph(ctx faceCtx, directed []directedEdge) (faceLoops, holeLoops [][]geom.VertexID, err error) {
	out := map[geom.VertexID][]*halfEdge{}
	var order []geom.VertexID
	seen := map[geom.VertexID]struct{}{}
	for _, e := range directed {
		srcP := ctx.project(e.From)
		tgtP := ctx.project(e.To)
		theta := ctx.kernel.ANG(ctx.kernel.Atan2(tgtP.Y-srcP.Y, tgtP.X-srcP.X))
		out[e.From] = append(out[e.From], &halfEdge{src: e.From, tgt: e.To, theta: theta})
		if _, ok := seen[e.From]; !ok {
			seen[e.From] = struct{}{}
			order = append(order, e.From)
		}
	}

	remaining := len(directed)
	for remaining > 0 {
		start := pickStartEdge(out, order)
		if start == nil {
			return nil, nil, wrapInvariant("splitPlanarGraph: no outbound edge remains but edges are unconsumed")
		}

		start.visited = 1
		walked := []*halfEdge{start}
		cur := start
		for {
			in := ctx.kernel.ANG(math.Pi + cur.theta)
			candidates := out[cur.tgt]
			if len(candidates) == 0 {
				return nil, nil, wrapInvariant("splitPlanarGraph: reached a vertex with no outbound edge")
			}
			next := selectMostClockwise(candidates, in, cur.src, ctx.kernel)
			if next.visited != 0 {
				loopLen := cur.visited - next.visited + 1
				loopEdges := walked[len(walked)-loopLen:]
				for _, e := range walked[:len(walked)-loopLen] {
					e.visited = 0
				}
				emitLoop(ctx, loopEdges, &faceLoops, &holeLoops)
				for _, e := range loopEdges {
					removeHalfEdge(out, e)
					remaining--
				}
				break
			}
			next.visited = cur.visited + 1
			walked = append(walked, next)
			cur = next
		}
	}
	return faceLoops, holeLoops, nil
}

// pickStartEdge prefers a vertex whose outbound list has exactly one edge;
// otherwise it takes the first outbound edge of the first vertex (in input
// order) that still has any (§4.6, §9 open question on this bias).
func pickStartEdge(out map[geom.VertexID][]*halfEdge, order []geom.VertexID) *halfEdge {
	for _, v := range order {
		if len(out[v]) == 1 {
			return out[v][0]
		}
	}
	for _, v := range order {
		if len(out[v]) > 0 {
			return out[v][0]
		}
	}
	return nil
}

// selectMostClockwise picks the outbound edge minimizing ANG(in - out.theta),
// excluding an immediate U-turn back to backSrc unless it is the only option.
func selectMostClockwise(candidates []*halfEdge, in float64, backSrc geom.VertexID, k geomkernel.Kernel) *halfEdge {
	if len(candidates) == 1 {
		return candidates[0]
	}
	var best *halfEdge
	bestVal := math.Inf(1)
	for _, o := range candidates {
		if o.tgt == backSrc {
			continue
		}
		val := k.ANG(in - o.theta)
		if val < bestVal {
			bestVal = val
			best = o
		}
	}
	if best == nil {
		return candidates[0]
	}
	return best
}

func removeHalfEdge(out map[geom.VertexID][]*halfEdge, target *halfEdge) {
	list := out[target.src]
	for i, e := range list {
		if e == target {
			out[target.src] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// emitLoop classifies a walked loop by its signed area. At each vertex the
// walk takes the first outbound edge clockwise from the reversed incoming
// direction, which keeps the region being traced on its left, so a bounded
// face comes out counter-clockwise: positive area is a face loop, zero or
// negative area a hole loop (§3 convention), and both are emitted in walk
// order.
func emitLoop(ctx faceCtx, edges []*halfEdge, faceLoops, holeLoops *[][]geom.VertexID) {
	raw := make([]geom.VertexID, len(edges))
	for i, e := range edges {
		raw[i] = e.src
	}
	if ctx.kernel.SignedArea(ctx.projectLoop(raw)) > 0 {
		*faceLoops = append(*faceLoops, raw)
	} else {
		*holeLoops = append(*holeLoops, raw)
	}
}
