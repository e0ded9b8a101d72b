package geomkernel

import (
	"math"

	"github.com/lignincsg/lignin/pkg/geom"
)

// IncorporateHolesIntoPolygon stitches each hole loop into the outer loop
// by a bridge edge, returning an interleaved index list a caller can walk
// to produce a single simple polygon boundary (§4.7's
// "incorporateHolesIntoPolygon", §6). loops[0] is the outer (positive-area)
// loop; loops[1:] are holes (negative-area, though this function does not
// itself check orientation).
//
// Bridging strategy: for each hole (processed rightmost-vertex first, so
// nested/adjacent holes bridge in a stable, non-crossing order), pick the
// hole vertex with the greatest X coordinate, cast a ray toward +X, and
// bridge to the nearest point on the current boundary that the ray
// crosses — walking to that edge's endpoint with the larger X coordinate,
// the same "mutual visibility bridge" construction used by hole-aware ear
// clipping.
func (Default) IncorporateHolesIntoPolygon(loops [][]geom.Point2D) []LoopVertexRef {
	if len(loops) == 0 {
		return nil
	}

	// Working boundary: a mutable slice of refs into the original loops,
	// starting as just the outer loop.
	boundary := make([]LoopVertexRef, len(loops[0]))
	for i := range loops[0] {
		boundary[i] = LoopVertexRef{LoopIndex: 0, VertexIndex: i}
	}

	holeOrder := make([]int, 0, len(loops)-1)
	for i := 1; i < len(loops); i++ {
		holeOrder = append(holeOrder, i)
	}
	sortByRightmostXDescending(loops, holeOrder)

	for _, li := range holeOrder {
		hole := loops[li]
		if len(hole) == 0 {
			continue
		}
		boundary = bridgeHole(loops, boundary, li, hole)
	}

	return boundary
}

func sortByRightmostXDescending(loops [][]geom.Point2D, order []int) {
	rightmostX := func(li int) float64 {
		best := math.Inf(-1)
		for _, p := range loops[li] {
			if p.X > best {
				best = p.X
			}
		}
		return best
	}
	// insertion sort: hole counts are small in practice and this keeps the
	// comparison logic easy to read against §4.7's prose.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && rightmostX(order[j]) > rightmostX(order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
}

// bridgeHole finds the hole's rightmost vertex, casts a ray toward +X to
// find the nearest boundary edge it crosses, and splices the hole into the
// boundary through that edge's far endpoint.
func bridgeHole(loops [][]geom.Point2D, boundary []LoopVertexRef, holeIdx int, hole []geom.Point2D) []LoopVertexRef {
	hStart := 0
	for i, p := range hole {
		if p.X > hole[hStart].X {
			hStart = i
		}
	}
	m := coordOf(loops, LoopVertexRef{LoopIndex: holeIdx, VertexIndex: hStart})

	bestBoundaryPos := -1
	bestX := math.Inf(1)
	n := len(boundary)
	for i := 0; i < n; i++ {
		a := coordOf(loops, boundary[i])
		b := coordOf(loops, boundary[(i+1)%n])
		if (a.Y > m.Y) == (b.Y > m.Y) {
			continue // edge does not straddle the ray's Y level
		}
		xCross := a.X + (m.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if xCross < m.X {
			continue // crossing is behind the ray origin
		}
		// The nearest forward crossing is the only one guaranteed not to
		// pass through some other boundary or hole edge first — bridging
		// to a farther crossing can cut across nearer geometry once more
		// than one hole has already been spliced into the boundary.
		if xCross >= bestX {
			continue
		}
		// Bridge to whichever endpoint of the crossed edge has larger X;
		// it is guaranteed visible from m for a simple (non-degenerate)
		// polygon boundary.
		farIdx := i
		if b.X > a.X {
			farIdx = (i + 1) % n
		}
		bestX = xCross
		bestBoundaryPos = farIdx
	}
	if bestBoundaryPos < 0 {
		// Degenerate input (hole entirely outside the ray sweep); fall
		// back to bridging at the boundary's first vertex rather than
		// dropping the hole silently.
		bestBoundaryPos = 0
	}

	out := make([]LoopVertexRef, 0, n+len(hole)+2)
	out = append(out, boundary[:bestBoundaryPos+1]...)
	for i := 0; i < len(hole); i++ {
		idx := (hStart + i) % len(hole)
		out = append(out, LoopVertexRef{LoopIndex: holeIdx, VertexIndex: idx})
	}
	out = append(out, LoopVertexRef{LoopIndex: holeIdx, VertexIndex: hStart})
	out = append(out, boundary[bestBoundaryPos:]...)
	return out
}

func coordOf(loops [][]geom.Point2D, ref LoopVertexRef) geom.Point2D {
	return loops[ref.LoopIndex][ref.VertexIndex]
}
