package facediv

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/samber/lo"

	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// faceSpatial adapts a projected face loop's bounding box to rtreego.Spatial
// so the containment scan can prefilter candidate faces for a hole instead
// of testing every face against every hole.
type faceSpatial struct {
	idx  int
	rect rtreego.Rect
}

func (s faceSpatial) Bounds() rtreego.Rect { return s.rect }

// sharedInfo is the result of compareFaceLoopAndHoleLoop (§4.7): whether the
// face and hole share a vertex or edge, the first shared pair found, and one
// hole vertex known not to lie on the face (used as the containment test
// point when a shared vertex exists).
type sharedInfo struct {
	sharesVertex bool
	sharesEdge   bool
	faceIdx      int
	holeIdx      int
	unmatchedIdx int
	hasUnmatched bool
}

// compareFaceLoopAndHoleLoop is the pairwise comparison of §4.7. It is
// implemented as a hash join (a face-vertex position map, one probe per
// hole vertex) rather than the source's address-sorted merge join — same
// result, since both are just ways of finding the intersection of two
// vertex-identity sets, and a map probe is the idiomatic Go equivalent of
// the pointer-sorted linear merge described in §9.
func compareFaceLoopAndHoleLoop(face, hole []geom.VertexID) sharedInfo {
	facePos := make(map[geom.VertexID]int, len(face))
	for i, v := range face {
		facePos[v] = i
	}

	info := sharedInfo{}
	for k, hv := range hole {
		j, ok := facePos[hv]
		if !ok {
			if !info.hasUnmatched {
				info.hasUnmatched = true
				info.unmatchedIdx = k
			}
			continue
		}
		if !info.sharesVertex {
			info.sharesVertex = true
			info.faceIdx = j
			info.holeIdx = k
		}
		prevFace := face[(j-1+len(face))%len(face)]
		nextHole := hole[(k+1)%len(hole)]
		if prevFace == nextHole {
			info.sharesEdge = true
		}
	}
	return info
}

// mergeHolesIntoFaces is C6 (§4.7): decide which face loop contains which
// hole loop, then stitch each hole into its host, either by a direct patch
// through a shared vertex or by the geometry kernel's hole-incorporation
// bridge.
func mergeHolesIntoFaces(ctx faceCtx, faceLoops, holeLoops [][]geom.VertexID) ([][]geom.VertexID, error) {
	if len(holeLoops) == 0 {
		return faceLoops, nil
	}

	faceProj := make([][]geom.Point2D, len(faceLoops))
	faceAABB := make([]geomkernel.AABB2D, len(faceLoops))
	for i, f := range faceLoops {
		faceProj[i] = ctx.projectLoop(f)
		faceAABB[i] = ctx.kernel.FitAABB(faceProj[i])
	}
	holeProj := make([][]geom.Point2D, len(holeLoops))
	for i, h := range holeLoops {
		holeProj[i] = ctx.projectLoop(h)
	}

	tree := rtreego.NewTree(2, 4, 16)
	for i, aabb := range faceAABB {
		if rect, ok := aabb.ToRtreeRect(); ok {
			tree.Insert(faceSpatial{idx: i, rect: rect})
		}
	}

	containingFaces := make([][]int, len(holeLoops))
	sharedByHole := make([]map[int]sharedInfo, len(holeLoops))

	for hi := range holeLoops {
		sharedByHole[hi] = map[int]sharedInfo{}
		holeRect, hasRect := ctx.kernel.FitAABB(holeProj[hi]).ToRtreeRect()
		var candidateIdx []int
		if hasRect {
			for _, sp := range tree.SearchIntersect(holeRect) {
				candidateIdx = append(candidateIdx, sp.(faceSpatial).idx)
			}
		} else {
			for fi := range faceLoops {
				candidateIdx = append(candidateIdx, fi)
			}
		}

		for _, fi := range candidateIdx {
			info := compareFaceLoopAndHoleLoop(faceLoops[fi], holeLoops[hi])

			var testPoint geom.Point2D
			switch {
			case info.sharesVertex && info.hasUnmatched:
				sharedByHole[hi][fi] = info
				testPoint = holeProj[hi][info.unmatchedIdx]
			case info.sharesVertex && info.sharesEdge:
				sharedByHole[hi][fi] = info
				continue // face fi cannot contain hole hi
			case info.sharesVertex:
				return nil, wrapInvariant("mergeHolesIntoFaces: all hole vertices shared with face but no shared edge")
			default:
				testPoint = holeProj[hi][0]
			}

			if !faceAABB[fi].Intersects(testPoint) {
				continue
			}
			if ctx.kernel.PointInPoly(faceProj[fi], testPoint) == geomkernel.Inside {
				containingFaces[hi] = append(containingFaces[hi], fi)
			}
		}
	}

	patchedInto := map[int]int{} // hole idx -> face idx, resolved by direct patch
	assignedTo := map[int]int{}  // hole idx -> face idx, resolved by unique containment

	for hi := range holeLoops {
		if len(containingFaces[hi]) > 0 || len(sharedByHole[hi]) == 0 {
			continue
		}
		fi := firstMapKeySorted(sharedByHole[hi])
		info := sharedByHole[hi][fi]
		faceLoops[fi] = patchHoleIntoFace(faceLoops[fi], holeLoops[hi], info.faceIdx, info.holeIdx)
		patchedInto[hi] = fi
	}

	pending := lo.Filter(rangeInts(len(holeLoops)), func(hi int, _ int) bool {
		_, patched := patchedInto[hi]
		return !patched
	})
	for len(pending) > 0 {
		progressed := false
		var next []int
		for _, hi := range pending {
			if len(containingFaces[hi]) == 1 {
				fi := containingFaces[hi][0]
				assignedTo[hi] = fi
				progressed = true
				for hj := range holeLoops {
					if hj == hi {
						continue
					}
					containingFaces[hj] = lo.Without(containingFaces[hj], fi)
				}
				continue
			}
			next = append(next, hi)
		}
		if !progressed {
			// §7: unassignable hole — dropped without being reported.
			break
		}
		pending = next
	}

	holesByFace := map[int][]int{}
	for hi, fi := range assignedTo {
		holesByFace[fi] = append(holesByFace[fi], hi)
	}

	result := make([][]geom.VertexID, 0, len(faceLoops))
	for fi, f := range faceLoops {
		hs := holesByFace[fi]
		if len(hs) == 0 {
			result = append(result, f)
			continue
		}
		sort.Ints(hs)
		loops2D := make([][]geom.Point2D, 0, len(hs)+1)
		loops2D = append(loops2D, faceProj[fi])
		for _, hi := range hs {
			loops2D = append(loops2D, holeProj[hi])
		}
		refs := ctx.kernel.IncorporateHolesIntoPolygon(loops2D)
		stitched := make([]geom.VertexID, len(refs))
		for i, r := range refs {
			if r.LoopIndex == 0 {
				stitched[i] = f[r.VertexIndex]
			} else {
				stitched[i] = holeLoops[hs[r.LoopIndex-1]][r.VertexIndex]
			}
		}
		result = append(result, stitched)
	}
	return result, nil
}

// patchHoleIntoFace splices a hole directly into a face loop through a
// shared vertex (§4.7's "patch" case): the hole's vertices, rotated to start
// just after the shared vertex and ending on it, are inserted immediately
// after that vertex in the face loop, so the loop passes through it twice.
func patchHoleIntoFace(face, hole []geom.VertexID, faceIdx, holeIdx int) []geom.VertexID {
	m := len(hole)
	rotated := make([]geom.VertexID, 0, m+1)
	for i := 1; i <= m; i++ {
		rotated = append(rotated, hole[(holeIdx+i)%m])
	}

	out := make([]geom.VertexID, 0, len(face)+len(rotated))
	out = append(out, face[:faceIdx+1]...)
	out = append(out, rotated...)
	out = append(out, face[faceIdx+1:]...)
	return out
}

func firstMapKeySorted(m map[int]sharedInfo) int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys[0]
}

func rangeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
