package facediv

import (
	"testing"

	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// rotated reports whether got is a cyclic rotation of want, starting at any
// vertex but walking the same direction — the natural notion of "same
// loop" for an ordered-but-unrooted cycle.
func rotated(got, want []geom.VertexID) bool {
	if len(got) != len(want) {
		return false
	}
	n := len(want)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if got[i] != want[(i+shift)%n] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func vids(pool *geom.VertexPool, coords ...geom.Vec3) []geom.VertexID {
	ids := make([]geom.VertexID, len(coords))
	for i, c := range coords {
		ids[i] = pool.Add(c)
	}
	return ids
}

// buildTriangle constructs S1/S2's F = [A(0,0,0), B(1,0,0), C(0,1,0)].
func buildTriangle() (*geom.Polyhedron, *geom.Face, geom.VertexID, geom.VertexID, geom.VertexID) {
	poly := geom.NewPolyhedron()
	ids := vids(poly.Vertices, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0))
	f := poly.NewFace(ids)
	return poly, f, ids[0], ids[1], ids[2]
}

// buildSquare constructs S3-S6's F = [A(0,0), B(2,0), C(2,2), D(0,2)].
func buildSquare() (*geom.Polyhedron, *geom.Face, [4]geom.VertexID) {
	poly := geom.NewPolyhedron()
	ids := vids(poly.Vertices,
		geom.NewVec3(0, 0, 0), geom.NewVec3(2, 0, 0),
		geom.NewVec3(2, 2, 0), geom.NewVec3(0, 2, 0))
	f := poly.NewFace(ids)
	return poly, f, [4]geom.VertexID{ids[0], ids[1], ids[2], ids[3]}
}

func TestS1_UntouchedFace(t *testing.T) {
	poly, _, a, b, c := buildTriangle()
	bundle := geom.NewDataBundle()

	loops, total, err := GenerateFaceLoops(poly, bundle, geomkernel.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("want 1 loop, got %d", len(loops))
	}
	want := []geom.VertexID{a, b, c}
	if !rotated(loops[0].Loop, want) {
		t.Errorf("loop = %v, want rotation of %v", loops[0].Loop, want)
	}
	if total != len(loops[0].Loop) {
		t.Errorf("total = %d, want %d", total, len(loops[0].Loop))
	}
}

func TestS2_SinglePerimeterSplit(t *testing.T) {
	poly, f, a, b, c := buildTriangle()
	m := poly.Vertices.Add(geom.NewVec3(0.5, 0, 0))

	bundle := geom.NewDataBundle()
	abEdge := f.Edges[0] // A -> B
	bundle.DividedEdges[abEdge] = []geom.VertexID{m}

	loops, _, err := GenerateFaceLoops(poly, bundle, geomkernel.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("want 1 loop, got %d", len(loops))
	}
	want := []geom.VertexID{a, m, b, c}
	if !rotated(loops[0].Loop, want) {
		t.Errorf("loop = %v, want rotation of %v", loops[0].Loop, want)
	}
}

func TestS3_SingleChord(t *testing.T) {
	poly, f, v := buildSquare()
	a, b, c, d := v[0], v[1], v[2], v[3]

	bundle := geom.NewDataBundle()
	bundle.AddFaceSplitEdge(0, b, d)

	loops, _, err := GenerateFaceLoops(poly, bundle, geomkernel.New(), nil)
	_ = f
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) != 2 {
		t.Fatalf("want 2 loops, got %d: %v", len(loops), loops)
	}
	wantABD := []geom.VertexID{a, b, d}
	wantBCD := []geom.VertexID{b, c, d}
	found := map[string]bool{}
	for _, fl := range loops {
		if rotated(fl.Loop, wantABD) {
			found["ABD"] = true
		}
		if rotated(fl.Loop, wantBCD) {
			found["BCD"] = true
		}
	}
	if !found["ABD"] || !found["BCD"] {
		t.Errorf("loops = %v, want rotations of %v and %v", loops, wantABD, wantBCD)
	}

	k := geomkernel.New()
	ctx := faceCtx{pool: poly.Vertices, face: poly.Faces[0], kernel: k}
	for _, fl := range loops {
		if area := k.SignedArea(ctx.projectLoop(fl.Loop)); area <= 0 {
			t.Errorf("loop %v has non-positive area %v, want CCW", fl.Loop, area)
		}
	}
}

func TestS4_InteriorHole(t *testing.T) {
	poly, _, v := buildSquare()
	// PQRS: a small CW inner square, fully interior.
	pq := vids(poly.Vertices,
		geom.NewVec3(0.5, 0.5, 0), geom.NewVec3(0.5, 1.5, 0),
		geom.NewVec3(1.5, 1.5, 0), geom.NewVec3(1.5, 0.5, 0))
	p, q, r, s := pq[0], pq[1], pq[2], pq[3]

	bundle := geom.NewDataBundle()
	bundle.AddFaceSplitEdge(0, p, q)
	bundle.AddFaceSplitEdge(0, q, r)
	bundle.AddFaceSplitEdge(0, r, s)
	bundle.AddFaceSplitEdge(0, s, p)

	loops, _, err := GenerateFaceLoops(poly, bundle, geomkernel.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// PQRS is a closed interior loop touching neither the boundary nor
	// itself, so it produces two face loops: the outer perimeter with the
	// hole stitched in, and PQRS's own interior as a standalone sub-face
	// (reversed to CCW). Together they partition the whole square.
	if len(loops) != 2 {
		t.Fatalf("want 2 loops (perimeter-with-hole and inner sub-face), got %d: %v", len(loops), loops)
	}

	k := geomkernel.New()
	ctx := faceCtx{pool: poly.Vertices, face: poly.Faces[0], kernel: k}
	outer := k.SignedArea(ctx.projectLoop([]geom.VertexID{v[0], v[1], v[2], v[3]}))
	hole := k.SignedArea(ctx.projectLoop([]geom.VertexID{p, q, r, s}))
	wantOuter := outer + hole // hole's signed area is already negative
	wantInner := -hole        // PQRS reversed to positive orientation

	var stitched, inner *FaceLoop
	for i := range loops {
		switch len(loops[i].Loop) {
		case 8:
			stitched = &loops[i]
		case 4:
			inner = &loops[i]
		}
	}
	if stitched == nil || inner == nil {
		t.Fatalf("expected one 8-vertex stitched loop and one 4-vertex inner loop, got %v", loops)
	}

	const eps = 1e-9
	if diff := k.SignedArea(ctx.projectLoop(stitched.Loop)) - wantOuter; diff > eps || diff < -eps {
		t.Errorf("stitched area = %v, want %v (outer %v + hole %v)", k.SignedArea(ctx.projectLoop(stitched.Loop)), wantOuter, outer, hole)
	}
	if diff := k.SignedArea(ctx.projectLoop(inner.Loop)) - wantInner; diff > eps || diff < -eps {
		t.Errorf("inner sub-face area = %v, want %v", k.SignedArea(ctx.projectLoop(inner.Loop)), wantInner)
	}
	if !rotated(inner.Loop, []geom.VertexID{s, r, q, p}) {
		t.Errorf("inner loop = %v, want rotation of reversed PQRS", inner.Loop)
	}

	seen := map[geom.VertexID]int{}
	for _, id := range stitched.Loop {
		seen[id]++
	}
	for _, id := range append(append([]geom.VertexID{}, v[:]...), p, q, r, s) {
		if seen[id] != 1 {
			t.Errorf("vertex %v appears %d times in stitched loop, want 1", id, seen[id])
		}
	}
}

func TestS5_TwoChordsAtSharedVertex(t *testing.T) {
	poly, _, v := buildSquare()
	a, b, c, d := v[0], v[1], v[2], v[3]
	// P, Q lie on CD (from C(2,2) to D(0,2)), inserted as perimeter splits
	// so they are themselves base-loop vertices.
	pq := vids(poly.Vertices, geom.NewVec3(1.5, 2, 0), geom.NewVec3(0.5, 2, 0))
	p, q := pq[0], pq[1]

	bundle := geom.NewDataBundle()
	cdEdge := poly.Faces[0].Edges[2] // C -> D
	bundle.DividedEdges[cdEdge] = []geom.VertexID{p, q}
	bundle.AddFaceSplitEdge(0, b, p)
	bundle.AddFaceSplitEdge(0, b, q)

	loops, _, err := GenerateFaceLoops(poly, bundle, geomkernel.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) != 3 {
		t.Fatalf("want 3 loops, got %d: %v", len(loops), loops)
	}

	all := map[geom.VertexID]bool{}
	for _, fl := range loops {
		for _, id := range fl.Loop {
			all[id] = true
		}
	}
	for _, id := range []geom.VertexID{a, b, c, d, p, q} {
		if !all[id] {
			t.Errorf("vertex %v missing from output loops", id)
		}
	}
}

func TestS6_DanglingInteriorPath(t *testing.T) {
	poly, _, v := buildSquare()
	b := v[1]
	p := poly.Vertices.Add(geom.NewVec3(1, 1, 0))

	bundle := geom.NewDataBundle()
	bundle.AddFaceSplitEdge(0, b, p)

	loops, _, err := GenerateFaceLoops(poly, bundle, geomkernel.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("want 1 loop, got %d: %v", len(loops), loops)
	}
	countB, countP := 0, 0
	for _, id := range loops[0].Loop {
		if id == b {
			countB++
		}
		if id == p {
			countP++
		}
	}
	// A dangling path with no other split touches nothing to close a real
	// sub-face against, so it degenerates to a zero-area slit that visits
	// its attachment vertex twice. This is a tolerated degenerate output,
	// not a correctness target in its own right: nothing in this package
	// guarantees numerically robust behavior for a path that never closes.
	if countB != 2 || countP != 1 {
		t.Errorf("loop = %v, want B visited twice and P once (dangling slit)", loops[0].Loop)
	}
}
