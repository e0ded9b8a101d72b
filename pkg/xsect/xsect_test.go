package xsect

import (
	"testing"

	"github.com/lignincsg/lignin/pkg/geom"
)

func TestIntersectOverlappingBoxes(t *testing.T) {
	a := geom.NewPolyhedron()
	a.AddBox(geom.NewVec3(0, 0, 0), geom.NewVec3(2, 2, 2))
	b := geom.NewPolyhedron()
	b.AddBox(geom.NewVec3(1, 1, 1), geom.NewVec3(2, 2, 2))

	bundleA, bundleB, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bundleA.FaceSplitEdges) == 0 {
		t.Errorf("expected face A to record split edges from the overlap, got none")
	}
	if len(bundleB.FaceSplitEdges) == 0 {
		t.Errorf("expected face B to record split edges from the overlap, got none")
	}

	// Every split-edge endpoint on A's side must resolve to a real vertex
	// in A's own pool (not, for example, an index only valid in B's pool).
	for faceID, set := range bundleA.FaceSplitEdges {
		for pair := range set {
			if int(pair.Lo) >= a.Vertices.Len() || int(pair.Hi) >= a.Vertices.Len() {
				t.Errorf("face %d split edge %v references a vertex outside A's pool (len %d)", faceID, pair, a.Vertices.Len())
			}
		}
	}
	for faceID, set := range bundleB.FaceSplitEdges {
		for pair := range set {
			if int(pair.Lo) >= b.Vertices.Len() || int(pair.Hi) >= b.Vertices.Len() {
				t.Errorf("face %d split edge %v references a vertex outside B's pool (len %d)", faceID, pair, b.Vertices.Len())
			}
		}
	}
}

func TestIntersectDisjointBoxesNoOp(t *testing.T) {
	a := geom.NewPolyhedron()
	a.AddBox(geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))
	b := geom.NewPolyhedron()
	b.AddBox(geom.NewVec3(10, 10, 10), geom.NewVec3(1, 1, 1))

	bundleA, bundleB, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundleA.FaceSplitEdges) != 0 || len(bundleB.FaceSplitEdges) != 0 {
		t.Errorf("expected no intersections for disjoint boxes, got A=%v B=%v", bundleA.FaceSplitEdges, bundleB.FaceSplitEdges)
	}
}

func TestIntersectNilPolyhedron(t *testing.T) {
	if _, _, err := Intersect(nil, geom.NewPolyhedron()); err == nil {
		t.Errorf("expected error for nil polyhedron")
	}
}
