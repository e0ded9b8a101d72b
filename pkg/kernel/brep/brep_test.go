package brep

import (
	"testing"

	"github.com/lignincsg/lignin/pkg/kernel"
)

func TestBoxToMesh(t *testing.T) {
	k := New()
	box := k.Box(2, 3, 4)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatalf("expected a non-empty mesh for a box")
	}
	if mesh.TriangleCount() == 0 {
		t.Errorf("expected at least one triangle, got 0")
	}
	min, max := box.BoundingBox()
	want := [3]float64{2, 3, 4}
	for i := range want {
		if max[i]-min[i] != want[i] {
			t.Errorf("axis %d extent = %v, want %v", i, max[i]-min[i], want[i])
		}
	}
}

func TestUnionOfOverlappingBoxes(t *testing.T) {
	k := New()
	a := k.Box(2, 2, 2)
	b := k.Translate(k.Box(2, 2, 2), 1, 1, 1)

	u := k.Union(a, b)
	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.IsEmpty() {
		t.Errorf("expected a non-empty union mesh")
	}
}

func TestDifferenceProducesSolid(t *testing.T) {
	k := New()
	a := k.Box(4, 4, 4)
	b := k.Translate(k.Box(2, 2, 2), 1, 1, 1)

	d := k.Difference(a, b)
	mesh, err := k.ToMesh(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mesh.IsEmpty() {
		t.Errorf("expected a non-empty difference mesh")
	}
}

func TestTranslateMovesBoundingBox(t *testing.T) {
	var k kernel.Kernel = New()
	box := k.Box(1, 1, 1)
	moved := k.Translate(box, 5, 0, 0)
	min, _ := moved.BoundingBox()
	if min[0] != 5 {
		t.Errorf("min.X = %v, want 5", min[0])
	}
}
