package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/lignincsg/lignin/pkg/kernel"
	"github.com/lignincsg/lignin/pkg/kernel/brep"
	"github.com/lignincsg/lignin/pkg/kernel/manifold"
	"github.com/lignincsg/lignin/pkg/kernel/sdfx"
)

// selectKernel resolves the -kernel flag to a concrete kernel.Kernel
// backend. Every case here implements the same kernel.Kernel interface, so
// the caller never branches on which one it got.
func selectKernel(name string) (kernel.Kernel, error) {
	switch name {
	case "brep":
		return brep.New(), nil
	case "sdfx":
		return sdfx.New(), nil
	case "manifold":
		return manifold.New()
	default:
		return nil, fmt.Errorf("unknown kernel %q (want brep, sdfx, or manifold)", name)
	}
}

// runPrimitives builds a 2x2x2 box and a cylinder with the selected kernel,
// runs op between them, and writes the resulting mesh to stdout as OBJ. Unlike
// -brep, which loads existing meshes through pkg/kernel/brep specifically
// (the only backend that can wrap an arbitrary triangle mesh), this exercises
// each backend's own primitive construction and tessellation.
func runPrimitives(kernelName, op string) error {
	k, err := selectKernel(kernelName)
	if err != nil {
		return err
	}

	box := k.Box(2, 2, 2)
	cyl := k.Cylinder(3, 0.75, 32)
	cyl = k.Translate(cyl, 1, 1, -0.5)

	var result kernel.Solid
	switch op {
	case "union":
		result = k.Union(box, cyl)
	case "difference":
		result = k.Difference(box, cyl)
	case "intersection":
		result = k.Intersection(box, cyl)
	default:
		return fmt.Errorf("unknown boolean op %q (want union, difference, or intersection)", op)
	}

	mesh, err := k.ToMesh(result)
	if err != nil {
		return fmt.Errorf("%s kernel: ToMesh: %w", kernelName, err)
	}
	return writeMeshOBJ(os.Stdout, mesh)
}

// writeMeshOBJ writes a kernel.Mesh as a Wavefront OBJ triangle soup. This
// is deliberately independent of geom.WriteOBJ, which writes a
// geom.Polyhedron's shared vertex pool and face cycles: a sdfx/manifold mesh is a flat
// triangle list with no shared vertex identity to reconstruct one from.
func writeMeshOBJ(f *os.File, m *kernel.Mesh) error {
	w := bufio.NewWriter(f)
	for i := 0; i < m.VertexCount(); i++ {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]); err != nil {
			return err
		}
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Indices[3*i]+1, m.Indices[3*i+1]+1, m.Indices[3*i+2]+1
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", a, b, c); err != nil {
			return err
		}
	}
	return w.Flush()
}
