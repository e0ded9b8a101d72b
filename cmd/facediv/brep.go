package main

import (
	"fmt"
	"os"

	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/kernel"
	"github.com/lignincsg/lignin/pkg/kernel/brep"
)

// runBrep loads two OBJ meshes, runs the named boolean operation through
// pkg/kernel/brep, and writes the result to stdout as OBJ.
func runBrep(op, pathA, pathB string) error {
	polyA, err := readOBJFile(pathA)
	if err != nil {
		return fmt.Errorf("reading %s: %w", pathA, err)
	}
	polyB, err := readOBJFile(pathB)
	if err != nil {
		return fmt.Errorf("reading %s: %w", pathB, err)
	}

	k := brep.New()
	a := brep.Wrap(polyA)
	b := brep.Wrap(polyB)

	var result kernel.Solid
	switch op {
	case "union":
		result = k.Union(a, b)
	case "difference":
		result = k.Difference(a, b)
	case "intersection":
		result = k.Intersection(a, b)
	default:
		return fmt.Errorf("unknown boolean op %q (want union, difference, or intersection)", op)
	}

	out, err := brep.Unwrap(result)
	if err != nil {
		return err
	}
	return geom.WriteOBJ(os.Stdout, out)
}

func readOBJFile(path string) (*geom.Polyhedron, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return geom.ReadOBJ(f)
}
