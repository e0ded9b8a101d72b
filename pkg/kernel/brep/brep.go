// Package brep implements the kernel.Kernel interface with an explicit
// boundary representation instead of an implicit (SDF) or external
// (manifold) one: primitives are built as geom.Polyhedron values, booleans
// run pkg/xsect and pkg/facediv directly on those polyhedra, and ToMesh
// ear-clips the resulting face loops. It exists to give pkg/facediv a real
// downstream consumer instead of only its own tests.
package brep

import (
	"fmt"
	"math"

	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
	"github.com/lignincsg/lignin/pkg/kernel"
)

var _ kernel.Kernel = (*Kernel)(nil)

// Kernel implements kernel.Kernel with a boundary representation backend.
type Kernel struct {
	geo geomkernel.Kernel
}

// New returns a new brep Kernel.
func New() *Kernel {
	return &Kernel{geo: geomkernel.New()}
}

// solid wraps a *geom.Polyhedron to implement kernel.Solid.
type solid struct {
	poly *geom.Polyhedron
}

// BoundingBox returns the axis-aligned bounding box.
func (s *solid) BoundingBox() (min, max [3]float64) {
	if s.poly.Vertices.Len() == 0 {
		return
	}
	lo := s.poly.Vertices.Coord(0)
	hi := lo
	for i := 1; i < s.poly.Vertices.Len(); i++ {
		c := s.poly.Vertices.Coord(geom.VertexID(i))
		lo = geom.NewVec3(math.Min(lo.X, c.X), math.Min(lo.Y, c.Y), math.Min(lo.Z, c.Z))
		hi = geom.NewVec3(math.Max(hi.X, c.X), math.Max(hi.Y, c.Y), math.Max(hi.Z, c.Z))
	}
	return [3]float64{lo.X, lo.Y, lo.Z}, [3]float64{hi.X, hi.Y, hi.Z}
}

func unwrap(s kernel.Solid) *geom.Polyhedron { return s.(*solid).poly }
func wrap(p *geom.Polyhedron) kernel.Solid   { return &solid{poly: p} }

// Wrap adapts an existing polyhedron (e.g. one just read from an OBJ file)
// into a kernel.Solid this backend can operate on.
func Wrap(p *geom.Polyhedron) kernel.Solid { return wrap(p) }

// Unwrap extracts the underlying polyhedron from a kernel.Solid that was
// produced by this backend. It returns an error for a Solid built by a
// different kernel.Kernel implementation.
func Unwrap(s kernel.Solid) (*geom.Polyhedron, error) {
	b, ok := s.(*solid)
	if !ok {
		return nil, fmt.Errorf("brep.Unwrap: solid was not built by pkg/kernel/brep")
	}
	return b.poly, nil
}

// Box creates a box with the given dimensions, minimum corner at the
// origin — matching sdfx's placement convention so callers can swap
// backends without rewriting their placement translations.
func (k *Kernel) Box(x, y, z float64) kernel.Solid {
	poly := geom.NewPolyhedron()
	poly.AddBox(geom.NewVec3(0, 0, 0), geom.NewVec3(x, y, z))
	return wrap(poly)
}

// Cylinder creates a cylinder of the given height and radius, base centered
// at the origin.
func (k *Kernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	poly := geom.NewPolyhedron()
	poly.AddCylinder(height, radius, segments)
	return wrap(poly)
}

// Translate moves every vertex of s by (x, y, z). Boundary-representation
// solids own their vertex pool outright, so the transform applies in place
// on a copy rather than composing a deferred matrix the way the SDF backend
// does.
func (k *Kernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return k.transform(s, func(c geom.Vec3) geom.Vec3 {
		return c.Add(geom.NewVec3(x, y, z))
	})
}

// Rotate rotates s by Euler angles in degrees around X, Y, Z, applied in
// that order (X first, then Y, then Z), matching the sdfx backend's
// convention.
func (k *Kernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	rx := x * math.Pi / 180
	ry := y * math.Pi / 180
	rz := z * math.Pi / 180
	return k.transform(s, func(c geom.Vec3) geom.Vec3 {
		return rotateZ(rotateY(rotateX(c, rx), ry), rz)
	})
}

func rotateX(v geom.Vec3, a float64) geom.Vec3 {
	s, c := math.Sin(a), math.Cos(a)
	return geom.NewVec3(v.X, v.Y*c-v.Z*s, v.Y*s+v.Z*c)
}

func rotateY(v geom.Vec3, a float64) geom.Vec3 {
	s, c := math.Sin(a), math.Cos(a)
	return geom.NewVec3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
}

func rotateZ(v geom.Vec3, a float64) geom.Vec3 {
	s, c := math.Sin(a), math.Cos(a)
	return geom.NewVec3(v.X*c-v.Y*s, v.X*s+v.Y*c, v.Z)
}

// transform rebuilds s with every vertex mapped through f, leaving the
// topology (faces, edges, windings) untouched.
func (k *Kernel) transform(s kernel.Solid, f func(geom.Vec3) geom.Vec3) kernel.Solid {
	src := unwrap(s)
	out := geom.NewPolyhedron()
	for i := 0; i < src.Vertices.Len(); i++ {
		out.Vertices.Add(f(src.Vertices.Coord(geom.VertexID(i))))
	}
	for _, face := range src.Faces {
		out.NewFace(append([]geom.VertexID(nil), face.Vertices...))
	}
	return wrap(out)
}
