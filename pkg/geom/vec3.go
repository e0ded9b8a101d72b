// Package geom defines the vertex/edge/face data model that pkg/facediv
// operates on: a process-wide vertex pool, unordered edge handles, and
// planar faces with an affine projector into 2D.
package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec3 is a 3D coordinate. It embeds sdfx's vector type so that geometry
// built here can be handed straight to a kernel.Kernel backend built on
// sdfx without a conversion step.
type Vec3 struct {
	v3.Vec
}

// NewVec3 constructs a Vec3 from components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{v3.Vec{X: x, Y: y, Z: z}}
}

// Add returns the component-wise sum.
func (a Vec3) Add(b Vec3) Vec3 {
	return NewVec3(a.X+b.X, a.Y+b.Y, a.Z+b.Z)
}

// Sub returns the component-wise difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return NewVec3(a.X-b.X, a.Y-b.Y, a.Z-b.Z)
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 {
	return NewVec3(a.X*s, a.Y*s, a.Z*s)
}

// Dot returns the dot product.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return NewVec3(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Length returns the Euclidean norm.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalized returns a unit vector in the same direction, or the zero
// vector if a is (numerically) zero-length.
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	if l < 1e-15 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}
