// Package geomkernel implements the 2D primitives spec.md treats as an
// external "Geometry Kernel" collaborator (§6): the face projector,
// orient2d, signed area, point-in-polygon classification, axis-aligned
// bounding boxes, and angle normalization, plus the hole-into-polygon
// stitcher used by pkg/facediv's C6.
//
// pkg/facediv depends only on the Kernel interface, never on Default
// directly, matching spec.md's framing of the geometry kernel as a
// swappable, externally-owned dependency.
package geomkernel

import "github.com/lignincsg/lignin/pkg/geom"

// Classification is the result of a classified point-in-polygon test.
type Classification int

const (
	Outside Classification = iota
	On
	Inside
)

// LoopVertexRef identifies a vertex by its position within one of several
// loops passed to IncorporateHolesIntoPolygon: LoopIndex 0 is the outer
// loop, LoopIndex i>0 is the (i-1)th hole.
type LoopVertexRef struct {
	LoopIndex, VertexIndex int
}

// Kernel is the Geometry Kernel interface pkg/facediv consumes (§6).
type Kernel interface {
	Project(f *geom.Face, v geom.Vec3) geom.Point2D
	Orient2D(a, b, c geom.Point2D) float64
	SignedArea(pts []geom.Point2D) float64
	PointInPolySimple(poly []geom.Point2D, p geom.Point2D) bool
	PointInPoly(poly []geom.Point2D, p geom.Point2D) Classification
	FitAABB(pts []geom.Point2D) AABB2D
	ANG(x float64) float64
	Atan2(dy, dx float64) float64
	IncorporateHolesIntoPolygon(loops [][]geom.Point2D) []LoopVertexRef
}

// Default is the concrete Geometry Kernel shipped with this repo.
type Default struct{}

// New returns the default geometry kernel.
func New() Default { return Default{} }

var _ Kernel = Default{}
