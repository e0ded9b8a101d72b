package geomkernel

import (
	"math"

	"github.com/lignincsg/lignin/pkg/geom"
)

// Project applies a face's own affine projector (§6: "project(face,
// vertex3d) -> point2d").
func (Default) Project(f *geom.Face, v geom.Vec3) geom.Point2D {
	return f.Proj.Project(v)
}

// Orient2D returns the signed twice-area of triangle abc: positive when
// a, b, c turn counter-clockwise, negative when clockwise, zero when
// collinear.
func (Default) Orient2D(a, b, c geom.Point2D) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SignedArea returns the shoelace signed area of a closed polygon given as
// an open cycle (no repeated first/last point).
func (Default) SignedArea(pts []geom.Point2D) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// PointInPolySimple reports whether p lies strictly inside poly, using
// even-odd ray casting along +X. Points on the boundary are not "inside".
func (Default) PointInPolySimple(poly []geom.Point2D, p geom.Point2D) bool {
	return rayCast(poly, p) == Inside
}

// PointInPoly classifies p against poly as Outside, On (the boundary), or
// Inside.
func (Default) PointInPoly(poly []geom.Point2D, p geom.Point2D) Classification {
	return rayCast(poly, p)
}

// rayCast implements the classified point-in-polygon test: first checks
// exact membership on an edge (collinear + within the segment's bounding
// box), then falls back to even-odd ray casting along +X for interior vs.
// exterior.
func rayCast(poly []geom.Point2D, p geom.Point2D) Classification {
	n := len(poly)
	if n < 3 {
		return Outside
	}

	d := Default{}
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if onSegment(d, a, b, p) {
			return On
		}
	}

	inside := false
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

func onSegment(d Default, a, b, p geom.Point2D) bool {
	const eps = 1e-9
	if math.Abs(d.Orient2D(a, b, p)) > eps {
		return false
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}

// ANG normalizes an angle to [0, 2*pi).
func (Default) ANG(x float64) float64 {
	const twoPi = 2 * math.Pi
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	return x
}

// Atan2 is the standard two-argument arctangent, exposed through the
// kernel interface so pkg/facediv never imports math directly for angles.
func (Default) Atan2(dy, dx float64) float64 {
	return math.Atan2(dy, dx)
}
