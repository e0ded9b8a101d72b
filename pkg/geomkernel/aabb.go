package geomkernel

import (
	"github.com/dhconnelly/rtreego"
	"github.com/lignincsg/lignin/pkg/geom"
)

// AABB2D is a 2D axis-aligned bounding box (§6: "aabb2d.fit(iter);
// aabb2d.intersects(point)"). Bounds are tracked directly rather than
// through rtreego.Rect's own (opaque) interior so a plain point-membership
// test never depends on unexported Rect internals; Rect is used at the
// boundary, in ToRtreeRect, for callers that want to index many boxes in an
// actual rtreego.Rtree (pkg/facediv's hole merger does this for face
// containment).
type AABB2D struct {
	minX, minY, maxX, maxY float64
	empty                  bool
}

// FitAABB computes the bounding box of a set of 2D points (§6:
// "aabb2d.fit(iter)").
func (Default) FitAABB(pts []geom.Point2D) AABB2D {
	if len(pts) == 0 {
		return AABB2D{empty: true}
	}
	b := AABB2D{minX: pts[0].X, minY: pts[0].Y, maxX: pts[0].X, maxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.minX {
			b.minX = p.X
		}
		if p.X > b.maxX {
			b.maxX = p.X
		}
		if p.Y < b.minY {
			b.minY = p.Y
		}
		if p.Y > b.maxY {
			b.maxY = p.Y
		}
	}
	return b
}

// Intersects reports whether p lies within the box (§6:
// "aabb2d.intersects(point)").
func (b AABB2D) Intersects(p geom.Point2D) bool {
	if b.empty {
		return false
	}
	return p.X >= b.minX && p.X <= b.maxX && p.Y >= b.minY && p.Y <= b.maxY
}

// ToRtreeRect converts the box to an rtreego.Rect, widening degenerate
// (zero-width or zero-height, e.g. a single-point or axis-aligned loop)
// boxes by an epsilon since rtreego requires strictly positive extents.
// Used by pkg/facediv's hole merger to index face bounding boxes in an
// rtreego.Rtree for its containment scan.
func (b AABB2D) ToRtreeRect() (rtreego.Rect, bool) {
	if b.empty {
		return rtreego.Rect{}, false
	}
	const eps = 1e-9
	rect, err := rtreego.NewRect(
		rtreego.Point{b.minX, b.minY},
		[]float64{b.maxX - b.minX + eps, b.maxY - b.minY + eps},
	)
	if err != nil {
		return rtreego.Rect{}, false
	}
	return rect, true
}
