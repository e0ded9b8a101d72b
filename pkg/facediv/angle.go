package facediv

import (
	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// lexLess is the lexicographic tiebreak on projected points used by
// internalToAngle (§9: "projected-point tiebreaks become (x, y)
// lexicographic").
func lexLess(u, v geom.Point2D) bool {
	if u.X != v.X {
		return u.X < v.X
	}
	return u.Y < v.Y
}

// internalToAngle answers: does projected point p fall within the interior
// sector of the polygonal angle at b formed by a-b-c? (§4.5 Step A,
// GLOSSARY.)
func internalToAngle(k geomkernel.Kernel, a, b, c, p geom.Point2D) bool {
	var reflex bool
	if lexLess(a, c) {
		reflex = k.Orient2D(a, b, c) <= 0
	} else {
		reflex = k.Orient2D(c, b, a) >= 0
	}
	if reflex {
		return k.Orient2D(a, b, p) >= 0 || k.Orient2D(b, c, p) >= 0
	}
	return k.Orient2D(a, b, p) > 0 && k.Orient2D(b, c, p) > 0
}
