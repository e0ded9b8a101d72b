package geom

// FaceID indexes a face within a Polyhedron.
type FaceID int

// Face is a planar polygon in 3-space: an ordered cycle of vertices, a
// parallel ordered cycle of edge handles, a normal, and a projector mapping
// R3 -> R2 that is affine and injective on the face plane (§3 DATA MODEL).
type Face struct {
	Vertices []VertexID
	Edges    []EdgeID
	Normal   Vec3
	Proj     Projector
}

// Len returns the number of vertices on the face's perimeter.
func (f *Face) Len() int {
	return len(f.Vertices)
}

// Projector is an affine map R3 -> R2, fixed per face, injective on the
// face plane (§3, §6). It is built from an origin on the plane and two
// orthonormal in-plane basis vectors.
type Projector struct {
	Origin Vec3
	U, V   Vec3
}

// Point2D is a 2D point in a face's projected frame.
type Point2D struct {
	X, Y float64
}

// Project maps a 3D point on the face's plane into the face's 2D frame.
func (p Projector) Project(v Vec3) Point2D {
	d := v.Sub(p.Origin)
	return Point2D{X: d.Dot(p.U), Y: d.Dot(p.V)}
}

// NewProjector builds an affine, plane-injective projector for a face given
// its normal and an origin point on the plane, plus one in-plane direction
// to seed the basis (typically the first perimeter edge's direction). The
// second basis vector is normal x first, i.e. a right-handed in-plane frame
// so that a counter-clockwise perimeter (viewed against the normal) has
// positive signed area under the projector.
func NewProjector(origin, normal, seedDir Vec3) Projector {
	n := normal.Normalized()
	u := seedDir.Sub(n.Scale(seedDir.Dot(n))).Normalized()
	v := n.Cross(u)
	return Projector{Origin: origin, U: u, V: v}
}

// FaceKey identifies a face of a specific polyhedron. The data bundle's
// FaceSplitEdges is keyed by FaceID alone, not by FaceKey.
type FaceKey struct {
	Solid int
	Index FaceID
}
