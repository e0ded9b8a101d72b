// Package facediv re-expresses a single planar face as one or more simple
// planar sub-loops that respect every intersection edge lying on that face
// (perimeter splits and interior crossings alike). It is the last stage of
// a polyhedron boolean operation, run once the two input solids have
// already been intersected and every crossing has been located: this
// package never builds an intersection graph itself, it only consumes one.
package facediv

import "github.com/lignincsg/lignin/pkg/geom"

// FaceLoop pairs an emitted loop with the face it came from, mirroring the
// (face, loop) pairs generateFaceLoops returns to its caller (§6).
type FaceLoop struct {
	Face geom.FaceID
	Loop []geom.VertexID
}

// Hooks is an optional debug observer. It is never consulted for
// correctness (§9: "model it as an optional listener object passed down,
// never used for correctness") — every method may be left as a no-op.
type Hooks interface {
	// BaseLoopAssembled fires once per face after C2 runs.
	BaseLoopAssembled(face geom.FaceID, base []geom.VertexID)
	// FastPathTaken fires when the driver short-circuits without invoking
	// C4/C5, naming which fast path (1-4) fired.
	FastPathTaken(face geom.FaceID, path int)
	// CrossingResolverFellBack fires when C4 declines and the driver falls
	// back to C5.
	CrossingResolverFellBack(face geom.FaceID, reason error)
	// LoopEmitted fires once per final loop returned for a face.
	LoopEmitted(face geom.FaceID, loop []geom.VertexID)
}

// NoopHooks implements Hooks with no observable side effects; it is the
// default when Options.Hooks is nil.
type NoopHooks struct{}

func (NoopHooks) BaseLoopAssembled(geom.FaceID, []geom.VertexID)     {}
func (NoopHooks) FastPathTaken(geom.FaceID, int)                     {}
func (NoopHooks) CrossingResolverFellBack(geom.FaceID, error)        {}
func (NoopHooks) LoopEmitted(geom.FaceID, []geom.VertexID)           {}

var _ Hooks = NoopHooks{}

// Options configures GenerateFaceLoops. The zero value is a usable default
// (no hooks).
type Options struct {
	Hooks Hooks
}

func (o *Options) hooks() Hooks {
	if o == nil || o.Hooks == nil {
		return NoopHooks{}
	}
	return o.Hooks
}

// directedEdge is a directed edge fed to the planar-graph splitter (C5);
// direction matters here, unlike geom.UnorderedPair.
type directedEdge struct {
	From, To geom.VertexID
}
