package geom

// Polyhedron is an ordered collection of planar faces sharing a vertex pool
// and edge set. It is the unit of work for pkg/facediv: GenerateFaceLoops
// walks Faces in order and processes each independently (§5 CONCURRENCY:
// "Face division is single-threaded per face... parallel face processing is
// a trivial outer loop").
type Polyhedron struct {
	Vertices *VertexPool
	EdgesOf  *EdgeSet
	Faces    []*Face
}

// NewPolyhedron creates an empty polyhedron sharing fresh pools.
func NewPolyhedron() *Polyhedron {
	return &Polyhedron{
		Vertices: NewVertexPool(),
		EdgesOf:  NewEdgeSet(),
	}
}

// DataBundle is the caller-owned input to face division (§3 DATA MODEL):
// vertex identification, perimeter-edge splits, and interior face splits.
type DataBundle struct {
	// VMap unifies vertices identified during intersection.
	VMap VMap
	// DividedEdges maps an edge handle to the ordered sequence of
	// intersection vertices lying strictly inside it, in the edge's
	// natural (V1 -> V2) direction.
	DividedEdges map[EdgeID][]VertexID
	// FaceSplitEdges maps a face index to the set of unordered vertex
	// pairs denoting intersection segments lying on that face.
	FaceSplitEdges map[FaceID]map[UnorderedPair]struct{}
}

// NewDataBundle creates an empty data bundle.
func NewDataBundle() *DataBundle {
	return &DataBundle{
		VMap:           make(VMap),
		DividedEdges:   make(map[EdgeID][]VertexID),
		FaceSplitEdges: make(map[FaceID]map[UnorderedPair]struct{}),
	}
}

// AddFaceSplitEdge records an interior intersection segment lying on face f.
func (b *DataBundle) AddFaceSplitEdge(f FaceID, a, c VertexID) {
	set, ok := b.FaceSplitEdges[f]
	if !ok {
		set = make(map[UnorderedPair]struct{})
		b.FaceSplitEdges[f] = set
	}
	set[MakeUnorderedPair(a, c)] = struct{}{}
}
