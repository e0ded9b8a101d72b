package facediv

import "github.com/lignincsg/lignin/pkg/geom"

// assembleBaseLoop is C2 (§4.2): walk F's perimeter, interleaving inserted
// intersection vertices in edge direction, to produce the base loop.
//
// edges gives access to each perimeter edge's canonical (V1 -> V2)
// direction, needed to decide whether F traverses a divided edge forwards
// or backwards.
func assembleBaseLoop(f *geom.Face, edges *geom.EdgeSet, bundle *geom.DataBundle) []geom.VertexID {
	n := f.Len()
	base := make([]geom.VertexID, 0, n)
	for j := 0; j < n; j++ {
		fv := f.Vertices[j]
		base = append(base, bundle.VMap.Canonical(fv))

		divided, ok := bundle.DividedEdges[f.Edges[j]]
		if !ok || len(divided) == 0 {
			continue
		}
		e := edges.Edge(f.Edges[j])
		if e.V1 == fv {
			for _, v := range divided {
				base = append(base, bundle.VMap.Canonical(v))
			}
		} else {
			for i := len(divided) - 1; i >= 0; i-- {
				base = append(base, bundle.VMap.Canonical(divided[i]))
			}
		}
	}
	return base
}
