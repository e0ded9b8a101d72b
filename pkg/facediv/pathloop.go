package facediv

import (
	"github.com/samber/lo"

	"github.com/lignincsg/lignin/pkg/geom"
)

// composePathsAndLoops is C3 (§4.3): contract an unordered edge set into
// maximal paths between branch/endpoint vertices, and closed loops.
func composePathsAndLoops(edges []geom.UnorderedPair, extraEndpoints []geom.VertexID) (paths, loops [][]geom.VertexID) {
	adj := map[geom.VertexID][]geom.VertexID{}
	addLink := func(a, b geom.VertexID) {
		adj[a] = append(adj[a], b)
	}
	for _, e := range edges {
		addLink(e.Lo, e.Hi)
		addLink(e.Hi, e.Lo)
	}

	extraSet := make(map[geom.VertexID]struct{}, len(extraEndpoints))
	for _, v := range lo.Uniq(extraEndpoints) {
		extraSet[v] = struct{}{}
	}

	isEndpoint := func(v geom.VertexID) bool {
		d := len(adj[v])
		if d != 2 {
			return true
		}
		_, extra := extraSet[v]
		return extra
	}

	removeLink := func(a, b geom.VertexID) {
		list := adj[a]
		for i, x := range list {
			if x == b {
				adj[a] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
	removeEdge := func(a, b geom.VertexID) {
		removeLink(a, b)
		removeLink(b, a)
	}

	pending := map[geom.VertexID]struct{}{}
	for v := range adj {
		if len(adj[v]) > 0 && isEndpoint(v) {
			pending[v] = struct{}{}
		}
	}

	popAny := func(set map[geom.VertexID]struct{}) (geom.VertexID, bool) {
		for v := range set {
			delete(set, v)
			return v, true
		}
		return 0, false
	}

	for {
		v, ok := popAny(pending)
		if !ok {
			break
		}
		for len(adj[v]) > 0 {
			path := []geom.VertexID{v}
			cur := v
			for {
				neighbors := adj[cur]
				if len(neighbors) == 0 {
					break
				}
				next := neighbors[len(neighbors)-1]
				removeEdge(cur, next)
				path = append(path, next)
				cur = next
				if cur == v {
					break
				}
				if isEndpoint(cur) {
					break
				}
			}
			paths = append(paths, path)
			if len(adj[cur]) == 0 {
				delete(pending, cur)
			}
		}
	}

	remaining := map[geom.VertexID]struct{}{}
	for v := range adj {
		if len(adj[v]) > 0 {
			remaining[v] = struct{}{}
		}
	}
	for {
		v, ok := popAny(remaining)
		if !ok {
			break
		}
		if len(adj[v]) == 0 {
			continue
		}
		loop := []geom.VertexID{v}
		cur := v
		for {
			neighbors := adj[cur]
			next := neighbors[len(neighbors)-1]
			removeEdge(cur, next)
			if next == v {
				break
			}
			loop = append(loop, next)
			cur = next
		}
		loops = append(loops, loop)
	}

	paths = lo.Filter(paths, func(p []geom.VertexID, _ int) bool { return len(p) >= 2 })
	return paths, loops
}
