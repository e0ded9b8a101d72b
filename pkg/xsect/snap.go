package xsect

import (
	"math"

	"github.com/lignincsg/lignin/pkg/geom"
)

// snapper deduplicates intersection points against a polyhedron's existing
// vertex pool: a point within eps of a previously seen point (existing
// vertex or an earlier intersection result) reuses that vertex's handle
// instead of minting a new one. It is deliberately a simple grid hash
// rather than a spatial index — see the package doc's brute-force framing.
type snapper struct {
	pool  *geom.VertexPool
	eps   float64
	cells map[[3]int64][]geom.VertexID
}

func newSnapper(pool *geom.VertexPool, eps float64) *snapper {
	s := &snapper{pool: pool, eps: eps, cells: map[[3]int64][]geom.VertexID{}}
	for i := 0; i < pool.Len(); i++ {
		v := geom.VertexID(i)
		s.index(v, pool.Coord(v))
	}
	return s
}

func (s *snapper) cellKey(c geom.Vec3) [3]int64 {
	return [3]int64{
		int64(math.Floor(c.X / s.eps)),
		int64(math.Floor(c.Y / s.eps)),
		int64(math.Floor(c.Z / s.eps)),
	}
}

func (s *snapper) index(v geom.VertexID, c geom.Vec3) {
	key := s.cellKey(c)
	s.cells[key] = append(s.cells[key], v)
}

// get returns the handle for c, reusing an existing vertex within eps if
// one exists, or adding c to the pool otherwise.
func (s *snapper) get(c geom.Vec3) geom.VertexID {
	base := s.cellKey(c)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				key := [3]int64{base[0] + dx, base[1] + dy, base[2] + dz}
				for _, v := range s.cells[key] {
					if s.pool.Coord(v).Sub(c).Length() <= s.eps {
						return v
					}
				}
			}
		}
	}
	v := s.pool.Add(c)
	s.index(v, c)
	return v
}
