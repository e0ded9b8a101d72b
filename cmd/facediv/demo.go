package main

import (
	"fmt"

	"github.com/lignincsg/lignin/pkg/facediv"
	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// runDemo builds one of the six boundary scenarios from scratch and prints
// the resulting face loops as coordinate lists — a runnable check of the
// same behavior facediv_test.go exercises through `go test`.
func runDemo(name string) error {
	scenario, ok := demoScenarios[name]
	if !ok {
		return fmt.Errorf("unknown demo %q (want one of s1..s6)", name)
	}
	poly, bundle := scenario()
	loops, total, err := facediv.GenerateFaceLoops(poly, bundle, geomkernel.New(), nil)
	if err != nil {
		return err
	}
	fmt.Printf("%d loop(s), %d vertex handles emitted\n", len(loops), total)
	for i, fl := range loops {
		fmt.Printf("loop %d (face %d):\n", i, fl.Face)
		for _, v := range fl.Loop {
			c := poly.Vertices.Coord(v)
			fmt.Printf("  v%d = (%g, %g, %g)\n", v, c.X, c.Y, c.Z)
		}
	}
	return nil
}

var demoScenarios = map[string]func() (*geom.Polyhedron, *geom.DataBundle){
	"s1": demoS1,
	"s2": demoS2,
	"s3": demoS3,
	"s4": demoS4,
	"s5": demoS5,
	"s6": demoS6,
}

func demoS1() (*geom.Polyhedron, *geom.DataBundle) {
	poly := geom.NewPolyhedron()
	ids := addVerts(poly, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0))
	poly.NewFace(ids)
	return poly, geom.NewDataBundle()
}

func demoS2() (*geom.Polyhedron, *geom.DataBundle) {
	poly := geom.NewPolyhedron()
	ids := addVerts(poly, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 0, 0), geom.NewVec3(0, 1, 0))
	f := poly.NewFace(ids)
	m := poly.Vertices.Add(geom.NewVec3(0.5, 0, 0))
	bundle := geom.NewDataBundle()
	bundle.DividedEdges[f.Edges[0]] = []geom.VertexID{m}
	return poly, bundle
}

func demoSquare(poly *geom.Polyhedron) [4]geom.VertexID {
	ids := addVerts(poly, geom.NewVec3(0, 0, 0), geom.NewVec3(2, 0, 0), geom.NewVec3(2, 2, 0), geom.NewVec3(0, 2, 0))
	poly.NewFace(ids)
	return [4]geom.VertexID{ids[0], ids[1], ids[2], ids[3]}
}

func demoS3() (*geom.Polyhedron, *geom.DataBundle) {
	poly := geom.NewPolyhedron()
	v := demoSquare(poly)
	bundle := geom.NewDataBundle()
	bundle.AddFaceSplitEdge(0, v[1], v[3])
	return poly, bundle
}

func demoS4() (*geom.Polyhedron, *geom.DataBundle) {
	poly := geom.NewPolyhedron()
	demoSquare(poly)
	pq := addVerts(poly, geom.NewVec3(0.5, 0.5, 0), geom.NewVec3(0.5, 1.5, 0), geom.NewVec3(1.5, 1.5, 0), geom.NewVec3(1.5, 0.5, 0))
	bundle := geom.NewDataBundle()
	bundle.AddFaceSplitEdge(0, pq[0], pq[1])
	bundle.AddFaceSplitEdge(0, pq[1], pq[2])
	bundle.AddFaceSplitEdge(0, pq[2], pq[3])
	bundle.AddFaceSplitEdge(0, pq[3], pq[0])
	return poly, bundle
}

func demoS5() (*geom.Polyhedron, *geom.DataBundle) {
	poly := geom.NewPolyhedron()
	v := demoSquare(poly)
	pq := addVerts(poly, geom.NewVec3(1.5, 2, 0), geom.NewVec3(0.5, 2, 0))
	bundle := geom.NewDataBundle()
	bundle.DividedEdges[poly.Faces[0].Edges[2]] = []geom.VertexID{pq[0], pq[1]}
	bundle.AddFaceSplitEdge(0, v[1], pq[0])
	bundle.AddFaceSplitEdge(0, v[1], pq[1])
	return poly, bundle
}

func demoS6() (*geom.Polyhedron, *geom.DataBundle) {
	poly := geom.NewPolyhedron()
	v := demoSquare(poly)
	p := poly.Vertices.Add(geom.NewVec3(1, 1, 0))
	bundle := geom.NewDataBundle()
	bundle.AddFaceSplitEdge(0, v[1], p)
	return poly, bundle
}

func addVerts(poly *geom.Polyhedron, coords ...geom.Vec3) []geom.VertexID {
	ids := make([]geom.VertexID, len(coords))
	for i, c := range coords {
		ids[i] = poly.Vertices.Add(c)
	}
	return ids
}
