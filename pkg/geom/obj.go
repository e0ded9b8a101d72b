package geom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadOBJ parses a minimal Wavefront OBJ stream into a Polyhedron: `v`
// lines become pool vertices, `f` lines become faces (space-separated
// vertex indices, 1-based, the `v/vt/vn` slash form accepted but only the
// first component used). Anything else (comments, normals, groups,
// materials) is ignored — this is a CLI demo loader, not a general OBJ
// importer.
func ReadOBJ(r io.Reader) (*Polyhedron, error) {
	poly := NewPolyhedron()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: line %d: want 3 coordinates after 'v'", line)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", line, err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", line, err)
			}
			z, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", line, err)
			}
			poly.Vertices.Add(NewVec3(x, y, z))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: line %d: face needs at least 3 vertices", line)
			}
			verts := make([]VertexID, len(fields)-1)
			for i, tok := range fields[1:] {
				idxStr := strings.SplitN(tok, "/", 2)[0]
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", line, err)
				}
				if idx <= 0 || idx > poly.Vertices.Len() {
					return nil, fmt.Errorf("obj: line %d: vertex index %d out of range", line, idx)
				}
				verts[i] = VertexID(idx - 1)
			}
			poly.NewFace(verts)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	return poly, nil
}

// WriteOBJ writes poly as a Wavefront OBJ: one `v` line per pool vertex,
// one `f` line per face, both 1-indexed per the format's convention.
func WriteOBJ(w io.Writer, poly *Polyhedron) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < poly.Vertices.Len(); i++ {
		c := poly.Vertices.Coord(VertexID(i))
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", c.X, c.Y, c.Z); err != nil {
			return err
		}
	}
	for _, f := range poly.Faces {
		bw.WriteString("f")
		for _, v := range f.Vertices {
			if _, err := fmt.Fprintf(bw, " %d", int(v)+1); err != nil {
				return err
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
