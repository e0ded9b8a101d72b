package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/lignincsg/lignin/pkg/facediv"
	"github.com/lignincsg/lignin/pkg/geom"
	"github.com/lignincsg/lignin/pkg/geomkernel"
)

// replState holds the face-under-construction across builtin calls within
// one zygomys session — the REPL scripts one face at a time, the same unit
// GenerateFaceLoops itself processes independently per face.
type replState struct {
	poly   *geom.Polyhedron
	bundle *geom.DataBundle
	verts  []geom.VertexID
}

// runREPL starts an interactive zygomys session with face, split_edge, and
// divide registered as builtins, letting a face and its intersection data
// be scripted from the command line instead of hand-built in Go the way
// facediv_test.go does it.
func runREPL() error {
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	st := &replState{poly: geom.NewPolyhedron(), bundle: geom.NewDataBundle()}
	registerReplBuiltins(env, st)

	fmt.Println("facediv repl — (face x1 y1 z1 x2 y2 z2 ...), (split_edge i j), (divide)")
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		if err := env.LoadString(line); err != nil {
			fmt.Fprintln(os.Stderr, "parse error:", err)
			fmt.Print("> ")
			continue
		}
		result, err := env.Run()
		if err != nil {
			fmt.Fprintln(os.Stderr, "eval error:", err)
		} else if result != nil && result != zygo.SexpNull {
			fmt.Println(result.SexpString(nil))
		}
		fmt.Print("> ")
	}
	return scanner.Err()
}

// registerReplBuiltins wires the three domain builtins into env, operating
// on st via closures rather than a global.
func registerReplBuiltins(env *zygo.Zlisp, st *replState) {
	// (face x1 y1 z1 x2 y2 z2 x3 y3 z3 ...) starts a new face from a flat
	// list of coordinate triples.
	env.AddFunction("face", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args)%3 != 0 || len(args) < 9 {
			return zygo.SexpNull, fmt.Errorf("face: want coordinate triples for at least 3 vertices, got %d values", len(args))
		}
		st.poly = geom.NewPolyhedron()
		st.bundle = geom.NewDataBundle()
		st.verts = nil
		for i := 0; i < len(args); i += 3 {
			x, err := replFloat(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("face: %w", err)
			}
			y, err := replFloat(args[i+1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("face: %w", err)
			}
			z, err := replFloat(args[i+2])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("face: %w", err)
			}
			st.verts = append(st.verts, st.poly.Vertices.Add(geom.NewVec3(x, y, z)))
		}
		st.poly.NewFace(st.verts)
		return &zygo.SexpStr{S: fmt.Sprintf("face defined with %d vertices (0..%d)", len(st.verts), len(st.verts)-1)}, nil
	})

	// (split_edge i j) records an interior face-split segment between the
	// i-th and j-th vertices named in the most recent (face ...) call.
	env.AddFunction("split_edge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(st.verts) == 0 {
			return zygo.SexpNull, fmt.Errorf("split_edge: no face defined yet")
		}
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("split_edge: want exactly 2 vertex indices")
		}
		i, err := replInt(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("split_edge: %w", err)
		}
		j, err := replInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("split_edge: %w", err)
		}
		if i < 0 || i >= len(st.verts) || j < 0 || j >= len(st.verts) {
			return zygo.SexpNull, fmt.Errorf("split_edge: index out of range [0, %d)", len(st.verts))
		}
		st.bundle.AddFaceSplitEdge(0, st.verts[i], st.verts[j])
		return &zygo.SexpStr{S: fmt.Sprintf("split edge %d-%d recorded", i, j)}, nil
	})

	// (divide) runs GenerateFaceLoops on the current face and its recorded
	// split edges and prints the resulting loops.
	env.AddFunction("divide", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(st.verts) == 0 {
			return zygo.SexpNull, fmt.Errorf("divide: no face defined yet")
		}
		loops, total, err := facediv.GenerateFaceLoops(st.poly, st.bundle, geomkernel.New(), nil)
		if err != nil {
			return zygo.SexpNull, err
		}
		for i, fl := range loops {
			fmt.Printf("loop %d: %v\n", i, fl.Loop)
		}
		return &zygo.SexpStr{S: fmt.Sprintf("%d loop(s), %d vertex handles", len(loops), total)}, nil
	})
}

func replFloat(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpFloat:
		return v.Val, nil
	case *zygo.SexpInt:
		return float64(v.Val), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", s)
}

func replInt(s zygo.Sexp) (int, error) {
	v, ok := s.(*zygo.SexpInt)
	if !ok {
		return 0, fmt.Errorf("expected an integer, got %T", s)
	}
	return int(v.Val), nil
}
