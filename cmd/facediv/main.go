// Command facediv is a CLI front end over pkg/facediv: run one of the
// boundary scenarios as a smoke test, script a face interactively through
// a zygomys REPL, run a full boolean operation between two OBJ meshes
// through pkg/kernel/brep, or build box/cylinder primitives and boolean
// them through a selectable pkg/kernel.Kernel backend (brep, sdfx, or
// manifold). No config file, no environment variables — the core packages
// take no ambient input, and this binary is the one place that boundary is
// allowed to exist.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	demo := flag.String("demo", "", "run boundary scenario S1-S6 and print the resulting loops")
	repl := flag.Bool("repl", false, "start an interactive zygomys REPL for scripting a face")
	brepOp := flag.String("brep", "", "boolean op to run: union, difference, intersection")
	primitives := flag.Bool("primitives", false, "build a box and a cylinder with -kernel and run -brep's op between them, writing the mesh as OBJ")
	kernelName := flag.String("kernel", "brep", "geometry kernel backend for -primitives: brep, sdfx, or manifold")
	flag.Parse()
	args := flag.Args()

	var err error
	switch {
	case *demo != "":
		err = runDemo(*demo)
	case *repl:
		err = runREPL()
	case *primitives:
		if *brepOp == "" {
			err = fmt.Errorf("-primitives requires -brep to name the boolean op")
			break
		}
		err = runPrimitives(*kernelName, *brepOp)
	case *brepOp != "":
		if len(args) != 2 {
			err = fmt.Errorf("-brep requires exactly two OBJ file paths, got %d", len(args))
			break
		}
		err = runBrep(*brepOp, args[0], args[1])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "facediv:", err)
		os.Exit(1)
	}
}
