// Conslist builds a persistent cons list from its arguments or stdin and
// prints it, optionally after prepending, appending or reversing.
package main

import (
	"os"

	"github.com/migl/conslist/pkg/buildinfo"
	"github.com/migl/conslist/pkg/listprog"
	"github.com/migl/conslist/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, listprog.Program{})))
}
