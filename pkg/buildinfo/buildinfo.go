// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/migl/conslist/pkg/buildinfo.Var=value" to "go build"
// or "go get".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/migl/conslist/pkg/prog"
)

// Version identifies the version of conslist. On development commits, it
// identifies the next release.
const Version = "0.1.0"

// VersionSuffix is appended to Version to build the full version string. It
// can be overridden when building conslist.
var VersionSuffix = "-dev.unknown"

// Reproducible identifies whether the build is reproducible. It can be
// overridden when building conslist.
var Reproducible = "false"

// Type contains all the build information fields.
type Type struct {
	Version      string `json:"version"`
	GoVersion    string `json:"goversion"`
	Reproducible bool   `json:"reproducible"`
}

// Value contains all the build information.
var Value = Type{
	Version:      Version + VersionSuffix,
	GoVersion:    runtime.Version(),
	Reproducible: Reproducible == "true",
}

// Program is the buildinfo subprogram.
type Program struct{}

// Run runs the program.
func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
			fmt.Fprintln(fds[1], "Reproducible build:", Value.Reproducible)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
