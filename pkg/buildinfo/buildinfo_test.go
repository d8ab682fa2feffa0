package buildinfo

import (
	"fmt"
	"testing"

	. "github.com/migl/conslist/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	Test(t, Program{},
		That("-version").WritesStdout(Value.Version+"\n"),
		That("-version", "-json").WritesStdout(mustToJSON(Value.Version)+"\n"),

		That("-buildinfo").WritesStdout(
			fmt.Sprintf(
				"Version: %v\nGo version: %v\nReproducible build: %v\n",
				Value.Version, Value.GoVersion, Value.Reproducible)),
		That("-buildinfo", "-json").WritesStdout(mustToJSON(Value)+"\n"),

		That().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestValue(t *testing.T) {
	if Value.Version != Version+VersionSuffix {
		t.Errorf("Value.Version = %q, want %q", Value.Version, Version+VersionSuffix)
	}
}
