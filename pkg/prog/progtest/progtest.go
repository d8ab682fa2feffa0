// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program implementation under test, and any number of test
// cases built with That:
//
//	Test(t, &program{},
//		That("-version").WritesStdout("0.1.0\n"),
//		That("-bad-flag").ExitsWith(2).WritesStderrContaining("Usage:"),
//	)
package progtest

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/migl/conslist/pkg/prog"
)

// Case is a test case to be used in Test.
type Case struct {
	args  []string
	stdin string
	tty   bool
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

// That returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "conslist -bad-flag" exits with 2 reads
// like:
//
//	That("-bad-flag").ExitsWith(2)
func That(args ...string) *Case {
	return &Case{args: args}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c *Case) WithStdin(s string) *Case {
	c.stdin = s
	return c
}

// WithTTYStdin returns an altered Case that connects stdin of the program to a
// terminal. The test case is skipped on platforms without pseudo terminals.
func (c *Case) WithTTYStdin() *Case {
	c.tty = true
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	That("-log", "/dev/null").DoesNothing()
func (c *Case) DoesNothing() *Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with the
// given code.
func (c *Case) ExitsWith(code int) *Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c *Case) WritesStdout(s string) *Case {
	c.want.stdout = output{s, false}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write output to stdout that contains the given text as a substring.
func (c *Case) WritesStdoutContaining(s string) *Case {
	c.want.stdout = output{s, true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c *Case) WritesStderr(s string) *Case {
	c.want.stderr = output{s, false}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program to
// write output to stderr that contains the given text as a substring.
func (c *Case) WritesStderrContaining(s string) *Case {
	c.want.stderr = output{s, true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(t, p, c)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("stdout (-want +got):\n%s",
					cmp.Diff(c.want.stdout.String(), r.stdout.content))
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("stderr (-want +got):\n%s",
					cmp.Diff(c.want.stderr.String(), r.stderr.content))
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin. It returns the exit
// code, stdout and stderr of the program.
func Run(p prog.Program, stdin string, args ...string) (int, string, string) {
	r0, w0 := mustPipe()
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	defer r0.Close()
	return runWithStdin(p, r0, args)
}

func run(t *testing.T, p prog.Program, c *Case) result {
	var exit int
	var stdout, stderr string
	if c.tty {
		tty, cleanup, err := openTTY()
		if err != nil {
			t.Skip("cannot open terminal:", err)
		}
		defer cleanup()
		exit, stdout, stderr = runWithStdin(p, tty, c.args)
	} else {
		exit, stdout, stderr = Run(p, c.stdin, c.args...)
	}
	return result{exit, output{content: stdout}, output{content: stderr}}
}

func runWithStdin(p prog.Program, stdin *os.File, args []string) (int, string, string) {
	r1, w1 := mustPipe()
	r2, w2 := mustPipe()
	var wg sync.WaitGroup
	var stdout, stderr []byte
	wg.Add(2)
	go func() {
		stdout, _ = io.ReadAll(r1)
		r1.Close()
		wg.Done()
	}()
	go func() {
		stderr, _ = io.ReadAll(r2)
		r2.Close()
		wg.Done()
	}()

	exit := prog.Run([3]*os.File{stdin, w1, w2}, append([]string{"conslist"}, args...), p)
	w1.Close()
	w2.Close()
	wg.Wait()
	return exit, string(stdout), string(stderr)
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func mustPipe() (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	return r, w
}
