// Package prog provides the entry point to conslist. Its subpackages
// correspond to subprograms of conslist.
package prog

// This package sets up the basic environment and calls the appropriate
// "subprogram", either the build information printer or the list builder.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/migl/conslist/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version, BuildInfo, JSON bool

	Format          string
	Prepend, Append StringsFlag
	Reverse         bool
	Size, Concat    bool
}

// StringsFlag is a flag.Value that collects every occurrence of a repeatable
// flag, in command-line order.
type StringsFlag []string

func (sf *StringsFlag) String() string { return strings.Join(*sf, " ") }

func (sf *StringsFlag) Set(s string) error {
	*sf = append(*sf, s)
	return nil
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("conslist", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output of -version and -buildinfo in JSON")

	fs.StringVar(&f.Format, "format", "sexp", "output format of the list: sexp, json or yaml")
	fs.Var(&f.Prepend, "prepend", "prepend an element; may be repeated")
	fs.Var(&f.Append, "append", "append an element; may be repeated")
	fs.BoolVar(&f.Reverse, "reverse", false, "reverse the list before output")
	fs.BoolVar(&f.Size, "size", false, "output the number of elements instead of the list")
	fs.BoolVar(&f.Concat, "concat", false, "output the concatenation of all elements instead of the list")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: conslist [flags] [elem...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. conslist defines -help, but not -h;
			// so this means that -h has been requested. Handle this by
			// printing the same message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	logger.Printf("args: %q", args)

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	logger.Println("subprogram error:", err)
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
