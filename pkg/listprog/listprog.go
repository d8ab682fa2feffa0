// Package listprog is the list subprogram of conslist. It builds a list from
// the command line or stdin, applies the operations requested with flags, and
// prints the result.
package listprog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/migl/conslist/pkg/logutil"
	"github.com/migl/conslist/pkg/persistent/list"
	"github.com/migl/conslist/pkg/prog"
	"github.com/migl/conslist/pkg/sys"
)

var logger = logutil.GetLogger("[listprog] ")

// NullLiteral is the command-line spelling of the null element.
const NullLiteral = "null"

// Program is the list subprogram. It is always suitable, so it should be the
// last one in a prog.Composite.
type Program struct{}

// Run runs the program.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	l := list.Of(elems(args)...)
	if len(args) == 0 && !sys.IsTerminalFile(fds[0]) {
		var err error
		l, err = readLines(fds[0])
		if err != nil {
			return err
		}
	}
	for _, s := range f.Prepend {
		l = l.Prepend(elem(s))
	}
	for _, s := range f.Append {
		l = l.Append(elem(s))
	}
	if f.Reverse {
		l = list.Reverse(l)
	}
	logger.Printf("built list of %d elements", l.Len())

	switch {
	case f.Size:
		fmt.Fprintln(fds[1], l.Len())
		return nil
	case f.Concat:
		fmt.Fprintln(fds[1], list.Reduce(l, "", concat))
		return nil
	}
	return write(fds[1], l, f.Format)
}

// readLines builds a list with one element per line of r.
func readLines(r io.Reader) (list.List[*string], error) {
	l := list.Nil[*string]()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l = l.Prepend(elem(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	logger.Printf("read %d lines from stdin", l.Len())
	return list.Reverse(l), nil
}

func write(w io.Writer, l list.List[*string], format string) error {
	switch format {
	case "", "sexp":
		_, err := fmt.Fprintln(w, l)
		return err
	case "json":
		b, err := l.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		b, err := yaml.Marshal(l)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return prog.BadUsage("unknown format " + strconv.Quote(format))
	}
}

func elem(s string) *string {
	if s == NullLiteral {
		return nil
	}
	return &s
}

func elems(args []string) []*string {
	ps := make([]*string, len(args))
	for i, arg := range args {
		ps[i] = elem(arg)
	}
	return ps
}

// concat renders null as the null literal, like String does.
func concat(acc string, s *string) string {
	if s == nil {
		return acc + NullLiteral
	}
	return acc + *s
}
