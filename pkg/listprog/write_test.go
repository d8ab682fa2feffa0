package listprog

import (
	"errors"
	"testing"

	"github.com/migl/conslist/pkg/persistent/list"
)

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWrite_ReturnsWriteError(t *testing.T) {
	l := list.Of(elem("a"), elem("null"))
	for _, format := range []string{"sexp", "json", "yaml"} {
		if err := write(failingWriter{}, l, format); !errors.Is(err, errWrite) {
			t.Errorf("write with format %s returns %v, want errWrite", format, err)
		}
	}
}
