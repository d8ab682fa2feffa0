package sys

import (
	"os"
	"testing"
)

func TestIsTerminalFile_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if IsTerminalFile(r) || IsTerminalFile(w) {
		t.Errorf("pipe is a terminal")
	}
	if IsTerminalFile(nil) {
		t.Errorf("nil file is a terminal")
	}
}
