//go:build unix

package sys

import (
	"testing"

	"github.com/creack/pty"
)

func TestIsTerminalFile_Pty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	if !IsTerminalFile(tty) {
		t.Errorf("tty side of pty is not a terminal")
	}
}
