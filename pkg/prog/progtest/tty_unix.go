//go:build unix

package progtest

import (
	"os"

	"github.com/creack/pty"
)

// openTTY opens a pseudo terminal and returns its terminal side.
func openTTY() (*os.File, func(), error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, nil, err
	}
	return tty, func() {
		tty.Close()
		ptmx.Close()
	}, nil
}
