//go:build !unix

package progtest

import (
	"errors"
	"os"
)

func openTTY() (*os.File, func(), error) {
	return nil, nil, errors.New("pseudo terminals not supported")
}
