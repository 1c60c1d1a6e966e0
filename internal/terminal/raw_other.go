//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package terminal

import (
	"errors"
	"runtime"
)

// RawMode is only supported on unix terminals.
func (t *Terminal) RawMode(func() error) error {
	return errors.New("raw mode is not supported on " + runtime.GOOS)
}
