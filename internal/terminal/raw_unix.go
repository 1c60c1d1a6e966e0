//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import (
	"fmt"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/zjrosen/edi/internal/log"
)

// RawMode switches the tty to raw mode, runs fn and restores the original
// mode on every exit path, including a panic inside fn.
//
// Reads in raw mode return as soon as one byte is available or after 100ms
// with nothing (VMIN=0, VTIME=1).
func (t *Terminal) RawMode(fn func() error) (err error) {
	fd := t.in.Fd()

	var orig unix.Termios
	if err := termios.Tcgetattr(fd, &orig); err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	raw := orig
	termios.Cfmakeraw(&raw)
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := termios.Tcsetattr(fd, termios.TCSAFLUSH, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	log.Debug(log.CatTerm, "raw mode enabled")

	restore := func() error {
		if err := termios.Tcsetattr(fd, termios.TCSAFLUSH, &orig); err != nil {
			return fmt.Errorf("restoring terminal: %w", err)
		}
		log.Debug(log.CatTerm, "terminal restored")
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error(log.CatTerm, "panic in raw mode", "panic", r)
			_ = restore()
			panic(r)
		}
		if rerr := restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	return fn()
}
