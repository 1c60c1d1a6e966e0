// Package terminal owns the tty: scoped raw mode, window size discovery and
// timed byte reads.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"

	"github.com/zjrosen/edi/internal/log"
)

// ErrNotTerminal is returned when stdin is not a tty.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Terminal reads keystrokes from in and writes frames to out.
type Terminal struct {
	in  *os.File
	out *os.File
}

// New returns a terminal over the given input and output files. It fails when
// in is not a tty.
func New(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(in.Fd()) {
		return nil, ErrNotTerminal
	}
	return &Terminal{in: in, out: out}, nil
}

// Read reads pending input. In raw mode the read returns after at most one
// tenth of a second; a read that timed out reports (0, nil).
func (t *Terminal) Read(p []byte) (int, error) {
	n, err := t.in.Read(p)
	if n == 0 && isTimeout(err) {
		return 0, nil
	}
	return n, err
}

// isTimeout reports whether err is how the tty signals "no byte yet". A VTIME
// expiry surfaces from os.File as io.EOF.
func isTimeout(err error) bool {
	return err == nil ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EINTR)
}

// Write writes p to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ClearScreen erases the screen and homes the cursor.
func (t *Terminal) ClearScreen() error {
	_, err := io.WriteString(t.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	return err
}

// Size returns the window size in cells. When the ioctl reports nothing
// usable, the cursor is pushed to the bottom-right corner and its position is
// queried instead.
func (t *Terminal) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(t.out.Fd())
	if err == nil && cols > 0 && rows > 0 {
		return rows, cols, nil
	}
	log.Warn(log.CatTerm, "window size ioctl failed, querying cursor", "err", err)

	rows, cols, err = querySize(t)
	if err != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", err)
	}
	return rows, cols, nil
}
