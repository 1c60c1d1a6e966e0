// Package testutil provides shared fixtures for edi tests: a scripted terminal
// and a document builder.
package testutil

import (
	"bytes"
	"io"
)

// TTY is a scripted terminal. Each chunk is delivered over as many reads as
// the caller's buffer needs; an empty chunk is one read that timed out and
// returns (0, nil). Once the script is used up every read returns Err, or
// io.EOF when Err is nil.
type TTY struct {
	chunks []string

	Err    error
	Out    bytes.Buffer
	Reads  int
	Writes int
}

// NewTTY returns a terminal that replays chunks.
func NewTTY(chunks ...string) *TTY {
	return &TTY{chunks: chunks}
}

func (t *TTY) Read(p []byte) (int, error) {
	t.Reads++
	if len(t.chunks) == 0 {
		if t.Err != nil {
			return 0, t.Err
		}
		return 0, io.EOF
	}
	if t.chunks[0] == "" {
		t.chunks = t.chunks[1:]
		return 0, nil
	}
	n := copy(p, t.chunks[0])
	t.chunks[0] = t.chunks[0][n:]
	if t.chunks[0] == "" {
		t.chunks = t.chunks[1:]
	}
	return n, nil
}

func (t *TTY) Write(p []byte) (int, error) {
	t.Writes++
	return t.Out.Write(p)
}

// Remaining returns how many chunks have not been read yet.
func (t *TTY) Remaining() int { return len(t.chunks) }
