package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// maxReportLen bounds the cursor position reply "ESC [ rows ; cols R".
const maxReportLen = 32

// maxIdleReads is how many empty timed reads the size query tolerates.
const maxIdleReads = 10

var errBadReport = errors.New("malformed cursor position report")

// querySize moves the cursor as far right and down as the terminal allows and
// asks where it ended up.
func querySize(rw io.ReadWriter) (rows, cols int, err error) {
	probe := ansi.CursorForward(999) + ansi.CursorDown(999) + ansi.RequestCursorPositionReport
	if _, err := io.WriteString(rw, probe); err != nil {
		return 0, 0, fmt.Errorf("requesting cursor position: %w", err)
	}

	reply, err := readReport(rw)
	if err != nil {
		return 0, 0, err
	}
	return parseReport(reply)
}

// readReport collects bytes up to and including the terminating 'R'.
func readReport(r io.Reader) ([]byte, error) {
	reply := make([]byte, 0, maxReportLen)
	var b [1]byte
	idle := 0
	for len(reply) < maxReportLen {
		n, err := r.Read(b[:])
		if err != nil {
			return nil, fmt.Errorf("reading cursor position: %w", err)
		}
		if n == 0 {
			idle++
			if idle >= maxIdleReads {
				break
			}
			continue
		}
		if b[0] == 'R' {
			return reply, nil
		}
		reply = append(reply, b[0])
	}
	return nil, errBadReport
}

// parseReport parses "ESC [ rows ; cols" (the trailing 'R' already removed).
func parseReport(reply []byte) (rows, cols int, err error) {
	s, ok := strings.CutPrefix(string(reply), "\x1b[")
	if !ok {
		return 0, 0, errBadReport
	}
	r, c, ok := strings.Cut(s, ";")
	if !ok {
		return 0, 0, errBadReport
	}
	rows, err = strconv.Atoi(r)
	if err != nil || rows <= 0 {
		return 0, 0, errBadReport
	}
	cols, err = strconv.Atoi(c)
	if err != nil || cols <= 0 {
		return 0, 0, errBadReport
	}
	return rows, cols, nil
}
