// Package textfile loads a file into lines and writes lines back.
package textfile

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/zjrosen/edi/internal/log"
)

// Error records a failed load or save.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// newError drops the *fs.PathError layer so the path is not reported twice.
func newError(op, path string, err error) *Error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &Error{Op: op, Path: path, Err: err}
}

// Store reads and writes text files on a file system.
type Store struct {
	fs afero.Fs
}

// NewStore returns a store over fsys. A nil fsys means the OS file system.
func NewStore(fsys afero.Fs) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Store{fs: fsys}
}

// Load returns the lines of path with trailing "\r" and "\n" stripped. An
// empty file has no lines.
func (s *Store) Load(path string) ([][]byte, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, newError("open", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines [][]byte
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newError("read", path, err)
		}
	}

	log.Debug(log.CatFile, "loaded", "path", path, "lines", len(lines))
	return lines, nil
}

// Save writes every line followed by "\n" and returns the byte count. The
// file is truncated to the new length before writing, so a failure to open or
// truncate leaves the previous content in place.
func (s *Store) Save(path string, lines [][]byte) (int, error) {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.Write(line)
		buf.WriteByte('\n')
	}

	f, err := s.fs.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, newError("open", path, err)
	}
	n, err := overwrite(f, path, buf.Bytes())
	if cerr := f.Close(); cerr != nil && err == nil {
		err = newError("close", path, cerr)
	}
	if err != nil {
		return n, err
	}

	log.Info(log.CatFile, "saved", "path", path, "bytes", n)
	return n, nil
}

// overwrite truncates f to len(data) and writes data from the start.
func overwrite(f afero.File, path string, data []byte) (int, error) {
	if err := f.Truncate(int64(len(data))); err != nil {
		return 0, newError("truncate", path, err)
	}
	n, err := f.Write(data)
	if err != nil {
		return n, newError("write", path, err)
	}
	if n != len(data) {
		return n, newError("write", path, io.ErrShortWrite)
	}
	return n, nil
}
