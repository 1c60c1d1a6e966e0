package textfile

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// failingCloseFs wraps an afero.Fs so that closing a file opened for writing
// fails with err after the data reached the underlying file.
type failingCloseFs struct {
	afero.Fs
	err error
}

func (f failingCloseFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return failingCloseFile{File: file, err: f.err}, nil
}

type failingCloseFile struct {
	afero.File
	err error
}

func (f failingCloseFile) Close() error {
	_ = f.File.Close()
	return &fs.PathError{Op: "close", Path: f.Name(), Err: f.err}
}

func lines(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

// ============================================================================
// Load
// ============================================================================

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected [][]byte
	}{
		{name: "trailing newline", content: "foo\nbar\n", expected: lines("foo", "bar")},
		{name: "no trailing newline", content: "foo\nbar", expected: lines("foo", "bar")},
		{name: "crlf", content: "foo\r\nbar\r\n", expected: lines("foo", "bar")},
		{name: "blank lines kept", content: "a\n\n\nb\n", expected: lines("a", "", "", "b")},
		{name: "tabs kept", content: "\tx\n", expected: lines("\tx")},
		{name: "empty file", content: "", expected: nil},
		{name: "single newline", content: "\n", expected: lines("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memFs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(memFs, "f.txt", []byte(tt.content), 0644))

			got, err := NewStore(memFs).Load("f.txt")

			require.NoError(t, err)
			require.Equal(t, len(tt.expected), len(got))
			for i := range tt.expected {
				require.Equal(t, tt.expected[i], got[i])
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewStore(afero.NewMemMapFs()).Load("nope.txt")

	var fileErr *Error
	require.ErrorAs(t, err, &fileErr)
	require.Equal(t, "open", fileErr.Op)
	require.Equal(t, "nope.txt", fileErr.Path)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

// ============================================================================
// Save
// ============================================================================

func TestSave_WritesNewlineAfterEveryRow(t *testing.T) {
	memFs := afero.NewMemMapFs()

	n, err := NewStore(memFs).Save("out.txt", lines("foo", "", "bar"))

	require.NoError(t, err)
	require.Equal(t, 9, n)
	data, err := afero.ReadFile(memFs, "out.txt")
	require.NoError(t, err)
	require.Equal(t, "foo\n\nbar\n", string(data))
}

func TestSave_TruncatesLongerFile(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "out.txt", []byte("a much longer previous content\n"), 0644))

	n, err := NewStore(memFs).Save("out.txt", lines("hi"))

	require.NoError(t, err)
	require.Equal(t, 3, n)
	data, err := afero.ReadFile(memFs, "out.txt")
	require.NoError(t, err)
	require.Equal(t, "hi\n", string(data))
}

func TestSave_EmptyDocument(t *testing.T) {
	memFs := afero.NewMemMapFs()

	n, err := NewStore(memFs).Save("out.txt", nil)

	require.NoError(t, err)
	require.Zero(t, n)
	data, err := afero.ReadFile(memFs, "out.txt")
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestSave_ReadOnlyKeepsPreviousContent(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "out.txt", []byte("old\n"), 0644))

	_, err := NewStore(afero.NewReadOnlyFs(base)).Save("out.txt", lines("new"))

	var fileErr *Error
	require.ErrorAs(t, err, &fileErr)
	require.Equal(t, "open", fileErr.Op)
	data, err := afero.ReadFile(base, "out.txt")
	require.NoError(t, err)
	require.Equal(t, "old\n", string(data))
}

func TestSave_ReportsCloseFailure(t *testing.T) {
	quota := errors.New("disk quota exceeded")
	store := NewStore(failingCloseFs{Fs: afero.NewMemMapFs(), err: quota})

	_, err := store.Save("out.txt", lines("data"))

	var fileErr *Error
	require.ErrorAs(t, err, &fileErr)
	require.Equal(t, "close", fileErr.Op)
	require.Equal(t, "out.txt", fileErr.Path)
	require.ErrorIs(t, err, quota)
	require.Equal(t, "close out.txt: disk quota exceeded", err.Error())
}

func TestError_Message(t *testing.T) {
	err := &Error{Op: "write", Path: "a.txt", Err: fs.ErrPermission}

	require.Equal(t, "write a.txt: permission denied", err.Error())
	require.ErrorIs(t, err, fs.ErrPermission)
}

// ============================================================================
// Properties
// ============================================================================

func TestProperty_SaveLoadRoundTrip(t *testing.T) {
	lineGen := rapid.SliceOfN(rapid.SampledFrom([]byte("ab \t~xyz0")), 0, 20)

	rapid.Check(t, func(rt *rapid.T) {
		want := rapid.SliceOfN(lineGen, 0, 10).Draw(rt, "lines")
		memFs := afero.NewMemMapFs()
		store := NewStore(memFs)

		n, err := store.Save("f.txt", want)
		require.NoError(rt, err)

		total := 0
		for _, l := range want {
			total += len(l) + 1
		}
		require.Equal(rt, total, n)

		got, err := store.Load("f.txt")
		require.NoError(rt, err)
		require.Equal(rt, len(want), len(got))
		for i := range want {
			require.Equal(rt, want[i], got[i])
		}
	})
}
