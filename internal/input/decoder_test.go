package input

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/edi/internal/testutil"
)

// script replays reads; an empty string is a read that timed out.
func script(reads ...string) *testutil.TTY {
	return testutil.NewTTY(reads...)
}

func failing(err error) *testutil.TTY {
	tty := testutil.NewTTY()
	tty.Err = err
	return tty
}

func decodeAll(t *testing.T, r io.Reader) []Key {
	t.Helper()
	var keys []Key
	for k, err := range NewDecoder(r).Keys() {
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		keys = append(keys, k)
	}
	return keys
}

// ============================================================================
// Single keys
// ============================================================================

func TestDecoder_EscapeSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Key
	}{
		{name: "arrow up", input: "\x1b[A", expected: Key{Kind: KindArrowUp}},
		{name: "arrow down", input: "\x1b[B", expected: Key{Kind: KindArrowDown}},
		{name: "arrow right", input: "\x1b[C", expected: Key{Kind: KindArrowRight}},
		{name: "arrow left", input: "\x1b[D", expected: Key{Kind: KindArrowLeft}},
		{name: "home letter form", input: "\x1b[H", expected: Key{Kind: KindHome}},
		{name: "end letter form", input: "\x1b[F", expected: Key{Kind: KindEnd}},
		{name: "home tilde form", input: "\x1b[1~", expected: Key{Kind: KindHome}},
		{name: "home rxvt form", input: "\x1b[7~", expected: Key{Kind: KindHome}},
		{name: "delete", input: "\x1b[3~", expected: Key{Kind: KindDelete}},
		{name: "end tilde form", input: "\x1b[4~", expected: Key{Kind: KindEnd}},
		{name: "end rxvt form", input: "\x1b[8~", expected: Key{Kind: KindEnd}},
		{name: "page up", input: "\x1b[5~", expected: Key{Kind: KindPageUp}},
		{name: "page down", input: "\x1b[6~", expected: Key{Kind: KindPageDown}},
		{name: "ss3 home", input: "\x1bOH", expected: Key{Kind: KindHome}},
		{name: "ss3 end", input: "\x1bOF", expected: Key{Kind: KindEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewDecoder(script(tt.input)).Next()
			require.NoError(t, err)
			require.Equal(t, tt.expected, k)
		})
	}
}

func TestDecoder_UnmatchedSequencesDegradeToEscape(t *testing.T) {
	tests := []struct {
		name  string
		reads []string
	}{
		{name: "lone escape then timeout", reads: []string{"\x1b", ""}},
		{name: "bracket then timeout", reads: []string{"\x1b[", ""}},
		{name: "digit then timeout", reads: []string{"\x1b[3", ""}},
		{name: "unknown letter", reads: []string{"\x1b[Z"}},
		{name: "unknown digit", reads: []string{"\x1b[2~"}},
		{name: "digit without tilde", reads: []string{"\x1b[3x"}},
		{name: "unknown second byte", reads: []string{"\x1bx"}},
		{name: "unknown ss3", reads: []string{"\x1bOP"}},
		{name: "zero is not ss3", reads: []string{"\x1b0H"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewDecoder(script(tt.reads...)).Next()
			require.NoError(t, err)
			require.Equal(t, Key{Kind: KindEscape}, k)
		})
	}
}

func TestDecoder_SingleBytes(t *testing.T) {
	tests := []struct {
		input    byte
		expected Key
	}{
		{input: '\r', expected: Key{Kind: KindEnter}},
		{input: 127, expected: Key{Kind: KindBackspace}},
		{input: 'a', expected: Printable('a')},
		{input: ' ', expected: Printable(' ')},
		{input: '\t', expected: Printable('\t')},
		{input: 0xe9, expected: Printable(0xe9)},
		{input: 0x11, expected: Control('q')},
		{input: 0x08, expected: Control('h')},
		{input: '\n', expected: Control('j')},
		{input: 0x00, expected: Key{Kind: KindControl, Byte: 0}},
	}

	for _, tt := range tests {
		k, err := NewDecoder(script(string([]byte{tt.input}))).Next()
		require.NoError(t, err)
		require.Equal(t, tt.expected, k, "byte %#x", tt.input)
	}
}

// ============================================================================
// Stream behaviour
// ============================================================================

func TestDecoder_WaitsThroughTimeoutsForFirstByte(t *testing.T) {
	r := script("", "", "", "x")

	k, err := NewDecoder(r).Next()

	require.NoError(t, err)
	require.Equal(t, Printable('x'), k)
	require.Equal(t, 4, r.Reads)
}

func TestDecoder_StreamOfKeys(t *testing.T) {
	keys := decodeAll(t, script("ab\x1b[3~", "", "\x1b", "", "\r\x1b[6~"))

	require.Equal(t, []Key{
		Printable('a'),
		Printable('b'),
		{Kind: KindDelete},
		{Kind: KindEscape},
		{Kind: KindEnter},
		{Kind: KindPageDown},
	}, keys)
}

func TestDecoder_EscapeFollowedByKeyConsumesNextByte(t *testing.T) {
	keys := decodeAll(t, script("\x1bab"))

	require.Equal(t, []Key{{Kind: KindEscape}, Printable('b')}, keys,
		"the byte after ESC belongs to the failed sequence")
}

func TestDecoder_ReadErrorIsReturned(t *testing.T) {
	boom := errors.New("device gone")
	d := NewDecoder(failing(boom))

	_, err := d.Next()

	require.ErrorIs(t, err, boom)
}

func TestDecoder_ReadErrorInsideSequenceIsReturned(t *testing.T) {
	d := NewDecoder(script("\x1b["))

	_, err := d.Next()

	require.ErrorIs(t, err, io.EOF)
}

func TestDecoder_KeysStopsAfterError(t *testing.T) {
	boom := errors.New("device gone")
	var seen int
	for _, err := range NewDecoder(failing(boom)).Keys() {
		seen++
		require.ErrorIs(t, err, boom)
	}
	require.Equal(t, 1, seen)
}

func TestDecoder_KeysHonoursEarlyBreak(t *testing.T) {
	r := script("abc")
	for k, err := range NewDecoder(r).Keys() {
		require.NoError(t, err)
		require.Equal(t, Printable('a'), k)
		break
	}
	require.Equal(t, 1, r.Reads)
}

// ============================================================================
// Key names
// ============================================================================

func TestKey_String(t *testing.T) {
	require.Equal(t, "ctrl+q", Control('q').String())
	require.Equal(t, "ctrl+s", Control('s').String())
	require.Equal(t, "ctrl+h", Key{Kind: KindControl, Byte: 8}.String())
	require.Equal(t, "ctrl+@", Key{Kind: KindControl}.String())
	require.Equal(t, "a", Printable('a').String())
	require.Equal(t, "tab", Printable('\t').String())
	require.Equal(t, "up", Key{Kind: KindArrowUp}.String())
	require.Equal(t, "pgdown", Key{Kind: KindPageDown}.String())
	require.Equal(t, "esc", Key{Kind: KindEscape}.String())
	require.Equal(t, "enter", Key{Kind: KindEnter}.String())
}

func TestProperty_PrintableBytesRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.SliceOfN(rapid.ByteRange(0x20, 0x7e), 1, 64).Draw(rt, "in")

		var got []byte
		for k, err := range NewDecoder(script(string(in))).Keys() {
			if err != nil {
				break
			}
			require.Equal(rt, KindPrintable, k.Kind)
			got = append(got, k.Byte)
		}
		require.Equal(rt, in, got)
	})
}
