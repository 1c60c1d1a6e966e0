// Package input decodes the raw terminal byte stream into logical keys.
package input

import "strings"

// Kind identifies the variant of a Key.
type Kind int

const (
	KindPrintable Kind = iota // Byte holds the byte to insert
	KindControl               // Byte holds the control code (0-31)
	KindEnter
	KindBackspace
	KindDelete
	KindArrowUp
	KindArrowDown
	KindArrowLeft
	KindArrowRight
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindEscape // bare escape or an unrecognized sequence
)

const (
	escByte       = 0x1b
	enterByte     = '\r'
	backspaceByte = 127
)

// Key is one logical key press. Byte is only meaningful for KindPrintable and
// KindControl.
type Key struct {
	Kind Kind
	Byte byte
}

// Printable returns the key that inserts b.
func Printable(b byte) Key { return Key{Kind: KindPrintable, Byte: b} }

// Control returns the key for Ctrl plus letter, e.g. Control('q').
func Control(letter byte) Key { return Key{Kind: KindControl, Byte: letter & 0x1f} }

var kindNames = map[Kind]string{
	KindEnter:      "enter",
	KindBackspace:  "backspace",
	KindDelete:     "delete",
	KindArrowUp:    "up",
	KindArrowDown:  "down",
	KindArrowLeft:  "left",
	KindArrowRight: "right",
	KindHome:       "home",
	KindEnd:        "end",
	KindPageUp:     "pgup",
	KindPageDown:   "pgdown",
	KindEscape:     "esc",
}

// String returns the binding name of the key: "a", "ctrl+q", "up", "esc".
func (k Key) String() string {
	switch k.Kind {
	case KindPrintable:
		if k.Byte == '\t' {
			return "tab"
		}
		return string([]byte{k.Byte})
	case KindControl:
		if k.Byte == 0 {
			return "ctrl+@"
		}
		return "ctrl+" + strings.ToLower(string(rune(k.Byte|0x40)))
	}
	if name, ok := kindNames[k.Kind]; ok {
		return name
	}
	return "unknown"
}

// classify maps a single byte that did not start an escape sequence.
func classify(b byte) Key {
	switch {
	case b == enterByte:
		return Key{Kind: KindEnter}
	case b == backspaceByte:
		return Key{Kind: KindBackspace}
	case b == '\t':
		return Printable(b)
	case b < 0x20:
		return Key{Kind: KindControl, Byte: b}
	default:
		return Printable(b)
	}
}
