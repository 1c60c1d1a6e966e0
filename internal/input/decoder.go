package input

import (
	"fmt"
	"io"
	"iter"
)

// state is a step of the escape sequence state machine.
type state int

const (
	stateStart   state = iota // waiting for the first byte of a key
	stateEscape               // saw ESC
	stateBracket              // saw ESC [
	stateDigit                // saw ESC [ <digit>, expecting ~
	stateSS3                  // saw ESC O
)

// Decoder turns a byte stream into keys.
//
// The reader is expected to behave like a terminal in raw mode with a read
// timeout: a read returning no bytes and a nil error means "no data yet". The
// decoder waits through such reads for the first byte of a key, but inside an
// escape sequence a single empty read ends the sequence and yields KindEscape.
// Any other error is returned unchanged.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Next blocks until a complete key is decoded or the reader fails.
func (d *Decoder) Next() (Key, error) {
	var (
		st    = stateStart
		digit byte
	)
	for {
		if st == stateStart {
			b, err := d.waitByte()
			if err != nil {
				return Key{}, err
			}
			if b != escByte {
				return classify(b), nil
			}
			st = stateEscape
			continue
		}

		b, ok, err := d.readByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			return Key{Kind: KindEscape}, nil
		}

		switch st {
		case stateEscape:
			switch b {
			case '[':
				st = stateBracket
			case 'O':
				st = stateSS3
			default:
				return Key{Kind: KindEscape}, nil
			}
		case stateBracket:
			if b >= '0' && b <= '9' {
				digit = b
				st = stateDigit
				continue
			}
			return bracketKey(b), nil
		case stateDigit:
			if b != '~' {
				return Key{Kind: KindEscape}, nil
			}
			return tildeKey(digit), nil
		case stateSS3:
			return ss3Key(b), nil
		}
	}
}

// Keys returns the decoded key stream. The sequence never ends on its own; it
// stops after yielding the first read error, or when the consumer stops.
// It consumes the underlying reader, so it cannot be restarted.
func (d *Decoder) Keys() iter.Seq2[Key, error] {
	return func(yield func(Key, error) bool) {
		for {
			k, err := d.Next()
			if !yield(k, err) || err != nil {
				return
			}
		}
	}
}

// waitByte retries empty reads until a byte arrives.
func (d *Decoder) waitByte() (byte, error) {
	for {
		b, ok, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if ok {
			return b, nil
		}
	}
}

// readByte performs one read. ok is false when the read timed out.
func (d *Decoder) readByte() (byte, bool, error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading input: %w", err)
	}
	return 0, false, nil
}

func bracketKey(b byte) Key {
	switch b {
	case 'A':
		return Key{Kind: KindArrowUp}
	case 'B':
		return Key{Kind: KindArrowDown}
	case 'C':
		return Key{Kind: KindArrowRight}
	case 'D':
		return Key{Kind: KindArrowLeft}
	case 'H':
		return Key{Kind: KindHome}
	case 'F':
		return Key{Kind: KindEnd}
	}
	return Key{Kind: KindEscape}
}

func tildeKey(digit byte) Key {
	switch digit {
	case '1', '7':
		return Key{Kind: KindHome}
	case '3':
		return Key{Kind: KindDelete}
	case '4', '8':
		return Key{Kind: KindEnd}
	case '5':
		return Key{Kind: KindPageUp}
	case '6':
		return Key{Kind: KindPageDown}
	}
	return Key{Kind: KindEscape}
}

func ss3Key(b byte) Key {
	switch b {
	case 'H':
		return Key{Kind: KindHome}
	case 'F':
		return Key{Kind: KindEnd}
	}
	return Key{Kind: KindEscape}
}
