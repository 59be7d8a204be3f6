package bits

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrPartialByte = errors.New("bit sequence does not end on a byte boundary")
	ErrInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")
)

// DecodeError is returned when bits cannot be turned back into text. ByteOffset is the index of the first byte of
// the offending group or sequence.
type DecodeError struct {
	ByteOffset int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at byte %d: %v", e.ByteOffset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TextDecoder accumulates text one byte group at a time, validating UTF-8 as soon as each encoded rune is complete.
// The zero value is ready to use.
type TextDecoder struct {
	text         []byte
	pendingStart int
}

func (td *TextDecoder) WriteGroup(group Sequence) error {
	b, err := FoldByte(group)
	if err != nil {
		return &DecodeError{ByteOffset: len(td.text), Err: err}
	}
	return td.WriteByte(b)
}

func (td *TextDecoder) WriteByte(b byte) error {
	td.text = append(td.text, b)

	pending := td.text[td.pendingStart:]
	if !utf8.FullRune(pending) {
		return nil
	}
	r, size := utf8.DecodeRune(pending)
	if r == utf8.RuneError && size <= 1 {
		return &DecodeError{ByteOffset: td.pendingStart, Err: ErrInvalidUTF8}
	}
	td.pendingStart += size
	return nil
}

// Len returns the number of bytes written so far.
func (td *TextDecoder) Len() int {
	return len(td.text)
}

// Text returns everything written so far. It fails if the last rune is still incomplete.
func (td *TextDecoder) Text() (string, error) {
	if td.pendingStart != len(td.text) {
		return "", &DecodeError{ByteOffset: td.pendingStart, Err: ErrInvalidUTF8}
	}
	return string(td.text), nil
}
