package bits

import (
	"errors"
	"fmt"
	mathbits "math/bits"
)

var (
	ErrBitPositionOutOfRange = errors.New("accessing bit that doesn't exist")
)

// Bit is a single binary digit, true meaning 1.
type Bit = bool

// Sequence is an ordered run of bits. Sequences derived from text hold each byte most significant bit first.
type Sequence []Bit

// Unsigned lists the integer widths whose bits can be addressed individually.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type OutOfRangeError struct {
	Position uint
	Width    uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: position %d, width %d", ErrBitPositionOutOfRange, e.Position, e.Width)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrBitPositionOutOfRange
}

// Width returns the number of bits in T.
func Width[T Unsigned]() uint {
	return uint(mathbits.Len64(uint64(^T(0))))
}

// GetBit reports whether bit position (0 being the least significant) is set in value.
func GetBit[T Unsigned](value T, position uint) (Bit, error) {
	if err := checkPosition[T](position); err != nil {
		return false, err
	}
	return value&(T(1)<<position) != 0, nil
}

// SetBit returns value with the bit at position forced to bit. All other bits are left as they were.
func SetBit[T Unsigned](value T, position uint, bit Bit) (T, error) {
	if err := checkPosition[T](position); err != nil {
		return value, err
	}
	mask := T(1) << position
	if bit {
		return value | mask, nil
	}
	return value &^ mask, nil
}

func checkPosition[T Unsigned](position uint) error {
	if width := Width[T](); position >= width {
		return &OutOfRangeError{Position: position, Width: width}
	}
	return nil
}

// TextToBits expands every byte of text into its 8 bits, most significant first.
func TextToBits(text []byte) Sequence {
	br := NewBitReader(text)
	seq := make(Sequence, 0, br.BitsLeftToRead())
	for {
		bit, ok := br.ReadBit()
		if !ok {
			return seq
		}
		seq = append(seq, bit)
	}
}

// FoldByte packs exactly 8 bits, most significant first, into a byte.
func FoldByte(group Sequence) (byte, error) {
	if len(group) != 8 {
		return 0, ErrPartialByte
	}
	var b byte
	for _, bit := range group {
		b <<= 1
		if bit {
			b++
		}
	}
	return b, nil
}

// BitsToText folds bits into bytes eight at a time and decodes the result as UTF-8. A trailing group of fewer than
// 8 bits is rejected rather than padded.
func BitsToText(bits Sequence) (string, error) {
	if rem := len(bits) % 8; rem != 0 {
		return "", &DecodeError{ByteOffset: len(bits) / 8, Err: ErrPartialByte}
	}

	var td TextDecoder
	for i := 0; i < len(bits); i += 8 {
		if err := td.WriteGroup(bits[i : i+8]); err != nil {
			return "", err
		}
	}
	return td.Text()
}
