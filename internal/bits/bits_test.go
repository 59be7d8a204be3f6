package bits

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGetBit(t *testing.T) {
	expected := []Bit{true, true, true, false}
	for position, want := range expected {
		bit, err := GetBit(uint32(7), uint(position))
		require.NoError(t, err)
		assert.Equal(t, want, bit, "bit %d of 7", position)
	}
}

func TestSetBit(t *testing.T) {
	testCases := []struct {
		value    uint8
		position uint
		bit      Bit
		expected uint8
	}{
		{7, 0, false, 6},
		{7, 1, false, 5},
		{7, 2, false, 3},
		{7, 2, true, 7},
		{7, 3, true, 15},
		{255, 0, false, 254},
		{0, 7, true, 128},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%d-%t", tc.value, tc.position, tc.bit), func(t *testing.T) {
			result, err := SetBit(tc.value, tc.position, tc.bit)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestBitPositionOutOfRange(t *testing.T) {
	_, err := GetBit(uint8(1), 8)
	require.ErrorIs(t, err, ErrBitPositionOutOfRange)

	var rangeErr *OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint(8), rangeErr.Position)
	assert.Equal(t, uint(8), rangeErr.Width)

	value, err := SetBit(uint16(3), 16, true)
	require.ErrorIs(t, err, ErrBitPositionOutOfRange)
	assert.Equal(t, uint16(3), value)

	_, err = GetBit(uint64(1), 63)
	assert.NoError(t, err)
	_, err = SetBit(uint64(1), 64, false)
	assert.ErrorIs(t, err, ErrBitPositionOutOfRange)
}

func TestWidth(t *testing.T) {
	assert.Equal(t, uint(8), Width[uint8]())
	assert.Equal(t, uint(16), Width[uint16]())
	assert.Equal(t, uint(32), Width[uint32]())
	assert.Equal(t, uint(64), Width[uint64]())
}

func TestSetBitIsNonDestructive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Uint8().Draw(t, "value")
		position := rapid.UintRange(0, 7).Draw(t, "position")
		bit := rapid.Bool().Draw(t, "bit")

		updated, err := SetBit(value, position, bit)
		require.NoError(t, err)

		for q := uint(0); q < 8; q++ {
			got, err := GetBit(updated, q)
			require.NoError(t, err)
			if q == position {
				require.Equal(t, bit, got)
				continue
			}
			original, err := GetBit(value, q)
			require.NoError(t, err)
			require.Equal(t, original, got, "bit %d changed", q)
		}
	})
}

func TestSetBitIsNonDestructiveWide(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Uint32().Draw(t, "value")
		position := rapid.UintRange(0, 31).Draw(t, "position")
		bit := rapid.Bool().Draw(t, "bit")

		updated, err := SetBit(value, position, bit)
		require.NoError(t, err)

		got, err := GetBit(updated, position)
		require.NoError(t, err)
		require.Equal(t, bit, got)

		mask := uint32(1) << position
		require.Equal(t, value&^mask, updated&^mask)
	})
}

func TestTextToBits(t *testing.T) {
	assert.Equal(t, Sequence{false, true, false, false, false, false, false, true}, TextToBits([]byte("A")))

	assert.Equal(t, Sequence{
		false, true, false, false, false, false, false, true,
		false, true, true, true, false, true, true, false,
		false, true, true, true, false, false, true, true,
		false, true, true, false, true, false, false, false,
		false, true, true, true, true, false, false, true,
		false, true, true, true, true, false, true, false,
	}, TextToBits([]byte("Avshyz")))

	assert.Empty(t, TextToBits(nil))
}

func TestFoldByte(t *testing.T) {
	b, err := FoldByte(Sequence{false, true, false, false, false, false, false, true})
	require.NoError(t, err)
	assert.Equal(t, byte('A'), b)

	_, err = FoldByte(Sequence{true, false})
	assert.ErrorIs(t, err, ErrPartialByte)
}

func TestBitsToText(t *testing.T) {
	text, err := BitsToText(TextToBits([]byte("héllo, 世界")))
	require.NoError(t, err)
	assert.Equal(t, "héllo, 世界", text)

	text, err = BitsToText(nil)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestBitsToTextRejectsPartialByte(t *testing.T) {
	bits := append(TextToBits([]byte("Hi")), true, false, true)

	_, err := BitsToText(bits)
	require.ErrorIs(t, err, ErrPartialByte)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 2, decodeErr.ByteOffset)
}

func TestBitsToTextRejectsInvalidUTF8(t *testing.T) {
	testCases := map[string][]byte{
		"lone continuation byte": {'o', 'k', 0x80},
		"invalid lead byte":      {0xff},
		"truncated sequence":     {'a', 0xe4, 0xb8},
		"interrupted sequence":   {0xe4, 'a', 'b'},
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := BitsToText(TextToBits(raw))
			assert.True(t, errors.Is(err, ErrInvalidUTF8), "expected invalid UTF-8 error, got %v", err)
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")

		bits := TextToBits([]byte(text))
		require.Len(t, bits, 8*len(text))

		decoded, err := BitsToText(bits)
		require.NoError(t, err)
		require.Equal(t, text, decoded)
	})
}
