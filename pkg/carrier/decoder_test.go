package carrier

import (
	"stegno/pkg/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStopsAtSentinel(t *testing.T) {
	carrier := carrierWithLSBs([]byte("Hi\ntrailing noise that is not UTF-8 \xff\xfe"))

	dec, err := NewDecoder(config.CarrierConfig{})
	require.NoError(t, err)

	message, err := dec.Extract(carrier)
	require.NoError(t, err)
	assert.Equal(t, "Hi", message)
	assert.Equal(t, 24, dec.Stats().BytesScanned)
	assert.Equal(t, len(carrier), dec.Stats().CarrierSize)
}

func TestExtractWithoutSentinel(t *testing.T) {
	_, err := Extract(carrierWithLSBs([]byte("no terminator")))
	require.ErrorIs(t, err, ErrSentinelNotFound)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, len("no terminator"), decodeErr.ByteOffset)
}

func TestExtractIgnoresTrailingPartialGroup(t *testing.T) {
	carrier := append(carrierWithLSBs([]byte("abc")), 1, 1, 1)
	_, err := Extract(carrier)
	assert.ErrorIs(t, err, ErrSentinelNotFound)
}

func TestExtractFromEmptyCarrier(t *testing.T) {
	_, err := Extract(nil)
	assert.ErrorIs(t, err, ErrSentinelNotFound)
}

func TestExtractRejectsInvalidUTF8(t *testing.T) {
	testCases := map[string][]byte{
		"invalid byte before sentinel":   []byte("ok\xff\n"),
		"sentinel inside multi-byte rune": []byte("ok\xe4\xb8\n"),
	}

	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Extract(carrierWithLSBs(raw))
			assert.ErrorIs(t, err, ErrInvalidUTF8)
		})
	}
}

func TestExtractEmptyMessage(t *testing.T) {
	message, err := Extract(carrierWithLSBs([]byte("\n")))
	require.NoError(t, err)
	assert.Equal(t, "", message)
}
