package carrier

import (
	"stegno/internal/bits"
	"stegno/test"
	"strings"
	"testing"
)

type testFunc func(t *testing.T, carrierSize int, message string)

var testMessages = []string{
	"",
	"Hi",
	"What is the color of the night?",
	"Sanguine, my brother. Sanguine.",
	"ünïcödé ✓ 世界",
}

func runCarrierTestsWithAllMessagesAndSizes(t *testing.T, testFunc testFunc) {
	for _, message := range testMessages {
		messageCopy := message
		t.Run(label(messageCopy), func(t *testing.T) {
			t.Parallel()
			t.Run("exact", func(t *testing.T) {
				t.Parallel()
				testFunc(t, RequiredCarrierSize(len(messageCopy)), messageCopy)
			})
			t.Run("oversized", func(t *testing.T) {
				t.Parallel()
				testFunc(t, RequiredCarrierSize(len(messageCopy))*4+3, messageCopy)
			})
		})
	}
}

func label(message string) string {
	if message == "" {
		return "empty"
	}
	return strings.ReplaceAll(message, " ", "_")
}

func generateCarrier(size int) []byte {
	return test.GenerateRandomBytes(size)
}

func lsbsOf(carrier []byte) bits.Sequence {
	lsbs := make(bits.Sequence, len(carrier))
	for i, b := range carrier {
		lsbs[i] = b&1 == 1
	}
	return lsbs
}

// carrierWithLSBs builds a carrier whose LSBs spell out raw, with random upper bits.
func carrierWithLSBs(raw []byte) []byte {
	rawBits := bits.TextToBits(raw)
	carrier := generateCarrier(len(rawBits))
	for i, bit := range rawBits {
		carrier[i] &^= 1
		if bit {
			carrier[i] |= 1
		}
	}
	return carrier
}
