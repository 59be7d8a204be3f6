package carrier

import (
	"stegno/internal/bits"
	"stegno/pkg/config"
	"stegno/pkg/model"
	"time"
)

type Encoder struct {
	config config.CarrierConfig
	stats  model.InjectStats
}

func NewEncoder(cConfig config.CarrierConfig) (*Encoder, error) {
	cConfig.PopulateUnsetConfigVars()
	if err := cConfig.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{config: cConfig}, nil
}

// Inject hides message in the LSBs of carrier using the default sentinel.
func Inject(carrier []byte, message string) ([]byte, error) {
	enc, err := NewEncoder(config.CarrierConfig{})
	if err != nil {
		return nil, err
	}
	return enc.Inject(carrier, message)
}

func (e *Encoder) Stats() model.InjectStats {
	return e.stats
}

// Inject returns a copy of carrier whose leading bytes carry message followed by the sentinel, one bit per byte in
// the LSB, most significant bit of each message byte first. Bytes past the message are copied untouched. carrier
// itself is never modified. Nothing is returned if the carrier is too small.
func (e *Encoder) Inject(carrier []byte, message string) ([]byte, error) {
	injectStart := time.Now()
	e.stats = model.InjectStats{CarrierSize: len(carrier)}
	defer func() {
		e.stats.Injection = time.Since(injectStart)
	}()

	messageBits := bits.TextToBits(append([]byte(message), e.config.Sentinel))
	if len(messageBits) > len(carrier) {
		return nil, &CapacityError{Required: len(messageBits), Available: len(carrier)}
	}

	injected := make([]byte, len(carrier))
	copy(injected, carrier)
	for i, bit := range messageBits {
		b, err := bits.SetBit(injected[i], 0, bit)
		if err != nil {
			return nil, err
		}
		injected[i] = b
	}

	e.stats.BitsWritten = len(messageBits)
	return injected, nil
}
