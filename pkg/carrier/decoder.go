package carrier

import (
	"stegno/internal/bits"
	"stegno/pkg/config"
	"stegno/pkg/model"
	"time"
)

type Decoder struct {
	config config.CarrierConfig
	stats  model.ExtractStats
}

func NewDecoder(cConfig config.CarrierConfig) (*Decoder, error) {
	cConfig.PopulateUnsetConfigVars()
	if err := cConfig.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{config: cConfig}, nil
}

// Extract recovers a message hidden with Inject, using the default sentinel.
func Extract(carrier []byte) (string, error) {
	dec, err := NewDecoder(config.CarrierConfig{})
	if err != nil {
		return "", err
	}
	return dec.Extract(carrier)
}

func (d *Decoder) Stats() model.ExtractStats {
	return d.stats
}

// Extract reads carrier LSBs eight bytes at a time, folding each group into one message byte, and stops at the first
// byte equal to the sentinel. Carrier bytes after the sentinel are never looked at.
func (d *Decoder) Extract(carrier []byte) (string, error) {
	extractStart := time.Now()
	d.stats = model.ExtractStats{CarrierSize: len(carrier)}
	defer func() {
		d.stats.Extraction = time.Since(extractStart)
	}()

	var text bits.TextDecoder
	group := make(bits.Sequence, 8)
	for offset := 0; offset+8 <= len(carrier); offset += 8 {
		for i, b := range carrier[offset : offset+8] {
			lsb, err := bits.GetBit(b, 0)
			if err != nil {
				return "", err
			}
			group[i] = lsb
		}
		d.stats.BytesScanned = offset + 8

		decoded, err := bits.FoldByte(group)
		if err != nil {
			return "", &DecodeError{ByteOffset: text.Len(), Err: err}
		}
		if decoded == d.config.Sentinel {
			return text.Text()
		}
		if err = text.WriteByte(decoded); err != nil {
			return "", err
		}
	}

	return "", &DecodeError{ByteOffset: text.Len(), Err: ErrSentinelNotFound}
}
