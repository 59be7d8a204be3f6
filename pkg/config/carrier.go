package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// DefaultSentinel marks the end of a hidden message. It must not occur verbatim inside the message.
	DefaultSentinel = byte('\n')
)

var (
	ErrNonASCIISentinel = errors.New("sentinel must be an ASCII byte")
)

type CarrierConfig struct {
	Sentinel byte `mapstructure:"sentinel"`
}

// PopulateUnsetConfigVars fills zero values with defaults. A zero sentinel is treated as unset.
func (c *CarrierConfig) PopulateUnsetConfigVars() {
	if c.Sentinel == 0 {
		c.Sentinel = DefaultSentinel
	}
}

func (c CarrierConfig) Validate() error {
	if c.Sentinel >= utf8.RuneSelf {
		return fmt.Errorf("%w; given: %#x", ErrNonASCIISentinel, c.Sentinel)
	}
	return nil
}
