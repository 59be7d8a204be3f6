package carrier

import (
	"errors"
	"fmt"
	"stegno/internal/bits"
)

var (
	ErrCarrierNotBigEnough = errors.New("supplied carrier not big enough to contain the message, choose a bigger carrier or a shorter message")
	ErrSentinelNotFound    = errors.New("carrier ended before the end of message sentinel, it likely holds no message")
	ErrInvalidUTF8         = bits.ErrInvalidUTF8
)

// DecodeError is returned by Extract when the carrier does not hold valid text terminated by the sentinel.
type DecodeError = bits.DecodeError

// CapacityError reports how many carrier bytes a message needed and how many were supplied.
type CapacityError struct {
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: requires %d bytes, carrier has %d", ErrCarrierNotBigEnough, e.Required, e.Available)
}

func (e *CapacityError) Unwrap() error {
	return ErrCarrierNotBigEnough
}
