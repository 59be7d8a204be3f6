package carrier

// RequiredCarrierSize is the number of carrier bytes needed to hide a message of messageSize bytes, sentinel
// included. Each carrier byte holds one bit.
func RequiredCarrierSize(messageSize int) int {
	return 8 * (messageSize + 1)
}

// Capacity is the longest message, in bytes, that fits into a carrier of carrierSize bytes.
func Capacity(carrierSize int) int {
	if c := carrierSize/8 - 1; c > 0 {
		return c
	}
	return 0
}
