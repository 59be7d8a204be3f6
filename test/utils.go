package test

import "crypto/rand"

// GenerateRandomBytes returns a carrier-sized buffer of random bytes, so that LSBs and upper bits both vary.
func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	if _, err := rand.Read(generatedBytes); err != nil {
		panic(err)
	}
	return generatedBytes
}
