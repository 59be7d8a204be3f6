package carrier

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkInject(b *testing.B) {
	for _, messageSize := range []int{16, 1024, 64 * 1024} {
		message := strings.Repeat("a", messageSize)
		carrier := generateCarrier(RequiredCarrierSize(messageSize))
		b.Run(fmt.Sprintf("MessageBytes=%d", messageSize), func(b *testing.B) {
			b.SetBytes(int64(len(carrier)))
			for i := 0; i < b.N; i++ {
				if _, err := Inject(carrier, message); err != nil {
					b.Fatalf("Error during inject: %s", err)
				}
			}
		})
	}
}

func BenchmarkExtract(b *testing.B) {
	for _, messageSize := range []int{16, 1024, 64 * 1024} {
		message := strings.Repeat("a", messageSize)
		injected, err := Inject(generateCarrier(RequiredCarrierSize(messageSize)), message)
		if err != nil {
			b.Fatalf("Error injecting message for extract benchmark: %s", err)
		}
		b.Run(fmt.Sprintf("MessageBytes=%d", messageSize), func(b *testing.B) {
			b.SetBytes(int64(len(injected)))
			for i := 0; i < b.N; i++ {
				if _, err := Extract(injected); err != nil {
					b.Fatalf("Error during extract: %s", err)
				}
			}
		})
	}
}
