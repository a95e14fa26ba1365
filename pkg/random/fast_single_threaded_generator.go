package random

import (
	"math/rand/v2"
)

// NewFastSingleThreadedGenerator creates a new SingleThreadedGenerator
// that is not suitable for cryptographic purposes. The generator is
// randomly seeded.
func NewFastSingleThreadedGenerator() SingleThreadedGenerator {
	return rand.New(
		rand.NewPCG(
			CryptoThreadSafeGenerator.Uint64(),
			CryptoThreadSafeGenerator.Uint64(),
		),
	)
}
