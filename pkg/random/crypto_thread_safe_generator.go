package random

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

type cryptoSource64 struct{}

func (s cryptoSource64) Uint64() uint64 {
	var b [8]byte
	if _, err := crypto_rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("Failed to obtain random data: %s", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

var _ rand.Source = cryptoSource64{}

type cryptoThreadSafeGenerator struct {
	*rand.Rand
}

func (g cryptoThreadSafeGenerator) IsThreadSafe() {}

// CryptoThreadSafeGenerator is an instance of ThreadSafeGenerator that
// is suitable for cryptographic purposes. The underlying source holds
// no state, which is what makes this generator safe for concurrent
// use.
var CryptoThreadSafeGenerator ThreadSafeGenerator = cryptoThreadSafeGenerator{
	Rand: rand.New(cryptoSource64{}),
}
