package random

import (
	"math/rand/v2"

	"github.com/lazybeaver/xorshift"
)

type xorShiftSource struct {
	sequence xorshift.XorShift
}

func (s xorShiftSource) Uint64() uint64 {
	return s.sequence.Next()
}

// NewSeededSingleThreadedGenerator creates a new
// SingleThreadedGenerator whose output is fully determined by the
// provided seed, so that simulation runs can be replayed. The zero
// seed is remapped, as the underlying xorshift sequence would get
// stuck on it.
func NewSeededSingleThreadedGenerator(seed uint64) SingleThreadedGenerator {
	if seed == 0 {
		seed = 1
	}
	return rand.New(xorShiftSource{
		sequence: xorshift.NewXorShift64Star(seed),
	})
}
