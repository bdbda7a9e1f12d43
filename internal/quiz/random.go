package quiz

import (
	crypto "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Rand is the randomness the engine needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a generator seeded from crypto/rand, or from the clock if
// the system source is unavailable. The result is not safe for concurrent use.
func NewRand() *rand.Rand {
	var buf [8]byte
	seed := time.Now().UnixNano()
	if _, err := crypto.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}
	return rand.New(rand.NewSource(seed))
}

// Pick returns one element of s with equal probability. s must not be empty.
func Pick[T any](r Rand, s []T) T {
	return s[r.Intn(len(s))]
}

// Shuffle returns a uniformly random permutation of s as a new slice.
func Shuffle[T any](r Rand, s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		j := r.Intn(i + 1)
		if j != i {
			out[i] = out[j]
		}
		out[j] = s[i]
	}
	return out
}
