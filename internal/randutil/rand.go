// Package randutil builds random generators for pairing draws.
//
// A *rand.Rand is not safe for concurrent use, so callers ask a Source for a
// fresh generator on every draw instead of sharing one.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
	"sync/atomic"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Source hands out independent generators. It is safe for concurrent use.
type Source struct {
	seeded bool
	seed   int64
	draws  atomic.Int64
}

// NewSource returns a Source whose n-th generator is derived from seed and n,
// so a server started with the same seed replays the same pairings.
func NewSource(seed int64) *Source {
	return &Source{seeded: true, seed: seed}
}

// NewCryptoSource returns a Source that seeds every generator from crypto/rand.
func NewCryptoSource() *Source {
	return &Source{}
}

// Rand returns a generator that shares no state with earlier ones.
func (s *Source) Rand() (*rand.Rand, error) {
	n := s.draws.Add(1)
	if s.seeded {
		return New(s.seed + n*goldenRatio64Signed), nil
	}
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// goldenRatio64Signed spreads consecutive draws across the seed space.
const goldenRatio64Signed = int64(goldenRatio64 >> 1)
