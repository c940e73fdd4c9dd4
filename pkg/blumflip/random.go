package blumflip

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"sync"
)

// RandomSource supplies the raw randomness consumed by the commitment scheme
// and the protocol. Uniform should return a value in [0, bound); consumers
// fold out-of-range results back into range, so a sloppy source degrades
// unpredictability but cannot break range invariants.
type RandomSource interface {
	Uniform(bound int64) int64
}

// CryptoSource draws unbiased values from crypto/rand. The zero value is
// ready to use and safe for concurrent callers.
type CryptoSource struct{}

// Uniform returns a uniformly distributed value in [0, bound). A bound of
// zero or less yields 0. crypto/rand only fails when the platform entropy
// source is broken, in which case Uniform panics.
func (CryptoSource) Uniform(bound int64) int64 {
	if bound <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(bound))
	if err != nil {
		panic(fmt.Sprintf("blumflip: crypto/rand failed: %v", err))
	}
	return n.Int64()
}

// SeededSource draws from a deterministic math/rand stream. Two sources built
// from the same seed replay the same draws, which makes whole runs
// reproducible. Never use it where unpredictability matters.
type SeededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a source replaying the stream for seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewSource(seed))}
}

// Uniform returns the next value in [0, bound) from the seeded stream. A
// bound of zero or less yields 0. Safe for concurrent callers; draws are
// serialized.
func (s *SeededSource) Uniform(bound int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bound <= 0 {
		return 0
	}
	return s.rng.Int63n(bound)
}

// Scripted replays a fixed sequence of values, cycling when exhausted. It
// exists for tests and deterministic demos: the scripted values pass through
// unchanged regardless of bound, and consumers reduce them into range.
type Scripted struct {
	mu     sync.Mutex
	values []int64
	next   int
}

// NewScripted returns a source replaying values in order. With no values the
// source always returns 0.
func NewScripted(values ...int64) *Scripted {
	vs := make([]int64, len(values))
	copy(vs, values)
	return &Scripted{values: vs}
}

// Uniform returns the next scripted value, ignoring bound.
func (s *Scripted) Uniform(int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

var (
	_ RandomSource = CryptoSource{}
	_ RandomSource = (*SeededSource)(nil)
	_ RandomSource = (*Scripted)(nil)
)
