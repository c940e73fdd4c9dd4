package pedersen

import (
	"errors"
	"fmt"

	"github.com/commitlab/blumflip-go/pkg/blumflip"
	"github.com/commitlab/blumflip-go/pkg/blumflip/modgroup"
)

var (
	ErrNilRandom          = errors.New("random source must not be nil")
	ErrBitOutOfRange      = errors.New("message bit must be 0 or 1")
	ErrExponentOutOfRange = errors.New("exponent out of range")
	ErrElementOutOfGroup  = errors.New("element outside the multiplicative group")
)

// Scheme binds the commitment operations to one group parameterization. A
// Scheme holds no mutable state and is safe for concurrent use.
type Scheme struct {
	group modgroup.Params
}

// New constructs a Scheme over the provided group. The group is validated
// first so every later operation can assume a complete multiplicative group.
func New(group modgroup.Params) (*Scheme, error) {
	if err := group.Validate(); err != nil {
		return nil, fmt.Errorf("invalid group: %w", err)
	}
	return &Scheme{group: group}, nil
}

// NewMod7 returns a Scheme over the default toy group Z_7^* with generator 5.
func NewMod7() *Scheme {
	return &Scheme{group: modgroup.Mod7}
}

// Group returns the group parameterization the scheme operates in.
func (s *Scheme) Group() modgroup.Params {
	return s.group
}

// SampleExponent draws a fresh exponent in [0, Order) from src. Raw values
// outside the range, negatives included, are folded in by Euclidean
// reduction.
func (s *Scheme) SampleExponent(src blumflip.RandomSource) (int64, error) {
	if src == nil {
		return 0, ErrNilRandom
	}
	return s.group.ReduceExponent(src.Uniform(s.group.Order)), nil
}

// PublicKey derives the commitment key h = g^k mod p. The exponent is reduced
// into [0, Order) first, so any int64 is accepted; PublicKey(0) == 1.
func (s *Scheme) PublicKey(k int64) int64 {
	return s.group.Exp(s.group.G, s.group.ReduceExponent(k))
}

// Commit computes c = g^r * h^m mod p.
//
// Inputs are validated: m must be a bit, r must lie in [0, Order), and h must
// be a group element. Violations surface as wrapped sentinel errors so caller
// bugs are distinguishable from protocol-level failures. The result is always
// a group element.
func (s *Scheme) Commit(m blumflip.Bit, r, h int64) (int64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrBitOutOfRange, m)
	}
	if !s.group.ValidExponent(r) {
		return 0, fmt.Errorf("%w: blinding exponent %d not in [0,%d)", ErrExponentOutOfRange, r, s.group.Order)
	}
	if !s.group.ContainsElement(h) {
		return 0, fmt.Errorf("%w: key %d not in (0,%d)", ErrElementOutOfGroup, h, s.group.P)
	}
	return s.group.Mul(s.group.Exp(s.group.G, r), s.group.Exp(h, int64(m))), nil
}

// Verify reports whether (m, r) opens c under key h. It never returns an
// error: structurally invalid arguments fail verification the same way a
// wrong opening does. Verify recomputes the commitment and compares, so it is
// pure and idempotent.
func (s *Scheme) Verify(c int64, m blumflip.Bit, r, h int64) bool {
	if !s.group.ContainsElement(c) {
		return false
	}
	want, err := s.Commit(m, r, h)
	if err != nil {
		return false
	}
	return c == want
}
