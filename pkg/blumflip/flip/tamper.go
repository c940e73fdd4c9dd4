package flip

import (
	"github.com/commitlab/blumflip-go/pkg/blumflip"
	"github.com/commitlab/blumflip-go/pkg/blumflip/modgroup"
)

// Tamper corrupts the committer's reveal to simulate an equivocating party.
// Only the claimed opening sent at the Reveal step is affected; the true
// secrets and the already-sent commitment are untouched. The zero value
// leaves the run honest.
type Tamper struct {
	// FlipRevealedBit claims the opposite bit at reveal time.
	FlipRevealedBit bool

	// OffsetRevealedNonce shifts the claimed blinding exponent by this
	// amount, reduced back into [0, Order).
	OffsetRevealedNonce int64
}

// apply returns the opening the committer actually sends.
func (t Tamper) apply(m blumflip.Bit, r int64, group modgroup.Params) (blumflip.Bit, int64) {
	if t.FlipRevealedBit {
		m = m.Xor(1)
	}
	if t.OffsetRevealedNonce != 0 {
		r = group.ReduceExponent(r + t.OffsetRevealedNonce)
	}
	return m, r
}
