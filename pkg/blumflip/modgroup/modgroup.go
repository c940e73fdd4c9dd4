// Package modgroup implements arithmetic in the multiplicative group of
// integers modulo a small prime. Every reduction in the commitment packages
// flows through this package so there is exactly one copy of the modular
// arithmetic.
package modgroup

import (
	"errors"
	"fmt"
)

// Params describes a multiplicative group Z_p^* together with a fixed
// generator. Values are immutable and safe to share between goroutines.
//
// Arithmetic stays within int64: P must fit in 31 bits so that the product of
// two reduced elements never overflows.
type Params struct {
	// P is the prime modulus.
	P int64
	// G is a generator of the full multiplicative group modulo P.
	G int64
	// Order is the number of group elements, always P-1.
	Order int64
}

// Mod7 is the toy parameterization used throughout the examples: Z_7^* with
// generator 5 and order 6.
var Mod7 = Params{P: 7, G: 5, Order: 6}

const maxModulus = 1 << 31

var (
	ErrBadModulus   = errors.New("modulus must be a prime between 2 and 2^31")
	ErrBadOrder     = errors.New("order must equal modulus-1")
	ErrBadGenerator = errors.New("generator must span the full multiplicative group")
)

// Exp computes base^exp mod P by square-and-multiply. The base may be any
// int64 and is reduced first; exp must be non-negative. Exp(x, 0) == 1 for
// every x.
func (p Params) Exp(base, exp int64) int64 {
	res := 1 % p.P
	b := euclidMod(base, p.P)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			res = res * b % p.P
		}
		b = b * b % p.P
	}
	return res
}

// Mul returns a*b mod P with both factors reduced first.
func (p Params) Mul(a, b int64) int64 {
	return euclidMod(a, p.P) * euclidMod(b, p.P) % p.P
}

// ReduceExponent folds any int64 into the exponent range [0, Order) using
// Euclidean reduction, so negative raw values map to their positive residue.
func (p Params) ReduceExponent(raw int64) int64 {
	return euclidMod(raw, p.Order)
}

// ContainsElement reports whether x is a group element, i.e. 0 < x < P.
func (p Params) ContainsElement(x int64) bool {
	return x > 0 && x < p.P
}

// ValidExponent reports whether e lies in [0, Order).
func (p Params) ValidExponent(e int64) bool {
	return e >= 0 && e < p.Order
}

// Validate checks that the parameters describe a complete multiplicative
// group: P a small prime, Order equal to P-1, and G a generator reaching every
// element. The generator check walks all Order powers, which is fine for the
// toy moduli this package targets.
func (p Params) Validate() error {
	if p.P < 2 || p.P >= maxModulus {
		return fmt.Errorf("%w: got %d", ErrBadModulus, p.P)
	}
	if !isPrime(p.P) {
		return fmt.Errorf("%w: %d is composite", ErrBadModulus, p.P)
	}
	if p.Order != p.P-1 {
		return fmt.Errorf("%w: got order %d for modulus %d", ErrBadOrder, p.Order, p.P)
	}
	if !p.ContainsElement(p.G) {
		return fmt.Errorf("%w: %d is outside the group", ErrBadGenerator, p.G)
	}
	seen := make(map[int64]struct{}, p.Order)
	x := int64(1)
	for i := int64(0); i < p.Order; i++ {
		x = p.Mul(x, p.G)
		seen[x] = struct{}{}
	}
	if int64(len(seen)) != p.Order {
		return fmt.Errorf("%w: %d generates only %d of %d elements", ErrBadGenerator, p.G, len(seen), p.Order)
	}
	return nil
}

// euclidMod reduces v into [0, m) for positive m, mapping negative values to
// their positive residue.
func euclidMod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
