// Package pedersen implements a Pedersen-style bit commitment over a small
// multiplicative group.
//
// The committer binds itself to a bit m with a blinding exponent r by
// publishing c = g^r * h^m mod p, where h = g^k is the commitment key
// published by the other party. Opening the commitment means disclosing
// (m, r); anyone holding h can recompute the product and compare.
//
// # Operations
//
//   - SampleExponent: draw a fresh exponent from an injected random source
//   - PublicKey: derive the commitment key h = g^k
//   - Commit: bind to a bit, validating every input
//   - Verify: check an opening, never returning an error
//
// # Usage
//
//	scheme := pedersen.NewMod7()
//	h := scheme.PublicKey(k)
//	c, err := scheme.Commit(m, r, h)
//	if err != nil {
//	    return err
//	}
//	ok := scheme.Verify(c, m, r, h)
//
// # Error Model
//
// Commit rejects malformed inputs with wrapped sentinel errors; these signal
// caller bugs and must propagate. Verify never errors: a structurally invalid
// opening simply fails verification, the same way a wrong opening does, so
// protocol code has a single abort rule.
//
// # Security Warning
//
// Over the default group (p=7) the commitment is neither hiding nor binding:
// the group is small enough to enumerate and most keys admit alternate
// openings. This package demonstrates the algebra, nothing more.
package pedersen
