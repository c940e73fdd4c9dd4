// Package flip implements a two-party coin-flipping protocol on top of the
// pedersen commitment scheme. One process drives both simulated parties.
//
// # Protocol Flow
//
// A run walks a strictly linear state machine:
//
//	Init -> KeyPublished -> BitChosen -> Committed ->
//	CounterBitChosen -> Revealed -> Verified | Aborted
//
//  1. The key-holder samples k and publishes h = g^k mod p.
//  2. The committer picks its secret bit m.
//  3. The committer samples r and sends c = g^r * h^m mod p.
//  4. The key-holder picks its counter bit b in the open.
//  5. The committer reveals its claimed opening (m, r).
//  6. The key-holder recomputes the commitment. On a match the shared coin
//     is m XOR b; otherwise the run aborts.
//
// Coin 0 means the key-holder wins, coin 1 the committer.
//
// # Usage
//
//	f, err := flip.New(flip.Params{
//	    Scheme: pedersen.NewMod7(),
//	    Rand:   blumflip.CryptoSource{},
//	    Sink:   transcript.NewWriter(os.Stdout),
//	})
//	if err != nil {
//	    return err
//	}
//	outcome, err := f.Run()
//	if err != nil {
//	    return err
//	}
//	if outcome.Aborted {
//	    // the committer's reveal did not open the commitment
//	}
//
// The six transitions are also available as individual step methods for
// callers that want to interleave their own work, inspect intermediate
// values, or drive the two roles from separate places.
//
// # Failure Model
//
// A failed verification is a protocol outcome, not an error: Resolve returns
// Outcome{Aborted: true} and the run terminates normally. Errors are reserved
// for caller bugs, such as invoking steps out of order or constructing a run
// from incomplete Params.
//
// # Concurrency
//
// A Flip is single shot and not safe for concurrent use; one run happens on
// one logical thread. Distinct Flips are independent and may run in parallel.
//
// # Security Warning
//
// Over the toy group the committer can often equivocate: alternate openings
// that pass verification exist for most keys. The Tamper hooks make such
// adversarial reveals reproducible. Nothing here defends against a malicious
// party beyond the single algebraic check.
package flip
