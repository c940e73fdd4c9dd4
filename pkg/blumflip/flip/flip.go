package flip

import (
	"errors"
	"fmt"

	"github.com/commitlab/blumflip-go/pkg/blumflip"
	"github.com/commitlab/blumflip-go/pkg/blumflip/pedersen"
	"github.com/commitlab/blumflip-go/pkg/blumflip/transcript"
)

var (
	ErrNilScheme  = errors.New("commitment scheme must not be nil")
	ErrNilRandom  = errors.New("random source must not be nil")
	ErrOutOfOrder = errors.New("protocol step out of order")
)

// State tracks a run's position in the strictly linear protocol flow.
type State uint8

const (
	StateInit State = iota
	StateKeyPublished
	StateBitChosen
	StateCommitted
	StateCounterBitChosen
	StateRevealed
	StateVerified
	StateAborted
)

// String returns the state's display name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateKeyPublished:
		return "KeyPublished"
	case StateBitChosen:
		return "BitChosen"
	case StateCommitted:
		return "Committed"
	case StateCounterBitChosen:
		return "CounterBitChosen"
	case StateRevealed:
		return "Revealed"
	case StateVerified:
		return "Verified"
	case StateAborted:
		return "Aborted"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateVerified || s == StateAborted
}

// Outcome is the terminal result of a run. Coin and Winner are meaningful
// only when Aborted is false.
type Outcome struct {
	Aborted bool
	Coin    blumflip.Bit
	Winner  blumflip.Role
}

// Params configures a single run. Scheme and Rand are required; a nil Sink
// falls back to transcript.Discard. The zero Tamper leaves the run honest.
type Params struct {
	Scheme *pedersen.Scheme
	Rand   blumflip.RandomSource
	Sink   transcript.Sink
	Tamper Tamper
}

// Flip drives one coin-flipping run between the two locally simulated
// parties. A Flip is single shot: once a terminal state is reached, a new
// value must be constructed for the next run. Not safe for concurrent use.
type Flip struct {
	scheme *pedersen.Scheme
	rand   blumflip.RandomSource
	sink   transcript.Sink
	tamper Tamper

	state State

	secretKey  int64        // key-holder's k, scrubbed at terminal states
	publicKey  int64        // h = g^k
	secretBit  blumflip.Bit // committer's m, scrubbed at terminal states
	nonce      int64        // committer's blinding exponent r, scrubbed at terminal states
	commitment int64        // c = g^r * h^m
	counterBit blumflip.Bit // key-holder's openly chosen b

	claimedBit   blumflip.Bit // opening as sent at Reveal, after any tampering
	claimedNonce int64

	outcome Outcome
}

// New prepares a run from params, validating that the required collaborators
// are present.
func New(p Params) (*Flip, error) {
	if p.Scheme == nil {
		return nil, ErrNilScheme
	}
	if p.Rand == nil {
		return nil, ErrNilRandom
	}
	sink := p.Sink
	if sink == nil {
		sink = transcript.Discard
	}
	return &Flip{
		scheme: p.Scheme,
		rand:   p.Rand,
		sink:   sink,
		tamper: p.Tamper,
		state:  StateInit,
	}, nil
}

// State returns the run's current position in the protocol flow.
func (f *Flip) State() State {
	return f.state
}

// Outcome returns the run's result. It is the zero Outcome until the run
// reaches a terminal state.
func (f *Flip) Outcome() Outcome {
	return f.outcome
}

// PublishKey performs step 1: the key-holder samples its secret exponent k
// and publishes the commitment key h = g^k mod p.
func (f *Flip) PublishKey() (int64, error) {
	if f.state != StateInit {
		return 0, f.misuse("PublishKey", StateInit)
	}
	k, err := f.scheme.SampleExponent(f.rand)
	if err != nil {
		return 0, err
	}
	f.secretKey = k
	f.publicKey = f.scheme.PublicKey(k)
	f.state = StateKeyPublished
	f.emit(blumflip.RoleKeyHolder, transcript.KindKeyPublished,
		fmt.Sprintf("chose secret k=%d  ->  published h=g^k (mod %d) = %d", k, f.modulus(), f.publicKey))
	return f.publicKey, nil
}

// ChooseBit performs step 2: the committer picks the secret bit m it will
// commit to.
func (f *Flip) ChooseBit() (blumflip.Bit, error) {
	if f.state != StateKeyPublished {
		return 0, f.misuse("ChooseBit", StateKeyPublished)
	}
	f.secretBit = blumflip.BitFromInt(f.rand.Uniform(2))
	f.state = StateBitChosen
	f.emit(blumflip.RoleCommitter, transcript.KindBitChosen,
		fmt.Sprintf("chose m=%d", f.secretBit))
	return f.secretBit, nil
}

// Commit performs step 3: the committer samples the blinding exponent r,
// computes c = g^r * h^m mod p, and sends c to the key-holder.
func (f *Flip) Commit() (int64, error) {
	if f.state != StateBitChosen {
		return 0, f.misuse("Commit", StateBitChosen)
	}
	r, err := f.scheme.SampleExponent(f.rand)
	if err != nil {
		return 0, err
	}
	c, err := f.scheme.Commit(f.secretBit, r, f.publicKey)
	if err != nil {
		return 0, err
	}
	f.nonce = r
	f.commitment = c
	f.state = StateCommitted
	f.emit(blumflip.RoleCommitter, transcript.KindCommitted,
		fmt.Sprintf("computed commitment c = g^r * h^m (mod %d) = %d (r=%d hidden)", f.modulus(), c, r))
	f.emit(blumflip.RoleCommitter, transcript.KindCommitSent,
		fmt.Sprintf("SEND COMMIT: c=%d", c))
	return c, nil
}

// ChooseCounterBit performs step 4: the key-holder picks its bit b in the
// open, now that the committer is bound.
func (f *Flip) ChooseCounterBit() (blumflip.Bit, error) {
	if f.state != StateCommitted {
		return 0, f.misuse("ChooseCounterBit", StateCommitted)
	}
	f.counterBit = blumflip.BitFromInt(f.rand.Uniform(2))
	f.state = StateCounterBitChosen
	f.emit(blumflip.RoleKeyHolder, transcript.KindCounterBitChosen,
		fmt.Sprintf("chose b=%d and sends it to %s", f.counterBit, blumflip.RoleCommitter))
	return f.counterBit, nil
}

// Reveal performs step 5: the committer discloses its claimed opening (m, r).
// The claimed values equal the true ones unless the run's Tamper corrupts
// them; the true values are never modified.
func (f *Flip) Reveal() (blumflip.Bit, int64, error) {
	if f.state != StateCounterBitChosen {
		return 0, 0, f.misuse("Reveal", StateCounterBitChosen)
	}
	m, r := f.tamper.apply(f.secretBit, f.nonce, f.scheme.Group())
	f.claimedBit = m
	f.claimedNonce = r
	f.state = StateRevealed
	f.emit(blumflip.RoleCommitter, transcript.KindRevealSent,
		fmt.Sprintf("REVEAL: m=%d, r=%d", m, r))
	return m, r, nil
}

// Resolve performs step 6: the key-holder checks the claimed opening against
// the commitment. A match yields the shared coin m XOR b and names the
// winner; a mismatch aborts the run. Either way the run terminates and the
// per-run secrets are scrubbed.
//
// A failed verification is a normal protocol outcome, not an error.
func (f *Flip) Resolve() (Outcome, error) {
	if f.state != StateRevealed {
		return Outcome{}, f.misuse("Resolve", StateRevealed)
	}
	ok := f.scheme.Verify(f.commitment, f.claimedBit, f.claimedNonce, f.publicKey)
	f.emit(blumflip.RoleKeyHolder, transcript.KindVerified,
		fmt.Sprintf("verify(c = %d, m = %d, r = %d, h = %d) = %t",
			f.commitment, f.claimedBit, f.claimedNonce, f.publicKey, ok))

	if !ok {
		f.outcome = Outcome{Aborted: true}
		f.state = StateAborted
		f.emit(blumflip.RoleKeyHolder, transcript.KindAborted, "ABORT (verification failed)")
		f.scrub()
		return f.outcome, nil
	}

	// The coin derives from the claimed bit: whatever opening passed the
	// check is the opening the run settles on.
	coin := f.claimedBit.Xor(f.counterBit)
	winner := blumflip.RoleKeyHolder
	if coin == 1 {
		winner = blumflip.RoleCommitter
	}
	f.outcome = Outcome{Coin: coin, Winner: winner}
	f.state = StateVerified
	f.emit(blumflip.RoleKeyHolder, transcript.KindOutcome,
		fmt.Sprintf("coin = m XOR b = %d XOR %d = %d", f.claimedBit, f.counterBit, coin))
	f.emit(winner, transcript.KindWinner, fmt.Sprintf("%s wins!", winner))
	f.scrub()
	return f.outcome, nil
}

// Run drives all six transitions in order and returns the outcome.
func (f *Flip) Run() (Outcome, error) {
	if _, err := f.PublishKey(); err != nil {
		return Outcome{}, err
	}
	if _, err := f.ChooseBit(); err != nil {
		return Outcome{}, err
	}
	if _, err := f.Commit(); err != nil {
		return Outcome{}, err
	}
	if _, err := f.ChooseCounterBit(); err != nil {
		return Outcome{}, err
	}
	if _, _, err := f.Reveal(); err != nil {
		return Outcome{}, err
	}
	return f.Resolve()
}

// scrub overwrites the per-run secrets once the run reaches a terminal state.
// Published values and the claimed opening stay readable.
func (f *Flip) scrub() {
	f.secretKey = 0
	f.secretBit = 0
	f.nonce = 0
}

func (f *Flip) misuse(step string, want State) error {
	return fmt.Errorf("%w: %s requires state %s, run is in state %s", ErrOutOfOrder, step, want, f.state)
}

func (f *Flip) emit(role blumflip.Role, kind transcript.Kind, detail string) {
	f.sink.Emit(transcript.Event{Role: role, Kind: kind, Detail: detail})
}

func (f *Flip) modulus() int64 {
	return f.scheme.Group().P
}
