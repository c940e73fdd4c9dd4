package transcript

import (
	"fmt"

	"github.com/commitlab/blumflip-go/pkg/blumflip"
)

// Kind identifies which protocol transition produced an event.
type Kind uint8

const (
	// KindKeyPublished records the key-holder sampling k and publishing h.
	KindKeyPublished Kind = iota
	// KindBitChosen records the committer picking its secret bit.
	KindBitChosen
	// KindCommitted records the committer computing the commitment locally.
	KindCommitted
	// KindCommitSent records the commitment crossing to the key-holder.
	KindCommitSent
	// KindCounterBitChosen records the key-holder picking its open bit.
	KindCounterBitChosen
	// KindRevealSent records the claimed opening crossing to the key-holder.
	KindRevealSent
	// KindVerified records the key-holder's recomputation check.
	KindVerified
	// KindOutcome records the XOR of the two bits on a successful run.
	KindOutcome
	// KindWinner names the winning party on a successful run.
	KindWinner
	// KindAborted records a failed verification ending the run.
	KindAborted
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindKeyPublished:
		return "KeyPublished"
	case KindBitChosen:
		return "BitChosen"
	case KindCommitted:
		return "Committed"
	case KindCommitSent:
		return "CommitSent"
	case KindCounterBitChosen:
		return "CounterBitChosen"
	case KindRevealSent:
		return "RevealSent"
	case KindVerified:
		return "Verified"
	case KindOutcome:
		return "Outcome"
	case KindWinner:
		return "Winner"
	case KindAborted:
		return "Aborted"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// crossing reports whether the event models a message moving between the two
// parties.
func (k Kind) crossing() bool {
	return k == KindCommitSent || k == KindRevealSent
}

// result reports whether the event announces a run result rather than a
// single party's action.
func (k Kind) result() bool {
	return k == KindOutcome || k == KindAborted
}

// Event is one transcript entry. Detail is preformatted display text carrying
// no values beyond what the protocol itself discloses at that transition.
type Event struct {
	Role   blumflip.Role
	Kind   Kind
	Detail string
}

// Sink consumes transcript events in emission order. Implementations must not
// call back into the protocol; the flow of information is one way.
type Sink interface {
	Emit(Event)
}

// Discard drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// Format renders a single event the way Writer prints it: result lines under
// a [Result] or [Winner] banner, cross-party sends with an arrow prefix, and
// everything else under the acting role's name.
func Format(ev Event) string {
	switch {
	case ev.Kind == KindWinner:
		return fmt.Sprintf("[Winner] %s", ev.Detail)
	case ev.Kind.result():
		return fmt.Sprintf("[Result] %s", ev.Detail)
	case ev.Kind.crossing():
		return fmt.Sprintf("[%s->%s] %s", ev.Role, ev.Role.Peer(), ev.Detail)
	default:
		return fmt.Sprintf("[%s] %s", ev.Role, ev.Detail)
	}
}
