package blumflip

import "fmt"

// Role enumerates the fixed two-party positions in a coin-flipping run.
type Role uint8

const (
	// RoleKeyHolder publishes the commitment key, picks the counter bit, and
	// verifies the reveal. Coin 0 means the key-holder wins.
	RoleKeyHolder Role = iota
	// RoleCommitter commits to a secret bit and later opens the commitment.
	// Coin 1 means the committer wins.
	RoleCommitter
)

// String returns the display name used in transcripts.
func (r Role) String() string {
	switch r {
	case RoleKeyHolder:
		return "KeyHolder"
	case RoleCommitter:
		return "Committer"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the two defined positions.
func (r Role) Valid() bool { return r == RoleKeyHolder || r == RoleCommitter }

// Peer returns the opposite position.
func (r Role) Peer() Role {
	if r == RoleKeyHolder {
		return RoleCommitter
	}
	return RoleKeyHolder
}
