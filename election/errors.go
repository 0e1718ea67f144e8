// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Guard failures surfaced by Election operations. Every guard is checked
// before any state is touched, so a returned error always means the
// election is exactly as it was before the call.
var (
	// ErrUnauthorized means the caller lacks the role the operation
	// requires (admin for workflow control, enrolled voter for
	// proposals and ballots).
	ErrUnauthorized = errors.New("caller lacks the required role")

	// ErrInvalidPhase means the operation was invoked outside the one
	// phase in which it is legal.
	ErrInvalidPhase = errors.New("operation not allowed in the current phase")

	// ErrAlreadyRegistered means the principal is already an enrolled voter.
	ErrAlreadyRegistered = errors.New("voter is already registered")

	// ErrAlreadyVoted means the voter has already cast their single vote.
	ErrAlreadyVoted = errors.New("voter has already voted")

	// ErrInvalidProposalIndex means the index does not name a registered proposal.
	ErrInvalidProposalIndex = errors.New("proposal index out of range")

	// ErrNotYetTallied means a winner read arrived before the tally ran.
	ErrNotYetTallied = errors.New("votes have not been tallied yet")

	// ErrNoProposals means the tally was requested with an empty proposal
	// list, which would leave the winning index pointing at nothing.
	ErrNoProposals = errors.New("no proposals to tally")
)
