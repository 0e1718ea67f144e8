// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Vote records caller's single ballot for the proposal at index.
//
// The caller must be an enrolled voter, the voting session must be
// open, the index must name a registered proposal, and the caller must
// not have voted yet. The voter record and the proposal count are
// updated together under the election lock, so no observer can see one
// without the other.
func (e *Election) Vote(caller Principal, index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.voters[caller]
	if !ok || !v.Registered {
		return ErrUnauthorized
	}
	if e.phase != VotingSessionStarted {
		return ErrInvalidPhase
	}
	if v.HasVoted {
		return ErrAlreadyVoted
	}
	if index < 0 || index >= len(e.proposals) {
		return ErrInvalidProposalIndex
	}

	v.HasVoted = true
	v.VotedProposal = index
	e.proposals[index].VoteCount++

	e.record("vote.cast", caller, e.proposals[index].Description)
	e.notifier.Trigger(EventVoteCast, caller, index)
	return nil
}

// BallotsCast returns the number of votes recorded so far. It equals
// the sum of all proposal vote counts.
func (e *Election) BallotsCast() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	total := 0
	for _, p := range e.proposals {
		total += p.VoteCount
	}
	return total
}
