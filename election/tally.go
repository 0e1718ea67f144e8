// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// computeWinner scans the proposal list in index order and returns the
// index with the highest vote count. The comparison is strictly
// greater, so on a tie the first index holding the maximum wins. This
// tie-break is part of the tally contract and must not change.
func computeWinner(proposals []Proposal) (int, error) {
	if len(proposals) == 0 {
		return 0, ErrNoProposals
	}

	winner := 0
	best := proposals[0].VoteCount
	for i := 1; i < len(proposals); i++ {
		if proposals[i].VoteCount > best {
			best = proposals[i].VoteCount
			winner = i
		}
	}
	return winner, nil
}

// TallyVotes computes the winning proposal and moves the election into
// its terminal phase. Admin-only, and only once the voting session has
// ended. With no proposals registered the tally fails with
// ErrNoProposals and the phase stays at VotingSessionEnded.
func (e *Election) TallyVotes(caller Principal) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return 0, ErrUnauthorized
	}
	if e.phase != VotingSessionEnded {
		return 0, ErrInvalidPhase
	}

	winner, err := computeWinner(e.proposals)
	if err != nil {
		return 0, err
	}

	prev := e.phase
	e.winner = winner
	e.phase = prev.next()

	e.record("votes.tallied", caller, e.proposals[winner].Description)
	e.notifier.Trigger(EventVotesTallied, winner)
	e.notifier.Trigger(EventPhaseChanged, prev, e.phase)
	return winner, nil
}

// WinningProposalIndex returns the winner's index once tallied.
func (e *Election) WinningProposalIndex() (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.phase.Terminal() {
		return 0, ErrNotYetTallied
	}
	return e.winner, nil
}

// WinningDescription returns the winner's description once tallied.
func (e *Election) WinningDescription() (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.phase.Terminal() {
		return "", ErrNotYetTallied
	}
	return e.proposals[e.winner].Description, nil
}

// WinningVoteCount returns the winner's vote count once tallied.
func (e *Election) WinningVoteCount() (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.phase.Terminal() {
		return 0, ErrNotYetTallied
	}
	return e.proposals[e.winner].VoteCount, nil
}
