// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Proposal is a candidate option with its accumulated vote count.
// Proposals live in an append-only list; the index assigned at
// insertion never changes and is the proposal's identity.
type Proposal struct {
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

// RegisterProposal appends a proposal and returns its assigned index.
// Only enrolled voters may propose, and only while proposal
// registration is open. Duplicate descriptions are permitted.
func (e *Election) RegisterProposal(caller Principal, description string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if v, ok := e.voters[caller]; !ok || !v.Registered {
		return 0, ErrUnauthorized
	}
	if e.phase != ProposalsRegistrationStarted {
		return 0, ErrInvalidPhase
	}

	e.proposals = append(e.proposals, Proposal{Description: description})
	index := len(e.proposals) - 1

	e.record("proposal.registered", caller, description)
	e.notifier.Trigger(EventProposalRegistered, index)
	return index, nil
}

// ProposalCount returns the number of registered proposals.
func (e *Election) ProposalCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.proposals)
}

// ProposalDescription returns the description of the proposal at index.
func (e *Election) ProposalDescription(index int) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if index < 0 || index >= len(e.proposals) {
		return "", ErrInvalidProposalIndex
	}
	return e.proposals[index].Description, nil
}

// Proposals returns a copy of the proposal list in insertion order.
func (e *Election) Proposals() []Proposal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Proposal, len(e.proposals))
	copy(out, e.proposals)
	return out
}
