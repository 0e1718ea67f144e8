// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Principal is the opaque identifier of a participant. It arrives
// already authenticated by an external collaborator; the election never
// verifies identity, only roles.
type Principal string

// NoVote is the sentinel VotedProposal value of a voter who has not
// cast a ballot.
const NoVote = -1

// Voter is the per-principal ballot record. The zero value plus
// VotedProposal == NoVote is the state of a freshly enrolled voter.
type Voter struct {
	Registered    bool `json:"registered"`
	HasVoted      bool `json:"has_voted"`
	VotedProposal int  `json:"voted_proposal"`
}

// RegisterVoter enrolls a new voter. Only the admin may call it, only
// while voter registration is open, and only once per principal.
func (e *Election) RegisterVoter(caller, voter Principal) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return ErrUnauthorized
	}
	if e.phase != RegisteringVoters {
		return ErrInvalidPhase
	}
	if v, ok := e.voters[voter]; ok && v.Registered {
		return ErrAlreadyRegistered
	}

	e.voters[voter] = &Voter{Registered: true, VotedProposal: NoVote}

	e.record("voter.registered", caller, string(voter))
	e.notifier.Trigger(EventVoterRegistered, voter)
	return nil
}

// IsAdmin reports whether p is the election administrator.
func (e *Election) IsAdmin(p Principal) bool {
	return p == e.admin
}

// IsRegisteredVoter reports whether p is an enrolled voter.
func (e *Election) IsRegisteredVoter(p Principal) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.voters[p]
	return ok && v.Registered
}

// Voter returns p's ballot record. Principals that were never
// registered come back as the unregistered zero record.
func (e *Election) Voter(p Principal) (Voter, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if v, ok := e.voters[p]; ok {
		return *v, true
	}
	return Voter{VotedProposal: NoVote}, false
}

// VoterCount returns the number of enrolled voters.
func (e *Election) VoterCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.voters)
}
