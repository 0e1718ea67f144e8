// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Phase is one stage of the fixed election workflow.
//
// Phases form a strict one-way sequence: an election starts in
// RegisteringVoters and ends in VotesTallied. Every transition moves
// forward exactly one step; there is no way to skip a phase or go back.
type Phase int

const (
	RegisteringVoters Phase = iota
	ProposalsRegistrationStarted
	ProposalsRegistrationEnded
	VotingSessionStarted
	VotingSessionEnded
	VotesTallied
)

var phaseNames = [...]string{
	RegisteringVoters:            "registering_voters",
	ProposalsRegistrationStarted: "proposals_registration_started",
	ProposalsRegistrationEnded:   "proposals_registration_ended",
	VotingSessionStarted:         "voting_session_started",
	VotingSessionEnded:           "voting_session_ended",
	VotesTallied:                 "votes_tallied",
}

func (p Phase) String() string {
	if p < RegisteringVoters || p > VotesTallied {
		return "unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether p is the final phase of the workflow.
func (p Phase) Terminal() bool {
	return p == VotesTallied
}

// next returns the phase that directly follows p. The transition
// operations only ever call this from a non-terminal phase.
func (p Phase) next() Phase {
	return p + 1
}
