// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Notification events fired after a successful state change. Exactly
// one operation-specific event fires per change; EventPhaseChanged
// additionally fires alongside every workflow transition, carrying the
// previous and the next phase.
//
// Listeners run synchronously inside the commit of the operation that
// triggered them, in registration order. A listener must not call back
// into a mutating Election operation.
const (
	EventVoterRegistered             = "voter.registered"              // args: voter Principal
	EventProposalRegistrationStarted = "proposal-registration.started" // no args
	EventProposalRegistered          = "proposal.registered"           // args: index int
	EventProposalRegistrationEnded   = "proposal-registration.ended"   // no args
	EventVotingSessionStarted        = "voting-session.started"        // no args
	EventVoteCast                    = "vote.cast"                     // args: voter Principal, index int
	EventVotingSessionEnded          = "voting-session.ended"          // no args
	EventVotesTallied                = "votes.tallied"                 // args: winner index int
	EventPhaseChanged                = "phase.changed"                 // args: previous, next Phase
)

// EventNames lists every notification event in a stable order.
func EventNames() []string {
	return []string{
		EventVoterRegistered,
		EventProposalRegistrationStarted,
		EventProposalRegistered,
		EventProposalRegistrationEnded,
		EventVotingSessionStarted,
		EventVoteCast,
		EventVotingSessionEnded,
		EventVotesTallied,
		EventPhaseChanged,
	}
}
