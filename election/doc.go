// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the single-election voting workflow that
Electorate serves: an administrator enrolls voters, voters propose
candidate options, the administrator opens and closes the voting
window, enrolled voters each cast one vote, and the administrator
triggers a deterministic tally.

# Workflow

An election moves through six phases, strictly forward, one step at a
time:

	RegisteringVoters
	ProposalsRegistrationStarted
	ProposalsRegistrationEnded
	VotingSessionStarted
	VotingSessionEnded
	VotesTallied

Each mutating operation is legal in exactly one phase and for exactly
one role. Guard checks all run before any mutation, so a rejected call
leaves the election untouched and the instance stays usable.

# Roles

The administrator is fixed at creation and never changes. Voters are
enrolled by the administrator while registration is open and are never
removed. Caller identity is an opaque Principal supplied by an external
collaborator on every call; this package checks roles, not identity.

# Tally

TallyVotes scans proposals in index order keeping the first index with
the strictly highest vote count, so ties break toward the earliest
registered proposal. An empty proposal list fails the tally with
ErrNoProposals rather than reporting an index with no proposal behind
it.

# Collaborators

Each committed change fires one notification event on the observer
returned by Events (plus EventPhaseChanged for workflow transitions)
and appends one entry to the optional Recorder ledger:

	e, _ := election.New("alice", recorder)
	e.Events().On(election.EventVoteCast, func(voter election.Principal, index int) {
		// react to a committed ballot
	})

Events fire synchronously after the change commits and never fire for
rejected calls.
*/
package election
