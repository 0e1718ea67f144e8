// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Electorate API.

# Handler Types

Each handler is a struct holding the election and its dependencies:

  - AdminHandler: Voter registration, phase transitions, and tallying
  - VotingHandler: Proposal submission and ballot casting
  - ResultsHandler: Election state, proposals, winner, and journal retrieval
  - EventsHandler: Server-sent event stream of election notifications

Handlers are created via constructor functions:

	adminHandler := handlers.NewAdminHandler(elect, cfg)

# Caller Identity

Every mutating endpoint reads the caller's identity from the X-Principal
header. The header carries an externally authenticated principal; the
handlers validate its shape and pass it through, and the election
decides whether that principal may perform the operation.

# Administration Flow

The administrator drives the election through its phases:

	POST /election/voters                      → RegisterVoter
	POST /election/proposal-registration/start → StartProposalRegistration
	POST /election/proposal-registration/end   → EndProposalRegistration
	POST /election/voting-session/start        → StartVotingSession
	POST /election/voting-session/end          → EndVotingSession
	POST /election/tally                       → TallyVotes

# Voting Flow

Registered voters submit proposals and cast ballots:

	POST /election/proposals → RegisterProposal (proposal registration phase)
	POST /election/votes     → CastVote (voting session phase)

# Results

Read endpoints are open to any caller:

	GET /election                    → GetElection
	GET /election/proposals          → ListProposals
	GET /election/proposals/{index}  → GetProposal
	GET /election/voters/{id}        → GetVoter
	GET /election/winner             → GetWinner (after tally)
	GET /election/results            → GetResults (after tally)
	GET /election/journal            → GetJournal
	GET /election/events             → Stream (SSE)
*/
package handlers
