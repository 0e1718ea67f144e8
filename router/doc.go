// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Electorate API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(elect, db, cfg)

# Endpoints

Health:

	GET /health

Administration (requires the admin principal in X-Principal):

	POST /election/voters                      - Register a voter
	POST /election/proposal-registration/start - Open proposal registration
	POST /election/proposal-registration/end   - Close proposal registration
	POST /election/voting-session/start        - Open the voting session
	POST /election/voting-session/end          - Close the voting session
	POST /election/tally                       - Tally votes and declare the winner

Voter operations (requires a registered principal in X-Principal):

	POST /election/proposals - Register a proposal
	POST /election/votes     - Cast a ballot

Reads (public):

	GET /election                   - Election summary
	GET /election/proposals         - All proposals
	GET /election/proposals/{index} - One proposal
	GET /election/voters/{id}       - Voter status
	GET /election/winner            - Winning proposal (tallied only)
	GET /election/results           - Ranked results (tallied only)
	GET /election/journal           - Append-only change journal
	GET /election/events            - Server-sent event stream

# Handler Initialization

The router creates handler instances with dependency injection:

	adminHandler := handlers.NewAdminHandler(elect, cfg)
	votingHandler := handlers.NewVotingHandler(elect, cfg)
	resultsHandler := handlers.NewResultsHandler(elect, db, cfg)
	eventsHandler := handlers.NewEventsHandler(elect, cfg)

Mutating and read handlers share the single election instance; the
results handler additionally receives the database connection to read
the journal.
*/
package router
