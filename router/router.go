// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/electorate/cliparse"
	"github.com/danielhkuo/electorate/election"
	"github.com/danielhkuo/electorate/handlers"
	"github.com/danielhkuo/electorate/middleware"
)

func NewRouter(elect *election.Election, db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(elect, cfg)
	votingHandler := handlers.NewVotingHandler(elect, cfg)
	resultsHandler := handlers.NewResultsHandler(elect, db, cfg)
	eventsHandler := handlers.NewEventsHandler(elect, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Administration (requires the admin principal)
	mux.HandleFunc("POST /election/voters", middleware.WithLogging(adminHandler.RegisterVoter))
	mux.HandleFunc("POST /election/proposal-registration/start", middleware.WithLogging(adminHandler.StartProposalRegistration))
	mux.HandleFunc("POST /election/proposal-registration/end", middleware.WithLogging(adminHandler.EndProposalRegistration))
	mux.HandleFunc("POST /election/voting-session/start", middleware.WithLogging(adminHandler.StartVotingSession))
	mux.HandleFunc("POST /election/voting-session/end", middleware.WithLogging(adminHandler.EndVotingSession))
	mux.HandleFunc("POST /election/tally", middleware.WithLogging(adminHandler.TallyVotes))

	// Voter operations (requires a registered principal)
	mux.HandleFunc("POST /election/proposals", middleware.WithLogging(votingHandler.RegisterProposal))
	mux.HandleFunc("POST /election/votes", middleware.WithLogging(votingHandler.CastVote))

	// Reads (public, winner and results sealed until the tally)
	mux.HandleFunc("GET /election", middleware.WithLogging(resultsHandler.GetElection))
	mux.HandleFunc("GET /election/proposals", middleware.WithLogging(resultsHandler.ListProposals))
	mux.HandleFunc("GET /election/proposals/{index}", middleware.WithLogging(resultsHandler.GetProposal))
	mux.HandleFunc("GET /election/voters/{id}", middleware.WithLogging(resultsHandler.GetVoter))
	mux.HandleFunc("GET /election/winner", middleware.WithLogging(resultsHandler.GetWinner))
	mux.HandleFunc("GET /election/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /election/journal", middleware.WithLogging(resultsHandler.GetJournal))

	// Event stream; not wrapped in WithLogging, which would hold the
	// access log open for the connection lifetime.
	mux.HandleFunc("GET /election/events", eventsHandler.Stream)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("electorate API v1"))
	})

	return mux
}
