// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/electorate/auth"
	"github.com/danielhkuo/electorate/cliparse"
	"github.com/danielhkuo/electorate/election"
	"github.com/danielhkuo/electorate/middleware"
	"github.com/danielhkuo/electorate/models"
)

// VotingHandler serves the voter operations: proposal registration and
// ballot casting.
type VotingHandler struct {
	elect *election.Election
	cfg   cliparse.Config
}

func NewVotingHandler(elect *election.Election, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{elect: elect, cfg: cfg}
}

// RegisterProposal handles POST /election/proposals
func (h *VotingHandler) RegisterProposal(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.PrincipalFromRequest(r)
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	// Parse request
	var req models.RegisterProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description is required")
		return
	}
	if len(req.Description) > 500 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description must be at most 500 characters")
		return
	}

	index, err := h.elect.RegisterProposal(election.Principal(caller), req.Description)
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	slog.Info("proposal registered",
		"index", index,
		"proposer", caller,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterProposalResponse{
		ProposalIndex: index,
	})
}

// CastVote handles POST /election/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.PrincipalFromRequest(r)
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	// Parse request
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ProposalIndex == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal_index is required")
		return
	}

	if err := h.elect.Vote(election.Principal(caller), *req.ProposalIndex); err != nil {
		middleware.ElectionError(w, err)
		return
	}

	// Votes are public in this system; the IP hash is for abuse audit,
	// not anonymity.
	slog.Info("vote cast",
		"voter", caller,
		"proposal_index", *req.ProposalIndex,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		ProposalIndex: *req.ProposalIndex,
		Message:       "Vote recorded",
	})
}
