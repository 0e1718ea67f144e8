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

// AdminHandler serves the administrator operations: voter enrollment,
// workflow transitions, and the tally. Role checks happen inside the
// election; the handler only extracts the caller principal and maps
// the outcome.
type AdminHandler struct {
	elect *election.Election
	cfg   cliparse.Config
}

func NewAdminHandler(elect *election.Election, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{elect: elect, cfg: cfg}
}

// RegisterVoter handles POST /election/voters
func (h *AdminHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.PrincipalFromRequest(r)
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	// Parse request
	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id is required")
		return
	}
	if err := auth.ValidatePrincipal(req.VoterID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id is not a valid principal")
		return
	}

	if err := h.elect.RegisterVoter(election.Principal(caller), election.Principal(req.VoterID)); err != nil {
		middleware.ElectionError(w, err)
		return
	}

	slog.Info("voter registered", "voter", req.VoterID, "caller", caller)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		VoterID: req.VoterID,
		Message: "Voter registered",
	})
}

// StartProposalRegistration handles POST /election/proposal-registration/start
func (h *AdminHandler) StartProposalRegistration(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "proposal registration started", h.elect.StartProposalRegistration)
}

// EndProposalRegistration handles POST /election/proposal-registration/end
func (h *AdminHandler) EndProposalRegistration(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "proposal registration ended", h.elect.EndProposalRegistration)
}

// StartVotingSession handles POST /election/voting-session/start
func (h *AdminHandler) StartVotingSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "voting session started", h.elect.StartVotingSession)
}

// EndVotingSession handles POST /election/voting-session/end
func (h *AdminHandler) EndVotingSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "voting session ended", h.elect.EndVotingSession)
}

// transition runs one workflow transition on behalf of the caller and
// returns the new phase
func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, logMsg string, op func(election.Principal) error) {
	caller, err := auth.PrincipalFromRequest(r)
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	if err := op(election.Principal(caller)); err != nil {
		middleware.ElectionError(w, err)
		return
	}

	phase := h.elect.CurrentPhase()
	slog.Info(logMsg, "caller", caller, "phase", phase.String())

	middleware.JSONResponse(w, http.StatusOK, models.PhaseChangeResponse{
		Phase: phase.String(),
	})
}

// TallyVotes handles POST /election/tally
func (h *AdminHandler) TallyVotes(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.PrincipalFromRequest(r)
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	winner, err := h.elect.TallyVotes(election.Principal(caller))
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	// The winner reads cannot fail here: the tally just moved the
	// election into VotesTallied.
	desc, _ := h.elect.WinningDescription()
	count, _ := h.elect.WinningVoteCount()

	slog.Info("votes tallied", "caller", caller, "winner_index", winner, "winner", desc, "vote_count", count)

	middleware.JSONResponse(w, http.StatusOK, models.TallyResponse{
		Phase: h.elect.CurrentPhase().String(),
		Winner: models.Winner{
			ProposalIndex: winner,
			Description:   desc,
			VoteCount:     count,
		},
	})
}
