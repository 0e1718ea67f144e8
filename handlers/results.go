// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/electorate/cliparse"
	"github.com/danielhkuo/electorate/election"
	"github.com/danielhkuo/electorate/ledger"
	"github.com/danielhkuo/electorate/middleware"
	"github.com/danielhkuo/electorate/models"
)

// ResultsHandler serves the read-only surface: election state,
// proposals, voters, the winner, the ranked results, and the journal.
type ResultsHandler struct {
	elect *election.Election
	db    *sql.DB
	cfg   cliparse.Config
}

func NewResultsHandler(elect *election.Election, db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{elect: elect, db: db, cfg: cfg}
}

// GetElection handles GET /election
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ElectionSummary{
		Admin:         string(h.elect.Admin()),
		Phase:         h.elect.CurrentPhase().String(),
		VoterCount:    h.elect.VoterCount(),
		ProposalCount: h.elect.ProposalCount(),
		BallotsCast:   h.elect.BallotsCast(),
	})
}

// ListProposals handles GET /election/proposals
func (h *ResultsHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	proposals := h.elect.Proposals()

	views := make([]models.ProposalView, len(proposals))
	for i, p := range proposals {
		views[i] = models.ProposalView{
			Index:       i,
			Description: p.Description,
			VoteCount:   p.VoteCount,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetProposal handles GET /election/proposals/{index}
func (h *ResultsHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be a number")
		return
	}

	desc, err := h.elect.ProposalDescription(index)
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	// The description read above pinned the index as valid.
	proposals := h.elect.Proposals()
	middleware.JSONResponse(w, http.StatusOK, models.ProposalView{
		Index:       index,
		Description: desc,
		VoteCount:   proposals[index].VoteCount,
	})
}

// GetVoter handles GET /election/voters/{id}
func (h *ResultsHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter id is required")
		return
	}

	p := election.Principal(id)
	voter, _ := h.elect.Voter(p)

	middleware.JSONResponse(w, http.StatusOK, models.VoterView{
		Principal:     id,
		Registered:    voter.Registered,
		HasVoted:      voter.HasVoted,
		VotedProposal: voter.VotedProposal,
		Admin:         h.elect.IsAdmin(p),
	})
}

// GetWinner handles GET /election/winner
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	index, err := h.elect.WinningProposalIndex()
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}
	desc, _ := h.elect.WinningDescription()
	count, _ := h.elect.WinningVoteCount()

	middleware.JSONResponse(w, http.StatusOK, models.Winner{
		ProposalIndex: index,
		Description:   desc,
		VoteCount:     count,
	})
}

// GetResults handles GET /election/results
// Returns the full ranked table; sealed until the tally has run.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	winner, err := h.elect.WinningProposalIndex()
	if err != nil {
		middleware.ElectionError(w, err)
		return
	}

	proposals := h.elect.Proposals()
	desc, _ := h.elect.WinningDescription()
	count, _ := h.elect.WinningVoteCount()

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Phase: h.elect.CurrentPhase().String(),
		Winner: models.Winner{
			ProposalIndex: winner,
			Description:   desc,
			VoteCount:     count,
		},
		Rankings: rankProposals(proposals, winner),
	})
}

// rankProposals orders proposals by vote count, ties in index order,
// using competition ranking (tied proposals share a rank).
func rankProposals(proposals []election.Proposal, winner int) []models.RankedProposal {
	order := make([]int, len(proposals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return proposals[order[a]].VoteCount > proposals[order[b]].VoteCount
	})

	ranked := make([]models.RankedProposal, len(order))
	rank := 0
	prevCount := -1
	for pos, idx := range order {
		if proposals[idx].VoteCount != prevCount {
			rank = pos + 1
			prevCount = proposals[idx].VoteCount
		}
		ranked[pos] = models.RankedProposal{
			Rank:        rank,
			Place:       humanize.Ordinal(rank),
			Index:       idx,
			Description: proposals[idx].Description,
			VoteCount:   proposals[idx].VoteCount,
			Winner:      idx == winner,
		}
	}
	return ranked
}

// GetJournal handles GET /election/journal
func (h *ResultsHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := ledger.Entries(h.db)
	if err != nil {
		slog.Error("failed to read journal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]models.JournalView, len(entries))
	for i, e := range entries {
		views[i] = models.JournalView{
			ID:         e.ID,
			Seq:        e.Seq,
			Op:         e.Op,
			Principal:  e.Principal,
			Detail:     e.Detail,
			Phase:      e.Phase,
			RecordedAt: e.RecordedAt,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}
