package models

import "time"

// Request types

type RegisterVoterRequest struct {
	VoterID string `json:"voter_id"`
}

type RegisterProposalRequest struct {
	Description string `json:"description"`
}

// ProposalIndex is a pointer so a missing field is distinguishable from
// a legitimate vote for proposal 0.
type CastVoteRequest struct {
	ProposalIndex *int `json:"proposal_index"`
}

// Response types

type RegisterVoterResponse struct {
	VoterID string `json:"voter_id"`
	Message string `json:"message"`
}

type RegisterProposalResponse struct {
	ProposalIndex int `json:"proposal_index"`
}

type CastVoteResponse struct {
	ProposalIndex int    `json:"proposal_index"`
	Message       string `json:"message"`
}

type PhaseChangeResponse struct {
	Phase string `json:"phase"`
}

type TallyResponse struct {
	Phase  string `json:"phase"`
	Winner Winner `json:"winner"`
}

// Domain views

type Winner struct {
	ProposalIndex int    `json:"proposal_index"`
	Description   string `json:"description"`
	VoteCount     int    `json:"vote_count"`
}

type ProposalView struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

type VoterView struct {
	Principal     string `json:"principal"`
	Registered    bool   `json:"registered"`
	HasVoted      bool   `json:"has_voted"`
	VotedProposal int    `json:"voted_proposal"`
	Admin         bool   `json:"admin"`
}

type ElectionSummary struct {
	Admin         string `json:"admin"`
	Phase         string `json:"phase"`
	VoterCount    int    `json:"voter_count"`
	ProposalCount int    `json:"proposal_count"`
	BallotsCast   int    `json:"ballots_cast"`
}

// RankedProposal is one row of the final results table. Place is the
// human-readable rank ("1st", "2nd", ...); proposals tied on votes
// share a rank and are ordered by index.
type RankedProposal struct {
	Rank        int    `json:"rank"`
	Place       string `json:"place"`
	Index       int    `json:"index"`
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
	Winner      bool   `json:"winner"`
}

type ResultsResponse struct {
	Phase    string           `json:"phase"`
	Winner   Winner           `json:"winner"`
	Rankings []RankedProposal `json:"rankings"`
}

type JournalView struct {
	ID         string    `json:"id"`
	Seq        int64     `json:"seq"`
	Op         string    `json:"op"`
	Principal  string    `json:"principal"`
	Detail     string    `json:"detail,omitempty"`
	Phase      string    `json:"phase"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
