// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/electorate/election"
	"github.com/danielhkuo/electorate/models"
	"github.com/danielhkuo/electorate/testutil"
)

func TestRegisterVoterHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	elect := testutil.NewTestElection(t, conn)
	handler := NewAdminHandler(elect, testutil.GetTestConfig())

	tests := []struct {
		name           string
		principal      string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "admin registers a voter",
			principal:      testutil.TestAdmin,
			requestBody:    models.RegisterVoterRequest{VoterID: "bob"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate registration rejected",
			principal:      testutil.TestAdmin,
			requestBody:    models.RegisterVoterRequest{VoterID: "bob"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing principal header",
			principal:      "",
			requestBody:    models.RegisterVoterRequest{VoterID: "carol"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-admin caller rejected",
			principal:      "bob",
			requestBody:    models.RegisterVoterRequest{VoterID: "carol"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing voter_id",
			principal:      testutil.TestAdmin,
			requestBody:    models.RegisterVoterRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "voter_id with control characters",
			principal:      testutil.TestAdmin,
			requestBody:    models.RegisterVoterRequest{VoterID: "bad\nvoter"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/election/voters", tt.requestBody, tt.principal)
			w := httptest.NewRecorder()

			handler.RegisterVoter(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	if !elect.IsRegisteredVoter("bob") {
		t.Error("Expected bob to be registered")
	}
	if elect.IsRegisteredVoter("carol") {
		t.Error("carol should not have been registered")
	}
}

func TestRegisterVoterHandlerAfterRegistrationCloses(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	elect := testutil.NewTestElection(t, conn)
	handler := NewAdminHandler(elect, testutil.GetTestConfig())

	if err := elect.StartProposalRegistration(testutil.TestAdmin); err != nil {
		t.Fatalf("Failed to start proposal registration: %v", err)
	}

	req := testutil.MakeRequest("POST", "/election/voters",
		models.RegisterVoterRequest{VoterID: "late"}, testutil.TestAdmin)
	w := httptest.NewRecorder()

	handler.RegisterVoter(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestPhaseTransitionHandlers(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	elect := testutil.NewTestElection(t, conn)
	handler := NewAdminHandler(elect, testutil.GetTestConfig())

	steps := []struct {
		name          string
		path          string
		call          http.HandlerFunc
		expectedPhase string
	}{
		{"start proposal registration", "/election/proposal-registration/start", handler.StartProposalRegistration, "proposals_registration_started"},
		{"end proposal registration", "/election/proposal-registration/end", handler.EndProposalRegistration, "proposals_registration_ended"},
		{"start voting session", "/election/voting-session/start", handler.StartVotingSession, "voting_session_started"},
		{"end voting session", "/election/voting-session/end", handler.EndVotingSession, "voting_session_ended"},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", step.path, nil, testutil.TestAdmin)
			w := httptest.NewRecorder()

			step.call(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.PhaseChangeResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Phase != step.expectedPhase {
				t.Errorf("Expected phase %q, got %q", step.expectedPhase, resp.Phase)
			}
		})
	}
}

func TestPhaseTransitionHandlersRejectNonAdmin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	elect := testutil.NewTestElection(t, conn)
	testutil.RegisterTestVoters(t, elect, "bob")
	handler := NewAdminHandler(elect, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/election/proposal-registration/start", nil, "bob")
	w := httptest.NewRecorder()

	handler.StartProposalRegistration(w, req)

	testutil.AssertStatus(t, w, http.StatusForbidden)
	if elect.CurrentPhase() != election.RegisteringVoters {
		t.Errorf("Phase moved despite rejection: %s", elect.CurrentPhase())
	}
}

func TestPhaseTransitionHandlersRejectOutOfOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	elect := testutil.NewTestElection(t, conn)
	handler := NewAdminHandler(elect, testutil.GetTestConfig())

	// Voting cannot start while voter registration is still open.
	req := testutil.MakeRequest("POST", "/election/voting-session/start", nil, testutil.TestAdmin)
	w := httptest.NewRecorder()

	handler.StartVotingSession(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestTallyVotesHandler(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	elect := testutil.NewTestElection(t, conn)
	testutil.RegisterTestVoters(t, elect, "bob", "carol")
	testutil.OpenVoting(t, elect, "bob", "Tacos", "Sushi")
	handler := NewAdminHandler(elect, testutil.GetTestConfig())

	if err := elect.Vote("bob", 1); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}
	if err := elect.Vote("carol", 1); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}

	// Tally before the session ends is rejected.
	req := testutil.MakeRequest("POST", "/election/tally", nil, testutil.TestAdmin)
	w := httptest.NewRecorder()
	handler.TallyVotes(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	if err := elect.EndVotingSession(testutil.TestAdmin); err != nil {
		t.Fatalf("Failed to end voting session: %v", err)
	}

	// Non-admin cannot tally.
	req = testutil.MakeRequest("POST", "/election/tally", nil, "bob")
	w = httptest.NewRecorder()
	handler.TallyVotes(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	req = testutil.MakeRequest("POST", "/election/tally", nil, testutil.TestAdmin)
	w = httptest.NewRecorder()
	handler.TallyVotes(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TallyResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Phase != "votes_tallied" {
		t.Errorf("Expected phase votes_tallied, got %q", resp.Phase)
	}
	if resp.Winner.ProposalIndex != 1 {
		t.Errorf("Expected winner index 1, got %d", resp.Winner.ProposalIndex)
	}
	if resp.Winner.Description != "Sushi" {
		t.Errorf("Expected winner Sushi, got %q", resp.Winner.Description)
	}
	if resp.Winner.VoteCount != 2 {
		t.Errorf("Expected 2 votes, got %d", resp.Winner.VoteCount)
	}
}
