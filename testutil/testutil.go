// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/electorate/auth"
	"github.com/danielhkuo/electorate/cliparse"
	"github.com/danielhkuo/electorate/db"
	"github.com/danielhkuo/electorate/election"
	"github.com/danielhkuo/electorate/ledger"
)

// TestAdmin is the administrator principal used across the test suite
const TestAdmin = "alice"

// SetupTestDB creates a fresh in-memory sqlite journal database
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Keep a single connection so the in-memory database persists for
	// the whole test.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3324,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		AdminPrincipal: TestAdmin,
		IPHashSalt:     "test-ip-salt",
	}
}

// NewTestElection creates an election journaled into conn, administered
// by TestAdmin
func NewTestElection(t *testing.T, conn *sql.DB) *election.Election {
	t.Helper()

	rec, err := ledger.NewSQLRecorder(conn)
	if err != nil {
		t.Fatalf("Failed to create recorder: %v", err)
	}
	e, err := election.New(TestAdmin, rec)
	if err != nil {
		t.Fatalf("Failed to create election: %v", err)
	}
	return e
}

// RegisterTestVoters enrolls the given principals while registration is open
func RegisterTestVoters(t *testing.T, e *election.Election, voters ...election.Principal) {
	t.Helper()

	for _, v := range voters {
		if err := e.RegisterVoter(TestAdmin, v); err != nil {
			t.Fatalf("Failed to register voter %s: %v", v, err)
		}
	}
}

// OpenVoting drives an election from RegisteringVoters to
// VotingSessionStarted, registering the given proposals on behalf of
// the first enrolled voter in the proposer argument
func OpenVoting(t *testing.T, e *election.Election, proposer election.Principal, proposals ...string) {
	t.Helper()

	if err := e.StartProposalRegistration(TestAdmin); err != nil {
		t.Fatalf("Failed to start proposal registration: %v", err)
	}
	for _, p := range proposals {
		if _, err := e.RegisterProposal(proposer, p); err != nil {
			t.Fatalf("Failed to register proposal %q: %v", p, err)
		}
	}
	if err := e.EndProposalRegistration(TestAdmin); err != nil {
		t.Fatalf("Failed to end proposal registration: %v", err)
	}
	if err := e.StartVotingSession(TestAdmin); err != nil {
		t.Fatalf("Failed to start voting session: %v", err)
	}
}

// MakeRequest creates an HTTP test request. A non-empty principal is
// set as the X-Principal header.
func MakeRequest(method, path string, body interface{}, principal string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if principal != "" {
		req.Header.Set(auth.PrincipalHeader, principal)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
