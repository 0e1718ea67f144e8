// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"log/slog"
	"sync"

	observable "github.com/GianlucaGuarini/go-observable"
)

// JournalEntry describes one committed state change, handed to the
// external ledger collaborator right after the change applies.
type JournalEntry struct {
	Op        string
	Principal Principal
	Detail    string
	Phase     Phase
}

// Recorder is the external ledger collaborator. Implementations append
// entries durably; the election itself never reads them back.
type Recorder interface {
	Record(entry JournalEntry) error
}

// Election holds the entire state of one single-winner election: the
// fixed administrator, the workflow phase, the enrolled voters, the
// append-only proposal list, and (once tallied) the winning index.
//
// Every mutating operation runs under one exclusive lock, so each call
// applies as an indivisible unit and no caller ever observes a partial
// change. The journal write for a commit happens inside the lock so
// ledger order matches commit order; a failed write is logged and never
// rolls the commit back.
type Election struct {
	mu        sync.RWMutex
	admin     Principal
	phase     Phase
	voters    map[Principal]*Voter
	proposals []Proposal
	winner    int

	notifier *observable.Observable
	recorder Recorder
}

// New creates an election administered by admin, starting in the
// RegisteringVoters phase. rec may be nil when no ledger is attached.
func New(admin Principal, rec Recorder) (*Election, error) {
	if admin == "" {
		return nil, errors.New("admin principal is required")
	}
	return &Election{
		admin:    admin,
		phase:    RegisteringVoters,
		voters:   make(map[Principal]*Voter),
		notifier: observable.New(),
		recorder: rec,
	}, nil
}

// Admin returns the fixed administrator principal.
func (e *Election) Admin() Principal {
	return e.admin
}

// CurrentPhase returns the current workflow phase.
func (e *Election) CurrentPhase() Phase {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.phase
}

// Events exposes the notification observer for subscribers.
func (e *Election) Events() *observable.Observable {
	return e.notifier
}

// StartProposalRegistration opens the proposal window.
// RegisteringVoters -> ProposalsRegistrationStarted.
func (e *Election) StartProposalRegistration(caller Principal) error {
	return e.advance(caller, RegisteringVoters, EventProposalRegistrationStarted, "proposal-registration.started")
}

// EndProposalRegistration closes the proposal window.
// ProposalsRegistrationStarted -> ProposalsRegistrationEnded.
func (e *Election) EndProposalRegistration(caller Principal) error {
	return e.advance(caller, ProposalsRegistrationStarted, EventProposalRegistrationEnded, "proposal-registration.ended")
}

// StartVotingSession opens the voting window.
// ProposalsRegistrationEnded -> VotingSessionStarted.
func (e *Election) StartVotingSession(caller Principal) error {
	return e.advance(caller, ProposalsRegistrationEnded, EventVotingSessionStarted, "voting-session.started")
}

// EndVotingSession closes the voting window.
// VotingSessionStarted -> VotingSessionEnded.
func (e *Election) EndVotingSession(caller Principal) error {
	return e.advance(caller, VotingSessionStarted, EventVotingSessionEnded, "voting-session.ended")
}

// advance performs one admin-only workflow transition out of the from
// phase. Either the phase moves a single step forward and both the
// transition event and EventPhaseChanged fire, or nothing happens.
func (e *Election) advance(caller Principal, from Phase, event, op string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.admin {
		return ErrUnauthorized
	}
	if e.phase != from {
		return ErrInvalidPhase
	}

	prev := e.phase
	e.phase = prev.next()

	e.record(op, caller, "")
	e.notifier.Trigger(event)
	e.notifier.Trigger(EventPhaseChanged, prev, e.phase)
	return nil
}

// record appends the committed change to the ledger collaborator. The
// ledger is an observer of state, not a participant in it, so a write
// failure is logged and does not undo the change.
func (e *Election) record(op string, principal Principal, detail string) {
	if e.recorder == nil {
		return
	}
	err := e.recorder.Record(JournalEntry{
		Op:        op,
		Principal: principal,
		Detail:    detail,
		Phase:     e.phase,
	})
	if err != nil {
		slog.Warn("journal write failed", "op", op, "error", err)
	}
}
