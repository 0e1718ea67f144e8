// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"testing"
)

func TestComputeWinner(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		want    int
		wantErr error
	}{
		{"single proposal", []int{0}, 0, nil},
		{"clear winner", []int{1, 4, 2}, 1, nil},
		{"tie breaks to first index", []int{3, 5, 5, 2}, 1, nil},
		{"all zero counts", []int{0, 0, 0}, 0, nil},
		{"winner at last index", []int{0, 1, 7}, 2, nil},
		{"empty proposal list", nil, 0, ErrNoProposals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proposals := make([]Proposal, len(tt.counts))
			for i, c := range tt.counts {
				proposals[i] = Proposal{Description: "p", VoteCount: c}
			}

			got, err := computeWinner(proposals)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("computeWinner() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("computeWinner() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTallyVotesEmptyProposalList(t *testing.T) {
	admin := Principal("alice")
	e, err := New(admin, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Drive the workflow to VotingSessionEnded without any proposals.
	for _, step := range []func(Principal) error{
		e.StartProposalRegistration,
		e.EndProposalRegistration,
		e.StartVotingSession,
		e.EndVotingSession,
	} {
		if err := step(admin); err != nil {
			t.Fatalf("workflow step failed: %v", err)
		}
	}

	if _, err := e.TallyVotes(admin); !errors.Is(err, ErrNoProposals) {
		t.Fatalf("TallyVotes() error = %v, want ErrNoProposals", err)
	}

	// The failed tally must not advance the phase.
	if got := e.CurrentPhase(); got != VotingSessionEnded {
		t.Errorf("phase after failed tally = %v, want VotingSessionEnded", got)
	}

	// The election stays usable: a retry fails the same way, not worse.
	if _, err := e.TallyVotes(admin); !errors.Is(err, ErrNoProposals) {
		t.Errorf("second TallyVotes() error = %v, want ErrNoProposals", err)
	}
}

func TestWinnerReadsGatedUntilTallied(t *testing.T) {
	admin := Principal("alice")
	e, _ := New(admin, nil)
	if err := e.RegisterVoter(admin, "v1"); err != nil {
		t.Fatalf("RegisterVoter() error = %v", err)
	}

	// Every phase before VotesTallied must reject winner reads.
	steps := []func(Principal) error{
		e.StartProposalRegistration,
		e.EndProposalRegistration,
		e.StartVotingSession,
		e.EndVotingSession,
	}
	for i := -1; i < len(steps); i++ {
		if i >= 0 {
			if err := steps[i](admin); err != nil {
				t.Fatalf("workflow step %d failed: %v", i, err)
			}
		}
		if i == 0 {
			if _, err := e.RegisterProposal("v1", "Cats"); err != nil {
				t.Fatalf("RegisterProposal() error = %v", err)
			}
		}

		if _, err := e.WinningProposalIndex(); !errors.Is(err, ErrNotYetTallied) {
			t.Errorf("phase %v: WinningProposalIndex() error = %v, want ErrNotYetTallied", e.CurrentPhase(), err)
		}
		if _, err := e.WinningDescription(); !errors.Is(err, ErrNotYetTallied) {
			t.Errorf("phase %v: WinningDescription() error = %v, want ErrNotYetTallied", e.CurrentPhase(), err)
		}
		if _, err := e.WinningVoteCount(); !errors.Is(err, ErrNotYetTallied) {
			t.Errorf("phase %v: WinningVoteCount() error = %v, want ErrNotYetTallied", e.CurrentPhase(), err)
		}
	}

	if _, err := e.TallyVotes(admin); err != nil {
		t.Fatalf("TallyVotes() error = %v", err)
	}
	if idx, err := e.WinningProposalIndex(); err != nil || idx != 0 {
		t.Errorf("WinningProposalIndex() = %d, %v, want 0, nil", idx, err)
	}
}
