// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/danielhkuo/election-desk/auth"
	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/registry"
	"github.com/danielhkuo/election-desk/testutil"
	"github.com/danielhkuo/election-desk/workflow"
)

func run(t *testing.T, reg *registry.Registry, answers ...string) (*testutil.Prompter, error) {
	t.Helper()
	p := testutil.NewPrompter(answers...)
	err := New(p, reg, auth.NewGate(nil)).Run()
	return p, err
}

func TestRun_Exit(t *testing.T) {
	p, err := run(t, registry.New(), "5")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	testutil.AssertSaid(t, p, "Welcome to the Election Management System!")
	testutil.AssertSaid(t, p, "4. View Individual Results")
}

func TestRun_EndOfInput(t *testing.T) {
	_, err := run(t, registry.New())
	if !errors.Is(err, workflow.ErrEndOfInput) {
		t.Errorf("expected ErrEndOfInput, got %v", err)
	}
}

// An interrupt while the menu waits for a choice ends Run with nothing
// changed in the registry
func TestRun_Interrupted(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompter(r, io.Discard)
	reg := registry.New()

	errc := make(chan error, 1)
	go func() { errc <- New(p, reg, auth.NewGate(nil)).Run() }()
	p.Interrupt()

	select {
	case err := <-errc:
		if !errors.Is(err, workflow.ErrInterrupted) {
			t.Errorf("expected ErrInterrupted, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() kept waiting after an interrupt")
	}
	if sum := reg.Summary(); sum.Candidates != 0 || sum.Voters != 0 {
		t.Errorf("unexpected registry state %+v", sum)
	}
}

func TestRun_Guards(t *testing.T) {
	tests := []struct {
		name   string
		choice string
		want   string
	}{
		{"cast", "2", "There is no Candidate or Voter to Cast Vote"},
		{"results", "3", "There is no Candidate to Show Result"},
		{"individual", "4", "There is no Candidate to Individual Result"},
		{"invalid", "8", "Invalid choice. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := run(t, registry.New(), tt.choice, "5")
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			testutil.AssertSaid(t, p, tt.want)
		})
	}
}

func TestRun_CastNeedsVoter(t *testing.T) {
	reg := registry.New()
	reg.AdmitCandidate(models.Candidate{ID: "C1a", Name: "Alice", Symbol: "Red", Region: "R1a"})

	p, err := run(t, reg, "2", "3", "5")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	testutil.AssertSaid(t, p, "There is no Candidate or Voter to Cast Vote")
	testutil.AssertSaid(t, p, "C1a has 0 votes")
}

func TestRun_AdminSession(t *testing.T) {
	reg := registry.New()

	p, err := run(t, reg,
		"1", "admin", "admin", // log in
		"1", "C1a", "Alice", "Red", "R1a", // register candidate
		"5", "123456789012", // add voter
		"9", // back
		"2", "C1a", "123456789012", // cast
		"3", // results
		"5",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	testutil.AssertSaid(t, p, "Admin Options:")
	testutil.AssertSaid(t, p, "Candidate Added Successfully")
	testutil.AssertSaid(t, p, "Voter added successfully!")
	testutil.AssertSaid(t, p, "Vote cast successfully for Candidate ID: C1a")
	testutil.AssertSaid(t, p, "1st  C1a has 1 votes")

	if n, _ := reg.Result("C1a"); n != 1 {
		t.Errorf("expected 1 vote, got %d", n)
	}
	if err := reg.CheckInvariants(); err != nil {
		t.Errorf("invariants broken: %v", err)
	}
}

func TestRun_AdminRejected(t *testing.T) {
	p, err := run(t, registry.New(), "1", "root", "guess", "n", "5")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	testutil.AssertSaid(t, p, "Invalid Username or Password")
	testutil.AssertNotSaid(t, p, "Admin Options:")
}

func TestRun_ActionErrorKeepsMenu(t *testing.T) {
	reg := registry.New()
	reg.AdmitCandidate(models.Candidate{ID: "C1a", Name: "Alice", Symbol: "Red", Region: "R1a"})
	reg.Seal()

	// removal fails on a sealed registry; the menu must come back
	p, err := run(t, reg, "1", "admin", "admin", "4", "C1a", "9", "5")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	testutil.AssertNotSaid(t, p, "removed successfully")
	if p.Remaining() != 0 {
		t.Errorf("%d answers left over", p.Remaining())
	}
}
