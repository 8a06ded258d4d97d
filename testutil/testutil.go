// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/election-desk/cliparse"
	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/workflow"
)

// Prompter replays a fixed script of operator answers and records every
// message shown. Once the script runs out every read returns
// workflow.ErrEndOfInput.
type Prompter struct {
	answers []string
	Asked   []string
	Said    []string
}

// NewPrompter returns a Prompter that answers with the given lines in order
func NewPrompter(answers ...string) *Prompter {
	return &Prompter{answers: answers}
}

func (p *Prompter) next(label string) (string, error) {
	p.Asked = append(p.Asked, label)
	if len(p.answers) == 0 {
		return "", workflow.ErrEndOfInput
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *Prompter) String(label string) (string, error) {
	a, err := p.next(label)
	return strings.TrimSpace(a), err
}

func (p *Prompter) Char(label string) (byte, error) {
	for {
		a, err := p.next(label)
		if err != nil {
			return 0, err
		}
		if a = strings.TrimSpace(a); a != "" {
			return a[0], nil
		}
	}
}

// Int skips answers that are not integers, like the console does
func (p *Prompter) Int(label string) (int, error) {
	for {
		a, err := p.next(label)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(a)); err == nil {
			return n, nil
		}
	}
}

func (p *Prompter) Secret(label string) (string, error) {
	return p.next(label)
}

func (p *Prompter) Say(format string, args ...any) {
	p.Said = append(p.Said, fmt.Sprintf(format, args...))
}

// Remaining reports how many scripted answers were not consumed
func (p *Prompter) Remaining() int {
	return len(p.answers)
}

// AssertSaid fails the test unless some message contains want
func AssertSaid(t *testing.T, p *Prompter, want string) {
	t.Helper()
	for _, s := range p.Said {
		if strings.Contains(s, want) {
			return
		}
	}
	t.Errorf("Expected a message containing %q, got %q", want, p.Said)
}

// AssertNotSaid fails the test if any message contains unwanted
func AssertNotSaid(t *testing.T, p *Prompter, unwanted string) {
	t.Helper()
	for _, s := range p.Said {
		if strings.Contains(s, unwanted) {
			t.Errorf("Unexpected message %q", s)
		}
	}
}

// MemoryStore keeps records in memory. Load* returns the seeded rows;
// Save* stores what it is given. Setting an Err field makes the matching
// call fail.
type MemoryStore struct {
	CandidateRows []models.CandidateRow
	VoterRows     []models.VoterRow

	SavedCandidates []models.Candidate
	SavedVoters     []models.Voter
	SavedTally      []models.TallyEntry

	LoadErr error
	SaveErr error

	Saves  int
	Closed bool
}

func (m *MemoryStore) LoadCandidates(ctx context.Context) ([]models.CandidateRow, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.CandidateRows, nil
}

func (m *MemoryStore) LoadVoters(ctx context.Context) ([]models.VoterRow, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.VoterRows, nil
}

func (m *MemoryStore) SaveCandidates(ctx context.Context, cs []models.Candidate) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedCandidates = cs
	return nil
}

func (m *MemoryStore) SaveVoters(ctx context.Context, vs []models.Voter) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedVoters = vs
	return nil
}

func (m *MemoryStore) SaveTally(ctx context.Context, entries []models.TallyEntry) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedTally = entries
	return nil
}

func (m *MemoryStore) Close() error {
	m.Closed = true
	return nil
}

// GetTestConfig returns a standard test configuration backed by CSV files
// in a temporary directory
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		DataDir:   t.TempDir(),
		StoreType: "csv",
		LogLevel:  "error",
	}
}
