// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/danielhkuo/election-desk/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrSealed            = errors.New("registry is sealed")
	ErrNoSuchRecord      = errors.New("no such rejected record")
	ErrFieldNotAmendable = errors.New("field cannot be amended")
)

// SymbolPolicy controls what happens to a party symbol replaced by an
// amendment
type SymbolPolicy int

const (
	// SymbolRelease frees the old symbol for reuse
	SymbolRelease SymbolPolicy = iota
	// SymbolRetain keeps the old symbol reserved so no other candidate can
	// take it for the rest of the cycle
	SymbolRetain
)

type Option func(*Registry)

// WithSymbolPolicy sets how amended symbols are handled
func WithSymbolPolicy(p SymbolPolicy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

// Registry owns the admitted and rejected records of both kinds, their
// uniqueness indices, and the vote ledger. All mutation goes through its
// methods.
type Registry struct {
	candidates         []models.Candidate
	voters             []models.Voter
	rejectedCandidates []models.RejectedCandidate
	rejectedVoters     []models.RejectedVoter

	candidateIDs    index
	symbols         index
	reservedSymbols index
	voterIDs        index

	ledger map[string]int

	policy SymbolPolicy
	sealed bool
}

func New(opts ...Option) *Registry {
	r := &Registry{
		candidateIDs:    make(index),
		symbols:         make(index),
		reservedSymbols: make(index),
		voterIDs:        make(index),
		ledger:          make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Summary is a snapshot of registry sizes
type Summary struct {
	Candidates         int
	Voters             int
	VotersVoted        int
	RejectedCandidates int
	RejectedVoters     int
}

func (r *Registry) Summary() Summary {
	s := Summary{
		Candidates:         len(r.candidates),
		Voters:             len(r.voters),
		RejectedCandidates: len(r.rejectedCandidates),
		RejectedVoters:     len(r.rejectedVoters),
	}
	for _, v := range r.voters {
		if v.HasVoted {
			s.VotersVoted++
		}
	}
	return s
}

// Seal makes the registry read-only. It cannot be undone.
func (r *Registry) Seal() {
	r.sealed = true
}

func (r *Registry) Sealed() bool {
	return r.sealed
}

func (r *Registry) writable() error {
	if r.sealed {
		return ErrSealed
	}
	return nil
}

// Candidates returns the admitted candidates in admission order
func (r *Registry) Candidates() []models.Candidate {
	return slices.Clone(r.candidates)
}

func (r *Registry) Voters() []models.Voter {
	return slices.Clone(r.voters)
}

func (r *Registry) RejectedCandidates() []models.RejectedCandidate {
	out := make([]models.RejectedCandidate, len(r.rejectedCandidates))
	for i, rc := range r.rejectedCandidates {
		rc.Defects = slices.Clone(rc.Defects)
		out[i] = rc
	}
	return out
}

func (r *Registry) RejectedVoters() []models.RejectedVoter {
	out := make([]models.RejectedVoter, len(r.rejectedVoters))
	for i, rv := range r.rejectedVoters {
		rv.Defects = slices.Clone(rv.Defects)
		out[i] = rv
	}
	return out
}

func (r *Registry) Candidate(id string) (models.Candidate, error) {
	i := r.findCandidate(id)
	if i < 0 {
		return models.Candidate{}, fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}
	return r.candidates[i], nil
}

func (r *Registry) Voter(id string) (models.Voter, error) {
	i := r.findVoter(id)
	if i < 0 {
		return models.Voter{}, fmt.Errorf("voter %s: %w", id, ErrNotFound)
	}
	return r.voters[i], nil
}

// HasCandidate reports whether id is in the candidate index
func (r *Registry) HasCandidate(id string) bool {
	return r.candidateIDs.has(id)
}

func (r *Registry) HasVoter(id string) bool {
	return r.voterIDs.has(id)
}

func (r *Registry) findCandidate(id string) int {
	return slices.IndexFunc(r.candidates, func(c models.Candidate) bool { return c.ID == id })
}

func (r *Registry) findVoter(id string) int {
	return slices.IndexFunc(r.voters, func(v models.Voter) bool { return v.ID == id })
}

// CheckInvariants verifies that the ledger matches every candidate's vote
// count, that no identifier or symbol is shared, and that every index
// entry belongs to exactly one admitted record.
func (r *Registry) CheckInvariants() error {
	var errs []error

	if len(r.ledger) != len(r.candidates) {
		errs = append(errs, fmt.Errorf("ledger has %d entries for %d candidates", len(r.ledger), len(r.candidates)))
	}

	ids := make(index)
	symbols := make(index)
	for _, c := range r.candidates {
		if ids.has(c.ID) {
			errs = append(errs, fmt.Errorf("candidate ID %s admitted twice", c.ID))
		}
		if symbols.has(c.Symbol) {
			errs = append(errs, fmt.Errorf("party symbol %s admitted twice", c.Symbol))
		}
		ids.add(c.ID)
		symbols.add(c.Symbol)

		votes, ok := r.ledger[c.ID]
		if !ok {
			errs = append(errs, fmt.Errorf("candidate %s has no ledger entry", c.ID))
		} else if votes != c.Votes {
			errs = append(errs, fmt.Errorf("candidate %s has %d votes, ledger has %d", c.ID, c.Votes, votes))
		}
	}

	voterIDs := make(index)
	for _, v := range r.voters {
		if voterIDs.has(v.ID) {
			errs = append(errs, fmt.Errorf("voter ID %s admitted twice", v.ID))
		}
		voterIDs.add(v.ID)
	}

	errs = append(errs, compareIndex("candidate ID", r.candidateIDs, ids)...)
	errs = append(errs, compareIndex("party symbol", r.symbols, symbols)...)
	errs = append(errs, compareIndex("voter ID", r.voterIDs, voterIDs)...)

	return errors.Join(errs...)
}

func compareIndex(name string, live, want index) []error {
	var errs []error
	for _, k := range live.keys() {
		if !want.has(k) {
			errs = append(errs, fmt.Errorf("%s index holds %s with no admitted record", name, k))
		}
	}
	for _, k := range want.keys() {
		if !live.has(k) {
			errs = append(errs, fmt.Errorf("%s %s is admitted but not indexed", name, k))
		}
	}
	return errs
}
