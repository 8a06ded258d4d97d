// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"

	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/validate"
)

// CheckCandidateID runs the uniqueness and format rules for a candidate ID.
// self is the ID of the record being amended, or "" for a new record.
func (r *Registry) CheckCandidateID(id, self string) error {
	if id != self && r.candidateIDs.has(id) {
		return validate.Duplicate(models.FieldCandidateID)
	}
	return validate.CandidateID(id)
}

// CheckSymbol runs the uniqueness and format rules for a party symbol.
// Symbols reserved by an earlier amendment are never available again.
func (r *Registry) CheckSymbol(symbol, self string) error {
	if r.reservedSymbols.has(symbol) || (symbol != self && r.symbols.has(symbol)) {
		return validate.Duplicate(models.FieldPartySymbol)
	}
	return validate.PartySymbol(symbol)
}

// checkCandidate applies every rule in admission order and returns the
// first failure
func (r *Registry) checkCandidate(c models.Candidate) error {
	if err := r.CheckCandidateID(c.ID, ""); err != nil {
		return err
	}
	if err := validate.CandidateName(c.Name); err != nil {
		return err
	}
	if err := r.CheckSymbol(c.Symbol, ""); err != nil {
		return err
	}
	return validate.RegionCode(c.Region)
}

// CandidateDefects scans a candidate against the live indices and returns
// every field that is missing or invalid, in prompt order
func (r *Registry) CandidateDefects(c models.Candidate) []models.Field {
	var defects []models.Field
	if r.CheckCandidateID(c.ID, "") != nil {
		defects = append(defects, models.FieldCandidateID)
	}
	if validate.CandidateName(c.Name) != nil {
		defects = append(defects, models.FieldCandidateName)
	}
	if r.CheckSymbol(c.Symbol, "") != nil {
		defects = append(defects, models.FieldPartySymbol)
	}
	if validate.RegionCode(c.Region) != nil {
		defects = append(defects, models.FieldRegionCode)
	}
	return defects
}

// CandidateFromRow converts a raw source row. A count that is not a
// non-negative integer becomes 0.
func CandidateFromRow(row models.CandidateRow) models.Candidate {
	return models.Candidate{
		ID:     row.ID,
		Name:   row.Name,
		Symbol: row.Symbol,
		Region: row.Region,
		Votes:  validate.VoteCount(row.Count),
	}
}

// AdmitCandidate validates c and inserts it with its index and ledger
// entries. A rejected candidate is parked in the rejected collection and
// the rejection is returned.
func (r *Registry) AdmitCandidate(c models.Candidate) error {
	if err := r.writable(); err != nil {
		return err
	}
	if c.Votes < 0 {
		c.Votes = 0
	}
	if err := r.checkCandidate(c); err != nil {
		r.rejectedCandidates = append(r.rejectedCandidates, models.RejectedCandidate{
			Candidate: c,
			Defects:   r.CandidateDefects(c),
			Reason:    err.Error(),
		})
		return err
	}
	r.insertCandidate(c)
	return nil
}

func (r *Registry) insertCandidate(c models.Candidate) {
	r.candidates = append(r.candidates, c)
	r.candidateIDs.add(c.ID)
	r.symbols.add(c.Symbol)
	r.ledger[c.ID] = c.Votes
}

// RejectCandidate parks a partial candidate so that it can be repaired
// later
func (r *Registry) RejectCandidate(c models.Candidate, reason string) error {
	if err := r.writable(); err != nil {
		return err
	}
	r.rejectedCandidates = append(r.rejectedCandidates, models.RejectedCandidate{
		Candidate: c,
		Defects:   r.CandidateDefects(c),
		Reason:    reason,
	})
	return nil
}

// PromoteCandidate replaces the rejected candidate at position i with its
// repaired version and admits it. If the repaired record still fails a
// rule nothing changes.
func (r *Registry) PromoteCandidate(i int, fixed models.Candidate) error {
	if err := r.writable(); err != nil {
		return err
	}
	if i < 0 || i >= len(r.rejectedCandidates) {
		return fmt.Errorf("rejected candidate %d: %w", i, ErrNoSuchRecord)
	}
	if fixed.Votes < 0 {
		fixed.Votes = 0
	}
	if err := r.checkCandidate(fixed); err != nil {
		return err
	}
	r.rejectedCandidates = append(r.rejectedCandidates[:i], r.rejectedCandidates[i+1:]...)
	r.insertCandidate(fixed)
	return nil
}

// AmendCandidate changes one field of an admitted candidate. The new value
// is validated as if the candidate's own current value were not taken.
func (r *Registry) AmendCandidate(id string, field models.Field, value string) error {
	if err := r.writable(); err != nil {
		return err
	}
	i := r.findCandidate(id)
	if i < 0 {
		return fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}
	c := &r.candidates[i]

	switch field {
	case models.FieldCandidateName:
		if err := validate.CandidateName(value); err != nil {
			return err
		}
		c.Name = value
	case models.FieldPartySymbol:
		if err := r.CheckSymbol(value, c.Symbol); err != nil {
			return err
		}
		if value != c.Symbol {
			r.symbols.remove(c.Symbol)
			if r.policy == SymbolRetain {
				r.reservedSymbols.add(c.Symbol)
			}
			r.symbols.add(value)
			c.Symbol = value
		}
	case models.FieldRegionCode:
		if err := validate.RegionCode(value); err != nil {
			return err
		}
		c.Region = value
	default:
		return fmt.Errorf("%s: %w", field, ErrFieldNotAmendable)
	}
	return nil
}

// RemoveCandidate deletes an admitted candidate together with its ID,
// symbol, and ledger entry
func (r *Registry) RemoveCandidate(id string) error {
	if err := r.writable(); err != nil {
		return err
	}
	i := r.findCandidate(id)
	if i < 0 {
		return fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}
	c := r.candidates[i]
	r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
	r.candidateIDs.remove(c.ID)
	r.symbols.remove(c.Symbol)
	delete(r.ledger, c.ID)
	return nil
}
