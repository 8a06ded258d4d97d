// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"
	"sort"

	"github.com/danielhkuo/election-desk/models"
)

// CommitVote records one ballot: the ledger entry and the candidate's vote
// count are incremented and the voter is marked as having voted. A voter
// that already voted yields OutcomeAlreadyVoted and nothing changes.
func (r *Registry) CommitVote(candidateID, voterID string) (models.CastOutcome, error) {
	if err := r.writable(); err != nil {
		return models.OutcomeCancelled, err
	}
	ci := r.findCandidate(candidateID)
	if ci < 0 {
		return models.OutcomeCancelled, fmt.Errorf("candidate %s: %w", candidateID, ErrNotFound)
	}
	vi := r.findVoter(voterID)
	if vi < 0 {
		return models.OutcomeCancelled, fmt.Errorf("voter %s: %w", voterID, ErrNotFound)
	}
	if r.voters[vi].HasVoted {
		return models.OutcomeAlreadyVoted, nil
	}

	votes := r.ledger[candidateID] + 1
	r.ledger[candidateID] = votes
	r.candidates[ci].Votes = votes
	r.voters[vi].HasVoted = true
	return models.OutcomeCommitted, nil
}

// Result returns the ledger count for one candidate
func (r *Registry) Result(candidateID string) (int, error) {
	votes, ok := r.ledger[candidateID]
	if !ok {
		return 0, fmt.Errorf("candidate %s: %w", candidateID, ErrNotFound)
	}
	return votes, nil
}

// Tally lists every candidate by vote count, highest first. Ties are
// broken by candidate ID.
func (r *Registry) Tally() []models.TallyEntry {
	tally := make([]models.TallyEntry, 0, len(r.ledger))
	for id, votes := range r.ledger {
		tally = append(tally, models.TallyEntry{CandidateID: id, Votes: votes})
	}
	sort.Slice(tally, func(i, j int) bool {
		if tally[i].Votes != tally[j].Votes {
			return tally[i].Votes > tally[j].Votes
		}
		return tally[i].CandidateID < tally[j].CandidateID
	})
	return tally
}

// Reconcile copies ledger counts into any candidate whose stored count
// drifted and returns how many were corrected
func (r *Registry) Reconcile() int {
	fixed := 0
	for i := range r.candidates {
		c := &r.candidates[i]
		if votes := r.ledger[c.ID]; c.Votes != votes {
			c.Votes = votes
			fixed++
		}
	}
	return fixed
}
