// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"

	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/validate"
)

// CheckVoterID runs the uniqueness and format rules for a voter ID.
// self is the ID of the voter being amended, or "".
func (r *Registry) CheckVoterID(id, self string) error {
	if id != self && r.voterIDs.has(id) {
		return validate.Duplicate(models.FieldVoterID)
	}
	return validate.VoterID(id)
}

func (r *Registry) checkVoter(id, status string) error {
	if err := r.CheckVoterID(id, ""); err != nil {
		return err
	}
	return validate.VoteStatus(status)
}

// VoterDefects returns the defective fields of a raw voter tuple
func (r *Registry) VoterDefects(id, status string) []models.Field {
	var defects []models.Field
	if r.CheckVoterID(id, "") != nil {
		defects = append(defects, models.FieldVoterID)
	}
	if validate.VoteStatus(status) != nil {
		defects = append(defects, models.FieldVoteStatus)
	}
	return defects
}

// AdmitVoter validates a raw voter tuple and inserts it. Rejected tuples
// are parked with whatever was supplied.
func (r *Registry) AdmitVoter(id, status string) error {
	if err := r.writable(); err != nil {
		return err
	}
	if err := r.checkVoter(id, status); err != nil {
		r.rejectedVoters = append(r.rejectedVoters, models.RejectedVoter{
			ID:      id,
			Status:  status,
			Defects: r.VoterDefects(id, status),
			Reason:  err.Error(),
		})
		return err
	}
	r.insertVoter(models.Voter{ID: id, HasVoted: status == models.StatusVoted})
	return nil
}

func (r *Registry) insertVoter(v models.Voter) {
	r.voters = append(r.voters, v)
	r.voterIDs.add(v.ID)
}

// RejectVoter parks a voter tuple that could not be admitted as entered
func (r *Registry) RejectVoter(id, status, reason string) error {
	if err := r.writable(); err != nil {
		return err
	}
	r.rejectedVoters = append(r.rejectedVoters, models.RejectedVoter{
		ID:      id,
		Status:  status,
		Defects: r.VoterDefects(id, status),
		Reason:  reason,
	})
	return nil
}

// PromoteVoter admits the repaired version of the rejected voter at
// position i
func (r *Registry) PromoteVoter(i int, id, status string) error {
	if err := r.writable(); err != nil {
		return err
	}
	if i < 0 || i >= len(r.rejectedVoters) {
		return fmt.Errorf("rejected voter %d: %w", i, ErrNoSuchRecord)
	}
	if err := r.checkVoter(id, status); err != nil {
		return err
	}
	r.rejectedVoters = append(r.rejectedVoters[:i], r.rejectedVoters[i+1:]...)
	r.insertVoter(models.Voter{ID: id, HasVoted: status == models.StatusVoted})
	return nil
}

// AmendVoter changes the ID or the has-voted flag of an admitted voter.
// Setting the flag here is an operator correction and does not touch the
// ledger.
func (r *Registry) AmendVoter(id string, field models.Field, value string) error {
	if err := r.writable(); err != nil {
		return err
	}
	i := r.findVoter(id)
	if i < 0 {
		return fmt.Errorf("voter %s: %w", id, ErrNotFound)
	}
	v := &r.voters[i]

	switch field {
	case models.FieldVoterID:
		if err := r.CheckVoterID(value, v.ID); err != nil {
			return err
		}
		r.voterIDs.remove(v.ID)
		r.voterIDs.add(value)
		v.ID = value
	case models.FieldVoteStatus:
		if err := validate.VoteStatus(value); err != nil {
			return err
		}
		v.HasVoted = value == models.StatusVoted
	default:
		return fmt.Errorf("%s: %w", field, ErrFieldNotAmendable)
	}
	return nil
}

// RemoveVoter deletes an admitted voter and releases its ID
func (r *Registry) RemoveVoter(id string) error {
	if err := r.writable(); err != nil {
		return err
	}
	i := r.findVoter(id)
	if i < 0 {
		return fmt.Errorf("voter %s: %w", id, ErrNotFound)
	}
	r.voters = append(r.voters[:i], r.voters[i+1:]...)
	r.voterIDs.remove(id)
	return nil
}
