// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"log/slog"

	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/registry"
)

var candidateFields = []models.Field{
	models.FieldCandidateID,
	models.FieldCandidateName,
	models.FieldPartySymbol,
	models.FieldRegionCode,
}

// RegisterCandidate takes a new candidate from the operator field by
// field. If the operator gives up after the ID was accepted, the partial
// record is parked with the rejected candidates so it can be completed
// later.
func RegisterCandidate(p Prompter, reg *registry.Registry) (bool, error) {
	var draft models.Candidate

	slots := make([]slot, len(candidateFields))
	for i, f := range candidateFields {
		slots[i] = candidateSlot(reg, f, "", &draft, "")
	}

	m := &fieldMachine{
		p:      p,
		slots:  slots,
		commit: func() error { return reg.AdmitCandidate(draft) },
		onCancel: func(accepted int) {
			if accepted == 0 || accepted == len(slots) {
				return
			}
			if err := reg.RejectCandidate(draft, "registration cancelled"); err != nil {
				slog.Warn("failed to keep partial candidate", "error", err)
				return
			}
			slog.Info("partial candidate kept for repair", "candidate_id", draft.ID)
		},
	}

	ok, err := m.run()
	if err != nil || !ok {
		return false, err
	}
	p.Say("Candidate Added Successfully")
	slog.Info("candidate registered", "candidate_id", draft.ID)
	return true, nil
}

// RegisterVoter takes a new voter ID. New voters always start as not
// having voted.
func RegisterVoter(p Prompter, reg *registry.Registry) (bool, error) {
	var id, status string

	m := &fieldMachine{
		p:      p,
		slots:  []slot{voterSlot(reg, models.FieldVoterID, "", &id, &status, "")},
		commit: func() error { return reg.AdmitVoter(id, models.StatusNotVoted) },
	}

	ok, err := m.run()
	if err != nil || !ok {
		return false, err
	}
	p.Say("Voter added successfully!")
	slog.Info("voter registered")
	return true, nil
}
