// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"log/slog"

	"github.com/danielhkuo/election-desk/registry"
)

// RepairCandidate lets the operator pick a rejected candidate and supply
// a value for every field that is still missing or invalid. The record is
// promoted only after the last field is accepted; giving up at any field
// leaves it where it was.
func RepairCandidate(p Prompter, reg *registry.Registry) (bool, error) {
	rejected := reg.RejectedCandidates()
	if len(rejected) == 0 {
		p.Say("No need to fill or to update invalid data")
		return false, nil
	}

	p.Say("Fill missing data or update invalid data")
	for i, rc := range rejected {
		c := rc.Candidate
		p.Say("%d Candidate ID: %s Name: %s Party Symbol: %s Region Code: %s", i+1, c.ID, c.Name, c.Symbol, c.Region)
	}

	i, ok, err := selectRecord(p, len(rejected))
	if err != nil || !ok {
		return false, err
	}

	draft := rejected[i].Candidate
	defects := reg.CandidateDefects(draft)
	if rejected[i].Reason != "" {
		p.Say("%s", rejected[i].Reason)
	}

	slots := make([]slot, len(defects))
	for j, f := range defects {
		slots[j] = candidateSlot(reg, f, "New ", &draft, "")
	}

	m := &fieldMachine{
		p:      p,
		slots:  slots,
		commit: func() error { return reg.PromoteCandidate(i, draft) },
	}

	ok, err = m.run()
	if err != nil || !ok {
		return false, err
	}
	p.Say("Candidate Information Updated Successfully")
	slog.Info("candidate promoted", "candidate_id", draft.ID, "repaired_fields", len(defects))
	return true, nil
}

// RepairVoter is RepairCandidate for rejected voters
func RepairVoter(p Prompter, reg *registry.Registry) (bool, error) {
	rejected := reg.RejectedVoters()
	if len(rejected) == 0 {
		p.Say("There is no Invalid data")
		return false, nil
	}

	p.Say("Fill missing data or update invalid data")
	for i, rv := range rejected {
		p.Say("%d Voter ID %s Status %s", i+1, rv.ID, rv.Status)
	}

	i, ok, err := selectRecord(p, len(rejected))
	if err != nil || !ok {
		return false, err
	}

	id, status := rejected[i].ID, rejected[i].Status
	defects := reg.VoterDefects(id, status)
	if rejected[i].Reason != "" {
		p.Say("%s", rejected[i].Reason)
	}

	slots := make([]slot, len(defects))
	for j, f := range defects {
		slots[j] = voterSlot(reg, f, "New ", &id, &status, "")
	}

	m := &fieldMachine{
		p:      p,
		slots:  slots,
		commit: func() error { return reg.PromoteVoter(i, id, status) },
	}

	ok, err = m.run()
	if err != nil || !ok {
		return false, err
	}
	p.Say("Voter Information Updated Successfully")
	slog.Info("voter promoted", "repaired_fields", len(defects))
	return true, nil
}
