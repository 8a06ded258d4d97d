// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"log/slog"

	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/registry"
)

var (
	candidateAmendable = []models.Field{models.FieldCandidateName, models.FieldPartySymbol, models.FieldRegionCode}
	voterAmendable     = []models.Field{models.FieldVoterID, models.FieldVoteStatus}
)

// chooseField shows a numbered list of fields and returns the selection
func chooseField(p Prompter, fields []models.Field) (models.Field, bool, error) {
	for i, f := range fields {
		p.Say("%d. %s", i+1, f)
	}
	i, ok, err := selectRecord(p, len(fields))
	if err != nil || !ok {
		return 0, false, err
	}
	return fields[i], true, nil
}

// amendOne runs a single-slot machine and commits through amend
func amendOne(p Prompter, s slot, value *string, amend func() error) (bool, error) {
	apply := s.apply
	s.apply = func(v string) {
		apply(v)
		*value = v
	}
	m := &fieldMachine{p: p, slots: []slot{s}, commit: amend}
	return m.run()
}

// AmendCandidate changes the name, party symbol, or region code of an
// admitted candidate
func AmendCandidate(p Prompter, reg *registry.Registry) (bool, error) {
	candidates := reg.Candidates()
	if len(candidates) == 0 {
		p.Say("No candidates available to modify.")
		return false, nil
	}
	p.Say("Candidate List")
	for _, c := range candidates {
		p.Say(" Candidate ID: %s Name: %s Party Symbol: %s Region Code: %s", c.ID, c.Name, c.Symbol, c.Region)
	}

	id, ok, err := resolve(p, label("", models.FieldCandidateID),
		"Candidate with ID: %s not found. Please enter a valid Candidate ID.", reg.HasCandidate)
	if err != nil || !ok {
		return false, err
	}
	current, err := reg.Candidate(id)
	if err != nil {
		return false, err
	}

	p.Say("Candidate found. Select the information to modify:")
	field, ok, err := chooseField(p, candidateAmendable)
	if err != nil || !ok {
		return false, err
	}

	draft := current
	var value string
	s := candidateSlot(reg, field, "New ", &draft, current.Symbol)
	ok, err = amendOne(p, s, &value, func() error { return reg.AmendCandidate(id, field, value) })
	if err != nil || !ok {
		return false, err
	}
	p.Say("%s updated successfully!", field)
	slog.Info("candidate amended", "candidate_id", id, "field", field.String())
	return true, nil
}

// AmendVoter changes the ID or the voting status of an admitted voter
func AmendVoter(p Prompter, reg *registry.Registry) (bool, error) {
	voters := reg.Voters()
	if len(voters) == 0 {
		p.Say("No voters available to modify.")
		return false, nil
	}
	for i, v := range voters {
		p.Say("%d Voter ID %s Status %s", i+1, v.ID, v.Status())
	}

	i, ok, err := selectRecord(p, len(voters))
	if err != nil || !ok {
		return false, err
	}
	current := voters[i]

	field, ok, err := chooseField(p, voterAmendable)
	if err != nil || !ok {
		return false, err
	}

	id, status := current.ID, current.Status()
	var value string
	s := voterSlot(reg, field, "New ", &id, &status, current.ID)
	ok, err = amendOne(p, s, &value, func() error { return reg.AmendVoter(current.ID, field, value) })
	if err != nil || !ok {
		return false, err
	}
	p.Say("%s updated successfully!", field)
	slog.Info("voter amended", "field", field.String())
	return true, nil
}
