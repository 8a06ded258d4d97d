// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/registry"
	"github.com/danielhkuo/election-desk/validate"
)

var fieldHints = map[models.Field]string{
	models.FieldCandidateID:   "Candidate ID (only alphanumeric)",
	models.FieldCandidateName: "Candidate Name (only alphabets)",
	models.FieldPartySymbol:   "Party Symbol (only alphabets)",
	models.FieldRegionCode:    "Region Code (only alphanumeric)",
	models.FieldVoterID:       "Voter ID (12 digits)",
	models.FieldVoteStatus:    "Voting Status (0 or 1)",
}

func label(prefix string, f models.Field) string {
	return prefix + fieldHints[f]
}

// candidateSlot builds the prompt for one candidate field, writing into
// draft. Uniqueness is checked against the live indices as if the record
// being edited held self (empty for records not yet admitted).
func candidateSlot(reg *registry.Registry, f models.Field, prefix string, draft *models.Candidate, self string) slot {
	s := slot{field: f, label: label(prefix, f)}
	switch f {
	case models.FieldCandidateID:
		s.check = func(v string) error { return reg.CheckCandidateID(v, self) }
		s.apply = func(v string) { draft.ID = v }
	case models.FieldCandidateName:
		s.check = validate.CandidateName
		s.apply = func(v string) { draft.Name = v }
	case models.FieldPartySymbol:
		s.check = func(v string) error { return reg.CheckSymbol(v, self) }
		s.apply = func(v string) { draft.Symbol = v }
	case models.FieldRegionCode:
		s.check = validate.RegionCode
		s.apply = func(v string) { draft.Region = v }
	}
	return s
}

// voterSlot does the same for voter fields; status is kept as the raw
// token so that it can be validated and promoted as supplied
func voterSlot(reg *registry.Registry, f models.Field, prefix string, id, status *string, self string) slot {
	s := slot{field: f, label: label(prefix, f)}
	switch f {
	case models.FieldVoterID:
		s.check = func(v string) error { return reg.CheckVoterID(v, self) }
		s.apply = func(v string) { *id = v }
	case models.FieldVoteStatus:
		s.check = validate.VoteStatus
		s.apply = func(v string) { *status = v }
	}
	return s
}
