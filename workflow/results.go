// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/election-desk/registry"
)

// IndividualResult asks for a candidate ID and reports its vote count
func IndividualResult(p Prompter, reg *registry.Registry) (bool, error) {
	id, ok, err := resolve(p, "Candidate ID", "Entered Candidate ID %s does not exist", reg.HasCandidate)
	if err != nil || !ok {
		return false, err
	}
	votes, err := reg.Result(id)
	if err != nil {
		return false, err
	}
	p.Say("Candidate ID: %s, Vote Count: %s", id, humanize.Comma(int64(votes)))
	return true, nil
}

// ShowResults prints the full tally, highest count first
func ShowResults(p Prompter, reg *registry.Registry) {
	for i, entry := range reg.Tally() {
		p.Say("%s  %s has %s votes", humanize.Ordinal(i+1), entry.CandidateID, humanize.Comma(int64(entry.Votes)))
	}
}
