// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"errors"
	"log/slog"

	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/registry"
	"github.com/danielhkuo/election-desk/validate"
)

// RemoveCandidate deletes an admitted candidate chosen by ID
func RemoveCandidate(p Prompter, reg *registry.Registry) (bool, error) {
	candidates := reg.Candidates()
	if len(candidates) == 0 {
		p.Say("No candidates available to remove.")
		return false, nil
	}
	p.Say("Candidate List:")
	for _, c := range candidates {
		p.Say(" Candidate ID: %s Name: %s Party Symbol: %s Region Code: %s", c.ID, c.Name, c.Symbol, c.Region)
	}

	for {
		id, err := p.String("Candidate ID to remove")
		if err != nil {
			return false, err
		}
		err = reg.RemoveCandidate(id)
		if err == nil {
			p.Say("Candidate with ID: %s removed successfully!", id)
			slog.Info("candidate removed", "candidate_id", id)
			return true, nil
		}
		if !errors.Is(err, registry.ErrNotFound) {
			return false, err
		}
		p.Say("Candidate with ID: %s not found.", id)
		again, err := confirmContinue(p)
		if err != nil || !again {
			return false, err
		}
	}
}

// RemoveVoter deletes an admitted voter. The ID must be well formed
// before it is looked up.
func RemoveVoter(p Prompter, reg *registry.Registry) (bool, error) {
	if len(reg.Voters()) == 0 {
		p.Say("No voters available to remove.")
		return false, nil
	}

	for {
		id, err := p.String(label("", models.FieldVoterID))
		if err != nil {
			return false, err
		}
		if verr := validate.VoterID(id); verr != nil {
			p.Say("%s", verr.Error())
		} else if err := reg.RemoveVoter(id); err == nil {
			p.Say("Voter with ID %s removed successfully!", id)
			slog.Info("voter removed")
			return true, nil
		} else if errors.Is(err, registry.ErrNotFound) {
			p.Say("Voter with ID %s not found.", id)
		} else {
			return false, err
		}

		again, err := confirmContinue(p)
		if err != nil || !again {
			return false, err
		}
	}
}
