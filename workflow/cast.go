// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"log/slog"

	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/registry"
)

// CastState is a step of the ballot protocol
type CastState int

const (
	CastSelectingCandidate CastState = iota
	CastSelectingVoter
	CastChecking
	CastCommitting
	CastCommitted
	CastCancelled
	CastAlreadyVoted
)

func (s CastState) terminal() bool {
	return s == CastCommitted || s == CastCancelled || s == CastAlreadyVoted
}

type castMachine struct {
	p   Prompter
	reg *registry.Registry

	state       CastState
	candidateID string
	voterID     string
}

// CastVote runs one ballot attempt. Both identifiers are asked for until
// they resolve or the operator gives up; once both are known the ballot is
// either committed or found to be a repeat.
func CastVote(p Prompter, reg *registry.Registry) (models.CastOutcome, error) {
	for _, c := range reg.Candidates() {
		p.Say("Candidate ID: %s  Candidate Name: %s  Candidate Symbol: %s  Candidate Region: %s", c.ID, c.Name, c.Symbol, c.Region)
	}

	m := &castMachine{p: p, reg: reg, state: CastSelectingCandidate}
	for !m.state.terminal() {
		var err error
		switch m.state {
		case CastSelectingCandidate:
			err = m.selectCandidate()
		case CastSelectingVoter:
			err = m.selectVoter()
		case CastChecking:
			err = m.checkVoter()
		case CastCommitting:
			err = m.commit()
		}
		if err != nil {
			return models.OutcomeCancelled, err
		}
	}

	switch m.state {
	case CastCommitted:
		return models.OutcomeCommitted, nil
	case CastAlreadyVoted:
		return models.OutcomeAlreadyVoted, nil
	}
	return models.OutcomeCancelled, nil
}

func (m *castMachine) selectCandidate() error {
	id, ok, err := resolve(m.p, "Candidate ID", "Entered Candidate ID %s does not exist", m.reg.HasCandidate)
	if err != nil {
		return err
	}
	if !ok {
		m.state = CastCancelled
		return nil
	}
	m.candidateID = id
	m.state = CastSelectingVoter
	return nil
}

func (m *castMachine) selectVoter() error {
	id, ok, err := resolve(m.p, "Voter ID", "Entered Voter ID %s does not exist", m.reg.HasVoter)
	if err != nil {
		return err
	}
	if !ok {
		m.state = CastCancelled
		return nil
	}
	m.voterID = id
	m.state = CastChecking
	return nil
}

func (m *castMachine) checkVoter() error {
	v, err := m.reg.Voter(m.voterID)
	if err != nil {
		return err
	}
	if v.HasVoted {
		m.p.Say("Voter Already Voted")
		m.state = CastAlreadyVoted
		return nil
	}
	m.state = CastCommitting
	return nil
}

func (m *castMachine) commit() error {
	outcome, err := m.reg.CommitVote(m.candidateID, m.voterID)
	if err != nil {
		return err
	}
	if outcome == models.OutcomeAlreadyVoted {
		m.p.Say("Voter Already Voted")
		m.state = CastAlreadyVoted
		return nil
	}
	m.p.Say("Vote cast successfully for Candidate ID: %s", m.candidateID)
	slog.Info("vote cast", "candidate_id", m.candidateID)
	m.state = CastCommitted
	return nil
}
