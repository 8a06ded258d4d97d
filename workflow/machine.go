// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"errors"

	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/validate"
)

// slot is one field to obtain from the operator. apply only ever writes
// to a draft owned by the caller, never to the registry.
type slot struct {
	field models.Field
	label string
	check func(value string) error
	apply func(value string)
}

type fieldState int

const (
	stateAsking fieldState = iota
	stateChecking
	stateConfirming
	stateCommitting
	stateCommitted
	stateCancelled
)

// fieldMachine drives the accept/retry/cancel loop over a list of slots.
// commit runs once every slot is accepted. onCancel, if set, receives the
// number of slots accepted before the operator gave up.
type fieldMachine struct {
	p        Prompter
	slots    []slot
	commit   func() error
	onCancel func(accepted int)

	state fieldState
	pos   int
	value string
}

func (m *fieldMachine) run() (bool, error) {
	for {
		var err error
		switch m.state {
		case stateAsking:
			err = m.ask()
		case stateChecking:
			m.check()
		case stateConfirming:
			err = m.confirm()
		case stateCommitting:
			err = m.finish()
		case stateCommitted:
			return true, nil
		case stateCancelled:
			if m.onCancel != nil {
				m.onCancel(m.pos)
			}
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}

func (m *fieldMachine) ask() error {
	if m.pos == len(m.slots) {
		m.state = stateCommitting
		return nil
	}
	value, err := m.p.String(m.slots[m.pos].label)
	if err != nil {
		return err
	}
	m.value = value
	m.state = stateChecking
	return nil
}

func (m *fieldMachine) check() {
	s := m.slots[m.pos]
	if err := s.check(m.value); err != nil {
		m.p.Say("%s", err.Error())
		m.state = stateConfirming
		return
	}
	s.apply(m.value)
	m.pos++
	m.state = stateAsking
}

func (m *fieldMachine) confirm() error {
	again, err := confirmContinue(m.p)
	if err != nil {
		return err
	}
	if again {
		m.state = stateAsking
	} else {
		m.state = stateCancelled
	}
	return nil
}

// finish applies the commit. A rule that fails only at commit time is
// reported like any other rejection and ends the workflow unchanged.
func (m *fieldMachine) finish() error {
	err := m.commit()
	var v *validate.Violation
	switch {
	case err == nil:
		m.state = stateCommitted
	case errors.As(err, &v):
		m.p.Say("%s", v.Reason)
		m.state = stateCancelled
	default:
		return err
	}
	return nil
}
