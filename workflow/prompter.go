// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import (
	"errors"
	"fmt"
)

// ErrEndOfInput means the operator's input stream is closed. It is never a
// per-operation cancellation; callers must stop the whole session.
var ErrEndOfInput = errors.New("end of input")

// ErrInterrupted ends the session the way closed input does, so it also
// matches ErrEndOfInput
var ErrInterrupted = fmt.Errorf("interrupted: %w", ErrEndOfInput)

// Prompter obtains raw values from the operator
type Prompter interface {
	// String returns one line of input with surrounding space removed
	String(label string) (string, error)
	// Char returns the first character of the next non-empty line
	Char(label string) (byte, error)
	// Int asks until the operator enters an integer
	Int(label string) (int, error)
	// Secret reads a value without echoing it where possible
	Secret(label string) (string, error)
	// Say shows a message to the operator
	Say(format string, args ...any)
}

// CredentialGate decides whether an admin login is accepted
type CredentialGate interface {
	Authenticate(username, password string) error
}

// confirmContinue asks the operator whether to retry. Only "n" or "N" cancels.
func confirmContinue(p Prompter) (bool, error) {
	p.Say("Do you want to continue? (n for back)")
	c, err := p.Char("a character")
	if err != nil {
		return false, err
	}
	return c != 'n' && c != 'N', nil
}

// selectRecord asks for a 1-based position in a list of n entries and
// returns it 0-based. ok is false when the operator gives up.
func selectRecord(p Prompter, n int) (int, bool, error) {
	for {
		choice, err := p.Int("your choice")
		if err != nil {
			return 0, false, err
		}
		if choice >= 1 && choice <= n {
			return choice - 1, true, nil
		}
		p.Say("Invalid Choice")
		again, err := confirmContinue(p)
		if err != nil || !again {
			return 0, false, err
		}
	}
}

// resolve asks for an identifier until exists accepts it
func resolve(p Prompter, label, missing string, exists func(string) bool) (string, bool, error) {
	for {
		id, err := p.String(label)
		if err != nil {
			return "", false, err
		}
		if exists(id) {
			return id, true, nil
		}
		p.Say(missing, id)
		again, err := confirmContinue(p)
		if err != nil || !again {
			return "", false, err
		}
	}
}
