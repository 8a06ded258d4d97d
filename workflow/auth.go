// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package workflow

import "log/slog"

// Authenticate asks for admin credentials until the gate accepts them or
// the operator gives up
func Authenticate(p Prompter, gate CredentialGate) (bool, error) {
	for {
		username, err := p.String("Admin Username")
		if err != nil {
			return false, err
		}
		password, err := p.Secret("Admin Password")
		if err != nil {
			return false, err
		}
		if err := gate.Authenticate(username, password); err == nil {
			slog.Info("admin authenticated", "username", username)
			return true, nil
		}

		p.Say("Invalid Username or Password")
		slog.Warn("admin authentication failed", "username", username)
		again, err := confirmContinue(p)
		if err != nil || !again {
			return false, err
		}
	}
}
