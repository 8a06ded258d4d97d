// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/election-desk/registry"
	"github.com/danielhkuo/election-desk/workflow"
)

// action is one menu entry. guard, if set, returns the message shown
// instead of running the action, or "" to let it run.
type action struct {
	label  string
	banner string
	guard  func() string
	run    func() error
}

// Console runs the main and admin menus against one registry
type Console struct {
	p    workflow.Prompter
	reg  *registry.Registry
	gate workflow.CredentialGate

	main  []action
	admin []action
}

func New(p workflow.Prompter, reg *registry.Registry, gate workflow.CredentialGate) *Console {
	c := &Console{p: p, reg: reg, gate: gate}
	c.main = c.mainActions()
	c.admin = c.adminActions()
	return c
}

// ignore drops the success flag that workflows return
func ignore(_ bool, err error) error {
	return err
}

func (c *Console) canCast() string {
	if len(c.reg.Candidates()) == 0 || len(c.reg.Voters()) == 0 {
		return "There is no Candidate or Voter to Cast Vote"
	}
	return ""
}

func (c *Console) hasCandidates(purpose string) func() string {
	return func() string {
		if len(c.reg.Candidates()) == 0 {
			return "There is no Candidate to " + purpose
		}
		return ""
	}
}

func (c *Console) mainActions() []action {
	return []action{
		{label: "Enter as Admin", run: c.enterAdmin},
		{label: "Cast Vote", banner: "Cast Vote", guard: c.canCast, run: func() error {
			_, err := workflow.CastVote(c.p, c.reg)
			return err
		}},
		{label: "Show Results", banner: "Show Result", guard: c.hasCandidates("Show Result"), run: func() error {
			workflow.ShowResults(c.p, c.reg)
			return nil
		}},
		{label: "View Individual Results", banner: "Individual Result", guard: c.hasCandidates("Individual Result"), run: func() error {
			return ignore(workflow.IndividualResult(c.p, c.reg))
		}},
	}
}

func (c *Console) adminActions() []action {
	return []action{
		{label: "Candidate Registration", banner: "Register Candidate", run: func() error {
			return ignore(workflow.RegisterCandidate(c.p, c.reg))
		}},
		{label: "Fill missing informations of candidates", banner: "Fill Missing Candidate", run: func() error {
			return ignore(workflow.RepairCandidate(c.p, c.reg))
		}},
		{label: "Modify Candidate Details", banner: "Modify Candidate", run: func() error {
			return ignore(workflow.AmendCandidate(c.p, c.reg))
		}},
		{label: "Remove Candidate", banner: "Remove Candidate", run: func() error {
			return ignore(workflow.RemoveCandidate(c.p, c.reg))
		}},
		{label: "Add Voter", banner: "Add Voter", run: func() error {
			return ignore(workflow.RegisterVoter(c.p, c.reg))
		}},
		{label: "Fill missing informations of voters", banner: "Fill Missing Voter", run: func() error {
			return ignore(workflow.RepairVoter(c.p, c.reg))
		}},
		{label: "Modify Voter Details", banner: "Modify Voter", run: func() error {
			return ignore(workflow.AmendVoter(c.p, c.reg))
		}},
		{label: "Remove Voter", banner: "Remove Voter", run: func() error {
			return ignore(workflow.RemoveVoter(c.p, c.reg))
		}},
	}
}

// withLogging logs the start and end of a menu action
func withLogging(name string, next func() error) error {
	start := time.Now()

	slog.Debug("action started", "action", name)

	err := next()

	slog.Info("action completed",
		"action", name,
		"duration_ms", time.Since(start).Milliseconds(),
		"ok", err == nil,
	)
	return err
}

// dispatch runs a behind its guard. Registry failures are logged and the
// menu carries on; only end of input is returned.
func (c *Console) dispatch(a action) error {
	if a.guard != nil {
		if msg := a.guard(); msg != "" {
			c.p.Say("%s", msg)
			return nil
		}
	}
	if a.banner != "" {
		c.p.Say("%s", a.banner)
	}
	err := withLogging(a.label, a.run)
	if err == nil || errors.Is(err, workflow.ErrEndOfInput) {
		return err
	}
	slog.Error("action failed", "action", a.label, "error", err)
	return nil
}

// menu shows the entries plus a final exit entry and runs the chosen one.
// It reports false once the exit entry is chosen.
func (c *Console) menu(title string, actions []action, exit string) (bool, error) {
	c.p.Say("%s", title)
	for i, a := range actions {
		c.p.Say("%d. %s", i+1, a.label)
	}
	c.p.Say("%d. %s", len(actions)+1, exit)

	choice, err := c.p.Int("your choice")
	if err != nil {
		return false, err
	}
	switch {
	case choice == len(actions)+1:
		return false, nil
	case choice < 1 || choice > len(actions):
		c.p.Say("Invalid choice. Please try again.")
		return true, nil
	}
	return true, c.dispatch(actions[choice-1])
}

// Run shows the main menu until the operator exits. It returns
// workflow.ErrEndOfInput if the input closes first.
func (c *Console) Run() error {
	for {
		c.p.Say("Welcome to the Election Management System!")
		more, err := c.menu("Choose an option:", c.main, "Exit")
		if err != nil {
			return err
		}
		if !more {
			slog.Info("operator exited")
			return nil
		}
	}
}

func (c *Console) enterAdmin() error {
	ok, err := workflow.Authenticate(c.p, c.gate)
	if err != nil || !ok {
		return err
	}
	for {
		more, err := c.menu("Admin Options:", c.admin, "Back to Main Menu")
		if err != nil || !more {
			return err
		}
	}
}
