// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package console is the terminal front end: a line-based Prompter, the
main and admin menus, and logger construction.

# Prompter

	p := console.NewPrompter(os.Stdin, os.Stdout)

Every prompt is printed as "Enter <label>: ". Int re-asks until it gets
an integer, printing "Oops, that input is invalid. Please try again."
after each bad line. Secret turns echo off when stdin is a terminal. A
closed input stream is reported as workflow.ErrEndOfInput.

# Menus

Main menu:

	1. Enter as Admin
	2. Cast Vote                (needs a candidate and a voter)
	3. Show Results             (needs a candidate)
	4. View Individual Results  (needs a candidate)
	5. Exit

The admin menu is reached after a successful login and offers
registration, repair, modification, and removal of candidates and voters,
then "9. Back to Main Menu".

Each action is logged when it completes, with its duration. Errors other
than end of input are logged and the menu is shown again.

# Logging

	logger, err := console.NewLogger(os.Stderr, "info")

Text output on a terminal, JSON otherwise.
*/
package console
