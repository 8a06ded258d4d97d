// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package workflow implements the operator-facing procedures: registering,
repairing, amending, and removing records, casting a ballot, and
checking admin credentials.

Every procedure talks to the operator only through a Prompter and changes
state only through the registry. Nothing is written until the operator
has supplied every value the procedure needs.

# Field Loop

Registration, repair, and amendment share one state machine over a list
of slots (one slot per field):

	Asking -> Checking -> Asking (next slot)   value accepted
	Asking -> Checking -> Confirming           value rejected
	Confirming -> Asking                        operator retries
	Confirming -> Cancelled                     operator answers "n"
	last slot accepted -> Committing -> Committed

Rejection reasons are shown verbatim. Cancelled procedures leave the
registry exactly as it was, except that a partially entered candidate is
kept with the rejected candidates so it can be completed later.

# Casting

CastVote runs its own machine:

	SelectingCandidate -> SelectingVoter -> Checking -> Committing -> Committed

with terminal states Cancelled and AlreadyVoted. Unknown IDs are asked for
again until the operator gives up.

# End of Input

ErrEndOfInput from the Prompter is never treated as a cancellation. It is
returned to the caller unchanged so that the session can be flushed and
closed.

# Usage

	p := console.NewPrompter(os.Stdin, os.Stdout)
	outcome, err := workflow.CastVote(p, reg)
	if errors.Is(err, workflow.ErrEndOfInput) {
	    // flush and exit
	}
*/
package workflow
