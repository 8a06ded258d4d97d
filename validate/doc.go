// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate holds the field rules for candidate and voter records.

Every rule is a pure function of a single value. A nil error means the
value is admissible; otherwise the error is a *Violation carrying the
field, the kind of problem, and a reason suitable for showing to the
operator:

	if err := validate.CandidateID("CC"); err != nil {
		fmt.Println(err) // Invalid Candidate ID format.
	}

Uniqueness is not checked here because it depends on registry state. The
registry reports conflicts with Duplicate, which yields a KindDuplicate
violation such as "Candidate ID already exists.".

# Vote Counts

VoteCount is deliberately permissive: malformed or negative counts read
from storage become 0 instead of rejecting the record.
*/
package validate
