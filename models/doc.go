// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the record types shared by the registry, the
workflows, and the storage backends.

# Raw Rows

Types produced by a record source before validation:

  - CandidateRow: id, name, symbol, region, count (all strings)
  - VoterRow: id, status token

# Domain Types

  - Candidate: admitted candidate with its reconciled vote count
  - Voter: admitted voter and its has-voted flag
  - RejectedCandidate / RejectedVoter: partial records plus the fields
    found defective and the first rejection reason
  - TallyEntry: candidate ID and vote count, one results line

# Constants

Vote status tokens:

	StatusNotVoted = "0"
	StatusVoted    = "1"

Cast outcomes:

	OutcomeCommitted
	OutcomeCancelled
	OutcomeAlreadyVoted
*/
package models
