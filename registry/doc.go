// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds the candidate and voter registries for one
election cycle.

A Registry owns every piece of shared state: admitted records, rejected
records, the candidate ID, party symbol, and voter ID indices, and the
vote ledger. Nothing outside the package can touch them directly.

# Admission

	reg := registry.New()
	err := reg.AdmitCandidate(models.Candidate{ID: "C1a", Name: "Alice", Symbol: "Red", Region: "R1a"})

Rules run in a fixed order and the first failure wins:

	candidate ID unique → candidate ID format → name → symbol unique → symbol format → region
	voter ID unique → voter ID format → status

A rejected record goes to the rejected collection and no index changes.

# Repair and Amendment

CandidateDefects and VoterDefects list the fields a rejected record still
needs. PromoteCandidate and PromoteVoter re-run admission on the repaired
record and move it into the registry in one step.

AmendCandidate and AmendVoter change a single field, validating the new
value as though the record's own current value were free. How a replaced
party symbol is treated depends on SymbolPolicy:

	SymbolRelease  old symbol can be taken by another candidate (default)
	SymbolRetain   old symbol stays reserved for the rest of the cycle

# Ledger

CommitVote is the only way a ballot is recorded. It increments the ledger
entry, copies the new count into the candidate, and marks the voter, or
does nothing when the voter already voted. CheckInvariants verifies the
ledger and index consistency and is used throughout the tests.

# Sealing

Seal is called after the final flush. Every mutating method then returns
ErrSealed.
*/
package registry
