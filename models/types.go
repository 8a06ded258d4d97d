// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Vote status tokens as stored in voter records
const (
	StatusNotVoted = "0"
	StatusVoted    = "1"
)

// Field identifies one field of a candidate or voter record
type Field int

const (
	FieldCandidateID Field = iota
	FieldCandidateName
	FieldPartySymbol
	FieldRegionCode
	FieldVoterID
	FieldVoteStatus
)

var fieldLabels = map[Field]string{
	FieldCandidateID:   "Candidate ID",
	FieldCandidateName: "Candidate Name",
	FieldPartySymbol:   "Party Symbol",
	FieldRegionCode:    "Region Code",
	FieldVoterID:       "Voter ID",
	FieldVoteStatus:    "Voting Status",
}

func (f Field) String() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return "Unknown Field"
}

// CastOutcome is the terminal state of a ballot attempt
type CastOutcome int

const (
	OutcomeCommitted CastOutcome = iota
	OutcomeCancelled
	OutcomeAlreadyVoted
)

func (o CastOutcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeAlreadyVoted:
		return "already_voted"
	}
	return "unknown"
}

// Raw tuples, as produced by a record source

type CandidateRow struct {
	ID     string
	Name   string
	Symbol string
	Region string
	Count  string
}

type VoterRow struct {
	ID     string
	Status string
}

// Domain types

type Candidate struct {
	ID     string
	Name   string
	Symbol string
	Region string
	Votes  int
}

type Voter struct {
	ID       string
	HasVoted bool
}

// Status returns the stored status token for the voter
func (v Voter) Status() string {
	if v.HasVoted {
		return StatusVoted
	}
	return StatusNotVoted
}

// RejectedCandidate holds whatever a source or an operator supplied for a
// candidate that could not be admitted
type RejectedCandidate struct {
	Candidate Candidate
	Defects   []Field
	Reason    string
}

// RejectedVoter keeps the raw status token, which may itself be invalid
type RejectedVoter struct {
	ID      string
	Status  string
	Defects []Field
	Reason  string
}

// TallyEntry is one line of the results table
type TallyEntry struct {
	CandidateID string
	Votes       int
}
