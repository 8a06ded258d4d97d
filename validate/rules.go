// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"strconv"

	"github.com/danielhkuo/election-desk/models"
)

// Kind separates format problems from uniqueness conflicts
type Kind int

const (
	KindFormat Kind = iota
	KindDuplicate
)

// Violation is returned by every rule that rejects a value
type Violation struct {
	Field  models.Field
	Kind   Kind
	Reason string
}

func (v *Violation) Error() string {
	return v.Reason
}

func format(field models.Field, reason string) *Violation {
	return &Violation{Field: field, Kind: KindFormat, Reason: reason}
}

// Duplicate builds the "already exists" violation for a unique field
func Duplicate(field models.Field) *Violation {
	return &Violation{Field: field, Kind: KindDuplicate, Reason: field.String() + " already exists."}
}

// CandidateID requires 3-5 characters with at least one letter and one digit
func CandidateID(id string) error {
	if len(id) < 3 || len(id) > 5 || !hasDigit(id) || !hasAlpha(id) {
		return format(models.FieldCandidateID, "Invalid Candidate ID format.")
	}
	return nil
}

// CandidateName requires 2-20 letters
func CandidateName(name string) error {
	if len(name) < 2 || len(name) > 20 {
		return format(models.FieldCandidateName, "Invalid Candidate Name length.")
	}
	if !allAlpha(name) {
		return format(models.FieldCandidateName, "Invalid characters in Candidate Name. Only alphabets are allowed.")
	}
	return nil
}

// PartySymbol has the same shape as a candidate name
func PartySymbol(symbol string) error {
	if len(symbol) < 2 || len(symbol) > 20 {
		return format(models.FieldPartySymbol, "Invalid Party Symbol length.")
	}
	if !allAlpha(symbol) {
		return format(models.FieldPartySymbol, "Invalid characters in Party Symbol. Only alphabets are allowed.")
	}
	return nil
}

// RegionCode needs at least one letter and one digit, no length bound
func RegionCode(code string) error {
	if !hasDigit(code) || !hasAlpha(code) {
		return format(models.FieldRegionCode, "Region Code should contain at least one alpha and one numeric character.")
	}
	return nil
}

// VoterID is exactly 12 digits and may not start with zero
func VoterID(id string) error {
	if len(id) != 12 || id[0] == '0' || !IsNumber(id) {
		return format(models.FieldVoterID, "Invalid Voter ID.")
	}
	return nil
}

// VoteStatus accepts only the two status tokens
func VoteStatus(status string) error {
	if status != models.StatusNotVoted && status != models.StatusVoted {
		return format(models.FieldVoteStatus, "Invalid Voting Status.")
	}
	return nil
}

// IsNumber reports whether s is non-empty and made only of ASCII digits
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// VoteCount parses an initial vote count. Anything that is not a
// non-negative integer that fits in an int becomes 0.
func VoteCount(s string) int {
	if !IsNumber(s) {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			return true
		}
	}
	return false
}

func hasAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if isAlpha(s[i]) {
			return true
		}
	}
	return false
}

func allAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}
