// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"slices"
	"testing"

	"github.com/danielhkuo/election-desk/models"
	"github.com/danielhkuo/election-desk/validate"
)

func alice() models.Candidate {
	return models.Candidate{ID: "C1a", Name: "Alice", Symbol: "Red", Region: "R1a"}
}

func bob() models.Candidate {
	return models.Candidate{ID: "B2b", Name: "Bob", Symbol: "Blue", Region: "R2b"}
}

func mustInvariants(t *testing.T, r *Registry) {
	t.Helper()
	if err := r.CheckInvariants(); err != nil {
		t.Fatalf("invariants broken: %v", err)
	}
}

func TestAdmitCandidate(t *testing.T) {
	r := New()

	if err := r.AdmitCandidate(alice()); err != nil {
		t.Fatalf("AdmitCandidate(alice) failed: %v", err)
	}
	mustInvariants(t, r)

	if !r.HasCandidate("C1a") {
		t.Error("C1a should be indexed")
	}

	err := r.AdmitCandidate(models.Candidate{ID: "CC", Name: "Carol", Symbol: "Green", Region: "R3c"})
	if err == nil || err.Error() != "Invalid Candidate ID format." {
		t.Errorf("expected format rejection, got %v", err)
	}
	mustInvariants(t, r)

	rejected := r.RejectedCandidates()
	if len(rejected) != 1 {
		t.Fatalf("expected 1 rejected candidate, got %d", len(rejected))
	}
	if rejected[0].Candidate.ID != "CC" || rejected[0].Reason != "Invalid Candidate ID format." {
		t.Errorf("unexpected rejected record %+v", rejected[0])
	}
	if !slices.Equal(rejected[0].Defects, []models.Field{models.FieldCandidateID}) {
		t.Errorf("unexpected defects %v", rejected[0].Defects)
	}
	if r.HasCandidate("CC") {
		t.Error("rejected candidate must not be indexed")
	}
}

func TestAdmitCandidate_Duplicates(t *testing.T) {
	r := New()
	if err := r.AdmitCandidate(alice()); err != nil {
		t.Fatal(err)
	}

	dupID := bob()
	dupID.ID = "C1a"
	err := r.AdmitCandidate(dupID)
	if err == nil || err.Error() != "Candidate ID already exists." {
		t.Fatalf("expected duplicate ID rejection, got %v", err)
	}
	var v *validate.Violation
	if !errors.As(err, &v) || v.Kind != validate.KindDuplicate {
		t.Errorf("expected KindDuplicate, got %v", err)
	}

	dupSymbol := bob()
	dupSymbol.Symbol = "Red"
	err = r.AdmitCandidate(dupSymbol)
	if err == nil || err.Error() != "Party Symbol already exists." {
		t.Fatalf("expected duplicate symbol rejection, got %v", err)
	}

	if len(r.Candidates()) != 1 {
		t.Errorf("expected 1 admitted candidate, got %d", len(r.Candidates()))
	}
	if got := r.Summary().RejectedCandidates; got != 2 {
		t.Errorf("expected 2 rejected candidates, got %d", got)
	}
	mustInvariants(t, r)
}

func TestAdmitCandidate_RuleOrder(t *testing.T) {
	r := New()
	if err := r.AdmitCandidate(alice()); err != nil {
		t.Fatal(err)
	}

	// Duplicate ID is reported before the bad name
	err := r.AdmitCandidate(models.Candidate{ID: "C1a", Name: "X", Symbol: "Red", Region: "zz"})
	if err == nil || err.Error() != "Candidate ID already exists." {
		t.Errorf("expected ID conflict first, got %v", err)
	}

	// Name is checked before the symbol
	err = r.AdmitCandidate(models.Candidate{ID: "D4d", Name: "X", Symbol: "Red", Region: "zz"})
	if err == nil || err.Error() != "Invalid Candidate Name length." {
		t.Errorf("expected name failure, got %v", err)
	}

	rejected := r.RejectedCandidates()
	last := rejected[len(rejected)-1]
	want := []models.Field{models.FieldCandidateName, models.FieldPartySymbol, models.FieldRegionCode}
	if !slices.Equal(last.Defects, want) {
		t.Errorf("defects = %v, want %v", last.Defects, want)
	}
}

func TestAdmitCandidate_InitialVotes(t *testing.T) {
	r := New()
	c := alice()
	c.Votes = 7
	if err := r.AdmitCandidate(c); err != nil {
		t.Fatal(err)
	}
	negative := bob()
	negative.Votes = -4
	if err := r.AdmitCandidate(negative); err != nil {
		t.Fatal(err)
	}

	if votes, _ := r.Result("C1a"); votes != 7 {
		t.Errorf("ledger for C1a = %d, want 7", votes)
	}
	if votes, _ := r.Result("B2b"); votes != 0 {
		t.Errorf("negative votes should clamp to 0, got %d", votes)
	}
	mustInvariants(t, r)
}

func TestAdmitVoter(t *testing.T) {
	r := New()

	if err := r.AdmitVoter("123456789012", models.StatusNotVoted); err != nil {
		t.Fatalf("AdmitVoter failed: %v", err)
	}
	if err := r.AdmitVoter("012345678901", models.StatusNotVoted); err == nil {
		t.Error("leading zero voter ID should be rejected")
	}
	err := r.AdmitVoter("123456789012", models.StatusVoted)
	if err == nil || err.Error() != "Voter ID already exists." {
		t.Errorf("expected duplicate voter rejection, got %v", err)
	}
	if err := r.AdmitVoter("223456789012", ""); err == nil {
		t.Error("missing status should be rejected")
	}
	if err := r.AdmitVoter("323456789012", models.StatusVoted); err != nil {
		t.Fatal(err)
	}

	v, err := r.Voter("323456789012")
	if err != nil {
		t.Fatal(err)
	}
	if !v.HasVoted {
		t.Error("status 1 should load as voted")
	}

	rejected := r.RejectedVoters()
	if len(rejected) != 3 {
		t.Fatalf("expected 3 rejected voters, got %d", len(rejected))
	}
	if !slices.Equal(rejected[2].Defects, []models.Field{models.FieldVoteStatus}) {
		t.Errorf("unexpected defects %v", rejected[2].Defects)
	}
	mustInvariants(t, r)
}

func TestRemoveCandidate_Idempotent(t *testing.T) {
	r := New()
	if err := r.AdmitCandidate(alice()); err != nil {
		t.Fatal(err)
	}
	if err := r.AdmitCandidate(bob()); err != nil {
		t.Fatal(err)
	}

	if err := r.RemoveCandidate("C1a"); err != nil {
		t.Fatalf("first remove failed: %v", err)
	}
	mustInvariants(t, r)

	err := r.RemoveCandidate("C1a")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove should be not found, got %v", err)
	}
	mustInvariants(t, r)

	if _, err := r.Result("C1a"); !errors.Is(err, ErrNotFound) {
		t.Error("ledger entry should be gone")
	}

	// ID and symbol are free again
	if err := r.AdmitCandidate(alice()); err != nil {
		t.Errorf("re-admitting removed candidate failed: %v", err)
	}
	mustInvariants(t, r)
}

func TestRemoveVoter_Idempotent(t *testing.T) {
	r := New()
	if err := r.AdmitVoter("123456789012", models.StatusNotVoted); err != nil {
		t.Fatal(err)
	}
	if err := r.RemoveVoter("123456789012"); err != nil {
		t.Fatal(err)
	}
	if err := r.RemoveVoter("123456789012"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if r.HasVoter("123456789012") {
		t.Error("voter ID should be released")
	}
	mustInvariants(t, r)
}

func TestPromoteCandidate(t *testing.T) {
	r := New()
	if err := r.AdmitCandidate(alice()); err != nil {
		t.Fatal(err)
	}
	broken := models.Candidate{ID: "D4d", Name: "Dave", Symbol: "Red", Region: "R4d", Votes: 3}
	if err := r.AdmitCandidate(broken); err == nil {
		t.Fatal("expected symbol conflict")
	}

	// Still conflicting: nothing changes
	if err := r.PromoteCandidate(0, broken); err == nil {
		t.Fatal("promotion of an invalid record should fail")
	}
	if len(r.RejectedCandidates()) != 1 || len(r.Candidates()) != 1 {
		t.Error("failed promotion must not move the record")
	}
	mustInvariants(t, r)

	fixed := broken
	fixed.Symbol = "Gold"
	if err := r.PromoteCandidate(0, fixed); err != nil {
		t.Fatalf("promotion failed: %v", err)
	}
	if len(r.RejectedCandidates()) != 0 {
		t.Error("promoted record should leave the rejected collection")
	}
	if votes, _ := r.Result("D4d"); votes != 3 {
		t.Errorf("promoted candidate keeps its votes, got %d", votes)
	}
	mustInvariants(t, r)

	if err := r.PromoteCandidate(5, fixed); !errors.Is(err, ErrNoSuchRecord) {
		t.Errorf("expected ErrNoSuchRecord, got %v", err)
	}
}

func TestPromoteVoter(t *testing.T) {
	r := New()
	if err := r.AdmitVoter("12345", "x"); err == nil {
		t.Fatal("expected rejection")
	}
	if err := r.PromoteVoter(0, "123456789012", models.StatusNotVoted); err != nil {
		t.Fatalf("PromoteVoter failed: %v", err)
	}
	if !r.HasVoter("123456789012") || len(r.RejectedVoters()) != 0 {
		t.Error("voter should be admitted and removed from rejected list")
	}
	mustInvariants(t, r)
}

func TestAmendCandidate(t *testing.T) {
	r := New()
	if err := r.AdmitCandidate(alice()); err != nil {
		t.Fatal(err)
	}
	if err := r.AdmitCandidate(bob()); err != nil {
		t.Fatal(err)
	}

	if err := r.AmendCandidate("C1a", models.FieldCandidateName, "Alicia"); err != nil {
		t.Fatal(err)
	}
	if err := r.AmendCandidate("C1a", models.FieldCandidateName, "A1"); err == nil {
		t.Error("invalid name should be rejected")
	}

	// The candidate's own symbol does not count as taken
	if err := r.AmendCandidate("C1a", models.FieldPartySymbol, "Red"); err != nil {
		t.Errorf("re-using own symbol failed: %v", err)
	}
	if err := r.AmendCandidate("C1a", models.FieldPartySymbol, "Blue"); err == nil || err.Error() != "Party Symbol already exists." {
		t.Errorf("expected conflict with Bob's symbol, got %v", err)
	}
	if err := r.AmendCandidate("C1a", models.FieldRegionCode, "North9"); err != nil {
		t.Fatal(err)
	}
	if err := r.AmendCandidate("C1a", models.FieldCandidateID, "Z9z"); !errors.Is(err, ErrFieldNotAmendable) {
		t.Errorf("expected ErrFieldNotAmendable, got %v", err)
	}
	if err := r.AmendCandidate("Q9q", models.FieldRegionCode, "R1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	c, _ := r.Candidate("C1a")
	if c.Name != "Alicia" || c.Region != "North9" || c.Symbol != "Red" {
		t.Errorf("unexpected candidate after amendment %+v", c)
	}
	mustInvariants(t, r)
}

func TestAmendSymbol_Policies(t *testing.T) {
	tests := []struct {
		name          string
		policy        SymbolPolicy
		oldSymbolFree bool
	}{
		{"release frees old symbol", SymbolRelease, true},
		{"retain keeps old symbol reserved", SymbolRetain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(WithSymbolPolicy(tt.policy))
			if err := r.AdmitCandidate(alice()); err != nil {
				t.Fatal(err)
			}
			if err := r.AmendCandidate("C1a", models.FieldPartySymbol, "Crimson"); err != nil {
				t.Fatal(err)
			}
			mustInvariants(t, r)

			other := bob()
			other.Symbol = "Red"
			err := r.AdmitCandidate(other)
			if tt.oldSymbolFree && err != nil {
				t.Errorf("old symbol should be reusable, got %v", err)
			}
			if !tt.oldSymbolFree && (err == nil || err.Error() != "Party Symbol already exists.") {
				t.Errorf("old symbol should stay reserved, got %v", err)
			}
			mustInvariants(t, r)
		})
	}
}

func TestAmendVoter(t *testing.T) {
	r := New()
	if err := r.AdmitVoter("123456789012", models.StatusNotVoted); err != nil {
		t.Fatal(err)
	}
	if err := r.AdmitVoter("223456789012", models.StatusNotVoted); err != nil {
		t.Fatal(err)
	}

	if err := r.AmendVoter("123456789012", models.FieldVoterID, "223456789012"); err == nil {
		t.Error("amending to a taken ID should fail")
	}
	if err := r.AmendVoter("123456789012", models.FieldVoterID, "123456789012"); err != nil {
		t.Errorf("amending to own ID should succeed, got %v", err)
	}
	if err := r.AmendVoter("123456789012", models.FieldVoterID, "923456789012"); err != nil {
		t.Fatal(err)
	}
	if r.HasVoter("123456789012") || !r.HasVoter("923456789012") {
		t.Error("voter index not swapped")
	}
	if err := r.AmendVoter("923456789012", models.FieldVoteStatus, models.StatusVoted); err != nil {
		t.Fatal(err)
	}
	v, _ := r.Voter("923456789012")
	if !v.HasVoted {
		t.Error("status amendment not applied")
	}
	mustInvariants(t, r)
}

func TestSeal(t *testing.T) {
	r := New()
	if err := r.AdmitCandidate(alice()); err != nil {
		t.Fatal(err)
	}
	r.Seal()

	if err := r.AdmitCandidate(bob()); !errors.Is(err, ErrSealed) {
		t.Errorf("AdmitCandidate after seal = %v", err)
	}
	if err := r.RemoveCandidate("C1a"); !errors.Is(err, ErrSealed) {
		t.Errorf("RemoveCandidate after seal = %v", err)
	}
	if err := r.AdmitVoter("123456789012", "0"); !errors.Is(err, ErrSealed) {
		t.Errorf("AdmitVoter after seal = %v", err)
	}
	if len(r.RejectedCandidates()) != 0 {
		t.Error("sealed registry must not collect rejections")
	}
	if len(r.Candidates()) != 1 {
		t.Error("reads still work after seal")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	r := New()
	if err := r.AdmitCandidate(alice()); err != nil {
		t.Fatal(err)
	}
	list := r.Candidates()
	list[0].Votes = 99
	mustInvariants(t, r)
}

func TestCandidateFromRow(t *testing.T) {
	tests := []struct {
		count string
		want  int
	}{
		{"7", 7},
		{"", 0},
		{"-3", 0},
		{"abc", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.count, func(t *testing.T) {
			c := CandidateFromRow(models.CandidateRow{ID: "C1a", Name: "Alice", Symbol: "Red", Region: "R1a", Count: tt.count})
			if c.Votes != tt.want {
				t.Errorf("Votes = %d, want %d", c.Votes, tt.want)
			}
			if c.ID != "C1a" || c.Name != "Alice" || c.Symbol != "Red" || c.Region != "R1a" {
				t.Errorf("fields not copied: %+v", c)
			}
		})
	}
}

func TestRejectVoter(t *testing.T) {
	r := New()
	if err := r.RejectVoter("12", "", "entry cancelled"); err != nil {
		t.Fatalf("RejectVoter failed: %v", err)
	}
	mustInvariants(t, r)

	rejected := r.RejectedVoters()
	if len(rejected) != 1 || rejected[0].Reason != "entry cancelled" {
		t.Fatalf("unexpected rejected voters %+v", rejected)
	}
	want := []models.Field{models.FieldVoterID, models.FieldVoteStatus}
	if !slices.Equal(rejected[0].Defects, want) {
		t.Errorf("Defects = %v, want %v", rejected[0].Defects, want)
	}
	if r.HasVoter("12") {
		t.Error("rejected voter must not be indexed")
	}

	r.Seal()
	if err := r.RejectVoter("13", "", "late"); !errors.Is(err, ErrSealed) {
		t.Errorf("expected ErrSealed, got %v", err)
	}
}
