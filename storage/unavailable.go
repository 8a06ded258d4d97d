// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/election-desk/models"
)

var ErrUnavailable = errors.New("store unavailable")

type unavailableStore struct {
	err error
}

// Unavailable stands in for a store that could not be opened. Every load
// and save fails with ErrUnavailable wrapping cause, so the session runs in
// memory only.
func Unavailable(cause error) Store {
	return &unavailableStore{err: fmt.Errorf("%w: %w", ErrUnavailable, cause)}
}

func (u *unavailableStore) LoadCandidates(ctx context.Context) ([]models.CandidateRow, error) {
	return nil, u.err
}

func (u *unavailableStore) LoadVoters(ctx context.Context) ([]models.VoterRow, error) {
	return nil, u.err
}

func (u *unavailableStore) SaveCandidates(ctx context.Context, candidates []models.Candidate) error {
	return u.err
}

func (u *unavailableStore) SaveVoters(ctx context.Context, voters []models.Voter) error {
	return u.err
}

func (u *unavailableStore) SaveTally(ctx context.Context, tally []models.TallyEntry) error {
	return u.err
}

func (u *unavailableStore) Close() error {
	return nil
}
