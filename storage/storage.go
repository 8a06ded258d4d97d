// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/election-desk/cliparse"
	"github.com/danielhkuo/election-desk/db"
	"github.com/danielhkuo/election-desk/models"
)

var (
	ErrUnknownStore = errors.New("unknown store type")
)

// Source supplies raw records at startup
type Source interface {
	LoadCandidates(ctx context.Context) ([]models.CandidateRow, error)
	LoadVoters(ctx context.Context) ([]models.VoterRow, error)
}

// Sink receives the final state at shutdown
type Sink interface {
	SaveCandidates(ctx context.Context, candidates []models.Candidate) error
	SaveVoters(ctx context.Context, voters []models.Voter) error
	SaveTally(ctx context.Context, tally []models.TallyEntry) error
}

type Store interface {
	Source
	Sink
	Close() error
}

// Open returns the store selected by cfg.StoreType
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	switch cfg.StoreType {
	case cliparse.StoreCSV, "":
		return NewCSVStore(cfg.DataDir), nil
	case cliparse.StoreSQLite:
		return OpenSQL(ctx, db.SQLite, cfg.DatabaseURL)
	case cliparse.StorePostgres:
		return OpenSQL(ctx, db.Postgres, cfg.DatabaseURL)
	}
	return nil, fmt.Errorf("%q: %w", cfg.StoreType, ErrUnknownStore)
}
