// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage loads raw records at startup and writes the final state
at shutdown.

# Interfaces

	type Source interface {
	    LoadCandidates(ctx) ([]models.CandidateRow, error)
	    LoadVoters(ctx) ([]models.VoterRow, error)
	}

	type Sink interface {
	    SaveCandidates(ctx, []models.Candidate) error
	    SaveVoters(ctx, []models.Voter) error
	    SaveTally(ctx, []models.TallyEntry) error
	}

Sources return rows unvalidated; admission is the registry's job. A load
that fails part way returns the rows read so far together with the error.

# CSV Store

Three headerless files in the data directory:

	Candidate.csv   id,name,symbol,region,count
	Voter.csv       id,status            (status is 0 or 1)
	result.csv      id,count             (highest count first)

Rows whose first field is empty are skipped and short rows are padded
with empty fields. Saves write a temporary file and rename it over the
target.

# SQL Store

The same records in the candidate, voter and tally tables (see package
db), on SQLite (modernc.org/sqlite) or PostgreSQL (lib/pq):

	store, err := storage.OpenSQL(ctx, db.SQLite, "election.db")

SaveCandidates and SaveVoters replace the table content in one
transaction. SaveTally appends a new run tagged with a random run ID;
LatestTally reads it back.

# Selection

	store, err := storage.Open(ctx, cfg)

picks the store from cfg.StoreType and returns ErrUnknownStore for
anything else.
*/
package storage
