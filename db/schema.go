// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Dialect names a supported SQL backend. The value is also the
// database/sql driver name.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Rebind rewrites ? placeholders into the form the dialect expects.
// Queries must not contain a literal question mark.
func Rebind(d Dialect, query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const schema = `
-- Admitted candidates, in registration order
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    symbol TEXT NOT NULL UNIQUE,
    region TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    position INTEGER NOT NULL
);

-- Admitted voters
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    status TEXT NOT NULL CHECK (status IN ('0', '1')),
    position INTEGER NOT NULL
);

-- Tally snapshots, one run per flush
CREATE TABLE IF NOT EXISTS tally (
    run_id TEXT NOT NULL,
    run_seq INTEGER NOT NULL,
    position INTEGER NOT NULL,
    candidate_id TEXT NOT NULL,
    votes INTEGER NOT NULL,
    computed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_tally_run_seq ON tally(run_seq);
`
