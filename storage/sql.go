// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/election-desk/db"
	"github.com/danielhkuo/election-desk/models"
)

// SQLStore keeps records in the candidate, voter and tally tables
type SQLStore struct {
	conn    *sql.DB
	dialect db.Dialect
}

// OpenSQL connects, verifies the connection, and creates the schema
func OpenSQL(ctx context.Context, dialect db.Dialect, url string) (*SQLStore, error) {
	conn, err := sql.Open(string(dialect), url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	slog.Info("Database schema ready", "dialect", string(dialect))
	return &SQLStore{conn: conn, dialect: dialect}, nil
}

func (s *SQLStore) q(query string) string {
	return db.Rebind(s.dialect, query)
}

func (s *SQLStore) LoadCandidates(ctx context.Context) ([]models.CandidateRow, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, name, symbol, region, votes FROM candidate ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var out []models.CandidateRow
	for rows.Next() {
		var r models.CandidateRow
		var votes int
		if err := rows.Scan(&r.ID, &r.Name, &r.Symbol, &r.Region, &votes); err != nil {
			return out, fmt.Errorf("failed to scan candidate: %w", err)
		}
		r.Count = strconv.Itoa(votes)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("failed to read candidates: %w", err)
	}
	return out, nil
}

func (s *SQLStore) LoadVoters(ctx context.Context) ([]models.VoterRow, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT id, status FROM voter ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	var out []models.VoterRow
	for rows.Next() {
		var r models.VoterRow
		if err := rows.Scan(&r.ID, &r.Status); err != nil {
			return out, fmt.Errorf("failed to scan voter: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("failed to read voters: %w", err)
	}
	return out, nil
}

// replace runs clear and then one insert per row in a single transaction
func (s *SQLStore) replace(ctx context.Context, table string, n int, insert string, args func(i int) []any) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.q(insert))
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("failed to insert %s row %d: %w", table, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}

func (s *SQLStore) SaveCandidates(ctx context.Context, candidates []models.Candidate) error {
	return s.replace(ctx, "candidate", len(candidates), `
		INSERT INTO candidate (id, name, symbol, region, votes, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`, func(i int) []any {
		c := candidates[i]
		return []any{c.ID, c.Name, c.Symbol, c.Region, c.Votes, i}
	})
}

func (s *SQLStore) SaveVoters(ctx context.Context, voters []models.Voter) error {
	return s.replace(ctx, "voter", len(voters), `
		INSERT INTO voter (id, status, position) VALUES (?, ?, ?)
	`, func(i int) []any {
		return []any{voters[i].ID, voters[i].Status(), i}
	})
}

// SaveTally appends the entries as a new run. Earlier runs are kept.
func (s *SQLStore) SaveTally(ctx context.Context, tally []models.TallyEntry) error {
	runID := uuid.NewString()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(run_seq), 0) + 1 FROM tally`).Scan(&seq); err != nil {
		return fmt.Errorf("failed to number tally run: %w", err)
	}

	insert := s.q(`
		INSERT INTO tally (run_id, run_seq, position, candidate_id, votes) VALUES (?, ?, ?, ?, ?)
	`)
	for i, e := range tally {
		_, err := tx.ExecContext(ctx, insert, runID, seq, i, e.CandidateID, e.Votes)
		if err != nil {
			return fmt.Errorf("failed to insert tally row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tally: %w", err)
	}
	slog.Info("tally saved", "run_id", runID, "run", seq, "entries", len(tally))
	return nil
}

// LatestTally returns the most recently saved run and its ID. An empty
// run ID means no tally was ever saved.
func (s *SQLStore) LatestTally(ctx context.Context) (string, []models.TallyEntry, error) {
	var runID string
	err := s.conn.QueryRowContext(ctx, `
		SELECT run_id FROM tally ORDER BY run_seq DESC LIMIT 1
	`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to query tally runs: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, s.q(`
		SELECT candidate_id, votes FROM tally WHERE run_id = ? ORDER BY position
	`), runID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to query tally: %w", err)
	}
	defer rows.Close()

	var out []models.TallyEntry
	for rows.Next() {
		var e models.TallyEntry
		if err := rows.Scan(&e.CandidateID, &e.Votes); err != nil {
			return "", nil, fmt.Errorf("failed to scan tally row: %w", err)
		}
		out = append(out, e)
	}
	return runID, out, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.conn.Close()
}
