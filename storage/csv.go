// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/danielhkuo/election-desk/models"
)

// File names inside the data directory
const (
	CandidateFile = "Candidate.csv"
	VoterFile     = "Voter.csv"
	ResultFile    = "result.csv"
)

// CSVStore keeps records as headerless comma-separated files in one
// directory
type CSVStore struct {
	dir string
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{dir: dir}
}

// readRows returns every record with at least width fields, padding short
// ones with empty strings. Records with an empty first field are dropped.
func (s *CSVStore) readRows(name string, width int) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("failed to read %s: %w", name, err)
		}
		for len(record) < width {
			record = append(record, "")
		}
		if record[0] == "" {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// writeRows replaces name with the given records. The file is written
// next to the target and renamed over it.
func (s *CSVStore) writeRows(name string, rows [][]string) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func (s *CSVStore) LoadCandidates(ctx context.Context) ([]models.CandidateRow, error) {
	rows, err := s.readRows(CandidateFile, 5)
	out := make([]models.CandidateRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.CandidateRow{ID: r[0], Name: r[1], Symbol: r[2], Region: r[3], Count: r[4]})
	}
	return out, err
}

func (s *CSVStore) LoadVoters(ctx context.Context) ([]models.VoterRow, error) {
	rows, err := s.readRows(VoterFile, 2)
	out := make([]models.VoterRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.VoterRow{ID: r[0], Status: r[1]})
	}
	return out, err
}

func (s *CSVStore) SaveCandidates(ctx context.Context, candidates []models.Candidate) error {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{c.ID, c.Name, c.Symbol, c.Region, strconv.Itoa(c.Votes)})
	}
	return s.writeRows(CandidateFile, rows)
}

func (s *CSVStore) SaveVoters(ctx context.Context, voters []models.Voter) error {
	rows := make([][]string, 0, len(voters))
	for _, v := range voters {
		rows = append(rows, []string{v.ID, v.Status()})
	}
	return s.writeRows(VoterFile, rows)
}

func (s *CSVStore) SaveTally(ctx context.Context, tally []models.TallyEntry) error {
	rows := make([][]string, 0, len(tally))
	for _, e := range tally {
		rows = append(rows, []string{e.CandidateID, strconv.Itoa(e.Votes)})
	}
	return s.writeRows(ResultFile, rows)
}

func (s *CSVStore) Close() error {
	return nil
}
