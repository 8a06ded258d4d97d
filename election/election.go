// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/election-desk/registry"
	"github.com/danielhkuo/election-desk/storage"
)

// System ties one registry to the store it is loaded from and flushed to
type System struct {
	reg   *registry.Registry
	store storage.Store
	cycle string

	closeOnce sync.Once
}

func New(reg *registry.Registry, store storage.Store) *System {
	return &System{reg: reg, store: store, cycle: uuid.NewString()}
}

// Registry returns the registry being managed
func (s *System) Registry() *registry.Registry {
	return s.reg
}

// Load admits candidates and then voters from the store. A source that
// cannot be read is logged and skipped; rows it did return are still
// admitted.
func (s *System) Load(ctx context.Context) {
	candidates, err := s.store.LoadCandidates(ctx)
	if err != nil {
		slog.Error("failed to load candidates", "cycle", s.cycle, "error", err)
	}
	for _, row := range candidates {
		s.reg.AdmitCandidate(registry.CandidateFromRow(row))
	}

	voters, err := s.store.LoadVoters(ctx)
	if err != nil {
		slog.Error("failed to load voters", "cycle", s.cycle, "error", err)
	}
	for _, row := range voters {
		s.reg.AdmitVoter(row.ID, row.Status)
	}

	sum := s.reg.Summary()
	slog.Info("records loaded",
		"cycle", s.cycle,
		"candidates", sum.Candidates,
		"rejected_candidates", sum.RejectedCandidates,
		"voters", sum.Voters,
		"rejected_voters", sum.RejectedVoters,
	)
}

// Close reconciles the ledger, writes the tally, voters and candidates,
// and seals the registry. Each failed write is logged and the rest still
// run. Only the first call does anything.
func (s *System) Close(ctx context.Context) {
	s.closeOnce.Do(func() {
		if n := s.reg.Reconcile(); n > 0 {
			slog.Warn("ledger and candidate counts differed", "cycle", s.cycle, "reconciled", n)
		}

		if err := s.store.SaveTally(ctx, s.reg.Tally()); err != nil {
			slog.Error("failed to save results", "cycle", s.cycle, "error", err)
		}
		if err := s.store.SaveVoters(ctx, s.reg.Voters()); err != nil {
			slog.Error("failed to save voters", "cycle", s.cycle, "error", err)
		}
		if err := s.store.SaveCandidates(ctx, s.reg.Candidates()); err != nil {
			slog.Error("failed to save candidates", "cycle", s.cycle, "error", err)
		}

		s.reg.Seal()
		if err := s.store.Close(); err != nil {
			slog.Error("failed to close store", "cycle", s.cycle, "error", err)
		}
		sum := s.reg.Summary()
		slog.Info("election closed", "cycle", s.cycle, "candidates", sum.Candidates, "voters_voted", sum.VotersVoted)
	})
}
