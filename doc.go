// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for Election Desk.

Election Desk is an operator console for a small election: it loads
candidates and voters from a record store, lets an admin register, repair,
amend, and remove records, casts ballots exactly once per voter, and
writes the final state and ranked results back when the session ends.

# Starting

	go run . --data-dir ./data

Or against a database:

	go run . --store sqlite --database-url ./data/election.db
	DATABASE_URL=postgres://... go run . --store postgres

# Configuration

  - ELECTION_DATA_DIR (-d): directory with Candidate.csv, Voter.csv, result.csv
  - STORE_TYPE (-s): csv, sqlite or postgres (default: csv)
  - DATABASE_URL (--database-url): SQL connection string
  - ADMIN_FILE (--admin-file): admin credentials (default: <data-dir>/Admin.csv)
  - LOG_LEVEL (--log-level): debug, info, warn, error
  - RETAIN_STALE_SYMBOLS (--retain-stale-symbols): keep amended symbols reserved

A .env file in the working directory is read first.

# Shutdown

Records are saved exactly once: when the operator picks Exit, when the
input stream closes, or on SIGINT/SIGTERM.

# Architecture

  - models: record types
  - validate: field rules and rejection reasons
  - registry: admitted and rejected records, indices, vote ledger
  - workflow: operator procedures and their state machines
  - console: terminal prompter, menus, logger
  - auth: admin credential gate
  - storage: CSV and SQL record stores
  - db: SQL schema
  - election: load and flush lifecycle
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
