// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL record stores.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		return err
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on SQLite and PostgreSQL.

# Tables

  - candidate: admitted candidates with their reconciled vote counts
  - voter: admitted voters and their status token ("0" or "1")
  - tally: ranked results, one run_id per flush; run_seq orders the runs

candidate and voter carry a position column so that records load back in
the order they were saved.

# Placeholders

Queries are written with ? placeholders and passed through Rebind:

	conn.ExecContext(ctx, db.Rebind(db.Postgres, "DELETE FROM voter WHERE id = ?"), id)
	// DELETE FROM voter WHERE id = $1
*/
package db
