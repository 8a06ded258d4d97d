// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election manages the lifecycle of one election session: loading
records into a registry at startup and flushing them back at shutdown.

# Lifecycle

	sys := election.New(registry.New(), store)
	sys.Load(ctx)
	defer sys.Close(ctx)

Load admits every candidate row, then every voter row. Rows that break a
rule end up in the registry's rejected collections for repair. A store
that fails to load is logged and the session continues with whatever was
read.

Close runs exactly once:

 1. reconcile ledger counts into the candidate records
 2. save the tally, then voters, then candidates
 3. seal the registry and close the store

A failed save is logged and does not stop the others. Closing again is a
no-op.

Each session carries a random cycle ID that appears in its log records.
*/
package election
