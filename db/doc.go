// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db manages the database schema for the election journal.

# Schema

A single append-only table:

  - journal: one row per committed election state change, in global
    commit order (seq). Columns: id (uuid), seq, op, principal, detail,
    phase, recorded_at.

The journal is the durable face of the ledger collaborator described in
the ledger package; the in-memory election never reads it back.

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}

CreateSchema is idempotent and works against both supported drivers
(modernc.org/sqlite and lib/pq).
*/
package db
