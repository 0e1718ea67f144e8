// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the journal table backing the election ledger.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to
// the dialect both sqlite and postgres accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Append-only journal of committed election state changes.
-- seq is the global commit order; rows are never updated or deleted.
CREATE TABLE IF NOT EXISTS journal (
    id TEXT PRIMARY KEY,
    seq BIGINT NOT NULL UNIQUE,
    op TEXT NOT NULL,
    principal TEXT NOT NULL,
    detail TEXT,
    phase TEXT NOT NULL,
    recorded_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_seq ON journal(seq);
CREATE INDEX IF NOT EXISTS idx_journal_op ON journal(op);
`
