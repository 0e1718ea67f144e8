// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/electorate/election"
)

// Entry is one journal row as stored.
type Entry struct {
	ID         string    `json:"id"`
	Seq        int64     `json:"seq"`
	Op         string    `json:"op"`
	Principal  string    `json:"principal"`
	Detail     string    `json:"detail,omitempty"`
	Phase      string    `json:"phase"`
	RecordedAt time.Time `json:"recorded_at"`
}

// SQLRecorder implements election.Recorder over a SQL database. Each
// committed state change becomes one journal row with a monotonically
// increasing sequence number.
type SQLRecorder struct {
	db *sql.DB

	mu  sync.Mutex
	seq int64
}

// NewSQLRecorder returns a recorder that appends to db's journal table.
// It resumes the sequence from the highest seq already stored, so a
// restarted process keeps the global commit order intact.
func NewSQLRecorder(db *sql.DB) (*SQLRecorder, error) {
	var seq sql.NullInt64
	err := db.QueryRow(`SELECT MAX(seq) FROM journal`).Scan(&seq)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal sequence: %w", err)
	}
	return &SQLRecorder{db: db, seq: seq.Int64}, nil
}

// Record appends one journal entry. Called by the election after a
// state change commits; the entry never mutates existing rows.
func (r *SQLRecorder) Record(entry election.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	_, err := r.db.Exec(`
		INSERT INTO journal (id, seq, op, principal, detail, phase, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.NewString(), r.seq, entry.Op, string(entry.Principal), entry.Detail, entry.Phase.String(), time.Now().UTC())

	if err != nil {
		r.seq--
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// Entries returns every journal row in commit order.
func Entries(db *sql.DB) ([]Entry, error) {
	rows, err := db.Query(`
		SELECT id, seq, op, principal, detail, phase, recorded_at
		FROM journal
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var detail sql.NullString
		if err := rows.Scan(&e.ID, &e.Seq, &e.Op, &e.Principal, &detail, &e.Phase, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Detail = detail.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return entries, nil
}
