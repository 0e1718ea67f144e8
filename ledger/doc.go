// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger is the durable collaborator of the election: an
append-only SQL journal of every committed state change.

The election treats the ledger as an observer. Writes happen after a
change commits, failures are logged by the election and never undo the
change, and the election never reads the journal back. The journal
exists for audit: the /election/journal endpoint and operators read it.

# Usage

	rec, err := ledger.NewSQLRecorder(dbConn)
	if err != nil {
		// handle error
	}
	e, err := election.New(admin, rec)

Entries(db) returns the full journal in commit order for read-back.
*/
package ledger
