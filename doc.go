// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Electorate API server.

Electorate runs a single election as a phase-gated workflow: an
administrator registers voters, voters submit proposals and cast one
ballot each, and the tally declares the proposal with the most votes
the winner (earliest index wins ties).

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_PRINCIPAL=alice IP_HASH_SALT=... go run main.go

Or with flags:

	go run main.go -p 3324 -admin alice -ip-salt ...

# Configuration

Required settings:

  - ADMIN_PRINCIPAL (-admin): Principal that administers the election
  - IP_HASH_SALT (-ip-salt): Secret for audit-log IP hashing

Optional settings:

  - PORT (-p): Server port (default: 3324)
  - DATABASE_TYPE (-t): Journal driver, sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Journal connection string

# Architecture

The server keeps the election in memory and journals every committed
state change to SQL:

  - election: Workflow state machine, roles, proposals, ballots, tally
  - ledger: Append-only SQL journal of committed changes
  - handlers: HTTP request handlers (admin, voting, results, events)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, error mapping
  - models: Request/response types
  - auth: Caller principal extraction and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
