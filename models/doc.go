// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request and response types for the
Electorate API.

# Conventions

Request types are named for the operation they drive
(RegisterVoterRequest, CastVoteRequest). CastVoteRequest uses a pointer
for the proposal index so that an omitted field fails validation
instead of silently voting for proposal 0.

Response and view types mirror what the election exposes: proposals
with their running vote counts (votes are public in this system),
voter ballot records, the workflow phase as its snake_case string, and
the ranked results table once the tally has run.

ErrorResponse is the uniform error body written by
middleware.ErrorResponse for every failure.
*/
package models
