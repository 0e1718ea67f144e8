// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers for
the Electorate API.

# Components

  - WithLogging: request/completion logging via slog
  - CORS: cross-origin support with preflight handling
  - JSONResponse / ErrorResponse: uniform JSON response writing
  - ElectionError: maps election guard failures to HTTP statuses
  - ParseJSONBody: request body decoding
  - GetClientIP: client IP extraction behind proxies

# Error mapping

Every rejected election operation surfaces one sentinel from the
election package. ElectionError translates them:

	ErrUnauthorized              -> 403 Forbidden
	ErrInvalidProposalIndex      -> 404 Not Found
	ErrInvalidPhase              -> 409 Conflict
	ErrAlreadyRegistered         -> 409 Conflict
	ErrAlreadyVoted              -> 409 Conflict
	ErrNotYetTallied             -> 409 Conflict
	ErrNoProposals               -> 409 Conflict
	missing/malformed principal  -> 400 Bad Request

Anything else is logged and reported as a 500 without leaking detail.
*/
package middleware
