// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles caller identity extraction for the Electorate API.

Electorate does not authenticate anyone. Deployments run the server
behind an authenticating gateway that verifies the caller and forwards
their opaque principal identifier in the X-Principal header. This
package pulls that identifier off the request and checks its shape
(non-empty, bounded, no whitespace or control characters) - nothing
more. Role checks (admin vs enrolled voter) live in the election
package.

	principal, err := auth.PrincipalFromRequest(r)

HashIP produces salted one-way hashes of client IPs for privacy-safe
audit logging.
*/
package auth
