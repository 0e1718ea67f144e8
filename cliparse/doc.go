// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing for the Electorate server.

Configuration comes from CLI flags with environment variable fallback;
flags win when both are set.

# Settings

Required:

  - ADMIN_PRINCIPAL (-admin): the fixed administrator principal for
    the hosted election
  - IP_HASH_SALT (-ip-salt): salt for privacy-safe IP hashing in audit
    logs

Optional:

  - PORT (-p): server port (default: 3324)
  - DATABASE_TYPE (-t): journal driver, sqlite or postgres (default:
    sqlite)
  - DATABASE_URL (-d): journal connection string (default:
    file:electorate.db?mode=rwc for sqlite; required for postgres)

The administrator principal is deliberately part of startup
configuration: the election's admin is fixed at creation and never
changes, so it has to be known before the first request.
*/
package cliparse
