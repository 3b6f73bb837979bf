// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the casino platform installer.

The installer is a small web wizard that prepares a fresh host for the
casino platform: it checks the host, tests the database connection,
creates the schema, writes .env and .htaccess, seeds default data and
finally writes install.lock so it cannot run twice.

# Starting the Server

Run it from the platform's directory, or point it there:

	go run . -r /srv/casino -t mysql

Then open http://localhost:8088/install in a browser.

# Configuration

Flags fall back to environment variables:

  - PORT (-p): Server port (default: 8088)
  - INSTALL_ROOT (-r): Directory receiving .env, .htaccess and install.lock (default: .)
  - DATABASE_TYPE (-t): mysql, postgres or sqlite (default: mysql)
  - LOG_MODE (--log-mode): dev, prod or silent (default: dev)
  - CONNECT_TIMEOUT (--connect-timeout): Database connect timeout (default: 10s)
  - HASH_ADMIN_PASS (--hash-admin-pass): Store a bcrypt hash of the admin password in .env

# Architecture

  - handlers: Wizard and status HTTP handlers
  - router: chi routes, gzip and request IDs
  - wizard: Step/verb transition table
  - installer: Requirements, connection test, schema, artifacts, lock
  - views: Embedded HTML templates
  - db: Dialects, DSNs, schema and seed data
  - metrics: Prometheus counters
  - middleware: Logging, no-store, JSON helpers
  - models: Form, lock and response types
  - auth: Secrets and password hashing
  - logger: slog handler selection
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
