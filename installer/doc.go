// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package installer performs the side effects of the installation wizard.

# Operations

Each operation returns a Result holding its outcome and the messages it
produced. Nothing is shared between calls; a request collects results in
a Report:

	var rep installer.Report
	if rep.Add(inst.TestDatabaseConnection(ctx, cfg)) {
		// advance to the install step
	}

The operations are:

  - CheckRequirements: Go version, drivers, host primitives, writable
    directories and companion files. Every check always runs.
  - TestDatabaseConnection: one connect and ping, no retries
  - CreateDatabaseTables: the dialect schema as one batch
  - CreateConfigFile: the platform's .env (0600)
  - CreateHtaccess: the fixed Apache ruleset
  - InsertDefaultData: admin, site settings and payment methods
  - FinalizeInstallation: install.lock, created exclusively

Install chains tables, config, htaccess and seed, stopping at the first
failure, then finalizes. Steps that already ran are not undone; each one
is safe to repeat, so the operator fixes the cause and resubmits.

# Artifacts

All paths are relative to the install root:

	.env                           database URL, session secret, site and admin settings
	.htaccess                      deny rules, security headers, cache rules
	install.lock                   JSON record; its presence means installed
	instance/install.pending.json  database form accepted by the database step

# Filesystem

Every filesystem call goes through System. RealSystem uses the OS;
tests substitute implementations that fail on chosen paths.
*/
package installer
