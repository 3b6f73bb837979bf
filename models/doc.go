// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the form, artifact, and response types shared by the installer.

# Form Fields

The wizard posts a flat form:

	db_host, db_port, db_name, db_user, db_pass,
	admin_user, admin_pass, site_name, site_url

InstallConfig holds those values after defaults are applied:

	db_host    → "localhost"
	db_port    → dialect default (3306 mysql, 5432 postgres)
	admin_user → "admin"
	site_name  → "Casino Platform"
	site_url   → derived from the request

# Artifact Types

  - LockInfo: the JSON record in install.lock
    (installed_at, version, database, admin_user, install_id)
  - PaymentMethod: a seeded payment_method row

# Response Types

  - StatusResponse: installed, lock
  - ErrorResponse: error, message

# Constants

Admin roles:

	RoleSuperAdmin     = "super_admin"
	RoleGameManager    = "game_manager"
	RolePaymentManager = "payment_manager"
*/
package models
