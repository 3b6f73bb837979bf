// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8088)
  - Root: Install root, made absolute (default: current directory)
  - DatabaseType: mysql, postgres or sqlite (default: mysql)
  - LogMode: dev, prod or silent (default: dev)
  - ConnectTimeout: Database dial timeout (default: 10s)
  - HashAdminPass: Write DEFAULT_ADMIN_PASS_HASH instead of the plaintext

# CLI Flags

	-p, --port            Server port
	-r, --root            Install root
	-t, --database-type   Database type
	--log-mode            Log mode
	--connect-timeout     Database connect timeout
	--hash-admin-pass     Hash the admin password in .env

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	INSTALL_ROOT    → -r
	DATABASE_TYPE   → -t
	LOG_MODE        → --log-mode
	CONNECT_TIMEOUT → --connect-timeout
	HASH_ADMIN_PASS → --hash-admin-pass

CLI flags take precedence over environment variables.
*/
package cliparse
