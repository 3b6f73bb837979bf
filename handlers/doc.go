// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the casino installation wizard.

# Handler Types

Each handler is a struct wrapping an *installer.Installer:

  - InstallHandler: The four-step wizard (requirements, database, install, complete)
  - StatusHandler: Machine-readable installation state

Handlers are created via constructor functions:

	installHandler := handlers.NewInstallHandler(inst, renderer, rec)
	statusHandler := handlers.NewStatusHandler(inst)

# Wizard Flow

All wizard traffic goes through one path; the step is a query parameter
and the transition is looked up in the wizard table:

	GET  /install?step=requirements → run checks, render
	POST /install?step=requirements → run checks, 303 to database when ready
	GET  /install?step=database     → render form (defaults or pending settings)
	POST /install?step=database     → test connection, save pending, 303 to install
	GET  /install?step=install      → render summary of pending settings
	POST /install?step=install      → run installation, 303 to complete
	GET  /install?step=complete     → render lock details

Once install.lock exists every request not for exactly step=complete
answers 302 to complete, whatever the step or method. Before that, an
unknown step is a 400 and an unsupported method a 405. HEAD only renders.

POST install normally uses the pending settings below. Without them, the
posted form (db_host ... site_url) is used directly.

# Pending Settings

The database step stores the accepted form in instance/install.pending.json
so the install step can run after the redirect. Finalizing the
installation removes it.
*/
package handlers
