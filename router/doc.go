// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the casino installation wizard.

# Route Registration

NewRouter creates a chi.Mux with all endpoints:

	mux := router.NewRouter(inst, renderer, rec)

Every request gets a request ID and panic recovery from chi's middleware.

# Endpoints

Health:

	GET /health

Wizard (gzip compressed, Cache-Control: no-store):

	GET|POST /install?step={requirements,database,install,complete}

Installation state and metrics:

	GET /status  - JSON, installed flag and lock record
	GET /metrics - Prometheus text format

Root:

	GET / - 302 to /install
*/
package router
