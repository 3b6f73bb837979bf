// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"

	"github.com/danielhkuo/casino-install/handlers"
	"github.com/danielhkuo/casino-install/installer"
	"github.com/danielhkuo/casino-install/metrics"
	"github.com/danielhkuo/casino-install/middleware"
	"github.com/danielhkuo/casino-install/views"
)

// InstallPath is where the wizard is served
const InstallPath = "/install"

func NewRouter(inst *installer.Installer, renderer *views.Renderer, rec *metrics.Recorder) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	// Initialize handlers
	installHandler := handlers.NewInstallHandler(inst, renderer, rec)
	statusHandler := handlers.NewStatusHandler(inst)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Wizard. The handler answers unsupported methods itself.
	r.Handle(InstallPath, middleware.NoStore(gzhttp.GzipHandler(middleware.WithLogging(installHandler.Install))))

	// Installation state
	r.Get("/status", middleware.WithLogging(statusHandler.Status))

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", rec.Handler())

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, InstallPath, http.StatusFound)
	})

	return r
}
