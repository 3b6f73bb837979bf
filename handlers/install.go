// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/danielhkuo/casino-install/installer"
	"github.com/danielhkuo/casino-install/metrics"
	"github.com/danielhkuo/casino-install/models"
	"github.com/danielhkuo/casino-install/views"
	"github.com/danielhkuo/casino-install/wizard"
)

// maxFormBytes caps the wizard form body
const maxFormBytes = 64 << 10

type InstallHandler struct {
	inst    *installer.Installer
	machine *wizard.Machine
	views   *views.Renderer
	metrics *metrics.Recorder
}

func NewInstallHandler(inst *installer.Installer, renderer *views.Renderer, rec *metrics.Recorder) *InstallHandler {
	return &InstallHandler{
		inst:    inst,
		machine: wizard.MustMachine(wizard.DefaultTable()),
		views:   renderer,
		metrics: rec,
	}
}

// Install handles GET and POST /install?step=...
// Once install.lock exists every request not for complete, known step or
// not, redirects to complete.
func (h *InstallHandler) Install(w http.ResponseWriter, r *http.Request) {
	rawStep := r.URL.Query().Get("step")
	if to, redirect := wizard.Gate(h.inst.IsInstalled(), rawStep); redirect {
		h.redirect(w, r, to, http.StatusFound)
		return
	}

	step, tr, err := h.machine.Resolve(rawStep, r.Method)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, wizard.ErrUnknownVerb) {
			status = http.StatusMethodNotAllowed
		}
		http.Error(w, err.Error(), status)
		return
	}
	h.metrics.ObserveRequest(string(step), r.Method)

	ctx := r.Context()
	page := views.Page{Step: step, Dialect: string(h.inst.Dialect())}
	var rep installer.Report

	switch tr.Action {
	case wizard.ActionCheckRequirements:
		page.Ready = rep.Add(h.inst.CheckRequirements(ctx))
		if page.Ready && tr.Next != "" {
			h.redirect(w, r, tr.Next, http.StatusSeeOther)
			return
		}

	case wizard.ActionTestConnection:
		page.Config = h.defaultConfig(r)
		if err := h.parseForm(w, r, &page.Config); err != nil {
			rep.Fail("Invalid form submission: %v", err)
			break
		}
		if err := h.inst.ValidateConfig(page.Config); err != nil {
			rep.Fail("Invalid configuration: %v", err)
			break
		}
		if !rep.Add(h.inst.TestDatabaseConnection(ctx, page.Config)) {
			break
		}
		if err := h.inst.SavePending(page.Config); err != nil {
			slog.Error("failed to save pending config", "error", err)
			rep.Fail("Failed to save database settings: %v", err)
			break
		}
		h.redirect(w, r, tr.Next, http.StatusSeeOther)
		return

	case wizard.ActionInstall:
		// Settings come from the database step, or from a form posted
		// straight to this step.
		cfg, pending, err := h.inst.LoadPending()
		if err != nil {
			slog.Error("failed to load pending config", "error", err)
			rep.Fail("Failed to load database settings: %v", err)
			break
		}
		if !pending {
			cfg = h.defaultConfig(r)
		}
		if err := h.parseForm(w, r, &cfg); err != nil {
			rep.Fail("Invalid form submission: %v", err)
			break
		}
		page.Config = cfg
		if !pending && !r.PostForm.Has(models.FieldDBName) {
			rep.Fail("Database settings missing. Complete the database step first.")
			break
		}
		if rep.Add(h.inst.Install(ctx, cfg)) {
			h.redirect(w, r, tr.Next, http.StatusSeeOther)
			return
		}

	case wizard.ActionRender:
		switch step {
		case wizard.Database:
			page.Config = h.defaultConfig(r)
			if cfg, ok, err := h.inst.LoadPending(); err == nil && ok {
				page.Config = cfg
			}
		case wizard.Install:
			if cfg, ok := h.pendingConfig(&rep); ok {
				page.Config = cfg
			}
		case wizard.Complete:
			if lock, err := h.inst.ReadLock(); err == nil {
				page.Lock = &lock
			} else if h.inst.IsInstalled() {
				slog.Warn("failed to read lock file", "error", err)
			}
		}
	}

	page.Success = rep.Successes()
	page.Errors = rep.Errors()
	h.render(w, page)
}

// pendingConfig loads the settings accepted by the database step
func (h *InstallHandler) pendingConfig(rep *installer.Report) (models.InstallConfig, bool) {
	cfg, ok, err := h.inst.LoadPending()
	if err != nil {
		slog.Error("failed to load pending config", "error", err)
		rep.Fail("Failed to load database settings: %v", err)
		return cfg, false
	}
	if !ok {
		rep.Fail("Database settings missing. Complete the database step first.")
		return cfg, false
	}
	return cfg, true
}

// defaultConfig is the database form before the operator edits it
func (h *InstallHandler) defaultConfig(r *http.Request) models.InstallConfig {
	cfg := h.inst.DefaultConfig()
	cfg.SiteURL = siteURL(r)
	return cfg
}

// parseForm overlays the posted fields onto cfg. Absent fields keep
// their current value; present but empty fields are taken as empty.
func (h *InstallHandler) parseForm(w http.ResponseWriter, r *http.Request, cfg *models.InstallConfig) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return err
	}

	fields := map[string]*string{
		models.FieldDBHost:    &cfg.DBHost,
		models.FieldDBPort:    &cfg.DBPort,
		models.FieldDBName:    &cfg.DBName,
		models.FieldDBUser:    &cfg.DBUser,
		models.FieldDBPass:    &cfg.DBPass,
		models.FieldAdminUser: &cfg.AdminUser,
		models.FieldAdminPass: &cfg.AdminPass,
		models.FieldSiteName:  &cfg.SiteName,
		models.FieldSiteURL:   &cfg.SiteURL,
	}
	for name, dst := range fields {
		if vs, ok := r.PostForm[name]; ok && len(vs) > 0 {
			*dst = strings.TrimSpace(vs[0])
		}
	}
	// Passwords are taken verbatim
	if vs, ok := r.PostForm[models.FieldDBPass]; ok && len(vs) > 0 {
		cfg.DBPass = vs[0]
	}
	if vs, ok := r.PostForm[models.FieldAdminPass]; ok && len(vs) > 0 {
		cfg.AdminPass = vs[0]
	}
	return nil
}

// siteURL derives the public URL from the request: scheme, host and the
// directory the installer is served from.
func siteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return strings.TrimSuffix(scheme+"://"+r.Host+path.Dir(r.URL.Path), "/")
}

func (h *InstallHandler) redirect(w http.ResponseWriter, r *http.Request, step wizard.Step, code int) {
	http.Redirect(w, r, r.URL.Path+"?step="+string(step), code)
}

func (h *InstallHandler) render(w http.ResponseWriter, page views.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, page); err != nil {
		slog.Error("failed to render view", "step", page.Step, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
