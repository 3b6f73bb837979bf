// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/casino-install/installer"
	"github.com/danielhkuo/casino-install/middleware"
	"github.com/danielhkuo/casino-install/models"
)

type StatusHandler struct {
	inst *installer.Installer
}

func NewStatusHandler(inst *installer.Installer) *StatusHandler {
	return &StatusHandler{inst: inst}
}

// Status handles GET /status
// Reports whether the platform is installed and, if so, the lock record.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp := models.StatusResponse{Installed: h.inst.IsInstalled()}

	if resp.Installed {
		lock, err := h.inst.ReadLock()
		if err != nil {
			slog.Error("failed to read lock file", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Lock file unreadable")
			return
		}
		resp.Lock = &lock
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
