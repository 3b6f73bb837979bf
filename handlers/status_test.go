// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/casino-install/installer"
	"github.com/danielhkuo/casino-install/models"
	"github.com/danielhkuo/casino-install/testutil"
)

func TestStatus(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	inst := testutil.NewTestInstaller(t, root, nil)
	h := NewStatusHandler(inst)

	// Before installation
	w := testutil.Serve(http.HandlerFunc(h.Status), httptest.NewRequest("GET", "/status", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var before models.StatusResponse
	testutil.AssertJSON(t, w, &before)
	if before.Installed {
		t.Error("Expected installed=false before finalize")
	}
	if before.Lock != nil {
		t.Error("Expected no lock before finalize")
	}

	// After installation
	res := inst.FinalizeInstallation(models.InstallConfig{DBName: "casino.db", AdminUser: "pit_boss"})
	if !res.OK {
		t.Fatalf("Failed to finalize: %v", res.Errors)
	}

	w = testutil.Serve(http.HandlerFunc(h.Status), httptest.NewRequest("GET", "/status", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var after models.StatusResponse
	testutil.AssertJSON(t, w, &after)
	if !after.Installed {
		t.Fatal("Expected installed=true after finalize")
	}
	if after.Lock == nil {
		t.Fatal("Expected lock in response")
	}
	if after.Lock.Database != "casino.db" {
		t.Errorf("Expected database 'casino.db', got '%s'", after.Lock.Database)
	}
	if after.Lock.Version != models.Version {
		t.Errorf("Expected version '%s', got '%s'", models.Version, after.Lock.Version)
	}
	if after.Lock.InstallID == "" {
		t.Error("Expected install id in lock")
	}
}

func TestStatus_CorruptLock(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	inst := testutil.NewTestInstaller(t, root, nil)
	h := NewStatusHandler(inst)

	if err := os.WriteFile(filepath.Join(root, installer.LockFile), []byte("not json"), 0o644); err != nil {
		t.Fatalf("Failed to write lock: %v", err)
	}

	w := testutil.Serve(http.HandlerFunc(h.Status), httptest.NewRequest("GET", "/status", nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error == "" {
		t.Error("Expected error message")
	}
}
