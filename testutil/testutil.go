// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/casino-install/cliparse"
	"github.com/danielhkuo/casino-install/db"
	"github.com/danielhkuo/casino-install/installer"
	"github.com/danielhkuo/casino-install/metrics"
	"github.com/danielhkuo/casino-install/models"
	"github.com/danielhkuo/casino-install/views"
)

// CompanionFiles are the platform sources the requirements step looks for
var CompanionFiles = []string{"app.py", "main.py", "models.py"}

// TestAdminPass is the admin password used by DatabaseForm
const TestAdminPass = "s3cret-Pa55"

// SetupTestRoot creates an install root that passes the requirements
// step: companion files present and the instance directory in place.
func SetupTestRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range CompanionFiles {
		if err := os.WriteFile(filepath.Join(root, name), []byte("# casino platform\n"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(root, "instance"), 0o755); err != nil {
		t.Fatalf("Failed to create instance dir: %v", err)
	}
	return root
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8088,
		DatabaseType:   string(db.SQLite),
		LogMode:        "silent",
		ConnectTimeout: 5 * time.Second,
	}
}

// NewTestInstaller builds a SQLite installer rooted at root
func NewTestInstaller(t *testing.T, root string, rec *metrics.Recorder) *installer.Installer {
	t.Helper()

	cfg := GetTestConfig()
	inst, err := installer.New(installer.Options{
		Root:           root,
		Dialect:        db.SQLite,
		ConnectTimeout: cfg.ConnectTimeout,
		Metrics:        rec,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("Failed to create installer: %v", err)
	}
	return inst
}

// NewTestRenderer parses the wizard views
func NewTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()

	r, err := views.New(nil)
	if err != nil {
		t.Fatalf("Failed to parse views: %v", err)
	}
	return r
}

// DatabaseForm is a complete database step submission for SQLite
func DatabaseForm(dbFile string) url.Values {
	return url.Values{
		models.FieldDBName:    {dbFile},
		models.FieldAdminUser: {"pit_boss"},
		models.FieldAdminPass: {TestAdminPass},
		models.FieldSiteName:  {"Lucky Seven"},
		models.FieldSiteURL:   {"https://casino.example"},
	}
}

// MakeFormRequest creates a POST request with a urlencoded body
func MakeFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// Serve runs req through h and returns the recorded response
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks the status code and Location header
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, code int, location string) {
	t.Helper()
	AssertStatus(t, w, code)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected Location '%s', got '%s'", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v. Body: %s", err, w.Body.String())
	}
}
