// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/casino-install/models"
	"github.com/danielhkuo/casino-install/wizard"
)

func newRenderer(t *testing.T, now time.Time) *Renderer {
	t.Helper()
	r, err := New(func() time.Time { return now })
	require.NoError(t, err)
	return r
}

func render(t *testing.T, r *Renderer, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))
	return buf.String()
}

func TestRenderEveryStep(t *testing.T) {
	r := newRenderer(t, time.Now())

	for _, step := range wizard.Steps {
		t.Run(string(step), func(t *testing.T) {
			html := render(t, r, Page{Step: step, Dialect: "mysql"})
			assert.Contains(t, html, "<title>Casino Platform Installation - "+step.Title()+"</title>")
			assert.Contains(t, html, `class="step active"`)
		})
	}
}

func TestRenderRequirements(t *testing.T) {
	r := newRenderer(t, time.Now())

	ready := render(t, r, Page{
		Step:    wizard.Requirements,
		Success: []string{"Go version go1.25.3"},
		Ready:   true,
	})
	assert.Contains(t, ready, "Requirements Met:")
	assert.Contains(t, ready, "Go version go1.25.3")
	assert.Contains(t, ready, "Continue to Database Setup")
	assert.NotContains(t, ready, "Please Fix Issues First")

	blocked := render(t, r, Page{
		Step:   wizard.Requirements,
		Errors: []string{"Required file missing: app.py"},
	})
	assert.Contains(t, blocked, "Issues Found:")
	assert.Contains(t, blocked, "Required file missing: app.py")
	assert.Contains(t, blocked, "Please Fix Issues First")
}

func TestRenderDatabaseForm(t *testing.T) {
	r := newRenderer(t, time.Now())

	html := render(t, r, Page{
		Step:    wizard.Database,
		Dialect: "mysql",
		Config: models.InstallConfig{
			DBHost:    "localhost",
			DBPort:    "3306",
			DBPass:    "secret-db-pass",
			AdminUser: "admin",
			AdminPass: "secret-admin-pass",
			SiteName:  `Casino <"Royale">`,
		},
		Errors: []string{"Database connection failed: dial tcp 127.0.0.1:1: connect: connection refused"},
	})

	for _, field := range []string{
		models.FieldDBHost, models.FieldDBPort, models.FieldDBName, models.FieldDBUser, models.FieldDBPass,
		models.FieldAdminUser, models.FieldAdminPass, models.FieldSiteName, models.FieldSiteURL,
	} {
		assert.Contains(t, html, `name="`+field+`"`)
	}
	assert.Contains(t, html, "Enter your MySQL database details")
	assert.Contains(t, html, "Database Connection Error:")
	assert.Contains(t, html, `value="localhost"`)
	assert.Contains(t, html, "Casino &lt;&#34;Royale&#34;&gt;", "values are escaped")
	assert.NotContains(t, html, "secret-db-pass", "passwords are never echoed")
	assert.NotContains(t, html, "secret-admin-pass", "passwords are never echoed")
}

func TestRenderDatabaseFormSQLite(t *testing.T) {
	r := newRenderer(t, time.Now())

	html := render(t, r, Page{Step: wizard.Database, Dialect: "sqlite"})

	assert.Contains(t, html, "Database File")
	assert.NotContains(t, html, `name="db_host"`)
	assert.Contains(t, html, `name="admin_pass"`)
}

func TestRenderInstall(t *testing.T) {
	r := newRenderer(t, time.Now())

	ok := render(t, r, Page{Step: wizard.Install, Config: models.InstallConfig{DBName: "casino", AdminUser: "admin"}})
	assert.Contains(t, ok, "Complete Installation")

	failed := render(t, r, Page{
		Step:    wizard.Install,
		Success: []string{"Database tables created successfully"},
		Errors:  []string{"Failed to create configuration file: permission denied"},
	})
	assert.Contains(t, failed, "Installation Progress:")
	assert.Contains(t, failed, "Installation Errors:")
	assert.Contains(t, failed, "Back to Database Setup")
	assert.NotContains(t, failed, "Complete Installation")
}

func TestRenderCompleteShowsRelativeTime(t *testing.T) {
	installed := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)
	r := newRenderer(t, installed.Add(3*time.Minute))

	html := render(t, r, Page{
		Step: wizard.Complete,
		Lock: &models.LockInfo{
			InstalledAt: installed.Format("2006-01-02 15:04:05"),
			Version:     "1.0.0",
			Database:    "casino",
			AdminUser:   "pit_boss",
			InstallID:   "5f0c6a1e-8a4b-4b0e-9c39-0d8f3b1f8d2a",
		},
	})

	assert.Contains(t, html, "3 minutes ago")
	assert.Contains(t, html, "pit_boss")
	assert.Contains(t, html, "5f0c6a1e-8a4b-4b0e-9c39-0d8f3b1f8d2a")
}

func TestRenderStepIndicator(t *testing.T) {
	r := newRenderer(t, time.Now())

	html := render(t, r, Page{Step: wizard.Install})

	assert.Contains(t, html, `<li class="step completed" title="System Requirements">1</li>`)
	assert.Contains(t, html, `<li class="step completed" title="Database Configuration">2</li>`)
	assert.Contains(t, html, `<li class="step active" title="Installation">3</li>`)
	assert.Contains(t, html, `<li class="step " title="Complete">4</li>`)
}

func TestRenderUnknownStep(t *testing.T) {
	r := newRenderer(t, time.Now())
	var buf bytes.Buffer
	assert.ErrorIs(t, r.Render(&buf, Page{Step: "bogus"}), wizard.ErrUnknownStep)
}
