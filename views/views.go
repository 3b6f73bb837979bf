// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the wizard's HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/casino-install/installer"
	"github.com/danielhkuo/casino-install/models"
	"github.com/danielhkuo/casino-install/wizard"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every step template receives
type Page struct {
	Step    wizard.Step
	Steps   []wizard.Step
	Dialect string
	Config  models.InstallConfig
	Success []string
	Errors  []string
	// Ready enables the continue button on the requirements step
	Ready bool
	Lock  *models.LockInfo
}

var messageTitles = map[wizard.Step][2]string{
	wizard.Requirements: {"Requirements Met:", "Issues Found:"},
	wizard.Database:     {"Connection:", "Database Connection Error:"},
	wizard.Install:      {"Installation Progress:", "Installation Errors:"},
	wizard.Complete:     {"Done:", "Errors:"},
}

func (p Page) SuccessTitle() string {
	return messageTitles[p.Step][0]
}

func (p Page) ErrorTitle() string {
	return messageTitles[p.Step][1]
}

// Renderer holds one parsed template set per step
type Renderer struct {
	pages map[wizard.Step]*template.Template
	now   func() time.Time
}

// New parses the embedded templates. now is used for relative times; nil
// means time.Now.
func New(now func() time.Time) (*Renderer, error) {
	if now == nil {
		now = time.Now
	}
	r := &Renderer{
		pages: make(map[wizard.Step]*template.Template, len(wizard.Steps)),
		now:   now,
	}

	base, err := template.New("layout.html").Funcs(r.funcs()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	for _, step := range wizard.Steps {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", step, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+string(step)+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse %s view: %w", step, err)
		}
		r.pages[step] = t
	}

	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"stepClass": func(current, step wizard.Step) string {
			switch {
			case step == current:
				return "active"
			case step.Number() < current.Number():
				return "completed"
			}
			return ""
		},
		// ago renders a lock timestamp as "3 minutes ago"
		"ago": func(installedAt string) string {
			t, err := time.ParseInLocation(installer.LockTimeFormat, installedAt, time.Local)
			if err != nil {
				return installedAt
			}
			return humanize.RelTime(t, r.now(), "ago", "from now")
		},
		"dialectName": func(d string) string {
			switch d {
			case "postgres":
				return "PostgreSQL"
			case "sqlite":
				return "SQLite"
			}
			return "MySQL"
		},
	}
}

// Render writes the page for p.Step. The page is rendered to a buffer
// first so a template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, p Page) error {
	t, ok := r.pages[p.Step]
	if !ok {
		return fmt.Errorf("%w: %q", wizard.ErrUnknownStep, p.Step)
	}
	if p.Steps == nil {
		p.Steps = wizard.Steps
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("failed to render %s view: %w", p.Step, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
