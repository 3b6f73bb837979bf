// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package installer

import (
	"context"
	"database/sql"
	"errors"
	"go/version"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/danielhkuo/casino-install/auth"
	"github.com/danielhkuo/casino-install/db"
)

// Requirements is the fixed checklist evaluated by CheckRequirements.
// Directories and Files are relative to the install root.
type Requirements struct {
	MinGoVersion string
	Drivers      []string
	Directories  []string
	Files        []string
}

// primitiveChecks is the number of entries checkPrimitives always produces
const primitiveChecks = 4

// DefaultRequirements is what the casino platform needs on the host
func DefaultRequirements() Requirements {
	return Requirements{
		MinGoVersion: "go1.22",
		Drivers:      db.RequiredDrivers(),
		Directories:  []string{"uploads", "instance", "static/uploads"},
		Files:        []string{"app.py", "main.py", "models.py"},
	}
}

// Count is the number of report entries a full check produces
func (r Requirements) Count() int {
	return 1 + len(r.Drivers) + primitiveChecks + len(r.Directories) + len(r.Files)
}

// CheckRequirements runs every check to completion and reports each one.
// Missing directories are created along the way.
func (i *Installer) CheckRequirements(ctx context.Context) Result {
	var r Result

	i.checkGoVersion(&r)
	i.checkDrivers(&r)
	i.checkPrimitives(&r)
	i.checkDirectories(&r)
	i.checkFiles(&r)

	r = r.done()
	i.log.InfoContext(ctx, "requirements checked",
		"passed", len(r.Success),
		"failed", len(r.Errors),
	)
	i.observe(OpRequirements, r.OK)
	return r
}

func (i *Installer) checkGoVersion(r *Result) {
	current := i.goVersion()
	if version.Compare(current, i.reqs.MinGoVersion) < 0 {
		r.fail("Go version %s or higher required. Current: %s", i.reqs.MinGoVersion, current)
		return
	}
	r.pass("Go version %s", current)
}

func (i *Installer) checkDrivers(r *Result) {
	registered := sql.Drivers()
	for _, name := range i.reqs.Drivers {
		if !slices.Contains(registered, name) {
			r.fail("Required database driver missing: %s", name)
			continue
		}
		r.pass("Database driver %s", name)
	}
}

// checkPrimitives exercises the host operations the later steps rely on,
// inside a scratch directory that is removed afterwards.
func (i *Installer) checkPrimitives(r *Result) {
	scratch := i.path(".install-probe")
	defer i.sys.RemoveAll(scratch)

	if _, err := auth.GenerateSecret(auth.SessionSecretBytes); err != nil {
		r.fail("Secure random source unavailable: %v", err)
	} else {
		r.pass("Secure random source")
	}

	dir := filepath.Join(scratch, "dir")
	if err := i.sys.MkdirAll(dir, 0o755); err != nil {
		r.fail("Directory creation unavailable: %v", err)
	} else {
		r.pass("Directory creation")
	}

	file := filepath.Join(dir, "file")
	if err := i.sys.WriteFile(file, []byte("probe"), 0o644); err != nil {
		r.fail("File write unavailable: %v", err)
	} else {
		r.pass("File write")
	}

	if err := i.sys.Chmod(file, 0o600); err != nil {
		r.fail("Permission change unavailable: %v", err)
	} else {
		r.pass("Permission change")
	}
}

func (i *Installer) checkDirectories(r *Result) {
	for _, dir := range i.reqs.Directories {
		path := i.path(dir)

		info, err := i.sys.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if err := i.sys.MkdirAll(path, 0o755); err != nil {
				i.log.Warn("cannot create directory", "dir", dir, "error", err)
				r.fail("Cannot create directory: %s", dir)
				continue
			}
			i.log.Info("directory created", "dir", dir)
		case err != nil:
			r.fail("Cannot access directory %s: %v", dir, err)
			continue
		case !info.IsDir():
			r.fail("Not a directory: %s", dir)
			continue
		}

		if err := i.writable(path); err != nil {
			if cerr := i.sys.Chmod(path, 0o755); cerr != nil || i.writable(path) != nil {
				i.log.Warn("directory not writable", "dir", dir, "error", err)
				r.fail("Directory not writable: %s", dir)
				continue
			}
			i.log.Info("directory permissions repaired", "dir", dir)
		}

		r.pass("Directory %s writable", dir)
	}
}

func (i *Installer) checkFiles(r *Result) {
	for _, file := range i.reqs.Files {
		if _, err := i.sys.Stat(i.path(file)); err != nil {
			r.fail("Required file missing: %s", file)
			continue
		}
		r.pass("File %s found", file)
	}
}

// writable probes dir by creating and removing a file in it
func (i *Installer) writable(dir string) error {
	probe := filepath.Join(dir, ".write-probe")
	if err := i.sys.WriteFile(probe, nil, 0o600); err != nil {
		return err
	}
	return i.sys.Remove(probe)
}
