// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package installer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/casino-install/auth"
	"github.com/danielhkuo/casino-install/models"
)

// Keys written to the .env file
const (
	EnvDatabaseURL      = "DATABASE_URL"
	EnvSessionSecret    = "SESSION_SECRET"
	EnvSiteName         = "SITE_NAME"
	EnvSiteURL          = "SITE_URL"
	EnvDefaultAdminUser = "DEFAULT_ADMIN_USER"
	EnvDefaultAdminPass = "DEFAULT_ADMIN_PASS"
	EnvDefaultAdminHash = "DEFAULT_ADMIN_PASS_HASH"
)

const htaccess = `# Casino Platform .htaccess
# Rewritten by the installer on every install

Options -Indexes
RewriteEngine On

# Security headers
<IfModule mod_headers.c>
    Header always set X-Frame-Options DENY
    Header always set X-Content-Type-Options nosniff
    Header always set X-XSS-Protection "1; mode=block"
    Header always set Strict-Transport-Security "max-age=31536000; includeSubDomains"
</IfModule>

# Hide sensitive files
<FilesMatch "^(\.env|install\.lock|install\.pending\.json)$">
    Require all denied
</FilesMatch>

# Hide application sources
<FilesMatch "\.(py|pyc)$">
    Require all denied
</FilesMatch>

# Uploads are served as-is
RewriteRule ^(static/)?uploads/ - [L]

# Cache static files
<IfModule mod_expires.c>
    ExpiresActive On
    ExpiresByType text/css "access plus 1 month"
    ExpiresByType application/javascript "access plus 1 month"
    ExpiresByType image/png "access plus 1 month"
    ExpiresByType image/jpg "access plus 1 month"
    ExpiresByType image/jpeg "access plus 1 month"
    ExpiresByType image/gif "access plus 1 month"
</IfModule>
`

// HtaccessContent returns the fixed ruleset written by CreateHtaccess
func HtaccessContent() string {
	return htaccess
}

// CreateConfigFile writes the platform's .env, replacing any existing one.
// The file holds credentials, so it is written 0600.
func (i *Installer) CreateConfigFile(cfg models.InstallConfig) Result {
	var r Result

	content, err := i.renderEnv(cfg)
	if err == nil {
		err = i.sys.WriteFileAtomic(i.path(EnvFile), []byte(content), 0o600)
	}
	if err != nil {
		i.log.Error("config file write failed", "error", err)
		r.fail("Failed to create configuration file: %v", err)
	} else {
		i.log.Info("config file written", "path", EnvFile, "hashed_admin_pass", i.hashAdminPass)
		r.pass("Configuration file created")
	}

	r = r.done()
	i.observe(OpConfig, r.OK)
	return r
}

func (i *Installer) renderEnv(cfg models.InstallConfig) (string, error) {
	databaseURL, err := i.dialect.AppURL(i.ConnParams(cfg))
	if err != nil {
		return "", err
	}
	secret, err := auth.GenerateSecret(auth.SessionSecretBytes)
	if err != nil {
		return "", err
	}

	passKey, passValue := EnvDefaultAdminPass, cfg.AdminPass
	if i.hashAdminPass {
		hash, err := auth.HashPassword(cfg.AdminPass)
		if err != nil {
			return "", err
		}
		passKey, passValue = EnvDefaultAdminHash, hash
	}

	sections := []struct {
		title string
		vars  [][2]string
	}{
		{"Database Configuration", [][2]string{{EnvDatabaseURL, databaseURL}}},
		{"Session Configuration", [][2]string{{EnvSessionSecret, secret}}},
		{"Site Configuration", [][2]string{{EnvSiteName, cfg.SiteName}, {EnvSiteURL, cfg.SiteURL}}},
		{"Admin Configuration", [][2]string{{EnvDefaultAdminUser, cfg.AdminUser}, {passKey, passValue}}},
	}

	var b strings.Builder
	b.WriteString("# Casino Platform Configuration\n")
	fmt.Fprintf(&b, "# Generated by the installer on %s\n", i.now().Format(LockTimeFormat))
	for _, s := range sections {
		fmt.Fprintf(&b, "\n# %s\n", s.title)
		for _, kv := range s.vars {
			line, err := envLine(kv[0], kv[1])
			if err != nil {
				return "", err
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// envLine renders one KEY=value line. godotenv writes integer-looking
// values bare, which would turn "007" into 7, so those are single-quoted.
func envLine(key, value string) (string, error) {
	if n, err := strconv.Atoi(value); err == nil && strconv.Itoa(n) != value {
		return key + "='" + value + "'", nil
	}
	return godotenv.Marshal(map[string]string{key: value})
}

// CreateHtaccess writes the fixed web-server ruleset
func (i *Installer) CreateHtaccess() Result {
	var r Result

	if err := i.sys.WriteFileAtomic(i.path(HtaccessFile), []byte(htaccess), 0o644); err != nil {
		i.log.Error("htaccess write failed", "error", err)
		r.fail("Failed to create .htaccess file: %v", err)
	} else {
		r.pass(".htaccess file created")
	}

	r = r.done()
	i.observe(OpHtaccess, r.OK)
	return r
}

// FinalizeInstallation creates install.lock. Creation is exclusive, so of
// two concurrent installs only one can finalize.
func (i *Installer) FinalizeInstallation(cfg models.InstallConfig) Result {
	var r Result

	info := models.LockInfo{
		InstalledAt: i.now().Format(LockTimeFormat),
		Version:     models.Version,
		Database:    cfg.DBName,
		AdminUser:   cfg.AdminUser,
		InstallID:   uuid.NewString(),
	}

	data, err := json.Marshal(info)
	if err == nil {
		err = i.sys.CreateExclusive(i.path(LockFile), data, 0o644)
		if errors.Is(err, fs.ErrExist) {
			err = ErrAlreadyInstalled
		}
	}
	if err != nil {
		i.log.Error("lock file write failed", "error", err)
		r.fail("Failed to create installation lock file: %v", err)
	} else {
		i.log.Info("installation complete", "install_id", info.InstallID, "database", info.Database)
		if err := i.ClearPending(); err != nil {
			i.log.Warn("failed to remove pending config", "error", err)
		}
		r.pass("Installation completed successfully")
	}

	r = r.done()
	i.observe(OpFinalize, r.OK)
	return r
}

// IsInstalled reports whether the lock file exists
func (i *Installer) IsInstalled() bool {
	_, err := i.sys.Stat(i.path(LockFile))
	return err == nil
}

// ReadLock returns the record written by FinalizeInstallation
func (i *Installer) ReadLock() (models.LockInfo, error) {
	var info models.LockInfo

	data, err := i.sys.ReadFile(i.path(LockFile))
	if err != nil {
		return info, fmt.Errorf("failed to read lock file: %w", err)
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return info, fmt.Errorf("failed to parse lock file: %w", err)
	}
	return info, nil
}

// SavePending stores the config accepted by the database step so the
// install step can reuse it.
func (i *Installer) SavePending(cfg models.InstallConfig) error {
	path := i.path(PendingFile)
	if err := i.sys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create pending config directory: %w", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode pending config: %w", err)
	}
	if err := i.sys.WriteFileAtomic(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write pending config: %w", err)
	}
	return nil
}

// LoadPending returns the saved config; ok is false when none was saved
func (i *Installer) LoadPending() (cfg models.InstallConfig, ok bool, err error) {
	data, err := i.sys.ReadFile(i.path(PendingFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("failed to read pending config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, false, fmt.Errorf("failed to parse pending config: %w", err)
	}
	return cfg, true, nil
}

// ClearPending removes the saved config; a missing file is not an error
func (i *Installer) ClearPending() error {
	err := i.sys.Remove(i.path(PendingFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove pending config: %w", err)
	}
	return nil
}
