// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package installer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/danielhkuo/casino-install/auth"
	"github.com/danielhkuo/casino-install/db"
	"github.com/danielhkuo/casino-install/metrics"
	"github.com/danielhkuo/casino-install/models"
)

// Artifact paths, relative to the install root
const (
	EnvFile      = ".env"
	HtaccessFile = ".htaccess"
	LockFile     = "install.lock"
	PendingFile  = "instance/install.pending.json"
)

// Operation names used in logs and metrics
const (
	OpRequirements = "requirements"
	OpConnection   = "connection"
	OpTables       = "tables"
	OpConfig       = "config"
	OpHtaccess     = "htaccess"
	OpSeed         = "seed"
	OpFinalize     = "finalize"
)

// LockTimeFormat is the layout of installed_at in the lock file
const LockTimeFormat = "2006-01-02 15:04:05"

// DefaultConnectTimeout bounds every connection attempt
const DefaultConnectTimeout = 10 * time.Second

var (
	ErrAlreadyInstalled = errors.New("installation already completed")
	ErrNoRoot           = errors.New("install root required")
	ErrIncompleteConfig = errors.New("incomplete configuration")
)

type Options struct {
	Root           string
	Dialect        db.Dialect
	ConnectTimeout time.Duration
	// HashAdminPass writes DEFAULT_ADMIN_PASS_HASH instead of the plaintext password
	HashAdminPass bool
	Requirements  *Requirements
	System        System
	Metrics       *metrics.Recorder
	Logger        *slog.Logger
	Now           func() time.Time
}

// Installer performs the installation steps against one install root.
// It holds no per-request state; every operation returns its own Result.
type Installer struct {
	root          string
	dialect       db.Dialect
	timeout       time.Duration
	hashAdminPass bool
	reqs          Requirements
	sys           System
	metrics       *metrics.Recorder
	log           *slog.Logger
	now           func() time.Time
	goVersion     func() string
}

func New(opts Options) (*Installer, error) {
	if opts.Root == "" {
		return nil, ErrNoRoot
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve install root: %w", err)
	}

	dialect := opts.Dialect
	if dialect == "" {
		dialect = db.MySQL
	}
	if dialect, err = db.ParseDialect(string(dialect)); err != nil {
		return nil, err
	}

	i := &Installer{
		root:          root,
		dialect:       dialect,
		timeout:       opts.ConnectTimeout,
		hashAdminPass: opts.HashAdminPass,
		reqs:          DefaultRequirements(),
		sys:           opts.System,
		metrics:       opts.Metrics,
		log:           opts.Logger,
		now:           opts.Now,
		goVersion:     runtime.Version,
	}
	if opts.Requirements != nil {
		i.reqs = *opts.Requirements
	}
	if i.timeout <= 0 {
		i.timeout = DefaultConnectTimeout
	}
	if i.sys == nil {
		i.sys = RealSystem{}
	}
	if i.log == nil {
		i.log = slog.Default()
	}
	if i.now == nil {
		i.now = time.Now
	}

	return i, nil
}

func (i *Installer) Root() string {
	return i.root
}

func (i *Installer) Dialect() db.Dialect {
	return i.dialect
}

// Requirements returns the checklist this installer evaluates
func (i *Installer) Requirements() Requirements {
	return i.reqs
}

func (i *Installer) path(rel string) string {
	return filepath.Join(i.root, filepath.FromSlash(rel))
}

func (i *Installer) observe(op string, ok bool) {
	i.metrics.ObserveOperation(op, ok)
}

// DefaultSQLiteFile is the database file offered when the dialect is SQLite
const DefaultSQLiteFile = "instance/casino.db"

// DefaultConfig is the form as first presented to the operator. SiteURL is
// left for the caller, which knows the request.
func (i *Installer) DefaultConfig() models.InstallConfig {
	cfg := models.InstallConfig{
		DBHost:    models.DefaultDBHost,
		DBPort:    i.dialect.DefaultPort(),
		AdminUser: models.DefaultAdminUser,
		SiteName:  models.DefaultSiteName,
	}
	if i.dialect == db.SQLite {
		cfg.DBHost = ""
		cfg.DBName = DefaultSQLiteFile
	}
	return cfg
}

// ConnParams maps the form config onto connection parameters. An empty
// port takes the dialect default; a relative SQLite path is resolved
// against the install root.
func (i *Installer) ConnParams(cfg models.InstallConfig) db.ConnParams {
	p := db.ConnParams{
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		Name: cfg.DBName,
		User: cfg.DBUser,
		Pass: cfg.DBPass,
	}
	if p.Port == "" {
		p.Port = i.dialect.DefaultPort()
	}
	if i.dialect == db.SQLite && p.Name != "" && !filepath.IsAbs(p.Name) {
		p.Name = i.path(p.Name)
	}
	return p
}

// ValidateConfig checks the fields every install step depends on, so a
// config that cannot succeed is refused before anything is written.
func (i *Installer) ValidateConfig(cfg models.InstallConfig) error {
	var missing []string
	if cfg.DBName == "" {
		missing = append(missing, models.FieldDBName)
	}
	if i.dialect != db.SQLite {
		if cfg.DBHost == "" {
			missing = append(missing, models.FieldDBHost)
		}
		if cfg.DBUser == "" {
			missing = append(missing, models.FieldDBUser)
		}
	}
	if cfg.AdminUser == "" {
		missing = append(missing, models.FieldAdminUser)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrIncompleteConfig, strings.Join(missing, ", "))
	}
	if err := auth.ValidatePassword(cfg.AdminPass); err != nil {
		return fmt.Errorf("admin %w", err)
	}
	return nil
}

func (i *Installer) open(ctx context.Context, cfg models.InstallConfig) (*sql.DB, error) {
	return db.Open(ctx, i.dialect, i.ConnParams(cfg), i.timeout)
}

// TestDatabaseConnection opens and pings the database once
func (i *Installer) TestDatabaseConnection(ctx context.Context, cfg models.InstallConfig) Result {
	var r Result

	conn, err := i.open(ctx, cfg)
	if err != nil {
		i.log.WarnContext(ctx, "database connection failed",
			"dialect", i.dialect,
			"host", cfg.DBHost,
			"database", cfg.DBName,
			"error", err,
		)
		r.fail("Database connection failed: %v", err)
	} else {
		conn.Close()
		i.log.InfoContext(ctx, "database connection succeeded", "dialect", i.dialect, "database", cfg.DBName)
		r.pass("Database connection successful")
	}

	r = r.done()
	i.observe(OpConnection, r.OK)
	return r
}

// CreateDatabaseTables applies the dialect's schema as one batch
func (i *Installer) CreateDatabaseTables(ctx context.Context, cfg models.InstallConfig) Result {
	var r Result

	err := i.withConn(ctx, cfg, func(conn *sql.DB) error {
		return db.CreateSchema(ctx, conn, i.dialect)
	})
	if err != nil {
		i.log.ErrorContext(ctx, "schema creation failed", "error", err)
		r.fail("Failed to create database tables: %v", err)
	} else {
		i.log.InfoContext(ctx, "schema created", "tables", len(db.Tables))
		r.pass("Database tables created successfully")
	}

	r = r.done()
	i.observe(OpTables, r.OK)
	return r
}

// InsertDefaultData seeds the admin account, site settings and payment
// methods, skipping rows that already exist.
func (i *Installer) InsertDefaultData(ctx context.Context, cfg models.InstallConfig) Result {
	var r Result

	var stats db.SeedStats
	hash, err := auth.HashPassword(cfg.AdminPass)
	if err == nil {
		err = i.withConn(ctx, cfg, func(conn *sql.DB) error {
			var serr error
			stats, serr = db.SeedDefaults(ctx, conn, i.dialect, db.Seed{
				AdminUser:      cfg.AdminUser,
				AdminHash:      hash,
				AdminRole:      models.RoleSuperAdmin,
				SiteName:       cfg.SiteName,
				PaymentMethods: db.DefaultPaymentMethods,
			})
			return serr
		})
	}
	if err != nil {
		i.log.ErrorContext(ctx, "seeding failed", "error", err)
		r.fail("Failed to insert default data: %v", err)
	} else {
		i.log.InfoContext(ctx, "default data inserted",
			"admins", stats.Admins,
			"settings", stats.Settings,
			"payment_methods", stats.PaymentMethods,
		)
		r.pass("Default data inserted successfully")
	}

	r = r.done()
	i.observe(OpSeed, r.OK)
	return r
}

func (i *Installer) withConn(ctx context.Context, cfg models.InstallConfig, fn func(*sql.DB) error) error {
	conn, err := i.open(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

// Install validates cfg, then runs tables, config, htaccess and seed in
// that order, stopping at the first failure, then writes the lock.
// Completed steps are not undone when a later one fails; rerunning is
// safe because each step is idempotent.
func (i *Installer) Install(ctx context.Context, cfg models.InstallConfig) Result {
	var r Result

	if i.IsInstalled() {
		r.fail("Installation failed: %v", ErrAlreadyInstalled)
		return r.done()
	}
	if err := i.ValidateConfig(cfg); err != nil {
		i.log.WarnContext(ctx, "installation refused", "error", err)
		r.fail("Installation failed: %v", err)
		return r.done()
	}

	steps := []struct {
		name string
		run  func() Result
	}{
		{OpTables, func() Result { return i.CreateDatabaseTables(ctx, cfg) }},
		{OpConfig, func() Result { return i.CreateConfigFile(cfg) }},
		{OpHtaccess, func() Result { return i.CreateHtaccess() }},
		{OpSeed, func() Result { return i.InsertDefaultData(ctx, cfg) }},
	}

	for _, step := range steps {
		res := step.run()
		r.merge(res)
		if !res.OK {
			i.log.WarnContext(ctx, "installation halted", "step", step.name)
			return r.done()
		}
	}

	r.merge(i.FinalizeInstallation(cfg))
	return r.done()
}
