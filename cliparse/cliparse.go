// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

const (
	defaultPort           = 8088
	defaultDatabaseType   = "mysql"
	defaultLogMode        = "dev"
	defaultConnectTimeout = 10 * time.Second
)

type Config struct {
	Port           int
	Root           string
	DatabaseType   string
	LogMode        string
	ConnectTimeout time.Duration
	HashAdminPass  bool
}

// ParseFlags reads flags, falls back to env, and applies defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("casino-install", pflag.ContinueOnError)

	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.Root, "root", "r", "", "Install root (where .env, .htaccess and install.lock are written)")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (mysql, postgres or sqlite)")
	fs.StringVar(&cfg.LogMode, "log-mode", "", "Log mode (dev, prod or silent)")
	fs.DurationVar(&cfg.ConnectTimeout, "connect-timeout", 0, "Database connect timeout")
	fs.BoolVar(&cfg.HashAdminPass, "hash-admin-pass", false, "Write a bcrypt hash instead of the plaintext admin password to .env")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.Root == "" {
		cfg.Root = os.Getenv("INSTALL_ROOT")
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return Config{}, errors.New("invalid install root")
	}
	cfg.Root = root

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = defaultDatabaseType
		}
	}
	switch cfg.DatabaseType {
	case "mysql", "postgres", "sqlite":
	default:
		return Config{}, errors.New("database type must be mysql, postgres or sqlite")
	}

	if cfg.LogMode == "" {
		cfg.LogMode = os.Getenv("LOG_MODE")
		if cfg.LogMode == "" {
			cfg.LogMode = defaultLogMode
		}
	}

	if cfg.ConnectTimeout == 0 {
		if v := os.Getenv("CONNECT_TIMEOUT"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, errors.New("invalid CONNECT_TIMEOUT env variable")
			}
			cfg.ConnectTimeout = d
		} else {
			cfg.ConnectTimeout = defaultConnectTimeout
		}
	}
	if cfg.ConnectTimeout < 0 {
		return Config{}, errors.New("connect timeout must be positive")
	}

	if !fs.Changed("hash-admin-pass") {
		if v := os.Getenv("HASH_ADMIN_PASS"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid HASH_ADMIN_PASS env variable")
			}
			cfg.HashAdminPass = b
		}
	}

	return cfg, nil
}
