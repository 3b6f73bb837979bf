// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var ErrUnknownDialect = errors.New("unknown database dialect")

// ConnParams are the connection fields collected by the wizard.
// For SQLite, Name is the database file path and the rest is ignored.
type ConnParams struct {
	Host string
	Port string
	Name string
	User string
	Pass string
}

// ParseDialect maps a configured database type to a Dialect
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case MySQL, Postgres, SQLite:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// DriverName returns the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	return string(d)
}

// DefaultPort is the port assumed when the form leaves db_port empty
func (d Dialect) DefaultPort() string {
	switch d {
	case MySQL:
		return "3306"
	case Postgres:
		return "5432"
	}
	return ""
}

// DSN builds the driver connection string. Every dialect is opened with a
// 4-byte UTF-8 encoding.
func (d Dialect) DSN(p ConnParams, timeout time.Duration) (string, error) {
	switch d {
	case MySQL:
		c := mysql.NewConfig()
		c.User = p.User
		c.Passwd = p.Pass
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(p.Host, p.Port)
		c.DBName = p.Name
		c.Params = map[string]string{"charset": "utf8mb4"}
		c.ParseTime = true
		// The schema is applied as one batch
		c.MultiStatements = true
		c.Timeout = timeout
		return c.FormatDSN(), nil
	case Postgres:
		q := url.Values{}
		q.Set("sslmode", "disable")
		q.Set("client_encoding", "UTF8")
		if timeout > 0 {
			q.Set("connect_timeout", strconv.Itoa(max(1, int(timeout.Seconds()))))
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(p.User, p.Pass),
			Host:     net.JoinHostPort(p.Host, p.Port),
			Path:     "/" + p.Name,
			RawQuery: q.Encode(),
		}
		return u.String(), nil
	case SQLite:
		if p.Name == "" {
			return "", errors.New("sqlite database path required")
		}
		return p.Name + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
}

// AppURL builds the DATABASE_URL the casino application reads, in the
// SQLAlchemy URL form it expects.
func (d Dialect) AppURL(p ConnParams) (string, error) {
	switch d {
	case MySQL:
		u := url.URL{
			Scheme:   "mysql+pymysql",
			User:     url.UserPassword(p.User, p.Pass),
			Host:     net.JoinHostPort(p.Host, p.Port),
			Path:     "/" + p.Name,
			RawQuery: "charset=utf8mb4",
		}
		return u.String(), nil
	case Postgres:
		u := url.URL{
			Scheme: "postgresql",
			User:   url.UserPassword(p.User, p.Pass),
			Host:   net.JoinHostPort(p.Host, p.Port),
			Path:   "/" + p.Name,
		}
		return u.String(), nil
	case SQLite:
		path, err := filepath.Abs(p.Name)
		if err != nil {
			return "", fmt.Errorf("failed to resolve sqlite path: %w", err)
		}
		return "sqlite:///" + filepath.ToSlash(path), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
}

// Rebind rewrites ? placeholders for the dialect ($1, $2, ... on Postgres)
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Open connects and pings the database, bounded by timeout
func Open(ctx context.Context, d Dialect, p ConnParams, timeout time.Duration) (*sql.DB, error) {
	dsn, err := d.DSN(p, timeout)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// RequiredDrivers lists the drivers the installer must have compiled in
func RequiredDrivers() []string {
	return []string{MySQL.DriverName(), Postgres.DriverName(), SQLite.DriverName()}
}
