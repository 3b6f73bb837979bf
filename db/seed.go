// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/casino-install/models"
)

// SiteDescription is the description stored with the default site settings
const SiteDescription = "Professional Casino Platform"

// PlaceholderAccount is the contact number seeded for every payment method
const PlaceholderAccount = "+880123456789"

// DefaultPaymentMethods are seeded on install; operators replace the
// placeholder numbers from the admin panel.
var DefaultPaymentMethods = []models.PaymentMethod{
	{Name: "bKash", AccountNumber: PlaceholderAccount, Instructions: "Send money to this bKash number and provide transaction ID"},
	{Name: "Nagad", AccountNumber: PlaceholderAccount, Instructions: "Send money to this Nagad number and provide transaction ID"},
	{Name: "Rocket", AccountNumber: PlaceholderAccount, Instructions: "Send money to this Rocket number and provide transaction ID"},
}

// Seed is the default data written after schema creation
type Seed struct {
	AdminUser      string
	AdminHash      string
	AdminRole      string
	SiteName       string
	PaymentMethods []models.PaymentMethod
}

// SeedStats counts rows actually inserted (existing rows are skipped)
type SeedStats struct {
	Admins         int
	Settings       int
	PaymentMethods int
}

// SeedDefaults inserts the seed rows that are not already present.
// Admins are keyed on username, settings on the table being empty, and
// payment methods on name + account number. Runs in one transaction.
func SeedDefaults(ctx context.Context, conn *sql.DB, d Dialect, seed Seed) (SeedStats, error) {
	var stats SeedStats

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Admin account
	inserted, err := insertIfAbsent(ctx, tx, d,
		`SELECT 1 FROM admin WHERE username = ? LIMIT 1`,
		[]any{seed.AdminUser},
		`INSERT INTO admin (username, password_hash, role) VALUES (?, ?, ?)`,
		[]any{seed.AdminUser, seed.AdminHash, seed.AdminRole},
	)
	if err != nil {
		return stats, fmt.Errorf("failed to insert admin: %w", err)
	}
	if inserted {
		stats.Admins++
	}

	// Site settings
	inserted, err = insertIfAbsent(ctx, tx, d,
		`SELECT 1 FROM site_settings LIMIT 1`,
		nil,
		`INSERT INTO site_settings (site_name, site_description) VALUES (?, ?)`,
		[]any{seed.SiteName, SiteDescription},
	)
	if err != nil {
		return stats, fmt.Errorf("failed to insert site settings: %w", err)
	}
	if inserted {
		stats.Settings++
	}

	// Payment methods
	for _, pm := range seed.PaymentMethods {
		inserted, err = insertIfAbsent(ctx, tx, d,
			`SELECT 1 FROM payment_method WHERE name = ? AND account_number = ? LIMIT 1`,
			[]any{pm.Name, pm.AccountNumber},
			`INSERT INTO payment_method (name, account_number, instructions) VALUES (?, ?, ?)`,
			[]any{pm.Name, pm.AccountNumber, pm.Instructions},
		)
		if err != nil {
			return stats, fmt.Errorf("failed to insert payment method %s: %w", pm.Name, err)
		}
		if inserted {
			stats.PaymentMethods++
		}
	}

	if err := tx.Commit(); err != nil {
		return SeedStats{}, fmt.Errorf("failed to commit seed data: %w", err)
	}

	return stats, nil
}

func insertIfAbsent(ctx context.Context, tx *sql.Tx, d Dialect, existsQuery string, existsArgs []any, insertQuery string, insertArgs []any) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, d.Rebind(existsQuery), existsArgs...).Scan(&one)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, err
	}

	if _, err := tx.ExecContext(ctx, d.Rebind(insertQuery), insertArgs...); err != nil {
		return false, err
	}
	return true, nil
}
