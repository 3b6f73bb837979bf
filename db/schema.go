// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Tables lists every table the platform needs, in creation order
var Tables = []string{
	"user",
	"admin",
	"game",
	"payment_method",
	"deposit_request",
	"withdrawal_request",
	"homepage_slider",
	"site_settings",
	"transaction",
}

// CreateSchema creates all tables needed by the casino platform.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sql.DB, d Dialect) error {
	schema, err := d.Schema()
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Schema returns the DDL batch for the dialect
func (d Dialect) Schema() (string, error) {
	switch d {
	case MySQL:
		return mysqlSchema, nil
	case Postgres:
		return postgresSchema, nil
	case SQLite:
		return sqliteSchema, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
}

const mysqlSchema = `
-- Players
CREATE TABLE IF NOT EXISTS user (
    id INT NOT NULL AUTO_INCREMENT,
    full_name VARCHAR(100) NOT NULL,
    phone VARCHAR(20) NOT NULL UNIQUE,
    username VARCHAR(50) UNIQUE,
    password_hash VARCHAR(256) NOT NULL,
    balance DECIMAL(10,2) DEFAULT 0.00,
    bonus_balance DECIMAL(10,2) DEFAULT 0.00,
    referral_code VARCHAR(10) NOT NULL UNIQUE,
    referred_by INT,
    referral_commission DECIMAL(10,2) DEFAULT 0.00,
    is_active TINYINT(1) DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_login TIMESTAMP NULL,
    PRIMARY KEY (id),
    FOREIGN KEY (referred_by) REFERENCES user(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Back-office accounts
CREATE TABLE IF NOT EXISTS admin (
    id INT NOT NULL AUTO_INCREMENT,
    username VARCHAR(50) NOT NULL UNIQUE,
    password_hash VARCHAR(256) NOT NULL,
    role VARCHAR(20) DEFAULT 'admin',
    is_active TINYINT(1) DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_login TIMESTAMP NULL,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Games
CREATE TABLE IF NOT EXISTS game (
    id INT NOT NULL AUTO_INCREMENT,
    title VARCHAR(100) NOT NULL,
    category VARCHAR(50) NOT NULL,
    thumbnail VARCHAR(255),
    game_file VARCHAR(255),
    winning_percentage DECIMAL(5,2) DEFAULT 50.00,
    min_bet DECIMAL(10,2) DEFAULT 1.00,
    max_bet DECIMAL(10,2) DEFAULT 1000.00,
    is_active TINYINT(1) DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Payment methods
CREATE TABLE IF NOT EXISTS payment_method (
    id INT NOT NULL AUTO_INCREMENT,
    name VARCHAR(50) NOT NULL,
    account_number VARCHAR(50) NOT NULL,
    instructions TEXT,
    is_active TINYINT(1) DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Deposits
CREATE TABLE IF NOT EXISTS deposit_request (
    id INT NOT NULL AUTO_INCREMENT,
    user_id INT NOT NULL,
    payment_method_id INT NOT NULL,
    amount DECIMAL(10,2) NOT NULL,
    transaction_id VARCHAR(100),
    screenshot VARCHAR(255),
    status VARCHAR(20) DEFAULT 'pending',
    admin_notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    processed_at TIMESTAMP NULL,
    PRIMARY KEY (id),
    FOREIGN KEY (user_id) REFERENCES user(id),
    FOREIGN KEY (payment_method_id) REFERENCES payment_method(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Withdrawals
CREATE TABLE IF NOT EXISTS withdrawal_request (
    id INT NOT NULL AUTO_INCREMENT,
    user_id INT NOT NULL,
    payment_method_id INT NOT NULL,
    amount DECIMAL(10,2) NOT NULL,
    account_details TEXT NOT NULL,
    status VARCHAR(20) DEFAULT 'pending',
    admin_notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    processed_at TIMESTAMP NULL,
    PRIMARY KEY (id),
    FOREIGN KEY (user_id) REFERENCES user(id),
    FOREIGN KEY (payment_method_id) REFERENCES payment_method(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Homepage slider
CREATE TABLE IF NOT EXISTS homepage_slider (
    id INT NOT NULL AUTO_INCREMENT,
    title VARCHAR(100) NOT NULL,
    description TEXT,
    image_path VARCHAR(255) NOT NULL,
    link_url VARCHAR(255),
    order_position INT DEFAULT 0,
    is_active TINYINT(1) DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Site settings (single row)
CREATE TABLE IF NOT EXISTS site_settings (
    id INT NOT NULL AUTO_INCREMENT,
    site_name VARCHAR(100) DEFAULT 'Casino Platform',
    site_description TEXT,
    contact_email VARCHAR(100),
    contact_phone VARCHAR(20),
    maintenance_mode TINYINT(1) DEFAULT 0,
    referral_bonus_percentage DECIMAL(5,2) DEFAULT 5.00,
    min_deposit DECIMAL(10,2) DEFAULT 10.00,
    min_withdrawal DECIMAL(10,2) DEFAULT 20.00,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Ledger
CREATE TABLE IF NOT EXISTS transaction (
    id INT NOT NULL AUTO_INCREMENT,
    user_id INT NOT NULL,
    type VARCHAR(20) NOT NULL,
    amount DECIMAL(10,2) NOT NULL,
    description VARCHAR(255),
    reference_id VARCHAR(100),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    FOREIGN KEY (user_id) REFERENCES user(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

const postgresSchema = `
-- Players
CREATE TABLE IF NOT EXISTS "user" (
    id SERIAL PRIMARY KEY,
    full_name VARCHAR(100) NOT NULL,
    phone VARCHAR(20) NOT NULL UNIQUE,
    username VARCHAR(50) UNIQUE,
    password_hash VARCHAR(256) NOT NULL,
    balance NUMERIC(10,2) DEFAULT 0.00,
    bonus_balance NUMERIC(10,2) DEFAULT 0.00,
    referral_code VARCHAR(10) NOT NULL UNIQUE,
    referred_by INTEGER REFERENCES "user"(id),
    referral_commission NUMERIC(10,2) DEFAULT 0.00,
    is_active BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMP DEFAULT NOW(),
    last_login TIMESTAMP
);

-- Back-office accounts
CREATE TABLE IF NOT EXISTS admin (
    id SERIAL PRIMARY KEY,
    username VARCHAR(50) NOT NULL UNIQUE,
    password_hash VARCHAR(256) NOT NULL,
    role VARCHAR(20) DEFAULT 'admin',
    is_active BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMP DEFAULT NOW(),
    last_login TIMESTAMP
);

-- Games
CREATE TABLE IF NOT EXISTS game (
    id SERIAL PRIMARY KEY,
    title VARCHAR(100) NOT NULL,
    category VARCHAR(50) NOT NULL,
    thumbnail VARCHAR(255),
    game_file VARCHAR(255),
    winning_percentage NUMERIC(5,2) DEFAULT 50.00,
    min_bet NUMERIC(10,2) DEFAULT 1.00,
    max_bet NUMERIC(10,2) DEFAULT 1000.00,
    is_active BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMP DEFAULT NOW()
);

-- Payment methods
CREATE TABLE IF NOT EXISTS payment_method (
    id SERIAL PRIMARY KEY,
    name VARCHAR(50) NOT NULL,
    account_number VARCHAR(50) NOT NULL,
    instructions TEXT,
    is_active BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMP DEFAULT NOW()
);

-- Deposits
CREATE TABLE IF NOT EXISTS deposit_request (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES "user"(id),
    payment_method_id INTEGER NOT NULL REFERENCES payment_method(id),
    amount NUMERIC(10,2) NOT NULL,
    transaction_id VARCHAR(100),
    screenshot VARCHAR(255),
    status VARCHAR(20) DEFAULT 'pending',
    admin_notes TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    processed_at TIMESTAMP
);

-- Withdrawals
CREATE TABLE IF NOT EXISTS withdrawal_request (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES "user"(id),
    payment_method_id INTEGER NOT NULL REFERENCES payment_method(id),
    amount NUMERIC(10,2) NOT NULL,
    account_details TEXT NOT NULL,
    status VARCHAR(20) DEFAULT 'pending',
    admin_notes TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    processed_at TIMESTAMP
);

-- Homepage slider
CREATE TABLE IF NOT EXISTS homepage_slider (
    id SERIAL PRIMARY KEY,
    title VARCHAR(100) NOT NULL,
    description TEXT,
    image_path VARCHAR(255) NOT NULL,
    link_url VARCHAR(255),
    order_position INTEGER DEFAULT 0,
    is_active BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMP DEFAULT NOW()
);

-- Site settings (single row)
CREATE TABLE IF NOT EXISTS site_settings (
    id SERIAL PRIMARY KEY,
    site_name VARCHAR(100) DEFAULT 'Casino Platform',
    site_description TEXT,
    contact_email VARCHAR(100),
    contact_phone VARCHAR(20),
    maintenance_mode BOOLEAN DEFAULT FALSE,
    referral_bonus_percentage NUMERIC(5,2) DEFAULT 5.00,
    min_deposit NUMERIC(10,2) DEFAULT 10.00,
    min_withdrawal NUMERIC(10,2) DEFAULT 20.00,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);

-- Ledger
CREATE TABLE IF NOT EXISTS "transaction" (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES "user"(id),
    type VARCHAR(20) NOT NULL,
    amount NUMERIC(10,2) NOT NULL,
    description VARCHAR(255),
    reference_id VARCHAR(100),
    created_at TIMESTAMP DEFAULT NOW()
);
`

const sqliteSchema = `
-- Players
CREATE TABLE IF NOT EXISTS "user" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT NOT NULL,
    phone TEXT NOT NULL UNIQUE,
    username TEXT UNIQUE,
    password_hash TEXT NOT NULL,
    balance NUMERIC DEFAULT 0.00,
    bonus_balance NUMERIC DEFAULT 0.00,
    referral_code TEXT NOT NULL UNIQUE,
    referred_by INTEGER REFERENCES "user"(id),
    referral_commission NUMERIC DEFAULT 0.00,
    is_active INTEGER DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_login TIMESTAMP
);

-- Back-office accounts
CREATE TABLE IF NOT EXISTS admin (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT DEFAULT 'admin',
    is_active INTEGER DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_login TIMESTAMP
);

-- Games
CREATE TABLE IF NOT EXISTS game (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    thumbnail TEXT,
    game_file TEXT,
    winning_percentage NUMERIC DEFAULT 50.00,
    min_bet NUMERIC DEFAULT 1.00,
    max_bet NUMERIC DEFAULT 1000.00,
    is_active INTEGER DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Payment methods
CREATE TABLE IF NOT EXISTS payment_method (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    account_number TEXT NOT NULL,
    instructions TEXT,
    is_active INTEGER DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Deposits
CREATE TABLE IF NOT EXISTS deposit_request (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES "user"(id),
    payment_method_id INTEGER NOT NULL REFERENCES payment_method(id),
    amount NUMERIC NOT NULL,
    transaction_id TEXT,
    screenshot TEXT,
    status TEXT DEFAULT 'pending',
    admin_notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    processed_at TIMESTAMP
);

-- Withdrawals
CREATE TABLE IF NOT EXISTS withdrawal_request (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES "user"(id),
    payment_method_id INTEGER NOT NULL REFERENCES payment_method(id),
    amount NUMERIC NOT NULL,
    account_details TEXT NOT NULL,
    status TEXT DEFAULT 'pending',
    admin_notes TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    processed_at TIMESTAMP
);

-- Homepage slider
CREATE TABLE IF NOT EXISTS homepage_slider (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    image_path TEXT NOT NULL,
    link_url TEXT,
    order_position INTEGER DEFAULT 0,
    is_active INTEGER DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Site settings (single row)
CREATE TABLE IF NOT EXISTS site_settings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    site_name TEXT DEFAULT 'Casino Platform',
    site_description TEXT,
    contact_email TEXT,
    contact_phone TEXT,
    maintenance_mode INTEGER DEFAULT 0,
    referral_bonus_percentage NUMERIC DEFAULT 5.00,
    min_deposit NUMERIC DEFAULT 10.00,
    min_withdrawal NUMERIC DEFAULT 20.00,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Ledger
CREATE TABLE IF NOT EXISTS "transaction" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES "user"(id),
    type TEXT NOT NULL,
    amount NUMERIC NOT NULL,
    description TEXT,
    reference_id TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
