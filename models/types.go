// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Form field names posted by the wizard views
const (
	FieldDBHost    = "db_host"
	FieldDBPort    = "db_port"
	FieldDBName    = "db_name"
	FieldDBUser    = "db_user"
	FieldDBPass    = "db_pass"
	FieldAdminUser = "admin_user"
	FieldAdminPass = "admin_pass"
	FieldSiteName  = "site_name"
	FieldSiteURL   = "site_url"
)

// Defaults applied when a form field is absent
const (
	DefaultDBHost    = "localhost"
	DefaultAdminUser = "admin"
	DefaultSiteName  = "Casino Platform"
)

// Admin roles understood by the platform
const (
	RoleSuperAdmin     = "super_admin"
	RoleGameManager    = "game_manager"
	RolePaymentManager = "payment_manager"
)

// Version is written into the lock file
const Version = "1.0.0"

// Domain types

// InstallConfig is everything the operator supplies in one request.
type InstallConfig struct {
	DBHost    string `json:"db_host"`
	DBPort    string `json:"db_port"`
	DBName    string `json:"db_name"`
	DBUser    string `json:"db_user"`
	DBPass    string `json:"db_pass"`
	AdminUser string `json:"admin_user"`
	AdminPass string `json:"admin_pass"`
	SiteName  string `json:"site_name"`
	SiteURL   string `json:"site_url"`
}

// LockInfo is the record stored in install.lock
type LockInfo struct {
	InstalledAt string `json:"installed_at"`
	Version     string `json:"version"`
	Database    string `json:"database"`
	AdminUser   string `json:"admin_user"`
	InstallID   string `json:"install_id,omitempty"`
}

type PaymentMethod struct {
	Name          string
	AccountNumber string
	Instructions  string
}

// Response types

type StatusResponse struct {
	Installed bool      `json:"installed"`
	Lock      *LockInfo `json:"lock,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
